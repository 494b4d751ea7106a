// Package translate provides the signal-value translation layer for a
// digital waveform viewer.
//
// A hardware signal's sampled value arrives as a string of bit characters,
// possibly containing the simulation meta-states x (unknown) and z
// (high-impedance). A Translator turns that raw value into something a
// human wants to read, together with a ValueKind describing how much the
// rendering can be trusted.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	translate/       Root package with the Translator contract, ValueKind,
//	                 the meta-state classifier and the host-side Registry
//	├── basic/       Reference translators: hex/unsigned/binary re-encoders
//	│                and the sequential counter translator
//	├── plugin/      Delegating translator backed by a WebAssembly oracle
//	│                module executed with wazero
//	├── enumdb/      Translator built from an external YAML type-description
//	│                file mapping bit patterns to enum variant names
//	├── errors/      Structured error types for construction and oracle
//	│                failures
//	└── cmd/         Demo host binary with batch and interactive modes
//
// # Quick Start
//
// Translate values with the built-in hexadecimal re-encoder:
//
//	hex := translate.Basic(basic.HexTranslator{}, 8)
//	res, _ := hex.Translate("tb.dut.count", "255")
//	fmt.Println(res.Value, res.Kind) // "ff normal"
//
// Hosts keep their translators in a Registry and probe each one per signal:
//
//	reg := translate.NewRegistry()
//	reg.Register(hex)
//	for _, name := range reg.Names() {
//	    t, _ := reg.Get(name)
//	    if t.Translates(signal) {
//	        ...
//	    }
//	}
//
// # Meta-states
//
// Classification follows the simulator convention: any x anywhere makes the
// whole value unknown, regardless of how many z bits it also carries. Only a
// value free of x can be high-impedance. ClassifyMetaState implements this
// precedence and is exported so hosts and translators can share one rule.
//
// # Thread Safety
//
// Translators are safe for concurrent Translate calls. The only mutable
// translator state in this module is the sequential translator's counter,
// which is atomic. The wasm-backed oracle serializes guest calls internally
// because a WebAssembly instance is single-threaded.
package translate
