// Package plugin provides a delegating translator whose decode logic lives
// in an external WebAssembly module, the oracle. The oracle is loaded once
// at construction and consulted per value change; when it has no opinion
// the raw value passes through unchanged.
//
// # Oracle ABI
//
// An oracle is a core WebAssembly module with four required exports:
//
//	memory                                      exported linear memory
//	alloc(size: u32) -> u32                     guest-side allocation
//	translates(name_ptr, name_len: u32) -> u32  nonzero if the signal is handled
//	translate_value(name_ptr, name_len,
//	                val_ptr, val_len: u32) -> u64
//
// Strings cross the boundary as (ptr, len) pairs in guest memory; the host
// copies them in through alloc. translate_value returns the result string
// packed as ptr<<32 | len, or 0 when the oracle has no opinion for that
// name/value pair. WASI preview1 imports are satisfied so oracles built
// with common guest toolchains instantiate without extra setup.
//
// # Failure semantics
//
// A missing or unloadable module, or one lacking a required export, fails
// at construction; the host must not register a translator it could not
// construct. A guest trap or a bad result pointer during translation is
// returned to the host as an oracle_failure error, distinct from the
// no-opinion pass-through.
package plugin
