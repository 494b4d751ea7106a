package plugin

import (
	"context"
	"os"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/zap"

	"github.com/wavescope/translate/errors"
)

// Oracle is an external decoder consulted per name/value pair. The boolean
// result distinguishes "no opinion" from an actual answer; the error channel
// is reserved for oracle malfunction and never means "no opinion".
type Oracle interface {
	Translates(ctx context.Context, name string) (bool, error)
	TranslateValue(ctx context.Context, name, raw string) (string, bool, error)
}

const (
	exportAlloc          = "alloc"
	exportTranslates     = "translates"
	exportTranslateValue = "translate_value"
)

// WasmOracle runs an oracle compiled to WebAssembly. Construction compiles
// and instantiates the module once; per-call work is a pair of string
// copies and one guest call. Calls are serialized because a WebAssembly
// instance is single-threaded.
type WasmOracle struct {
	mu             sync.Mutex
	runtime        wazero.Runtime
	module         api.Module
	alloc          api.Function
	translates     api.Function
	translateValue api.Function
	source         string
}

// LoadOracle reads a WebAssembly oracle module from path and prepares it
// for use. The file is only needed during this call.
func LoadOracle(ctx context.Context, path string) (*WasmOracle, error) {
	wasm, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.OracleUnavailable(path, err)
	}
	return newOracle(ctx, path, wasm)
}

// NewOracle prepares an in-memory WebAssembly oracle module for use.
func NewOracle(ctx context.Context, wasm []byte) (*WasmOracle, error) {
	return newOracle(ctx, "<memory>", wasm)
}

func newOracle(ctx context.Context, source string, wasm []byte) (*WasmOracle, error) {
	runtime := wazero.NewRuntime(ctx)

	wasi_snapshot_preview1.MustInstantiate(ctx, runtime)

	compiled, err := runtime.CompileModule(ctx, wasm)
	if err != nil {
		_ = runtime.Close(ctx)
		return nil, errors.OracleUnavailable(source, err)
	}

	module, err := runtime.InstantiateModule(ctx, compiled,
		wazero.NewModuleConfig().WithName("oracle"))
	if err != nil {
		_ = runtime.Close(ctx)
		return nil, errors.OracleUnavailable(source, err)
	}

	o := &WasmOracle{
		runtime: runtime,
		module:  module,
		source:  source,
	}

	if module.Memory() == nil {
		_ = runtime.Close(ctx)
		return nil, errors.MissingExport("memory")
	}
	for _, probe := range []struct {
		name string
		fn   *api.Function
	}{
		{exportAlloc, &o.alloc},
		{exportTranslates, &o.translates},
		{exportTranslateValue, &o.translateValue},
	} {
		*probe.fn = module.ExportedFunction(probe.name)
		if *probe.fn == nil {
			_ = runtime.Close(ctx)
			return nil, errors.MissingExport(probe.name)
		}
	}

	Logger().Debug("oracle loaded",
		zap.String("source", source),
		zap.String("module", module.Name()))

	return o, nil
}

// Close releases the oracle's runtime. The oracle must not be used after
// Close returns.
func (o *WasmOracle) Close(ctx context.Context) error {
	return o.runtime.Close(ctx)
}

// Source reports where the oracle module came from.
func (o *WasmOracle) Source() string { return o.source }

// Translates asks the guest whether it handles the named signal.
func (o *WasmOracle) Translates(ctx context.Context, name string) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	ptr, err := o.writeString(ctx, name)
	if err != nil {
		return false, err
	}
	results, err := o.translates.Call(ctx, uint64(ptr), uint64(len(name)))
	if err != nil {
		Logger().Warn("oracle translates trapped",
			zap.String("source", o.source), zap.Error(err))
		return false, err
	}
	return uint32(results[0]) != 0, nil
}

// TranslateValue asks the guest to decode raw for the named signal. A false
// second result means the oracle had no opinion.
func (o *WasmOracle) TranslateValue(ctx context.Context, name, raw string) (string, bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	namePtr, err := o.writeString(ctx, name)
	if err != nil {
		return "", false, err
	}
	rawPtr, err := o.writeString(ctx, raw)
	if err != nil {
		return "", false, err
	}

	results, err := o.translateValue.Call(ctx,
		uint64(namePtr), uint64(len(name)),
		uint64(rawPtr), uint64(len(raw)))
	if err != nil {
		Logger().Warn("oracle translate_value trapped",
			zap.String("source", o.source),
			zap.String("signal", name),
			zap.Error(err))
		return "", false, err
	}

	packed := results[0]
	if packed == 0 {
		return "", false, nil
	}

	resPtr := uint32(packed >> 32)
	resLen := uint32(packed)
	data, ok := o.module.Memory().Read(resPtr, resLen)
	if !ok {
		return "", false, errors.New(errors.PhaseTranslate, errors.KindOracleFailure).
			Signal(name).
			Detail("result (ptr=%d, len=%d) outside guest memory", resPtr, resLen).
			Build()
	}
	// Copy out before the next guest call can move memory.
	return string(data), true, nil
}

// writeString copies s into guest memory via the guest allocator and
// returns its address. Callers hold o.mu.
func (o *WasmOracle) writeString(ctx context.Context, s string) (uint32, error) {
	if len(s) == 0 {
		return 0, nil
	}
	results, err := o.alloc.Call(ctx, uint64(len(s)))
	if err != nil {
		return 0, err
	}
	ptr := uint32(results[0])
	if !o.module.Memory().Write(ptr, []byte(s)) {
		return 0, errors.New(errors.PhaseTranslate, errors.KindOracleFailure).
			Detail("alloc returned ptr=%d for %d bytes, outside guest memory", ptr, len(s)).
			Build()
	}
	return ptr, nil
}
