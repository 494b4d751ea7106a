package translate

// VariableInfoKind distinguishes the static shapes a signal can declare.
type VariableInfoKind int

const (
	// InfoBits is the default: a flat vector of bits.
	InfoBits VariableInfoKind = iota
	// InfoCompound is a structured signal with named subfields.
	InfoCompound
)

// VariableInfo is static per-signal metadata a translator may expose to the
// host. Most translators return Bits; translators built from a type
// description can report structure.
type VariableInfo struct {
	Kind      VariableInfoKind
	Subfields []Subfield
}

// Subfield names one member of a compound signal.
type Subfield struct {
	Name string
	Info VariableInfo
}

// Bits returns the default flat-vector metadata.
func Bits() VariableInfo {
	return VariableInfo{Kind: InfoBits}
}

// Translator converts raw sampled signal values into display values.
//
// Translates is a pure capability probe: the host calls it once per signal
// before any Translate call, and must not register value changes with a
// translator that declined the signal. Translate is called once per value
// change. The error return is reserved for oracle-backed translators whose
// external decoder failed; in-process translators return a nil error and
// express decode problems through the result's Kind instead.
type Translator interface {
	Name() string
	Translates(name string) bool
	Translate(name, raw string) (TranslationResult, error)
	VariableInfo(name string) VariableInfo
}

// BasicTranslator is the simplified contract for width-aware re-encoders:
// no per-signal state, every bit vector accepted, metadata always Bits.
type BasicTranslator interface {
	Name() string
	BasicTranslate(numBits int, raw string) (string, ValueKind)
}

// Basic lifts a BasicTranslator into the full Translator contract with a
// fixed bit width, accepting every signal and reporting Bits metadata.
func Basic(t BasicTranslator, numBits int) Translator {
	return &basicAdapter{inner: t, numBits: numBits}
}

type basicAdapter struct {
	inner   BasicTranslator
	numBits int
}

func (a *basicAdapter) Name() string { return a.inner.Name() }

func (a *basicAdapter) Translates(string) bool { return true }

func (a *basicAdapter) Translate(_, raw string) (TranslationResult, error) {
	value, kind := a.inner.BasicTranslate(a.numBits, raw)
	return TranslationResult{Value: value, Kind: kind}, nil
}

func (a *basicAdapter) VariableInfo(string) VariableInfo { return Bits() }
