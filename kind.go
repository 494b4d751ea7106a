package translate

// ValueKind classifies how trustworthy a translated value is.
type ValueKind int

const (
	// KindNormal marks a fully determined translation.
	KindNormal ValueKind = iota
	// KindWarn marks a value that is present but only approximately
	// translated, typically a raw value echoed back after a failed decode.
	KindWarn
	// KindUndef marks a value containing at least one unknown (x) bit.
	KindUndef
	// KindHighImp marks a value containing at least one high-impedance (z)
	// bit and no unknown bits.
	KindHighImp
)

func (k ValueKind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindWarn:
		return "warn"
	case KindUndef:
		return "undef"
	case KindHighImp:
		return "highimp"
	default:
		return "unknown"
	}
}

// Sentinel display strings used by translators that encode the meta-state
// in the value itself. They always travel with the matching ValueKind so
// hosts reading either field agree.
const (
	UndefValue   = "UNDEF"
	HighImpValue = "HIGHIMP"
)

// TranslationResult is the single result shape every translator returns.
type TranslationResult struct {
	// Value is the display string. No structure beyond being printable.
	Value string
	// Kind classifies Value's reliability.
	Kind ValueKind
}

// Normal wraps a display value as a fully determined result.
func Normal(value string) TranslationResult {
	return TranslationResult{Value: value, Kind: KindNormal}
}

// Warn wraps a display value as an approximate or fallback result.
func Warn(value string) TranslationResult {
	return TranslationResult{Value: value, Kind: KindWarn}
}

// Undef is the canonical unknown-bits result.
func Undef() TranslationResult {
	return TranslationResult{Value: UndefValue, Kind: KindUndef}
}

// HighImp is the canonical high-impedance result.
func HighImp() TranslationResult {
	return TranslationResult{Value: HighImpValue, Kind: KindHighImp}
}
