package translate

import "math/big"

// ClassifyMetaState scans a raw value for simulation meta-states.
//
// The scan is case-insensitive. Any x makes the value KindUndef no matter
// what else it contains, so the scan stops at the first x. A z only makes
// the value KindHighImp if no x appears anywhere, which means the scan must
// run to the end once a z has been seen. Values free of both report
// (KindNormal, false).
func ClassifyMetaState(raw string) (ValueKind, bool) {
	sawZ := false
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case 'x', 'X':
			return KindUndef, true
		case 'z', 'Z':
			sawZ = true
		}
	}
	if sawZ {
		return KindHighImp, true
	}
	return KindNormal, false
}

// ParseBitVector interprets raw as an unsigned base-2 bit vector. It reports
// false for any string containing characters other than 0 and 1, including
// meta-state markers and the empty string.
func ParseBitVector(raw string) (*big.Int, bool) {
	if raw == "" {
		return nil, false
	}
	v, ok := new(big.Int).SetString(raw, 2)
	if !ok || v.Sign() < 0 {
		return nil, false
	}
	return v, true
}
