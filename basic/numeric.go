package basic

import (
	"fmt"
	"math/big"

	"github.com/wavescope/translate"
)

// HexTranslator re-renders a decimal integer literal as lowercase
// hexadecimal, left-padded with zeros to numBits/4 digits. Padding only ever
// adds characters; a value wider than the declared width is printed in full.
// A raw value that does not parse as a decimal integer is echoed back with
// KindWarn. This is the sole fallback trigger: meta-state markers reach the
// same path as any other non-numeric input.
type HexTranslator struct{}

func (HexTranslator) Name() string { return "Hexadecimal" }

func (HexTranslator) BasicTranslate(numBits int, raw string) (string, translate.ValueKind) {
	v, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return raw, translate.KindWarn
	}
	return fmt.Sprintf("%0*x", numBits/4, v), translate.KindNormal
}

// UnsignedTranslator renders a binary bit vector as an unsigned decimal
// number. Vectors carrying meta-states produce the UNDEF/HIGHIMP sentinels
// with the matching kind; anything else that fails the bit-vector parse is
// echoed with KindWarn.
type UnsignedTranslator struct{}

func (UnsignedTranslator) Name() string { return "Unsigned" }

func (UnsignedTranslator) BasicTranslate(_ int, raw string) (string, translate.ValueKind) {
	if v, ok := translate.ParseBitVector(raw); ok {
		return v.String(), translate.KindNormal
	}
	return metaStateFallback(raw)
}

// BinaryTranslator re-renders a binary bit vector zero-extended to the
// declared width. Meta-state and unparsable inputs behave as in
// UnsignedTranslator.
type BinaryTranslator struct{}

func (BinaryTranslator) Name() string { return "Binary" }

func (BinaryTranslator) BasicTranslate(numBits int, raw string) (string, translate.ValueKind) {
	if v, ok := translate.ParseBitVector(raw); ok {
		return fmt.Sprintf("%0*b", numBits, v), translate.KindNormal
	}
	return metaStateFallback(raw)
}

func metaStateFallback(raw string) (string, translate.ValueKind) {
	switch kind, _ := translate.ClassifyMetaState(raw); kind {
	case translate.KindUndef:
		return translate.UndefValue, translate.KindUndef
	case translate.KindHighImp:
		return translate.HighImpValue, translate.KindHighImp
	default:
		return raw, translate.KindWarn
	}
}
