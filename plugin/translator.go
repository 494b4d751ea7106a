package plugin

import (
	"context"

	"go.uber.org/zap"

	"github.com/wavescope/translate"
	"github.com/wavescope/translate/errors"
)

// DelegatingTranslator defers decoding to an Oracle and passes raw values
// through when the oracle has no opinion. Pass-through results carry
// KindWarn so the host can tell a real decode from an echo; oracle results
// carry KindNormal.
//
// Translate calls are synchronous and bounded, so no cancellation plumbing
// is exposed; the translator owns the context it hands the oracle.
type DelegatingTranslator struct {
	name   string
	oracle Oracle
}

// NewDelegating wraps an oracle as a Translator. The oracle must already be
// constructed; a translator is never built around a failed oracle.
func NewDelegating(name string, oracle Oracle) *DelegatingTranslator {
	return &DelegatingTranslator{name: name, oracle: oracle}
}

func (t *DelegatingTranslator) Name() string { return t.name }

// Translates probes the oracle. A probing failure reads as "not supported":
// a broken oracle must not attract signals it will then fail on.
func (t *DelegatingTranslator) Translates(name string) bool {
	ok, err := t.oracle.Translates(context.Background(), name)
	if err != nil {
		Logger().Warn("oracle probe failed, declining signal",
			zap.String("translator", t.name),
			zap.String("signal", name),
			zap.Error(err))
		return false
	}
	return ok
}

func (t *DelegatingTranslator) Translate(name, raw string) (translate.TranslationResult, error) {
	value, ok, err := t.oracle.TranslateValue(context.Background(), name, raw)
	if err != nil {
		return translate.TranslationResult{}, errors.OracleFailure(name, err)
	}
	if !ok {
		return translate.Warn(raw), nil
	}
	return translate.Normal(value), nil
}

// VariableInfo is a no-op metadata hook; oracle-backed signals report as
// plain bit vectors.
func (t *DelegatingTranslator) VariableInfo(string) translate.VariableInfo {
	return translate.Bits()
}
