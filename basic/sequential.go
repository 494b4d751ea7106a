package basic

import (
	"strconv"
	"sync/atomic"

	"github.com/wavescope/translate"
)

// SequentialTranslator labels each normal observation with an incrementing
// counter instead of decoding it. The label stream is cheap and visibly
// changing, which is what a test or demo host wants; it is deliberately not
// a faithful decode.
//
// Meta-state values short-circuit to the UNDEF/HIGHIMP sentinels and never
// touch the counter. The counter belongs to the instance, starts at zero,
// and is atomic so a host that fans translation out across goroutines still
// gets exactly one increment per normal value.
type SequentialTranslator struct {
	counter atomic.Uint64
}

func NewSequentialTranslator() *SequentialTranslator {
	return &SequentialTranslator{}
}

func (t *SequentialTranslator) Name() string { return "Sequential" }

func (t *SequentialTranslator) Translates(string) bool { return true }

func (t *SequentialTranslator) Translate(_, raw string) (translate.TranslationResult, error) {
	switch kind, _ := translate.ClassifyMetaState(raw); kind {
	case translate.KindUndef:
		return translate.Undef(), nil
	case translate.KindHighImp:
		return translate.HighImp(), nil
	}
	n := t.counter.Add(1)
	return translate.Normal(strconv.FormatUint(n, 10)), nil
}

func (t *SequentialTranslator) VariableInfo(string) translate.VariableInfo {
	return translate.Bits()
}
