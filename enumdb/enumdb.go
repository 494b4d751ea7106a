// Package enumdb provides a translator built from an external
// type-description file. The file maps signal names to enum variant tables
// (bit pattern to label) and is read once at construction; translation
// afterwards is a pure in-memory lookup.
//
// Description format (YAML):
//
//	signals:
//	  tb.dut.state:
//	    width: 3
//	    variants:
//	      "000": Idle
//	      "001": Fetch
//	      "010": Execute
//	  tb.dut.flags:
//	    width: 2
//	    variants:
//	      "01": Carry
//	      "10": Zero
//	    fields:
//	      - name: carry
//	      - name: zero
//
// Raw values shorter than the declared width are zero-extended before
// lookup, matching the waveform convention that dumpers strip leading
// zeros. Values carrying meta-states classify to UNDEF/HIGHIMP before any
// lookup is attempted.
package enumdb

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wavescope/translate"
	"github.com/wavescope/translate/errors"
)

type descriptor struct {
	Signals map[string]signalDesc `yaml:"signals"`
}

type signalDesc struct {
	Width    int               `yaml:"width"`
	Variants map[string]string `yaml:"variants"`
	Fields   []fieldDesc       `yaml:"fields"`
}

type fieldDesc struct {
	Name string `yaml:"name"`
}

// EnumTranslator renders enum-typed signals by variant name. It only claims
// signals present in its description.
type EnumTranslator struct {
	signals map[string]signalDesc
}

// Load reads a type-description file and builds the translator. The file is
// only needed during this call. A missing or malformed file is a
// construction failure: the host must not register the translator.
func Load(path string) (*EnumTranslator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.OracleUnavailable(path, err)
	}
	return parse(path, data)
}

// Parse builds the translator from in-memory description bytes.
func Parse(data []byte) (*EnumTranslator, error) {
	return parse("<memory>", data)
}

func parse(source string, data []byte) (*EnumTranslator, error) {
	var desc descriptor
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, errors.InvalidDescriptor(source, err)
	}
	if len(desc.Signals) == 0 {
		return nil, errors.New(errors.PhaseParse, errors.KindInvalidDescriptor).
			Detail("type description %q declares no signals", source).
			Build()
	}
	for name, sig := range desc.Signals {
		if sig.Width < 0 {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidDescriptor).
				Signal(name).
				Detail("width %d is negative", sig.Width).
				Build()
		}
		if len(sig.Variants) == 0 {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidDescriptor).
				Signal(name).
				Detail("no variants declared").
				Build()
		}
	}
	return &EnumTranslator{signals: desc.Signals}, nil
}

func (t *EnumTranslator) Name() string { return "Enum" }

// Translates claims exactly the signals the description names.
func (t *EnumTranslator) Translates(name string) bool {
	_, ok := t.signals[name]
	return ok
}

func (t *EnumTranslator) Translate(name, raw string) (translate.TranslationResult, error) {
	sig, ok := t.signals[name]
	if !ok {
		return translate.Warn(raw), nil
	}

	switch kind, _ := translate.ClassifyMetaState(raw); kind {
	case translate.KindUndef:
		return translate.Undef(), nil
	case translate.KindHighImp:
		return translate.HighImp(), nil
	}

	pattern := extend(raw, sig.Width)
	if label, ok := sig.Variants[pattern]; ok {
		return translate.Normal(label), nil
	}
	return translate.Warn("ERROR (" + pattern + ")"), nil
}

func (t *EnumTranslator) VariableInfo(name string) translate.VariableInfo {
	sig, ok := t.signals[name]
	if !ok || len(sig.Fields) == 0 {
		return translate.Bits()
	}
	subfields := make([]translate.Subfield, len(sig.Fields))
	for i, f := range sig.Fields {
		subfields[i] = translate.Subfield{Name: f.Name, Info: translate.Bits()}
	}
	return translate.VariableInfo{Kind: translate.InfoCompound, Subfields: subfields}
}

// Signals lists the described signal names.
func (t *EnumTranslator) Signals() []string {
	out := make([]string, 0, len(t.signals))
	for name := range t.signals {
		out = append(out, name)
	}
	return out
}

// extend zero-extends a bit vector on the left to width characters.
// Values already at or beyond width are returned as-is.
func extend(raw string, width int) string {
	if len(raw) >= width {
		return raw
	}
	pad := make([]byte, width-len(raw))
	for i := range pad {
		pad[i] = '0'
	}
	return string(pad) + raw
}
