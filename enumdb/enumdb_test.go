package enumdb

import (
	goerrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/wavescope/translate"
	"github.com/wavescope/translate/errors"
)

const stateDB = `
signals:
  tb.dut.state:
    width: 3
    variants:
      "000": Idle
      "001": Fetch
      "010": Execute
  tb.dut.flags:
    width: 2
    variants:
      "01": Carry
      "10": Zero
    fields:
      - name: carry
      - name: zero
`

func mustParse(t *testing.T, data string) *EnumTranslator {
	t.Helper()
	tr, err := Parse([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

func TestTranslate(t *testing.T) {
	tr := mustParse(t, stateDB)

	tests := []struct {
		name   string
		signal string
		raw    string
		value  string
		kind   translate.ValueKind
	}{
		{"exact width", "tb.dut.state", "001", "Fetch", translate.KindNormal},
		{"zero extended", "tb.dut.state", "10", "Execute", translate.KindNormal},
		{"single bit extended", "tb.dut.state", "0", "Idle", translate.KindNormal},
		{"unknown variant", "tb.dut.state", "111", "ERROR (111)", translate.KindWarn},
		{"extended unknown variant", "tb.dut.state", "11", "ERROR (011)", translate.KindWarn},
		{"undef bits", "tb.dut.state", "0x1", "UNDEF", translate.KindUndef},
		{"highimp bits", "tb.dut.state", "0z1", "HIGHIMP", translate.KindHighImp},
		{"x beats z", "tb.dut.state", "zx1", "UNDEF", translate.KindUndef},
		{"undescribed signal echoes", "tb.other", "101", "101", translate.KindWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tr.Translate(tt.signal, tt.raw)
			if err != nil {
				t.Fatal(err)
			}
			if res.Value != tt.value || res.Kind != tt.kind {
				t.Errorf("Translate(%q, %q) = (%q, %s), want (%q, %s)",
					tt.signal, tt.raw, res.Value, res.Kind, tt.value, tt.kind)
			}
		})
	}
}

func TestTranslates(t *testing.T) {
	tr := mustParse(t, stateDB)

	if !tr.Translates("tb.dut.state") {
		t.Error("described signal should be claimed")
	}
	if tr.Translates("tb.other") {
		t.Error("undescribed signal should not be claimed")
	}
}

func TestVariableInfo(t *testing.T) {
	tr := mustParse(t, stateDB)

	if info := tr.VariableInfo("tb.dut.state"); info.Kind != translate.InfoBits {
		t.Errorf("plain signal info = %v, want bits", info.Kind)
	}

	info := tr.VariableInfo("tb.dut.flags")
	if info.Kind != translate.InfoCompound {
		t.Fatalf("signal with fields info = %v, want compound", info.Kind)
	}
	if len(info.Subfields) != 2 || info.Subfields[0].Name != "carry" || info.Subfields[1].Name != "zero" {
		t.Errorf("subfields = %v", info.Subfields)
	}

	if info := tr.VariableInfo("tb.other"); info.Kind != translate.InfoBits {
		t.Errorf("unknown signal info = %v, want bits", info.Kind)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.yaml")
	if err := os.WriteFile(path, []byte(stateDB), 0o644); err != nil {
		t.Fatal(err)
	}

	tr, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	res, err := tr.Translate("tb.dut.state", "000")
	if err != nil {
		t.Fatal(err)
	}
	if res.Value != "Idle" {
		t.Errorf("Translate = %q, want Idle", res.Value)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error")
	}
	want := &errors.Error{Phase: errors.PhaseConstruct, Kind: errors.KindOracleUnavailable}
	if !goerrors.Is(err, want) {
		t.Errorf("error = %v, want construct/oracle_unavailable", err)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", "signals: ["},
		{"no signals", "signals: {}"},
		{"no variants", "signals:\n  tb.a:\n    width: 2"},
		{"negative width", "signals:\n  tb.a:\n    width: -1\n    variants:\n      \"0\": A"},
	}

	want := &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindInvalidDescriptor}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !goerrors.Is(err, want) {
				t.Errorf("error = %v, want parse/invalid_descriptor", err)
			}
		})
	}
}
