package basic

import (
	"testing"

	"github.com/wavescope/translate"
)

func TestHexTranslator(t *testing.T) {
	tests := []struct {
		name    string
		numBits int
		raw     string
		value   string
		kind    translate.ValueKind
	}{
		{"byte full scale", 8, "255", "ff", translate.KindNormal},
		{"halfword padded", 16, "10", "000a", translate.KindNormal},
		{"zero", 8, "0", "00", translate.KindNormal},
		{"wider than declared", 4, "255", "ff", translate.KindNormal},
		{"width not multiple of four", 7, "255", "ff", translate.KindNormal},
		{"zero width", 0, "10", "a", translate.KindNormal},
		{"large value", 64, "18446744073709551615", "ffffffffffffffff", translate.KindNormal},
		{"unknown bits echoed", 8, "1x0", "1x0", translate.KindWarn},
		{"high impedance echoed", 8, "zz1", "zz1", translate.KindWarn},
		{"empty echoed", 8, "", "", translate.KindWarn},
		{"garbage echoed", 8, "hello", "hello", translate.KindWarn},
	}

	var tr HexTranslator
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, kind := tr.BasicTranslate(tt.numBits, tt.raw)
			if value != tt.value || kind != tt.kind {
				t.Errorf("BasicTranslate(%d, %q) = (%q, %s), want (%q, %s)",
					tt.numBits, tt.raw, value, kind, tt.value, tt.kind)
			}
		})
	}
}

func TestHexTranslator_PaddingNeverTruncates(t *testing.T) {
	var tr HexTranslator
	value, kind := tr.BasicTranslate(4, "65535")
	if value != "ffff" || kind != translate.KindNormal {
		t.Errorf("got (%q, %s), want (%q, normal)", value, kind, "ffff")
	}
}

func TestUnsignedTranslator(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		value string
		kind  translate.ValueKind
	}{
		{"simple vector", "1010", "10", translate.KindNormal},
		{"single bit", "1", "1", translate.KindNormal},
		{"leading zeros", "00000001", "1", translate.KindNormal},
		{"unknown", "10x1", "UNDEF", translate.KindUndef},
		{"high impedance", "10z1", "HIGHIMP", translate.KindHighImp},
		{"both meta states", "xz", "UNDEF", translate.KindUndef},
		{"not a vector", "102", "102", translate.KindWarn},
		{"empty", "", "", translate.KindWarn},
	}

	var tr UnsignedTranslator
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, kind := tr.BasicTranslate(8, tt.raw)
			if value != tt.value || kind != tt.kind {
				t.Errorf("BasicTranslate(8, %q) = (%q, %s), want (%q, %s)",
					tt.raw, value, kind, tt.value, tt.kind)
			}
		})
	}
}

func TestBinaryTranslator(t *testing.T) {
	tests := []struct {
		name    string
		numBits int
		raw     string
		value   string
		kind    translate.ValueKind
	}{
		{"extends to width", 8, "101", "00000101", translate.KindNormal},
		{"already full width", 4, "1111", "1111", translate.KindNormal},
		{"unknown", 8, "1x", "UNDEF", translate.KindUndef},
		{"high impedance", 8, "1z", "HIGHIMP", translate.KindHighImp},
		{"garbage", 8, "2", "2", translate.KindWarn},
	}

	var tr BinaryTranslator
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, kind := tr.BasicTranslate(tt.numBits, tt.raw)
			if value != tt.value || kind != tt.kind {
				t.Errorf("BasicTranslate(%d, %q) = (%q, %s), want (%q, %s)",
					tt.numBits, tt.raw, value, kind, tt.value, tt.kind)
			}
		})
	}
}

func TestBasicAdapter(t *testing.T) {
	tr := translate.Basic(HexTranslator{}, 16)

	if tr.Name() != "Hexadecimal" {
		t.Errorf("Name() = %q", tr.Name())
	}
	if !tr.Translates("any.signal.at.all") {
		t.Error("basic translators accept every signal")
	}
	if info := tr.VariableInfo("sig"); info.Kind != translate.InfoBits {
		t.Errorf("VariableInfo kind = %v, want bits", info.Kind)
	}

	res, err := tr.Translate("sig", "10")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if res.Value != "000a" || res.Kind != translate.KindNormal {
		t.Errorf("Translate = (%q, %s), want (000a, normal)", res.Value, res.Kind)
	}
}
