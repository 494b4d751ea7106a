package plugin

import (
	"context"
	goerrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/wavescope/translate/errors"
)

// Smallest valid core module: magic + version, no sections. Instantiates
// fine but exports nothing.
var emptyModule = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

func TestLoadOracle_MissingFile(t *testing.T) {
	_, err := LoadOracle(context.Background(), filepath.Join(t.TempDir(), "missing.wasm"))
	if err == nil {
		t.Fatal("expected error for missing oracle file")
	}
	want := &errors.Error{Phase: errors.PhaseConstruct, Kind: errors.KindOracleUnavailable}
	if !goerrors.Is(err, want) {
		t.Errorf("error = %v, want construct/oracle_unavailable", err)
	}
}

func TestNewOracle_InvalidBinary(t *testing.T) {
	_, err := NewOracle(context.Background(), []byte("definitely not wasm"))
	if err == nil {
		t.Fatal("expected error for invalid module bytes")
	}
	want := &errors.Error{Phase: errors.PhaseConstruct, Kind: errors.KindOracleUnavailable}
	if !goerrors.Is(err, want) {
		t.Errorf("error = %v, want construct/oracle_unavailable", err)
	}
}

func TestNewOracle_MissingExports(t *testing.T) {
	_, err := NewOracle(context.Background(), emptyModule)
	if err == nil {
		t.Fatal("expected error for module without the oracle ABI")
	}
	want := &errors.Error{Phase: errors.PhaseConstruct, Kind: errors.KindMissingExport}
	if !goerrors.Is(err, want) {
		t.Errorf("error = %v, want construct/missing_export", err)
	}
}

func TestLoadOracle_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.wasm")
	if err := os.WriteFile(path, []byte{0xde, 0xad}, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadOracle(context.Background(), path)
	if err == nil {
		t.Fatal("expected error for truncated oracle file")
	}
	want := &errors.Error{Phase: errors.PhaseConstruct, Kind: errors.KindOracleUnavailable}
	if !goerrors.Is(err, want) {
		t.Errorf("error = %v, want construct/oracle_unavailable", err)
	}
}
