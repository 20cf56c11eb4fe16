package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_CreatesNewArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("archive file was not created")
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	for i := 0; i < 3; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("Open() iteration %d failed: %v", i, err)
		}
		s.Close()
	}
}

func TestOpen_SchemaApplied(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count); err != nil {
		t.Errorf("runs table missing: %v", err)
	}
	if err := s.db.QueryRow("SELECT COUNT(*) FROM tuples").Scan(&count); err != nil {
		t.Errorf("tuples table missing: %v", err)
	}
}

func TestRunIDGenerators(t *testing.T) {
	fixed := FixedGenerator{ID: "run-fixed"}
	if got := fixed.Generate(); got != "run-fixed" {
		t.Errorf("FixedGenerator.Generate() = %q, want %q", got, "run-fixed")
	}

	gen := UUIDv7Generator{}
	first := gen.Generate()
	second := gen.Generate()
	if first == "" || second == "" {
		t.Fatal("UUIDv7Generator returned empty ID")
	}
	if first == second {
		t.Errorf("UUIDv7Generator returned duplicate IDs: %q", first)
	}
}
