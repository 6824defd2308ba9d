package validator

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "piquet.toml")
	writeFile(t, good, `
id = "piquet"
name = "Piquet"
packs = 1
stripped_ranks = ["two", "three", "four", "five", "six"]
`)

	v := NewValidator(good)
	results, err := v.Validate()
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if len(results.Errors) != 0 {
		t.Errorf("expected no errors, got %v", results.Errors)
	}
}

func TestValidateFileProblems(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	writeFile(t, bad, `
id = "mismatch"
packs = 0
stripped_ranks = ["eleven"]
`)

	v := NewValidator(bad)
	results, err := v.Validate()
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	// Missing name, zero packs, unknown rank
	if len(results.Errors) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(results.Errors), results.Errors)
	}
	// ID not matching filename
	if len(results.Warnings) != 1 {
		t.Errorf("expected 1 warning, got %d: %v", len(results.Warnings), results.Warnings)
	}
}

func TestValidateLibrary(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "euchre.toml"), `
id = "euchre"
name = "Euchre"
packs = 1
stripped_ranks = ["two", "three", "four", "five", "six", "seven", "eight"]
`)
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a variant")
	writeFile(t, filepath.Join(dir, "broken.toml"), "packs = [not toml")

	v := NewValidator(dir)
	results, err := v.Validate()
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if len(results.Errors) != 1 {
		t.Errorf("expected 1 error for broken.toml, got %d: %v", len(results.Errors), results.Errors)
	}
	if len(results.Warnings) != 1 {
		t.Errorf("expected 1 warning for notes.txt, got %d: %v", len(results.Warnings), results.Warnings)
	}
}

func TestValidateMissingPath(t *testing.T) {
	v := NewValidator(filepath.Join(t.TempDir(), "nope"))
	if _, err := v.Validate(); err == nil {
		t.Error("expected error for missing path")
	}
}
