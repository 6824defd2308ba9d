package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/croupier/internal/variant"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator checks a variant library directory, or a single variant
// file, for problems.
type Validator struct {
	Path    string
	Results ValidationResults
}

func NewValidator(path string) *Validator {
	return &Validator{
		Path:    path,
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	info, err := os.Stat(v.Path)
	if os.IsNotExist(err) {
		return v.Results, fmt.Errorf("path not found: %s", v.Path)
	}
	if err != nil {
		return v.Results, err
	}

	if info.IsDir() {
		if err := v.validateLibrary(); err != nil {
			return v.Results, err
		}
	} else {
		v.validateVariantFile(v.Path)
	}

	return v.Results, nil
}

func (v *Validator) validateLibrary() error {
	entries, err := os.ReadDir(v.Path)
	if err != nil {
		return fmt.Errorf("error reading variant library: %v", err)
	}

	found := 0
	for _, entry := range entries {
		if entry.IsDir() {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("unexpected directory in variant library: %s", entry.Name()))
			continue
		}
		if filepath.Ext(entry.Name()) != ".toml" {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("ignoring non-TOML file: %s", entry.Name()))
			continue
		}
		v.validateVariantFile(filepath.Join(v.Path, entry.Name()))
		found++
	}

	if found == 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			"variant library contains no variant files")
	}

	return nil
}

func (v *Validator) validateVariantFile(path string) {
	name := filepath.Base(path)

	var def variant.Variant
	if _, err := toml.DecodeFile(path, &def); err != nil {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("%s: error parsing TOML: %v", name, err))
		return
	}

	if def.ID == "" {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s: id is not set, will default to filename", name))
	} else if def.ID != strings.TrimSuffix(name, ".toml") {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s: id %q does not match filename", name, def.ID))
	}

	if def.Name == "" {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("%s: name is required", name))
	}

	for _, problem := range def.Validate() {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("%s: %s", name, problem))
	}
}
