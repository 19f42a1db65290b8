package export

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides tweaks a table layout per screen without recompiling.
// Keys are the built-in column headers.
type Overrides struct {
	Title  string            `yaml:"title"`
	Hide   []string          `yaml:"hide"`
	Rename map[string]string `yaml:"rename"`
}

// OverrideFile maps a screen name to its overrides.
type OverrideFile map[string]Overrides

// LoadOverrides reads an override file. A missing file is not an
// error; exports then use the built-in layouts.
func LoadOverrides(path string) (OverrideFile, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return OverrideFile{}, nil
	}
	if err != nil {
		return nil, err
	}
	var f OverrideFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse column overrides %s: %w", path, err)
	}
	return f, nil
}

// Apply returns a copy of t with the overrides for screen applied.
// Unknown hide or rename keys are ignored.
func (f OverrideFile) Apply(screen string, t Table[any]) Table[any] {
	return applyOverrides(f, screen, t)
}

// ApplyTo is the generic form of Apply.
func ApplyTo[T any](f OverrideFile, screen string, t Table[T]) Table[T] {
	return applyOverrides(f, screen, t)
}

func applyOverrides[T any](f OverrideFile, screen string, t Table[T]) Table[T] {
	ov, ok := f[screen]
	if !ok {
		return t
	}
	out := Table[T]{Title: t.Title}
	if ov.Title != "" {
		out.Title = ov.Title
	}
	hidden := make(map[string]bool, len(ov.Hide))
	for _, h := range ov.Hide {
		hidden[h] = true
	}
	for _, col := range t.Columns {
		if hidden[col.Header] {
			continue
		}
		if name, ok := ov.Rename[col.Header]; ok {
			col.Header = name
		}
		out.Columns = append(out.Columns, col)
	}
	return out
}
