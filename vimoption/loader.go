package vimoption

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// tableDocument is the YAML shape of an embedder-supplied option table.
type tableDocument struct {
	Version int           `yaml:"version"`
	Options []tableOption `yaml:"options"`
}

type tableOption struct {
	Name    string `yaml:"name"`
	Short   string `yaml:"short"`
	Boolean bool   `yaml:"boolean"`
}

// Load reads an option table document from a YAML file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read option table: %w", err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// Parse decodes an option table document:
//
//	version: 730
//	options:
//	  - name: autoindent
//	    short: ai
//	    boolean: true
//	  - name: syntax
//	    short: syn
//
// Unknown fields are rejected (strict mode).
func Parse(data []byte) (*Table, error) {
	var doc tableDocument

	err := yaml.UnmarshalWithOptions(data, &doc, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}

	if len(doc.Options) == 0 {
		return nil, fmt.Errorf("%w: no options defined", ErrInvalidTable)
	}

	names := make([]string, 0, len(doc.Options))
	aliases := make(map[string]string, len(doc.Options))
	booleans := make([]string, 0, len(doc.Options))

	for _, o := range doc.Options {
		names = append(names, o.Name)
		if o.Short != "" {
			aliases[o.Short] = o.Name
		}

		if o.Boolean {
			booleans = append(booleans, o.Name)
		}
	}

	t, err := NewTable(names, aliases, booleans)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}

	t.version = doc.Version

	return t, nil
}
