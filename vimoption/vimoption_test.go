package vimoption

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTableResolve(t *testing.T) {
	table := Default()

	tests := []struct {
		name string
		raw  string
		want Resolution
	}{
		{"long name", "syntax", Resolution{Name: "syntax", Kind: String}},
		{"alias", "syn", Resolution{Name: "syntax", Kind: String}},
		{"boolean long name", "autoindent", Resolution{Name: "autoindent", Kind: Boolean}},
		{"boolean alias", "ai", Resolution{Name: "autoindent", Kind: Boolean}},
		{"negated alias", "noai", Resolution{Name: "autoindent", Kind: Boolean, Negated: true}},
		{"negated long name", "nonumber", Resolution{Name: "number", Kind: Boolean, Negated: true}},
		{"negated string option", "nosyntax", Resolution{Name: "syntax", Kind: String, Negated: true}},
		{"marker-colliding alias vi", "vi", Resolution{Name: "viminfo", Kind: String}},
		{"marker-colliding alias ex", "ex", Resolution{Name: "exrc", Kind: Boolean}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.Resolve(tt.raw)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTableResolveUnknown(t *testing.T) {
	table := Default()

	for _, raw := range []string{"nosuchoption", "", "no", "syntaxx"} {
		_, err := table.Resolve(raw)
		assert.IsError(t, err, ErrInvalidOption)
	}

	// The raw name, not the normalized one, is reported.
	_, err := table.Resolve("nofrobnicate")
	assert.IsError(t, err, ErrInvalidOption)
	assert.Contains(t, err.Error(), `"nofrobnicate"`)
}

func TestNewTable(t *testing.T) {
	table, err := NewTable(
		[]string{"syntax", "autoindent"},
		map[string]string{"syn": "syntax", "ai": "autoindent"},
		[]string{"autoindent"},
	)
	assert.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, 0, table.Version())

	res, err := table.Resolve("noai")
	assert.NoError(t, err)
	assert.Equal(t, Resolution{Name: "autoindent", Kind: Boolean, Negated: true}, res)
}

func TestNewTableValidation(t *testing.T) {
	_, err := NewTable([]string{""}, nil, nil)
	assert.IsError(t, err, ErrEmptyName)

	_, err = NewTable([]string{"syntax"}, map[string]string{"": "syntax"}, nil)
	assert.IsError(t, err, ErrEmptyName)

	_, err = NewTable([]string{"syntax"}, map[string]string{"ai": "autoindent"}, nil)
	assert.IsError(t, err, ErrAliasTarget)

	_, err = NewTable([]string{"syntax"}, nil, []string{"autoindent"})
	assert.IsError(t, err, ErrBooleanName)

	// Duplicate names collapse into set semantics.
	table, err := NewTable([]string{"syntax", "syntax"}, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, table.Len())
}

func TestDefaultTable(t *testing.T) {
	table := Default()

	assert.Equal(t, 730, table.Version())
	assert.True(t, table.Len() > 250)

	// Same instance on repeated calls.
	assert.True(t, table == Default())

	// Spot checks of entries the grammar tests lean on.
	booleans := []string{"autoindent", "allowrevins", "expandtab", "number", "wrap", "modeline"}
	for _, name := range booleans {
		res, err := table.Resolve(name)
		assert.NoError(t, err)
		assert.Equal(t, Boolean, res.Kind)
	}

	strings := []string{"syntax", "fileencoding", "filetype", "textwidth", "tabstop", "shiftwidth", "directory", "makeprg", "modelines"}
	for _, name := range strings {
		res, err := table.Resolve(name)
		assert.NoError(t, err)
		assert.Equal(t, String, res.Kind)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "string", String.String())
	assert.Equal(t, "boolean", Boolean.String())
}
