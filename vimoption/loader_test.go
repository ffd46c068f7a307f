package vimoption

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

const sampleTable = `version: 730
options:
  - name: autoindent
    short: ai
    boolean: true
  - name: syntax
    short: syn
  - name: bomb
    boolean: true
`

func TestParseTable(t *testing.T) {
	table, err := Parse([]byte(sampleTable))
	assert.NoError(t, err)
	assert.Equal(t, 730, table.Version())
	assert.Equal(t, 3, table.Len())

	res, err := table.Resolve("noai")
	assert.NoError(t, err)
	assert.Equal(t, Resolution{Name: "autoindent", Kind: Boolean, Negated: true}, res)

	res, err = table.Resolve("syn")
	assert.NoError(t, err)
	assert.Equal(t, Resolution{Name: "syntax", Kind: String}, res)

	// Entries without a short form have no alias.
	res, err = table.Resolve("bomb")
	assert.NoError(t, err)
	assert.Equal(t, Boolean, res.Kind)
}

func TestParseTableWithoutVersion(t *testing.T) {
	table, err := Parse([]byte("options:\n  - name: syntax\n"))
	assert.NoError(t, err)
	assert.Equal(t, 0, table.Version())
}

func TestParseTableErrors(t *testing.T) {
	t.Run("unknown field rejected by strict mode", func(t *testing.T) {
		_, err := Parse([]byte("version: 730\noptions:\n  - name: syntax\n    flavor: spicy\n"))
		assert.IsError(t, err, ErrInvalidTable)
	})

	t.Run("no options", func(t *testing.T) {
		_, err := Parse([]byte("version: 730\n"))
		assert.IsError(t, err, ErrInvalidTable)
	})

	t.Run("empty option name", func(t *testing.T) {
		_, err := Parse([]byte("options:\n  - short: ai\n"))
		assert.IsError(t, err, ErrInvalidTable)
		assert.IsError(t, err, ErrEmptyName)
	})

	t.Run("not yaml", func(t *testing.T) {
		_, err := Parse([]byte("{{{"))
		assert.IsError(t, err, ErrInvalidTable)
	})
}

func TestLoadTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(sampleTable), 0o644))

	table, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 730, table.Version())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
