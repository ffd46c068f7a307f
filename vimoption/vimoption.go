// Package vimoption resolves raw vim option names, as they appear inside
// modelines, to their canonical identity and value kind.
package vimoption

import (
	"errors"
	"fmt"
	"strings"
)

// Resolver errors
var (
	// ErrInvalidOption is returned when a name does not resolve to any known option.
	ErrInvalidOption = errors.New("unknown vim option")
	// ErrEmptyName is returned when a table entry has an empty option name.
	ErrEmptyName = errors.New("option name must not be empty")
	// ErrAliasTarget is returned when an alias points at an option missing from the name set.
	ErrAliasTarget = errors.New("alias target is not a known option")
	// ErrBooleanName is returned when a boolean entry names an option missing from the name set.
	ErrBooleanName = errors.New("boolean entry is not a known option")
	// ErrInvalidTable is returned when an option table document cannot be decoded.
	ErrInvalidTable = errors.New("invalid option table")
)

// Kind classifies how an option's value is typed.
type Kind int

const (
	// String options carry an explicit =value in a modeline.
	String Kind = iota
	// Boolean options are set by presence and cleared with a "no" prefix.
	Boolean
)

func (k Kind) String() string {
	if k == Boolean {
		return "boolean"
	}

	return "string"
}

// Resolution is the result of resolving a raw option name.
type Resolution struct {
	// Name is the canonical long-form option name.
	Name string
	// Kind declares how the option's value is typed.
	Kind Kind
	// Negated reports whether the raw name carried the "no" prefix.
	// It is meaningful only for boolean options.
	Negated bool
}

// Table holds the three inputs of an option mapping table: the set of valid
// long names, the short-to-long alias map, and the set of boolean-valued
// names. Tables are immutable after construction and safe for concurrent use.
type Table struct {
	version  int
	names    map[string]struct{}
	aliases  map[string]string
	booleans map[string]struct{}
}

// NewTable builds a table from its three inputs. Alias targets and boolean
// entries must be members of names; duplicates in names are tolerated.
func NewTable(names []string, aliases map[string]string, booleans []string) (*Table, error) {
	t := &Table{
		names:    make(map[string]struct{}, len(names)),
		aliases:  make(map[string]string, len(aliases)),
		booleans: make(map[string]struct{}, len(booleans)),
	}

	for _, name := range names {
		if name == "" {
			return nil, ErrEmptyName
		}

		t.names[name] = struct{}{}
	}

	for short, long := range aliases {
		if short == "" {
			return nil, fmt.Errorf("%w: alias for %q", ErrEmptyName, long)
		}

		if _, ok := t.names[long]; !ok {
			return nil, fmt.Errorf("%w: %s -> %s", ErrAliasTarget, short, long)
		}

		t.aliases[short] = long
	}

	for _, name := range booleans {
		if _, ok := t.names[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrBooleanName, name)
		}

		t.booleans[name] = struct{}{}
	}

	return t, nil
}

// Version returns the vim version the table was built from, or 0 if the
// table does not declare one.
func (t *Table) Version() int {
	return t.version
}

// Len returns the number of known long option names.
func (t *Table) Len() int {
	return len(t.names)
}

// Resolve maps a raw option name to its canonical identity. A leading "no"
// prefix is stripped and recorded as negation, then the name is mapped
// through the alias table and checked against the long-name set.
func (t *Table) Resolve(raw string) (Resolution, error) {
	var res Resolution

	name := raw
	if strings.HasPrefix(name, "no") {
		name = name[2:]
		res.Negated = true
	}

	if long, ok := t.aliases[name]; ok {
		name = long
	}

	if _, ok := t.names[name]; !ok {
		return Resolution{}, fmt.Errorf("%w: %q", ErrInvalidOption, raw)
	}

	res.Name = name
	if _, ok := t.booleans[name]; ok {
		res.Kind = Boolean
	}

	return res, nil
}
