package modeline

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/shibukawa/modeline/vimoption"
)

// OptionSet is the result of a parse call: a mapping from canonical option
// names to their values. Values are bool for boolean options and string
// otherwise. A set built with an option table resolves aliases and enforces
// value kinds on every access; a set without a table (permissive mode)
// stores raw names and values as given.
type OptionSet struct {
	table  *vimoption.Table
	values map[string]any
}

// NewOptionSet creates an empty option set. A nil table selects permissive
// behavior: no name resolution and no kind checking.
func NewOptionSet(table *vimoption.Table) *OptionSet {
	return &OptionSet{
		table:  table,
		values: map[string]any{},
	}
}

// Set stores an option given with an explicit value. With a table the name
// is resolved first and must denote a string-kind option; a boolean option
// with an explicit value is rejected with ErrBooleanValueConflict.
func (s *OptionSet) Set(name, value string) error {
	if s.table == nil {
		s.values[name] = value

		return nil
	}

	res, err := s.table.Resolve(name)
	if err != nil {
		return err
	}

	if res.Kind == vimoption.Boolean {
		return fmt.Errorf("%w: %s=%s", ErrBooleanValueConflict, name, value)
	}

	s.values[res.Name] = value

	return nil
}

// SetFlag stores an option given without a value. With a table the name must
// denote a boolean option and the stored value honors the "no" prefix; a
// string-kind option without a value is rejected with ErrMissingValue.
// Without a table the name maps to a bare true sentinel.
func (s *OptionSet) SetFlag(name string) error {
	if s.table == nil {
		s.values[name] = true

		return nil
	}

	res, err := s.table.Resolve(name)
	if err != nil {
		return err
	}

	if res.Kind != vimoption.Boolean {
		return fmt.Errorf("%w: %s", ErrMissingValue, name)
	}

	s.values[res.Name] = !res.Negated

	return nil
}

// Get returns the value stored for name. With a table the name may be an
// abbreviation; it is resolved to its canonical form first.
func (s *OptionSet) Get(name string) (any, bool) {
	value, ok := s.values[s.canonical(name)]

	return value, ok
}

// Bool returns the value for name if it is boolean-valued.
func (s *OptionSet) Bool(name string) (bool, bool) {
	value, ok := s.Get(name)
	if !ok {
		return false, false
	}

	b, ok := value.(bool)

	return b, ok
}

// String returns the value for name if it is string-valued.
func (s *OptionSet) String(name string) (string, bool) {
	value, ok := s.Get(name)
	if !ok {
		return "", false
	}

	str, ok := value.(string)

	return str, ok
}

// Has reports whether name is present in the set.
func (s *OptionSet) Has(name string) bool {
	_, ok := s.Get(name)

	return ok
}

// Len returns the number of options in the set.
func (s *OptionSet) Len() int {
	return len(s.values)
}

// Names returns the option names in the set, sorted.
func (s *OptionSet) Names() []string {
	return slices.Sorted(maps.Keys(s.values))
}

// Map returns a copy of the underlying name-to-value mapping.
func (s *OptionSet) Map() map[string]any {
	return maps.Clone(s.values)
}

// Merge copies all entries of other into s, overwriting on collision.
func (s *OptionSet) Merge(other *OptionSet) {
	if other == nil {
		return
	}

	maps.Copy(s.values, other.values)
}

// MarshalJSON encodes the set as a plain JSON object with sorted keys.
func (s *OptionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.values)
}

func (s *OptionSet) canonical(name string) string {
	if s.table == nil {
		return name
	}

	if res, err := s.table.Resolve(name); err == nil {
		return res.Name
	}

	return name
}
