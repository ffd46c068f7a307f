// Package modeline parses vim modelines: directive lines embedded in text
// files that declare editor options (syntax, indentation, encoding and so
// on) for that file.
//
// Two modeline forms exist. The bare form lists colon- or space-separated
// key=value pairs after a "vi:", "vim:" or "ex:" marker:
//
//	// vim:syntax=go:textwidth=100
//
// The "set" form wraps the options in "set ... :" with a mandatory trailing
// terminator:
//
//	/* vim:set syntax=go textwidth=100 : */
//
// A "vim" marker may carry a version constraint ("vim>700:") restricting the
// modeline to a range of emulated vim versions. Option names are resolved
// against an option table (see package vimoption) which canonicalizes
// abbreviations, handles "no"-prefixed negation and declares whether an
// option is boolean- or string-valued.
package modeline

import (
	"fmt"

	"github.com/shibukawa/modeline/vimoption"
)

// Configuration defaults
const (
	// DefaultModelines is the number of lines checked at each end of a buffer.
	DefaultModelines = 5
	// DefaultVimVersion is the emulated vim version when neither the parser
	// nor its option table declares one.
	DefaultVimVersion = 730
)

// Parser recognizes modelines in single lines or whole buffers. It is
// immutable after construction and safe for concurrent use.
type Parser struct {
	modelines  int
	version    int
	versionSet bool
	table      *vimoption.Table
	permissive bool
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithModelines sets how many lines are checked at the beginning and at the
// end of a buffer. Zero or negative disables buffer scanning.
func WithModelines(n int) ParserOption {
	return func(p *Parser) {
		p.modelines = n
	}
}

// WithVimVersion sets the emulated vim version used to evaluate version
// constraints. It overrides the option table's version.
func WithVimVersion(version int) ParserOption {
	return func(p *Parser) {
		p.version = version
		p.versionSet = true
	}
}

// WithTable sets the option table used to resolve option names. The default
// is vimoption.Default().
func WithTable(table *vimoption.Table) ParserOption {
	return func(p *Parser) {
		p.table = table
	}
}

// WithPermissive selects permissive mode: option names are not resolved
// against the table, values are stored as given (true when absent), and
// malformed tokens never produce errors.
func WithPermissive(permissive bool) ParserOption {
	return func(p *Parser) {
		p.permissive = permissive
	}
}

// NewParser creates a parser. Without options it checks 5 lines at each end
// of a buffer, resolves names against the built-in vim 7.3 table and
// emulates the table's vim version.
func NewParser(options ...ParserOption) *Parser {
	p := &Parser{
		modelines: DefaultModelines,
		table:     vimoption.Default(),
	}

	for _, opt := range options {
		opt(p)
	}

	if !p.versionSet {
		if v := p.table.Version(); v > 0 {
			p.version = v
		} else {
			p.version = DefaultVimVersion
		}
	}

	return p
}

// Modelines returns the configured buffer window size.
func (p *Parser) Modelines() int {
	return p.modelines
}

// VimVersion returns the emulated vim version.
func (p *Parser) VimVersion() int {
	return p.version
}

// Permissive reports whether the parser runs in permissive mode.
func (p *Parser) Permissive() bool {
	return p.permissive
}

// ParseLine parses a single line for a modeline. Lines that are not
// modelines, and modelines whose version gate does not apply, yield an empty
// set without error. In typed mode the first malformed token aborts the
// parse with an error.
func (p *Parser) ParseLine(line string) (*OptionSet, error) {
	result := p.newResult()

	body, gate, ok := scanModeline(line)
	if !ok {
		return result, nil
	}

	if gate != nil && !gate.applies(p.version) {
		return result, nil
	}

	for _, token := range splitOptions(body) {
		name, value, hasValue := splitAssignment(token)
		if name == "" {
			continue
		}

		var err error
		if hasValue {
			err = result.Set(name, unescapeValue(value))
		} else {
			err = result.SetFlag(name)
		}

		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// ParseBuffer parses the modelines of a whole buffer: the first Modelines()
// lines and the last Modelines() lines, merged with later lines winning on
// duplicate options. The windows may overlap on short buffers; reparsing a
// line is idempotent. In typed mode the first line-level error aborts the
// whole parse, wrapped with its 1-based line number.
func (p *Parser) ParseBuffer(buf string) (*OptionSet, error) {
	result := p.newResult()
	if p.modelines <= 0 {
		return result, nil
	}

	lines := splitLines(buf)

	head := min(p.modelines, len(lines))
	for i := range head {
		if err := p.mergeLine(result, lines[i], i+1); err != nil {
			return nil, err
		}
	}

	for i := max(len(lines)-p.modelines, 0); i < len(lines); i++ {
		if err := p.mergeLine(result, lines[i], i+1); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (p *Parser) mergeLine(result *OptionSet, line string, lineNo int) error {
	set, err := p.ParseLine(line)
	if err != nil {
		return fmt.Errorf("line %d: %w", lineNo, err)
	}

	result.Merge(set)

	return nil
}

func (p *Parser) newResult() *OptionSet {
	if p.permissive {
		return NewOptionSet(nil)
	}

	return NewOptionSet(p.table)
}

// splitLines splits on "\n", "\r\n" and lone "\r". A final line without a
// terminator is included; a trailing terminator does not produce an empty
// last line.
func splitLines(buf string) []string {
	var lines []string

	start := 0

	for i := 0; i < len(buf); i++ {
		switch buf[i] {
		case '\n':
			lines = append(lines, buf[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, buf[start:i])

			if i+1 < len(buf) && buf[i+1] == '\n' {
				i++
			}

			start = i + 1
		}
	}

	if start < len(buf) {
		lines = append(lines, buf[start:])
	}

	return lines
}
