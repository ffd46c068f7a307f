package modeline

import "strings"

// The modeline grammar is scanned by hand instead of regular expressions:
// the reference grammar needs a capture group that exists only under the
// "vim" marker branch plus lookbehind for escape handling, neither of which
// RE2 supports. Three concerns are scanned explicitly: marker detection,
// version constraint, body extraction.

// versionGate is the parsed version constraint of a "vim<ver>:" marker.
// op is '<', '=' or '>', or 0 for the default "at least" comparison.
type versionGate struct {
	op  byte
	num int
}

// applies reports whether a modeline guarded by the gate applies to the
// given emulated vim version.
func (g versionGate) applies(emulated int) bool {
	switch g.op {
	case '>':
		return emulated > g.num
	case '=':
		return emulated == g.num
	case '<':
		return emulated < g.num
	default:
		return emulated >= g.num
	}
}

// scanModeline recognizes a modeline in line and returns its options-bearing
// span and version gate. The "set" form is tried over all anchors before the
// bare form, so that an unterminated "set" attempt is never misread as a
// bare modeline.
func scanModeline(line string) (body string, gate *versionGate, ok bool) {
	for at := 0; at < len(line); at++ {
		if at > 0 && !isSpace(line[at-1]) {
			continue
		}

		rest, g, ok := scanMarker(line, at)
		if !ok {
			continue
		}

		body, ok := scanSetBody(line, rest)
		if ok {
			return body, g, true
		}
	}

	for at := 0; at < len(line); at++ {
		if at > 0 && !isSpace(line[at-1]) {
			continue
		}

		rest, g, ok := scanMarker(line, at)
		if !ok {
			continue
		}

		i := skipSpace(line, rest)
		if hasSetWord(line, i) {
			// unterminated "set" form, not a bare modeline
			continue
		}

		return line[i:], g, true
	}

	return "", nil, false
}

// scanMarker matches "vi:", "vim:", "vim<ver>:" or "ex:" at position at and
// returns the position just past the colon. The caller guarantees that at is
// a valid anchor (start of line or after whitespace); "ex:" additionally
// requires at least one preceding character, so it never matches at the
// start of a line. Only "vim" accepts a version constraint.
func scanMarker(line string, at int) (next int, gate *versionGate, ok bool) {
	if strings.HasPrefix(line[at:], "ex:") {
		if at == 0 {
			return 0, nil, false
		}

		return at + 3, nil, true
	}

	if !strings.HasPrefix(line[at:], "vi") {
		return 0, nil, false
	}

	i := at + 2

	vim := false
	if i < len(line) && line[i] == 'm' {
		vim = true
		i++
	}

	if vim && i < len(line) && (line[i] == '<' || line[i] == '=' || line[i] == '>' || isDigit(line[i])) {
		g := &versionGate{}
		if line[i] == '<' || line[i] == '=' || line[i] == '>' {
			g.op = line[i]
			i++
		}

		for i < len(line) && isDigit(line[i]) {
			g.num = g.num*10 + int(line[i]-'0')
			i++
		}

		gate = g
	}

	if i >= len(line) || line[i] != ':' {
		return 0, nil, false
	}

	return i + 1, gate, true
}

// scanSetBody matches the "set" form after a marker: optional whitespace,
// "se" or "set", one mandatory whitespace character, then everything up to a
// mandatory unescaped ':'. Text after the terminator is ignored.
func scanSetBody(line string, at int) (string, bool) {
	i := skipSpace(line, at)
	if !strings.HasPrefix(line[i:], "se") {
		return "", false
	}

	i += 2
	if i < len(line) && line[i] == 't' {
		i++
	}

	if i >= len(line) || !isSpace(line[i]) {
		return "", false
	}

	i++

	for j := i; j < len(line); j++ {
		if line[j] == ':' && line[j-1] != '\\' {
			return line[i:j], true
		}
	}

	return "", false
}

// hasSetWord reports whether line begins with "se" or "set" followed by
// whitespace at position at. This is the bare form's negative lookahead.
func hasSetWord(line string, at int) bool {
	if !strings.HasPrefix(line[at:], "se") {
		return false
	}

	i := at + 2
	if i < len(line) && line[i] == 't' {
		i++
	}

	return i < len(line) && isSpace(line[i])
}

// splitOptions splits an options span on runs of whitespace and/or ':' not
// immediately preceded by a backslash. Empty tokens are dropped.
func splitOptions(body string) []string {
	var tokens []string

	start := 0

	for i := 0; i < len(body); {
		if isSeparator(body[i]) && (i == 0 || body[i-1] != '\\') {
			if i > start {
				tokens = append(tokens, body[start:i])
			}

			i++
			for i < len(body) && isSeparator(body[i]) {
				i++
			}

			start = i
		} else {
			i++
		}
	}

	if start < len(body) {
		tokens = append(tokens, body[start:])
	}

	return tokens
}

// splitAssignment splits a token at its first unescaped '='. hasValue is
// false for tokens with no '=' at all.
func splitAssignment(token string) (name, value string, hasValue bool) {
	for i := 0; i < len(token); i++ {
		if token[i] == '=' && (i == 0 || token[i-1] != '\\') {
			return token[:i], token[i+1:], true
		}
	}

	return token, "", false
}

// unescapeValue removes the backslash from escaped separator sequences
// ("\:", "\ " and friends) in a token value.
func unescapeValue(value string) string {
	if !strings.Contains(value, `\`) {
		return value
	}

	var b strings.Builder

	b.Grow(len(value))

	for i := 0; i < len(value); i++ {
		if value[i] == '\\' && i+1 < len(value) && isSeparator(value[i+1]) {
			continue
		}

		b.WriteByte(value[i])
	}

	return b.String()
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	return i
}

func isSeparator(c byte) bool {
	return c == ':' || isSpace(c)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
