package modeline

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestScanModeline(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantBody string
		wantOK   bool
	}{
		{"vi at start", "vi:ts=4", "ts=4", true},
		{"vim after whitespace", "code // vim:ts=4", "ts=4", true},
		{"optional whitespace after colon", "vi: \tts=4", "ts=4", true},
		{"no anchor before marker", "#vim:ts=4", "", false},
		{"ex needs preceding whitespace", "ex:ts=4", "", false},
		{"ex after whitespace", " ex:ts=4", "ts=4", true},
		{"set form body excludes terminator and tail", "vim:set ts=4 sw=2 : tail", "ts=4 sw=2 ", true},
		{"se form", "vim:se ts=4:", "ts=4", true},
		{"set without mandatory whitespace", "vim:set", "", false},
		{"set without terminator", "vim:set ts=4", "", false},
		{"se prefix of an option name is bare form", "vim:sessionoptions=blank", "sessionoptions=blank", true},
		{"escaped colon does not terminate set body", `vim:set dir=a\:b :`, `dir=a\:b `, true},
		{"later set form wins over earlier bare candidate", "a vi:x b vim:set ts=4 :", "ts=4 ", true},
		{"trailing garbage after marker word", "vimx:ts=4", "", false},
		{"empty body in bare form", "vi:", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _, ok := scanModeline(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestScanMarkerVersionConstraint(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantGate *versionGate
		wantOK   bool
	}{
		{"no constraint", "vim:x", nil, true},
		{"bare digits", "vim700:x", &versionGate{num: 700}, true},
		{"greater", "vim>700:x", &versionGate{op: '>', num: 700}, true},
		{"less", "vim<700:x", &versionGate{op: '<', num: 700}, true},
		{"equal", "vim=700:x", &versionGate{op: '=', num: 700}, true},
		{"operator without digits", "vim>:x", &versionGate{op: '>'}, true},
		{"vi rejects constraint", "vi>700:x", nil, false},
		{"constraint without colon", "vim>700", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, gate, ok := scanMarker(tt.line, 0)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantGate, gate)
		})
	}
}

func TestVersionGateApplies(t *testing.T) {
	tests := []struct {
		name     string
		gate     versionGate
		emulated int
		want     bool
	}{
		{"default is at-least, equal", versionGate{num: 700}, 700, true},
		{"default is at-least, above", versionGate{num: 700}, 730, true},
		{"default is at-least, below", versionGate{num: 700}, 699, false},
		{"greater excludes equal", versionGate{op: '>', num: 700}, 700, false},
		{"greater", versionGate{op: '>', num: 700}, 701, true},
		{"less excludes equal", versionGate{op: '<', num: 700}, 700, false},
		{"less", versionGate{op: '<', num: 700}, 699, true},
		{"equal", versionGate{op: '=', num: 700}, 700, true},
		{"equal excludes others", versionGate{op: '=', num: 700}, 701, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.gate.applies(tt.emulated))
		})
	}
}

func TestSplitOptions(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{"colon separated", "a=1:b=2", []string{"a=1", "b=2"}},
		{"whitespace separated", "a=1 \tb=2", []string{"a=1", "b=2"}},
		{"mixed run collapses", "a=1 : :b=2", []string{"a=1", "b=2"}},
		{"escaped colon stays in token", `a=x\:y:b=2`, []string{`a=x\:y`, "b=2"}},
		{"escaped space stays in token", `a=x\ y b=2`, []string{`a=x\ y`, "b=2"}},
		{"leading and trailing separators", ":a=1:", []string{"a=1"}},
		{"empty body", "", nil},
		{"separators only", " ::\t", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitOptions(tt.body))
		})
	}
}

func TestSplitAssignment(t *testing.T) {
	tests := []struct {
		name         string
		token        string
		wantName     string
		wantValue    string
		wantHasValue bool
	}{
		{"plain assignment", "ts=4", "ts", "4", true},
		{"splits only once", "fde=a=b", "fde", "a=b", true},
		{"no value", "ai", "ai", "", false},
		{"empty value", "ts=", "ts", "", true},
		{"leading equals yields empty name", "=4", "", "4", true},
		{"escaped equals is not a split point", `a\=b=c`, `a\=b`, "c", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, value, hasValue := splitAssignment(tt.token)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantValue, value)
			assert.Equal(t, tt.wantHasValue, hasValue)
		})
	}
}

func TestUnescapeValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"no escapes", "plain", "plain"},
		{"escaped colon", `a\:b`, "a:b"},
		{"escaped space", `a\ b`, "a b"},
		{"escaped tab", "a\\\tb", "a\tb"},
		{"backslash before ordinary char is kept", `a\b`, `a\b`},
		{"trailing backslash is kept", `a\`, `a\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, unescapeValue(tt.value))
		})
	}
}
