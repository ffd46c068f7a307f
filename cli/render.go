package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/shibukawa/modeline"
)

// renderResult writes one parse result. The text format prints a colored
// header (when name is non-empty) followed by one "name = value" line per
// option; the json format emits an indented object.
func renderResult(w io.Writer, name string, set *modeline.OptionSet, format string) error {
	if format == "json" {
		payload := struct {
			File    string              `json:"file,omitempty"`
			Options *modeline.OptionSet `json:"options"`
		}{File: name, Options: set}

		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, string(data))

		return err
	}

	if name != "" {
		header := color.New(color.FgBlue, color.Bold)

		_, err := header.Fprintln(w, name)
		if err != nil {
			return err
		}
	}

	for _, optName := range set.Names() {
		value, _ := set.Get(optName)

		_, err := fmt.Fprintf(w, "  %s = %v\n", optName, value)
		if err != nil {
			return err
		}
	}

	return nil
}
