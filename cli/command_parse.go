package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/shibukawa/modeline"
)

// ParseCmd represents the parse command
type ParseCmd struct {
	Line   string `arg:"" optional:"" help:"Line to parse (default: read a buffer from stdin)"`
	Format string `help:"Output format" default:"text" enum:"text,json"`
}

// Run executes the parse command
func (cmd *ParseCmd) Run(ctx *Context) error {
	parser, err := buildParser(ctx)
	if err != nil {
		return err
	}

	var set *modeline.OptionSet

	if cmd.Line != "" {
		set, err = parser.ParseLine(cmd.Line)
	} else {
		var input []byte

		input, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		set, err = parser.ParseBuffer(string(input))
	}

	if err != nil {
		return err
	}

	if set.Len() == 0 {
		if !ctx.Quiet {
			fmt.Println("no modeline found")
		}

		return nil
	}

	if ctx.Quiet {
		return nil
	}

	return renderResult(os.Stdout, "", set, cmd.Format)
}
