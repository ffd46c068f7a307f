package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
)

// ErrScanFailed is returned when at least one scanned file could not be parsed.
var ErrScanFailed = errors.New("scan failed")

// ScanCmd represents the scan command
type ScanCmd struct {
	Paths  []string `arg:"" help:"Files to scan for modelines" type:"existingfile"`
	Format string   `help:"Output format" default:"text" enum:"text,json"`
}

// Run executes the scan command
func (cmd *ScanCmd) Run(ctx *Context) error {
	parser, err := buildParser(ctx)
	if err != nil {
		return err
	}

	if ctx.Verbose {
		color.Blue("Scanning %d files (vim version %d, window %d)", len(cmd.Paths), parser.VimVersion(), parser.Modelines())
	}

	failed := 0

	for _, path := range cmd.Paths {
		data, err := os.ReadFile(path)
		if err != nil {
			color.Red("%s: %v", path, err)

			failed++

			continue
		}

		set, err := parser.ParseBuffer(string(data))
		if err != nil {
			color.Red("%s: %v", path, err)

			failed++

			continue
		}

		if set.Len() == 0 {
			if ctx.Verbose {
				fmt.Printf("%s: no modeline\n", path)
			}

			continue
		}

		if !ctx.Quiet {
			err = renderResult(os.Stdout, path, set, cmd.Format)
			if err != nil {
				return err
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrScanFailed, failed, len(cmd.Paths))
	}

	return nil
}
