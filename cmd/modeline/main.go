package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/shibukawa/modeline/cli"
)

// CLI represents the command-line interface
var CLI struct {
	Config     string       `help:"Configuration file path" default:"modeline.yaml"`
	Verbose    bool         `help:"Enable verbose output" short:"v"`
	Quiet      bool         `help:"Suppress output" short:"q"`
	Permissive bool         `help:"Parse without option-table validation"`
	VimVersion *int         `help:"Emulated vim version for versioned modelines"`
	Modelines  *int         `help:"Number of lines checked at each end of a buffer"`
	Table      string       `help:"Custom option table file (YAML)" type:"path"`
	Scan       cli.ScanCmd  `cmd:"" help:"Scan files for modelines"`
	Parse      cli.ParseCmd `cmd:"" help:"Parse a single line or stdin"`
	Version    VersionCmd   `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run() error {
	fmt.Println("modeline v0.1.0")
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)

	// Create context with global flags
	appCtx := &cli.Context{
		Config:     CLI.Config,
		Verbose:    CLI.Verbose,
		Quiet:      CLI.Quiet,
		Permissive: CLI.Permissive,
		VimVersion: CLI.VimVersion,
		Modelines:  CLI.Modelines,
		Table:      CLI.Table,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
