package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/vburojevic/fltriage/internal/cli"
	"github.com/vburojevic/fltriage/internal/config"
)

func main() {
	// Load configuration from files/environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	var c cli.CLI

	// Apply config defaults before parsing
	// These will be overridden by CLI flags if specified
	vars := kong.Vars{
		"config_format": cfg.Format,
	}

	ctx := kong.Parse(&c,
		kong.Name("fltriage"),
		kong.Description("Scan Flutter/Android logs for error patterns, security issues and stack traces\n\nSTART HERE: fltriage analyze app.log\n\nWith no file, reads stdin: adb logcat -d | fltriage analyze"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		vars,
	)

	globals := cli.NewGlobals(&c, cfg)

	err = ctx.Run(globals)
	_ = globals.Log.Sync()
	if err != nil {
		// ErrFindings is told through the report; CLIError was already
		// emitted by the command. Anything else still needs a message.
		var cliErr *cli.CLIError
		if !errors.Is(err, cli.ErrFindings) && !errors.As(err, &cliErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
