package cli

import (
	"encoding/json"
	"fmt"

	"github.com/vburojevic/fltriage/internal/config"
)

// ConfigCmd shows or manages configuration
type ConfigCmd struct {
	Show ConfigShowCmd `cmd:"" default:"withargs" help:"Show current configuration"`
	Path ConfigPathCmd `cmd:"" help:"Show configuration file path"`
}

// ConfigShowCmd shows current configuration
type ConfigShowCmd struct{}

// Run executes the config show command
func (c *ConfigShowCmd) Run(globals *Globals) error {
	cfg := globals.Config
	if cfg == nil {
		cfg = config.Default()
	}

	if globals.Format == "json" {
		output := map[string]interface{}{
			"type":     "config",
			"format":   cfg.Format,
			"quiet":    cfg.Quiet,
			"verbose":  cfg.Verbose,
			"no_color": cfg.NoColor,
			"report":   cfg.Report,
		}
		encoder := json.NewEncoder(globals.Stdout)
		return encoder.Encode(output)
	}

	// Text output
	fmt.Fprintln(globals.Stdout, "Current Configuration:")
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprintf(globals.Stdout, "  format:   %s\n", cfg.Format)
	fmt.Fprintf(globals.Stdout, "  quiet:    %v\n", cfg.Quiet)
	fmt.Fprintf(globals.Stdout, "  verbose:  %v\n", cfg.Verbose)
	fmt.Fprintf(globals.Stdout, "  no_color: %v\n", cfg.NoColor)
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprintln(globals.Stdout, "Report limits:")
	fmt.Fprintf(globals.Stdout, "  max_errors:      %d\n", cfg.Report.MaxErrors)
	fmt.Fprintf(globals.Stdout, "  max_security:    %d\n", cfg.Report.MaxSecurity)
	fmt.Fprintf(globals.Stdout, "  max_performance: %d\n", cfg.Report.MaxPerformance)
	fmt.Fprintf(globals.Stdout, "  max_traces:      %d\n", cfg.Report.MaxTraces)

	if path := config.ConfigFile(); path != "" {
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintf(globals.Stdout, "Loaded from: %s\n", path)
	}

	return nil
}

// ConfigPathCmd shows config file path
type ConfigPathCmd struct{}

// Run executes the config path command
func (c *ConfigPathCmd) Run(globals *Globals) error {
	path := config.ConfigFile()

	if globals.Format == "json" {
		output := map[string]interface{}{
			"type": "config_path",
			"path": path,
		}
		encoder := json.NewEncoder(globals.Stdout)
		return encoder.Encode(output)
	}

	if path == "" {
		fmt.Fprintln(globals.Stdout, "No configuration file found")
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintln(globals.Stdout, "Create one at:")
		fmt.Fprintln(globals.Stdout, "  ~/.fltriage.yaml")
		return nil
	}

	fmt.Fprintln(globals.Stdout, path)
	return nil
}
