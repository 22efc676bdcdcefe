package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/vburojevic/fltriage/internal/config"
)

// CLI is the root command structure for fltriage
type CLI struct {
	// Global flags
	Format  string `short:"f" default:"${config_format}" enum:"text,json" help:"Output format"`
	Quiet   bool   `short:"q" help:"Suppress non-report output (prompts, warnings)"`
	Verbose bool   `short:"v" help:"Show debug output (line counts, catalog passes, timings)"`
	NoColor bool   `help:"Disable ANSI colors in text output"`

	// Commands
	Analyze  AnalyzeCmd  `cmd:"" default:"withargs" help:"Analyze a log file (or stdin) for error patterns"`
	Patterns PatternsCmd `cmd:"" help:"List the built-in pattern catalog"`
	Config   ConfigCmd   `cmd:"" help:"Show or manage configuration"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

// Globals holds shared state for all commands
type Globals struct {
	Format  string
	Quiet   bool
	Verbose bool
	Color   bool
	Stdout  io.Writer
	Stderr  io.Writer
	Stdin   io.Reader
	Config  *config.Config
	Log     *zap.Logger
}

// NewGlobals creates a new Globals instance from CLI flags with config
// fallbacks for flags the user did not set explicitly.
func NewGlobals(cli *CLI, cfg *config.Config) *Globals {
	if cfg == nil {
		cfg = config.Default()
	}

	g := &Globals{
		Format: cli.Format,
		Quiet:  cli.Quiet || cfg.Quiet,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
		Config: cfg,
	}

	verbose := cli.Verbose || cfg.Verbose
	g.Verbose = verbose
	g.Log = newLogger(verbose)

	noColor := cli.NoColor || cfg.NoColor || os.Getenv("NO_COLOR") != ""
	g.Color = !noColor && isatty.IsTerminal(os.Stdout.Fd())

	return g
}

// newLogger builds the diagnostic logger. Non-verbose runs get a no-op
// logger so the report is the only output.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// VersionCmd shows version information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(globals *Globals) error {
	if globals.Format == "json" {
		_, err := io.WriteString(globals.Stdout, `{"type":"version","version":"`+Version+`","commit":"`+Commit+`"}`+"\n")
		return err
	}
	_, err := io.WriteString(globals.Stdout, "fltriage version "+Version+" ("+Commit+")\n")
	return err
}

// Version information (set at build time)
var (
	Version = "dev"
	Commit  = "none"
)
