// Recipebrowser is a terminal browser for a recipe catalog.
//
// Usage:
//
//	recipebrowser [browse] [--catalog pattern] [--config file] [--verbose] [--quiet]
//	recipebrowser list [--search text] [--tag category=value]...
//	recipebrowser show <id> [--plain]
//	recipebrowser tags
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipebrowser/internal/catalog"
	"github.com/hammamikhairi/recipebrowser/internal/config"
	"github.com/hammamikhairi/recipebrowser/internal/logger"
)

func main() {
	_ = godotenv.Load()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the persistent flags shared by every command.
type options struct {
	configPath string
	catalog    string
	logFile    string
	verbose    bool
	quiet      bool
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "recipebrowser",
		Short: "Browse a recipe catalog by name, taste, meal, time and ingredient",
		Long: `Recipebrowser filters a fixed recipe collection by a free-text search
and by tag filters in four categories (taste, meal, time, ingredient).

Values within a category widen the result, categories narrow it.
Run without a subcommand to open the interactive browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file path (YAML, default "+config.DefaultFile+" if present)")
	flags.StringVar(&opts.catalog, "catalog", "", "catalog file or glob (YAML, JSON or XLSX); empty uses the built-in recipes")
	flags.StringVar(&opts.logFile, "log-file", "", "file to write logs to (use \"stderr\" to log to console)")
	flags.BoolVar(&opts.verbose, "verbose", false, "enable verbose/debug logging")
	flags.BoolVar(&opts.quiet, "quiet", false, "disable all logging")

	cmd.AddCommand(
		browseCmd(opts),
		listCmd(opts),
		showCmd(opts),
		tagsCmd(),
	)
	return cmd
}

// app is the wired state every command starts from.
type app struct {
	cfg    *config.Config
	log    *logger.Logger
	index  *catalog.MemoryIndex
	closer io.Closer
	errOut io.Writer
}

// Close releases the log file, reporting a failure on errOut.
func (a *app) Close() {
	if a.closer == nil {
		return
	}
	if err := a.closer.Close(); err != nil {
		fmt.Fprintf(a.errOut, "warning: could not close log file: %v\n", err)
	}
}

// setup loads configuration, applies flag overrides, opens the log output
// and loads the catalog.
func setup(cmd *cobra.Command, opts *options) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.Catalog.Pattern = opts.catalog
	}
	if flags.Changed("log-file") {
		cfg.Log.File.Path = opts.logFile
	}
	if opts.verbose {
		cfg.Log.Level = logger.LevelVerbose.String()
	}
	if opts.quiet {
		cfg.Log.Level = logger.LevelOff.String()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, errOut: cmd.ErrOrStderr()}

	// Direct logs to a file by default so the browser screen stays clean.
	var logOut io.Writer = cmd.ErrOrStderr()
	if level != logger.LevelOff && cfg.Log.File.Path != "" && cfg.Log.File.Path != "stderr" {
		f, err := logger.OpenFile(logger.FileOptions{
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
		})
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not open log file %s: %v (falling back to stderr)\n", cfg.Log.File.Path, err)
		} else {
			logOut = f
			a.closer = f
		}
	}
	a.log = logger.New(level, logOut)

	a.index, err = catalog.Open(cfg.Catalog.Pattern, a.log)
	if err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}
