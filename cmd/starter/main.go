package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/starter/internal/config"
	"github.com/vango-dev/starter/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┌┬┐┌─┐┬─┐┌┬┐┌─┐┬─┐
  └─┐ │ ├─┤├┬┘ │ ├┤ ├┬┘
  └─┘ ┴ ┴ ┴┴└─ ┴ └─┘┴└─
`

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "starter",
		Short: "Server-rendered site built from plain Go functions",
		Long: `Starter serves and exports a small site whose HTML is built
with the markup engine: nested function calls, escaped once on output.

Commands:
  init     scaffold a project config and static files
  serve    run the HTTP server (with optional live reload)
  render   print one page to stdout
  export   write every page as static HTML, optionally to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file (default ./starter.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		initCmd(),
		serveCmd(flags),
		renderCmd(flags),
		exportCmd(flags),
		versionCmd(),
	)
	return rootCmd
}

// loadConfig reads the config file and environment, applying opts last.
func (f *globalFlags) loadConfig(opts ...config.Option) (*config.Config, error) {
	return config.Load(f.configPath, opts...)
}

// logger builds the command logger on w. --verbose forces debug level.
func (f *globalFlags) logger(cfg *config.Config, w io.Writer) *slog.Logger {
	lc := cfg.Log
	if f.verbose {
		lc.Level = "debug"
	}
	return lc.NewLogger(w)
}

// projectDir is the directory relative config paths resolve against: the
// config file's directory, or the working directory.
func projectDir(cfg *config.Config) string {
	if file := cfg.ConfigFile(); file != "" {
		return filepath.Dir(file)
	}
	return "."
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
