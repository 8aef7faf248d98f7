package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sitewinder-dev/sitewinder/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// colorize is true when stdout is a terminal.
var colorize = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

func main() {
	rootCmd := &cobra.Command{
		Use:   "sitewinder",
		Short: "Build reactive sites in Go",
		Long: `Sitewinder is a reactive UI framework for Go.

Components render from signal state, re-render when it changes,
and mount into a page the hash router swaps on navigation.
The CLI scaffolds projects, serves them with hot reload, builds
the production site and deploys it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		createCmd(),
		devCmd(),
		buildCmd(),
		deployCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var siteErr *errors.SiteError
		if errors.As(err, &siteErr) {
			if !colorize {
				errors.DisableColors()
			}
			errors.PrintError(siteErr)
		} else {
			errorMsg("%s", err)
		}
		os.Exit(1)
	}
}

func paint(code, s string) string {
	if !colorize {
		return s
	}
	return code + s + "\033[0m"
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("%s %s\n", paint("\033[32m", "✓"), fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("%s %s\n", paint("\033[33m", "⚠"), fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", paint("\033[31m", "✗"), fmt.Sprintf(format, args...))
}
