// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for gitscope.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gitscope-cli/internal/config"
	"gitscope-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the loaded tool configuration, defaults when loading failed.
	cfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "gitscope",
		Short: "Inspect where git configuration comes from",
		Long: TitleStyle.Render("gitscope") + SubtitleStyle.Render(" - Inspect where git configuration comes from") + `

gitscope resolves the directories and files git itself would treat as
authoritative sources of configuration for each configuration scope
(system, global, local), reproducing git's environment-variable and
platform conventions.

` + SubtitleStyle.Render("Examples:") + `
  gitscope env                      Resolve directories from the process environment
  gitscope env --scope local        Show the (empty) local-scope environment
  gitscope paths --scope global     List candidate global config files
  gitscope paths --all              List candidates for every scope
  gitscope expand "~/.gitconfig"    Expand a home-relative path
  gitscope config show              Show gitscope's own configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/gitscope/config.toml)")

	// Add subcommands
	rootCmd.AddCommand(newEnvCommand())
	rootCmd.AddCommand(newPathsCommand())
	rootCmd.AddCommand(newExpandCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newCompletionCommand())
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main() and only happens once.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// initRootConfig reads in the config file if one is present.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	loaded, _, err := config.Load()
	if err != nil {
		// Config problems degrade to defaults, but always tell the user.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	if loaded != nil {
		cfg = loaded
	}

	if !verbose && cfg.UI.Verbose {
		verbose = true
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// colorScheme maps the configured scheme to a glamour style path.
func colorScheme() string {
	switch cfg.UI.ColorScheme {
	case "light":
		return "light"
	default:
		return "dark"
	}
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// carry their own suggestion formatting; other errors print as-is.
func formatErrorForDisplay(err error, verbose bool) string {
	var actionable *issue.ActionableError
	if errors.As(err, &actionable) {
		return actionable.Format(verbose)
	}
	return err.Error()
}

// renderIssue prints the catalog help text for a known failure mode.
func renderIssue(id issue.Id) {
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	rendered, err := entry.Render(colorScheme())
	if err != nil {
		return
	}
	fmt.Fprint(os.Stderr, rendered)
}
