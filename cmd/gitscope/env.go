// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gitscope-cli/internal/gitenv"
	"gitscope-cli/internal/issue"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// envJSON is the machine-readable form of a snapshot. Absent directories
// are omitted rather than emitted as empty strings.
type envJSON struct {
	Home          string `json:"home,omitempty"`
	XDGConfigHome string `json:"xdg_config_home,omitempty"`
	ProgramData   string `json:"program_data,omitempty"`
	System        string `json:"system,omitempty"`
}

// newEnvCommand creates the `gitscope env` command.
func newEnvCommand() *cobra.Command {
	var (
		scope   string
		jsonOut bool
	)

	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Resolve the directory environment for a configuration scope",
		Long: `Resolve the directory environment for a configuration scope.

With no --scope, directories are resolved from the ambient process
environment the way git resolves them. With --scope local, the environment
is deliberately empty: repository configuration is addressed relative to
the repository, never to the user's home.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnv(scope, jsonOut || cfg.OutputFormat == "json")
		},
	}

	envCmd.Flags().StringVar(&scope, "scope", "", `configuration scope ("" for ambient environment, or "local")`)
	envCmd.Flags().BoolVar(&jsonOut, "json", false, "emit machine-readable JSON")

	return envCmd
}

func runEnv(scope string, jsonOut bool) error {
	snap, err := gitenv.NewResolver().ForScope(scope)
	if err != nil {
		var unsupported *gitenv.UnsupportedScopeError
		if errors.As(err, &unsupported) {
			renderIssue(issue.UnsupportedScopeId)
		}
		return issue.NewErrorContext().
			WithOperation("resolve configuration scope").
			WithResource(scope).
			WithSuggestion(`Use --scope local or omit --scope entirely`).
			Wrap(err).
			BuildError()
	}

	log.Debug("resolved environment", "scope", scope)

	if jsonOut {
		return printEnvJSON(snap)
	}
	printEnvText(snap)
	return nil
}

func printEnvJSON(snap *gitenv.Snapshot) error {
	out := envJSON{}
	out.Home, _ = snap.HomeDir()
	out.XDGConfigHome, _ = snap.XDGConfigHomeDir()
	out.ProgramData, _ = snap.ProgramDataDir()
	out.System, _ = snap.SystemDir()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printEnvText(snap *gitenv.Snapshot) {
	fmt.Println(TitleStyle.Render("Resolved environment"))
	fmt.Println()

	printDir("Home", snap.HomeDir)
	printDir("XDG config home", snap.XDGConfigHomeDir)
	printDir("Program data", snap.ProgramDataDir)
	printDir("System", snap.SystemDir)
}

func printDir(name string, lookup func() (string, bool)) {
	if dir, ok := lookup(); ok {
		fmt.Printf("%s: %s\n", KeyStyle.Render(name), ValueStyle.Render(dir))
		return
	}
	fmt.Printf("%s: %s\n", KeyStyle.Render(name), SubtitleStyle.Render("(absent)"))
}
