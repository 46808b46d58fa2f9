// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"gitscope-cli/internal/config"
	"gitscope-cli/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `gitscope config` command tree.
func newConfigCommand() *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage gitscope configuration",
		Long: `Manage gitscope's own configuration (not git's).

Configuration is stored in:
  - Linux: ~/.config/gitscope/config.toml
  - macOS: ~/Library/Application Support/gitscope/config.toml
  - Windows: %APPDATA%\gitscope\config.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})

	return cfgCmd
}

func showConfig() error {
	loaded, resolvedPath, err := config.Load()
	if err != nil {
		renderIssue(issue.ConfigLoadFailedId)
		return err
	}

	fmt.Println(TitleStyle.Render("Current Configuration"))
	fmt.Println()

	if resolvedPath != "" {
		fmt.Printf("%s: %s\n", KeyStyle.Render("Config file"), resolvedPath)
	} else {
		fmt.Printf("%s: %s\n", KeyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	fmt.Printf("%s: %s\n", KeyStyle.Render("output_format"), ValueStyle.Render(loaded.OutputFormat))
	fmt.Printf("%s: %s\n", KeyStyle.Render("default_git_dir"), ValueStyle.Render(loaded.DefaultGitDir))

	fmt.Println()
	fmt.Printf("%s:\n", KeyStyle.Render("ui"))
	fmt.Printf("  color_scheme: %s\n", ValueStyle.Render(loaded.UI.ColorScheme))
	fmt.Printf("  verbose: %s\n", ValueStyle.Render(fmt.Sprintf("%v", loaded.UI.Verbose)))

	return nil
}

func initConfig() error {
	if err := config.CreateDefault(); err != nil {
		return issue.NewErrorContext().
			WithOperation("create default configuration").
			WithSuggestion("Check permissions on the configuration directory").
			Wrap(err).
			BuildError()
	}

	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	cfgPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
	fmt.Printf("%s %s\n", ValueStyle.Render("Configuration ready:"), cfgPath)
	return nil
}

func showConfigPath() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	cfgPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
	fmt.Println(cfgPath)

	if _, statErr := os.Stat(cfgPath); statErr != nil {
		fmt.Fprintln(os.Stderr, SubtitleStyle.Render("(file does not exist yet; run 'gitscope config init')"))
	}
	return nil
}
