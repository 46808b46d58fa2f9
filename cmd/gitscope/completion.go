// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// newCompletionCommand creates the `gitscope completion` command.
func newCompletionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for gitscope.

To enable shell completions, run one of the following commands:

` + SubtitleStyle.Render("Bash:") + `
  # Add to ~/.bashrc:
  eval "$(gitscope completion bash)"

` + SubtitleStyle.Render("Zsh:") + `
  # Add to ~/.zshrc:
  eval "$(gitscope completion zsh)"

` + SubtitleStyle.Render("Fish:") + `
  gitscope completion fish > ~/.config/fish/completions/gitscope.fish

` + SubtitleStyle.Render("PowerShell:") + `
  gitscope completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
