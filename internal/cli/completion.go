package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Flyrell/timepattern/internal/locale"
	"github.com/spf13/cobra"
)

var validShells = []string{"bash", "zsh", "fish", "powershell"}

var completionCmd = GroupCommand{
	Use:   "completion",
	Short: "Manage shell completions",
	Subcommands: []*cobra.Command{
		completionGenerateCmd,
	},
}.Build()

var completionGenerateCmd = newCompletionGenerateCmd()

func newCompletionGenerateCmd() *cobra.Command {
	cmd := LeafCommand{
		Use:   "generate [SHELL]",
		Short: "Generate shell completion script",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := ""
			if len(args) > 0 {
				shell = args[0]
			} else {
				shell = detectShell()
				if shell == "" {
					return fmt.Errorf("could not detect shell from $SHELL environment variable; please specify one explicitly (bash, zsh, fish, powershell)")
				}
			}
			return runCompletion(cmd, shell)
		},
	}.Build()
	cmd.ValidArgs = validShells
	return cmd
}

func init() {
	for _, cmd := range []*cobra.Command{parseCmd, inspectCmd, tryCmd} {
		_ = cmd.RegisterFlagCompletionFunc("locale", completeLocales)
	}
	localeGetCmd.ValidArgsFunction = completeLocales
	localeResetCmd.ValidArgsFunction = completeOverriddenLocales
	_ = localeSetCmd.RegisterFlagCompletionFunc("width", completeWidths)
}

func detectShell() string {
	switch filepath.Base(os.Getenv("SHELL")) {
	case "bash":
		return "bash"
	case "zsh":
		return "zsh"
	case "fish":
		return "fish"
	default:
		return ""
	}
}

func runCompletion(cmd *cobra.Command, shell string) error {
	root := cmd.Root()
	out := cmd.OutOrStdout()

	switch shell {
	case "bash":
		return root.GenBashCompletionV2(out, true)
	case "zsh":
		return root.GenZshCompletion(out)
	case "fish":
		return root.GenFishCompletion(out, true)
	case "powershell":
		return root.GenPowerShellCompletion(out)
	default:
		return fmt.Errorf("unsupported shell: %s (valid: bash, zsh, fish, powershell)", shell)
	}
}

// localeCandidates returns bundled and overridden locale ids starting with prefix.
func localeCandidates(homeDir, prefix string) []string {
	seen := map[string]bool{}
	var out []string
	add := func(id string) {
		if !seen[id] && strings.HasPrefix(strings.ToLower(id), strings.ToLower(prefix)) {
			seen[id] = true
			out = append(out, id)
		}
	}

	for _, id := range locale.Builtin().Supported() {
		add(id)
	}
	if overrides, err := locale.ReadOverrides(homeDir); err == nil {
		for _, id := range overrides.IDs() {
			add(id)
		}
	}
	return out
}

func completeLocales(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	homeDir, _ := os.UserHomeDir()
	return localeCandidates(homeDir, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func completeOverriddenLocales(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	homeDir, _ := os.UserHomeDir()
	overrides, err := locale.ReadOverrides(homeDir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return overrides.IDs(), cobra.ShellCompDirectiveNoFileComp
}

func completeWidths(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, len(locale.Widths))
	for i, w := range locale.Widths {
		names[i] = w.String()
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
