package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "timepattern",
	Short:         "Parse time values back using their display format pattern",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print diagnostics to stderr")
	rootCmd.SetHelpFunc(colorizedHelpFunc())

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(tryCmd)
	rootCmd.AddCommand(localeCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "%s %s\n", Error("error:"), err)
	}
	return err
}
