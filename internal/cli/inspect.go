package cli

import (
	"fmt"
	"os"

	"github.com/Flyrell/timepattern/internal/hashutil"
	"github.com/Flyrell/timepattern/internal/locale"
	"github.com/Flyrell/timepattern/internal/pattern"
	"github.com/spf13/cobra"
)

var inspectCmd = LeafCommand{
	Use:      "inspect PATTERN",
	Short:    "Show the expression and capture groups compiled from a pattern",
	Example:  `  timepattern inspect "h:mm:ss aaaa" -l en-GB`,
	Args:     cobra.ExactArgs(1),
	StrFlags: []StringFlag{localeFlag},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		localeID, _ := cmd.Flags().GetString("locale")

		provider, err := loadProvider(homeDir)
		if err != nil {
			return err
		}
		return runInspect(cmd, provider, args[0], localeID)
	},
}.Build()

func runInspect(cmd *cobra.Command, provider locale.Provider, format, localeFlagValue string) error {
	localeID := resolveLocaleID(localeFlagValue)
	m, err := pattern.Compile(format, localeID, provider)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	row := func(label, value string) {
		_, _ = fmt.Fprintf(out, "%s %s\n", Info(fmt.Sprintf("%-12s", label+":")), value)
	}

	row("Pattern", Primary(m.Pattern()))
	row("Locale", Text(m.Locale()))
	row("Fingerprint", Silent(hashutil.Fingerprint(m.Pattern(), m.Locale(), m.Regexp())))
	row("Regexp", Text(m.Regexp()))
	row("Groups", formatGroups(m.Fields()))

	if w, labels, ok := m.DayPeriods(); ok {
		row("Day period", fmt.Sprintf("%s %s | %s", w, Capture(labels[0]), Capture(labels[1])))
	} else {
		row("Day period", Silent("(none)"))
	}
	return nil
}
