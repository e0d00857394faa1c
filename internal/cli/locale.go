package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Flyrell/timepattern/internal/locale"
	"github.com/spf13/cobra"
)

var localeCmd = GroupCommand{
	Use:   "locale",
	Short: "Inspect and override day-period labels",
	Subcommands: []*cobra.Command{
		localeListCmd,
		localeGetCmd,
		localeSetCmd,
		localeResetCmd,
	},
}.Build()

var localeListCmd = LeafCommand{
	Use:   "list",
	Short: "List bundled locales and user overrides",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runLocaleList(cmd, homeDir)
	},
}.Build()

var localeGetCmd = LeafCommand{
	Use:   "get [LOCALE]",
	Short: "Show the day-period labels used for a locale",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		localeID := ""
		if len(args) > 0 {
			localeID = args[0]
		}
		return runLocaleGet(cmd, homeDir, resolveLocaleID(localeID))
	},
}.Build()

var localeSetCmd = LeafCommand{
	Use:     "set LOCALE BEFORE_MIDDAY AFTER_MIDDAY",
	Short:   "Override the day-period labels of a locale",
	Example: `  timepattern locale set en "a.m." "p.m." --width abbreviated`,
	Args:    cobra.ExactArgs(3),
	StrFlags: []StringFlag{
		{Name: "width", Shorthand: "w", Usage: "narrow, abbreviated or wide (default: all three)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		width, _ := cmd.Flags().GetString("width")
		return runLocaleSet(cmd, homeDir, args[0], width, [2]string{args[1], args[2]})
	},
}.Build()

var localeResetCmd = LeafCommand{
	Use:   "reset LOCALE",
	Short: "Remove the day-period overrides of a locale",
	Args:  cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Shorthand: "y", Usage: "skip confirmation"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")
		confirm := NewConfirmFunc()
		if yes {
			confirm = AlwaysYes()
		}
		return runLocaleReset(cmd, homeDir, args[0], confirm)
	},
}.Build()

func runLocaleList(cmd *cobra.Command, homeDir string) error {
	overrides, err := locale.ReadOverrides(homeDir)
	if err != nil {
		return err
	}
	provider := locale.Layered{Base: locale.Builtin(), Overrides: overrides}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%s\n", Info("Bundled locales:"))
	for _, id := range locale.Builtin().Supported() {
		printLocaleRow(out, provider, id, overrides)
	}

	ids := overrides.IDs()
	if len(ids) == 0 {
		return nil
	}
	_, _ = fmt.Fprintf(out, "\n%s\n", Info("Overrides:"))
	for _, id := range ids {
		printLocaleRow(out, provider, id, overrides)
	}
	return nil
}

func printLocaleRow(w io.Writer, provider locale.Provider, id string, overrides *locale.Overrides) {
	cells := make([]string, len(locale.Widths))
	for i, width := range locale.Widths {
		labels, err := provider.DayPeriods(id, width)
		if err != nil {
			cells[i] = Silent("-")
			continue
		}
		cell := labels[0] + " | " + labels[1]
		if _, ok := overrides.Get(id, width); ok {
			cell += "*"
		}
		cells[i] = cell
	}
	_, _ = fmt.Fprintf(w, "  %s %s\n", Primary(fmt.Sprintf("%-6s", id)), strings.Join(cells, Silent("   ")))
}

func runLocaleGet(cmd *cobra.Command, homeDir, localeID string) error {
	provider, err := loadProvider(homeDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%s\n", Text(fmt.Sprintf("Day periods for '%s':", Primary(localeID))))
	if resolved, err := locale.Builtin().Resolve(localeID); err == nil && resolved != localeID {
		_, _ = fmt.Fprintf(out, "  %s\n", Silent("(bundled data from "+resolved+")"))
	}

	for _, w := range locale.Widths {
		labels, err := provider.DayPeriods(localeID, w)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "  %-12s %s | %s\n", w.String()+":", Capture(labels[0]), Capture(labels[1]))
	}
	return nil
}

func runLocaleSet(cmd *cobra.Command, homeDir, localeID, widthName string, labels [2]string) error {
	widths := locale.Widths
	if widthName != "" {
		w, err := locale.ParseWidth(widthName)
		if err != nil {
			return err
		}
		widths = []locale.Width{w}
	}

	overrides, err := locale.ReadOverrides(homeDir)
	if err != nil {
		return err
	}
	for _, w := range widths {
		if err := overrides.Set(localeID, w, labels); err != nil {
			return err
		}
	}
	if err := locale.WriteOverrides(homeDir, overrides); err != nil {
		return err
	}

	names := make([]string, len(widths))
	for i, w := range widths {
		names[i] = w.String()
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("set %s day periods for '%s' to %s | %s",
		strings.Join(names, ", "), Primary(localeID), Capture(labels[0]), Capture(labels[1]))))
	return nil
}

func runLocaleReset(cmd *cobra.Command, homeDir, localeID string, confirm ConfirmFunc) error {
	overrides, err := locale.ReadOverrides(homeDir)
	if err != nil {
		return err
	}

	id, err := locale.Canonicalize(localeID)
	if err != nil {
		return err
	}
	if _, ok := overrides.Locales[id]; !ok {
		return fmt.Errorf("no overrides for locale '%s'", localeID)
	}

	ok, err := confirm(fmt.Sprintf("Remove day-period overrides for '%s'?", id))
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), Warning("aborted"))
		return nil
	}

	overrides.Remove(id)
	if err := locale.WriteOverrides(homeDir, overrides); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("removed overrides for '%s'", Primary(id))))
	return nil
}
