package cli

import (
	"fmt"
	"os"

	"github.com/Flyrell/timepattern/internal/locale"
	"github.com/spf13/cobra"
)

// localeEnvVar names the environment variable holding the default locale.
const localeEnvVar = "TIMEPATTERN_LOCALE"

// resolveLocaleID picks the locale from the flag, then the environment,
// then the built-in default.
func resolveLocaleID(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(localeEnvVar); env != "" {
		return env
	}
	return locale.DefaultLocale
}

// loadProvider layers the user's overrides above the bundled locale table.
func loadProvider(homeDir string) (locale.Provider, error) {
	overrides, err := locale.ReadOverrides(homeDir)
	if err != nil {
		return nil, err
	}
	return locale.Layered{Base: locale.Builtin(), Overrides: overrides}, nil
}

// debugf prints a diagnostic line to stderr when --verbose is set.
func debugf(cmd *cobra.Command, format string, args ...any) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return
	}
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), Silent(fmt.Sprintf(format, args...)))
}

var localeFlag = StringFlag{
	Name:      "locale",
	Shorthand: "l",
	Usage:     "locale for day-period labels (default $" + localeEnvVar + " or " + locale.DefaultLocale + ")",
}
