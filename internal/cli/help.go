package cli

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// Matches section headers like "Usage:", "Available Commands:", "Examples:"
	sectionHeaderRe = regexp.MustCompile(`^[A-Z][A-Za-z ]+:$`)
	// Matches command/alias listings: "  commandname   description text"
	commandListingRe = regexp.MustCompile(`^( {2})(\S+)(\s{2,}.*)$`)
	// Matches flag lines: "  -f, --flag-name type   description"
	flagLineRe = regexp.MustCompile(`^( +)(-.+?)( {2,}.*)$`)
	// Matches example invocations: "  timepattern parse ..."
	exampleLineRe = regexp.MustCompile(`^( +)(timepattern\b.*)$`)
	// Matches double-quoted arguments inside an example
	quotedArgRe = regexp.MustCompile(`"[^"]*"`)
	// Matches footer lines: "Use "..." for more information"
	footerRe = regexp.MustCompile(`^Use "`)
)

// colorizedHelpFunc returns a custom help function that colorizes Cobra's default help output.
func colorizedHelpFunc() func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		origOut := cmd.OutOrStdout()

		var buf strings.Builder
		cmd.SetOut(&buf)
		cmd.InitDefaultHelpFlag()
		_ = cmd.Usage()
		cmd.SetOut(origOut)

		lines := strings.Split(buf.String(), "\n")

		var result strings.Builder
		for _, line := range lines {
			result.WriteString(colorizeLine(line))
			result.WriteString("\n")
		}

		output := strings.TrimRight(result.String(), "\n") + "\n"
		cmd.Print(output)
	}
}

// colorizeLine applies color rules to a single line of help output.
func colorizeLine(line string) string {
	if sectionHeaderRe.MatchString(strings.TrimSpace(line)) {
		return Info(line)
	}

	if footerRe.MatchString(strings.TrimSpace(line)) {
		return Silent(line)
	}

	// Examples: quoted patterns and inputs stand out from the command
	if m := exampleLineRe.FindStringSubmatch(line); m != nil {
		return m[1] + quotedArgRe.ReplaceAllStringFunc(m[2], Capture)
	}

	if m := flagLineRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + Text(m[3])
	}

	if m := commandListingRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + Text(m[3])
	}

	return Text(line)
}
