package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Flyrell/timepattern/internal/clock"
	"github.com/Flyrell/timepattern/internal/locale"
	"github.com/Flyrell/timepattern/internal/pattern"
	"github.com/spf13/cobra"
)

var formatFlag = StringArrayFlag{
	Name:      "format",
	Shorthand: "f",
	Usage:     "format pattern, e.g. \"h:mm a\" (repeatable; the first matching format wins)",
}

var parseCmd = LeafCommand{
	Use:   "parse [INPUT...]",
	Short: "Extract hour, minute, second and day period from time values",
	Example: `  timepattern parse -f "h:mm a" "3:15 PM"
  timepattern parse -f "HH:mm:ss" -f "HH:mm" --24h < times.txt
  timepattern parse -f "a h:mm" -l ko --json "오후 9:41"`,
	StrFlags:   []StringFlag{localeFlag},
	ArrayFlags: []StringArrayFlag{formatFlag},
	BoolFlags: []BoolFlag{
		{Name: "json", Usage: "print one JSON object per input"},
		{Name: "24h", Usage: "also print the normalized 24-hour time"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		formats, _ := cmd.Flags().GetStringArray("format")
		localeID, _ := cmd.Flags().GetString("locale")
		asJSON, _ := cmd.Flags().GetBool("json")
		to24h, _ := cmd.Flags().GetBool("24h")

		provider, err := loadProvider(homeDir)
		if err != nil {
			return err
		}

		inputs := args
		if len(inputs) == 0 {
			inputs, err = readInputs(cmd.InOrStdin(), NewPromptFunc())
			if err != nil {
				return err
			}
		}

		return runParse(cmd, provider, parseOptions{
			formats:  formats,
			localeID: localeID,
			json:     asJSON,
			to24h:    to24h,
		}, inputs)
	},
}.Build()

type parseOptions struct {
	formats  []string
	localeID string
	json     bool
	to24h    bool
}

// parseOutcome is the per-input record printed by parse.
type parseOutcome struct {
	Input  string          `json:"input"`
	Format string          `json:"format,omitempty"`
	Match  bool            `json:"match"`
	Result *pattern.Result `json:"result,omitempty"`
	Time   string          `json:"time,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// readInputs prompts for a single value on a terminal, otherwise reads
// one value per non-blank line.
func readInputs(in io.Reader, prompt PromptFunc) ([]string, error) {
	if isTerminal(in) {
		value, err := prompt("Time value")
		if err != nil {
			return nil, err
		}
		return []string{value}, nil
	}

	var inputs []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return inputs, nil
}

func runParse(cmd *cobra.Command, provider locale.Provider, opts parseOptions, inputs []string) error {
	if len(opts.formats) == 0 {
		return fmt.Errorf("at least one --format is required")
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no input to parse")
	}

	localeID := resolveLocaleID(opts.localeID)
	cache := pattern.NewCache(provider)

	var matchers []*pattern.Matcher
	for _, f := range opts.formats {
		m, hit, err := cache.Get(f, localeID)
		if err != nil {
			return err
		}
		if hit {
			debugf(cmd, "format %q given more than once", f)
			continue
		}
		debugf(cmd, "compiled %q (%s): %s [%s]", f, localeID, m.Regexp(), m.Fields())
		matchers = append(matchers, m)
	}

	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	misses := 0

	for _, input := range inputs {
		outcome := parseOne(matchers, input, opts.to24h)
		if !outcome.Match {
			misses++
		}

		if opts.json {
			if err := enc.Encode(outcome); err != nil {
				return err
			}
			continue
		}
		printOutcome(out, outcome)
	}

	if misses > 0 {
		return fmt.Errorf("%d of %d inputs did not match", misses, len(inputs))
	}
	return nil
}

func parseOne(matchers []*pattern.Matcher, input string, to24h bool) parseOutcome {
	for _, m := range matchers {
		res, ok := m.Extract(input)
		if !ok {
			continue
		}
		outcome := parseOutcome{Input: input, Format: m.Pattern(), Match: true, Result: &res}
		if to24h {
			t, err := clock.FromResult(res)
			if err != nil {
				outcome.Error = err.Error()
			} else {
				outcome.Time = t.String()
			}
		}
		return outcome
	}
	return parseOutcome{Input: input}
}

func printOutcome(w io.Writer, o parseOutcome) {
	if !o.Match {
		_, _ = fmt.Fprintf(w, "%s  %s\n", Primary(o.Input), Warning("no match"))
		return
	}

	line := fmt.Sprintf("%s  %s  %s", Primary(o.Input), Silent("["+o.Format+"]"), formatResult(*o.Result))
	switch {
	case o.Error != "":
		line += "  " + Warning(o.Error)
	case o.Time != "":
		line += "  " + Info(o.Time)
	}
	_, _ = fmt.Fprintln(w, line)
}
