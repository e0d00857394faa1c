package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Flyrell/timepattern/internal/clock"
	"github.com/Flyrell/timepattern/internal/locale"
	"github.com/Flyrell/timepattern/internal/pattern"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	tryLabelStyle   = lipgloss.NewStyle().Bold(true).Width(9)
	tryFocusStyle   = lipgloss.NewStyle().Reverse(true)
	tryFooterStyle  = lipgloss.NewStyle().Faint(true)
	tryNoMatchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
)

var tryCmd = LeafCommand{
	Use:      "try [INPUT]",
	Short:    "Interactively edit a pattern and watch it parse input as you type",
	Example:  `  timepattern try -f "h:mm a" "3:15 PM"`,
	Args:     cobra.MaximumNArgs(1),
	StrFlags: []StringFlag{localeFlag, {Name: "format", Shorthand: "f", Usage: "initial format pattern", Default: "HH:mm"}},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		localeID, _ := cmd.Flags().GetString("locale")

		provider, err := loadProvider(homeDir)
		if err != nil {
			return err
		}

		input := ""
		if len(args) > 0 {
			input = args[0]
		}

		m := newTryModel(provider, resolveLocaleID(localeID), format, input)
		return runTry(cmd, m)
	},
}.Build()

// tryField is the text field receiving keystrokes.
type tryField int

const (
	fieldFormat tryField = iota
	fieldInput
)

// tryModel holds only the matcher for the current format; every
// intermediate format typed during a session is discarded.
type tryModel struct {
	provider   locale.Provider
	localeID   string
	format     string
	input      string
	focus      tryField
	matcher    *pattern.Matcher
	compileErr error
}

func newTryModel(provider locale.Provider, localeID, format, input string) tryModel {
	m := tryModel{
		provider: provider,
		localeID: localeID,
		format:   format,
		input:    input,
		focus:    fieldInput,
	}
	m.compile()
	return m
}

func (m *tryModel) compile() {
	m.matcher, m.compileErr = pattern.Compile(m.format, m.localeID, m.provider)
}

func (m tryModel) Init() tea.Cmd {
	return nil
}

func (m tryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	format := m.format
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		if m.focus == fieldFormat {
			m.focus = fieldInput
		} else {
			m.focus = fieldFormat
		}
	case tea.KeyBackspace:
		m.setFocused(dropLastRune(m.focused()))
	case tea.KeyCtrlU:
		m.setFocused("")
	case tea.KeySpace:
		m.setFocused(m.focused() + " ")
	case tea.KeyRunes:
		m.setFocused(m.focused() + string(key.Runes))
	}
	if m.format != format {
		m.compile()
	}
	return m, nil
}

func (m *tryModel) focused() string {
	if m.focus == fieldFormat {
		return m.format
	}
	return m.input
}

func (m *tryModel) setFocused(s string) {
	if m.focus == fieldFormat {
		m.format = s
	} else {
		m.input = s
	}
}

func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}

func (m tryModel) View() string {
	return m.render(true)
}

// render draws the model. Interactive rendering marks the focused field
// and shows key help.
func (m tryModel) render(interactive bool) string {
	var b strings.Builder

	field := func(label, value string, f tryField) {
		if interactive && m.focus == f {
			value = tryFocusStyle.Render(value + " ")
		}
		b.WriteString(tryLabelStyle.Render(label) + value + "\n")
	}
	line := func(label, value string) {
		b.WriteString(tryLabelStyle.Render(label) + value + "\n")
	}

	field("Format", m.format, fieldFormat)
	field("Input", m.input, fieldInput)
	line("Locale", m.localeID)
	b.WriteString("\n")

	if m.compileErr != nil {
		line("Error", Error(m.compileErr.Error()))
	} else {
		line("Regexp", m.matcher.Regexp())
		line("Groups", formatGroups(m.matcher.Fields()))

		if res, ok := m.matcher.Extract(m.input); ok {
			line("Result", formatResult(res))
			if t, err := clock.FromResult(res); err == nil {
				line("24h", Info(t.String()))
			} else {
				line("24h", Warning(err.Error()))
			}
		} else {
			line("Result", tryNoMatchStyle.Render("no match"))
		}
	}

	if interactive {
		b.WriteString("\n" + tryFooterStyle.Render("tab switch field · ctrl+u clear · esc quit") + "\n")
	}
	return b.String()
}

func runTry(cmd *cobra.Command, m tryModel) error {
	out := cmd.OutOrStdout()

	// Non-TTY fallback: print a single evaluation
	if !isTerminal(out) || !isTerminal(cmd.InOrStdin()) {
		return printStaticTry(out, m)
	}

	p := tea.NewProgram(m, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(out))
	_, err := p.Run()
	return err
}

func printStaticTry(w io.Writer, m tryModel) error {
	_, err := fmt.Fprint(w, m.render(false))
	return err
}
