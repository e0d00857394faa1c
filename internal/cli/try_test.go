package cli

import (
	"bytes"
	"testing"

	"github.com/Flyrell/timepattern/internal/locale"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTryModel(format, input string) tryModel {
	return newTryModel(locale.Builtin(), "en", format, input)
}

func typeRunes(t *testing.T, m tryModel, s string) tryModel {
	t.Helper()
	for _, r := range s {
		var msg tea.KeyMsg
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		}
		next, _ := m.Update(msg)
		m = next.(tryModel)
	}
	return m
}

func pressKey(t *testing.T, m tryModel, k tea.KeyType) (tryModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(tryModel), cmd
}

func TestTryModelTypingInput(t *testing.T) {
	m := newTestTryModel("h:mm a", "")

	m = typeRunes(t, m, "3:15 PM")

	assert.Equal(t, "3:15 PM", m.input)
	view := m.render(false)
	assert.Contains(t, view, "period=")
	assert.Contains(t, view, "15:15:00")
}

func TestTryModelEditingFormat(t *testing.T) {
	m := newTestTryModel("HH", "07:45")

	m, _ = pressKey(t, m, tea.KeyTab)
	require.Equal(t, fieldFormat, m.focus)
	m = typeRunes(t, m, ":mm")

	assert.Equal(t, "HH:mm", m.format)
	assert.Equal(t, "07:45", m.input)
	assert.Contains(t, m.render(false), "1 hour, 2 minute")

	m, _ = pressKey(t, m, tea.KeyTab)
	assert.Equal(t, fieldInput, m.focus)
}

func TestTryModelKeepsOnlyCurrentMatcher(t *testing.T) {
	m := newTestTryModel("H", "07:45")
	first := m.matcher
	require.NotNil(t, first)

	m, _ = pressKey(t, m, tea.KeyTab)
	m = typeRunes(t, m, "H:mm")

	require.NotNil(t, m.matcher)
	assert.Equal(t, "HH:mm", m.matcher.Pattern())
	assert.NotSame(t, first, m.matcher)

	// Edits to the input leave the compiled format alone.
	m, _ = pressKey(t, m, tea.KeyTab)
	current := m.matcher
	m = typeRunes(t, m, "!")
	assert.Same(t, current, m.matcher)
}

func TestTryModelRecompileError(t *testing.T) {
	m := newTestTryModel("HH", "3 PM")

	m, _ = pressKey(t, m, tea.KeyTab)
	m = typeRunes(t, m, " a")
	require.NoError(t, m.compileErr)

	m.localeID = "xx"
	m = typeRunes(t, m, "a")

	assert.Nil(t, m.matcher)
	assert.ErrorIs(t, m.compileErr, locale.ErrUnsupportedLocale)
}

func TestTryModelBackspaceAndClear(t *testing.T) {
	m := newTestTryModel("HH:mm", "午前")

	m, _ = pressKey(t, m, tea.KeyBackspace)
	assert.Equal(t, "午", m.input)

	m, _ = pressKey(t, m, tea.KeyCtrlU)
	assert.Equal(t, "", m.input)

	m, _ = pressKey(t, m, tea.KeyBackspace)
	assert.Equal(t, "", m.input)
}

func TestTryModelQuit(t *testing.T) {
	m := newTestTryModel("HH:mm", "")

	_, cmd := pressKey(t, m, tea.KeyEsc)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTryModelIgnoresOtherMessages(t *testing.T) {
	m := newTestTryModel("HH:mm", "10:00")

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Nil(t, cmd)
	assert.Equal(t, m, next)
}

func TestTryRenderNoMatch(t *testing.T) {
	m := newTestTryModel("HH:mm", "noon")

	assert.Contains(t, m.render(false), "no match")
}

func TestTryRenderCompileError(t *testing.T) {
	m := newTryModel(locale.Builtin(), "xx", "h a", "3 PM")

	assert.Contains(t, m.render(false), "unsupported locale")
}

func TestTryInteractiveViewShowsHelp(t *testing.T) {
	m := newTestTryModel("HH:mm", "")

	assert.Contains(t, m.View(), "esc quit")
	assert.NotContains(t, m.render(false), "esc quit")
}

func TestRunTryNonTTYFallback(t *testing.T) {
	buf := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	cmd.SetIn(new(bytes.Buffer))

	err := runTry(cmd, newTestTryModel("h:mm a", "9:05 AM"))

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Regexp")
	assert.Contains(t, buf.String(), "09:05:00")
}
