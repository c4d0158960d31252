package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmccarthy619/file-name-generator/internal/export"
	"github.com/dmccarthy619/file-name-generator/internal/form"
	"github.com/dmccarthy619/file-name-generator/internal/naming"
	"github.com/dmccarthy619/file-name-generator/internal/taxonomy"
)

func newModel(t *testing.T) Model {
	t.Helper()
	f := form.New(taxonomy.NewDefaultStore(), form.NewState(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	return New(f, t.TempDir())
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// fillPassForm selects 001_Hauptverfahren / AAA_Identitat / Ast1 / National-Pass.
func fillPassForm(m Model) Model {
	return send(m,
		keyRight,           // process -> 001_Hauptverfahren
		keyTab, keyRight,   // document -> AAA_Identitat
		keyTab, keyRight,   // person -> Ast1
		keyTab, keyRight,   // description -> National-Pass
	)
}

func TestInitialState(t *testing.T) {
	m := newModel(t)
	assert.Equal(t, fieldProcess, m.focus)
	assert.Equal(t, "2024.01.15", m.State().DateSubmitted)
	_, ok := m.Result()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "Dateiname Generator")
}

func TestCycleSelectsAndWraps(t *testing.T) {
	m := newModel(t)

	m = send(m, keyRight)
	assert.Equal(t, "001_Hauptverfahren", m.State().Process)

	m = send(m, keyLeft, keyLeft)
	assert.Equal(t, "003_Schriftverkehr", m.State().Process, "left from the empty entry wraps to the last option")

	m = send(m, keyRight)
	assert.Empty(t, m.State().Process, "right from the last option wraps to the empty entry")
}

func TestChangingProcessClearsDocument(t *testing.T) {
	m := fillPassForm(newModel(t))
	require.Equal(t, "AAA_Identitat", m.State().Document)
	require.Equal(t, "National-Pass", m.State().Description)

	m = send(m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, fieldProcess, m.focus)
	m = send(m, keyRight)

	assert.Equal(t, "002_Entscheidung", m.State().Process)
	assert.Empty(t, m.State().Document)
	assert.Empty(t, m.State().Description)
	assert.Equal(t, "Ast1", m.State().Person)
}

func TestGenerateScenario(t *testing.T) {
	m := fillPassForm(newModel(t))
	m = send(m, keyTab, keyTab, typeText("Copy 2"), keyTab, typeText("2023.12.01"), keyEnter)

	res, ok := m.Result()
	require.True(t, ok)
	require.True(t, res.OK(), res.String())
	assert.Equal(t, "Ast1_National-Pass_20240115_Copy-2_von-20231201", res.Name)
	assert.Contains(t, m.View(), "Ast1_National-Pass_20240115_Copy-2_von-20231201")
}

func TestGenerateShowsError(t *testing.T) {
	m := send(newModel(t), keyEnter)
	res, ok := m.Result()
	require.True(t, ok)
	assert.False(t, res.OK())
	assert.Contains(t, m.View(), naming.ErrorPrefix)
}

func TestCopyAndSave(t *testing.T) {
	var copied string
	origCopy, origSave := copyResult, saveResult
	copyResult = func(res naming.Result) error {
		text, err := export.Text(res)
		copied = text
		return err
	}
	t.Cleanup(func() { copyResult, saveResult = origCopy, origSave })

	m := newModel(t)
	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.True(t, m.statusErr, "copy before generate is refused")

	m = send(fillPassForm(m), keyEnter, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.False(t, m.statusErr, m.status)
	assert.Equal(t, "Ast1_National-Pass_20240115", copied)

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.False(t, m.statusErr, m.status)
	assert.Contains(t, m.status, filepath.Join(m.exportDir, export.DefaultFileName))
}

func TestErrorResultsAreNotExported(t *testing.T) {
	called := false
	origCopy := copyResult
	copyResult = func(res naming.Result) error {
		called = true
		return export.Copy(naming.Result{Err: res.Err})
	}
	t.Cleanup(func() { copyResult = origCopy })

	m := send(newModel(t), keyEnter, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.True(t, called)
	assert.True(t, m.statusErr)

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "Speichern fehlgeschlagen")
}

func TestCopyFailureIsReported(t *testing.T) {
	origCopy := copyResult
	copyResult = func(naming.Result) error { return errors.New("kein xclip") }
	t.Cleanup(func() { copyResult = origCopy })

	m := send(fillPassForm(newModel(t)), keyEnter, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "kein xclip")
}

func TestTextFieldsTakeLetters(t *testing.T) {
	m := newModel(t)
	// move to additional info; "q" and "h" are text there, not commands
	m = send(m, keyTab, keyTab, keyTab, keyTab, keyTab, typeText("qh"))
	assert.Equal(t, "qh", m.State().AdditionalInfo)
	assert.False(t, m.quitting)
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	next, cmd := m.Update(typeText("q"))
	require.NotNil(t, cmd)
	assert.True(t, next.(Model).quitting)
	assert.Empty(t, next.(Model).View())

	_, cmd = newModel(t).Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
}

func TestViewListsAllLabels(t *testing.T) {
	view := newModel(t).View()
	for _, label := range labels {
		assert.True(t, strings.Contains(view, label), "missing label %q", label)
	}
	assert.Contains(t, view, "(keine Optionen)")
}

func TestEditingClearsGeneratedName(t *testing.T) {
	saved := false
	origSave := saveResult
	saveResult = func(string, naming.Result) (string, error) {
		saved = true
		return "", nil
	}
	t.Cleanup(func() { saveResult = origSave })

	m := send(fillPassForm(newModel(t)), keyEnter)
	_, ok := m.Result()
	require.True(t, ok)

	// description is focused; switching it invalidates the name
	m = send(m, keyRight)
	_, ok = m.Result()
	assert.False(t, ok)
	assert.NotContains(t, m.View(), "Ast1_National-Pass_20240115")

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.False(t, saved)
	assert.True(t, m.statusErr)

	m = send(m, keyEnter, keyTab, keyTab, typeText("x"))
	_, ok = m.Result()
	assert.False(t, ok, "typing into a text field invalidates the name")
}

func TestCursorMovesKeepGeneratedName(t *testing.T) {
	m := send(fillPassForm(newModel(t)), keyEnter, keyTab)
	m = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	_, ok := m.Result()
	assert.True(t, ok)
}
