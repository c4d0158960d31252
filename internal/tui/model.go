// Package tui is the interactive terminal rendition of the file name form.
package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmccarthy619/file-name-generator/internal/export"
	"github.com/dmccarthy619/file-name-generator/internal/form"
	"github.com/dmccarthy619/file-name-generator/internal/naming"
)

// swapped out in tests
var (
	copyResult = export.Copy
	saveResult = export.WriteFile
)

type fieldID int

const (
	fieldProcess fieldID = iota
	fieldDocument
	fieldPerson
	fieldDescription
	fieldDateSubmitted
	fieldAdditionalInfo
	fieldDateOfDocument
	fieldCount
)

var labels = [fieldCount]string{
	fieldProcess:        "Vorgang *",
	fieldDocument:       "Dokument *",
	fieldPerson:         "Person *",
	fieldDescription:    "Beschreibung *",
	fieldDateSubmitted:  "Eingangsdatum (YYYY.MM.DD) *",
	fieldAdditionalInfo: "Zusätzliche Info",
	fieldDateOfDocument: "Datum des Dokuments (YYYY.MM.DD)",
}

func (f fieldID) isText() bool {
	return f >= fieldDateSubmitted
}

type Model struct {
	form      *form.Form
	focus     fieldID
	inputs    map[fieldID]*textinput.Model
	result    *naming.Result
	status    string
	statusErr bool
	exportDir string
	styles    Styles
	quitting  bool
}

// New builds the model around f. Saved exports go to exportDir.
func New(f *form.Form, exportDir string) Model {
	state := f.State()
	m := Model{
		form:      f,
		inputs:    map[fieldID]*textinput.Model{},
		exportDir: exportDir,
		styles:    DefaultStyles(),
	}
	initial := map[fieldID]string{
		fieldDateSubmitted:  state.DateSubmitted,
		fieldAdditionalInfo: state.AdditionalInfo,
		fieldDateOfDocument: state.DateOfDocument,
	}
	for id := fieldDateSubmitted; id < fieldCount; id++ {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 64
		ti.SetValue(initial[id])
		m.inputs[id] = &ti
	}
	return m
}

// Run shows the form until the user quits or ctx is cancelled.
func Run(ctx context.Context, m Model) (Model, error) {
	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return m, err
	}
	return final.(Model), nil
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Result is the last generated result, if any.
func (m Model) Result() (naming.Result, bool) {
	if m.result == nil {
		return naming.Result{}, false
	}
	return *m.result, true
}

func (m Model) State() form.State {
	return m.form.State()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyTab, tea.KeyDown:
		return m.moveFocus(1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m.moveFocus(-1)
	case tea.KeyEnter:
		m.generate()
		return m, nil
	case tea.KeyCtrlY:
		m.copy()
		return m, nil
	case tea.KeyCtrlS:
		m.save()
		return m, nil
	}

	if m.focus.isText() {
		in := m.inputs[m.focus]
		updated, cmd := in.Update(key)
		*in = updated
		m.syncText(m.focus, in.Value())
		return m, cmd
	}

	switch {
	case key.Type == tea.KeyRight || key.String() == "l" || key.String() == " ":
		m.cycle(1)
	case key.Type == tea.KeyLeft || key.String() == "h":
		m.cycle(-1)
	case key.String() == "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	if m.focus.isText() {
		m.inputs[m.focus].Blur()
	}
	m.focus = fieldID((int(m.focus) + delta + int(fieldCount)) % int(fieldCount))
	if m.focus.isText() {
		return m, m.inputs[m.focus].Focus()
	}
	return m, nil
}

func (m *Model) options(id fieldID) []string {
	opts := m.form.Options()
	switch id {
	case fieldProcess:
		return opts.Processes
	case fieldDocument:
		return opts.Documents
	case fieldPerson:
		return opts.Persons
	case fieldDescription:
		return opts.Descriptions
	}
	return nil
}

func (m *Model) selected(id fieldID) string {
	s := m.form.State()
	switch id {
	case fieldProcess:
		return s.Process
	case fieldDocument:
		return s.Document
	case fieldPerson:
		return s.Person
	case fieldDescription:
		return s.Description
	}
	return ""
}

// cycle moves a select field through its options. As in a dropdown, the
// list starts with an empty entry.
func (m *Model) cycle(delta int) {
	choices := append([]string{""}, m.options(m.focus)...)
	idx := slices.Index(choices, m.selected(m.focus))
	if idx < 0 {
		idx = 0
	}
	next := choices[(idx+delta+len(choices))%len(choices)]
	before := m.form.State()

	var err error
	switch m.focus {
	case fieldProcess:
		err = m.form.SelectProcess(next)
	case fieldDocument:
		err = m.form.SelectDocument(next)
	case fieldPerson:
		err = m.form.SelectPerson(next)
	case fieldDescription:
		err = m.form.SelectDescription(next)
	}
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if m.form.State() != before {
		m.clearResult()
	}
}

func (m *Model) syncText(id fieldID, value string) {
	before := m.form.State()
	defer func() {
		if m.form.State() != before {
			m.clearResult()
		}
	}()
	switch id {
	case fieldDateSubmitted:
		m.form.SetDateSubmitted(value)
	case fieldAdditionalInfo:
		m.form.SetAdditionalInfo(value)
	case fieldDateOfDocument:
		m.form.SetDateOfDocument(value)
	}
}

func (m *Model) generate() {
	res := m.form.Submit()
	m.result = &res
	m.status = ""
}

// clearResult drops a generated name once the form no longer matches it, so
// a stale name cannot be copied or saved.
func (m *Model) clearResult() {
	m.result = nil
	m.status = ""
}

func (m *Model) copy() {
	res, ok := m.Result()
	if !ok {
		m.setStatus("Noch kein Dateiname generiert", true)
		return
	}
	if err := copyResult(res); err != nil {
		m.setStatus(fmt.Sprintf("Kopieren fehlgeschlagen: %v", err), true)
		return
	}
	m.setStatus("Dateiname in die Zwischenablage kopiert", false)
}

func (m *Model) save() {
	res, ok := m.Result()
	if !ok {
		m.setStatus("Noch kein Dateiname generiert", true)
		return
	}
	path, err := saveResult(m.exportDir, res)
	if err != nil {
		m.setStatus(fmt.Sprintf("Speichern fehlgeschlagen: %v", err), true)
		return
	}
	m.setStatus("Gespeichert: "+path, false)
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Dateiname Generator"))
	b.WriteString("\n")

	for id := fieldID(0); id < fieldCount; id++ {
		label := m.styles.Label.Render("  " + labels[id])
		if id == m.focus {
			label = m.styles.Focused.Render("› " + labels[id])
		}
		b.WriteString(label)
		if id.isText() {
			b.WriteString(m.inputs[id].View())
		} else {
			b.WriteString(m.renderSelect(id))
		}
		b.WriteString("\n")
	}

	if res, ok := m.Result(); ok {
		style := m.styles.Success
		if !res.OK() {
			style = m.styles.Error
		}
		b.WriteString(m.styles.Result.Render("Generierter Dateiname:\n" + style.Render(res.String())))
		b.WriteString("\n")
	}
	if m.status != "" {
		style := m.styles.Status
		if m.statusErr {
			style = m.styles.Error
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("tab/↑↓ Feld • ←/→ Auswahl • enter generieren • ctrl+y kopieren • ctrl+s speichern • esc beenden"))
	return b.String()
}

func (m Model) renderSelect(id fieldID) string {
	value := m.selected(id)
	if value == "" {
		if len(m.options(id)) == 0 {
			return m.styles.Empty.Render("(keine Optionen)")
		}
		return m.styles.Empty.Render("‹ bitte wählen ›")
	}
	return m.styles.Value.Render("‹ " + value + " ›")
}
