package form

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmccarthy619/file-name-generator/internal/taxonomy"
)

func newForm() *Form {
	return New(taxonomy.NewDefaultStore(), NewState(time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)))
}

func TestNewStateDefaultsSubmittedDate(t *testing.T) {
	s := NewState(time.Date(2024, 1, 5, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024.01.05", s.DateSubmitted)
	assert.Empty(t, s.Process)
}

func TestDeriveEmptyState(t *testing.T) {
	opts := Derive(taxonomy.NewDefaultStore(), State{})
	assert.Len(t, opts.Processes, 3)
	assert.Empty(t, opts.Documents)
	assert.Empty(t, opts.Descriptions)
	assert.Len(t, opts.Persons, 12)
}

func TestDeriveCascades(t *testing.T) {
	store := taxonomy.NewDefaultStore()

	opts := Derive(store, State{Process: "002_Entscheidung"})
	assert.Equal(t, store.ListDocumentCategories("002_Entscheidung"), opts.Documents)
	assert.Empty(t, opts.Descriptions)

	opts = Derive(store, State{Process: "002_Entscheidung", Document: "BBB_Bescheid"})
	assert.Equal(t, []string{"Einbürgerungsbescheid", "Ablehnungsbescheid", taxonomy.MiscSentinel}, opts.Descriptions)

	// a document without a process yields nothing
	opts = Derive(store, State{Document: "BBB_Bescheid"})
	assert.Empty(t, opts.Descriptions)
}

func TestChangingProcessClearsDownstream(t *testing.T) {
	f := newForm()
	require.NoError(t, f.SelectProcess("001_Hauptverfahren"))
	require.NoError(t, f.SelectDocument("AAA_Identitat"))
	require.NoError(t, f.SelectDescription("National-Pass"))

	require.NoError(t, f.SelectProcess("001_Hauptverfahren"))
	assert.Equal(t, "National-Pass", f.State().Description, "reselecting the same process keeps selections")

	require.NoError(t, f.SelectProcess("003_Schriftverkehr"))
	s := f.State()
	assert.Equal(t, "003_Schriftverkehr", s.Process)
	assert.Empty(t, s.Document)
	assert.Empty(t, s.Description)
}

func TestChangingDocumentClearsDescription(t *testing.T) {
	f := newForm()
	require.NoError(t, f.SelectProcess("001_Hauptverfahren"))
	require.NoError(t, f.SelectDocument("AAA_Identitat"))
	require.NoError(t, f.SelectDescription("Geburtsurkunde"))

	require.NoError(t, f.SelectDocument("BBB_Aufenthaltstitel"))
	assert.Empty(t, f.State().Description)
	assert.Contains(t, f.Options().Descriptions, "Blaukarte EU")
}

func TestRejectsOptionsOutsideCascade(t *testing.T) {
	f := newForm()

	var selErr *SelectionError
	err := f.SelectDocument("AAA_Identitat")
	require.True(t, errors.As(err, &selErr))
	assert.Equal(t, "document", selErr.Field)

	require.Error(t, f.SelectProcess("999_Unbekannt"))
	require.NoError(t, f.SelectProcess("002_Entscheidung"))
	require.Error(t, f.SelectDocument("AAA_Identitat"))
	require.NoError(t, f.SelectDocument("EEE_Revision"))
	require.Error(t, f.SelectDescription("National-Pass"))
	require.Error(t, f.SelectPerson("Kind11"))

	assert.Equal(t, "002_Entscheidung", f.State().Process)
	assert.Equal(t, "EEE_Revision", f.State().Document)
}

func TestSelectPersonWithoutPersonList(t *testing.T) {
	store := taxonomy.NewStore(&taxonomy.Taxonomy{Processes: taxonomy.Default().Processes})
	f := New(store, State{})
	require.NoError(t, f.SelectPerson("Beliebig"))
	assert.Equal(t, "Beliebig", f.State().Person)
}

func TestSubmit(t *testing.T) {
	f := newForm()
	require.NoError(t, f.SelectProcess("001_Hauptverfahren"))
	require.NoError(t, f.SelectDocument("BBB_Aufenthaltstitel"))
	require.NoError(t, f.SelectDescription("Blaukarte EU"))
	require.NoError(t, f.SelectPerson("Kind2"))
	f.SetAdditionalInfo("Seite 2")
	f.SetDateOfDocument("2021.07.01")

	res := f.Submit()
	require.True(t, res.OK())
	assert.Equal(t, "Kind2_Blaukarte-EU_20240115_Seite-2_von-20210701", res.Name)
}

func TestSubmitIncompleteForm(t *testing.T) {
	res := newForm().Submit()
	require.False(t, res.OK())
	assert.Equal(t, "Fehler: Bitte alle Pflichtfelder ausfüllen (*).", res.String())
}

func TestApply(t *testing.T) {
	f := newForm()
	err := f.Apply(State{
		Process:       "003_Schriftverkehr",
		Document:      "BBB_Mitteilung",
		Description:   "Zwischenbescheid",
		Person:        "Ast1",
		DateSubmitted: "2024.03.01",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ast1_Zwischenbescheid_20240301", f.Submit().Name)

	err = f.Apply(State{Process: "003_Schriftverkehr", Document: "AAA_Identitat"})
	require.Error(t, err)
}

func TestCheckPerson(t *testing.T) {
	store := taxonomy.NewDefaultStore()

	require.NoError(t, Check(store, State{Person: "Kind2"}))
	require.NoError(t, Check(store, State{Person: " Kind2 "}))
	require.NoError(t, Check(store, State{}))

	err := Check(store, State{Person: "Fehler: x"})
	var selErr *SelectionError
	require.ErrorAs(t, err, &selErr)
	assert.Equal(t, "person", selErr.Field)
}

func TestCheckNormalizesDescription(t *testing.T) {
	err := Check(taxonomy.NewDefaultStore(), State{
		Process:     "001_Hauptverfahren",
		Document:    "BBB_Aufenthaltstitel",
		Description: " Reiseausweis f\u00fcr Ausla\u0308nder",
	})
	require.NoError(t, err)
}
