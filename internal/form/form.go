// Package form models the cascading selection form independent of any UI.
// A process selection narrows the document categories, a document selection
// narrows the descriptions, and changing an upstream field clears everything
// below it.
package form

import (
	"fmt"
	"slices"
	"time"

	"github.com/dmccarthy619/file-name-generator/internal/naming"
	"github.com/dmccarthy619/file-name-generator/internal/taxonomy"
)

// Lister is the read side of the taxonomy the form depends on.
type Lister interface {
	ListProcessCategories() []string
	ListDocumentCategories(process string) []string
	ListDescriptions(process, document string) []string
	ListPersons() []string
}

var _ Lister = (*taxonomy.Store)(nil)

// State is the complete set of field values. The zero value is an empty form.
type State struct {
	Process        string `json:"process"`
	Document       string `json:"document"`
	Description    string `json:"description"`
	Person         string `json:"person"`
	DateSubmitted  string `json:"dateSubmitted"`
	AdditionalInfo string `json:"additionalInfo"`
	DateOfDocument string `json:"dateOfDocument"`
}

// NewState returns an empty form whose submitted date defaults to now.
func NewState(now time.Time) State {
	return State{DateSubmitted: naming.DisplayDate(now)}
}

// Request converts the state into a formatter request.
func (s State) Request() naming.Request {
	return naming.Request{
		Person:         s.Person,
		Description:    s.Description,
		DateSubmitted:  s.DateSubmitted,
		AdditionalInfo: s.AdditionalInfo,
		DateOfDocument: s.DateOfDocument,
	}
}

// Options lists the values each select field may currently take.
type Options struct {
	Processes    []string `json:"processes"`
	Documents    []string `json:"documents"`
	Descriptions []string `json:"descriptions"`
	Persons      []string `json:"persons"`
}

// Derive computes the options for every select field from the field above it.
func Derive(l Lister, s State) Options {
	opts := Options{
		Processes:    l.ListProcessCategories(),
		Documents:    []string{},
		Descriptions: []string{},
		Persons:      l.ListPersons(),
	}
	if s.Process != "" {
		opts.Documents = l.ListDocumentCategories(s.Process)
	}
	if s.Process != "" && s.Document != "" {
		opts.Descriptions = l.ListDescriptions(s.Process, s.Document)
	}
	return opts
}

// Form couples a State with the taxonomy it is validated against.
type Form struct {
	lister Lister
	state  State
}

func New(l Lister, initial State) *Form {
	return &Form{lister: l, state: initial}
}

func (f *Form) State() State {
	return f.state
}

func (f *Form) Options() Options {
	return Derive(f.lister, f.state)
}

// SelectProcess sets the process and clears document and description.
// An empty value resets the selection.
func (f *Form) SelectProcess(process string) error {
	if process != "" && !slices.Contains(f.lister.ListProcessCategories(), process) {
		return &SelectionError{Field: "process", Value: process}
	}
	if process == f.state.Process {
		return nil
	}
	f.state.Process = process
	f.state.Document = ""
	f.state.Description = ""
	return nil
}

// SelectDocument sets the document category and clears the description.
func (f *Form) SelectDocument(document string) error {
	if document != "" && !slices.Contains(f.Options().Documents, document) {
		return &SelectionError{Field: "document", Value: document}
	}
	if document == f.state.Document {
		return nil
	}
	f.state.Document = document
	f.state.Description = ""
	return nil
}

func (f *Form) SelectDescription(description string) error {
	if description != "" && !slices.Contains(f.Options().Descriptions, description) {
		return &SelectionError{Field: "description", Value: description}
	}
	f.state.Description = description
	return nil
}

// SelectPerson sets the person. When the taxonomy lists no persons any
// value is accepted.
func (f *Form) SelectPerson(person string) error {
	persons := f.lister.ListPersons()
	if person != "" && len(persons) > 0 && !slices.Contains(persons, person) {
		return &SelectionError{Field: "person", Value: person}
	}
	f.state.Person = person
	return nil
}

func (f *Form) SetDateSubmitted(v string)  { f.state.DateSubmitted = v }
func (f *Form) SetAdditionalInfo(v string) { f.state.AdditionalInfo = v }
func (f *Form) SetDateOfDocument(v string) { f.state.DateOfDocument = v }

// Apply replays a full state through the select methods so the cascade rules
// hold for it, e.g. for values given on a command line or posted by a client.
// Select values are normalized the way the formatter normalizes them.
func (f *Form) Apply(s State) error {
	steps := []struct {
		fn    func(string) error
		value string
	}{
		{f.SelectProcess, s.Process},
		{f.SelectDocument, s.Document},
		{f.SelectDescription, s.Description},
		{f.SelectPerson, s.Person},
	}
	for _, step := range steps {
		if err := step.fn(naming.NormalizeField(step.value)); err != nil {
			return err
		}
	}
	f.SetDateSubmitted(s.DateSubmitted)
	f.SetAdditionalInfo(s.AdditionalInfo)
	f.SetDateOfDocument(s.DateOfDocument)
	return nil
}

// Check reports the first select value of s that the taxonomy does not offer.
// Empty values pass; the formatter reports missing fields.
func Check(l Lister, s State) error {
	return New(l, State{}).Apply(s)
}

// Submit runs the formatter on the current state.
func (f *Form) Submit() naming.Result {
	return naming.Format(f.state.Request())
}

// SelectionError reports a value that is not among the derived options.
type SelectionError struct {
	Field string
	Value string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("%s %q is not a valid option", e.Field, e.Value)
}
