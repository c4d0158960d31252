// Package naming validates name requests and renders them into the office's
// file name convention:
//
//	person_description_YYYYMMDD[_additional-info][_von-YYYYMMDD]
package naming

import (
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Request holds the raw field values of one generate action.
type Request struct {
	Person         string `json:"person" yaml:"person"`
	Description    string `json:"description" yaml:"description"`
	DateSubmitted  string `json:"dateSubmitted" yaml:"date_submitted"`
	AdditionalInfo string `json:"additionalInfo,omitempty" yaml:"additional_info,omitempty"`
	DateOfDocument string `json:"dateOfDocument,omitempty" yaml:"date_of_document,omitempty"`
}

// Result is either a generated Name or a validation Err, never both.
type Result struct {
	Name string
	Err  *ValidationError
}

func (r Result) OK() bool {
	return r.Err == nil
}

// String returns the name, or the error message for failed results.
func (r Result) String() string {
	if r.Err != nil {
		return r.Err.Message
	}
	return r.Name
}

// Format validates req and renders it. Checks run in a fixed order and the
// first failure wins.
func Format(req Request) Result {
	req = normalize(req)

	if req.Person == "" || req.Description == "" || req.DateSubmitted == "" {
		return Result{Err: newValidationError(CodeMissingRequired, missingField(req))}
	}
	if field := unsafeField(req); field != "" {
		return Result{Err: newValidationError(CodeInvalidNameField, field)}
	}
	if _, err := ParseDate(req.DateSubmitted); err != nil {
		return Result{Err: newValidationError(CodeInvalidSubmittedDate, "dateSubmitted")}
	}
	if req.DateOfDocument != "" {
		if _, err := ParseDate(req.DateOfDocument); err != nil {
			return Result{Err: newValidationError(CodeInvalidDocumentDate, "dateOfDocument")}
		}
	}
	if req.AdditionalInfo != "" && !isPlainText(req.AdditionalInfo) {
		return Result{Err: newValidationError(CodeInvalidAdditionalInfo, "additionalInfo")}
	}

	parts := []string{
		req.Person,
		hyphenate(req.Description),
		CompactDate(req.DateSubmitted),
	}
	if req.AdditionalInfo != "" {
		parts = append(parts, hyphenate(req.AdditionalInfo))
	}
	if req.DateOfDocument != "" {
		parts = append(parts, "von-"+CompactDate(req.DateOfDocument))
	}
	return Result{Name: strings.Join(parts, "_")}
}

// Generate is Format with Go error semantics. The returned error is a
// *ValidationError.
func Generate(req Request) (string, error) {
	res := Format(req)
	if res.Err != nil {
		return "", res.Err
	}
	return res.Name, nil
}

// GenerateFileName is the legacy single string channel:
// failures come back as a message starting with ErrorPrefix.
func GenerateFileName(person, description, dateSubmitted, additionalInfo, dateOfDocument string) string {
	return Format(Request{
		Person:         person,
		Description:    description,
		DateSubmitted:  dateSubmitted,
		AdditionalInfo: additionalInfo,
		DateOfDocument: dateOfDocument,
	}).String()
}

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// NormalizeField trims s and brings it into Unicode NFC, the form every field
// is compared and rendered in.
func NormalizeField(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

func normalize(req Request) Request {
	clean := NormalizeField
	return Request{
		Person:         clean(req.Person),
		Description:    clean(req.Description),
		DateSubmitted:  clean(req.DateSubmitted),
		AdditionalInfo: clean(req.AdditionalInfo),
		DateOfDocument: clean(req.DateOfDocument),
	}
}

func missingField(req Request) string {
	switch {
	case req.Person == "":
		return "person"
	case req.Description == "":
		return "description"
	default:
		return "dateSubmitted"
	}
}

// unsafeField names the first of person and description that could make the
// name look like an error message or escape its directory.
func unsafeField(req Request) string {
	for _, f := range []struct{ name, value string }{
		{"person", req.Person},
		{"description", req.Description},
	} {
		if strings.HasPrefix(f.value, ErrorPrefix) || strings.ContainsAny(f.value, `/\`) {
			return f.name
		}
	}
	return ""
}

func isPlainText(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ':
		default:
			return false
		}
	}
	return true
}

func hyphenate(s string) string {
	return strings.ReplaceAll(s, " ", "-")
}
