package naming

import "strings"

// ErrorPrefix starts every error string returned through the legacy string
// channel. Generated names never start with it.
const ErrorPrefix = "Fehler:"

type ErrorCode string

const (
	CodeMissingRequired       ErrorCode = "missing_required_field"
	CodeInvalidSubmittedDate  ErrorCode = "invalid_submitted_date"
	CodeInvalidDocumentDate   ErrorCode = "invalid_document_date"
	CodeInvalidAdditionalInfo ErrorCode = "invalid_additional_info"
	CodeInvalidNameField      ErrorCode = "invalid_name_field"
)

var messages = map[ErrorCode]string{
	CodeMissingRequired:       ErrorPrefix + " Bitte alle Pflichtfelder ausfüllen (*).",
	CodeInvalidSubmittedDate:  ErrorPrefix + " Eingangsdatum muss im Format JJJJ.MM.TT sein.",
	CodeInvalidDocumentDate:   ErrorPrefix + " Datum des Dokuments muss im Format JJJJ.MM.TT sein.",
	CodeInvalidAdditionalInfo: ErrorPrefix + " Zusätzliche Info darf nur Buchstaben, Zahlen und Leerzeichen enthalten.",
	CodeInvalidNameField:      ErrorPrefix + " Person und Beschreibung dürfen keine Pfadzeichen (/ \\) enthalten und nicht mit \"" + ErrorPrefix + "\" beginnen.",
}

// ValidationError describes why a request could not be turned into a name.
// Message is the user-facing text and always begins with ErrorPrefix.
type ValidationError struct {
	Code    ErrorCode
	Field   string
	Message string
}

func newValidationError(code ErrorCode, field string) *ValidationError {
	return &ValidationError{Code: code, Field: field, Message: messages[code]}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsError reports whether a string from GenerateFileName is an error message.
func IsError(s string) bool {
	return strings.HasPrefix(s, ErrorPrefix)
}
