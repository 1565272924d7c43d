package registration

import "fmt"

// errorPrefix is prepended to every message in the rendered error block.
const errorPrefix = "Input "

// FieldValidationError is the only error kind the wizard produces.
// Missing and malformed values are not distinguished.
type FieldValidationError struct {
	Field   Field
	Message string
}

func (e *FieldValidationError) Error() string {
	return fmt.Sprintf("%s%s", errorPrefix, e.Message)
}

func newFieldValidationError(field Field, message string) *FieldValidationError {
	return &FieldValidationError{
		Field:   field,
		Message: message,
	}
}
