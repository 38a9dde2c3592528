package command

import "fmt"

// User-facing messages shared across commands.
const (
	MessageUnknownCommand       = "Unknown command"
	MessageInvalidCommandFormat = "Invalid command format!\n%s"
	MessageInvalidPersonIndex   = "The buyer index provided is invalid"
	MessageInvalidPropertyIndex = "The property index provided is invalid"
	MessageInvalidIndex         = "Index is not a non-zero unsigned integer."
	MessageNotEdited            = "At least one field to edit must be provided."
	MessageDuplicatePerson      = "This buyer already exists in the buyer book"
	MessageDuplicateProperty    = "This property already exists in the property book"
	MessagePersonsListed        = "%d buyers listed!"
	MessagePropertiesListed     = "%d properties listed!"
)

// ParseError reports input that could not be turned into a command.
// Message is shown to the user verbatim.
type ParseError struct {
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// invalidFormat returns a ParseError naming the expected usage.
func invalidFormat(usage string) *ParseError {
	return &ParseError{Message: fmt.Sprintf(MessageInvalidCommandFormat, usage)}
}

// Error reports a well-formed command that failed against the model,
// such as a duplicate entry or an index out of range.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}
