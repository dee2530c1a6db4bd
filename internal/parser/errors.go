package parser

import "fmt"

// ErrorKind classifies parse failures
type ErrorKind int

const (
	InvalidFormat ErrorKind = iota + 1
	UnknownCommand
	InvalidValue
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidFormat:
		return "invalid_format"
	case UnknownCommand:
		return "unknown_command"
	case InvalidValue:
		return "invalid_value"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError is returned for any user input that cannot become a command.
// Message is meant to be shown to the user as is.
type ParseError struct {
	Kind    ErrorKind
	Message string
}

func (e *ParseError) Error() string { return e.Message }

func newError(kind ErrorKind, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
