// Package commands defines the executable commands of the address book.
//
// The set of commands is closed: every variant lives in this package and is
// produced by the parser package. A command is an immutable value. Executing
// it is the only way it affects a model.
package commands

import (
	"github.com/pbaille/abook/internal/model"
)

// Result describes the outcome of a command
type Result struct {
	Feedback string `json:"feedback"`
	ShowHelp bool   `json:"show_help,omitempty"`
	Exit     bool   `json:"exit,omitempty"`
}

// Command is a parsed, validated request ready to run against a model.
type Command interface {
	// Word is the command word that selects this command.
	Word() string
	// Execute applies the command to m. m must not be nil.
	Execute(m model.Model) (Result, error)
	// Mutates reports whether Execute may change the stored persons.
	Mutates() bool
	Equal(other Command) bool
	String() string
}

// requireModel panics on a nil model. Passing nil is a programming error,
// not something to report to the user.
func requireModel(m model.Model) {
	if m == nil {
		panic("commands: nil model")
	}
}
