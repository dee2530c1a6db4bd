// Package parser turns user input into commands.
package parser

import (
	"strings"
	"unicode"

	"github.com/pbaille/abook/internal/commands"
)

// Parse reads a full line such as "fn Alice Bob" and returns the command it
// names. Failures are always *ParseError.
func Parse(input string) (commands.Command, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, newError(InvalidFormat, "%s", commands.InvalidCommandFormat(commands.HelpUsage))
	}

	word, args := input, ""
	if i := strings.IndexFunc(input, unicode.IsSpace); i >= 0 {
		word, args = input[:i], input[i:]
	}

	switch word {
	case commands.AddWord:
		return wrap(ParseAdd(args))
	case commands.DeleteWord:
		return wrap(ParseDelete(args))
	case commands.FindWord:
		return wrap(ParseFind(args))
	case commands.FindNameWord:
		return wrap(ParseFindName(args))
	case commands.FindClientTypeWord:
		return wrap(ParseFindClientType(args))
	case commands.ListWord:
		return commands.ListCommand{}, nil
	case commands.ClearWord:
		return commands.ClearCommand{}, nil
	case commands.HelpWord:
		return commands.HelpCommand{}, nil
	case commands.ExitWord:
		return commands.ExitCommand{}, nil
	default:
		return nil, newError(UnknownCommand, "%s", commands.MessageUnknownCommand)
	}
}

// wrap keeps a failed parse from leaking a zero-value command
func wrap(cmd commands.Command, err error) (commands.Command, error) {
	if err != nil {
		return nil, err
	}
	return cmd, nil
}
