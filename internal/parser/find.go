package parser

import (
	"strings"

	"github.com/pbaille/abook/internal/commands"
	"github.com/pbaille/abook/internal/domain"
)

// ParseFindName parses the arguments of fn. Every whitespace separated word
// becomes a keyword.
func ParseFindName(args string) (commands.FindNameCommand, error) {
	keywords, err := splitKeywords(args, commands.FindNameUsage)
	if err != nil {
		return commands.FindNameCommand{}, err
	}
	return commands.NewFindNameCommand(domain.NewNameContainsKeywords(keywords)), nil
}

// ParseFindClientType parses the arguments of fc
func ParseFindClientType(args string) (commands.FindClientTypeCommand, error) {
	keywords, err := splitKeywords(args, commands.FindClientTypeUsage)
	if err != nil {
		return commands.FindClientTypeCommand{}, err
	}
	return commands.NewFindClientTypeCommand(domain.NewClientTypeContainsKeywords(keywords)), nil
}

// ParseFind parses the prefixed form: exactly one of n/KEYWORDS or
// c/KEYWORDS and nothing before it.
func ParseFind(args string) (commands.FindCommand, error) {
	am := Tokenize(" "+args, commands.PrefixName, commands.PrefixClientType)
	hasName, hasType := am.Has(commands.PrefixName), am.Has(commands.PrefixClientType)

	if am.Preamble != "" || hasName == hasType {
		return commands.FindCommand{}, newError(InvalidFormat, "%s", commands.InvalidCommandFormat(commands.FindUsage))
	}
	if dups := am.Duplicates(commands.PrefixName, commands.PrefixClientType); len(dups) > 0 {
		return commands.FindCommand{}, duplicatePrefixError(dups)
	}

	if hasName {
		value, _ := am.Value(commands.PrefixName)
		keywords, err := splitKeywords(value, commands.FindNameUsage)
		if err != nil {
			return commands.FindCommand{}, err
		}
		if !domain.ValidName(strings.Join(keywords, " ")) {
			return commands.FindCommand{}, newError(InvalidValue, "%s", domain.NameConstraints)
		}
		return commands.NewFindCommand(domain.NewNameStartsWithKeywords(keywords)), nil
	}

	value, _ := am.Value(commands.PrefixClientType)
	keywords, err := splitKeywords(value, commands.FindClientTypeUsage)
	if err != nil {
		return commands.FindCommand{}, err
	}
	return commands.NewFindCommand(domain.NewClientTypeContainsKeywords(keywords)), nil
}

func splitKeywords(args, usage string) ([]string, error) {
	trimmed := strings.TrimSpace(args)
	if trimmed == "" {
		return nil, newError(InvalidFormat, "%s", commands.InvalidCommandFormat(usage))
	}
	return strings.Fields(trimmed), nil
}
