package parser

import (
	"slices"
	"strconv"
	"strings"

	"github.com/pbaille/abook/internal/commands"
	"github.com/pbaille/abook/internal/domain"
)

// ParseAdd parses n/NAME p/PHONE e/EMAIL a/ADDRESS [c/CLIENT_TYPE]...
func ParseAdd(args string) (commands.AddCommand, error) {
	am := Tokenize(" "+args,
		commands.PrefixName, commands.PrefixPhone, commands.PrefixEmail,
		commands.PrefixAddress, commands.PrefixClientType)

	required := []string{commands.PrefixName, commands.PrefixPhone, commands.PrefixEmail, commands.PrefixAddress}
	if am.Preamble != "" || !allPresent(am, required) {
		return commands.AddCommand{}, newError(InvalidFormat, "%s", commands.InvalidCommandFormat(commands.AddUsage))
	}
	if dups := am.Duplicates(required...); len(dups) > 0 {
		return commands.AddCommand{}, duplicatePrefixError(dups)
	}

	name, _ := am.Value(commands.PrefixName)
	phone, _ := am.Value(commands.PrefixPhone)
	email, _ := am.Value(commands.PrefixEmail)
	address, _ := am.Value(commands.PrefixAddress)

	var clientTypes []string
	for _, ct := range am.All(commands.PrefixClientType) {
		if slices.ContainsFunc(clientTypes, func(s string) bool { return strings.EqualFold(s, ct) }) {
			continue
		}
		clientTypes = append(clientTypes, ct)
	}

	p := domain.NewPerson(name, phone, email, address, clientTypes)
	if err := p.Validate(); err != nil {
		return commands.AddCommand{}, newError(InvalidValue, "%s", err.Error())
	}
	return commands.NewAddCommand(p), nil
}

// ParseDelete parses a positive 1-based index
func ParseDelete(args string) (commands.DeleteCommand, error) {
	index, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil || index <= 0 {
		return commands.DeleteCommand{}, newError(InvalidFormat, "%s", commands.InvalidCommandFormat(commands.DeleteUsage))
	}
	return commands.NewDeleteCommand(index), nil
}

func allPresent(am ArgMultimap, prefixes []string) bool {
	for _, p := range prefixes {
		if !am.Has(p) {
			return false
		}
	}
	return true
}

func duplicatePrefixError(prefixes []string) *ParseError {
	return newError(InvalidValue,
		"Multiple values specified for the following single-valued field(s): %s",
		strings.Join(prefixes, " "))
}
