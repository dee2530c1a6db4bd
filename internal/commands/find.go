package commands

import (
	"fmt"

	"github.com/pbaille/abook/internal/domain"
	"github.com/pbaille/abook/internal/model"
)

const (
	FindWord           = "find"
	FindNameWord       = "fn"
	FindClientTypeWord = "fc"
)

const FindUsage = FindWord + ": Finds all persons matching a single prefixed field.\n" +
	"Parameters: " + PrefixName + "NAME or " + PrefixClientType + "CLIENT_TYPE\n" +
	"Example:\n" +
	"- " + FindWord + " " + PrefixName + "Ali Pau\n" +
	"- " + FindWord + " " + PrefixClientType + "VIP\n" +
	"Additional Info: \n" +
	"- NAME matches persons whose names contain all of the given word prefixes.\n" +
	"- CLIENT_TYPE matches persons having any of the given client type words."

const FindNameUsage = FindWord + " " + PrefixName + " or " + FindNameWord +
	": Finds all persons whose names contain any of the specified keywords " +
	"and displays them as a list with index numbers.\n" +
	"Parameters: NAME (String & must be non-empty)\n" +
	"Example:\n" +
	"- " + FindNameWord + " Alice\n" +
	"- " + FindWord + " " + PrefixName + "Alice\n" +
	"Additional Info: \n" +
	"- NAME is case-insensitive.\n" +
	"- It should contain letters, spaces, parenthesis or slashes only.\n" +
	"- They cannot be empty or have only spaces."

const FindClientTypeUsage = FindWord + " " + PrefixClientType + " or " + FindClientTypeWord +
	": Finds all persons having a client type containing any of the specified keywords " +
	"and displays them as a list with index numbers.\n" +
	"Parameters: CLIENT_TYPE [MORE_CLIENT_TYPES]...\n" +
	"Example:\n" +
	"- " + FindClientTypeWord + " VIP Corporate\n" +
	"- " + FindWord + " " + PrefixClientType + "VIP\n" +
	"Additional Info: \n" +
	"- CLIENT_TYPE is case-insensitive and matched as whole words."

// FindNameCommand lists persons whose name contains any of the keywords
type FindNameCommand struct {
	Predicate domain.NameContainsKeywords
}

func NewFindNameCommand(pred domain.NameContainsKeywords) FindNameCommand {
	return FindNameCommand{Predicate: pred}
}

func (c FindNameCommand) Word() string  { return FindNameWord }
func (c FindNameCommand) Mutates() bool { return false }

// Execute narrows the model's filtered view and reports how many persons
// remain visible. It panics if m is nil.
func (c FindNameCommand) Execute(m model.Model) (Result, error) {
	return filter(m, c.Predicate), nil
}

// Equal reports whether other is a FindNameCommand with an equal predicate.
func (c FindNameCommand) Equal(other Command) bool {
	o, ok := other.(FindNameCommand)
	return ok && c.Predicate.Equal(o.Predicate)
}

func (c FindNameCommand) String() string {
	return fmt.Sprintf("FindNameCommand{predicate=%s}", c.Predicate)
}

// FindClientTypeCommand lists persons having a client type word matching any keyword
type FindClientTypeCommand struct {
	Predicate domain.ClientTypeContainsKeywords
}

func NewFindClientTypeCommand(pred domain.ClientTypeContainsKeywords) FindClientTypeCommand {
	return FindClientTypeCommand{Predicate: pred}
}

func (c FindClientTypeCommand) Word() string  { return FindClientTypeWord }
func (c FindClientTypeCommand) Mutates() bool { return false }

// Execute narrows the model's filtered view and reports how many persons
// remain visible. It panics if m is nil.
func (c FindClientTypeCommand) Execute(m model.Model) (Result, error) {
	return filter(m, c.Predicate), nil
}

// Equal reports whether other is a FindClientTypeCommand with an equal predicate.
func (c FindClientTypeCommand) Equal(other Command) bool {
	o, ok := other.(FindClientTypeCommand)
	return ok && c.Predicate.Equal(o.Predicate)
}

func (c FindClientTypeCommand) String() string {
	return fmt.Sprintf("FindClientTypeCommand{predicate=%s}", c.Predicate)
}

// FindCommand is the prefixed form. It carries whichever predicate the
// prefix selected.
type FindCommand struct {
	Predicate domain.Predicate
}

func NewFindCommand(pred domain.Predicate) FindCommand {
	return FindCommand{Predicate: pred}
}

func (c FindCommand) Word() string  { return FindWord }
func (c FindCommand) Mutates() bool { return false }

// Execute narrows the model's filtered view and reports how many persons
// remain visible. It panics if m is nil.
func (c FindCommand) Execute(m model.Model) (Result, error) {
	return filter(m, c.Predicate), nil
}

// Equal reports whether other is a FindCommand with an equal predicate.
func (c FindCommand) Equal(other Command) bool {
	o, ok := other.(FindCommand)
	return ok && c.Predicate.Equal(o.Predicate)
}

func (c FindCommand) String() string {
	return fmt.Sprintf("FindCommand{predicate=%s}", c.Predicate)
}

func filter(m model.Model, pred domain.Predicate) Result {
	requireModel(m)
	m.UpdateFilteredPersonList(pred)
	return Result{Feedback: PersonsListedOverview(len(m.DisplayPersons()))}
}
