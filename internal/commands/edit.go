package commands

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/pbaille/abook/internal/domain"
	"github.com/pbaille/abook/internal/model"
)

const (
	AddWord    = "add"
	DeleteWord = "delete"
	ClearWord  = "clear"
)

const AddUsage = AddWord + ": Adds a person to the address book.\n" +
	"Parameters: " +
	PrefixName + "NAME " +
	PrefixPhone + "PHONE " +
	PrefixEmail + "EMAIL " +
	PrefixAddress + "ADDRESS " +
	"[" + PrefixClientType + "CLIENT_TYPE]...\n" +
	"Example: " + AddWord + " " +
	PrefixName + "John Doe " +
	PrefixPhone + "98765432 " +
	PrefixEmail + "johnd@example.com " +
	PrefixAddress + "311, Clementi Ave 2, #02-25 " +
	PrefixClientType + "VIP " +
	PrefixClientType + "Corporate"

const DeleteUsage = DeleteWord + ": Deletes the person identified by the index number used in the displayed person list.\n" +
	"Parameters: INDEX (must be a positive integer)\n" +
	"Example: " + DeleteWord + " 1"

var (
	ErrDuplicatePerson    = errors.New("This person already exists in the address book")
	ErrInvalidPersonIndex = errors.New(MessageInvalidPersonIndex)
)

// AddCommand adds a validated person
type AddCommand struct {
	Person domain.Person
}

func NewAddCommand(p domain.Person) AddCommand {
	return AddCommand{Person: p}
}

func (c AddCommand) Word() string  { return AddWord }
func (c AddCommand) Mutates() bool { return true }

// Execute adds the person and shows the full list again. It fails with
// ErrDuplicatePerson when a person of the same name exists.
func (c AddCommand) Execute(m model.Model) (Result, error) {
	requireModel(m)
	if m.HasPerson(c.Person) {
		return Result{}, ErrDuplicatePerson
	}
	if err := m.AddPerson(c.Person); err != nil {
		return Result{}, fmt.Errorf("add person: %w", err)
	}
	m.UpdateFilteredPersonList(domain.ShowAll{})
	return Result{Feedback: "New person added: " + FormatPerson(c.Person)}, nil
}

// Equal ignores the generated ID and creation time
func (c AddCommand) Equal(other Command) bool {
	o, ok := other.(AddCommand)
	if !ok {
		return false
	}
	a, b := c.Person, o.Person
	return a.Name == b.Name && a.Phone == b.Phone && a.Email == b.Email &&
		a.Address == b.Address && slices.Equal(a.ClientTypes, b.ClientTypes)
}

func (c AddCommand) String() string {
	return fmt.Sprintf("AddCommand{toAdd=%s}", FormatPerson(c.Person))
}

// DeleteCommand removes the person at a 1-based index of the displayed list
type DeleteCommand struct {
	Index int
}

func NewDeleteCommand(index int) DeleteCommand {
	return DeleteCommand{Index: index}
}

func (c DeleteCommand) Word() string  { return DeleteWord }
func (c DeleteCommand) Mutates() bool { return true }

// Execute removes the person at Index in the current filtered view.
func (c DeleteCommand) Execute(m model.Model) (Result, error) {
	requireModel(m)
	shown := m.DisplayPersons()
	if c.Index < 1 || c.Index > len(shown) {
		return Result{}, ErrInvalidPersonIndex
	}
	target := shown[c.Index-1]
	if err := m.DeletePerson(target); err != nil {
		return Result{}, fmt.Errorf("delete person: %w", err)
	}
	return Result{Feedback: "Deleted Person: " + FormatPerson(target)}, nil
}

// Equal compares target indexes.
func (c DeleteCommand) Equal(other Command) bool {
	o, ok := other.(DeleteCommand)
	return ok && c.Index == o.Index
}

func (c DeleteCommand) String() string {
	return fmt.Sprintf("DeleteCommand{targetIndex=%d}", c.Index)
}

// ClearCommand removes every person
type ClearCommand struct{}

func (ClearCommand) Word() string  { return ClearWord }
func (ClearCommand) Mutates() bool { return true }

func (ClearCommand) Execute(m model.Model) (Result, error) {
	requireModel(m)
	m.ClearPersons()
	m.UpdateFilteredPersonList(domain.ShowAll{})
	return Result{Feedback: "Address book has been cleared!"}, nil
}

func (ClearCommand) Equal(other Command) bool {
	_, ok := other.(ClearCommand)
	return ok
}

func (ClearCommand) String() string { return "ClearCommand{}" }

// FormatPerson renders a person on one line for feedback messages
func FormatPerson(p domain.Person) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s; Phone: %s; Email: %s; Address: %s", p.Name, p.Phone, p.Email, p.Address)
	if len(p.ClientTypes) > 0 {
		sb.WriteString("; Client Types: ")
		sb.WriteString(strings.Join(p.ClientTypes, ", "))
	}
	return sb.String()
}
