package commands

import (
	"github.com/pbaille/abook/internal/domain"
	"github.com/pbaille/abook/internal/model"
)

const (
	ListWord = "list"
	HelpWord = "help"
	ExitWord = "exit"
)

const HelpUsage = "Available commands: " +
	AddWord + ", " + DeleteWord + ", " + ClearWord + ", " + ListWord + ", " +
	FindWord + ", " + FindNameWord + ", " + FindClientTypeWord + ", " +
	HelpWord + ", " + ExitWord + "\n" +
	"Example: " + FindNameWord + " Alice"

// ListCommand shows every person
type ListCommand struct{}

func (ListCommand) Word() string  { return ListWord }
func (ListCommand) Mutates() bool { return false }

func (ListCommand) Execute(m model.Model) (Result, error) {
	requireModel(m)
	m.UpdateFilteredPersonList(domain.ShowAll{})
	return Result{Feedback: "Listed all persons"}, nil
}

func (ListCommand) Equal(other Command) bool {
	_, ok := other.(ListCommand)
	return ok
}

func (ListCommand) String() string { return "ListCommand{}" }

// HelpCommand asks the front end to show usage
type HelpCommand struct{}

func (HelpCommand) Word() string  { return HelpWord }
func (HelpCommand) Mutates() bool { return false }

func (HelpCommand) Execute(m model.Model) (Result, error) {
	requireModel(m)
	return Result{Feedback: HelpUsage, ShowHelp: true}, nil
}

func (HelpCommand) Equal(other Command) bool {
	_, ok := other.(HelpCommand)
	return ok
}

func (HelpCommand) String() string { return "HelpCommand{}" }

// ExitCommand asks the front end to stop
type ExitCommand struct{}

func (ExitCommand) Word() string  { return ExitWord }
func (ExitCommand) Mutates() bool { return false }

func (ExitCommand) Execute(m model.Model) (Result, error) {
	requireModel(m)
	return Result{Feedback: "Exiting Address Book as requested ...", Exit: true}, nil
}

func (ExitCommand) Equal(other Command) bool {
	_, ok := other.(ExitCommand)
	return ok
}

func (ExitCommand) String() string { return "ExitCommand{}" }
