// Package logic runs user input against the address book.
package logic

import (
	"fmt"
	"sync"

	"github.com/pbaille/abook/internal/commands"
	"github.com/pbaille/abook/internal/domain"
	"github.com/pbaille/abook/internal/logging"
	"github.com/pbaille/abook/internal/model"
	"github.com/pbaille/abook/internal/parser"
)

// Storage persists the full person list
type Storage interface {
	ListPersons() ([]domain.Person, error)
	ReplacePersons(persons []domain.Person) error
}

// Manager owns the model. Calls are serialized, so the filtered view seen by
// one caller is never interleaved with another caller's command.
type Manager struct {
	mu      sync.Mutex
	model   *model.Manager
	storage Storage
}

// New loads every stored person into a fresh model
func New(storage Storage) (*Manager, error) {
	persons, err := storage.ListPersons()
	if err != nil {
		return nil, fmt.Errorf("load persons: %w", err)
	}
	logging.Debug().Int("persons", len(persons)).Msg("address book loaded")
	return &Manager{model: model.New(persons), storage: storage}, nil
}

// Execute parses and runs one line of input and returns the filtered view
// as the command left it. Parse failures are returned as *parser.ParseError
// and leave the model untouched.
func (l *Manager) Execute(input string) (commands.Result, []domain.Person, error) {
	cmd, err := parser.Parse(input)
	if err != nil {
		logging.Debug().Str("input", input).Err(err).Msg("parse failed")
		return commands.Result{}, nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	res, err := cmd.Execute(l.model)
	if err != nil {
		logging.Warn().Str("command", cmd.Word()).Err(err).Msg("command failed")
		return commands.Result{}, nil, err
	}
	logging.Debug().Stringer("command", cmd).Msg("command executed")

	if cmd.Mutates() {
		if err := l.storage.ReplacePersons(l.model.Persons()); err != nil {
			logging.Error().Err(err).Msg("save failed")
			return res, l.model.DisplayPersons(), fmt.Errorf("save address book: %w", err)
		}
	}
	return res, l.model.DisplayPersons(), nil
}

// DisplayPersons returns a snapshot of the filtered view
func (l *Manager) DisplayPersons() []domain.Person {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.model.DisplayPersons()
}
