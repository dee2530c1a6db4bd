// Package model holds the in-memory address book and its filtered view.
package model

import (
	"errors"
	"slices"

	"github.com/pbaille/abook/internal/domain"
)

var (
	ErrDuplicatePerson = errors.New("duplicate person")
	ErrPersonNotFound  = errors.New("person not found")
)

// Model is what commands operate on
type Model interface {
	// UpdateFilteredPersonList replaces the visible subset with the persons
	// matching pred.
	UpdateFilteredPersonList(pred domain.Predicate)
	// DisplayPersons returns the current filtered view.
	DisplayPersons() []domain.Person

	Persons() []domain.Person
	HasPerson(p domain.Person) bool
	AddPerson(p domain.Person) error
	DeletePerson(p domain.Person) error
	ClearPersons()
}

// Manager is the default Model. It is not safe for concurrent use.
type Manager struct {
	persons []domain.Person
	filter  domain.Predicate
}

// New creates a Manager seeded with persons, showing all of them
func New(persons []domain.Person) *Manager {
	return &Manager{
		persons: slices.Clone(persons),
		filter:  domain.ShowAll{},
	}
}

func (m *Manager) UpdateFilteredPersonList(pred domain.Predicate) {
	if pred == nil {
		panic("model: nil predicate")
	}
	m.filter = pred
}

// DisplayPersons evaluates the current filter against all persons. The
// returned slice keeps the original ordering.
func (m *Manager) DisplayPersons() []domain.Person {
	out := make([]domain.Person, 0, len(m.persons))
	for _, p := range m.persons {
		if m.filter.Test(p) {
			out = append(out, p)
		}
	}
	return out
}

func (m *Manager) Persons() []domain.Person {
	return slices.Clone(m.persons)
}

func (m *Manager) HasPerson(p domain.Person) bool {
	return slices.ContainsFunc(m.persons, p.IsSamePerson)
}

func (m *Manager) AddPerson(p domain.Person) error {
	if m.HasPerson(p) {
		return ErrDuplicatePerson
	}
	m.persons = append(m.persons, p)
	return nil
}

// DeletePerson removes the person with p's ID
func (m *Manager) DeletePerson(p domain.Person) error {
	i := slices.IndexFunc(m.persons, func(q domain.Person) bool { return q.ID == p.ID })
	if i < 0 {
		return ErrPersonNotFound
	}
	m.persons = slices.Delete(m.persons, i, i+1)
	return nil
}

func (m *Manager) ClearPersons() {
	m.persons = nil
}
