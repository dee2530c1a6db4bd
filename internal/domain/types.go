package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Person represents a contact in the address book
type Person struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	ClientTypes []string  `json:"client_types,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewPerson builds a person with a fresh ID
func NewPerson(name, phone, email, address string, clientTypes []string) Person {
	return Person{
		ID:          uuid.New().String(),
		Name:        name,
		Phone:       phone,
		Email:       email,
		Address:     address,
		ClientTypes: clientTypes,
		CreatedAt:   time.Now(),
	}
}

// IsSamePerson reports whether both persons share a name, ignoring case.
// Two contacts with the same name are treated as duplicates.
func (p Person) IsSamePerson(other Person) bool {
	return strings.EqualFold(p.Name, other.Name)
}
