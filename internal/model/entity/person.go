package entity

import (
	"strings"

	"github.com/google/uuid"
)

// Person is an immutable record produced by a single load. A new load replaces
// it wholesale; fields are never edited in place.
type Person struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Surname    string    `json:"surname"`
	NationalID string    `json:"national_id"`
}

func NewPerson(name, surname, nationalID string) Person {
	return Person{
		ID:         uuid.New(),
		Name:       name,
		Surname:    surname,
		NationalID: nationalID,
	}
}

// FullName joins name and surname with a single space.
func (p Person) FullName() string {
	return strings.TrimSpace(p.Name + " " + p.Surname)
}
