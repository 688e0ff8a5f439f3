package source

import (
	"context"

	"github.com/trknhr/personview/internal/model/entity"
)

//go:generate mockgen -source=source.go -destination=mock_source.go -package=source

// PersonSource produces the record shown by the view. FetchPerson runs on the
// UI-owning execution context, so implementations must return promptly.
type PersonSource interface {
	FetchPerson(ctx context.Context) (entity.Person, error)
}

const (
	DefaultName       = "Jose Luis"
	DefaultSurname    = "Bustos Lopez"
	DefaultNationalID = "502526272J"
)

// Placeholder returns fixed values with a fresh identifier on every call.
// It never fails.
type Placeholder struct {
	Name       string
	Surname    string
	NationalID string
}

var _ PersonSource = Placeholder{}

func NewPlaceholder() Placeholder {
	return Placeholder{
		Name:       DefaultName,
		Surname:    DefaultSurname,
		NationalID: DefaultNationalID,
	}
}

func (p Placeholder) FetchPerson(ctx context.Context) (entity.Person, error) {
	return entity.NewPerson(p.Name, p.Surname, p.NationalID), nil
}
