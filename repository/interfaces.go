package repository

import (
	"context"
	"errors"

	"github.com/breno-augst/family-relationship-api/models"
)

// ErrCPFTaken is returned when a cpf already belongs to another record of the same entity.
var ErrCPFTaken = errors.New("cpf already registered")

// Changes holds the columns of a partial update. Nil fields keep their stored value.
type Changes struct {
	CPF  *string
	Name *string
	Age  *int
}

// IsEmpty reports whether no field is set.
func (c Changes) IsEmpty() bool {
	return c.CPF == nil && c.Name == nil && c.Age == nil
}

func (c Changes) columns() map[string]interface{} {
	cols := make(map[string]interface{}, 3)
	if c.CPF != nil {
		cols["cpf"] = *c.CPF
	}
	if c.Name != nil {
		cols["name"] = *c.Name
	}
	if c.Age != nil {
		cols["age"] = *c.Age
	}
	return cols
}

// ParentRepository defines the methods for parent data operations.
// Lookups return gorm.ErrRecordNotFound when nothing matches.
type ParentRepository interface {
	Create(ctx context.Context, parent *models.Parent) error
	GetByCPF(ctx context.Context, cpf string) (*models.Parent, error)
	GetByCPFAndRelationship(ctx context.Context, cpf string, relationship models.Relationship) (*models.Parent, error)
	GetWithChildren(ctx context.Context, cpf string) (*models.Parent, error)
	ListAll(ctx context.Context, sortOrder string) ([]models.Parent, error)
	// Update applies changes to the parent stored under currentCPF and
	// returns the number of rows affected.
	Update(ctx context.Context, currentCPF string, changes Changes) (int64, error)
	Delete(ctx context.Context, cpf string) (int64, error)
	CPFTaken(ctx context.Context, cpf, excludeCPF string) (bool, error)
}

// ChildRepository defines the methods for child data operations
type ChildRepository interface {
	Create(ctx context.Context, child *models.Child) error
	GetByCPF(ctx context.Context, cpf string) (*models.Child, error)
	GetWithParents(ctx context.Context, cpf string) (*models.Child, error)
	ListAll(ctx context.Context, sortOrder string) ([]models.Child, error)
	Update(ctx context.Context, currentCPF string, changes Changes) (int64, error)
	Delete(ctx context.Context, cpf string) (int64, error)
	CPFTaken(ctx context.Context, cpf, excludeCPF string) (bool, error)
}
