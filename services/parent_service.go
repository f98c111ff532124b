package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/breno-augst/family-relationship-api/database"
	"github.com/breno-augst/family-relationship-api/models"
	"github.com/breno-augst/family-relationship-api/repository"
)

// ParentService applies the validation and uniqueness rules for parents
type ParentService struct {
	parents repository.ParentRepository
}

// NewParentService creates a new parent service
func NewParentService(parents repository.ParentRepository) *ParentService {
	return &ParentService{parents: parents}
}

// CreateParentInput is the payload of a parent registration
type CreateParentInput struct {
	CPF          string              `json:"cpf"`
	Name         string              `json:"name"`
	Age          int                 `json:"age"`
	Relationship models.Relationship `json:"relationship"`
}

func (s *ParentService) Create(ctx context.Context, in CreateParentInput) (*models.Parent, error) {
	if !ValidCPF(in.CPF) {
		return nil, validationError("CPF must have exactly 11 numeric digits")
	}
	if !in.Relationship.Valid() {
		return nil, validationError(fmt.Sprintf("relationship must be %q or %q", models.RelationshipFather, models.RelationshipMother))
	}

	taken, err := s.parents.CPFTaken(ctx, in.CPF, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, conflictError("a father or mother with this CPF already exists")
	}

	parent := &models.Parent{
		CPF:          in.CPF,
		Name:         in.Name,
		Age:          in.Age,
		Relationship: in.Relationship,
	}
	if err := s.parents.Create(ctx, parent); err != nil {
		if errors.Is(err, repository.ErrCPFTaken) {
			return nil, conflictError("a father or mother with this CPF already exists")
		}
		return nil, err
	}
	return parent, nil
}

func (s *ParentService) ListAll(ctx context.Context, sortOrder string) ([]models.Parent, error) {
	if sortOrder == "" {
		sortOrder = database.DefaultSortOrder
	}
	if !database.IsValidSortOrder(sortOrder) {
		return nil, validationError(fmt.Sprintf("invalid sort order '%s'", sortOrder))
	}
	return s.parents.ListAll(ctx, sortOrder)
}

func (s *ParentService) GetByCpf(ctx context.Context, cpf string) (*models.Parent, error) {
	if cpf == "" {
		return nil, validationError("CPF is required for the search")
	}
	parent, err := s.parents.GetByCPF(ctx, cpf)
	if err != nil {
		return nil, parentLookupError(err)
	}
	return parent, nil
}

// GetWithChildren returns the parent with fatherOfChildren and motherOfChildren loaded
func (s *ParentService) GetWithChildren(ctx context.Context, cpf string) (*models.Parent, error) {
	if cpf == "" {
		return nil, validationError("CPF is required for the search")
	}
	parent, err := s.parents.GetWithChildren(ctx, cpf)
	if err != nil {
		return nil, parentLookupError(err)
	}
	return parent, nil
}

// Update merges the provided fields into the parent stored at currentCPF and
// returns the record as stored afterwards.
func (s *ParentService) Update(ctx context.Context, currentCPF string, in UpdateInput) (*models.Parent, error) {
	parent, err := s.parents.GetByCPF(ctx, currentCPF)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError(fmt.Sprintf("father or mother with CPF %s not found", currentCPF))
		}
		return nil, err
	}
	if in.isEmpty() {
		return parent, nil
	}

	affected, err := s.parents.Update(ctx, currentCPF, in.changes())
	if err != nil {
		if errors.Is(err, repository.ErrCPFTaken) {
			return nil, conflictError("update failed, this CPF is already registered")
		}
		return nil, err
	}
	if affected == 0 {
		return nil, conflictError("update failed")
	}

	updated, err := s.parents.GetByCPF(ctx, in.resultingCPF(currentCPF))
	if err != nil {
		return nil, parentLookupError(err)
	}
	return updated, nil
}

// Delete removes the parent and returns a confirmation message
func (s *ParentService) Delete(ctx context.Context, cpf string) (string, error) {
	if _, err := s.parents.GetByCPF(ctx, cpf); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", notFoundError(fmt.Sprintf("father or mother with CPF %s not found", cpf))
		}
		return "", err
	}

	affected, err := s.parents.Delete(ctx, cpf)
	if err != nil {
		return "", err
	}
	if affected == 0 {
		return "", conflictError("delete failed")
	}
	return fmt.Sprintf("father or mother with CPF %s was deleted successfully", cpf), nil
}

func parentLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundError("no father or mother found with this CPF")
	}
	return err
}
