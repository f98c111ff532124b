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

// ChildService applies the validation rules for children. It reads parents
// to resolve the father and mother references.
type ChildService struct {
	children repository.ChildRepository
	parents  repository.ParentRepository
}

// NewChildService creates a new child service
func NewChildService(children repository.ChildRepository, parents repository.ParentRepository) *ChildService {
	return &ChildService{children: children, parents: parents}
}

// CreateChildInput is the payload of a child registration. Empty parent cpfs
// leave the reference unset.
type CreateChildInput struct {
	CPF       string `json:"cpf"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Sex       string `json:"sex"`
	CPFFather string `json:"cpfFather,omitempty"`
	CPFMother string `json:"cpfMother,omitempty"`
}

func (s *ChildService) Create(ctx context.Context, in CreateChildInput) (*models.Child, error) {
	if !ValidCPF(in.CPF) {
		return nil, validationError("CPF must have exactly 11 numeric digits")
	}

	taken, err := s.children.CPFTaken(ctx, in.CPF, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, conflictError("a child with this CPF already exists")
	}

	father, err := s.resolveParent(ctx, in.CPFFather, models.RelationshipFather)
	if err != nil {
		return nil, err
	}
	mother, err := s.resolveParent(ctx, in.CPFMother, models.RelationshipMother)
	if err != nil {
		return nil, err
	}

	child := &models.Child{
		CPF:    in.CPF,
		Name:   in.Name,
		Age:    in.Age,
		Sex:    in.Sex,
		Father: father,
		Mother: mother,
	}
	if err := s.children.Create(ctx, child); err != nil {
		if errors.Is(err, repository.ErrCPFTaken) {
			return nil, conflictError("a child with this CPF already exists")
		}
		return nil, err
	}
	return child, nil
}

// resolveParent looks up the parent playing role. It returns nil when cpf is empty.
func (s *ChildService) resolveParent(ctx context.Context, cpf string, role models.Relationship) (*models.Parent, error) {
	if cpf == "" {
		return nil, nil
	}
	parent, err := s.parents.GetByCPFAndRelationship(ctx, cpf, role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError(fmt.Sprintf("%s with CPF %s not found", role, cpf))
		}
		return nil, err
	}
	return parent, nil
}

func (s *ChildService) ListAll(ctx context.Context, sortOrder string) ([]models.Child, error) {
	if sortOrder == "" {
		sortOrder = database.DefaultSortOrder
	}
	if !database.IsValidSortOrder(sortOrder) {
		return nil, validationError(fmt.Sprintf("invalid sort order '%s'", sortOrder))
	}
	return s.children.ListAll(ctx, sortOrder)
}

func (s *ChildService) GetByCpf(ctx context.Context, cpf string) (*models.Child, error) {
	if cpf == "" {
		return nil, validationError("CPF is required for the search")
	}
	child, err := s.children.GetByCPF(ctx, cpf)
	if err != nil {
		return nil, childLookupError(err)
	}
	return child, nil
}

// GetWithParents returns the child with pai and mae loaded
func (s *ChildService) GetWithParents(ctx context.Context, cpf string) (*models.Child, error) {
	if cpf == "" {
		return nil, validationError("CPF is required for the search")
	}
	child, err := s.children.GetWithParents(ctx, cpf)
	if err != nil {
		return nil, childLookupError(err)
	}
	return child, nil
}

// Update merges cpf, name and age into the child stored at currentCPF. Sex is
// not updatable.
func (s *ChildService) Update(ctx context.Context, currentCPF string, in UpdateInput) (*models.Child, error) {
	child, err := s.children.GetByCPF(ctx, currentCPF)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError(fmt.Sprintf("child with CPF %s not found", currentCPF))
		}
		return nil, err
	}
	if in.isEmpty() {
		return child, nil
	}

	affected, err := s.children.Update(ctx, currentCPF, in.changes())
	if err != nil {
		if errors.Is(err, repository.ErrCPFTaken) {
			return nil, conflictError("update failed, this CPF is already registered")
		}
		return nil, err
	}
	if affected == 0 {
		return nil, conflictError("update failed")
	}

	updated, err := s.children.GetByCPF(ctx, in.resultingCPF(currentCPF))
	if err != nil {
		return nil, childLookupError(err)
	}
	return updated, nil
}

func (s *ChildService) Delete(ctx context.Context, cpf string) (string, error) {
	if _, err := s.children.GetByCPF(ctx, cpf); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", notFoundError(fmt.Sprintf("child with CPF %s not found", cpf))
		}
		return "", err
	}

	affected, err := s.children.Delete(ctx, cpf)
	if err != nil {
		return "", err
	}
	if affected == 0 {
		return "", conflictError("delete failed")
	}
	return fmt.Sprintf("child with CPF %s was deleted successfully", cpf), nil
}

func childLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundError("no child found with this CPF")
	}
	return err
}
