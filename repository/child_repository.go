package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/breno-augst/family-relationship-api/database"
	"github.com/breno-augst/family-relationship-api/models"
)

var _ ChildRepository = (*GormChildRepository)(nil)

// GormChildRepository handles database operations for Child entities
type GormChildRepository struct {
	db *gorm.DB
}

// NewGormChildRepository creates a new child repository bound to db
func NewGormChildRepository(db *gorm.DB) *GormChildRepository {
	return &GormChildRepository{db: db}
}

// Create inserts the child using only its foreign keys; the Father and
// Mother records themselves are never written.
func (r *GormChildRepository) Create(ctx context.Context, child *models.Child) error {
	if child.Father != nil {
		child.FatherID = &child.Father.ID
	}
	if child.Mother != nil {
		child.MotherID = &child.Mother.ID
	}

	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(child).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("failed to create child %s: %w", child.CPF, ErrCPFTaken)
		}
		return fmt.Errorf("failed to create child %s: %w", child.CPF, err)
	}
	return nil
}

func (r *GormChildRepository) GetByCPF(ctx context.Context, cpf string) (*models.Child, error) {
	var child models.Child
	err := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&child).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get child by cpf %s: %w", cpf, err)
	}
	return &child, nil
}

// GetWithParents retrieves a child by cpf, preloading Father and Mother
func (r *GormChildRepository) GetWithParents(ctx context.Context, cpf string) (*models.Child, error) {
	var child models.Child
	err := r.db.WithContext(ctx).
		Preload("Father").
		Preload("Mother").
		Where("cpf = ?", cpf).
		First(&child).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get child %s with parents: %w", cpf, err)
	}
	return &child, nil
}

func (r *GormChildRepository) ListAll(ctx context.Context, sortOrder string) ([]models.Child, error) {
	var children []models.Child
	err := r.db.WithContext(ctx).Order(database.OrderClause(sortOrder)).Find(&children).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}
	if sortOrder == database.SortNameNat {
		database.SortNatural(children, func(c models.Child) string { return c.Name })
	}
	return children, nil
}

// Update re-checks a new cpf against the other children before writing
func (r *GormChildRepository) Update(ctx context.Context, currentCPF string, changes Changes) (int64, error) {
	if changes.CPF != nil {
		taken, err := r.CPFTaken(ctx, *changes.CPF, currentCPF)
		if err != nil {
			return 0, err
		}
		if taken {
			return 0, ErrCPFTaken
		}
	}

	db := r.db.WithContext(ctx).Model(&models.Child{}).Where("cpf = ?", currentCPF)
	if changes.IsEmpty() {
		var count int64
		if err := db.Count(&count).Error; err != nil {
			return 0, fmt.Errorf("failed to check child %s: %w", currentCPF, err)
		}
		return count, nil
	}

	result := db.Updates(changes.columns())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return 0, ErrCPFTaken
		}
		return 0, fmt.Errorf("failed to update child %s: %w", currentCPF, result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GormChildRepository) Delete(ctx context.Context, cpf string) (int64, error) {
	result := r.db.WithContext(ctx).Where("cpf = ?", cpf).Delete(&models.Child{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete child %s: %w", cpf, result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GormChildRepository) CPFTaken(ctx context.Context, cpf, excludeCPF string) (bool, error) {
	count, err := database.CountOtherByCPF(ctx, r.db, models.Child{}.TableName(), cpf, excludeCPF)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
