package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/breno-augst/family-relationship-api/database"
	"github.com/breno-augst/family-relationship-api/models"
)

var _ ParentRepository = (*GormParentRepository)(nil)

// GormParentRepository handles database operations for Parent entities
type GormParentRepository struct {
	db *gorm.DB
}

// NewGormParentRepository creates a new parent repository bound to db
func NewGormParentRepository(db *gorm.DB) *GormParentRepository {
	return &GormParentRepository{db: db}
}

// Create inserts a new parent and fills in its generated ID
func (r *GormParentRepository) Create(ctx context.Context, parent *models.Parent) error {
	err := r.db.WithContext(ctx).Omit("FatherOfChildren", "MotherOfChildren").Create(parent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("failed to create parent %s: %w", parent.CPF, ErrCPFTaken)
		}
		return fmt.Errorf("failed to create parent %s: %w", parent.CPF, err)
	}
	return nil
}

func (r *GormParentRepository) GetByCPF(ctx context.Context, cpf string) (*models.Parent, error) {
	var parent models.Parent
	err := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&parent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get parent by cpf %s: %w", cpf, err)
	}
	return &parent, nil
}

// GetByCPFAndRelationship only matches a parent holding the given role
func (r *GormParentRepository) GetByCPFAndRelationship(ctx context.Context, cpf string, relationship models.Relationship) (*models.Parent, error) {
	var parent models.Parent
	err := r.db.WithContext(ctx).
		Where("cpf = ? AND relationship = ?", cpf, relationship).
		First(&parent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get %s by cpf %s: %w", relationship, cpf, err)
	}
	return &parent, nil
}

// GetWithChildren retrieves a parent by cpf, preloading both child collections
func (r *GormParentRepository) GetWithChildren(ctx context.Context, cpf string) (*models.Parent, error) {
	byID := func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }

	var parent models.Parent
	err := r.db.WithContext(ctx).
		Preload("FatherOfChildren", byID).
		Preload("MotherOfChildren", byID).
		Where("cpf = ?", cpf).
		First(&parent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get parent %s with children: %w", cpf, err)
	}
	return &parent, nil
}

func (r *GormParentRepository) ListAll(ctx context.Context, sortOrder string) ([]models.Parent, error) {
	var parents []models.Parent
	err := r.db.WithContext(ctx).Order(database.OrderClause(sortOrder)).Find(&parents).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list parents: %w", err)
	}
	if sortOrder == database.SortNameNat {
		database.SortNatural(parents, func(p models.Parent) string { return p.Name })
	}
	return parents, nil
}

// Update re-checks a new cpf against the other parents before writing
func (r *GormParentRepository) Update(ctx context.Context, currentCPF string, changes Changes) (int64, error) {
	if changes.CPF != nil {
		taken, err := r.CPFTaken(ctx, *changes.CPF, currentCPF)
		if err != nil {
			return 0, err
		}
		if taken {
			return 0, ErrCPFTaken
		}
	}

	db := r.db.WithContext(ctx).Model(&models.Parent{}).Where("cpf = ?", currentCPF)
	if changes.IsEmpty() {
		var count int64
		if err := db.Count(&count).Error; err != nil {
			return 0, fmt.Errorf("failed to check parent %s: %w", currentCPF, err)
		}
		return count, nil
	}

	result := db.Updates(changes.columns())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return 0, ErrCPFTaken
		}
		return 0, fmt.Errorf("failed to update parent %s: %w", currentCPF, result.Error)
	}
	return result.RowsAffected, nil
}

// Delete removes the parent and clears the references its children hold
func (r *GormParentRepository) Delete(ctx context.Context, cpf string) (int64, error) {
	db := r.db.WithContext(ctx)

	var parent models.Parent
	err := db.Select("id").Where("cpf = ?", cpf).First(&parent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to look up parent %s for delete: %w", cpf, err)
	}

	for _, column := range []string{"father_id", "mother_id"} {
		err := db.Model(&models.Child{}).Where(column+" = ?", parent.ID).Update(column, nil).Error
		if err != nil {
			return 0, fmt.Errorf("failed to clear %s of children of parent %s: %w", column, cpf, err)
		}
	}

	result := db.Where("id = ?", parent.ID).Delete(&models.Parent{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete parent %s: %w", cpf, result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GormParentRepository) CPFTaken(ctx context.Context, cpf, excludeCPF string) (bool, error) {
	count, err := database.CountOtherByCPF(ctx, r.db, models.Parent{}.TableName(), cpf, excludeCPF)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
