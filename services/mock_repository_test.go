package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/breno-augst/family-relationship-api/models"
	"github.com/breno-augst/family-relationship-api/repository"
)

type mockParentRepository struct {
	mock.Mock
}

var _ repository.ParentRepository = (*mockParentRepository)(nil)

func (m *mockParentRepository) Create(ctx context.Context, parent *models.Parent) error {
	return m.Called(ctx, parent).Error(0)
}

func (m *mockParentRepository) GetByCPF(ctx context.Context, cpf string) (*models.Parent, error) {
	args := m.Called(ctx, cpf)
	p, _ := args.Get(0).(*models.Parent)
	return p, args.Error(1)
}

func (m *mockParentRepository) GetByCPFAndRelationship(ctx context.Context, cpf string, relationship models.Relationship) (*models.Parent, error) {
	args := m.Called(ctx, cpf, relationship)
	p, _ := args.Get(0).(*models.Parent)
	return p, args.Error(1)
}

func (m *mockParentRepository) GetWithChildren(ctx context.Context, cpf string) (*models.Parent, error) {
	args := m.Called(ctx, cpf)
	p, _ := args.Get(0).(*models.Parent)
	return p, args.Error(1)
}

func (m *mockParentRepository) ListAll(ctx context.Context, sortOrder string) ([]models.Parent, error) {
	args := m.Called(ctx, sortOrder)
	ps, _ := args.Get(0).([]models.Parent)
	return ps, args.Error(1)
}

func (m *mockParentRepository) Update(ctx context.Context, currentCPF string, changes repository.Changes) (int64, error) {
	args := m.Called(ctx, currentCPF, changes)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockParentRepository) Delete(ctx context.Context, cpf string) (int64, error) {
	args := m.Called(ctx, cpf)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockParentRepository) CPFTaken(ctx context.Context, cpf, excludeCPF string) (bool, error) {
	args := m.Called(ctx, cpf, excludeCPF)
	return args.Bool(0), args.Error(1)
}

type mockChildRepository struct {
	mock.Mock
}

var _ repository.ChildRepository = (*mockChildRepository)(nil)

func (m *mockChildRepository) Create(ctx context.Context, child *models.Child) error {
	return m.Called(ctx, child).Error(0)
}

func (m *mockChildRepository) GetByCPF(ctx context.Context, cpf string) (*models.Child, error) {
	args := m.Called(ctx, cpf)
	c, _ := args.Get(0).(*models.Child)
	return c, args.Error(1)
}

func (m *mockChildRepository) GetWithParents(ctx context.Context, cpf string) (*models.Child, error) {
	args := m.Called(ctx, cpf)
	c, _ := args.Get(0).(*models.Child)
	return c, args.Error(1)
}

func (m *mockChildRepository) ListAll(ctx context.Context, sortOrder string) ([]models.Child, error) {
	args := m.Called(ctx, sortOrder)
	cs, _ := args.Get(0).([]models.Child)
	return cs, args.Error(1)
}

func (m *mockChildRepository) Update(ctx context.Context, currentCPF string, changes repository.Changes) (int64, error) {
	args := m.Called(ctx, currentCPF, changes)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockChildRepository) Delete(ctx context.Context, cpf string) (int64, error) {
	args := m.Called(ctx, cpf)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockChildRepository) CPFTaken(ctx context.Context, cpf, excludeCPF string) (bool, error) {
	args := m.Called(ctx, cpf, excludeCPF)
	return args.Bool(0), args.Error(1)
}
