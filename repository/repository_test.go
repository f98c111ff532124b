package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/breno-augst/family-relationship-api/database"
	"github.com/breno-augst/family-relationship-api/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func seedParent(t *testing.T, repo *GormParentRepository, cpf, name string, rel models.Relationship) *models.Parent {
	t.Helper()
	p := &models.Parent{CPF: cpf, Name: name, Age: 40, Relationship: rel}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestGormParentRepository_CreateAndGet(t *testing.T) {
	repo := NewGormParentRepository(database.NewTestDB(t))
	ctx := context.Background()

	p := seedParent(t, repo, "11111111111", "Carlos", models.RelationshipFather)
	assert.NotZero(t, p.ID)

	got, err := repo.GetByCPF(ctx, "11111111111")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "Carlos", got.Name)
	assert.Equal(t, models.RelationshipFather, got.Relationship)

	_, err = repo.GetByCPF(ctx, "99999999999")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGormParentRepository_Create_DuplicateCPF(t *testing.T) {
	repo := NewGormParentRepository(database.NewTestDB(t))
	seedParent(t, repo, "11111111111", "Carlos", models.RelationshipFather)

	err := repo.Create(context.Background(), &models.Parent{CPF: "11111111111", Name: "Other", Relationship: models.RelationshipMother})
	assert.ErrorIs(t, err, ErrCPFTaken)
}

func TestGormParentRepository_GetByCPFAndRelationship(t *testing.T) {
	repo := NewGormParentRepository(database.NewTestDB(t))
	ctx := context.Background()
	seedParent(t, repo, "22222222222", "Maria", models.RelationshipMother)

	got, err := repo.GetByCPFAndRelationship(ctx, "22222222222", models.RelationshipMother)
	require.NoError(t, err)
	assert.Equal(t, "Maria", got.Name)

	_, err = repo.GetByCPFAndRelationship(ctx, "22222222222", models.RelationshipFather)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGormParentRepository_ListAll_SortOrders(t *testing.T) {
	repo := NewGormParentRepository(database.NewTestDB(t))
	ctx := context.Background()

	for _, p := range []models.Parent{
		{CPF: "10000000001", Name: "Parent 10", Age: 50, Relationship: models.RelationshipFather},
		{CPF: "10000000002", Name: "Parent 2", Age: 30, Relationship: models.RelationshipMother},
		{CPF: "10000000003", Name: "Parent 1", Age: 40, Relationship: models.RelationshipFather},
	} {
		p := p
		require.NoError(t, repo.Create(ctx, &p))
	}

	names := func(ps []models.Parent) []string {
		out := make([]string, len(ps))
		for i, p := range ps {
			out[i] = p.Name
		}
		return out
	}

	tests := map[string][]string{
		database.SortIDAsc:   {"Parent 10", "Parent 2", "Parent 1"},
		database.SortNameAsc: {"Parent 1", "Parent 10", "Parent 2"},
		database.SortNameNat: {"Parent 1", "Parent 2", "Parent 10"},
		database.SortAgeAsc:  {"Parent 2", "Parent 1", "Parent 10"},
		database.SortAgeDesc: {"Parent 10", "Parent 1", "Parent 2"},
	}
	for order, expected := range tests {
		t.Run(order, func(t *testing.T) {
			got, err := repo.ListAll(ctx, order)
			require.NoError(t, err)
			assert.Equal(t, expected, names(got))
		})
	}
}

func TestGormParentRepository_Update(t *testing.T) {
	repo := NewGormParentRepository(database.NewTestDB(t))
	ctx := context.Background()
	seedParent(t, repo, "11111111111", "Carlos", models.RelationshipFather)
	seedParent(t, repo, "22222222222", "Maria", models.RelationshipMother)

	t.Run("zero values are applied", func(t *testing.T) {
		n, err := repo.Update(ctx, "11111111111", Changes{Name: strPtr(""), Age: intPtr(0)})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		got, err := repo.GetByCPF(ctx, "11111111111")
		require.NoError(t, err)
		assert.Equal(t, "", got.Name)
		assert.Equal(t, 0, got.Age)
	})

	t.Run("same cpf does not collide with itself", func(t *testing.T) {
		n, err := repo.Update(ctx, "11111111111", Changes{CPF: strPtr("11111111111")})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("cpf of another parent is rejected", func(t *testing.T) {
		_, err := repo.Update(ctx, "11111111111", Changes{CPF: strPtr("22222222222")})
		assert.ErrorIs(t, err, ErrCPFTaken)
	})

	t.Run("missing record affects no rows", func(t *testing.T) {
		n, err := repo.Update(ctx, "99999999999", Changes{Name: strPtr("Ghost")})
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("empty changes report existence", func(t *testing.T) {
		n, err := repo.Update(ctx, "22222222222", Changes{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}

func TestGormParentRepository_GetWithChildren_AndDelete(t *testing.T) {
	db := database.NewTestDB(t)
	parents := NewGormParentRepository(db)
	children := NewGormChildRepository(db)
	ctx := context.Background()

	father := seedParent(t, parents, "11111111111", "Carlos", models.RelationshipFather)
	mother := seedParent(t, parents, "22222222222", "Maria", models.RelationshipMother)
	require.NoError(t, children.Create(ctx, &models.Child{CPF: "33333333333", Name: "Rita", Age: 8, Sex: "female", Father: father, Mother: mother}))
	require.NoError(t, children.Create(ctx, &models.Child{CPF: "44444444444", Name: "Joao", Age: 5, Sex: "male", Father: father}))

	got, err := parents.GetWithChildren(ctx, "11111111111")
	require.NoError(t, err)
	require.Len(t, got.FatherOfChildren, 2)
	assert.Equal(t, "33333333333", got.FatherOfChildren[0].CPF)
	assert.Empty(t, got.MotherOfChildren)

	got, err = parents.GetWithChildren(ctx, "22222222222")
	require.NoError(t, err)
	require.Len(t, got.MotherOfChildren, 1)
	assert.Empty(t, got.FatherOfChildren)

	n, err := parents.Delete(ctx, "11111111111")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	rita, err := children.GetByCPF(ctx, "33333333333")
	require.NoError(t, err)
	assert.Nil(t, rita.FatherID)
	require.NotNil(t, rita.MotherID)
	assert.Equal(t, mother.ID, *rita.MotherID)

	n, err = parents.Delete(ctx, "11111111111")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestGormChildRepository_CreateAndGetWithParents(t *testing.T) {
	db := database.NewTestDB(t)
	parents := NewGormParentRepository(db)
	children := NewGormChildRepository(db)
	ctx := context.Background()

	mother := seedParent(t, parents, "22222222222", "Maria", models.RelationshipMother)

	child := &models.Child{CPF: "33333333333", Name: "Rita", Age: 8, Sex: "female", Mother: mother}
	require.NoError(t, children.Create(ctx, child))
	assert.NotZero(t, child.ID)
	assert.Nil(t, child.FatherID)
	require.NotNil(t, child.MotherID)

	got, err := children.GetWithParents(ctx, "33333333333")
	require.NoError(t, err)
	assert.Nil(t, got.Father)
	require.NotNil(t, got.Mother)
	assert.Equal(t, "Maria", got.Mother.Name)

	plain, err := children.GetByCPF(ctx, "33333333333")
	require.NoError(t, err)
	assert.Nil(t, plain.Mother, "plain lookups do not load relations")

	_, err = children.GetWithParents(ctx, "00000000000")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGormChildRepository_CPFNamespaceIsSeparate(t *testing.T) {
	db := database.NewTestDB(t)
	parents := NewGormParentRepository(db)
	children := NewGormChildRepository(db)
	ctx := context.Background()

	seedParent(t, parents, "11111111111", "Carlos", models.RelationshipFather)
	require.NoError(t, children.Create(ctx, &models.Child{CPF: "11111111111", Name: "Carlos Jr", Age: 10}))

	err := children.Create(ctx, &models.Child{CPF: "11111111111", Name: "Twin", Age: 10})
	assert.ErrorIs(t, err, ErrCPFTaken)
}

func TestGormChildRepository_UpdateAndDelete(t *testing.T) {
	children := NewGormChildRepository(database.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, children.Create(ctx, &models.Child{CPF: "33333333333", Name: "Rita", Age: 8, Sex: "female"}))
	require.NoError(t, children.Create(ctx, &models.Child{CPF: "44444444444", Name: "Joao", Age: 5, Sex: "male"}))

	_, err := children.Update(ctx, "33333333333", Changes{CPF: strPtr("44444444444")})
	assert.ErrorIs(t, err, ErrCPFTaken)

	n, err := children.Update(ctx, "33333333333", Changes{CPF: strPtr("55555555555"), Age: intPtr(9)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := children.GetByCPF(ctx, "55555555555")
	require.NoError(t, err)
	assert.Equal(t, 9, got.Age)
	assert.Equal(t, "female", got.Sex)

	n, err = children.Delete(ctx, "55555555555")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = children.Delete(ctx, "55555555555")
	require.NoError(t, err)
	assert.Zero(t, n)
}
