package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmlink/marketplace-api/internal/core/domain"
	"github.com/farmlink/marketplace-api/internal/core/ports"
	"github.com/farmlink/marketplace-api/internal/infrastructure/db/memory"
)

func ptr[T any](v T) *T { return &v }

func TestCatalogService_Create(t *testing.T) {
	store := memory.NewStore()
	svc := NewCatalogService(store.Products(), discardLogger)
	farmer := seedUser(store, "f1", domain.RoleFarmer)
	buyer := seedUser(store, "b1", domain.RoleBuyer)

	p, err := svc.Create(context.Background(), farmer, domain.ProductDraft{Name: "Tomatoes", Category: "vegetables", Price: 40, Quantity: 100, Unit: "kg"})
	require.NoError(t, err)
	assert.Equal(t, "f1", p.FarmerID)
	assert.Equal(t, farmer.Name, p.FarmerName)
	assert.True(t, p.Available)
	assert.NotEmpty(t, p.ID)

	_, err = svc.Create(context.Background(), buyer, domain.ProductDraft{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.Create(context.Background(), domain.Actor{}, domain.ProductDraft{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCatalogService_UpdateOwnership(t *testing.T) {
	store := memory.NewStore()
	svc := NewCatalogService(store.Products(), discardLogger)
	owner := seedUser(store, "f1", domain.RoleFarmer)
	other := seedUser(store, "f2", domain.RoleFarmer)
	admin := seedUser(store, "a1", domain.RoleAdmin)

	p, err := svc.Create(context.Background(), owner, domain.ProductDraft{Name: "Tomatoes", Price: 40, Quantity: 10})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), other, p.ID, domain.ProductPatch{Price: ptr(1.0)})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	updated, err := svc.Update(context.Background(), owner, p.ID, domain.ProductPatch{Price: ptr(45.0)})
	require.NoError(t, err)
	assert.Equal(t, 45.0, updated.Price)
	assert.Equal(t, "Tomatoes", updated.Name)
	assert.Equal(t, 10.0, updated.Quantity)

	updated, err = svc.Update(context.Background(), admin, p.ID, domain.ProductPatch{Available: ptr(false)})
	require.NoError(t, err)
	assert.False(t, updated.Available)

	unchanged, err := svc.Update(context.Background(), owner, p.ID, domain.ProductPatch{})
	require.NoError(t, err)
	assert.Equal(t, 45.0, unchanged.Price)

	_, err = svc.Update(context.Background(), owner, "missing", domain.ProductPatch{Price: ptr(1.0)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogService_Delete(t *testing.T) {
	store := memory.NewStore()
	svc := NewCatalogService(store.Products(), discardLogger)
	owner := seedUser(store, "f1", domain.RoleFarmer)
	other := seedUser(store, "f2", domain.RoleFarmer)

	p, err := svc.Create(context.Background(), owner, domain.ProductDraft{Name: "Tomatoes"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(context.Background(), other, p.ID), domain.ErrForbidden)
	require.NoError(t, svc.Delete(context.Background(), owner, p.ID))

	_, err = svc.Get(context.Background(), p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), owner, p.ID), domain.ErrNotFound)
}

func TestCatalogService_ListHidesUnavailable(t *testing.T) {
	store := memory.NewStore()
	svc := NewCatalogService(store.Products(), discardLogger)
	farmer := seedUser(store, "f1", domain.RoleFarmer)

	keep, err := svc.Create(context.Background(), farmer, domain.ProductDraft{Name: "Tomatoes", Category: "vegetables"})
	require.NoError(t, err)
	hidden, err := svc.Create(context.Background(), farmer, domain.ProductDraft{Name: "Potatoes", Category: "vegetables"})
	require.NoError(t, err)
	_, err = svc.Update(context.Background(), farmer, hidden.ID, domain.ProductPatch{Available: ptr(false)})
	require.NoError(t, err)

	public, err := svc.List(context.Background(), ports.ProductQuery{Category: "vegetables"})
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, keep.ID, public[0].ID)

	got, err := svc.Get(context.Background(), hidden.ID)
	require.NoError(t, err, "single fetch ignores availability")
	assert.False(t, got.Available)

	own, err := svc.ListByFarmer(context.Background(), farmer)
	require.NoError(t, err)
	assert.Len(t, own, 2)
}

func TestCatalogService_ListByFarmerRequiresFarmer(t *testing.T) {
	store := memory.NewStore()
	svc := NewCatalogService(store.Products(), discardLogger)
	buyer := seedUser(store, "b1", domain.RoleBuyer)

	_, err := svc.ListByFarmer(context.Background(), buyer)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
