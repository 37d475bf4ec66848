package repository_test

import (
	"context"
	"testing"

	"storefront/internal/domain/model"
	infraRepo "storefront/internal/infra/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCart() model.CartState {
	return model.CartState{Entries: []model.CartEntry{
		{ID: "p1", Name: "Mug", Description: "white", Image: "https://img/1.png", Price: model.MustPrice("9.99"), Quantity: 2},
		{ID: "p2", Name: "Cap", Price: model.MustPrice("5"), Quantity: 1},
	}}
}

func TestCartSlotRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	slots := infraRepo.NewMemorySlotRepository()
	r := infraRepo.NewCartSlotRepository(slots)

	require.NoError(t, r.Save(ctx, sampleCart()))

	got, err := infraRepo.NewCartSlotRepository(slots).Load(ctx)
	require.NoError(t, err)

	want := sampleCart()
	require.Len(t, got.Entries, len(want.Entries))
	for i := range want.Entries {
		assert.Equal(t, want.Entries[i].ID, got.Entries[i].ID)
		assert.Equal(t, want.Entries[i].Name, got.Entries[i].Name)
		assert.Equal(t, want.Entries[i].Description, got.Entries[i].Description)
		assert.Equal(t, want.Entries[i].Image, got.Entries[i].Image)
		assert.Equal(t, want.Entries[i].Quantity, got.Entries[i].Quantity)
		assert.True(t, want.Entries[i].Price.Equal(got.Entries[i].Price.Decimal))
	}
}

func TestCartSlotRepository_EnvelopeShape(t *testing.T) {
	ctx := context.Background()
	slots := infraRepo.NewMemorySlotRepository()

	require.NoError(t, infraRepo.NewCartSlotRepository(slots).Save(ctx, model.CartState{}))

	raw, err := slots.Get(ctx, infraRepo.CartStorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":{"cart":[]},"version":0}`, raw)
}

func TestCartSlotRepository_ReadsLegacySnapshot(t *testing.T) {
	ctx := context.Background()
	slots := infraRepo.NewMemorySlotRepository()
	legacy := `{"state":{"cart":[{"id":"p1","name":"Mug","price":9.99,"quantity":2,"image":"","description":""}]},"version":0}`
	require.NoError(t, slots.Set(ctx, "cart-storage", legacy))

	got, err := infraRepo.NewCartSlotRepository(slots).Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "9.99", got.Entries[0].Price.String())
}

func TestCartSlotRepository_MissingIsEmpty(t *testing.T) {
	got, err := infraRepo.NewCartSlotRepository(infraRepo.NewMemorySlotRepository()).Load(context.Background())
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestCartSlotRepository_CorruptIsEmpty(t *testing.T) {
	ctx := context.Background()
	slots := infraRepo.NewMemorySlotRepository()
	require.NoError(t, slots.Set(ctx, "cart-storage", "{not json"))

	got, err := infraRepo.NewCartSlotRepository(slots).Load(ctx)
	assert.ErrorIs(t, err, infraRepo.ErrCorruptCartSlot)
	assert.True(t, got.IsEmpty())
}

func TestCartSlotRepository_OtherVersionIsEmpty(t *testing.T) {
	ctx := context.Background()
	slots := infraRepo.NewMemorySlotRepository()
	require.NoError(t, slots.Set(ctx, "cart-storage", `{"state":{"cart":[{"id":"p1","quantity":1}]},"version":3}`))

	got, err := infraRepo.NewCartSlotRepository(slots).Load(ctx)
	assert.ErrorIs(t, err, infraRepo.ErrCartSlotVersion)
	assert.True(t, got.IsEmpty())
}

func TestCartSlotRepository_NoStorageIsNoop(t *testing.T) {
	ctx := context.Background()
	r := infraRepo.NewCartSlotRepository(nil)

	assert.NoError(t, r.Save(ctx, sampleCart()))

	got, err := r.Load(ctx)
	assert.NoError(t, err)
	assert.True(t, got.IsEmpty())
}
