package fridge

import (
	"context"
	"sort"
	"testing"
	"time"

	"frigoo-backend/domain"
	"frigoo-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeFridgeRepository struct {
	items map[string]*entities.FridgeItem
}

func newFakeFridgeRepository() *fakeFridgeRepository {
	return &fakeFridgeRepository{items: make(map[string]*entities.FridgeItem)}
}

func (r *fakeFridgeRepository) AddFridgeItem(_ context.Context, item *entities.FridgeItem) error {
	copied := *item
	r.items[item.ID.String()] = &copied
	return nil
}

func (r *fakeFridgeRepository) GetFridgeItemByID(_ context.Context, id string) (*entities.FridgeItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *fakeFridgeRepository) UpdateFridgeItem(_ context.Context, item *entities.FridgeItem) error {
	copied := *item
	r.items[item.ID.String()] = &copied
	return nil
}

func (r *fakeFridgeRepository) DeleteFridgeItem(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeFridgeRepository) GetFridgeItems(_ context.Context, userID string) ([]*entities.FridgeItem, error) {
	var items []*entities.FridgeItem
	for _, item := range r.items {
		if item.UserID.String() == userID {
			copied := *item
			items = append(items, &copied)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ExpiresAt.Before(items[j].ExpiresAt)
	})
	return items, nil
}

func seedFridgeItem(repo *fakeFridgeRepository, userID uuid.UUID, name string, expiresAt time.Time) uuid.UUID {
	id := uuid.New()
	repo.items[id.String()] = &entities.FridgeItem{
		ID:        id,
		UserID:    userID,
		Name:      name,
		Quantity:  "1",
		Type:      "Autres",
		ExpiresAt: expiresAt,
	}
	return id
}

func TestAddFridgeItem(t *testing.T) {
	repo := newFakeFridgeRepository()
	service := NewFridgeService(repo)
	userID := uuid.New()

	res, err := service.AddFridgeItem(context.Background(), domain.AddFridgeItemRequest{
		Name:      "Lait",
		Quantity:  "1L",
		Type:      "Produits laitiers",
		ExpiresAt: time.Now().AddDate(0, 0, 10).Format("2006-01-02"),
	}, userID.String())

	require.NoError(t, err)
	assert.Equal(t, "Lait", res.Name)
	assert.Equal(t, string(StatusFresh), res.Status)
	assert.Len(t, repo.items, 1)
}

func TestAddFridgeItemInvalidDate(t *testing.T) {
	repo := newFakeFridgeRepository()
	service := NewFridgeService(repo)

	_, err := service.AddFridgeItem(context.Background(), domain.AddFridgeItemRequest{
		Name:      "Lait",
		Quantity:  "1L",
		Type:      "Produits laitiers",
		ExpiresAt: "10/03/2025",
	}, uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
}

func TestUpdateFridgeItemPartial(t *testing.T) {
	repo := newFakeFridgeRepository()
	service := NewFridgeService(repo)
	userID := uuid.New()
	id := seedFridgeItem(repo, userID, "Tomates", time.Now().AddDate(0, 0, 5))

	err := service.UpdateFridgeItem(context.Background(), id.String(), domain.UpdateFridgeItemRequest{
		Quantity: "500g",
	}, userID.String())

	require.NoError(t, err)
	item := repo.items[id.String()]
	assert.Equal(t, "500g", item.Quantity)
	assert.Equal(t, "Tomates", item.Name, "fields absent from the request must stay untouched")
}

func TestUpdateFridgeItemWrongOwner(t *testing.T) {
	repo := newFakeFridgeRepository()
	service := NewFridgeService(repo)
	id := seedFridgeItem(repo, uuid.New(), "Tomates", time.Now().AddDate(0, 0, 5))

	err := service.UpdateFridgeItem(context.Background(), id.String(), domain.UpdateFridgeItemRequest{
		Quantity: "500g",
	}, uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
}

func TestDeleteFridgeItemNotFound(t *testing.T) {
	repo := newFakeFridgeRepository()
	service := NewFridgeService(repo)

	err := service.DeleteFridgeItem(context.Background(), uuid.NewString(), uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrFridgeItemNotFound)
}

func TestGetFridgeItemsStatusFilter(t *testing.T) {
	repo := newFakeFridgeRepository()
	service := NewFridgeService(repo)
	userID := uuid.New()
	now := time.Now()

	seedFridgeItem(repo, userID, "Yaourt périmé", now.AddDate(0, 0, -2))
	seedFridgeItem(repo, userID, "Jambon", now.AddDate(0, 0, 2))
	seedFridgeItem(repo, userID, "Riz", now.AddDate(0, 1, 0))

	items, count, err := service.GetFridgeItems(context.Background(), userID.String(), domain.ExpiryFilterExpired, "", 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	require.Len(t, items, 1)
	assert.Equal(t, "Yaourt périmé", items[0].Name)
	assert.Equal(t, string(StatusExpired), items[0].Status)

	items, count, err = service.GetFridgeItems(context.Background(), userID.String(), domain.ExpiryFilterAll, "", 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
	assert.Len(t, items, 3)
}

func TestGetFridgeItemsSearch(t *testing.T) {
	repo := newFakeFridgeRepository()
	service := NewFridgeService(repo)
	userID := uuid.New()
	now := time.Now()

	seedFridgeItem(repo, userID, "Tomates cerises", now.AddDate(0, 0, 4))
	seedFridgeItem(repo, userID, "Lait", now.AddDate(0, 0, 4))

	items, count, err := service.GetFridgeItems(context.Background(), userID.String(), "", "TOM", 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	require.Len(t, items, 1)
	assert.Equal(t, "Tomates cerises", items[0].Name)
}

func TestGetFridgeItemsPagination(t *testing.T) {
	repo := newFakeFridgeRepository()
	service := NewFridgeService(repo)
	userID := uuid.New()
	now := time.Now()

	names := []string{"A", "B", "C", "D", "E"}
	for i, name := range names {
		seedFridgeItem(repo, userID, name, now.AddDate(0, 0, i+1))
	}

	items, count, err := service.GetFridgeItems(context.Background(), userID.String(), "", "", 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, count)
	require.Len(t, items, 2)
	assert.Equal(t, "C", items[0].Name, "items are ordered by closest expiry first")
	assert.Equal(t, "D", items[1].Name)

	items, _, err = service.GetFridgeItems(context.Background(), userID.String(), "", "", 4, 2)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetFridgeSummary(t *testing.T) {
	repo := newFakeFridgeRepository()
	service := NewFridgeService(repo)
	userID := uuid.New()
	now := time.Now()

	seedFridgeItem(repo, userID, "Yaourt", now.AddDate(0, 0, -1))
	seedFridgeItem(repo, userID, "Jambon", now.AddDate(0, 0, 2))
	seedFridgeItem(repo, userID, "Oeufs", now.AddDate(0, 0, 3))
	seedFridgeItem(repo, userID, "Riz", now.AddDate(0, 1, 0))
	seedFridgeItem(repo, uuid.New(), "Pas à moi", now.AddDate(0, 1, 0))

	summary, err := service.GetFridgeSummary(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, 4, summary.TotalItems)
	assert.Equal(t, 1, summary.FreshItems)
	assert.Equal(t, 2, summary.ExpiringItems)
	assert.Equal(t, 1, summary.ExpiredItems)
}
