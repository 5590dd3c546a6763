package property

import (
	"context"
	"testing"

	propertyRepo "nestfind/database/repository/property"
	"nestfind/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() (*DefaultPropertyService, *propertyRepo.MemoryPropertyRepo) {
	repo := propertyRepo.NewMemoryPropertyRepo()
	return &DefaultPropertyService{Repo: repo}, repo
}

func validCreate() models.PropertyCreate {
	return models.PropertyCreate{
		Title:        "Sunrise PG",
		PropertyType: models.PropertyTypePG,
		Address:      "14 Rajnagar Extension",
		City:         "Ghaziabad",
		Latitude:     28.7526,
		Longitude:    77.4934,
		Price:        8500,
		Gender:       models.GenderAny,
	}
}

func TestCreateAssignsIDAndDefaults(t *testing.T) {
	svc, _ := newService()

	created, err := svc.Create(context.Background(), validCreate(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, int64(7), created.OwnerID)
	assert.True(t, created.IsAvailable)
	assert.False(t, created.IsVerified)
	assert.Equal(t, 28.7526, created.Latitude)
	assert.Equal(t, 77.4934, created.Longitude)
	assert.Equal(t, "monthly", created.PriceType)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateRejectsInvalidPayload(t *testing.T) {
	svc, _ := newService()

	in := validCreate()
	in.PropertyType = "castle"
	_, err := svc.Create(context.Background(), in, 7)
	assert.Error(t, err)

	in = validCreate()
	in.Latitude = 123
	_, err = svc.Create(context.Background(), in, 7)
	assert.Error(t, err)

	in = validCreate()
	in.Price = -1
	_, err = svc.Create(context.Background(), in, 7)
	assert.Error(t, err)
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _ := newService()

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, propertyRepo.ErrNotFound)
}

func TestUpdateIsOwnerScoped(t *testing.T) {
	svc, _ := newService()

	created, err := svc.Create(context.Background(), validCreate(), 7)
	require.NoError(t, err)

	newTitle := "Sunrise PG Deluxe"
	_, err = svc.Update(context.Background(), created.ID, 99, models.PropertyUpdate{Title: &newTitle})
	assert.ErrorIs(t, err, ErrNotOwner)

	updated, err := svc.Update(context.Background(), created.ID, 7, models.PropertyUpdate{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Sunrise PG Deluxe", updated.Title)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
}

func TestUpdateIsPartial(t *testing.T) {
	svc, _ := newService()

	created, err := svc.Create(context.Background(), validCreate(), 7)
	require.NoError(t, err)

	price := 9500.0
	updated, err := svc.Update(context.Background(), created.ID, 7, models.PropertyUpdate{Price: &price})
	require.NoError(t, err)

	assert.Equal(t, 9500.0, updated.Price)
	// Untouched fields survive.
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Latitude, updated.Latitude)
}

func TestUpdateMovesLocation(t *testing.T) {
	svc, _ := newService()

	created, err := svc.Create(context.Background(), validCreate(), 7)
	require.NoError(t, err)

	lat := 28.7580
	updated, err := svc.Update(context.Background(), created.ID, 7, models.PropertyUpdate{Latitude: &lat})
	require.NoError(t, err)

	// Supplying one coordinate keeps the other.
	assert.Equal(t, 28.7580, updated.Latitude)
	assert.Equal(t, 77.4934, updated.Longitude)
}

func TestSoftDeleteMarksUnavailable(t *testing.T) {
	svc, repo := newService()

	created, err := svc.Create(context.Background(), validCreate(), 7)
	require.NoError(t, err)

	require.ErrorIs(t, svc.SoftDelete(context.Background(), created.ID, 99), ErrNotOwner)
	require.NoError(t, svc.SoftDelete(context.Background(), created.ID, 7))

	// The record is retained, just unavailable.
	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsAvailable)
}

func TestGetByOwnerReturnsOnlyOwnListings(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Create(context.Background(), validCreate(), 7)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), validCreate(), 8)
	require.NoError(t, err)

	mine, err := svc.GetByOwner(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, int64(7), mine[0].OwnerID)
}
