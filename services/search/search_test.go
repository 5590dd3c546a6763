package search

import (
	"context"
	"errors"
	"math"
	"testing"

	propertyRepo "nestfind/database/repository/property"
	"nestfind/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("store down")

// brokenRepo fails every operation, exercising the unavailable paths.
type brokenRepo struct{}

func (brokenRepo) Create(ctx context.Context, p *models.Property) error { return errStoreDown }
func (brokenRepo) GetByID(ctx context.Context, id int64) (*models.Property, error) {
	return nil, errStoreDown
}
func (brokenRepo) GetByOwner(ctx context.Context, ownerID int64) ([]models.Property, error) {
	return nil, errStoreDown
}
func (brokenRepo) Update(ctx context.Context, p *models.Property) error { return errStoreDown }
func (brokenRepo) SoftDelete(ctx context.Context, id int64) error       { return errStoreDown }
func (brokenRepo) GetAll(ctx context.Context) ([]models.Property, error) {
	return nil, errStoreDown
}
func (brokenRepo) CountAll(ctx context.Context) (int64, error) { return 0, errStoreDown }
func (brokenRepo) FindWithinRadius(ctx context.Context, center models.GeoPoint, radiusKm float64) ([]models.PropertyWithDistance, error) {
	return nil, propertyRepo.ErrIndexUnavailable
}

func seedRepo(t *testing.T, listings ...models.Property) *propertyRepo.MemoryPropertyRepo {
	t.Helper()
	repo := propertyRepo.NewMemoryPropertyRepo()
	for i := range listings {
		p := listings[i]
		require.NoError(t, repo.Create(context.Background(), &p))
	}
	return repo
}

func listingAt(title string, lat, lon, price float64) models.Property {
	return models.Property{
		Title:        title,
		PropertyType: models.PropertyTypePG,
		City:         "Ghaziabad",
		LocationGeo:  models.NewGeoPoint(lat, lon),
		Price:        price,
		Gender:       models.GenderAny,
		IsAvailable:  true,
	}
}

func nearbyQuery(lat, lon, radius float64) models.SearchQuery {
	return models.SearchQuery{
		Latitude:  &lat,
		Longitude: &lon,
		RadiusKm:  &radius,
	}
}

func TestNearbyDistanceRankedWithinRadius(t *testing.T) {
	repo := seedRepo(t,
		listingAt("At center", 28.7526, 77.4934, 8500),
		listingAt("Down the road", 28.7580, 77.5000, 6000),
		listingAt("Across town", 28.6900, 77.4500, 7000),
	)
	svc := &DefaultSearchService{Repo: repo}

	result, err := svc.Nearby(context.Background(), nearbyQuery(28.7526, 77.4934, 1.0))
	require.NoError(t, err)

	require.Len(t, result.Properties, 2)
	assert.Equal(t, 2, result.Total)
	assert.False(t, result.HasMore)

	assert.Equal(t, "At center", result.Properties[0].Title)
	assert.Equal(t, 0.0, result.Properties[0].DistanceKm)
	assert.Equal(t, "Down the road", result.Properties[1].Title)
	assert.Greater(t, result.Properties[1].DistanceKm, 0.8)
	assert.LessOrEqual(t, result.Properties[1].DistanceKm, 1.0)
}

func TestNearbyZeroRadiusMatchesCenterListing(t *testing.T) {
	repo := seedRepo(t,
		listingAt("At center", 28.7526, 77.4934, 8500),
		listingAt("Down the road", 28.7580, 77.5000, 6000),
	)
	svc := &DefaultSearchService{Repo: repo}

	result, err := svc.Nearby(context.Background(), nearbyQuery(28.7526, 77.4934, 0))
	require.NoError(t, err)
	require.Len(t, result.Properties, 1)
	assert.Equal(t, "At center", result.Properties[0].Title)
}

func TestNearbyRadiusMonotonicity(t *testing.T) {
	repo := seedRepo(t,
		listingAt("A", 28.7526, 77.4934, 8500),
		listingAt("B", 28.7580, 77.5000, 6000),
		listingAt("C", 28.7700, 77.5200, 7000),
		listingAt("D", 28.9000, 77.7000, 9000),
	)
	svc := &DefaultSearchService{Repo: repo}

	prev := 0
	for _, radius := range []float64{0, 0.5, 1, 5, 50} {
		result, err := svc.Nearby(context.Background(), nearbyQuery(28.7526, 77.4934, radius))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.Total, prev, "growing the radius must never lose results")
		prev = result.Total
	}
}

func TestNearbyExcludesListingsWithoutCoordinates(t *testing.T) {
	noLocation := listingAt("No location", 0, 0, 5000)
	noLocation.LocationGeo = models.GeoPoint{}

	repo := seedRepo(t,
		listingAt("At center", 28.7526, 77.4934, 8500),
		noLocation,
	)
	svc := &DefaultSearchService{Repo: repo}

	result, err := svc.Nearby(context.Background(), nearbyQuery(28.7526, 77.4934, 5000))
	require.NoError(t, err)
	require.Len(t, result.Properties, 1)
	assert.Equal(t, "At center", result.Properties[0].Title)
}

func TestNearbyAppliesFilterBundle(t *testing.T) {
	cheap := listingAt("Cheap", 28.7526, 77.4934, 4000)
	pricey := listingAt("Pricey", 28.7530, 77.4940, 12000)
	pricey.HasWifi = true

	repo := seedRepo(t, cheap, pricey)
	svc := &DefaultSearchService{Repo: repo}

	q := nearbyQuery(28.7526, 77.4934, 5)
	min := 6000.0
	q.MinPrice = &min
	want := true
	q.HasWifi = &want

	result, err := svc.Nearby(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, result.Properties, 1)
	assert.Equal(t, "Pricey", result.Properties[0].Title)
}

func TestNearbyFallbackMatchesIndexedPath(t *testing.T) {
	listings := []models.Property{
		listingAt("A", 28.7526, 77.4934, 8500),
		listingAt("B", 28.7580, 77.5000, 6000),
		listingAt("C", 28.7700, 77.5200, 7000),
	}

	indexed := seedRepo(t, listings...)
	degraded := seedRepo(t, listings...)
	degraded.FailRadius = true

	q := nearbyQuery(28.7526, 77.4934, 5)

	fromIndex, err := (&DefaultSearchService{Repo: indexed}).Nearby(context.Background(), q)
	require.NoError(t, err)
	fromScan, err := (&DefaultSearchService{Repo: degraded}).Nearby(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, fromIndex.Total, fromScan.Total)
	require.Len(t, fromScan.Properties, len(fromIndex.Properties))
	for i := range fromIndex.Properties {
		assert.Equal(t, fromIndex.Properties[i].ID, fromScan.Properties[i].ID)
		assert.Equal(t, fromIndex.Properties[i].DistanceKm, fromScan.Properties[i].DistanceKm)
	}
}

func TestNearbyUnavailableWhenBothPathsFail(t *testing.T) {
	svc := &DefaultSearchService{Repo: brokenRepo{}}

	_, err := svc.Nearby(context.Background(), nearbyQuery(28.7526, 77.4934, 5))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNearbyPagination(t *testing.T) {
	repo := seedRepo(t,
		listingAt("A", 28.7526, 77.4934, 8500),
		listingAt("B", 28.7540, 77.4950, 6000),
		listingAt("C", 28.7560, 77.4970, 7000),
		listingAt("D", 28.7580, 77.5000, 9000),
		listingAt("E", 28.7600, 77.5030, 5500),
	)
	svc := &DefaultSearchService{Repo: repo}

	limit := 2
	var seen []int64
	for skip := 0; skip < 6; skip += limit {
		q := nearbyQuery(28.7526, 77.4934, 50)
		q.Skip = skip
		q.Limit = &limit

		result, err := svc.Nearby(context.Background(), q)
		require.NoError(t, err)
		assert.Equal(t, 5, result.Total)

		for _, p := range result.Properties {
			seen = append(seen, p.ID)
		}
		if skip+limit < 5 {
			assert.True(t, result.HasMore)
		} else {
			assert.False(t, result.HasMore)
		}
	}

	// Pages are disjoint and cover everything exactly once.
	require.Len(t, seen, 5)
	unique := make(map[int64]bool, len(seen))
	for _, id := range seen {
		unique[id] = true
	}
	assert.Len(t, unique, 5)
}

func TestNearbySkipBeyondResultsYieldsEmptyPage(t *testing.T) {
	repo := seedRepo(t, listingAt("A", 28.7526, 77.4934, 8500))
	svc := &DefaultSearchService{Repo: repo}

	q := nearbyQuery(28.7526, 77.4934, 5)
	q.Skip = 10

	result, err := svc.Nearby(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	assert.Empty(t, result.Properties)
	assert.False(t, result.HasMore)
}

func TestNearbyValidation(t *testing.T) {
	svc := &DefaultSearchService{Repo: propertyRepo.NewMemoryPropertyRepo()}

	lat := 28.7526
	_, err := svc.Nearby(context.Background(), models.SearchQuery{Latitude: &lat})
	assert.Error(t, err, "latitude without longitude must be rejected")

	q := nearbyQuery(91, 77.4934, 5)
	_, err = svc.Nearby(context.Background(), q)
	assert.Error(t, err)

	q = nearbyQuery(28.7526, 77.4934, -1)
	_, err = svc.Nearby(context.Background(), q)
	assert.Error(t, err)

	_, err = svc.Nearby(context.Background(), models.SearchQuery{})
	assert.Error(t, err, "proximity search requires a center")
}

func TestNearbyRejectsNaNCoordinates(t *testing.T) {
	repo := seedRepo(t, listingAt("At center", 28.7526, 77.4934, 8500))
	svc := &DefaultSearchService{Repo: repo}

	// NaN passes plain range comparisons; it must surface as a validation
	// error, never as a silently empty result.
	q := nearbyQuery(math.NaN(), 77.4934, 5)
	_, err := svc.Nearby(context.Background(), q)
	assert.Error(t, err)

	q = nearbyQuery(28.7526, math.NaN(), 5)
	_, err = svc.Nearby(context.Background(), q)
	assert.Error(t, err)

	q = nearbyQuery(28.7526, 77.4934, math.NaN())
	_, err = svc.Nearby(context.Background(), q)
	assert.Error(t, err)
}

func TestSearchPriceRankedWithCounts(t *testing.T) {
	unavailable := listingAt("Gone", 28.7526, 77.4934, 3000)
	unavailable.IsAvailable = false

	repo := seedRepo(t,
		listingAt("Mid", 28.7526, 77.4934, 8500),
		listingAt("Cheap", 28.7580, 77.5000, 6000),
		listingAt("Pricey", 28.7700, 77.5200, 22000),
		unavailable,
	)
	svc := &DefaultSearchService{Repo: repo}

	result, err := svc.Search(context.Background(), models.SearchQuery{})
	require.NoError(t, err)

	// Total counts the collection; FilteredCount what survived the bundle.
	assert.Equal(t, int64(4), result.Total)
	assert.Equal(t, 3, result.FilteredCount)
	assert.False(t, result.HasMore)

	require.Len(t, result.Properties, 3)
	assert.Equal(t, "Cheap", result.Properties[0].Title)
	assert.Equal(t, "Mid", result.Properties[1].Title)
	assert.Equal(t, "Pricey", result.Properties[2].Title)
}

func TestSearchPaginationHasMore(t *testing.T) {
	repo := seedRepo(t,
		listingAt("A", 28.7526, 77.4934, 8500),
		listingAt("B", 28.7580, 77.5000, 6000),
		listingAt("C", 28.7700, 77.5200, 7000),
	)
	svc := &DefaultSearchService{Repo: repo}

	limit := 2
	result, err := svc.Search(context.Background(), models.SearchQuery{Limit: &limit})
	require.NoError(t, err)
	assert.Len(t, result.Properties, 2)
	assert.True(t, result.HasMore)

	result, err = svc.Search(context.Background(), models.SearchQuery{Skip: 2, Limit: &limit})
	require.NoError(t, err)
	assert.Len(t, result.Properties, 1)
	assert.False(t, result.HasMore)
}

func TestSearchUnavailableWhenStoreFails(t *testing.T) {
	svc := &DefaultSearchService{Repo: brokenRepo{}}

	_, err := svc.Search(context.Background(), models.SearchQuery{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSearchResultsAreNormalized(t *testing.T) {
	repo := seedRepo(t, listingAt("A", 28.7526, 77.4934, 8500))
	svc := &DefaultSearchService{Repo: repo}

	result, err := svc.Search(context.Background(), models.SearchQuery{})
	require.NoError(t, err)
	require.Len(t, result.Properties, 1)

	p := result.Properties[0]
	assert.Equal(t, 28.7526, p.Latitude)
	assert.Equal(t, 77.4934, p.Longitude)
	assert.Equal(t, "monthly", p.PriceType)
}
