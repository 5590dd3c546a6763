package search

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	propertyRepo "nestfind/database/repository/property"
	"nestfind/models"
	"nestfind/utils"

	"go.uber.org/zap"
)

// ErrUnavailable signals that both the indexed path and the linear-scan
// fallback failed. It is the only way a search surfaces a store error.
var ErrUnavailable = errors.New("search temporarily unavailable")

// SearchService composes proximity retrieval, filtering, ordering and
// pagination into one query contract.
type SearchService interface {
	// Nearby returns listings within the query radius of the center,
	// ranked by ascending distance.
	Nearby(ctx context.Context, q models.SearchQuery) (*models.NearbyResult, error)
	// Search returns listings matching the filter bundle over the full
	// collection, ranked by ascending price.
	Search(ctx context.Context, q models.SearchQuery) (*models.SearchResult, error)
}

// DefaultSearchService implements SearchService over an injected
// PropertyRepository.
type DefaultSearchService struct {
	Repo propertyRepo.PropertyRepository
	// IndexTimeout bounds the indexed proximity query only; the timeout
	// is treated like any other indexed-path failure.
	IndexTimeout time.Duration
}

// distanceTolerance absorbs floating-point drift so radius 0 still
// matches listings at the exact center point.
const distanceTolerance = 1e-9

// Nearby runs the proximity pipeline. On indexed-path failure it reruns
// the retrieval as a linear scan; the original failure is recorded, never
// propagated. Filtering, ordering and pagination are identical on both
// paths.
func (s *DefaultSearchService) Nearby(ctx context.Context, q models.SearchQuery) (*models.NearbyResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if !q.HasCenter() {
		return nil, fmt.Errorf("proximity search requires latitude and longitude")
	}
	center := models.NewGeoPoint(*q.Latitude, *q.Longitude)
	radius := q.Radius()

	candidates, err := s.findWithinRadius(ctx, center, radius)
	if err != nil {
		zap.L().Warn("indexed proximity query failed; falling back to linear scan",
			zap.Float64("radius_km", radius), zap.Error(err))
		candidates, err = s.scanWithinRadius(ctx, center, radius)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}

	matched := make([]models.PropertyWithDistance, 0, len(candidates))
	for _, c := range candidates {
		if MatchesFilters(c.Property, q.SearchFilters) {
			matched = append(matched, c)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].DistanceKm != matched[j].DistanceKm {
			return matched[i].DistanceKm < matched[j].DistanceKm
		}
		return matched[i].ID < matched[j].ID
	})

	total := len(matched)
	limit := q.PageLimit()
	page := pageOfDistances(matched, q.Skip, limit)
	for i := range page {
		page[i].Property = NormalizeProperty(page[i].Property)
		page[i].DistanceKm = roundKm(page[i].DistanceKm)
	}

	return &models.NearbyResult{
		Total:      total,
		Properties: page,
		HasMore:    q.Skip+limit < total,
	}, nil
}

// Search runs the non-proximity pipeline: the same filter bundle over the
// full collection, default-sorted by ascending price.
func (s *DefaultSearchService) Search(ctx context.Context, q models.SearchQuery) (*models.SearchResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	all, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	total, err := s.Repo.CountAll(ctx)
	if err != nil {
		total = int64(len(all))
	}

	matched := make([]models.Property, 0, len(all))
	for _, p := range all {
		if MatchesFilters(p, q.SearchFilters) {
			matched = append(matched, p)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Price != matched[j].Price {
			return matched[i].Price < matched[j].Price
		}
		return matched[i].ID < matched[j].ID
	})

	filteredCount := len(matched)
	limit := q.PageLimit()
	page := NormalizeProperties(pageOfProperties(matched, q.Skip, limit))

	return &models.SearchResult{
		Total:         total,
		FilteredCount: filteredCount,
		Properties:    page,
		HasMore:       q.Skip+limit < filteredCount,
	}, nil
}

// findWithinRadius is the indexed path, bounded by IndexTimeout when set.
func (s *DefaultSearchService) findWithinRadius(ctx context.Context, center models.GeoPoint, radiusKm float64) ([]models.PropertyWithDistance, error) {
	if s.IndexTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.IndexTimeout)
		defer cancel()
	}
	return s.Repo.FindWithinRadius(ctx, center, radiusKm)
}

// scanWithinRadius is the fallback path: a linear scan over the full
// collection with the haversine distance. Listings without a usable
// location are excluded. Both paths produce the same logical result set.
func (s *DefaultSearchService) scanWithinRadius(ctx context.Context, center models.GeoPoint, radiusKm float64) ([]models.PropertyWithDistance, error) {
	all, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]models.PropertyWithDistance, 0, len(all))
	for _, p := range all {
		if !p.LocationGeo.HasCoordinates() {
			continue
		}
		d := utils.Haversine(center.Lat(), center.Lon(), p.LocationGeo.Lat(), p.LocationGeo.Lon())
		if d <= radiusKm+distanceTolerance {
			results = append(results, models.PropertyWithDistance{Property: p, DistanceKm: d})
		}
	}
	return results, nil
}

func pageOfDistances(items []models.PropertyWithDistance, skip, limit int) []models.PropertyWithDistance {
	start, end := pageBounds(len(items), skip, limit)
	page := make([]models.PropertyWithDistance, end-start)
	copy(page, items[start:end])
	return page
}

func pageOfProperties(items []models.Property, skip, limit int) []models.Property {
	start, end := pageBounds(len(items), skip, limit)
	page := make([]models.Property, end-start)
	copy(page, items[start:end])
	return page
}

func pageBounds(total, skip, limit int) (int, int) {
	if skip > total {
		skip = total
	}
	end := skip + limit
	if end > total {
		end = total
	}
	return skip, end
}

func roundKm(d float64) float64 {
	return math.Round(d*100) / 100
}
