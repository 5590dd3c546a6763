package propertyRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"nestfind/models"
	"nestfind/utils"
)

// MemoryPropertyRepo is an in-memory PropertyRepository. The search
// orchestrator is agnostic to the backing store, so this serves both
// deterministic tests and index-free deployments.
type MemoryPropertyRepo struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]models.Property

	// FailRadius forces FindWithinRadius to report the index as
	// unavailable, exercising the fallback path.
	FailRadius bool
}

// NewMemoryPropertyRepo creates an empty in-memory repository.
func NewMemoryPropertyRepo() *MemoryPropertyRepo {
	return &MemoryPropertyRepo{items: make(map[int64]models.Property)}
}

func (r *MemoryPropertyRepo) Create(ctx context.Context, p *models.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p.ID = r.nextID
	r.items[p.ID] = *p
	return nil
}

func (r *MemoryPropertyRepo) GetByID(ctx context.Context, id int64) (*models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *MemoryPropertyRepo) GetByOwner(ctx context.Context, ownerID int64) ([]models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var properties []models.Property
	for _, p := range r.items {
		if p.OwnerID == ownerID {
			properties = append(properties, p)
		}
	}
	sort.Slice(properties, func(i, j int) bool { return properties[i].ID < properties[j].ID })
	return properties, nil
}

func (r *MemoryPropertyRepo) Update(ctx context.Context, p *models.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; !ok {
		return ErrNotFound
	}
	r.items[p.ID] = *p
	return nil
}

func (r *MemoryPropertyRepo) SoftDelete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	p.IsAvailable = false
	p.UpdatedAt = time.Now().UTC()
	r.items[id] = p
	return nil
}

func (r *MemoryPropertyRepo) GetAll(ctx context.Context) ([]models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	properties := make([]models.Property, 0, len(r.items))
	for _, p := range r.items {
		properties = append(properties, p)
	}
	sort.Slice(properties, func(i, j int) bool { return properties[i].ID < properties[j].ID })
	return properties, nil
}

func (r *MemoryPropertyRepo) CountAll(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

// FindWithinRadius mirrors the indexed path over the in-memory set:
// same contract, same result set, distance computed with the haversine
// formula. Listings without coordinates are excluded, not crashed on.
func (r *MemoryPropertyRepo) FindWithinRadius(ctx context.Context, center models.GeoPoint, radiusKm float64) ([]models.PropertyWithDistance, error) {
	if r.FailRadius {
		return nil, ErrIndexUnavailable
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	const tolerance = 1e-9
	var results []models.PropertyWithDistance
	for _, p := range r.items {
		if !p.LocationGeo.HasCoordinates() {
			continue
		}
		d := utils.Haversine(center.Lat(), center.Lon(), p.LocationGeo.Lat(), p.LocationGeo.Lon())
		if d <= radiusKm+tolerance {
			results = append(results, models.PropertyWithDistance{Property: p, DistanceKm: d})
		}
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].DistanceKm != results[j].DistanceKm {
			return results[i].DistanceKm < results[j].DistanceKm
		}
		return results[i].ID < results[j].ID
	})
	return results, nil
}
