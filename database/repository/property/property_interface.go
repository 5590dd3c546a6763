package propertyRepo

import (
	"context"
	"errors"

	"nestfind/models"
)

// ErrNotFound signals that no listing exists for the requested id. It is
// distinct from an empty search result.
var ErrNotFound = errors.New("property not found")

// ErrIndexUnavailable marks failures of the indexed proximity path. The
// search orchestrator treats it as a documented fallback trigger rather
// than a caller-visible error.
var ErrIndexUnavailable = errors.New("proximity index unavailable")

// PropertyRepository is the listing store consumed by the search
// orchestrator and the CRUD service. FindWithinRadius is the indexed
// proximity path; GetAll feeds the linear-scan fallback.
type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) error
	GetByID(ctx context.Context, id int64) (*models.Property, error)
	GetByOwner(ctx context.Context, ownerID int64) ([]models.Property, error)
	Update(ctx context.Context, p *models.Property) error
	SoftDelete(ctx context.Context, id int64) error

	GetAll(ctx context.Context) ([]models.Property, error)
	CountAll(ctx context.Context) (int64, error)
	FindWithinRadius(ctx context.Context, center models.GeoPoint, radiusKm float64) ([]models.PropertyWithDistance, error)
}
