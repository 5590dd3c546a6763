package search

import (
	"nestfind/models"
)

// NormalizeProperty returns a copy of the listing with a complete,
// type-stable shape: derived coordinates filled in (0.0 when the stored
// point is malformed), sane numeric defaults, and UTC timestamps. The
// transformation is idempotent, so records coming off the indexed and
// fallback paths end up identical.
func NormalizeProperty(p models.Property) models.Property {
	p.Latitude = p.LocationGeo.Lat()
	p.Longitude = p.LocationGeo.Lon()

	if p.PriceType == "" {
		p.PriceType = "monthly"
	}
	// Whole-unit listings default to one bedroom/bathroom; room-type
	// listings (PG/hostel rooms) legitimately have no bedroom count.
	if p.Bedrooms == nil && p.RoomType == "" {
		one := 1
		p.Bedrooms = &one
	}
	if p.Bathrooms == nil {
		one := 1
		p.Bathrooms = &one
	}

	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p
}

// NormalizeProperties normalizes a page of listings. The result is never
// nil, so an empty page serializes as an empty array.
func NormalizeProperties(properties []models.Property) []models.Property {
	normalized := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		normalized = append(normalized, NormalizeProperty(p))
	}
	return normalized
}
