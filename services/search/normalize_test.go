package search

import (
	"testing"
	"time"

	"nestfind/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePropertyDerivesCoordinates(t *testing.T) {
	p := models.Property{LocationGeo: models.NewGeoPoint(28.7526, 77.4934)}
	n := NormalizeProperty(p)

	assert.Equal(t, 28.7526, n.Latitude)
	assert.Equal(t, 77.4934, n.Longitude)
}

func TestNormalizePropertyMalformedPointYieldsZeroes(t *testing.T) {
	p := models.Property{LocationGeo: models.GeoPoint{Type: "Point"}}
	n := NormalizeProperty(p)

	assert.Equal(t, 0.0, n.Latitude)
	assert.Equal(t, 0.0, n.Longitude)
}

func TestNormalizePropertyDefaults(t *testing.T) {
	n := NormalizeProperty(models.Property{})
	assert.Equal(t, "monthly", n.PriceType)
	require.NotNil(t, n.Bedrooms)
	assert.Equal(t, 1, *n.Bedrooms)
	require.NotNil(t, n.Bathrooms)
	assert.Equal(t, 1, *n.Bathrooms)

	// Room-type listings legitimately have no bedroom count.
	n = NormalizeProperty(models.Property{RoomType: models.RoomTypeShared})
	assert.Nil(t, n.Bedrooms)
	require.NotNil(t, n.Bathrooms)

	// Existing values are never overwritten.
	three := 3
	n = NormalizeProperty(models.Property{PriceType: "weekly", Bedrooms: &three})
	assert.Equal(t, "weekly", n.PriceType)
	assert.Equal(t, 3, *n.Bedrooms)
}

func TestNormalizePropertyTimestampsUTC(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	created := time.Date(2024, 3, 1, 10, 30, 0, 0, ist)

	n := NormalizeProperty(models.Property{CreatedAt: created, UpdatedAt: created})
	assert.Equal(t, time.UTC, n.CreatedAt.Location())
	assert.Equal(t, time.UTC, n.UpdatedAt.Location())
	assert.True(t, n.CreatedAt.Equal(created))
}

func TestNormalizePropertyIdempotent(t *testing.T) {
	p := models.Property{
		LocationGeo: models.NewGeoPoint(28.7526, 77.4934),
		Price:       8500,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	once := NormalizeProperty(p)
	twice := NormalizeProperty(once)
	assert.Equal(t, once, twice)
}

func TestNormalizePropertiesNeverNil(t *testing.T) {
	out := NormalizeProperties(nil)
	require.NotNil(t, out)
	assert.Empty(t, out)
}
