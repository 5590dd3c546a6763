package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineZeroForCoincidentPoints(t *testing.T) {
	assert.Equal(t, 0.0, Haversine(28.7526, 77.4934, 28.7526, 77.4934))
}

func TestHaversineSymmetry(t *testing.T) {
	d1 := Haversine(28.7526, 77.4934, 28.7580, 77.5000)
	d2 := Haversine(28.7580, 77.5000, 28.7526, 77.4934)
	assert.InDelta(t, d1, d2, 1e-12)
}

func TestHaversineKnownDistances(t *testing.T) {
	// Paris to London, roughly 343.5 km great-circle.
	d := Haversine(48.8566, 2.3522, 51.5074, -0.1278)
	assert.InDelta(t, 343.5, d, 1.5)

	// Two points in Ghaziabad, under a kilometer apart.
	d = Haversine(28.7526, 77.4934, 28.7580, 77.5000)
	assert.Greater(t, d, 0.8)
	assert.Less(t, d, 1.0)
}

func TestHaversineAntipodes(t *testing.T) {
	d := Haversine(0, 0, 0, 180)
	assert.False(t, math.IsNaN(d))
	assert.InDelta(t, math.Pi*EarthRadiusKm, d, 1.0)
}

func TestValidateCoordinates(t *testing.T) {
	require.NoError(t, ValidateCoordinates(28.7526, 77.4934))
	require.NoError(t, ValidateCoordinates(-90, 180))

	assert.Error(t, ValidateCoordinates(91, 0))
	assert.Error(t, ValidateCoordinates(-91, 0))
	assert.Error(t, ValidateCoordinates(0, 181))
	assert.Error(t, ValidateCoordinates(0, -181))
	assert.Error(t, ValidateCoordinates(math.NaN(), 0))
	assert.Error(t, ValidateCoordinates(0, math.NaN()))
}
