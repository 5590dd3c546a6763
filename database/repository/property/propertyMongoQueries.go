package propertyRepo

import (
	"context"
	"fmt"

	"nestfind/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetAll retrieves every listing. It feeds the linear-scan fallback path,
// so attribute filtering stays in the search service.
func (r *MongoPropertyRepo) GetAll(ctx context.Context) ([]models.Property, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve properties: %w", err)
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("failed to decode properties: %w", err)
	}
	return properties, nil
}

// CountAll returns the listing count before any filtering.
func (r *MongoPropertyRepo) CountAll(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count properties: %w", err)
	}
	return count, nil
}

// FindWithinRadius runs the indexed proximity query: a $geoNear stage
// against the 2dsphere index, returning candidates annotated with their
// server-computed distance in kilometers, nearest first. Failures are
// tagged ErrIndexUnavailable so the orchestrator can fall back.
func (r *MongoPropertyRepo) FindWithinRadius(ctx context.Context, center models.GeoPoint, radiusKm float64) ([]models.PropertyWithDistance, error) {
	if !center.HasCoordinates() {
		return nil, fmt.Errorf("search center has no coordinates")
	}

	// $geoNear must be the first stage. maxDistance is in meters;
	// distanceMultiplier converts the reported distance to kilometers.
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$geoNear", Value: bson.D{
			{Key: "near", Value: bson.D{
				{Key: "type", Value: "Point"},
				{Key: "coordinates", Value: center.Coordinates},
			}},
			{Key: "distanceField", Value: "distance_km"},
			{Key: "distanceMultiplier", Value: 0.001},
			{Key: "spherical", Value: true},
			{Key: "maxDistance", Value: radiusKm * 1000},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexUnavailable, err)
	}
	defer cursor.Close(ctx)

	var results []models.PropertyWithDistance
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexUnavailable, err)
	}
	return results, nil
}
