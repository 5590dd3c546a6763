package propertyRepo

import (
	"context"
	"fmt"
	"time"

	"nestfind/config"
	"nestfind/database"
	"nestfind/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPropertyRepo implements PropertyRepository using MongoDB.
type MongoPropertyRepo struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

// NewMongoPropertyRepo creates a new instance of PropertyRepository using MongoDB.
func NewMongoPropertyRepo() PropertyRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &MongoPropertyRepo{
		coll:     db.Collection("properties"),
		counters: db.Collection("counters"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields that are frequently used in queries.
func (r *MongoPropertyRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		// 2dsphere index backing the $geoNear proximity path.
		{Keys: bson.D{{Key: "location_geo", Value: "2dsphere"}}},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "property_type", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "is_available", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// nextSequence returns the next value of a named integer sequence.
// Listing ids are sequential integers assigned at creation.
func (r *MongoPropertyRepo) nextSequence(ctx context.Context, name string) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("failed to advance %s sequence: %w", name, err)
	}
	return doc.Seq, nil
}

// Create assigns a new id and persists the listing.
func (r *MongoPropertyRepo) Create(ctx context.Context, p *models.Property) error {
	id, err := r.nextSequence(ctx, "properties")
	if err != nil {
		return err
	}
	p.ID = id

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to insert property: %w", err)
	}
	return nil
}

// GetByID retrieves a listing by its unique id.
func (r *MongoPropertyRepo) GetByID(ctx context.Context, id int64) (*models.Property, error) {
	var p models.Property
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch property with id %d: %w", id, err)
	}
	return &p, nil
}

// GetByOwner retrieves all listings belonging to an account.
func (r *MongoPropertyRepo) GetByOwner(ctx context.Context, ownerID int64) ([]models.Property, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to find properties for owner %d: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("failed to decode properties: %w", err)
	}
	return properties, nil
}

// Update replaces the stored listing with the given one.
func (r *MongoPropertyRepo) Update(ctx context.Context, p *models.Property) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": p.ID}, p)
	if err != nil {
		return fmt.Errorf("failed to update property %d: %w", p.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDelete marks a listing unavailable and stamps the update time.
// Listings are never hard-deleted.
func (r *MongoPropertyRepo) SoftDelete(ctx context.Context, id int64) error {
	update := bson.M{"$set": bson.M{
		"is_available": false,
		"updated_at":   time.Now().UTC(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to soft-delete property %d: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
