package providerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"assemblr/database"
	"assemblr/database/repository"
	"assemblr/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNoDocument is returned when a provider does not exist or is soft-deleted.
var ErrNoDocument = errors.New("provider not found")

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo constructs a new instance of MongoProviderRepo.
func NewMongoProviderRepo() ProviderRepository {
	return &MongoProviderRepo{coll: database.DB().Collection("providers")}
}

const opTimeout = 5 * time.Second

func (repo *MongoProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var provider models.Provider
	filter := repository.NotDeleted(bson.M{"id": id})
	if err := repo.coll.FindOne(ctx, filter).Decode(&provider); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("error fetching provider %s: %w", id, err)
	}
	return &provider, nil
}

func (repo *MongoProviderRepo) List(ctx context.Context) ([]models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, repository.NotDeleted(bson.M{}))
	if err != nil {
		return nil, fmt.Errorf("error listing providers: %w", err)
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	for cursor.Next(ctx) {
		var p models.Provider
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("error decoding provider: %w", err)
		}
		providers = append(providers, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return providers, nil
}

func (repo *MongoProviderRepo) UpdateRating(ctx context.Context, id string, rating float64) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := repository.NotDeleted(bson.M{"id": id})
	update := bson.M{"$set": bson.M{"average_rating": rating}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update rating for provider %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (repo *MongoProviderRepo) ReplaceAvailability(ctx context.Context, id string, windows []models.AvailabilityWindow) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := repository.NotDeleted(bson.M{"id": id})
	update := bson.M{"$set": bson.M{"availability": windows}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to replace availability for provider %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}
