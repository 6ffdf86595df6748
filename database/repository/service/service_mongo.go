// Package serviceRepo is the read-side contract against the service catalog.
// The booking engine only needs a lookup by id; catalog management lives in
// another system.
package serviceRepo

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

// ErrNoDocument is returned when a service does not exist or is soft-deleted.
var ErrNoDocument = errors.New("service not found")

// ServiceRepository defines the catalog lookup consumed by the booking flow.
type ServiceRepository interface {
	GetByID(ctx context.Context, id string) (*models.Service, error)
}

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a new instance of MongoServiceRepo.
func NewMongoServiceRepo() ServiceRepository {
	return &MongoServiceRepo{coll: database.DB().Collection("services")}
}

func (repo *MongoServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var service models.Service
	filter := repository.NotDeleted(bson.M{"id": id})
	if err := repo.coll.FindOne(ctx, filter).Decode(&service); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("error fetching service %s: %w", id, err)
	}
	return &service, nil
}
