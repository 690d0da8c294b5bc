package cardsRepo

import (
	"context"

	"farewise/database"
	"farewise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CardRegistryRepository loads the known-card reference data. The registry is
// read once at process start and treated as immutable afterwards.
type CardRegistryRepository interface {
	Load(ctx context.Context) ([]models.CardRegistryEntry, error)
}

type mongoCardRegistryRepo struct {
	coll *mongo.Collection
}

// NewMongoCardRegistryRepo returns a CardRegistryRepository backed by MongoDB,
// or a seed-only repository when Mongo is not configured.
func NewMongoCardRegistryRepo() CardRegistryRepository {
	if database.MongoClient == nil {
		return seedCardRegistryRepo{}
	}
	db := database.MongoClient.Database("farewise")
	return &mongoCardRegistryRepo{
		coll: db.Collection("card_registry"),
	}
}

// NewSeedCardRegistryRepo returns a repository serving only the compiled-in
// seed entries. Used directly in tests.
func NewSeedCardRegistryRepo() CardRegistryRepository {
	return seedCardRegistryRepo{}
}

type seedCardRegistryRepo struct{}

func (seedCardRegistryRepo) Load(ctx context.Context) ([]models.CardRegistryEntry, error) {
	return SeedEntries(), nil
}
