package offersRepo

import (
	"context"

	"farewise/database"
	"farewise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// OfferCatalogRepository loads the promotional-offer reference data. Loaded
// once at process start; the catalog is immutable afterwards.
type OfferCatalogRepository interface {
	Load(ctx context.Context) ([]models.Offer, error)
}

type mongoOfferCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoOfferCatalogRepo returns an OfferCatalogRepository backed by
// MongoDB, or a seed-only repository when Mongo is not configured.
func NewMongoOfferCatalogRepo() OfferCatalogRepository {
	if database.MongoClient == nil {
		return seedOfferCatalogRepo{}
	}
	db := database.MongoClient.Database("farewise")
	return &mongoOfferCatalogRepo{
		coll: db.Collection("offer_catalog"),
	}
}

// NewSeedOfferCatalogRepo returns a repository serving only the compiled-in
// seed offers. Used directly in tests.
func NewSeedOfferCatalogRepo() OfferCatalogRepository {
	return seedOfferCatalogRepo{}
}

type seedOfferCatalogRepo struct{}

func (seedOfferCatalogRepo) Load(ctx context.Context) ([]models.Offer, error) {
	return SeedOffers(), nil
}
