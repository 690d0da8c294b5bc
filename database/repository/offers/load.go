package offersRepo

import (
	"context"

	"farewise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Load returns the offer catalog from Mongo, in insertion order. Catalog
// order is meaningful: ranking ties are broken by it. An empty collection
// falls back to the seed offers.
func (r *mongoOfferCatalogRepo) Load(ctx context.Context) ([]models.Offer, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var offers []models.Offer
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, err
	}
	if len(offers) == 0 {
		return SeedOffers(), nil
	}
	return offers, nil
}
