package cardsRepo

import (
	"context"

	"farewise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Load returns the card registry from Mongo, in insertion order. An empty
// collection falls back to the seed entries so a fresh deployment still
// normalizes cards.
func (r *mongoCardRegistryRepo) Load(ctx context.Context) ([]models.CardRegistryEntry, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.CardRegistryEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return SeedEntries(), nil
	}
	return entries, nil
}
