// internal/domain/wishlist/mongo_repository.go
package wishlist

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository creates a wishlist repository backed by the
// "wishlists" collection.
func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{collection: db.Collection("wishlists")}
}

func (m *mongoRepository) FindByUser(ctx context.Context, userID string) (*Wishlist, error) {
	var wishlist Wishlist

	filter := bson.M{"user_id": userID}
	err := m.collection.FindOne(ctx, filter).Decode(&wishlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrWishlistNotFound
		}
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}

	return &wishlist, nil
}

func (m *mongoRepository) Save(ctx context.Context, wishlist *Wishlist) error {
	filter := bson.M{"user_id": wishlist.UserID}
	update := bson.M{"$set": wishlist}
	opts := options.Update().SetUpsert(true)

	if _, err := m.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert wishlist: %w", err)
	}

	return nil
}
