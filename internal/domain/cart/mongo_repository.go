// internal/domain/cart/mongo_repository.go
package cart

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

// NewMongoRepository creates a cart repository backed by the "carts"
// collection.
func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{collection: db.Collection("carts")}
}

func (m *mongoRepository) FindByUser(ctx context.Context, userID string) (*Cart, error) {
	var cart Cart

	filter := bson.M{"user_id": userID}
	err := m.collection.FindOne(ctx, filter).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	return &cart, nil
}

func (m *mongoRepository) Save(ctx context.Context, cart *Cart) error {
	filter := bson.M{"user_id": cart.UserID}
	update := bson.M{"$set": cart}
	opts := options.Update().SetUpsert(true)

	if _, err := m.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert cart: %w", err)
	}

	return nil
}

type mongoSavedCartRepository struct {
	collection *mongo.Collection
}

// NewMongoSavedCartRepository creates a saved-cart repository backed by the
// "saved_carts" collection.
func NewMongoSavedCartRepository(db *mongo.Database) SavedCartRepository {
	return &mongoSavedCartRepository{collection: db.Collection("saved_carts")}
}

func (m *mongoSavedCartRepository) FindByID(ctx context.Context, id string) (*SavedCart, error) {
	var saved SavedCart

	err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&saved)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSavedCartNotFound
		}
		return nil, fmt.Errorf("failed to get saved cart: %w", err)
	}

	return &saved, nil
}

func (m *mongoSavedCartRepository) FindByUser(ctx context.Context, userID string) ([]SavedCart, error) {
	opts := options.Find().SetSort(bson.D{{Key: "saved_at", Value: -1}})

	cursor, err := m.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved carts: %w", err)
	}
	defer cursor.Close(ctx)

	saved := []SavedCart{}
	if err := cursor.All(ctx, &saved); err != nil {
		return nil, fmt.Errorf("failed to decode saved carts: %w", err)
	}

	return saved, nil
}

func (m *mongoSavedCartRepository) Insert(ctx context.Context, saved *SavedCart) error {
	if _, err := m.collection.InsertOne(ctx, saved); err != nil {
		return fmt.Errorf("failed to insert saved cart: %w", err)
	}
	return nil
}

func (m *mongoSavedCartRepository) Delete(ctx context.Context, id string) error {
	result, err := m.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete saved cart: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrSavedCartNotFound
	}
	return nil
}
