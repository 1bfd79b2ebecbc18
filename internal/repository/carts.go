// Package repository provides data access layer for MongoDB.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CartDocument represents a durable cart slot in MongoDB.
//
// The state payload is stored as opaque serialized JSON rather than nested
// BSON so that restores go through the same tolerant decoder regardless of
// which writer produced the slot.
type CartDocument struct {
	SessionID string    `bson:"_id" json:"session_id"`
	State     []byte    `bson:"state" json:"state"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// CartsRepository provides methods for cart slot operations.
type CartsRepository struct {
	collection *mongo.Collection
}

// NewCartsRepository creates a new carts repository.
func NewCartsRepository(db *MongoDB) *CartsRepository {
	return &CartsRepository{
		collection: db.Carts,
	}
}

// Load returns the raw state payload stored for a session.
// A missing slot returns (nil, nil); callers treat it as an empty cart.
func (r *CartsRepository) Load(ctx context.Context, sessionID string) ([]byte, error) {
	var doc CartDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.State, nil
}

// Save upserts the full state payload for a session, replacing any previous
// slot contents.
func (r *CartsRepository) Save(ctx context.Context, sessionID string, state []byte) error {
	update := bson.M{
		"$set": bson.M{
			"state":      state,
			"updated_at": time.Now(),
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateByID(ctx, sessionID, update, opts)
	return err
}

// Delete removes the slot for a session. Deleting a missing slot is not an
// error.
func (r *CartsRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": sessionID})
	return err
}
