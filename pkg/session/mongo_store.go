package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const defaultSessionsCollection = "sessions"

type mongoSessionDoc struct {
	Token     string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	ExpiresAt time.Time `bson:"expires_at"`
}

// MongoStore is a durable Store implementation on MongoDB. Documents carry
// an expires_at field with a TTL index, so the server sweeps expired
// sessions eagerly; reads additionally filter on expires_at because the TTL
// monitor only runs every 60 seconds.
type MongoStore[Data any] struct {
	coll *mongo.Collection
}

// NewMongoStore creates a mongo-backed store using the "sessions" collection
// of the given database. Call EnsureIndexes once at startup.
func NewMongoStore[Data any](db *mongo.Database) *MongoStore[Data] {
	return &MongoStore[Data]{coll: db.Collection(defaultSessionsCollection)}
}

// EnsureIndexes creates the TTL index that lets MongoDB purge expired
// sessions server-side. Idempotent.
func (s *MongoStore[Data]) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// Get returns the payload stored under token, excluding expired documents
// the TTL monitor has not collected yet.
func (s *MongoStore[Data]) Get(ctx context.Context, token string) (Data, bool, error) {
	var zero Data

	filter := bson.M{"_id": token, "expires_at": bson.M{"$gt": time.Now()}}

	var doc mongoSessionDoc
	if err := s.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, false, nil
		}
		return zero, false, errors.Join(ErrStoreUnavailable, err)
	}

	var data Data
	if err := json.Unmarshal(doc.Data, &data); err != nil {
		return zero, false, errors.Join(ErrSerialization, err)
	}

	return data, true, nil
}

// Set upserts the document with expiry now + ttl.
func (s *MongoStore[Data]) Set(ctx context.Context, token string, data Data, ttl time.Duration) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return errors.Join(ErrSerialization, err)
	}

	doc := mongoSessionDoc{
		Token:     token,
		Data:      raw,
		ExpiresAt: time.Now().Add(ttl),
	}

	_, err = s.coll.ReplaceOne(ctx, bson.M{"_id": token}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// Touch pushes expires_at forward on a live document.
func (s *MongoStore[Data]) Touch(ctx context.Context, token string, ttl time.Duration) error {
	filter := bson.M{"_id": token, "expires_at": bson.M{"$gt": time.Now()}}
	update := bson.M{"$set": bson.M{"expires_at": time.Now().Add(ttl)}}

	if _, err := s.coll.UpdateOne(ctx, filter, update); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// Remove deletes the document. Idempotent.
func (s *MongoStore[Data]) Remove(ctx context.Context, token string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": token}); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// DeleteExpired purges expired documents ahead of the TTL monitor and
// returns how many were deleted.
func (s *MongoStore[Data]) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lte": time.Now()}})
	if err != nil {
		return 0, errors.Join(ErrStoreUnavailable, err)
	}
	return res.DeletedCount, nil
}
