package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-saas/internal/config"
)

// Document is one stored record as the store returns it, internal id
// included. The API layer renames IDField to the public "id".
type Document = bson.M

// IDField is the store's internal identifier field.
const IDField = "_id"

// DocumentStore is the persistence contract used by every handler: append
// one document, or read documents matching a filter. There are no updates,
// deletes, joins or transactions.
type DocumentStore interface {
	InsertOne(ctx context.Context, collection string, record any) (string, error)
	FindMany(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error)
}

// Mongo is the MongoDB-backed DocumentStore. One instance is constructed at
// startup and shared by all requests; the driver's client is safe for
// concurrent use.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
	log    *zap.Logger
}

var _ DocumentStore = (*Mongo)(nil)

// Connect opens the single process-wide store connection. Missing or broken
// configuration is not fatal: the returned store reports ErrStoreUnavailable
// on every call and the diagnostics endpoint explains why.
func Connect(ctx context.Context, cfg *config.Config, log *zap.Logger) *Mongo {
	m := &Mongo{log: log}

	if !cfg.HasStore() {
		log.Warn("store not configured, persistence disabled",
			zap.Bool("database_url_set", cfg.DatabaseURL != ""),
			zap.Bool("database_name_set", cfg.DatabaseName != ""),
		)
		return m
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		log.Warn("store connection failed, persistence disabled", zap.Error(err))
		return m
	}

	m.client = client
	m.db = client.Database(cfg.DatabaseName)
	log.Info("store connected", zap.String("database", cfg.DatabaseName))
	return m
}

func (s *Mongo) InsertOne(ctx context.Context, collection string, record any) (string, error) {
	if s.db == nil {
		return "", ErrStoreUnavailable
	}

	res, err := s.db.Collection(collection).InsertOne(ctx, record)
	if err != nil {
		return "", &WriteError{Collection: collection, Err: err}
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (s *Mongo) FindMany(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}

	cur, err := s.db.Collection(collection).Find(
		ctx,
		filter.toBSON(),
		options.Find().SetLimit(limit),
	)
	if err != nil {
		return nil, &ReadError{Collection: collection, Err: err}
	}

	docs := make([]Document, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, &ReadError{Collection: collection, Err: err}
	}
	return docs, nil
}

// Ready reports whether a connection was established at startup.
func (s *Mongo) Ready() bool {
	return s.db != nil
}

// CollectionNames lists the database's collections, for diagnostics only.
func (s *Mongo) CollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}
	return s.db.ListCollectionNames(ctx, bson.D{})
}

func (s *Mongo) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
