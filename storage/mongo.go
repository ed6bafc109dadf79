package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "generations"

// MongoJournalStorage keeps the generation journal in MongoDB.
type MongoJournalStorage struct {
	client     *mongo.Client
	collection *mongo.Collection
	log        *slog.Logger
}

func NewMongoJournalStorage(uri, database string, log *slog.Logger) (*MongoJournalStorage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging MongoDB: %w", err)
	}

	collection := client.Database(database).Collection(collectionName)

	_, err = collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		log.Warn("creating index", slog.String("error", err.Error()))
	}

	return &MongoJournalStorage{
		client:     client,
		collection: collection,
		log:        log,
	}, nil
}

func (m *MongoJournalStorage) AddGeneration(gen Generation) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if gen.CreatedAt.IsZero() {
		gen.CreatedAt = time.Now()
	}
	_, err := m.collection.InsertOne(ctx, gen)
	if err != nil {
		return fmt.Errorf("inserting generation: %w", err)
	}
	return nil
}

func (m *MongoJournalStorage) GetRecentGenerations(userId int64, limit int) ([]Generation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := m.collection.Find(ctx, bson.M{"user_id": userId}, opts)
	if err != nil {
		return nil, fmt.Errorf("finding generations: %w", err)
	}
	defer func(cursor *mongo.Cursor, ctx context.Context) {
		err := cursor.Close(ctx)
		if err != nil {
			m.log.Warn("closing cursor", slog.String("error", err.Error()))
		}
	}(cursor, ctx)

	var generations []Generation
	if err := cursor.All(ctx, &generations); err != nil {
		return nil, fmt.Errorf("decoding generations: %w", err)
	}
	return generations, nil
}

func (m *MongoJournalStorage) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}
