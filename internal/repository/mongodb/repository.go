package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/flockbook/internal/domain/models"
	"github.com/mamadbah2/flockbook/internal/repository/snapshot"
)

const stateDocumentID = "farm_state"

// Repository stores the FarmState snapshot as a single upserted document.
type Repository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewRepository connects to MongoDB and verifies the connection.
func NewRepository(ctx context.Context, uri string, dbName string) (*Repository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Repository{
		client:   client,
		dbName:   dbName,
		collName: "snapshots",
	}, nil
}

type stateDocument struct {
	ID    string           `bson:"_id"`
	State models.FarmState `bson:"state"`
}

// Load fetches the persisted snapshot document.
func (r *Repository) Load(ctx context.Context) (*models.FarmState, error) {
	collection := r.client.Database(r.dbName).Collection(r.collName)

	var doc stateDocument
	err := collection.FindOne(ctx, bson.M{"_id": stateDocumentID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, snapshot.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load farm state: %w", err)
	}

	return &doc.State, nil
}

// Save upserts the snapshot document.
func (r *Repository) Save(ctx context.Context, state models.FarmState) error {
	collection := r.client.Database(r.dbName).Collection(r.collName)

	doc := stateDocument{ID: stateDocumentID, State: state}
	opts := options.Replace().SetUpsert(true)
	if _, err := collection.ReplaceOne(ctx, bson.M{"_id": stateDocumentID}, doc, opts); err != nil {
		return fmt.Errorf("failed to save farm state: %w", err)
	}

	return nil
}

// Close closes the MongoDB connection.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
