package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quillacademy/api/internal/config"
	"github.com/quillacademy/api/internal/pkg/apperrors"
	"github.com/quillacademy/api/internal/pkg/logger"
)

// MongoDB database connection structure
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoDB connects to the document store and verifies the connection.
func NewMongoDB(cfg *config.Config) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout())
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Database.URI))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to connect: %v", apperrors.ErrStoreUnavailable, err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: failed to ping: %v", apperrors.ErrStoreUnavailable, err)
	}

	return &MongoDB{
		Client:   client,
		Database: client.Database(cfg.Database.Name),
	}, nil
}

// EnsureIndexes creates the unique indexes the duplicate guards rely on.
// The duplicate-key error from these indexes is the authoritative signal for
// "already exists"; handlers never race a separate existence check.
func (db *MongoDB) EnsureIndexes(ctx context.Context) error {
	users := db.Database.Collection("users")
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users email index: %w", err)
	}

	submissions := db.Database.Collection("submissions")
	_, err = submissions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "student_email", Value: 1},
			{Key: "assignmentId", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create submissions index: %w", err)
	}

	return nil
}

// Close disconnects the client.
func (db *MongoDB) Close(ctx context.Context) {
	if db.Client == nil {
		return
	}
	if err := db.Client.Disconnect(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to disconnect mongodb client")
	}
}
