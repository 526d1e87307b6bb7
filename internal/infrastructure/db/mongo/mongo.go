package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/forkful/recipebook/internal/infrastructure/config"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultDatabase = "recipebook"
)

// databaseName resolves the database the repositories operate on. An unset
// MONGO_DB falls back to the service's own database rather than failing.
func databaseName(cfg config.MongoConfig) string {
	if cfg.Database == "" {
		return defaultDatabase
	}
	return cfg.Database
}

// Connect dials the recipe store, verifies it with a ping, and hands back
// the client plus the selected database. The caller owns Disconnect.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(databaseName(cfg)), nil
}
