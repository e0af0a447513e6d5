package database

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// Connect dials MongoDB using DATABASE_URL and DATABASE_NAME and returns a
// Store backed by that database. The connection is verified with a ping so a
// dead server is reported at startup instead of on the first request.
func Connect(ctx context.Context) (Store, error) {
	uri := os.Getenv("DATABASE_URL")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	name := os.Getenv("DATABASE_NAME")
	if name == "" {
		name = "gymmats"
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	return &mongoStore{db: client.Database(name)}, nil
}
