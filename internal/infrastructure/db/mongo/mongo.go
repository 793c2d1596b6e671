// Package mongo backs the CRM's users, leads and property portfolio with
// MongoDB document repositories.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// appName shows up in the server's currentOp / connection logs, so operators
// can tell CRM connections apart from other clients on a shared cluster.
const appName = "crm-api"

// defaultTimeout bounds the initial dial as well as every repository
// operation in this package.
const defaultTimeout = 10 * time.Second

// Config carries the MongoDB connection settings read from the environment.
type Config struct {
	URI      string
	Database string
	// ConnectTimeout bounds the initial dial and ping. Zero means the
	// package default.
	ConnectTimeout time.Duration
}

// Connect dials MongoDB, confirms the deployment answers a ping, and returns
// the client together with the CRM database handle. The caller owns the
// client and must Disconnect it on shutdown.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
