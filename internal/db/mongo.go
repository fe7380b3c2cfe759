// Package db owns the process-wide MongoDB handle. The connection is
// established lazily on first use and shared by every request afterwards;
// the driver manages its own socket pool and reconnects.
package db

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// Mongo is a lazily-connected handle to one MongoDB database. Safe for
// concurrent use; at most one Connect happens even when requests race
// during cold start.
type Mongo struct {
	uri    string
	dbName string

	once   sync.Once
	client *mongo.Client
	err    error
}

func New(uri, dbName string) *Mongo {
	return &Mongo{uri: uri, dbName: dbName}
}

func (m *Mongo) connect() {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.uri))
	if err != nil {
		m.err = fmt.Errorf("db: connect %s: %w", m.dbName, err)
		return
	}
	m.client = client
}

// Collection returns the named collection, connecting on first use.
func (m *Mongo) Collection(name string) (*mongo.Collection, error) {
	m.once.Do(m.connect)
	if m.err != nil {
		return nil, m.err
	}
	return m.client.Database(m.dbName).Collection(name), nil
}

// Ping verifies the server is reachable, connecting on first use.
func (m *Mongo) Ping(ctx context.Context) error {
	m.once.Do(m.connect)
	if m.err != nil {
		return m.err
	}
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client if a connection was ever established.
func (m *Mongo) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}
