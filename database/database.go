package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"gdg-registration/bootstrap"
	"gdg-registration/config"
	"gdg-registration/internal/repository"
	"gdg-registration/internal/repository/memrepo"
	"gdg-registration/internal/repository/mongorepo"
	"gdg-registration/internal/repository/sqliterepo"
)

// ErrMissingURI is returned when the mongo driver is selected without MONGO_URI.
var ErrMissingURI = errors.New("MONGO_URI is not set")

const defaultIndexRetry = 15 * time.Second

// ConnectMongo connects and pings the primary within timeout.
func ConnectMongo(ctx context.Context, uri, dbName string, timeout time.Duration) (*mongo.Database, error) {
	db, err := newMongoDatabase(uri, dbName, timeout)
	if err != nil {
		return nil, err
	}
	if err := pingMongo(ctx, db, timeout); err != nil {
		_ = db.Client().Disconnect(context.Background())
		return nil, err
	}
	return db, nil
}

// newMongoDatabase builds the client without contacting the server. The
// driver dials lazily and keeps retrying in the background.
func newMongoDatabase(uri, dbName string, timeout time.Duration) (*mongo.Database, error) {
	if uri == "" {
		return nil, ErrMissingURI
	}
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	return client.Database(dbName), nil
}

func pingMongo(ctx context.Context, db *mongo.Database, timeout time.Duration) error {
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := db.Client().Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}
	return nil
}

// OpenStores opens the configured store driver.
//
// Without MONGO_URI the mongo driver falls back to stores that report
// repository.ErrUnavailable, so the server still starts. With a URI the
// client is kept even when the first ping fails: calls fail with
// repository.ErrUnavailable until the server is reachable again, and the
// indexes are created by a background loop that lives as long as ctx.
func OpenStores(ctx context.Context, cfg config.Config, log *slog.Logger) (repository.Stores, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		log.Warn("using in-memory store, data is lost on restart")
		return memrepo.New().Stores(), nil

	case config.StoreSQLite:
		store, err := sqliterepo.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return repository.Stores{}, err
		}
		log.Info("connected to SQLite", "path", cfg.SQLitePath)
		return store.Stores(), nil

	case config.StoreMongo:
		db, err := newMongoDatabase(cfg.MongoURI, cfg.MongoDB, cfg.MongoConnectTimeout)
		if errors.Is(err, ErrMissingURI) {
			log.Error("MONGO_URI is not set, requests needing the store will fail")
			return repository.Unavailable(), nil
		}
		if err != nil {
			return repository.Stores{}, err
		}
		if err := pingMongo(ctx, db, cfg.MongoConnectTimeout); err != nil {
			log.Error("MongoDB not reachable yet, requests will fail until it is", "error", err)
		} else {
			log.Info("connected to MongoDB", "db", cfg.MongoDB)
		}
		go ensureIndexes(ctx, db, cfg.MongoIndexRetry, log)
		return mongorepo.New(db), nil
	}
	return repository.Stores{}, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

// ensureIndexes retries index creation every interval until it succeeds or
// ctx is done.
func ensureIndexes(ctx context.Context, db *mongo.Database, interval time.Duration, log *slog.Logger) {
	if interval <= 0 {
		interval = defaultIndexRetry
	}
	for {
		err := bootstrap.EnsureRegistrationIndexes(ctx, db)
		if err == nil {
			log.Info("MongoDB indexes ready", "db", db.Name())
			return
		}
		log.Warn("ensure indexes failed, retrying", "error", err, "retry_in", interval)

		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
	}
}
