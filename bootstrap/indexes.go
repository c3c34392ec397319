package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"gdg-registration/internal/repository/mongorepo"
)

type collectionIndex struct {
	collection string
	model      mongo.IndexModel
}

var registrationIndexes = []collectionIndex{
	{
		collection: mongorepo.RegistrationCollection,
		model: mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
	},
	{
		collection: mongorepo.RegistrationCollection,
		model: mongo.IndexModel{
			Keys:    bson.D{{Key: "enrollment", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_enrollment"),
		},
	},
	{
		collection: mongorepo.RegistrationCollection,
		model: mongo.IndexModel{
			Keys:    bson.D{{Key: "registeredAt", Value: -1}},
			Options: options.Index().SetName("registeredAt_desc"),
		},
	},
	{
		collection: mongorepo.EventCollection,
		model: mongo.IndexModel{
			Keys:    bson.D{{Key: "updatedAt", Value: -1}},
			Options: options.Index().SetName("updatedAt_desc"),
		},
	},
}

// EnsureRegistrationIndexes creates the unique indexes that arbitrate
// duplicate submissions, plus the sort indexes for listing. Indexes are
// created one at a time so an existing equivalent index does not block
// the others.
func EnsureRegistrationIndexes(ctx context.Context, db *mongo.Database) error {
	for _, idx := range registrationIndexes {
		_, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model)
		if err != nil && !isIndexConflict(err) {
			return fmt.Errorf("create index on %s: %w", idx.collection, err)
		}
	}
	return nil
}

// isIndexConflict reports an equivalent index already present under another
// name (IndexOptionsConflict, IndexKeySpecsConflict). The existing index
// still enforces the constraint.
func isIndexConflict(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == 85 || cmdErr.Code == 86
	}
	return false
}
