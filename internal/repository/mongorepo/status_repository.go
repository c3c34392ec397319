package mongorepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"gdg-registration/internal/models"
	"gdg-registration/internal/repository"
)

const statusID = "registration"

type statusDoc struct {
	IsOpen    bool      `bson:"isOpen"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type StatusRepository struct {
	col *mongo.Collection
}

func NewStatusRepository(db *mongo.Database) *StatusRepository {
	return &StatusRepository{col: db.Collection(StatusCollection)}
}

// Get returns the singleton, inserting it open when it does not exist yet.
func (r *StatusRepository) Get(ctx context.Context) (models.RegistrationStatus, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	update := bson.M{"$setOnInsert": bson.M{"isOpen": true, "updatedAt": now}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc statusDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": statusID}, update, opts).Decode(&doc); err != nil {
		return models.RegistrationStatus{}, classifyError("get registration status", err)
	}
	return models.RegistrationStatus{IsOpen: doc.IsOpen, UpdatedAt: doc.UpdatedAt.UTC()}, nil
}

// Toggle inverts isOpen server-side. A missing document counts as open, so
// the first toggle inserts it closed.
func (r *StatusRepository) Toggle(ctx context.Context) (models.RegistrationStatus, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "isOpen", Value: bson.D{{Key: "$not", Value: bson.A{
				bson.D{{Key: "$ifNull", Value: bson.A{"$isOpen", true}}},
			}}}},
			{Key: "updatedAt", Value: now},
		}}},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc statusDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": statusID}, update, opts).Decode(&doc); err != nil {
		return models.RegistrationStatus{}, classifyError("toggle registration status", err)
	}
	return models.RegistrationStatus{IsOpen: doc.IsOpen, UpdatedAt: doc.UpdatedAt.UTC()}, nil
}

var _ repository.StatusStore = (*StatusRepository)(nil)
