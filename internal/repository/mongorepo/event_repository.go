package mongorepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"gdg-registration/internal/models"
	"gdg-registration/internal/repository"
)

// currentEventID is the fixed _id of the event slot. Documents written by
// older deployments carry ObjectIDs and are removed on the next save.
const currentEventID = "current"

type eventDoc struct {
	ID          any       `bson:"_id,omitempty"`
	Title       string    `bson:"title"`
	Description string    `bson:"description"`
	Date        string    `bson:"date"`
	Location    string    `bson:"location"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

func (d eventDoc) model() models.Event {
	var id string
	switch v := d.ID.(type) {
	case string:
		id = v
	case bson.ObjectID:
		id = v.Hex()
	}
	return models.Event{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Date:        d.Date,
		Location:    d.Location,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

type EventRepository struct {
	col *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{col: db.Collection(EventCollection)}
}

// Current returns the most recently updated event.
func (r *EventRepository) Current(ctx context.Context) (*models.Event, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	var doc eventDoc
	err := r.col.FindOne(ctx, bson.D{}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, classifyError("find current event", err)
	}
	ev := doc.model()
	return &ev, nil
}

// Replace overwrites the slot document in a single upsert, then drops any
// other event documents left by earlier versions.
func (r *EventRepository) Replace(ctx context.Context, ev models.Event) (*models.Event, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := eventDoc{
		ID:          currentEventID,
		Title:       ev.Title,
		Description: ev.Description,
		Date:        ev.Date,
		Location:    ev.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": currentEventID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, classifyError("replace event", err)
	}
	if _, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$ne": currentEventID}}); err != nil {
		return nil, classifyError("remove stale events", err)
	}

	out := doc.model()
	return &out, nil
}

func (r *EventRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, classifyError("delete events", err)
	}
	return res.DeletedCount, nil
}

var _ repository.EventStore = (*EventRepository)(nil)
