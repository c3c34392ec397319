// Package mongorepo stores registrations, the current event and the
// registration status in MongoDB. Collections are plural lower-case and
// fields camelCase, so data written by earlier deployments stays readable.
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

const (
	RegistrationCollection = "registrations"
	EventCollection        = "events"
	StatusCollection       = "registrationstatuses"
)

// New binds the three stores to db.
func New(db *mongo.Database) repository.Stores {
	return repository.Stores{
		Registrations: NewRegistrationRepository(db),
		Events:        NewEventRepository(db),
		Status:        NewStatusRepository(db),
		Close: func(ctx context.Context) error {
			return db.Client().Disconnect(ctx)
		},
	}
}

type registrationDoc struct {
	ID           bson.ObjectID     `bson:"_id,omitempty"`
	Name         string            `bson:"name"`
	Gender       models.Gender     `bson:"gender"`
	Email        string            `bson:"email"`
	Phone        string            `bson:"phone"`
	Enrollment   string            `bson:"enrollment"`
	College      string            `bson:"college"`
	OtherCollege string            `bson:"otherCollege,omitempty"`
	Year         models.Year       `bson:"year"`
	Branch       models.Branch     `bson:"branch"`
	Experience   models.Experience `bson:"experience"`
	Interests    []string          `bson:"interests"`
	Expectations string            `bson:"expectations"`
	EventName    string            `bson:"eventName"`
	RegisteredAt time.Time         `bson:"registeredAt"`
}

func toRegistrationDoc(r *models.Registration) registrationDoc {
	interests := r.Interests
	if interests == nil {
		interests = []string{}
	}
	return registrationDoc{
		Name:         r.Name,
		Gender:       r.Gender,
		Email:        r.Email,
		Phone:        r.Phone,
		Enrollment:   r.Enrollment,
		College:      r.College,
		OtherCollege: r.OtherCollege,
		Year:         r.Year,
		Branch:       r.Branch,
		Experience:   r.Experience,
		Interests:    interests,
		Expectations: r.Expectations,
		EventName:    r.EventName,
	}
}

func (d registrationDoc) model() models.Registration {
	interests := d.Interests
	if interests == nil {
		interests = []string{}
	}
	return models.Registration{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Gender:       d.Gender,
		Email:        d.Email,
		Phone:        d.Phone,
		Enrollment:   d.Enrollment,
		College:      d.College,
		OtherCollege: d.OtherCollege,
		Year:         d.Year,
		Branch:       d.Branch,
		Experience:   d.Experience,
		Interests:    interests,
		Expectations: d.Expectations,
		EventName:    d.EventName,
		RegisteredAt: d.RegisteredAt.UTC(),
	}
}

type RegistrationRepository struct {
	col *mongo.Collection
}

func NewRegistrationRepository(db *mongo.Database) *RegistrationRepository {
	return &RegistrationRepository{col: db.Collection(RegistrationCollection)}
}

// Insert relies on the unique indexes created by bootstrap for the final
// duplicate decision.
func (r *RegistrationRepository) Insert(ctx context.Context, reg *models.Registration) error {
	doc := toRegistrationDoc(reg)
	doc.ID = bson.NewObjectID()
	doc.RegisteredAt = time.Now().UTC().Truncate(time.Millisecond)

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return classifyError("insert registration", err)
	}
	reg.ID = doc.ID.Hex()
	reg.RegisteredAt = doc.RegisteredAt
	return nil
}

func (r *RegistrationRepository) FindByEnrollment(ctx context.Context, enrollment string) (*models.Registration, error) {
	var doc registrationDoc
	err := r.col.FindOne(ctx, bson.M{"enrollment": enrollment}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, classifyError("find registration", err)
	}
	reg := doc.model()
	return &reg, nil
}

func (r *RegistrationRepository) List(ctx context.Context) ([]models.Registration, error) {
	opts := options.Find().SetSort(bson.D{{Key: "registeredAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, classifyError("list registrations", err)
	}
	defer cursor.Close(ctx)

	var docs []registrationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, classifyError("decode registrations", err)
	}

	out := make([]models.Registration, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.model())
	}
	return out, nil
}

func (r *RegistrationRepository) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return classifyError("delete registration", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *RegistrationRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, classifyError("clear registrations", err)
	}
	return res.DeletedCount, nil
}

var _ repository.RegistrationStore = (*RegistrationRepository)(nil)
