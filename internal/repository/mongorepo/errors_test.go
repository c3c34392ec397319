package mongorepo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"gdg-registration/internal/repository"
)

func dupWriteException(msg string) error {
	return mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000, Message: msg}},
	}
}

func TestClassifyErrorDuplicateField(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want string
	}{
		{
			name: "email index",
			msg:  `E11000 duplicate key error collection: gdg.registrations index: uniq_email dup key: { email: "a@x.com" }`,
			want: repository.FieldEmail,
		},
		{
			name: "enrollment index",
			msg:  `E11000 duplicate key error collection: gdg.registrations index: uniq_enrollment dup key: { enrollment: "CS2024001" }`,
			want: repository.FieldEnrollment,
		},
		{
			name: "default index name",
			msg:  `E11000 duplicate key error collection: gdg.registrations index: email_1 dup key: { email: "a@x.com" }`,
			want: repository.FieldEmail,
		},
		{
			name: "unknown index",
			msg:  `E11000 duplicate key error collection: gdg.registrations index: _id_ dup key: { _id: 1 }`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyError("insert registration", dupWriteException(tt.msg))

			field, ok := repository.DuplicateField(err)
			require.True(t, ok, "expected duplicate key error, got %v", err)
			assert.Equal(t, tt.want, field)
		})
	}
}

func TestClassifyErrorPassesThroughOtherErrors(t *testing.T) {
	assert.NoError(t, classifyError("op", nil))

	base := errors.New("boom")
	err := classifyError("op", base)
	assert.ErrorIs(t, err, base)
	_, ok := repository.DuplicateField(err)
	assert.False(t, ok)
}

func TestClassifyErrorUnavailable(t *testing.T) {
	err := classifyError("list registrations", mongo.ErrClientDisconnected)
	assert.ErrorIs(t, err, repository.ErrUnavailable)
}

func TestEventDocModelAcceptsLegacyObjectID(t *testing.T) {
	oid := bson.NewObjectID()
	assert.Equal(t, oid.Hex(), eventDoc{ID: oid}.model().ID)
	assert.Equal(t, currentEventID, eventDoc{ID: currentEventID}.model().ID)
}
