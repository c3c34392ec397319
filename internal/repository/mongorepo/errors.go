package mongorepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"gdg-registration/internal/repository"
)

// classifyError turns driver errors into repository errors. Duplicate key
// violations (code 11000) become *repository.DuplicateKeyError naming the
// collided field, connectivity failures wrap repository.ErrUnavailable.
func classifyError(op string, err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return &repository.DuplicateKeyError{Field: duplicateField(err), Err: err}
	}
	if isUnavailable(err) {
		return fmt.Errorf("%s: %w: %v", op, repository.ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isUnavailable(err error) bool {
	return errors.Is(err, mongo.ErrClientDisconnected) ||
		errors.Is(err, context.DeadlineExceeded) ||
		mongo.IsTimeout(err) ||
		mongo.IsNetworkError(err)
}

func duplicateField(err error) string {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if f := fieldFromIndexMessage(e.Message); f != "" {
				return f
			}
		}
	}
	return fieldFromIndexMessage(err.Error())
}

// fieldFromIndexMessage reads the index name out of a server message such as
// "E11000 duplicate key error collection: db.registrations index: uniq_email dup key: {...}".
// Default index names ("email_1") match as well.
func fieldFromIndexMessage(msg string) string {
	i := strings.Index(msg, "index: ")
	if i < 0 {
		return ""
	}
	name := msg[i+len("index: "):]
	if j := strings.IndexByte(name, ' '); j >= 0 {
		name = name[:j]
	}
	switch {
	case strings.Contains(name, repository.FieldEmail):
		return repository.FieldEmail
	case strings.Contains(name, repository.FieldEnrollment):
		return repository.FieldEnrollment
	}
	return ""
}
