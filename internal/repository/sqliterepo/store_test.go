package sqliterepo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdg-registration/internal/models"
	"gdg-registration/internal/repository"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "registrations.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleRegistration(email, enrollment string) *models.Registration {
	return &models.Registration{
		Name:       "Asha Rao",
		Gender:     models.GenderFemale,
		Email:      email,
		Phone:      "9876543210",
		Enrollment: enrollment,
		College:    "ABC Institute",
		Year:       models.YearSecond,
		Branch:     models.BranchCSE,
		Experience: models.ExperienceBeginner,
		Interests:  []string{"AI", "Web"},
		EventName:  "DevFest",
	}
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), "")
	assert.Error(t, err)
}

func TestOpenIsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "registrations.db")
	first, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestRegistrationInsertAndFind(t *testing.T) {
	t.Parallel()

	regs := openTempStore(t).Stores().Registrations
	ctx := context.Background()

	reg := sampleRegistration("asha@x.com", "CS2024001")
	require.NoError(t, regs.Insert(ctx, reg))
	assert.NotEmpty(t, reg.ID)
	assert.False(t, reg.RegisteredAt.IsZero())

	got, err := regs.FindByEnrollment(ctx, "CS2024001")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, got.ID)
	assert.Equal(t, []string{"AI", "Web"}, got.Interests)
	assert.Equal(t, models.GenderFemale, got.Gender)
	assert.Equal(t, "DevFest", got.EventName)

	_, err = regs.FindByEnrollment(ctx, "NOPE0000")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRegistrationInsertReportsCollidedField(t *testing.T) {
	t.Parallel()

	regs := openTempStore(t).Stores().Registrations
	ctx := context.Background()
	require.NoError(t, regs.Insert(ctx, sampleRegistration("asha@x.com", "CS2024001")))

	err := regs.Insert(ctx, sampleRegistration("asha@x.com", "CS2024002"))
	field, ok := repository.DuplicateField(err)
	require.True(t, ok, "expected duplicate key error, got %v", err)
	assert.Equal(t, repository.FieldEmail, field)

	err = regs.Insert(ctx, sampleRegistration("other@x.com", "CS2024001"))
	field, ok = repository.DuplicateField(err)
	require.True(t, ok, "expected duplicate key error, got %v", err)
	assert.Equal(t, repository.FieldEnrollment, field)

	list, err := regs.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRegistrationListNewestFirstAndDelete(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	base := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	tick := 0
	store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	regs := store.Stores().Registrations
	ctx := context.Background()

	first := sampleRegistration("a@x.com", "ENROLL001")
	second := sampleRegistration("b@x.com", "ENROLL002")
	require.NoError(t, regs.Insert(ctx, first))
	require.NoError(t, regs.Insert(ctx, second))

	list, err := regs.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	require.NoError(t, regs.Delete(ctx, first.ID))
	assert.ErrorIs(t, regs.Delete(ctx, first.ID), repository.ErrNotFound)

	n, err := regs.DeleteAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	list, err = regs.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEventReplaceKeepsSingleRecord(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	events := store.Stores().Events
	ctx := context.Background()

	_, err := events.Current(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = events.Replace(ctx, models.Event{Title: "Old", Description: "d", Date: "Jan", Location: "Hall"})
	require.NoError(t, err)
	saved, err := events.Replace(ctx, models.Event{Title: "DevFest", Description: "Talks", Date: "Dec 7", Location: "Auditorium"})
	require.NoError(t, err)

	current, err := events.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, current.ID)
	assert.Equal(t, "DevFest", current.Title)
	assert.Equal(t, "Auditorium", current.Location)

	var count int
	require.NoError(t, store.db.QueryRow(`SELECT COUNT(1) FROM events`).Scan(&count))
	assert.Equal(t, 1, count)

	n, err := events.DeleteAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	n, err = events.DeleteAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestStatusLazyOpenAndToggle(t *testing.T) {
	t.Parallel()

	status := openTempStore(t).Stores().Status
	ctx := context.Background()

	got, err := status.Get(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsOpen)

	toggled, err := status.Toggle(ctx)
	require.NoError(t, err)
	assert.False(t, toggled.IsOpen)

	toggled, err = status.Toggle(ctx)
	require.NoError(t, err)
	assert.True(t, toggled.IsOpen)
}

func TestStatusToggleWithoutRecordPersistsClosed(t *testing.T) {
	t.Parallel()

	status := openTempStore(t).Stores().Status
	ctx := context.Background()

	toggled, err := status.Toggle(ctx)
	require.NoError(t, err)
	assert.False(t, toggled.IsOpen)

	got, err := status.Get(ctx)
	require.NoError(t, err)
	assert.False(t, got.IsOpen)
}
