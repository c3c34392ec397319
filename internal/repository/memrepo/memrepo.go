// Package memrepo keeps every record in process memory. It backs the
// "memory" store driver for local runs and the service tests.
package memrepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"gdg-registration/internal/models"
	"gdg-registration/internal/repository"
)

// Store implements the three repository interfaces over guarded maps.
type Store struct {
	mu sync.Mutex

	registrations map[string]models.Registration
	event         *models.Event
	status        *models.RegistrationStatus

	now func() time.Time
}

func New() *Store {
	return &Store{
		registrations: make(map[string]models.Registration),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Stores exposes the store through the driver-neutral bundle.
func (s *Store) Stores() repository.Stores {
	return repository.Stores{Registrations: s.Registrations(), Events: s.Events(), Status: s.Status()}
}

func (s *Store) Registrations() repository.RegistrationStore { return registrationStore{s} }
func (s *Store) Events() repository.EventStore               { return eventStore{s} }
func (s *Store) Status() repository.StatusStore              { return statusStore{s} }

// SetClock overrides the time source.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

type registrationStore struct{ s *Store }

func (r registrationStore) Insert(ctx context.Context, reg *models.Registration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.registrations {
		if existing.Email == reg.Email {
			return &repository.DuplicateKeyError{Field: repository.FieldEmail}
		}
		if existing.Enrollment == reg.Enrollment {
			return &repository.DuplicateKeyError{Field: repository.FieldEnrollment}
		}
	}

	reg.ID = bson.NewObjectID().Hex()
	reg.RegisteredAt = r.s.now()
	stored := *reg
	stored.Interests = cloneInterests(reg.Interests)
	r.s.registrations[reg.ID] = stored
	return nil
}

// cloneInterests never returns nil, so an empty list encodes as [].
func cloneInterests(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func (r registrationStore) FindByEnrollment(ctx context.Context, enrollment string) (*models.Registration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, reg := range r.s.registrations {
		if reg.Enrollment == enrollment {
			out := reg
			out.Interests = cloneInterests(reg.Interests)
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r registrationStore) List(ctx context.Context) ([]models.Registration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]models.Registration, 0, len(r.s.registrations))
	for _, reg := range r.s.registrations {
		reg.Interests = cloneInterests(reg.Interests)
		out = append(out, reg)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].RegisteredAt.Equal(out[j].RegisteredAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].RegisteredAt.After(out[j].RegisteredAt)
	})
	return out, nil
}

func (r registrationStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.registrations[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.registrations, id)
	return nil
}

func (r registrationStore) DeleteAll(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n := int64(len(r.s.registrations))
	r.s.registrations = make(map[string]models.Registration)
	return n, nil
}

type eventStore struct{ s *Store }

func (e eventStore) Current(ctx context.Context) (*models.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	if e.s.event == nil {
		return nil, repository.ErrNotFound
	}
	out := *e.s.event
	return &out, nil
}

func (e eventStore) Replace(ctx context.Context, ev models.Event) (*models.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	now := e.s.now()
	ev.ID = bson.NewObjectID().Hex()
	ev.CreatedAt = now
	ev.UpdatedAt = now
	e.s.event = &ev
	out := ev
	return &out, nil
}

func (e eventStore) DeleteAll(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	if e.s.event == nil {
		return 0, nil
	}
	e.s.event = nil
	return 1, nil
}

type statusStore struct{ s *Store }

func (st statusStore) Get(ctx context.Context) (models.RegistrationStatus, error) {
	if err := ctx.Err(); err != nil {
		return models.RegistrationStatus{}, err
	}
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	if st.s.status == nil {
		st.s.status = &models.RegistrationStatus{IsOpen: true, UpdatedAt: st.s.now()}
	}
	return *st.s.status, nil
}

func (st statusStore) Toggle(ctx context.Context) (models.RegistrationStatus, error) {
	if err := ctx.Err(); err != nil {
		return models.RegistrationStatus{}, err
	}
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	current := models.RegistrationStatus{IsOpen: true}
	if st.s.status != nil {
		current = *st.s.status
	}
	next := models.RegistrationStatus{IsOpen: !current.IsOpen, UpdatedAt: st.s.now()}
	st.s.status = &next
	return next, nil
}

var (
	_ repository.RegistrationStore = registrationStore{}
	_ repository.EventStore        = eventStore{}
	_ repository.StatusStore       = statusStore{}
)
