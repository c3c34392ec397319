// Package sqliterepo is the SQLite store driver. UNIQUE constraints on
// registrations.email and registrations.enrollment arbitrate duplicates.
package sqliterepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"gdg-registration/internal/models"
	"gdg-registration/internal/repository"
	"gdg-registration/internal/repository/sqliterepo/migrations"
)

// Store persists all records in one SQLite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func toMillis(t time.Time) int64 { return t.UTC().UnixMilli() }

func fromMillis(v int64) time.Time { return time.UnixMilli(v).UTC() }

// Open opens the database at path and applies the embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db, now: func() time.Time { return time.Now().UTC() }}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Stores() repository.Stores {
	return repository.Stores{
		Registrations: registrationStore{s},
		Events:        eventStore{s},
		Status:        statusStore{s},
		Close:         func(context.Context) error { return s.Close() },
	}
}

// uniqueViolationField reports whether err is a UNIQUE constraint failure
// and which registrations column collided.
func uniqueViolationField(err error) (string, bool) {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return "", false
	}
	msg := err.Error()
	switch sqliteErr.Code() {
	case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
	case sqlite3lib.SQLITE_CONSTRAINT:
		// primary code only, when extended result codes are off
		if !strings.Contains(msg, "UNIQUE constraint failed") {
			return "", false
		}
	default:
		return "", false
	}
	switch {
	case strings.Contains(msg, "registrations.email"):
		return repository.FieldEmail, true
	case strings.Contains(msg, "registrations.enrollment"):
		return repository.FieldEnrollment, true
	}
	return "", true
}

type registrationStore struct{ s *Store }

const registrationColumns = `id, name, gender, email, phone, enrollment, college, other_college,
    year, branch, experience, interests, expectations, event_name, registered_at`

func (r registrationStore) Insert(ctx context.Context, reg *models.Registration) error {
	interests := reg.Interests
	if interests == nil {
		interests = []string{}
	}
	encoded, err := json.Marshal(interests)
	if err != nil {
		return fmt.Errorf("encode interests: %w", err)
	}

	id := bson.NewObjectID().Hex()
	registeredAt := r.s.now().Truncate(time.Millisecond)

	_, err = r.s.db.ExecContext(ctx,
		`INSERT INTO registrations (`+registrationColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, reg.Name, string(reg.Gender), reg.Email, reg.Phone, reg.Enrollment, reg.College, reg.OtherCollege,
		string(reg.Year), string(reg.Branch), string(reg.Experience), string(encoded), reg.Expectations,
		reg.EventName, toMillis(registeredAt),
	)
	if err != nil {
		if field, ok := uniqueViolationField(err); ok {
			return &repository.DuplicateKeyError{Field: field, Err: err}
		}
		return fmt.Errorf("insert registration: %w", err)
	}
	reg.ID = id
	reg.RegisteredAt = registeredAt
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRegistration(row rowScanner) (models.Registration, error) {
	var (
		reg                             models.Registration
		gender, year, branch, exp, ints string
		registeredAt                    int64
	)
	if err := row.Scan(&reg.ID, &reg.Name, &gender, &reg.Email, &reg.Phone, &reg.Enrollment, &reg.College,
		&reg.OtherCollege, &year, &branch, &exp, &ints, &reg.Expectations, &reg.EventName, &registeredAt); err != nil {
		return models.Registration{}, err
	}
	reg.Gender = models.Gender(gender)
	reg.Year = models.Year(year)
	reg.Branch = models.Branch(branch)
	reg.Experience = models.Experience(exp)
	reg.RegisteredAt = fromMillis(registeredAt)
	reg.Interests = []string{}
	if err := json.Unmarshal([]byte(ints), &reg.Interests); err != nil {
		return models.Registration{}, fmt.Errorf("decode interests: %w", err)
	}
	return reg, nil
}

func (r registrationStore) FindByEnrollment(ctx context.Context, enrollment string) (*models.Registration, error) {
	row := r.s.db.QueryRowContext(ctx,
		`SELECT `+registrationColumns+` FROM registrations WHERE enrollment = ?`, enrollment)
	reg, err := scanRegistration(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find registration: %w", err)
	}
	return &reg, nil
}

func (r registrationStore) List(ctx context.Context) ([]models.Registration, error) {
	rows, err := r.s.db.QueryContext(ctx,
		`SELECT `+registrationColumns+` FROM registrations ORDER BY registered_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	out := []models.Registration{}
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		out = append(out, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return out, nil
}

func (r registrationStore) Delete(ctx context.Context, id string) error {
	res, err := r.s.db.ExecContext(ctx, `DELETE FROM registrations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r registrationStore) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.s.db.ExecContext(ctx, `DELETE FROM registrations`)
	if err != nil {
		return 0, fmt.Errorf("clear registrations: %w", err)
	}
	return res.RowsAffected()
}

type eventStore struct{ s *Store }

func (e eventStore) Current(ctx context.Context) (*models.Event, error) {
	var (
		ev                   models.Event
		createdAt, updatedAt int64
	)
	err := e.s.db.QueryRowContext(ctx,
		`SELECT id, title, description, date, location, created_at, updated_at
		 FROM events ORDER BY updated_at DESC LIMIT 1`,
	).Scan(&ev.ID, &ev.Title, &ev.Description, &ev.Date, &ev.Location, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find current event: %w", err)
	}
	ev.CreatedAt = fromMillis(createdAt)
	ev.UpdatedAt = fromMillis(updatedAt)
	return &ev, nil
}

// Replace deletes and inserts inside one transaction.
func (e eventStore) Replace(ctx context.Context, ev models.Event) (*models.Event, error) {
	now := e.s.now().Truncate(time.Millisecond)
	ev.ID = bson.NewObjectID().Hex()
	ev.CreatedAt = now
	ev.UpdatedAt = now

	tx, err := e.s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin replace event: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM events`); err != nil {
		return nil, fmt.Errorf("delete events: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO events (id, title, description, date, location, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.Title, ev.Description, ev.Date, ev.Location, toMillis(now), toMillis(now),
	); err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit replace event: %w", err)
	}
	return &ev, nil
}

func (e eventStore) DeleteAll(ctx context.Context) (int64, error) {
	res, err := e.s.db.ExecContext(ctx, `DELETE FROM events`)
	if err != nil {
		return 0, fmt.Errorf("delete events: %w", err)
	}
	return res.RowsAffected()
}

type statusStore struct{ s *Store }

func (st statusStore) Get(ctx context.Context) (models.RegistrationStatus, error) {
	now := toMillis(st.s.now())
	if _, err := st.s.db.ExecContext(ctx,
		`INSERT INTO registration_status (id, is_open, updated_at) VALUES (1, 1, ?)
		 ON CONFLICT(id) DO NOTHING`, now,
	); err != nil {
		return models.RegistrationStatus{}, fmt.Errorf("init registration status: %w", err)
	}

	var (
		isOpen    bool
		updatedAt int64
	)
	if err := st.s.db.QueryRowContext(ctx,
		`SELECT is_open, updated_at FROM registration_status WHERE id = 1`,
	).Scan(&isOpen, &updatedAt); err != nil {
		return models.RegistrationStatus{}, fmt.Errorf("get registration status: %w", err)
	}
	return models.RegistrationStatus{IsOpen: isOpen, UpdatedAt: fromMillis(updatedAt)}, nil
}

// Toggle inserts the row closed when missing, otherwise flips it.
func (st statusStore) Toggle(ctx context.Context) (models.RegistrationStatus, error) {
	var (
		isOpen    bool
		updatedAt int64
	)
	err := st.s.db.QueryRowContext(ctx,
		`INSERT INTO registration_status (id, is_open, updated_at) VALUES (1, 0, ?)
		 ON CONFLICT(id) DO UPDATE SET is_open = 1 - registration_status.is_open, updated_at = excluded.updated_at
		 RETURNING is_open, updated_at`, toMillis(st.s.now()),
	).Scan(&isOpen, &updatedAt)
	if err != nil {
		return models.RegistrationStatus{}, fmt.Errorf("toggle registration status: %w", err)
	}
	return models.RegistrationStatus{IsOpen: isOpen, UpdatedAt: fromMillis(updatedAt)}, nil
}

var (
	_ repository.RegistrationStore = registrationStore{}
	_ repository.EventStore        = eventStore{}
	_ repository.StatusStore       = statusStore{}
)
