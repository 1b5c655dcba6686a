// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"reentrybuddy/internal/models"
	"reentrybuddy/internal/storage"

	"github.com/google/uuid"
)

// Key layouts under the configured namespace. Names are lower-cased so the
// same person always maps to the same keys regardless of input capitalization.
// Distinct name pairs that normalize identically collide; that is the
// accepted identity model of this tool, not a bug.
const (
	userKeyPattern        = "%s_user_%s_%s"
	checkInsKeyPattern    = "%s_checkins_%s_%s"
	currentUserKeyPattern = "%s_current_user"
)

// RecordStore defines durable persistence operations for users and their
// check-in collections, keyed by normalized name.
type RecordStore interface {
	GetUser(ctx context.Context, firstName, lastName string) (*models.User, error)
	PutUser(ctx context.Context, user *models.User) error
	CreateUser(ctx context.Context, insert models.InsertUser) (*models.User, error)
	ClearUser(ctx context.Context, firstName, lastName string) error

	ListCheckIns(ctx context.Context, firstName, lastName string) ([]models.CheckIn, error)
	AppendCheckIn(ctx context.Context, firstName, lastName string, checkIn models.CheckIn) error

	CurrentSession(ctx context.Context) (*models.Session, error)
	SetCurrentSession(ctx context.Context, session models.Session) error
	ClearCurrentSession(ctx context.Context) error
}

type recordStore struct {
	kv        storage.KV
	namespace string
}

// NewRecordStore returns a RecordStore persisting into kv under namespace.
func NewRecordStore(kv storage.KV, namespace string) RecordStore {
	return &recordStore{kv: kv, namespace: namespace}
}

func (r *recordStore) userKey(firstName, lastName string) string {
	return fmt.Sprintf(userKeyPattern, r.namespace, strings.ToLower(firstName), strings.ToLower(lastName))
}

func (r *recordStore) checkInsKey(firstName, lastName string) string {
	return fmt.Sprintf(checkInsKeyPattern, r.namespace, strings.ToLower(firstName), strings.ToLower(lastName))
}

func (r *recordStore) currentUserKey() string {
	return fmt.Sprintf(currentUserKeyPattern, r.namespace)
}

// GetUser returns the user stored for the name pair, or nil when absent.
func (r *recordStore) GetUser(ctx context.Context, firstName, lastName string) (*models.User, error) {
	raw, err := r.kv.Get(ctx, r.userKey(firstName, lastName))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, models.NewStorageError("read", err)
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, models.NewStorageError("decode", err)
	}
	return &user, nil
}

func (r *recordStore) PutUser(ctx context.Context, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return models.NewStorageError("encode", err)
	}
	if err := r.kv.Set(ctx, r.userKey(user.FirstName, user.LastName), raw); err != nil {
		return models.NewStorageError("write", err)
	}
	return nil
}

// CreateUser allocates a fresh opaque id, persists the user and returns it.
func (r *recordStore) CreateUser(ctx context.Context, insert models.InsertUser) (*models.User, error) {
	user := &models.User{
		ID:        uuid.NewString(),
		FirstName: insert.FirstName,
		LastName:  insert.LastName,
	}
	if err := r.PutUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ClearUser removes the user record and its check-in collection together.
// Deleting absent keys is not an error.
func (r *recordStore) ClearUser(ctx context.Context, firstName, lastName string) error {
	err := r.kv.Delete(ctx, r.userKey(firstName, lastName), r.checkInsKey(firstName, lastName))
	if err != nil {
		return models.NewStorageError("delete", err)
	}
	return nil
}

// ListCheckIns returns the stored check-in list in insertion order, empty
// when no list exists yet.
func (r *recordStore) ListCheckIns(ctx context.Context, firstName, lastName string) ([]models.CheckIn, error) {
	raw, err := r.kv.Get(ctx, r.checkInsKey(firstName, lastName))
	if errors.Is(err, storage.ErrNotFound) {
		return []models.CheckIn{}, nil
	}
	if err != nil {
		return nil, models.NewStorageError("read", err)
	}

	var checkIns []models.CheckIn
	if err := json.Unmarshal(raw, &checkIns); err != nil {
		return nil, models.NewStorageError("decode", err)
	}
	return checkIns, nil
}

// AppendCheckIn reads the current list, appends and writes it back whole.
// The read-modify-write is not atomic across writers; this store assumes a
// single writer per user key space.
func (r *recordStore) AppendCheckIn(ctx context.Context, firstName, lastName string, checkIn models.CheckIn) error {
	checkIns, err := r.ListCheckIns(ctx, firstName, lastName)
	if err != nil {
		return err
	}

	checkIns = append(checkIns, checkIn)
	raw, err := json.Marshal(checkIns)
	if err != nil {
		return models.NewStorageError("encode", err)
	}
	if err := r.kv.Set(ctx, r.checkInsKey(firstName, lastName), raw); err != nil {
		return models.NewStorageError("write", err)
	}
	return nil
}

// CurrentSession returns the persisted session pointer, or nil when signed out.
func (r *recordStore) CurrentSession(ctx context.Context) (*models.Session, error) {
	raw, err := r.kv.Get(ctx, r.currentUserKey())
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, models.NewStorageError("read", err)
	}

	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, models.NewStorageError("decode", err)
	}
	return &session, nil
}

func (r *recordStore) SetCurrentSession(ctx context.Context, session models.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return models.NewStorageError("encode", err)
	}
	if err := r.kv.Set(ctx, r.currentUserKey(), raw); err != nil {
		return models.NewStorageError("write", err)
	}
	return nil
}

func (r *recordStore) ClearCurrentSession(ctx context.Context) error {
	if err := r.kv.Delete(ctx, r.currentUserKey()); err != nil {
		return models.NewStorageError("delete", err)
	}
	return nil
}
