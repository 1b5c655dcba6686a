// Package seed provides helpers to create demo data for the check-in store.
// These helpers are intended for development and testing only.
package seed

import (
	"context"
	"time"

	"reentrybuddy/internal/models"
	"reentrybuddy/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

var feelings = []string{
	"hopeful",
	"anxious",
	"steady",
	"grateful",
	"tired but okay",
	"motivated",
	"overwhelmed",
	"calm",
}

var goals = []string{
	"take a 20 minute walk",
	"call my sister",
	"show up to my appointment on time",
	"cook dinner instead of ordering",
	"apply to one job",
	"read ten pages",
	"go to bed before midnight",
}

// Factory builds domain records and persists them through the record store.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	store repository.RecordStore
}

// NewFactory creates a new Factory bound to the provided record store.
func NewFactory(store repository.RecordStore) *Factory {
	// seed gofakeit for varied content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{store: store}
}

// CreateUser persists a user with a generated name.
func (f *Factory) CreateUser(ctx context.Context) (*models.User, error) {
	return f.store.CreateUser(ctx, models.InsertUser{
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
	})
}

// BuildCheckIn constructs a check-in for the given user and day but does not
// persist it.
func (f *Factory) BuildCheckIn(user *models.User, date time.Time) models.CheckIn {
	checkIn := models.CheckIn{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Date:      date,
		Feeling:   gofakeit.RandomString(feelings),
		Goal:      gofakeit.RandomString(goals),
		CreatedAt: date,
	}
	// Journal entries are optional; leave some empty like real usage
	if gofakeit.Bool() {
		checkIn.Journal = gofakeit.Paragraph(1, 2, 8, " ")
	}
	return checkIn
}

// SeedHistory persists a run of daily check-ins walking back from today.
// When gapEvery is positive every Nth day is skipped, producing broken
// streaks for realistic dashboards.
func (f *Factory) SeedHistory(ctx context.Context, user *models.User, days, gapEvery int) (int, error) {
	created := 0
	now := time.Now()

	for offset := days - 1; offset >= 0; offset-- {
		if gapEvery > 0 && offset%gapEvery == 0 && offset != 0 {
			continue
		}

		date := now.AddDate(0, 0, -offset)
		checkIn := f.BuildCheckIn(user, date)
		if err := f.store.AppendCheckIn(ctx, user.FirstName, user.LastName, checkIn); err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}
