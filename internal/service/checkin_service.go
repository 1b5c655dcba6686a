package service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"reentrybuddy/internal/middleware"
	"reentrybuddy/internal/models"
	"reentrybuddy/internal/repository"
	"reentrybuddy/internal/validation"

	"github.com/google/uuid"
)

// CheckInService derives the user-facing check-in semantics (today's entry,
// current streak) and owns the creation contract for new check-ins. The
// streak is never stored; it is recomputed from the check-in list on every
// query, so it cannot drift from the underlying data.
type CheckInService struct {
	store repository.RecordStore
	now   func() time.Time
}

// NewCheckInService returns a CheckInService reading and writing through store.
func NewCheckInService(store repository.RecordStore) *CheckInService {
	return &CheckInService{store: store, now: time.Now}
}

// sameDay reports whether a and b fall on the same calendar day in local time.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// AddCheckIn creates and persists a check-in for the session's user. The
// user must already exist; signing in is the caller's responsibility. Date
// and CreatedAt are both stamped to the current instant.
func (s *CheckInService) AddCheckIn(ctx context.Context, session models.Session, insert models.InsertCheckIn) (*models.CheckIn, error) {
	if err := validation.ValidateInsertCheckIn(insert); err != nil {
		return nil, err
	}

	user, err := s.store.GetUser(ctx, session.FirstName, session.LastName)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", session.FirstName+" "+session.LastName)
	}

	now := s.now()
	checkIn := models.CheckIn{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Date:      now,
		Feeling:   insert.Feeling,
		Goal:      insert.Goal,
		Journal:   insert.Journal,
		CreatedAt: now,
	}

	if err := s.store.AppendCheckIn(ctx, session.FirstName, session.LastName, checkIn); err != nil {
		return nil, err
	}

	middleware.CheckInsCreated.Inc()
	return &checkIn, nil
}

// TodaysCheckIn returns the first stored check-in dated today in local time,
// or nil when none exists. With multiple same-day entries the first in
// stored (insertion) order wins.
func (s *CheckInService) TodaysCheckIn(ctx context.Context, session models.Session) (*models.CheckIn, error) {
	checkIns, err := s.store.ListCheckIns(ctx, session.FirstName, session.LastName)
	if err != nil {
		return nil, err
	}

	today := s.now()
	for i := range checkIns {
		if sameDay(checkIns[i].Date, today) {
			return &checkIns[i], nil
		}
	}
	return nil, nil
}

// Streak counts consecutive calendar days with at least one check-in,
// walking backward from today. A missing entry for today does not break an
// existing streak; the walk then starts at yesterday.
func (s *CheckInService) Streak(ctx context.Context, session models.Session) (int, error) {
	checkIns, err := s.store.ListCheckIns(ctx, session.FirstName, session.LastName)
	if err != nil {
		return 0, err
	}
	if len(checkIns) == 0 {
		return 0, nil
	}

	sorted := make([]models.CheckIn, len(checkIns))
	copy(sorted, checkIns)
	// Stable so same-day entries stay adjacent in insertion order; a
	// duplicate day then fails the cursor match and ends the walk without
	// double-counting.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	cursor := s.now()
	hasToday := false
	for _, c := range sorted {
		if sameDay(c.Date, cursor) {
			hasToday = true
			break
		}
	}
	if !hasToday {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for _, c := range sorted {
		if !sameDay(c.Date, cursor) {
			// First gap ends the streak
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return streak, nil
}

// LoadCheckIns aggregates the three dashboard reads: recent-first history,
// today's check-in and the current streak. Read failures degrade to empty
// results with a logged warning so the UI stays usable.
func (s *CheckInService) LoadCheckIns(ctx context.Context, session models.Session) *models.CheckInSummary {
	summary := &models.CheckInSummary{CheckIns: []models.CheckIn{}}

	checkIns, err := s.store.ListCheckIns(ctx, session.FirstName, session.LastName)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "check-in history unavailable, serving empty results",
			slog.String("error", err.Error()))
		return summary
	}

	sorted := make([]models.CheckIn, len(checkIns))
	copy(sorted, checkIns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	summary.CheckIns = sorted

	if todays, err := s.TodaysCheckIn(ctx, session); err == nil {
		summary.TodaysCheckIn = todays
	} else {
		middleware.Logger.WarnContext(ctx, "today's check-in unavailable", slog.String("error", err.Error()))
	}

	if streak, err := s.Streak(ctx, session); err == nil {
		summary.Streak = streak
	} else {
		middleware.Logger.WarnContext(ctx, "streak unavailable", slog.String("error", err.Error()))
	}

	return summary
}
