// Package models contains data structures for the application's domain models.
package models

import "time"

// CheckIn represents one daily check-in entry. Date and CreatedAt are both
// stamped at submission time; "today" detection compares Date by calendar
// day in local time.
type CheckIn struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Date      time.Time `json:"date"`
	Feeling   string    `json:"feeling"`
	Goal      string    `json:"goal"`
	Journal   string    `json:"journal,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertCheckIn carries the caller-supplied fields for a new check-in.
// Identity, ownership and timestamps are assigned by the domain service.
type InsertCheckIn struct {
	Feeling string `json:"feeling"`
	Goal    string `json:"goal"`
	Journal string `json:"journal,omitempty"`
}

// CheckInSummary aggregates the reads the dashboard needs in one shot.
type CheckInSummary struct {
	CheckIns      []CheckIn `json:"check_ins"`
	TodaysCheckIn *CheckIn  `json:"todays_check_in,omitempty"`
	Streak        int       `json:"streak"`
}
