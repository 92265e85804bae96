package domain

import "time"

// Event is a club event. Deletion is a soft cancel: the row is retained and
// IsCancelled flips to true.
type Event struct {
	ID              int64
	Title           string
	Location        string
	StartAt         time.Time
	EndAt           *time.Time
	Quota           int
	ClubID          int64
	ClubName        *string // resolved from clubs on read; nil when the club is missing
	Description     *string
	IsCancelled     bool
	CreatedByUserID int64
	CreatedAt       time.Time
}
