package dto

import "time"

// EventRequest is the full payload for event create and update. IsCancelled
// is only meaningful on update, where it optionally overrides the flag.
type EventRequest struct {
	Title       string     `json:"title"`
	Location    string     `json:"location"`
	StartAt     time.Time  `json:"startAt"`
	EndAt       *time.Time `json:"endAt"`
	Quota       int        `json:"quota"`
	ClubID      int64      `json:"clubId"`
	Description *string    `json:"description"`
	IsCancelled *bool      `json:"isCancelled"`
}

// EventResponse is the event representation returned by the API.
type EventResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Location    string     `json:"location"`
	StartAt     time.Time  `json:"startAt"`
	EndAt       *time.Time `json:"endAt"`
	Quota       int        `json:"quota"`
	ClubID      int64      `json:"clubId"`
	ClubName    *string    `json:"clubName"`
	Description *string    `json:"description"`
	IsCancelled bool       `json:"isCancelled"`
}
