package dto

// ClubResponse is the club representation returned by the listing.
type ClubResponse struct {
	ClubID int64  `json:"clubId"`
	Name   string `json:"name"`
}
