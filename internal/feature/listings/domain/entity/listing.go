// Package entity defines the domain entities for the listings feature.
package entity

import "time"

// Status is the moderation state of a listing.
type Status string

// Moderation states a listing can be in. New submissions start as pending.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the three known moderation states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Listing represents a car-rental offer submitted by a user and moderated by
// an admin. ID and SubmittedAt are assigned at creation and never change.
type Listing struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Location    string    `json:"location"`
	Status      Status    `json:"status"`
	SubmittedBy string    `json:"submittedBy"`
	SubmittedAt time.Time `json:"submittedAt"`
	Images      []string  `json:"images"`
}

// ListingUpdate is a partial update of a listing's editable fields.
// A nil field means "leave unchanged"; a nil Images slice likewise.
type ListingUpdate struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Location    *string  `json:"location"`
	Images      []string `json:"images"`
}

// Empty reports whether the update specifies no field at all.
func (u ListingUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Price == nil &&
		u.Location == nil && u.Images == nil
}
