package entity

import "time"

// AuditEntry is an immutable record of one moderation action on a listing.
// Entries are only ever appended; they are never updated or deleted while the
// process lives. ListingID is a weak reference: it stays valid even if the
// referenced listing were ever removed.
type AuditEntry struct {
	ID         uint64    `json:"id"`
	ListingID  uint      `json:"listingId"`
	Action     string    `json:"action"`
	AdminEmail string    `json:"adminEmail"`
	Timestamp  time.Time `json:"timestamp"`
}

// Page is one page of a filtered listing query.
type Page struct {
	Items      []Listing `json:"listings"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	TotalPages int       `json:"totalPages"`
}
