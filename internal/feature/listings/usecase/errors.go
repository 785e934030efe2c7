// Package usecase implements the business logic for the listings feature.
package usecase

import "errors"

var (
	// ErrListingNotFound is returned when no listing exists for the given ID.
	ErrListingNotFound = errors.New("listing not found")

	// ErrInvalidStatus is returned when a status change names an unknown moderation state.
	ErrInvalidStatus = errors.New("invalid listing status")

	// ErrEmptyUpdate is returned when an edit request specifies no field to change.
	ErrEmptyUpdate = errors.New("update specifies no fields")
)
