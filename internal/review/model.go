// Package review provides the review domain model and submission validation.
package review

import (
	"errors"
	"strings"
)

// Review represents a user-submitted rating and text tied to a place.
type Review struct {
	ID       string `json:"id,omitempty"`
	PlaceID  string `json:"place_id"`
	Text     string `json:"text"`
	Rating   int    `json:"rating"`
	UserID   string `json:"user_id"`
	UserName string `json:"user_name,omitempty"`
}

// DisplayName returns the reviewer's name, or "Anonymous" when the API
// omits it.
func (r *Review) DisplayName() string {
	if r.UserName == "" {
		return "Anonymous"
	}
	return r.UserName
}

// Validation failures, in the order they are checked. Each maps to a
// distinct user-facing message shown before any network call is made.
var (
	ErrNoPlace  = errors.New("no place specified")
	ErrNoText   = errors.New("please write a review before submitting")
	ErrNoRating = errors.New("please select a rating")
	ErrNoUser   = errors.New("could not determine your user; please log in again")
)

// Validate checks a pending submission. Checks run in a fixed order and
// stop at the first failure: place id, then text, then rating, then user id.
func Validate(placeID, text string, rating int, userID string) error {
	if placeID == "" {
		return ErrNoPlace
	}
	if strings.TrimSpace(text) == "" {
		return ErrNoText
	}
	if rating < 1 || rating > 5 {
		return ErrNoRating
	}
	if userID == "" {
		return ErrNoUser
	}
	return nil
}

// Stars renders a rating as five stars, filled up to the rating.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
