package model

import "strings"

// Review is a rating and comment authored by a user about a place.
// PlaceID and UserID reference entities that must exist at creation
// time, which the facade checks before construction.
type Review struct {
	Entity
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	PlaceID string `json:"place_id"`
	UserID  string `json:"user_id"`
}

// NewReview validates all fields and returns a fully formed Review, or
// a ValidationError naming the first offending field.
func NewReview(text string, rating int, placeID, userID string) (*Review, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, NewValidationError("text", "is required")
	}
	if rating < 1 || rating > 5 {
		return nil, NewValidationError("rating", "must be between 1 and 5")
	}
	if placeID == "" {
		return nil, NewValidationError("place_id", "is required")
	}
	if userID == "" {
		return nil, NewValidationError("user_id", "is required")
	}
	return &Review{
		Entity:  newEntity(),
		Text:    text,
		Rating:  rating,
		PlaceID: placeID,
		UserID:  userID,
	}, nil
}

// Apply assigns the known fields present in the partial update and
// re-stamps UpdatedAt. Unknown keys are silently ignored and no
// validation is re-run.
func (r *Review) Apply(fields map[string]any) {
	for k, v := range fields {
		switch k {
		case "text":
			if s, ok := v.(string); ok {
				r.Text = s
			}
		case "rating":
			if n, ok := toInt(v); ok {
				r.Rating = n
			}
		case "place_id":
			if s, ok := v.(string); ok {
				r.PlaceID = s
			}
		case "user_id":
			if s, ok := v.(string); ok {
				r.UserID = s
			}
		}
	}
	r.Touch()
}

// Clone returns a copy sharing no mutable state with the receiver.
func (r *Review) Clone() *Review {
	c := *r
	return &c
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
