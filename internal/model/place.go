package model

import (
	"slices"
	"strings"
)

// Place is a rentable property owned by exactly one user. OwnerID,
// Reviews and Amenities are id references resolved through the
// repositories at read time.
type Place struct {
	Entity
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	OwnerID     string   `json:"owner_id"`
	Reviews     []string `json:"reviews"`
	Amenities   []string `json:"amenities"`
}

// NewPlace validates all fields and returns a fully formed Place, or a
// ValidationError naming the first offending field. The owner's
// existence is a cross-entity concern checked by the facade; here the
// reference only has to be present.
func NewPlace(title, description string, price, latitude, longitude float64, ownerID string) (*Place, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, NewValidationError("title", "is required")
	}
	if len(title) > 100 {
		return nil, NewValidationError("title", "must not exceed 100 characters")
	}
	if price <= 0 {
		return nil, NewValidationError("price", "must be a positive value")
	}
	if latitude < -90 || latitude > 90 {
		return nil, NewValidationError("latitude", "must be between -90.0 and 90.0")
	}
	if longitude < -180 || longitude > 180 {
		return nil, NewValidationError("longitude", "must be between -180.0 and 180.0")
	}
	if ownerID == "" {
		return nil, NewValidationError("owner_id", "is required")
	}
	return &Place{
		Entity:      newEntity(),
		Title:       title,
		Description: description,
		Price:       price,
		Latitude:    latitude,
		Longitude:   longitude,
		OwnerID:     ownerID,
		Reviews:     []string{},
		Amenities:   []string{},
	}, nil
}

// Apply assigns the known fields present in the partial update and
// re-stamps UpdatedAt. Unknown keys are silently ignored and no
// validation is re-run.
func (p *Place) Apply(fields map[string]any) {
	for k, v := range fields {
		switch k {
		case "title":
			if s, ok := v.(string); ok {
				p.Title = s
			}
		case "description":
			if s, ok := v.(string); ok {
				p.Description = s
			}
		case "price":
			if f, ok := toFloat(v); ok {
				p.Price = f
			}
		case "latitude":
			if f, ok := toFloat(v); ok {
				p.Latitude = f
			}
		case "longitude":
			if f, ok := toFloat(v); ok {
				p.Longitude = f
			}
		case "owner_id":
			if s, ok := v.(string); ok {
				p.OwnerID = s
			}
		}
	}
	p.Touch()
}

// Clone returns a copy sharing no mutable state with the receiver.
func (p *Place) Clone() *Place {
	c := *p
	c.Reviews = slices.Clone(p.Reviews)
	c.Amenities = slices.Clone(p.Amenities)
	return &c
}

// AddReview links a review to this place. Adding an id that is already
// present is a no-op.
func (p *Place) AddReview(reviewID string) {
	if !slices.Contains(p.Reviews, reviewID) {
		p.Reviews = append(p.Reviews, reviewID)
	}
}

// AddAmenity associates an amenity with this place. The amenity set is
// deduplicated; adding an id twice keeps a single entry.
func (p *Place) AddAmenity(amenityID string) {
	if !slices.Contains(p.Amenities, amenityID) {
		p.Amenities = append(p.Amenities, amenityID)
	}
}

// RemoveAmenity drops an amenity association. Removing an id that is
// not present is a no-op.
func (p *Place) RemoveAmenity(amenityID string) {
	if i := slices.Index(p.Amenities, amenityID); i >= 0 {
		p.Amenities = slices.Delete(p.Amenities, i, i+1)
	}
}

// toFloat widens the numeric types a JSON partial update can carry.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
