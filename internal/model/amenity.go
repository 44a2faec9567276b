package model

import "strings"

// Amenity is a feature or service a place can offer, such as WiFi or
// parking. Names are unique case-insensitively, which the facade
// enforces.
type Amenity struct {
	Entity
	Name string `json:"name"`
}

// NewAmenity validates the name and returns a fully formed Amenity.
func NewAmenity(name string) (*Amenity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("name", "is required")
	}
	if len(name) > 50 {
		return nil, NewValidationError("name", "must not exceed 50 characters")
	}
	return &Amenity{Entity: newEntity(), Name: name}, nil
}

// Apply assigns the known fields present in the partial update and
// re-stamps UpdatedAt. Unknown keys are silently ignored and no
// validation is re-run.
func (a *Amenity) Apply(fields map[string]any) {
	for k, v := range fields {
		switch k {
		case "name":
			if s, ok := v.(string); ok {
				a.Name = s
			}
		}
	}
	a.Touch()
}

// Clone returns a copy sharing no mutable state with the receiver.
func (a *Amenity) Clone() *Amenity {
	c := *a
	return &c
}
