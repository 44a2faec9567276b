package model

import (
	"strings"
	"testing"
)

func newValidPlace(t *testing.T) *Place {
	t.Helper()
	p, err := NewPlace("Flat", "nice view", 100, 10, 10, "owner-1")
	if err != nil {
		t.Fatalf("NewPlace: %v", err)
	}
	return p
}

func TestNewPlace_Valid(t *testing.T) {
	p, err := NewPlace("  Cozy Flat  ", "", 42.5, -90, 180, "owner-1")
	if err != nil {
		t.Fatalf("NewPlace: %v", err)
	}
	if p.Title != "Cozy Flat" {
		t.Fatalf("title not trimmed: %q", p.Title)
	}
	if p.Description != "" {
		t.Fatalf("description should default to empty")
	}
	if len(p.Reviews) != 0 || len(p.Amenities) != 0 {
		t.Fatalf("collections should start empty")
	}
}

func TestNewPlace_LatitudeBounds(t *testing.T) {
	for _, lat := range []float64{-90, -45, 0, 45, 90} {
		if _, err := NewPlace("Flat", "", 100, lat, 0, "o"); err != nil {
			t.Fatalf("latitude %v should pass: %v", lat, err)
		}
	}
	for _, lat := range []float64{-91, 91, -100, 100} {
		if _, err := NewPlace("Flat", "", 100, lat, 0, "o"); !IsValidationError(err) {
			t.Fatalf("latitude %v should fail with ValidationError, got %v", lat, err)
		}
	}
}

func TestNewPlace_LongitudeBounds(t *testing.T) {
	for _, lon := range []float64{-180, -90, 0, 90, 180} {
		if _, err := NewPlace("Flat", "", 100, 0, lon, "o"); err != nil {
			t.Fatalf("longitude %v should pass: %v", lon, err)
		}
	}
	for _, lon := range []float64{-181, 181} {
		if _, err := NewPlace("Flat", "", 100, 0, lon, "o"); !IsValidationError(err) {
			t.Fatalf("longitude %v should fail with ValidationError, got %v", lon, err)
		}
	}
}

func TestNewPlace_PriceMustBePositive(t *testing.T) {
	for _, price := range []float64{0, -1, -100.5} {
		_, err := NewPlace("Flat", "", price, 0, 0, "o")
		if !IsValidationError(err) {
			t.Fatalf("price %v should fail with ValidationError, got %v", price, err)
		}
		ve := err.(ValidationError)
		if ve.Field != "price" {
			t.Fatalf("field = %q, want price", ve.Field)
		}
	}
}

func TestNewPlace_TitleRules(t *testing.T) {
	if _, err := NewPlace("", "", 10, 0, 0, "o"); !IsValidationError(err) {
		t.Fatalf("empty title should fail: %v", err)
	}
	if _, err := NewPlace(strings.Repeat("x", 101), "", 10, 0, 0, "o"); !IsValidationError(err) {
		t.Fatalf("101-char title should fail: %v", err)
	}
	if _, err := NewPlace(strings.Repeat("x", 100), "", 10, 0, 0, "o"); err != nil {
		t.Fatalf("100-char title should pass: %v", err)
	}
}

func TestNewPlace_OwnerRequired(t *testing.T) {
	_, err := NewPlace("Flat", "", 10, 0, 0, "")
	if !IsValidationError(err) {
		t.Fatalf("missing owner should fail: %v", err)
	}
	if ve := err.(ValidationError); ve.Field != "owner_id" {
		t.Fatalf("field = %q, want owner_id", ve.Field)
	}
}

func TestPlaceAmenitySet(t *testing.T) {
	p := newValidPlace(t)
	p.AddAmenity("wifi")
	p.AddAmenity("wifi")
	if len(p.Amenities) != 1 {
		t.Fatalf("amenity set should deduplicate: %v", p.Amenities)
	}
	p.RemoveAmenity("absent")
	if len(p.Amenities) != 1 {
		t.Fatalf("removing an absent amenity should be a no-op")
	}
	p.RemoveAmenity("wifi")
	if len(p.Amenities) != 0 {
		t.Fatalf("amenity not removed: %v", p.Amenities)
	}
}

func TestPlaceApply(t *testing.T) {
	p := newValidPlace(t)
	before := p.UpdatedAt

	p.Apply(map[string]any{"price": -5.0, "title": "New", "rooms": 3})
	if p.Price != -5 || p.Title != "New" {
		t.Fatalf("fields not applied: %+v", p)
	}
	if !p.UpdatedAt.After(before) {
		t.Fatalf("UpdatedAt must strictly increase")
	}

	// JSON numbers arrive as float64, but plain ints are widened too.
	p.Apply(map[string]any{"price": 80})
	if p.Price != 80 {
		t.Fatalf("int price not widened: %v", p.Price)
	}
}
