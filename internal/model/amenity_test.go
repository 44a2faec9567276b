package model

import (
	"strings"
	"testing"
)

func TestNewAmenity(t *testing.T) {
	a, err := NewAmenity("  WiFi  ")
	if err != nil {
		t.Fatalf("NewAmenity: %v", err)
	}
	if a.Name != "WiFi" {
		t.Fatalf("name not trimmed: %q", a.Name)
	}
	if a.ID == "" || a.CreatedAt.IsZero() {
		t.Fatalf("identity fields not assigned: %+v", a)
	}
}

func TestNewAmenity_Invalid(t *testing.T) {
	for _, name := range []string{"", "   ", strings.Repeat("x", 51)} {
		if _, err := NewAmenity(name); !IsValidationError(err) {
			t.Fatalf("name %q should fail with ValidationError, got %v", name, err)
		}
	}
	if _, err := NewAmenity(strings.Repeat("x", 50)); err != nil {
		t.Fatalf("50-char name should pass: %v", err)
	}
}

func TestAmenityApply(t *testing.T) {
	a, _ := NewAmenity("WiFi")
	before := a.UpdatedAt
	a.Apply(map[string]any{"name": "Parking", "stars": 5})
	if a.Name != "Parking" {
		t.Fatalf("name not applied: %q", a.Name)
	}
	if !a.UpdatedAt.After(before) {
		t.Fatalf("UpdatedAt must strictly increase")
	}
}
