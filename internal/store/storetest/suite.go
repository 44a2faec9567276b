// Package storetest holds a compliance suite any store.Store
// implementation must pass.
package storetest

import (
	"context"
	"testing"

	"github.com/stayhub/stayhub/internal/model"
	"github.com/stayhub/stayhub/internal/store"
)

// Run exercises a minimal compliance suite against a store.Store
// implementation. makeStore should return a clean, isolated store.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	// Users
	u, err := model.NewUser("Ada", "Lovelace", "ada@example.test", false)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	if _, err := s.Users().Create(ctx, u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if got, err := s.Users().Get(ctx, u.ID); err != nil || got == nil || got.Email != "ada@example.test" {
		t.Fatalf("GetUser: got=%v err=%v", got, err)
	}
	if got, err := s.Users().GetByEmail(ctx, "ada@example.test"); err != nil || got == nil || got.ID != u.ID {
		t.Fatalf("GetUserByEmail: got=%v err=%v", got, err)
	}
	if got, err := s.Users().GetByEmail(ctx, "nobody@example.test"); err != nil || got != nil {
		t.Fatalf("GetUserByEmail absent: got=%v err=%v", got, err)
	}
	if got, err := s.Users().Get(ctx, "missing"); err != nil || got != nil {
		t.Fatalf("GetUser absent: got=%v err=%v", got, err)
	}

	// List preserves insertion order.
	u2, _ := model.NewUser("Grace", "Hopper", "grace@example.test", true)
	if _, err := s.Users().Create(ctx, u2); err != nil {
		t.Fatalf("CreateUser u2: %v", err)
	}
	if lst, err := s.Users().List(ctx); err != nil || len(lst) != 2 || lst[0].ID != u.ID || lst[1].ID != u2.ID {
		t.Fatalf("ListUsers order: n=%d err=%v", len(lst), err)
	}

	// Update applies the partial field-set in place; missing ids are a
	// silent no-op.
	before := u.UpdatedAt
	if err := s.Users().Update(ctx, u.ID, map[string]any{"first_name": "Augusta"}); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if got, _ := s.Users().Get(ctx, u.ID); got.FirstName != "Augusta" || !got.UpdatedAt.After(before) {
		t.Fatalf("UpdateUser did not apply: %+v", got)
	}
	if err := s.Users().Update(ctx, "missing", map[string]any{"first_name": "X"}); err != nil {
		t.Fatalf("UpdateUser absent should be a no-op: %v", err)
	}

	// Link ops
	if err := s.Users().AddPlace(ctx, u.ID, "place-1"); err != nil {
		t.Fatalf("AddPlace: %v", err)
	}
	if err := s.Users().AddPlace(ctx, u.ID, "place-1"); err != nil {
		t.Fatalf("AddPlace repeat: %v", err)
	}
	if got, _ := s.Users().Get(ctx, u.ID); len(got.Places) != 1 {
		t.Fatalf("AddPlace should be idempotent: %v", got.Places)
	}
	if err := s.Users().AddReview(ctx, u.ID, "review-1"); err != nil {
		t.Fatalf("AddReview: %v", err)
	}

	// Places
	p, err := model.NewPlace("Loft", "quiet", 120, 10, 20, u.ID)
	if err != nil {
		t.Fatalf("NewPlace: %v", err)
	}
	if _, err := s.Places().Create(ctx, p); err != nil {
		t.Fatalf("CreatePlace: %v", err)
	}
	if got, err := s.Places().Get(ctx, p.ID); err != nil || got == nil || got.Title != "Loft" {
		t.Fatalf("GetPlace: got=%v err=%v", got, err)
	}
	if err := s.Places().AddAmenity(ctx, p.ID, "am-1"); err != nil {
		t.Fatalf("AddAmenity: %v", err)
	}
	if err := s.Places().AddAmenity(ctx, p.ID, "am-1"); err != nil {
		t.Fatalf("AddAmenity repeat: %v", err)
	}
	if got, _ := s.Places().Get(ctx, p.ID); len(got.Amenities) != 1 {
		t.Fatalf("AddAmenity should be idempotent: %v", got.Amenities)
	}
	if err := s.Places().RemoveAmenity(ctx, p.ID, "am-1"); err != nil {
		t.Fatalf("RemoveAmenity: %v", err)
	}
	if err := s.Places().RemoveAmenity(ctx, p.ID, "am-1"); err != nil {
		t.Fatalf("RemoveAmenity absent should be a no-op: %v", err)
	}
	if err := s.Places().AddReview(ctx, p.ID, "review-1"); err != nil {
		t.Fatalf("Place AddReview: %v", err)
	}

	// Reviews
	rv, err := model.NewReview("lovely", 5, p.ID, u.ID)
	if err != nil {
		t.Fatalf("NewReview: %v", err)
	}
	if _, err := s.Reviews().Create(ctx, rv); err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if err := s.Reviews().Update(ctx, rv.ID, map[string]any{"rating": 4}); err != nil {
		t.Fatalf("UpdateReview: %v", err)
	}
	if got, _ := s.Reviews().Get(ctx, rv.ID); got == nil || got.Rating != 4 {
		t.Fatalf("UpdateReview did not apply: %+v", got)
	}
	if err := s.Reviews().Delete(ctx, rv.ID); err != nil {
		t.Fatalf("DeleteReview: %v", err)
	}
	if got, err := s.Reviews().Get(ctx, rv.ID); err != nil || got != nil {
		t.Fatalf("GetReview after delete: got=%v err=%v", got, err)
	}
	if err := s.Reviews().Delete(ctx, rv.ID); err != nil {
		t.Fatalf("DeleteReview absent should be a no-op: %v", err)
	}

	// Amenities
	a, err := model.NewAmenity("WiFi")
	if err != nil {
		t.Fatalf("NewAmenity: %v", err)
	}
	if _, err := s.Amenities().Create(ctx, a); err != nil {
		t.Fatalf("CreateAmenity: %v", err)
	}
	if got, err := s.Amenities().GetByName(ctx, "WiFi"); err != nil || got == nil || got.ID != a.ID {
		t.Fatalf("GetAmenityByName: got=%v err=%v", got, err)
	}
	if got, err := s.Amenities().GetByName(ctx, "wifi"); err != nil || got != nil {
		t.Fatalf("GetAmenityByName is an exact match: got=%v err=%v", got, err)
	}
	if lst, err := s.Amenities().List(ctx); err != nil || len(lst) != 1 {
		t.Fatalf("ListAmenities: n=%d err=%v", len(lst), err)
	}
	if err := s.Amenities().Delete(ctx, a.ID); err != nil {
		t.Fatalf("DeleteAmenity: %v", err)
	}

	// Delete users and confirm order shrinks.
	if err := s.Users().Delete(ctx, u.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if lst, err := s.Users().List(ctx); err != nil || len(lst) != 1 || lst[0].ID != u2.ID {
		t.Fatalf("ListUsers after delete: n=%d err=%v", len(lst), err)
	}
}
