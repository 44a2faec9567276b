package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/stayhub/stayhub/internal/model"
)

// CreatePlaceRequest carries the raw fields for a new place listing.
type CreatePlaceRequest struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     string
}

// CreatePlace registers a new place. The owner must already exist;
// a missing owner is a NotFoundError. On success the place id is
// appended to the owner's places collection.
func (f *Facade) CreatePlace(ctx context.Context, req CreatePlaceRequest) (*model.Place, error) {
	owner, err := f.store.Users().Get(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, model.NewNotFoundError("owner_id", "owner not found")
	}

	p, err := model.NewPlace(req.Title, req.Description, req.Price, req.Latitude, req.Longitude, req.OwnerID)
	if err != nil {
		return nil, err
	}

	if _, err := f.store.Places().Create(ctx, p); err != nil {
		return nil, err
	}
	if err := f.store.Users().AddPlace(ctx, owner.ID, p.ID); err != nil {
		return nil, err
	}
	log.Info().Str("placeID", p.ID).Str("ownerID", owner.ID).Msg("Creating place")
	return p, nil
}

// GetPlace retrieves a place by id, or (nil, nil) when absent.
func (f *Facade) GetPlace(ctx context.Context, placeID string) (*model.Place, error) {
	return f.store.Places().Get(ctx, placeID)
}

// ListPlaces returns all places in insertion order.
func (f *Facade) ListPlaces(ctx context.Context) ([]*model.Place, error) {
	return f.store.Places().List(ctx)
}

// UpdatePlace applies a partial field-set to an existing place. It
// returns (nil, nil) when the place does not exist.
func (f *Facade) UpdatePlace(ctx context.Context, placeID string, fields map[string]any) (*model.Place, error) {
	p, err := f.store.Places().Get(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if err := f.store.Places().Update(ctx, placeID, fields); err != nil {
		return nil, err
	}
	return f.store.Places().Get(ctx, placeID)
}

// DeletePlace removes a place and reports whether a deletion occurred.
// The id stays in the former owner's places collection; the core does
// not cascade.
func (f *Facade) DeletePlace(ctx context.Context, placeID string) (bool, error) {
	p, err := f.store.Places().Get(ctx, placeID)
	if err != nil {
		return false, err
	}
	if p == nil {
		return false, nil
	}
	log.Info().Str("placeID", placeID).Msg("Deleting place")
	if err := f.store.Places().Delete(ctx, placeID); err != nil {
		return false, err
	}
	return true, nil
}

// AddAmenityToPlace associates an amenity with a place. Either id
// failing to resolve is a NotFoundError; the association itself is
// idempotent.
func (f *Facade) AddAmenityToPlace(ctx context.Context, placeID, amenityID string) error {
	if err := f.resolvePlaceAmenity(ctx, placeID, amenityID); err != nil {
		return err
	}
	return f.store.Places().AddAmenity(ctx, placeID, amenityID)
}

// RemoveAmenityFromPlace drops an amenity association from a place.
// Either id failing to resolve is a NotFoundError; removing an absent
// association is a no-op.
func (f *Facade) RemoveAmenityFromPlace(ctx context.Context, placeID, amenityID string) error {
	if err := f.resolvePlaceAmenity(ctx, placeID, amenityID); err != nil {
		return err
	}
	return f.store.Places().RemoveAmenity(ctx, placeID, amenityID)
}

func (f *Facade) resolvePlaceAmenity(ctx context.Context, placeID, amenityID string) error {
	p, err := f.store.Places().Get(ctx, placeID)
	if err != nil {
		return err
	}
	if p == nil {
		return model.NewNotFoundError("place_id", "place not found")
	}
	a, err := f.store.Amenities().Get(ctx, amenityID)
	if err != nil {
		return err
	}
	if a == nil {
		return model.NewNotFoundError("amenity_id", "amenity not found")
	}
	return nil
}
