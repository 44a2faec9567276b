package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/stayhub/stayhub/internal/model"
)

// CreateAmenityRequest carries the raw fields for a new amenity.
type CreateAmenityRequest struct {
	Name string
}

// CreateAmenity registers a new amenity. Names are unique ignoring case
// and surrounding whitespace; a duplicate is a ConflictError. This
// check is the single authority; the transport layer does not
// pre-check.
func (f *Facade) CreateAmenity(ctx context.Context, req CreateAmenityRequest) (*model.Amenity, error) {
	if dup, err := f.amenityNameTaken(ctx, req.Name, ""); err != nil {
		return nil, err
	} else if dup {
		return nil, model.NewConflictError("name", "amenity with this name already exists")
	}

	a, err := model.NewAmenity(req.Name)
	if err != nil {
		return nil, err
	}
	log.Info().Str("amenityID", a.ID).Str("name", a.Name).Msg("Creating amenity")
	return f.store.Amenities().Create(ctx, a)
}

// GetAmenity retrieves an amenity by id, or (nil, nil) when absent.
func (f *Facade) GetAmenity(ctx context.Context, amenityID string) (*model.Amenity, error) {
	return f.store.Amenities().Get(ctx, amenityID)
}

// ListAmenities returns all amenities in insertion order.
func (f *Facade) ListAmenities(ctx context.Context) ([]*model.Amenity, error) {
	return f.store.Amenities().List(ctx)
}

// UpdateAmenity applies a partial field-set to an existing amenity. It
// returns (nil, nil) when the amenity does not exist. Renaming to a
// name another amenity already holds (ignoring case) is a
// ConflictError.
func (f *Facade) UpdateAmenity(ctx context.Context, amenityID string, fields map[string]any) (*model.Amenity, error) {
	a, err := f.store.Amenities().Get(ctx, amenityID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}

	if v, ok := fields["name"]; ok {
		if name, ok := v.(string); ok {
			if dup, err := f.amenityNameTaken(ctx, name, amenityID); err != nil {
				return nil, err
			} else if dup {
				return nil, model.NewConflictError("name", "amenity with this name already exists")
			}
		}
	}

	if err := f.store.Amenities().Update(ctx, amenityID, fields); err != nil {
		return nil, err
	}
	return f.store.Amenities().Get(ctx, amenityID)
}

// DeleteAmenity removes an amenity and reports whether a deletion
// occurred. Places keep the stale id; the core does not cascade.
func (f *Facade) DeleteAmenity(ctx context.Context, amenityID string) (bool, error) {
	a, err := f.store.Amenities().Get(ctx, amenityID)
	if err != nil {
		return false, err
	}
	if a == nil {
		return false, nil
	}
	log.Info().Str("amenityID", amenityID).Msg("Deleting amenity")
	if err := f.store.Amenities().Delete(ctx, amenityID); err != nil {
		return false, err
	}
	return true, nil
}

// amenityNameTaken scans all amenities for a case-insensitive, trimmed
// name match, skipping excludeID so renames don't collide with
// themselves.
func (f *Facade) amenityNameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	name = strings.TrimSpace(name)
	all, err := f.store.Amenities().List(ctx)
	if err != nil {
		return false, err
	}
	for _, a := range all {
		if a.ID == excludeID {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(a.Name), name) {
			return true, nil
		}
	}
	return false, nil
}
