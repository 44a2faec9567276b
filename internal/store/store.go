package store

import (
	"context"

	"github.com/stayhub/stayhub/internal/model"
)

// Store exposes the per-entity tables required by the facade.
// Implementations live under internal/store/<driver>/ (e.g., memory).
// Lookups report absence as a nil entity with a nil error; errors are
// reserved for driver failures.
type Store interface {
	Users() Users
	Places() Places
	Reviews() Reviews
	Amenities() Amenities
}

type Users interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	Get(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	AddPlace(ctx context.Context, userID, placeID string) error
	AddReview(ctx context.Context, userID, reviewID string) error
}

type Places interface {
	Create(ctx context.Context, p *model.Place) (*model.Place, error)
	Get(ctx context.Context, id string) (*model.Place, error)
	List(ctx context.Context) ([]*model.Place, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	AddReview(ctx context.Context, placeID, reviewID string) error
	AddAmenity(ctx context.Context, placeID, amenityID string) error
	RemoveAmenity(ctx context.Context, placeID, amenityID string) error
}

type Reviews interface {
	Create(ctx context.Context, r *model.Review) (*model.Review, error)
	Get(ctx context.Context, id string) (*model.Review, error)
	List(ctx context.Context) ([]*model.Review, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type Amenities interface {
	Create(ctx context.Context, a *model.Amenity) (*model.Amenity, error)
	Get(ctx context.Context, id string) (*model.Amenity, error)
	GetByName(ctx context.Context, name string) (*model.Amenity, error)
	List(ctx context.Context) ([]*model.Amenity, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}
