package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/stayhub/stayhub/internal/model"
)

// CreateReviewRequest carries the raw fields for a new review.
type CreateReviewRequest struct {
	Text    string
	Rating  int
	PlaceID string
	UserID  string
}

// CreateReview registers a new review. The place is resolved before the
// author; either one missing is a NotFoundError. On success the review
// id is linked into both the place's and the author's review
// collections.
func (f *Facade) CreateReview(ctx context.Context, req CreateReviewRequest) (*model.Review, error) {
	place, err := f.store.Places().Get(ctx, req.PlaceID)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, model.NewNotFoundError("place_id", "place not found")
	}
	user, err := f.store.Users().Get(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.NewNotFoundError("user_id", "user not found")
	}

	rv, err := model.NewReview(req.Text, req.Rating, req.PlaceID, req.UserID)
	if err != nil {
		return nil, err
	}

	if _, err := f.store.Reviews().Create(ctx, rv); err != nil {
		return nil, err
	}
	if err := f.store.Places().AddReview(ctx, place.ID, rv.ID); err != nil {
		return nil, err
	}
	if err := f.store.Users().AddReview(ctx, user.ID, rv.ID); err != nil {
		return nil, err
	}
	log.Info().Str("reviewID", rv.ID).Str("placeID", place.ID).Str("userID", user.ID).Msg("Creating review")
	return rv, nil
}

// GetReview retrieves a review by id, or (nil, nil) when absent.
func (f *Facade) GetReview(ctx context.Context, reviewID string) (*model.Review, error) {
	return f.store.Reviews().Get(ctx, reviewID)
}

// ListReviews returns all reviews in insertion order.
func (f *Facade) ListReviews(ctx context.Context) ([]*model.Review, error) {
	return f.store.Reviews().List(ctx)
}

// ListReviewsByPlace resolves the place's review ids through the review
// table. An absent place yields an empty slice, not an error. Ids that
// no longer resolve (the review was deleted) are skipped.
func (f *Facade) ListReviewsByPlace(ctx context.Context, placeID string) ([]*model.Review, error) {
	place, err := f.store.Places().Get(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return []*model.Review{}, nil
	}
	out := make([]*model.Review, 0, len(place.Reviews))
	for _, id := range place.Reviews {
		rv, err := f.store.Reviews().Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if rv != nil {
			out = append(out, rv)
		}
	}
	return out, nil
}

// UpdateReview applies a partial field-set to an existing review. It
// returns (nil, nil) when the review does not exist.
func (f *Facade) UpdateReview(ctx context.Context, reviewID string, fields map[string]any) (*model.Review, error) {
	rv, err := f.store.Reviews().Get(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if rv == nil {
		return nil, nil
	}
	if err := f.store.Reviews().Update(ctx, reviewID, fields); err != nil {
		return nil, err
	}
	return f.store.Reviews().Get(ctx, reviewID)
}

// DeleteReview removes a review and reports whether a deletion
// occurred. The id stays in the place's and author's collections;
// resolution at read time filters it out.
func (f *Facade) DeleteReview(ctx context.Context, reviewID string) (bool, error) {
	rv, err := f.store.Reviews().Get(ctx, reviewID)
	if err != nil {
		return false, err
	}
	if rv == nil {
		return false, nil
	}
	log.Info().Str("reviewID", reviewID).Msg("Deleting review")
	if err := f.store.Reviews().Delete(ctx, reviewID); err != nil {
		return false, err
	}
	return true, nil
}
