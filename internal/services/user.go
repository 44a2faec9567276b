package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/stayhub/stayhub/internal/model"
)

// CreateUserRequest carries the raw fields for a new user account.
type CreateUserRequest struct {
	FirstName string
	LastName  string
	Email     string
	IsAdmin   bool
}

// CreateUser registers a new user. The email must be unique among all
// users after normalization; a duplicate is a ConflictError. Field
// validation failures surface as ValidationError from the constructor
// and nothing is persisted.
func (f *Facade) CreateUser(ctx context.Context, req CreateUserRequest) (*model.User, error) {
	existing, err := f.store.Users().GetByEmail(ctx, model.NormalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.NewConflictError("email", "user with this email already exists")
	}

	u, err := model.NewUser(req.FirstName, req.LastName, req.Email, req.IsAdmin)
	if err != nil {
		return nil, err
	}

	log.Info().Str("userID", u.ID).Str("email", u.Email).Msg("Creating user")
	return f.store.Users().Create(ctx, u)
}

// GetUser retrieves a user by id, or (nil, nil) when absent.
func (f *Facade) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return f.store.Users().Get(ctx, userID)
}

// GetUserByEmail retrieves a user by normalized email, or (nil, nil)
// when absent.
func (f *Facade) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return f.store.Users().GetByEmail(ctx, model.NormalizeEmail(email))
}

// ListUsers returns all users in insertion order.
func (f *Facade) ListUsers(ctx context.Context) ([]*model.User, error) {
	return f.store.Users().List(ctx)
}

// UpdateUser applies a partial field-set to an existing user. It
// returns (nil, nil) when the user does not exist. Changing the email
// to one another user already owns is a ConflictError.
func (f *Facade) UpdateUser(ctx context.Context, userID string, fields map[string]any) (*model.User, error) {
	u, err := f.store.Users().Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}

	if v, ok := fields["email"]; ok {
		if email, ok := v.(string); ok && model.NormalizeEmail(email) != u.Email {
			other, err := f.store.Users().GetByEmail(ctx, model.NormalizeEmail(email))
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != userID {
				return nil, model.NewConflictError("email", "email already exists for another user")
			}
		}
	}

	if err := f.store.Users().Update(ctx, userID, fields); err != nil {
		return nil, err
	}
	return f.store.Users().Get(ctx, userID)
}

// DeleteUser removes a user and reports whether a deletion occurred.
// Owned places and authored reviews are left in place; the core does
// not cascade.
func (f *Facade) DeleteUser(ctx context.Context, userID string) (bool, error) {
	u, err := f.store.Users().Get(ctx, userID)
	if err != nil {
		return false, err
	}
	if u == nil {
		return false, nil
	}
	log.Info().Str("userID", userID).Msg("Deleting user")
	if err := f.store.Users().Delete(ctx, userID); err != nil {
		return false, err
	}
	return true, nil
}
