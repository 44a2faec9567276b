package model

import (
	"regexp"
	"slices"
	"strings"
)

var emailRx = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// User is an account that can own places and author reviews. Places and
// Reviews hold ids of the owned/authored entities; the records
// themselves live in their own tables.
type User struct {
	Entity
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	IsAdmin   bool     `json:"is_admin"`
	Places    []string `json:"places"`
	Reviews   []string `json:"reviews"`
}

// NewUser validates all fields and returns a fully formed User, or a
// ValidationError naming the first offending field. The email is
// normalized to lowercase and trimmed of surrounding whitespace.
func NewUser(firstName, lastName, email string, isAdmin bool) (*User, error) {
	first, err := validateName("first_name", firstName)
	if err != nil {
		return nil, err
	}
	last, err := validateName("last_name", lastName)
	if err != nil {
		return nil, err
	}
	addr, err := validateEmail(email)
	if err != nil {
		return nil, err
	}
	return &User{
		Entity:    newEntity(),
		FirstName: first,
		LastName:  last,
		Email:     addr,
		IsAdmin:   isAdmin,
		Places:    []string{},
		Reviews:   []string{},
	}, nil
}

func validateName(field, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", NewValidationError(field, "is required")
	}
	if len(name) > 50 {
		return "", NewValidationError(field, "must not exceed 50 characters")
	}
	return name, nil
}

func validateEmail(email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", NewValidationError("email", "is required")
	}
	addr := NormalizeEmail(email)
	if !emailRx.MatchString(addr) {
		return "", NewValidationError("email", "invalid email format")
	}
	return addr, nil
}

// NormalizeEmail lowercases and trims an address the same way the User
// constructor stores it, so uniqueness checks compare like with like.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Apply assigns the known fields present in the partial update and
// re-stamps UpdatedAt. Unknown keys are silently ignored. Constructor
// validation is deliberately not re-run here; the source system behaves
// the same way.
func (u *User) Apply(fields map[string]any) {
	for k, v := range fields {
		switch k {
		case "first_name":
			if s, ok := v.(string); ok {
				u.FirstName = s
			}
		case "last_name":
			if s, ok := v.(string); ok {
				u.LastName = s
			}
		case "email":
			if s, ok := v.(string); ok {
				// Stored normalized so uniqueness checks and lookups
				// keep comparing like with like after updates.
				u.Email = NormalizeEmail(s)
			}
		case "is_admin":
			if b, ok := v.(bool); ok {
				u.IsAdmin = b
			}
		}
	}
	u.Touch()
}

// Clone returns a copy sharing no mutable state with the receiver.
func (u *User) Clone() *User {
	c := *u
	c.Places = slices.Clone(u.Places)
	c.Reviews = slices.Clone(u.Reviews)
	return &c
}

// AddPlace records ownership of a place. Adding an id that is already
// present is a no-op.
func (u *User) AddPlace(placeID string) {
	if !slices.Contains(u.Places, placeID) {
		u.Places = append(u.Places, placeID)
	}
}

// AddReview records authorship of a review. Adding an id that is
// already present is a no-op.
func (u *User) AddReview(reviewID string) {
	if !slices.Contains(u.Reviews, reviewID) {
		u.Reviews = append(u.Reviews, reviewID)
	}
}
