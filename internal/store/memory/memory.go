// Package memory provides the in-memory store driver. Entities live in
// per-type tables for the lifetime of the process; there is no
// persistence and no transactional coupling between tables.
package memory

import (
	"context"

	"github.com/stayhub/stayhub/internal/model"
	"github.com/stayhub/stayhub/internal/store"
)

// Store implements store.Store backed by process memory.
type Store struct {
	users     *table[model.User]
	places    *table[model.Place]
	reviews   *table[model.Review]
	amenities *table[model.Amenity]
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		users:     newTable((*model.User).Clone),
		places:    newTable((*model.Place).Clone),
		reviews:   newTable((*model.Review).Clone),
		amenities: newTable((*model.Amenity).Clone),
	}
}

func (s *Store) Users() store.Users         { return &users{t: s.users} }
func (s *Store) Places() store.Places       { return &places{t: s.places} }
func (s *Store) Reviews() store.Reviews     { return &reviews{t: s.reviews} }
func (s *Store) Amenities() store.Amenities { return &amenities{t: s.amenities} }

type users struct {
	t *table[model.User]
}

func (r *users) Create(_ context.Context, u *model.User) (*model.User, error) {
	r.t.add(u.ID, u)
	return u, nil
}

func (r *users) Get(_ context.Context, id string) (*model.User, error) {
	return r.t.get(id), nil
}

func (r *users) GetByEmail(_ context.Context, email string) (*model.User, error) {
	return r.t.first(func(u *model.User) bool { return u.Email == email }), nil
}

func (r *users) List(_ context.Context) ([]*model.User, error) {
	return r.t.list(), nil
}

func (r *users) Update(_ context.Context, id string, fields map[string]any) error {
	r.t.mutate(id, func(u *model.User) { u.Apply(fields) })
	return nil
}

func (r *users) Delete(_ context.Context, id string) error {
	r.t.delete(id)
	return nil
}

func (r *users) AddPlace(_ context.Context, userID, placeID string) error {
	r.t.mutate(userID, func(u *model.User) { u.AddPlace(placeID) })
	return nil
}

func (r *users) AddReview(_ context.Context, userID, reviewID string) error {
	r.t.mutate(userID, func(u *model.User) { u.AddReview(reviewID) })
	return nil
}

type places struct {
	t *table[model.Place]
}

func (r *places) Create(_ context.Context, p *model.Place) (*model.Place, error) {
	r.t.add(p.ID, p)
	return p, nil
}

func (r *places) Get(_ context.Context, id string) (*model.Place, error) {
	return r.t.get(id), nil
}

func (r *places) List(_ context.Context) ([]*model.Place, error) {
	return r.t.list(), nil
}

func (r *places) Update(_ context.Context, id string, fields map[string]any) error {
	r.t.mutate(id, func(p *model.Place) { p.Apply(fields) })
	return nil
}

func (r *places) Delete(_ context.Context, id string) error {
	r.t.delete(id)
	return nil
}

func (r *places) AddReview(_ context.Context, placeID, reviewID string) error {
	r.t.mutate(placeID, func(p *model.Place) { p.AddReview(reviewID) })
	return nil
}

func (r *places) AddAmenity(_ context.Context, placeID, amenityID string) error {
	r.t.mutate(placeID, func(p *model.Place) { p.AddAmenity(amenityID) })
	return nil
}

func (r *places) RemoveAmenity(_ context.Context, placeID, amenityID string) error {
	r.t.mutate(placeID, func(p *model.Place) { p.RemoveAmenity(amenityID) })
	return nil
}

type reviews struct {
	t *table[model.Review]
}

func (r *reviews) Create(_ context.Context, rv *model.Review) (*model.Review, error) {
	r.t.add(rv.ID, rv)
	return rv, nil
}

func (r *reviews) Get(_ context.Context, id string) (*model.Review, error) {
	return r.t.get(id), nil
}

func (r *reviews) List(_ context.Context) ([]*model.Review, error) {
	return r.t.list(), nil
}

func (r *reviews) Update(_ context.Context, id string, fields map[string]any) error {
	r.t.mutate(id, func(rv *model.Review) { rv.Apply(fields) })
	return nil
}

func (r *reviews) Delete(_ context.Context, id string) error {
	r.t.delete(id)
	return nil
}

type amenities struct {
	t *table[model.Amenity]
}

func (r *amenities) Create(_ context.Context, a *model.Amenity) (*model.Amenity, error) {
	r.t.add(a.ID, a)
	return a, nil
}

func (r *amenities) Get(_ context.Context, id string) (*model.Amenity, error) {
	return r.t.get(id), nil
}

func (r *amenities) GetByName(_ context.Context, name string) (*model.Amenity, error) {
	return r.t.first(func(a *model.Amenity) bool { return a.Name == name }), nil
}

func (r *amenities) List(_ context.Context) ([]*model.Amenity, error) {
	return r.t.list(), nil
}

func (r *amenities) Update(_ context.Context, id string, fields map[string]any) error {
	r.t.mutate(id, func(a *model.Amenity) { a.Apply(fields) })
	return nil
}

func (r *amenities) Delete(_ context.Context, id string) error {
	r.t.delete(id)
	return nil
}
