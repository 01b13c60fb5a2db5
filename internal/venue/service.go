package venue

import (
	"context"
	"strings"
)

type CreateRequest struct {
	OwnerID     string
	Name        string
	Address     string
	Description string
	Longitude   float64
	Latitude    float64
}

type UpdateRequest struct {
	Name        *string
	Address     *string
	Description *string
	Longitude   *float64
	Latitude    *float64
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Venue, error)
	GetByID(ctx context.Context, id string) (*Venue, error)
	List(ctx context.Context, filter Filter) ([]*Venue, int, error)
	Update(ctx context.Context, id string, req UpdateRequest, actorID string, isSysAdmin bool) (*Venue, error)
	Delete(ctx context.Context, id string, actorID string, isSysAdmin bool) error

	// IsOwner reports whether the user owns the venue.
	IsOwner(ctx context.Context, venueID string, userID string) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validateGeo(longitude, latitude float64) error {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return ErrInvalidGeo
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Venue, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if err := validateGeo(req.Longitude, req.Latitude); err != nil {
		return nil, err
	}

	v := &Venue{
		OwnerID:     req.OwnerID,
		Name:        strings.TrimSpace(req.Name),
		Address:     req.Address,
		Description: req.Description,
		Longitude:   req.Longitude,
		Latitude:    req.Latitude,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Venue, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Venue, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, actorID string, isSysAdmin bool) (*Venue, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isSysAdmin && v.OwnerID != actorID {
		return nil, ErrPermissionDenied
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		v.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		v.Address = *req.Address
	}
	if req.Description != nil {
		v.Description = *req.Description
	}
	if req.Longitude != nil {
		v.Longitude = *req.Longitude
	}
	if req.Latitude != nil {
		v.Latitude = *req.Latitude
	}
	if err := validateGeo(v.Longitude, v.Latitude); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) Delete(ctx context.Context, id string, actorID string, isSysAdmin bool) error {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isSysAdmin && v.OwnerID != actorID {
		return ErrPermissionDenied
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) IsOwner(ctx context.Context, venueID string, userID string) (bool, error) {
	v, err := s.repo.GetByID(ctx, venueID)
	if err != nil {
		return false, err
	}
	return v.OwnerID == userID, nil
}
