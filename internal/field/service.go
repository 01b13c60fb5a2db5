package field

import (
	"context"
	"strings"

	"github.com/openfield/field-booking-backend/internal/schedule"
	"github.com/openfield/field-booking-backend/internal/venue"
)

type CreateRequest struct {
	VenueID   string
	Name      string
	SportType string
	OpenTime  string
	CloseTime string
}

type UpdateRequest struct {
	Name      *string
	SportType *string
	OpenTime  *string
	CloseTime *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest, actorID string, isSysAdmin bool) (*Field, error)
	GetByID(ctx context.Context, id string) (*Field, error)
	List(ctx context.Context, filter Filter) ([]*Field, int, error)
	Update(ctx context.Context, id string, req UpdateRequest, actorID string, isSysAdmin bool) (*Field, error)
	Delete(ctx context.Context, id string, actorID string, isSysAdmin bool) error
}

type service struct {
	repo         Repository
	venueService venue.Service
}

func NewService(repo Repository, venueService venue.Service) Service {
	return &service{
		repo:         repo,
		venueService: venueService,
	}
}

func validSportType(t string) bool {
	for _, v := range ValidSportTypes {
		if t == v {
			return true
		}
	}
	return false
}

// validateOperatingWindow checks the HH:MM format and that open < close.
func validateOperatingWindow(openTime, closeTime string) error {
	open, err := schedule.ParseClock(openTime)
	if err != nil {
		return err
	}
	close, err := schedule.ParseClock(closeTime)
	if err != nil {
		return err
	}
	if !open.Before(close) {
		return ErrInvalidOperatingWindow
	}
	return nil
}

func (s *service) canManageVenue(ctx context.Context, venueID, actorID string, isSysAdmin bool) error {
	if isSysAdmin {
		// Still validate the venue exists.
		if _, err := s.venueService.GetByID(ctx, venueID); err != nil {
			return ErrInvalidVenue
		}
		return nil
	}
	isOwner, err := s.venueService.IsOwner(ctx, venueID, actorID)
	if err != nil {
		return ErrInvalidVenue
	}
	if !isOwner {
		return venue.ErrPermissionDenied
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest, actorID string, isSysAdmin bool) (*Field, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.VenueID == "" {
		return nil, ErrInvalidVenue
	}
	if !validSportType(req.SportType) {
		return nil, ErrInvalidSportType
	}
	if err := validateOperatingWindow(req.OpenTime, req.CloseTime); err != nil {
		return nil, err
	}
	if err := s.canManageVenue(ctx, req.VenueID, actorID, isSysAdmin); err != nil {
		return nil, err
	}

	f := &Field{
		VenueID:   req.VenueID,
		Name:      strings.TrimSpace(req.Name),
		SportType: req.SportType,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Field, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Field, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, actorID string, isSysAdmin bool) (*Field, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.canManageVenue(ctx, f.VenueID, actorID, isSysAdmin); err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		f.Name = strings.TrimSpace(*req.Name)
	}
	if req.SportType != nil {
		if !validSportType(*req.SportType) {
			return nil, ErrInvalidSportType
		}
		f.SportType = *req.SportType
	}
	if req.OpenTime != nil {
		f.OpenTime = *req.OpenTime
	}
	if req.CloseTime != nil {
		f.CloseTime = *req.CloseTime
	}
	if err := validateOperatingWindow(f.OpenTime, f.CloseTime); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) Delete(ctx context.Context, id string, actorID string, isSysAdmin bool) error {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.canManageVenue(ctx, f.VenueID, actorID, isSysAdmin); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
