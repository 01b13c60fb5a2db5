package pricing

import (
	"context"
	"errors"
	"time"

	"github.com/openfield/field-booking-backend/internal/field"
	"github.com/openfield/field-booking-backend/internal/schedule"
	"github.com/openfield/field-booking-backend/internal/venue"
)

// anchorDate gives a fixed reference date for clock-only overlap checks.
func anchorDate() time.Time {
	return time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
}

type CreateRequest struct {
	FieldID      string
	DayType      string
	StartTime    string
	EndTime      string
	PricePerHour int64
}

type UpdateRequest struct {
	DayType      *string
	StartTime    *string
	EndTime      *string
	PricePerHour *int64
}

type Service interface {
	Create(ctx context.Context, req CreateRequest, actorID string, isSysAdmin bool) (*PriceTier, error)
	GetByID(ctx context.Context, id string) (*PriceTier, error)
	ListByField(ctx context.Context, fieldID string) ([]*PriceTier, error)
	Update(ctx context.Context, id string, req UpdateRequest, actorID string, isSysAdmin bool) (*PriceTier, error)
	Delete(ctx context.Context, id string, actorID string, isSysAdmin bool) error
}

type service struct {
	repo         Repository
	fieldService field.Service
	venueService venue.Service
}

func NewService(repo Repository, fieldService field.Service, venueService venue.Service) Service {
	return &service{
		repo:         repo,
		fieldService: fieldService,
		venueService: venueService,
	}
}

// canManageField checks whether the actor owns the venue the field belongs to.
func (s *service) canManageField(ctx context.Context, fieldID, actorID string, isSysAdmin bool) error {
	f, err := s.fieldService.GetByID(ctx, fieldID)
	if err != nil {
		if errors.Is(err, field.ErrNotFound) {
			return ErrFieldNotFound
		}
		return err
	}
	if isSysAdmin {
		return nil
	}
	isOwner, err := s.venueService.IsOwner(ctx, f.VenueID, actorID)
	if err != nil {
		return err
	}
	if !isOwner {
		return venue.ErrPermissionDenied
	}
	return nil
}

// validateTier checks day type, clock format and ordering, and price sign.
func validateTier(t *PriceTier) error {
	if t.DayType != schedule.DayTypeWeekday && t.DayType != schedule.DayTypeWeekend {
		return ErrInvalidDayType
	}
	if t.PricePerHour < 0 {
		return ErrInvalidPrice
	}
	start, err := schedule.ParseClock(t.StartTime)
	if err != nil {
		return err
	}
	end, err := schedule.ParseClock(t.EndTime)
	if err != nil {
		return err
	}
	if !start.Before(end) {
		return schedule.ErrInvalidInterval
	}
	return nil
}

// assertNoOverlap rejects a tier whose time range overlaps an existing tier
// of the same day type. Non-overlap is enforced at write time so that
// resolution-time overlap failures indicate configuration drift, not normal
// operation.
func (s *service) assertNoOverlap(ctx context.Context, t *PriceTier, excludeID string) error {
	existing, err := s.repo.ListByField(ctx, t.FieldID)
	if err != nil {
		return err
	}

	// Anchor on an arbitrary date; only the clock components matter.
	date := anchorDate()
	candidate, err := schedule.ClockIntervalOn(date, t.StartTime, t.EndTime)
	if err != nil {
		return err
	}

	for _, other := range existing {
		if other.ID == excludeID || other.DayType != t.DayType {
			continue
		}
		otherIv, err := other.IntervalOn(date)
		if err != nil {
			return err
		}
		if candidate.Overlaps(otherIv) {
			return ErrOverlappingTiers
		}
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest, actorID string, isSysAdmin bool) (*PriceTier, error) {
	if err := s.canManageField(ctx, req.FieldID, actorID, isSysAdmin); err != nil {
		return nil, err
	}

	tier := &PriceTier{
		FieldID:      req.FieldID,
		DayType:      schedule.DayType(req.DayType),
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		PricePerHour: req.PricePerHour,
	}

	if err := validateTier(tier); err != nil {
		return nil, err
	}
	if err := s.assertNoOverlap(ctx, tier, ""); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, tier); err != nil {
		return nil, err
	}
	return tier, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*PriceTier, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByField(ctx context.Context, fieldID string) ([]*PriceTier, error) {
	if _, err := s.fieldService.GetByID(ctx, fieldID); err != nil {
		if errors.Is(err, field.ErrNotFound) {
			return nil, ErrFieldNotFound
		}
		return nil, err
	}
	return s.repo.ListByField(ctx, fieldID)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, actorID string, isSysAdmin bool) (*PriceTier, error) {
	tier, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.canManageField(ctx, tier.FieldID, actorID, isSysAdmin); err != nil {
		return nil, err
	}

	if req.DayType != nil {
		tier.DayType = schedule.DayType(*req.DayType)
	}
	if req.StartTime != nil {
		tier.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		tier.EndTime = *req.EndTime
	}
	if req.PricePerHour != nil {
		tier.PricePerHour = *req.PricePerHour
	}

	if err := validateTier(tier); err != nil {
		return nil, err
	}
	if err := s.assertNoOverlap(ctx, tier, tier.ID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, tier); err != nil {
		return nil, err
	}
	return tier, nil
}

func (s *service) Delete(ctx context.Context, id string, actorID string, isSysAdmin bool) error {
	tier, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.canManageField(ctx, tier.FieldID, actorID, isSysAdmin); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
