package booking

import (
	"context"
	"errors"
	"time"

	"github.com/openfield/field-booking-backend/internal/field"
	"github.com/openfield/field-booking-backend/internal/pricing"
	"github.com/openfield/field-booking-backend/internal/schedule"
	"github.com/openfield/field-booking-backend/internal/venue"
)

type CreateRequest struct {
	UserID    string
	FieldID   string
	StartTime time.Time
	EndTime   time.Time
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	Confirm(ctx context.Context, id string, actorID string, isSysAdmin bool) (*Booking, error)
	Cancel(ctx context.Context, id string, actorID string, isSysAdmin bool) (*Booking, error)
	Complete(ctx context.Context, id string, actorID string, isSysAdmin bool) (*Booking, error)

	// Availability builds the per-slot grid for a field on a date.
	Availability(ctx context.Context, fieldID string, date time.Time, granularity time.Duration) ([]AvailabilitySlot, error)
}

type service struct {
	repo           Repository
	fieldService   field.Service
	venueService   venue.Service
	pricingService pricing.Service

	now func() time.Time
}

func NewService(repo Repository, fieldService field.Service, venueService venue.Service, pricingService pricing.Service) Service {
	return &service{
		repo:           repo,
		fieldService:   fieldService,
		venueService:   venueService,
		pricingService: pricingService,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// isVenueManager checks if the user owns the venue that owns the field.
func (s *service) isVenueManager(ctx context.Context, fieldID string, userID string) (bool, error) {
	f, err := s.fieldService.GetByID(ctx, fieldID)
	if err != nil {
		return false, err
	}
	return s.venueService.IsOwner(ctx, f.VenueID, userID)
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	// 1. Validate the time range against the evaluation instant.
	candidate, err := schedule.NewInterval(req.StartTime, req.EndTime)
	if err != nil {
		return nil, ErrInvalidTimeRange
	}
	if err := AssertBookable(candidate, s.now()); err != nil {
		return nil, err
	}

	// 2. Validate the field exists.
	f, err := s.fieldService.GetByID(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, field.ErrNotFound) {
			return nil, ErrFieldNotFound
		}
		return nil, err
	}

	// 3. The booking must fall inside the field's operating window.
	window, err := schedule.ClockIntervalOn(candidate.Start, f.OpenTime, f.CloseTime)
	if err != nil {
		return nil, err
	}
	if candidate.Start.Before(window.Start) || candidate.End.After(window.End) {
		return nil, ErrOutsideOperatingHours
	}

	// 4. Price the interval; gaps in tier coverage reject the booking.
	tiers, err := s.pricingService.ListByField(ctx, req.FieldID)
	if err != nil {
		return nil, err
	}
	quote, err := pricing.Resolve(tiers, schedule.ClassifyDate(candidate.Start), candidate)
	if err != nil {
		return nil, err
	}

	// 5. Advisory conflict check on current data for a fast rejection.
	active, err := s.repo.ListActiveByFieldAndDay(ctx, req.FieldID, candidate.Start, candidate.End)
	if err != nil {
		return nil, err
	}
	if HasConflict(active, req.FieldID, candidate) {
		return nil, ErrTimeConflict
	}

	// 6. Insert. The repository re-checks overlaps under a per-field lock,
	// so a concurrent creation between steps 5 and 6 still fails cleanly.
	b := &Booking{
		FieldID:    req.FieldID,
		UserID:     req.UserID,
		StartTime:  candidate.Start,
		EndTime:    candidate.End,
		Status:     StatusPending,
		TotalPrice: quote.Total,
	}
	if err := s.repo.CreateWithConflictCheck(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

// transition loads the booking, checks permission, applies the status machine
// and persists the result.
func (s *service) transition(ctx context.Context, id string, to Status, actorID string, isSysAdmin bool, ownerMayAct bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed := isSysAdmin
	if !allowed && ownerMayAct && b.UserID == actorID {
		allowed = true
	}
	if !allowed {
		isMgr, err := s.isVenueManager(ctx, b.FieldID, actorID)
		if err != nil {
			return nil, err
		}
		allowed = isMgr
	}
	if !allowed {
		return nil, ErrPermissionDenied
	}

	if err := b.Transition(to); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, b.ID, b.Status); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Confirm(ctx context.Context, id string, actorID string, isSysAdmin bool) (*Booking, error) {
	// Only the venue manager (or sysadmin) confirms; the booker waits.
	return s.transition(ctx, id, StatusConfirmed, actorID, isSysAdmin, false)
}

func (s *service) Cancel(ctx context.Context, id string, actorID string, isSysAdmin bool) (*Booking, error) {
	// The booker may cancel their own booking.
	return s.transition(ctx, id, StatusCancelled, actorID, isSysAdmin, true)
}

func (s *service) Complete(ctx context.Context, id string, actorID string, isSysAdmin bool) (*Booking, error) {
	return s.transition(ctx, id, StatusCompleted, actorID, isSysAdmin, false)
}

func (s *service) Availability(ctx context.Context, fieldID string, date time.Time, granularity time.Duration) ([]AvailabilitySlot, error) {
	f, err := s.fieldService.GetByID(ctx, fieldID)
	if err != nil {
		if errors.Is(err, field.ErrNotFound) {
			return nil, ErrFieldNotFound
		}
		return nil, err
	}

	tiers, err := s.pricingService.ListByField(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	bookings, err := s.repo.ListActiveByFieldAndDay(ctx, fieldID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return BuildGrid(date, f.OpenTime, f.CloseTime, granularity, fieldID, tiers, bookings)
}
