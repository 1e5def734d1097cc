package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/dto"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/models"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/store"
)

type AppointmentService struct {
	store *store.Store
}

func NewAppointmentService(st *store.Store) *AppointmentService {
	return &AppointmentService{store: st}
}

// Create books an appointment for the referenced user. The end time is not checked
// against the start time.
func (s *AppointmentService) Create(ctx context.Context, req dto.CreateAppointmentRequest) (*models.Appointment, error) {
	if verrs := dto.Validate(&req); verrs != nil {
		return nil, verrs
	}
	// Both parse: the isodatetime tag already checked them.
	start, _ := dto.ParseTimestamp(req.StartTime)
	end, _ := dto.ParseTimestamp(req.EndTime)

	user, err := s.store.ResolveUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	appt := &models.Appointment{
		UserID:        user.ID,
		Dermatologist: req.Dermatologist,
		Location:      req.Location,
		StartTime:     start.UTC(),
		EndTime:       end.UTC(),
		Notes:         req.Notes,
	}
	if err := s.store.CreateAppointment(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// List returns appointments by start time. An empty userRef lists everyone's; a
// reference that resolves to nobody yields an empty list rather than an error.
func (s *AppointmentService) List(ctx context.Context, userRef string) ([]models.Appointment, error) {
	if userRef == "" {
		return s.store.ListAppointments(ctx, nil)
	}
	user, err := s.store.ResolveUser(ctx, userRef)
	if errors.Is(err, store.ErrNotFound) {
		return []models.Appointment{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	return s.store.ListAppointments(ctx, &user.ID)
}
