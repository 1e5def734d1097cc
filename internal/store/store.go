package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// Store is the typed persistence gateway over a GORM handle. It owns no connection
// lifecycle; the handle is opened and closed by the caller.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for health checks and migrations.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// --- users ---

func (s *Store) FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// ResolveUser maps a user reference to a stored user. The demo alias resolves to the
// seeded demo account; anything else must be a UUID of an existing user.
func (s *Store) ResolveUser(ctx context.Context, ref string) (*models.User, error) {
	if ref == models.DemoUserAlias {
		return s.FindUserByEmail(ctx, models.DemoUserEmail)
	}
	id, err := uuid.Parse(ref)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.FindUserByID(ctx, id)
}

// --- analyses ---

func (s *Store) CreateSkinAnalysis(ctx context.Context, a *models.SkinAnalysis) error {
	if err := s.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("create skin analysis: %w", err)
	}
	return nil
}

// ListSkinAnalyses returns a user's analyses, newest first.
func (s *Store) ListSkinAnalyses(ctx context.Context, userID uuid.UUID) ([]models.SkinAnalysis, error) {
	analyses := make([]models.SkinAnalysis, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&analyses).Error
	if err != nil {
		return nil, fmt.Errorf("list skin analyses: %w", err)
	}
	return analyses, nil
}

// --- appointments ---

func (s *Store) CreateAppointment(ctx context.Context, a *models.Appointment) error {
	if err := s.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

// ListAppointments returns appointments ordered by start time. A nil userID lists all of them.
func (s *Store) ListAppointments(ctx context.Context, userID *uuid.UUID) ([]models.Appointment, error) {
	appts := make([]models.Appointment, 0)
	q := s.db.WithContext(ctx).Model(&models.Appointment{})
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	if err := q.Order("start_time ASC").Find(&appts).Error; err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
