package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ojonugwa/igala-names/backend/internal/models"
)

// RoleService resolves and reassigns user roles. Roles live in their own
// table keyed uniquely by user id, so a user holds exactly one role at a
// time and falls back to "user" when no row exists.
type RoleService struct {
	db *gorm.DB
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{db: db}
}

// RoleOf returns the assigned role, defaulting to RoleUser.
func (s *RoleService) RoleOf(ctx context.Context, userID uuid.UUID) (string, error) {
	var record models.UserRole
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.RoleUser, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve role: %w", err)
	}
	return record.Role, nil
}

// Assign replaces the user's role. Upsert on the unique user_id key keeps
// reassignment a single atomic statement instead of delete-then-insert.
func (s *RoleService) Assign(ctx context.Context, userID uuid.UUID, role string) error {
	switch role {
	case models.RoleUser, models.RoleReviewer, models.RoleAdmin:
	default:
		return fmt.Errorf("%w: unknown role %q", ErrValidationFailed, role)
	}

	record := models.UserRole{UserID: userID, Role: role}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to assign role: %w", err)
	}
	return nil
}

// IsAdmin reports whether the user currently holds the admin role.
func (s *RoleService) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	role, err := s.RoleOf(ctx, userID)
	if err != nil {
		return false, err
	}
	return role == models.RoleAdmin, nil
}

// CanReview reports whether the user may settle submissions.
func (s *RoleService) CanReview(ctx context.Context, userID uuid.UUID) (bool, error) {
	role, err := s.RoleOf(ctx, userID)
	if err != nil {
		return false, err
	}
	return role == models.RoleReviewer || role == models.RoleAdmin, nil
}
