package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/ojonugwa/igala-names/backend/internal/models"
	"github.com/ojonugwa/igala-names/backend/internal/types"
)

// IAuthService defines the interface for session operations
type IAuthService interface {
	Register(ctx context.Context, email, password, firstName, lastName string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	GenerateToken(userID uuid.UUID, email string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error)
}

// IRoleService defines the interface for role resolution and assignment
type IRoleService interface {
	RoleOf(ctx context.Context, userID uuid.UUID) (string, error)
	Assign(ctx context.Context, userID uuid.UUID, role string) error
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
	CanReview(ctx context.Context, userID uuid.UUID) (bool, error)
}

// INameActionService defines the interface for like/favorite state
type INameActionService interface {
	Status(ctx context.Context, userID uuid.UUID, nameID string) (*types.ActionStatus, error)
	ToggleLike(ctx context.Context, userID uuid.UUID, nameID string) (bool, error)
	ToggleFavorite(ctx context.Context, userID uuid.UUID, nameID string) (bool, error)
	Unlike(ctx context.Context, userID uuid.UUID, nameID string) error
	Unfavorite(ctx context.Context, userID uuid.UUID, nameID string) error
	LikedNameIDs(ctx context.Context, userID uuid.UUID) ([]string, error)
	FavoriteNameIDs(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// ISubmissionService defines the interface for the contribution queue
type ISubmissionService interface {
	Create(ctx context.Context, userID uuid.UUID, req *types.CreateSubmissionRequest) (*models.NameSubmission, error)
	Get(ctx context.Context, id uuid.UUID) (*models.NameSubmission, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *types.UpdateSubmissionRequest) (*models.NameSubmission, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]*models.NameSubmission, error)
	ListAll(ctx context.Context, filters *models.SubmissionFilters) ([]*models.NameSubmission, error)
	Review(ctx context.Context, reviewerID, id uuid.UUID, decision, notes string) (*models.NameSubmission, error)
	AdminDelete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (map[string]int64, error)
}

// ReviewNotifier delivers the review outcome to the submitter.
type ReviewNotifier interface {
	SendReviewNotification(submission *models.NameSubmission, recipientEmail string) error
}
