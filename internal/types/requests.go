package types

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

// LoginRequest represents the request body for signing in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the session token issued on register/login
type AuthResponse struct {
	Token string `json:"token"`
}

// CreateSubmissionRequest represents the contribution form payload.
// Name and meaning are the only required fields; the rest default
// server-side.
type CreateSubmissionRequest struct {
	Name           string `json:"name"`
	Meaning        string `json:"meaning"`
	Pronunciation  string `json:"pronunciation"`
	Gender         string `json:"gender" binding:"omitempty,oneof=male female unisex"`
	Category       string `json:"category"`
	OriginStory    string `json:"origin_story"`
	RelatedProverb string `json:"related_proverb"`
}

// UpdateSubmissionRequest patches an owned pending submission. Status and
// ownership are not reachable through this type.
type UpdateSubmissionRequest struct {
	Name           *string `json:"name,omitempty"`
	Meaning        *string `json:"meaning,omitempty"`
	Pronunciation  *string `json:"pronunciation,omitempty"`
	Gender         *string `json:"gender,omitempty" binding:"omitempty,oneof=male female unisex"`
	Category       *string `json:"category,omitempty"`
	OriginStory    *string `json:"origin_story,omitempty"`
	RelatedProverb *string `json:"related_proverb,omitempty"`
}

// ReviewSubmissionRequest settles a pending submission.
type ReviewSubmissionRequest struct {
	Decision string `json:"decision" binding:"required,oneof=accepted rejected"`
	Notes    string `json:"notes"`
}

// UpdateProfileRequest represents a request to update the caller's profile
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// AssignRoleRequest reassigns a user's role
type AssignRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user reviewer admin"`
}

// CreateUserRequest lets an admin provision an account directly
type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Role      string `json:"role" binding:"omitempty,oneof=user reviewer admin"`
}

// UserWithRole is an admin listing row: a profile with its resolved role
type UserWithRole struct {
	UserID    uuid.UUID `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ActionStatus reports the caller's like/favorite flags for one name
type ActionStatus struct {
	Liked     bool `json:"liked"`
	Favorited bool `json:"favorited"`
}

// ToggleResponse reports the flag value after a toggle settles
type ToggleResponse struct {
	Active bool `json:"active"`
}

// AdminStats mirrors the admin dashboard cards
type AdminStats struct {
	TotalNames          int   `json:"total_names"`
	TotalUsers          int64 `json:"total_users"`
	PendingSubmissions  int64 `json:"pending_submissions"`
	AcceptedSubmissions int64 `json:"accepted_submissions"`
	RejectedSubmissions int64 `json:"rejected_submissions"`
}
