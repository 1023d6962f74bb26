package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission lifecycle. Transitions only leave StatusPending; accepted and
// rejected are terminal.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// NameSubmission is a user-contributed name awaiting review. The owner may
// edit or delete it only while pending; a reviewer settles it exactly once.
type NameSubmission struct {
	ID             uuid.UUID      `gorm:"type:uuid;primarykey;default:(gen_random_uuid())" json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name           string         `gorm:"size:100;not null" json:"name"`
	Meaning        string         `gorm:"type:text;not null" json:"meaning"`
	Pronunciation  string         `gorm:"size:100" json:"pronunciation"`
	Gender         string         `gorm:"size:10" json:"gender"`
	Category       string         `gorm:"size:50" json:"category"`
	OriginStory    string         `gorm:"type:text" json:"origin_story"`
	RelatedProverb string         `gorm:"type:text" json:"related_proverb"`
	Status         string         `gorm:"size:20;not null;default:'pending';index" json:"status"`
	ReviewerNotes  *string        `gorm:"type:text" json:"reviewer_notes,omitempty"`
	ReviewedBy     *uuid.UUID     `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt     *time.Time     `json:"reviewed_at,omitempty"`
}

func (NameSubmission) TableName() string {
	return "name_submissions"
}

func (s *NameSubmission) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// SubmissionFilters narrows moderation listings.
type SubmissionFilters struct {
	Status string `json:"status,omitempty"`
	UserID string `json:"user_id,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}
