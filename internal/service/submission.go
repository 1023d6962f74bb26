package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ojonugwa/igala-names/backend/internal/models"
	"github.com/ojonugwa/igala-names/backend/internal/types"
)

// SubmissionService owns the contribution queue: creation by users, edits
// while pending, and the one-way review transition performed by moderators.
type SubmissionService struct {
	db       *gorm.DB
	notifier ReviewNotifier
}

func NewSubmissionService(db *gorm.DB, notifier ReviewNotifier) *SubmissionService {
	return &SubmissionService{
		db:       db,
		notifier: notifier,
	}
}

// Create persists a new pending submission for the given owner. Name and
// meaning are required after trimming; pronunciation defaults to the
// lowercase name wrapped in slashes.
func (s *SubmissionService) Create(ctx context.Context, userID uuid.UUID, req *types.CreateSubmissionRequest) (*models.NameSubmission, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}

	name := strings.TrimSpace(req.Name)
	meaning := strings.TrimSpace(req.Meaning)
	if name == "" || meaning == "" {
		return nil, fmt.Errorf("%w: name and meaning are required", ErrValidationFailed)
	}

	pronunciation := strings.TrimSpace(req.Pronunciation)
	if pronunciation == "" {
		pronunciation = "/" + strings.ToLower(name) + "/"
	}

	submission := models.NameSubmission{
		UserID:         userID,
		Name:           name,
		Meaning:        meaning,
		Pronunciation:  pronunciation,
		Gender:         req.Gender,
		Category:       req.Category,
		OriginStory:    strings.TrimSpace(req.OriginStory),
		RelatedProverb: strings.TrimSpace(req.RelatedProverb),
		Status:         models.StatusPending,
	}

	if err := s.db.WithContext(ctx).Create(&submission).Error; err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}
	return &submission, nil
}

// Get loads one submission.
func (s *SubmissionService) Get(ctx context.Context, id uuid.UUID) (*models.NameSubmission, error) {
	var submission models.NameSubmission
	if err := s.db.WithContext(ctx).First(&submission, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load submission: %w", err)
	}
	return &submission, nil
}

// Update patches an owned submission. Only the name fields are reachable;
// status and ownership cannot change through this path, and a settled
// submission rejects the edit outright.
func (s *SubmissionService) Update(ctx context.Context, userID, id uuid.UUID, req *types.UpdateSubmissionRequest) (*models.NameSubmission, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}

	submission, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if submission.UserID != userID {
		return nil, fmt.Errorf("%w: not the submission owner", ErrPermissionDenied)
	}
	if submission.Status != models.StatusPending {
		return nil, fmt.Errorf("%w: submission already %s", ErrPermissionDenied, submission.Status)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidationFailed)
		}
		updates["name"] = name
	}
	if req.Meaning != nil {
		meaning := strings.TrimSpace(*req.Meaning)
		if meaning == "" {
			return nil, fmt.Errorf("%w: meaning cannot be empty", ErrValidationFailed)
		}
		updates["meaning"] = meaning
	}
	if req.Pronunciation != nil {
		updates["pronunciation"] = strings.TrimSpace(*req.Pronunciation)
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.OriginStory != nil {
		updates["origin_story"] = strings.TrimSpace(*req.OriginStory)
	}
	if req.RelatedProverb != nil {
		updates["related_proverb"] = strings.TrimSpace(*req.RelatedProverb)
	}

	if len(updates) > 0 {
		// the status guard repeats inside the UPDATE so a concurrent review
		// cannot slip an edit onto a settled submission
		result := s.db.WithContext(ctx).Model(&models.NameSubmission{}).
			Where("id = ? AND status = ?", id, models.StatusPending).
			Updates(updates)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update submission: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, fmt.Errorf("%w: submission is no longer pending", ErrPermissionDenied)
		}
	}
	return s.Get(ctx, id)
}

// Delete removes an owned submission while it is still pending.
func (s *SubmissionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrAuthenticationRequired
	}

	submission, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if submission.UserID != userID {
		return fmt.Errorf("%w: not the submission owner", ErrPermissionDenied)
	}
	if submission.Status != models.StatusPending {
		return fmt.Errorf("%w: submission already %s", ErrPermissionDenied, submission.Status)
	}

	if err := s.db.WithContext(ctx).Delete(&models.NameSubmission{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}
	return nil
}

// ListByOwner returns the owner's submissions, newest first.
func (s *SubmissionService) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*models.NameSubmission, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}
	var submissions []*models.NameSubmission
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&submissions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, nil
}

// ListAll returns submissions across all owners for the moderation console,
// newest first, optionally narrowed by status or owner.
func (s *SubmissionService) ListAll(ctx context.Context, filters *models.SubmissionFilters) ([]*models.NameSubmission, error) {
	query := s.db.WithContext(ctx)

	if filters != nil {
		if filters.Status != "" {
			query = query.Where("status = ?", filters.Status)
		}
		if filters.UserID != "" {
			if userUUID, err := uuid.Parse(filters.UserID); err == nil {
				query = query.Where("user_id = ?", userUUID)
			}
		}
		if filters.Limit > 0 {
			query = query.Limit(filters.Limit)
		}
		if filters.Offset > 0 {
			query = query.Offset(filters.Offset)
		}
	}

	var submissions []*models.NameSubmission
	if err := query.Order("created_at DESC").Find(&submissions).Error; err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, nil
}

// Review settles a pending submission. The decision, optional notes,
// reviewer identity, and review timestamp land in one UPDATE guarded by the
// pending status, so a half-reviewed row is never observable and a second
// review of the same submission fails as a state violation.
func (s *SubmissionService) Review(ctx context.Context, reviewerID, id uuid.UUID, decision, notes string) (*models.NameSubmission, error) {
	if reviewerID == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}
	if decision != models.StatusAccepted && decision != models.StatusRejected {
		return nil, fmt.Errorf("%w: decision must be accepted or rejected", ErrValidationFailed)
	}

	now := time.Now().UTC()
	updates := map[string]interface{}{
		"status":      decision,
		"reviewed_by": reviewerID,
		"reviewed_at": now,
	}
	if notes != "" {
		updates["reviewer_notes"] = notes
	}

	result := s.db.WithContext(ctx).Model(&models.NameSubmission{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to review submission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// distinguish a missing row from one already settled
		if _, err := s.Get(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrInvalidTransition
	}

	submission, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		// notification is best-effort and never fails the review
		var owner models.User
		if err := s.db.WithContext(ctx).First(&owner, "id = ?", submission.UserID).Error; err != nil {
			log.Printf("could not load submitter for review notification: %v", err)
		} else {
			sub := *submission
			go func() {
				if err := s.notifier.SendReviewNotification(&sub, owner.Email); err != nil {
					log.Printf("failed to send review notification for %s: %v", sub.ID, err)
				}
			}()
		}
	}
	return submission, nil
}

// AdminDelete removes a submission permanently regardless of status, the
// moderation override.
func (s *SubmissionService) AdminDelete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Unscoped().Delete(&models.NameSubmission{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete submission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats aggregates the admin dashboard counters.
func (s *SubmissionService) Stats(ctx context.Context) (map[string]int64, error) {
	counts := map[string]int64{
		models.StatusPending:  0,
		models.StatusAccepted: 0,
		models.StatusRejected: 0,
	}

	rows := []struct {
		Status string
		Count  int64
	}{}
	err := s.db.WithContext(ctx).Model(&models.NameSubmission{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate submissions: %w", err)
	}
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
