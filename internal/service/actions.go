package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ojonugwa/igala-names/backend/internal/models"
	"github.com/ojonugwa/igala-names/backend/internal/types"
)

// NameActionService reflects and mutates the per-user like/favorite records
// for catalog names. Toggles on the same (user, name) pair are serialized
// behind a keyed lock so two racing toggles cannot leave the stored state
// out of step with what the caller observed; the two flags are independent
// and never block each other.
type NameActionService struct {
	db *gorm.DB

	mu    sync.Mutex
	locks map[string]*pairLock
}

// pairLock is reference-counted so the map holds only pairs with a toggle
// in flight, not every pair ever touched.
type pairLock struct {
	mu   sync.Mutex
	refs int
}

func NewNameActionService(db *gorm.DB) *NameActionService {
	return &NameActionService{
		db:    db,
		locks: make(map[string]*pairLock),
	}
}

func (s *NameActionService) acquirePair(kind string, userID uuid.UUID, nameID string) (string, *pairLock) {
	key := kind + ":" + userID.String() + ":" + nameID
	s.mu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &pairLock{}
		s.locks[key] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return key, l
}

func (s *NameActionService) releasePair(key string, l *pairLock) {
	l.mu.Unlock()
	s.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(s.locks, key)
	}
	s.mu.Unlock()
}

// Status runs the like and favorite existence checks concurrently and
// reports both flags.
func (s *NameActionService) Status(ctx context.Context, userID uuid.UUID, nameID string) (*types.ActionStatus, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}

	var (
		wg              sync.WaitGroup
		liked, favd     bool
		likeErr, favErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		liked, likeErr = s.exists(ctx, &models.NameLike{}, userID, nameID)
	}()
	go func() {
		defer wg.Done()
		favd, favErr = s.exists(ctx, &models.NameFavorite{}, userID, nameID)
	}()
	wg.Wait()

	if likeErr != nil {
		return nil, likeErr
	}
	if favErr != nil {
		return nil, favErr
	}
	return &types.ActionStatus{Liked: liked, Favorited: favd}, nil
}

// ToggleLike flips the like flag for (user, name) and returns the new
// value. A store failure leaves the record as it was.
func (s *NameActionService) ToggleLike(ctx context.Context, userID uuid.UUID, nameID string) (bool, error) {
	if userID == uuid.Nil {
		return false, ErrAuthenticationRequired
	}

	key, lock := s.acquirePair("like", userID, nameID)
	defer s.releasePair(key, lock)

	exists, err := s.exists(ctx, &models.NameLike{}, userID, nameID)
	if err != nil {
		return false, err
	}

	if exists {
		err := s.db.WithContext(ctx).
			Where("user_id = ? AND name_id = ?", userID, nameID).
			Delete(&models.NameLike{}).Error
		if err != nil {
			return true, fmt.Errorf("failed to remove like: %w", err)
		}
		return false, nil
	}

	if err := s.db.WithContext(ctx).Create(&models.NameLike{UserID: userID, NameID: nameID}).Error; err != nil {
		return false, fmt.Errorf("failed to create like: %w", err)
	}
	return true, nil
}

// ToggleFavorite flips the favorite flag for (user, name) and returns the
// new value.
func (s *NameActionService) ToggleFavorite(ctx context.Context, userID uuid.UUID, nameID string) (bool, error) {
	if userID == uuid.Nil {
		return false, ErrAuthenticationRequired
	}

	key, lock := s.acquirePair("favorite", userID, nameID)
	defer s.releasePair(key, lock)

	exists, err := s.exists(ctx, &models.NameFavorite{}, userID, nameID)
	if err != nil {
		return false, err
	}

	if exists {
		err := s.db.WithContext(ctx).
			Where("user_id = ? AND name_id = ?", userID, nameID).
			Delete(&models.NameFavorite{}).Error
		if err != nil {
			return true, fmt.Errorf("failed to remove favorite: %w", err)
		}
		return false, nil
	}

	if err := s.db.WithContext(ctx).Create(&models.NameFavorite{UserID: userID, NameID: nameID}).Error; err != nil {
		return false, fmt.Errorf("failed to create favorite: %w", err)
	}
	return true, nil
}

// Unlike removes a like without toggling, for the dashboard's remove
// buttons. Removing an absent record is a no-op.
func (s *NameActionService) Unlike(ctx context.Context, userID uuid.UUID, nameID string) error {
	if userID == uuid.Nil {
		return ErrAuthenticationRequired
	}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND name_id = ?", userID, nameID).
		Delete(&models.NameLike{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}
	return nil
}

// Unfavorite removes a favorite without toggling.
func (s *NameActionService) Unfavorite(ctx context.Context, userID uuid.UUID, nameID string) error {
	if userID == uuid.Nil {
		return ErrAuthenticationRequired
	}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND name_id = ?", userID, nameID).
		Delete(&models.NameFavorite{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

func (s *NameActionService) exists(ctx context.Context, model interface{}, userID uuid.UUID, nameID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(model).
		Where("user_id = ? AND name_id = ?", userID, nameID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check record: %w", err)
	}
	return count > 0, nil
}

// LikedNameIDs lists the ids of every name the user has liked, newest
// first.
func (s *NameActionService) LikedNameIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}
	var ids []string
	err := s.db.WithContext(ctx).Model(&models.NameLike{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("name_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}
	return ids, nil
}

// FavoriteNameIDs lists the ids of every name the user has favorited,
// newest first.
func (s *NameActionService) FavoriteNameIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}
	var ids []string
	err := s.db.WithContext(ctx).Model(&models.NameFavorite{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("name_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return ids, nil
}
