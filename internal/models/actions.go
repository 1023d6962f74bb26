package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NameLike records that a user liked a catalog name. Existence of the row
// is the boolean; the composite unique index enforces at most one per
// (user, name) pair.
type NameLike struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey;default:(gen_random_uuid())" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_likes_pair" json:"user_id"`
	NameID    string    `gorm:"size:100;not null;uniqueIndex:idx_user_likes_pair" json:"name_id"`
}

func (NameLike) TableName() string {
	return "user_likes"
}

// NameFavorite is the favorite counterpart of NameLike, kept as its own
// table so the two flags stay independent.
type NameFavorite struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey;default:(gen_random_uuid())" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_favorites_pair" json:"user_id"`
	NameID    string    `gorm:"size:100;not null;uniqueIndex:idx_user_favorites_pair" json:"name_id"`
}

func (NameFavorite) TableName() string {
	return "user_favorites"
}

func (l *NameLike) BeforeCreate(_ *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (f *NameFavorite) BeforeCreate(_ *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
