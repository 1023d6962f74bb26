package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NameMedia attaches an uploaded illustration to a catalog name. The catalog
// itself is static; media is the only per-name mutable overlay.
type NameMedia struct {
	ID         uuid.UUID `gorm:"type:uuid;primarykey;default:(gen_random_uuid())" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	NameID     string    `gorm:"size:100;not null;uniqueIndex" json:"name_id"`
	ImageURL   string    `gorm:"size:512;not null" json:"image_url"`
	UploadedBy uuid.UUID `gorm:"type:uuid;not null" json:"uploaded_by"`
}

func (NameMedia) TableName() string {
	return "name_media"
}

func (m *NameMedia) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
