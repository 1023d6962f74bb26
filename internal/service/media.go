package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ojonugwa/igala-names/backend/config"
	"github.com/ojonugwa/igala-names/backend/internal/catalog"
	"github.com/ojonugwa/igala-names/backend/internal/models"
)

// MediaService stores name illustrations in S3 and records the public URL
// per catalog name. One image per name; re-uploading replaces the record.
type MediaService struct {
	db       *gorm.DB
	s3Config *config.S3Config
}

func NewMediaService(db *gorm.DB, s3Config *config.S3Config) *MediaService {
	return &MediaService{
		db:       db,
		s3Config: s3Config,
	}
}

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadNameImage uploads an illustration for a catalog name and records
// its public URL. The name must exist in the catalog.
func (s *MediaService) UploadNameImage(ctx context.Context, uploadedBy uuid.UUID, nameID, contentType string, data []byte) (*models.NameMedia, error) {
	if catalog.ByID(nameID) == nil {
		return nil, fmt.Errorf("%w: unknown name %q", ErrNotFound, nameID)
	}
	ext, ok := allowedImageTypes[strings.ToLower(contentType)]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported content type %q", ErrValidationFailed, contentType)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image payload", ErrValidationFailed)
	}

	key := path.Join("names", nameID, uuid.New().String()+ext)
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	media := models.NameMedia{
		NameID:     nameID,
		ImageURL:   fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key),
		UploadedBy: uploadedBy,
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"image_url", "uploaded_by", "updated_at"}),
	}).Create(&media).Error
	if err != nil {
		return nil, fmt.Errorf("failed to record image: %w", err)
	}
	return &media, nil
}

// ImageFor returns the recorded image for a name, or ErrNotFound.
func (s *MediaService) ImageFor(ctx context.Context, nameID string) (*models.NameMedia, error) {
	var media models.NameMedia
	err := s.db.WithContext(ctx).Where("name_id = ?", nameID).First(&media).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load media: %w", err)
	}
	return &media, nil
}
