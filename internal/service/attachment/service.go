package attachment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"portal-layanan-publik/internal/config"
	"portal-layanan-publik/internal/domain"
	"portal-layanan-publik/internal/repository"
)

// ErrStorageUnavailable is returned when the portal started without a
// reachable MinIO endpoint; uploads degrade instead of crashing the portal.
var ErrStorageUnavailable = errors.New("object storage unavailable")

type Service interface {
	Upload(ctx context.Context, userID, applicationID int, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.Attachment, error)
	Get(ctx context.Context, id int) (*domain.Attachment, error)
	ListForApplication(ctx context.Context, applicationID int) ([]domain.Attachment, error)
}

type service struct {
	attachmentRepo repository.AttachmentRepository
	minioClient    *minio.Client
	cfg            *config.Config
}

func NewService(attachmentRepo repository.AttachmentRepository, minioClient *minio.Client, cfg *config.Config) Service {
	return &service{
		attachmentRepo: attachmentRepo,
		minioClient:    minioClient,
		cfg:            cfg,
	}
}

func (s *service) Upload(ctx context.Context, userID, applicationID int, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.Attachment, error) {
	if s.minioClient == nil {
		return nil, ErrStorageUnavailable
	}

	storagePath := fmt.Sprintf("attachments/%s/%s", time.Now().Format("2006/01"), uuid.New().String())

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	att := &domain.Attachment{
		ApplicationID: applicationID,
		UserID:        userID,
		FileName:      fileName,
		FileSize:      fileSize,
		MimeType:      mimeType,
		StoragePath:   storagePath,
	}
	if err := s.attachmentRepo.Create(ctx, att); err != nil {
		_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
		return nil, err
	}

	att.URL = s.publicURL(storagePath)
	return att, nil
}

func (s *service) Get(ctx context.Context, id int) (*domain.Attachment, error) {
	att, err := s.attachmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, domain.ErrAttachmentNotFound
	}
	att.URL = s.publicURL(att.StoragePath)
	return att, nil
}

func (s *service) ListForApplication(ctx context.Context, applicationID int) ([]domain.Attachment, error) {
	attachments, err := s.attachmentRepo.ListByApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	for i := range attachments {
		attachments[i].URL = s.publicURL(attachments[i].StoragePath)
	}
	return attachments, nil
}

func (s *service) publicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, url.PathEscape(storagePath))
}
