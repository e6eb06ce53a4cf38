package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/propertyhub/listings-api/internal/utils"
)

// UploadResult identifies an object stored on the media host. PublicID is the
// stable handle later used to promote or remove the photo.
type UploadResult struct {
	PublicID string
	URL      string
}

type MediaService interface {
	Upload(ctx context.Context, reader io.Reader, size int64, filename, contentType string) (*UploadResult, error)

	// Delete removes the object from the media host. Callers must not drop
	// their local record unless this succeeds.
	Delete(ctx context.Context, publicID string) error
}

type MediaConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool

	// PublicBaseURL is the externally reachable root for stored objects,
	// e.g. "https://media.example.com/listings".
	PublicBaseURL string
}

type mediaService struct {
	client *minio.Client
	cfg    MediaConfig
}

func NewMediaService(cfg MediaConfig) (MediaService, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("media host client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("media host bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("media host bucket create: %w", err)
		}
		utils.Logger.WithField("bucket", cfg.Bucket).Info("created media bucket")
	}

	return &mediaService{client: client, cfg: cfg}, nil
}

func (m *mediaService) Upload(ctx context.Context, reader io.Reader, size int64, filename, contentType string) (*UploadResult, error) {
	objectName := uuid.NewString() + strings.ToLower(path.Ext(filename))

	_, err := m.client.PutObject(ctx, m.cfg.Bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("media host upload: %w", err)
	}

	return &UploadResult{
		PublicID: objectName,
		URL:      strings.TrimRight(m.cfg.PublicBaseURL, "/") + "/" + objectName,
	}, nil
}

func (m *mediaService) Delete(ctx context.Context, publicID string) error {
	err := m.client.RemoveObject(ctx, m.cfg.Bucket, publicID, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("media host delete: %w", err)
	}
	return nil
}
