// Package media stores user uploaded images in MinIO.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"blog-platform/internal/logger"
)

// MaxUploadSize is the largest accepted image, in bytes.
const MaxUploadSize = 5 << 20

var (
	ErrUnsupportedType = errors.New("only JPEG, PNG, GIF and WebP images are allowed")
	ErrTooLarge        = errors.New("file exceeds the 5 MiB limit")
	ErrEmptyFile       = errors.New("file is empty")
	ErrDisabled        = errors.New("media uploads are not configured")
)

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ObjectStore is the subset of the MinIO client used for uploads.
type ObjectStore interface {
	PutObject(ctx context.Context, bucket, key string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// Config holds MinIO configuration.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
}

// Upload describes one incoming file.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Store uploads images and returns their public URLs.
type Store struct {
	objects   ObjectStore
	bucket    string
	publicURL string
	newID     func() string
}

// NewMinioStore connects to MinIO and makes sure the bucket exists.
func NewMinioStore(ctx context.Context, cfg Config) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
		logger.Info("Created media bucket", slog.String("bucket", cfg.Bucket))
	}

	return NewStore(client, cfg.Bucket, cfg.PublicURL), nil
}

// NewStore creates a store over an existing object client.
func NewStore(objects ObjectStore, bucket, publicURL string) *Store {
	return &Store{
		objects:   objects,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		newID:     func() string { return uuid.New().String() },
	}
}

// Validate checks the declared type and size of an upload.
func Validate(u Upload) error {
	if _, ok := extensions[normalizeType(u.ContentType)]; !ok {
		return ErrUnsupportedType
	}
	if u.Size <= 0 {
		return ErrEmptyFile
	}
	if u.Size > MaxUploadSize {
		return ErrTooLarge
	}
	return nil
}

// Put stores the upload under uploads/{userID}/{id}{ext} and returns its public URL.
func (s *Store) Put(ctx context.Context, userID string, u Upload) (string, error) {
	if s == nil || s.objects == nil {
		return "", ErrDisabled
	}
	if err := Validate(u); err != nil {
		return "", err
	}

	contentType := normalizeType(u.ContentType)
	key := ObjectKey(userID, s.newID(), contentType)
	body := io.LimitReader(u.Body, u.Size)

	if _, err := s.objects.PutObject(ctx, s.bucket, key, body, u.Size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
		UserMetadata: map[string]string{"original-name": path.Base(u.Filename)},
	}); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	logger.InfoContext(ctx, "Media uploaded",
		slog.String("user_id", userID),
		slog.String("key", key),
		slog.Int64("size", u.Size),
	)
	return s.publicURL + "/" + key, nil
}

// ObjectKey builds the storage key for an upload.
func ObjectKey(userID, id, contentType string) string {
	return fmt.Sprintf("uploads/%s/%s%s", userID, id, extensions[normalizeType(contentType)])
}

func normalizeType(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

// IsClientError reports whether err was caused by the upload itself.
func IsClientError(err error) bool {
	return errors.Is(err, ErrUnsupportedType) || errors.Is(err, ErrTooLarge) || errors.Is(err, ErrEmptyFile)
}
