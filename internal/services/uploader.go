package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

// ErrEmptyFile is returned when an upload carries no content.
var ErrEmptyFile = errors.New("empty file")

// Uploader stores binary files in object storage and returns publicly
// resolvable URLs.
type Uploader interface {
	Upload(ctx context.Context, reader io.Reader, size int64, fileName, contentType string) (string, error)
}

// MinioUploader stores files in a MinIO (S3-compatible) bucket. A single
// attempt per file; transient failures propagate to the caller.
type MinioUploader struct {
	Client        *minio.Client
	Bucket        string
	PublicBaseURL string
}

// NewMinioUploader creates a new MinioUploader for the given bucket.
// publicBaseURL is the externally reachable address the bucket is served
// from, without a trailing slash.
func NewMinioUploader(client *minio.Client, bucket, publicBaseURL string) *MinioUploader {
	return &MinioUploader{
		Client:        client,
		Bucket:        bucket,
		PublicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

// Upload stores the file under a freshly randomized key and returns its
// public URL. The key keeps the original filename as a suffix so stored
// objects stay recognizable.
func (u *MinioUploader) Upload(ctx context.Context, reader io.Reader, size int64, fileName, contentType string) (string, error) {
	if reader == nil || size == 0 {
		return "", ErrEmptyFile
	}

	key := uuid.New().String() + "_" + fileName
	_, err := u.Client.PutObject(ctx, u.Bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload to object storage")
	}

	return fmt.Sprintf("%s/%s/%s", u.PublicBaseURL, u.Bucket, key), nil
}
