package storage

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Drivers registered for the attachment bucket URL schemes.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"

	"academy/config"
	"academy/internal/domain/service"
)

// attachmentStore implements service.AttachmentStore on a gocloud blob bucket,
// so the attachment backend is chosen by URL (s3://, gs://, file://).
type attachmentStore struct {
	bucket *blob.Bucket
}

// NewAttachmentStore opens the configured attachment bucket.
func NewAttachmentStore(ctx context.Context, cfg *config.Config) (service.AttachmentStore, func() error, error) {
	if cfg.Storage == nil || cfg.Storage.AttachmentBucketURL == "" {
		return nil, nil, errors.New("attachment bucket url must be provided")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Storage.AttachmentBucketURL)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open attachment bucket")
	}

	return &attachmentStore{bucket: bucket}, bucket.Close, nil
}

// Write stores the attachment content under the given key.
func (s *attachmentStore) Write(ctx context.Context, key string, contentType string, r io.Reader) error {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "open attachment writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return errors.Wrap(err, "write attachment")
	}

	return errors.Wrap(w.Close(), "close attachment writer")
}

// Read opens the attachment content for streaming.
func (s *attachmentStore) Read(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, errors.Wrap(err, "open attachment reader")
	}

	return r, nil
}

// Delete removes the attachment content. Missing objects are not an error.
func (s *attachmentStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "delete attachment")
	}

	return nil
}
