package service

import (
	"context"
	"io"
	"time"
)

// VideoStorage defines the interface for direct-to-bucket video handling.
// Uploads and playback both go through short-lived presigned URLs so video
// bytes never pass through the API servers.
type VideoStorage interface {
	// PresignUpload returns a URL the client can PUT the video to, along
	// with the object key to record on the chapter.
	PresignUpload(ctx context.Context, courseID, chapterID string, ttl time.Duration) (url, key string, err error)

	// PresignPlayback returns a URL for streaming the stored object.
	PresignPlayback(ctx context.Context, key string, ttl time.Duration) (string, error)

	// Delete removes the stored object. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
}

// AttachmentStore defines the interface for course attachment blobs.
type AttachmentStore interface {
	// Write stores the attachment content under the given key.
	Write(ctx context.Context, key string, contentType string, r io.Reader) error

	// Read opens the attachment content for streaming.
	Read(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the attachment content. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
}
