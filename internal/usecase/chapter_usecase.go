// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateChapterInput defines the data required to append a chapter to a course.
type CreateChapterInput struct {
	CourseID uuid.UUID
	Title    string
}

// UpdateChapterInput carries the editable chapter fields. Nil pointers leave
// a field untouched.
type UpdateChapterInput struct {
	Title       *string
	Description *string
	IsFree      *bool
}

// ReorderChaptersInput lists chapter IDs in their new order.
type ReorderChaptersInput struct {
	CourseID   uuid.UUID
	ChapterIDs []uuid.UUID
}

// --- Output DTOs ---

// ChapterWithStatus pairs a chapter with its publish-gate state.
type ChapterWithStatus struct {
	Chapter        *entity.Chapter
	CompletionText string
	CanPublish     bool
}

// VideoUploadTicket is a presigned upload slot for a chapter video.
type VideoUploadTicket struct {
	UploadURL string
	VideoKey  string
}

// ChapterUsecase defines the interface for chapter authoring operations.
type ChapterUsecase interface {
	// CreateChapter appends a new draft chapter at the end of a course.
	CreateChapter(ctx context.Context, instructorID uuid.UUID, input CreateChapterInput) (*entity.Chapter, error)

	// GetChapter retrieves a chapter for its instructor, with gate state.
	GetChapter(ctx context.Context, instructorID, courseID, chapterID uuid.UUID) (*ChapterWithStatus, error)

	// UpdateChapter edits chapter fields.
	UpdateChapter(ctx context.Context, instructorID, courseID, chapterID uuid.UUID, input UpdateChapterInput) (*entity.Chapter, error)

	// DeleteChapter removes a chapter and its video. If the deleted chapter
	// was the course's last published one, the course is unpublished too.
	DeleteChapter(ctx context.Context, instructorID, courseID, chapterID uuid.UUID) error

	// ReorderChapters applies a new chapter ordering within a course.
	ReorderChapters(ctx context.Context, instructorID uuid.UUID, input ReorderChaptersInput) error

	// PublishChapter makes a chapter visible inside its course. Fails with
	// ErrChapterIncomplete unless the chapter has a title and a video asset.
	PublishChapter(ctx context.Context, instructorID, courseID, chapterID uuid.UUID) error

	// UnpublishChapter hides a chapter. Unpublishing the course's last
	// published chapter cascades and unpublishes the course.
	UnpublishChapter(ctx context.Context, instructorID, courseID, chapterID uuid.UUID) error

	// RequestVideoUpload presigns an upload slot for the chapter's video and
	// records the pending object key.
	RequestVideoUpload(ctx context.Context, instructorID, courseID, chapterID uuid.UUID) (*VideoUploadTicket, error)

	// ConfirmVideoAsset records the processed asset ID once the video
	// pipeline reports the upload playable.
	ConfirmVideoAsset(ctx context.Context, videoKey, assetID string) error

	// ChapterPlayback presigns a playback URL. Free chapters stream for any
	// authenticated user; the rest require a completed purchase.
	ChapterPlayback(ctx context.Context, userID, courseID, chapterID uuid.UUID) (string, error)
}
