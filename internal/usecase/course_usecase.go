// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateCourseInput defines the data required to start a new course draft.
type CreateCourseInput struct {
	InstructorID uuid.UUID
	Title        string
}

// UpdateCourseInput carries the editable course fields. Nil pointers leave a
// field untouched.
type UpdateCourseInput struct {
	Title       *string
	Description *string
	ImageURL    *string
	Price       *int64
}

// AddAttachmentInput defines the data for attaching a file to a course.
type AddAttachmentInput struct {
	CourseID    uuid.UUID
	Name        string
	ContentType string
	Content     io.Reader
}

// --- Output DTOs ---

// CourseWithStatus pairs a course with its publish-gate state for the
// instructor dashboard.
type CourseWithStatus struct {
	Course         *entity.Course
	CompletionText string
	CanPublish     bool
}

// CatalogCourse is the public view of a published course, including whether
// the requesting user has purchased it.
type CatalogCourse struct {
	Course    *entity.Course
	Purchased bool
	Progress  *entity.CourseProgress // Only set for purchased courses.
}

// CourseUsecase defines the interface for course authoring and catalog operations.
type CourseUsecase interface {
	// CreateCourse starts a new unpublished draft with just a title.
	CreateCourse(ctx context.Context, input CreateCourseInput) (*entity.Course, error)

	// GetCourse retrieves a course for its instructor, with publish-gate state.
	GetCourse(ctx context.Context, instructorID, courseID uuid.UUID) (*CourseWithStatus, error)

	// ListMyCourses lists an instructor's courses, newest first.
	ListMyCourses(ctx context.Context, instructorID uuid.UUID) ([]*CourseWithStatus, error)

	// UpdateCourse edits course fields. Only the owning instructor may edit.
	UpdateCourse(ctx context.Context, instructorID, courseID uuid.UUID, input UpdateCourseInput) (*entity.Course, error)

	// DeleteCourse removes a course and its chapters, attachments, and videos.
	DeleteCourse(ctx context.Context, instructorID, courseID uuid.UUID) error

	// PublishCourse makes a course publicly visible. Fails with
	// ErrCourseIncomplete unless every gated field is filled and at least one
	// chapter is published.
	PublishCourse(ctx context.Context, instructorID, courseID uuid.UUID) error

	// UnpublishCourse hides a course from the catalog.
	UnpublishCourse(ctx context.Context, instructorID, courseID uuid.UUID) error

	// ListCatalog lists published courses, optionally filtered by title.
	ListCatalog(ctx context.Context, userID uuid.UUID, titleQuery string) ([]*CatalogCourse, error)

	// GetCatalogCourse retrieves one published course with the requesting
	// user's purchase and progress state.
	GetCatalogCourse(ctx context.Context, userID, courseID uuid.UUID) (*CatalogCourse, error)

	// CourseShareQR renders a QR code PNG linking to the course.
	CourseShareQR(ctx context.Context, courseID uuid.UUID) ([]byte, error)

	// AddAttachment stores the file content and records the attachment.
	AddAttachment(ctx context.Context, instructorID uuid.UUID, input AddAttachmentInput) (*entity.Attachment, error)

	// RemoveAttachment deletes an attachment record and its stored content.
	RemoveAttachment(ctx context.Context, instructorID, courseID, attachmentID uuid.UUID) error

	// ReadAttachment opens an attachment's content for a purchaser or the
	// owning instructor.
	ReadAttachment(ctx context.Context, userID, courseID, attachmentID uuid.UUID) (*entity.Attachment, io.ReadCloser, error)
}
