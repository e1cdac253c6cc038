// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for content persistence.
var (
	// ErrCourseNotFound is returned when a course is not found.
	ErrCourseNotFound = errors.New("course not found")
	// ErrAttachmentNotFound is returned when an attachment is not found.
	ErrAttachmentNotFound = errors.New("attachment not found")
)

// CourseRepository defines the standard operations for course persistence.
type CourseRepository interface {
	// Create persists a new course.
	Create(ctx context.Context, course *entity.Course) error

	// FindByID retrieves a course with its chapters (ordered by position) and
	// attachments preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error)

	// ListByInstructor retrieves all courses authored by a user, newest first.
	ListByInstructor(ctx context.Context, instructorID uuid.UUID) ([]*entity.Course, error)

	// ListPublished retrieves the public catalog, optionally filtered by a
	// case-insensitive title substring.
	ListPublished(ctx context.Context, titleQuery string) ([]*entity.Course, error)

	// Update modifies a course's own fields (not its chapters).
	Update(ctx context.Context, course *entity.Course) error

	// Delete removes a course; chapters and attachments cascade at the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// CreateAttachment persists a new course attachment.
	CreateAttachment(ctx context.Context, attachment *entity.Attachment) error

	// FindAttachment retrieves an attachment by its ID.
	FindAttachment(ctx context.Context, id uuid.UUID) (*entity.Attachment, error)

	// DeleteAttachment removes an attachment by its ID.
	DeleteAttachment(ctx context.Context, id uuid.UUID) error
}
