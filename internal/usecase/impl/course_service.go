package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/domain/service"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// courseService implements the CourseUsecase interface.
type courseService struct {
	courseRepo   repository.CourseRepository
	purchaseRepo repository.PurchaseRepository
	progressRepo repository.ProgressRepository
	videoStorage service.VideoStorage
	attachments  service.AttachmentStore
	qrService    service.QRCodeService
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewCourseService is the constructor for courseService.
func NewCourseService(
	courseRepo repository.CourseRepository,
	purchaseRepo repository.PurchaseRepository,
	progressRepo repository.ProgressRepository,
	videoStorage service.VideoStorage,
	attachments service.AttachmentStore,
	qrService service.QRCodeService,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.CourseUsecase {
	return &courseService{
		courseRepo:   courseRepo,
		purchaseRepo: purchaseRepo,
		progressRepo: progressRepo,
		videoStorage: videoStorage,
		attachments:  attachments,
		qrService:    qrService,
		publisher:    publisher,
		logger:       logger,
	}
}

func (srv *courseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCourse starts a new unpublished draft with just a title.
func (srv *courseService) CreateCourse(ctx context.Context, input usecase.CreateCourseInput) (*entity.Course, error) {
	if input.Title == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}

	course := &entity.Course{
		InstructorID: input.InstructorID,
		Title:        input.Title,
	}
	if err := srv.courseRepo.Create(ctx, course); err != nil {
		return nil, errors.Wrap(err, "failed to create course")
	}
	srv.log(ctx).Info("Course created", slog.Any("course_id", course.ID), slog.Any("instructor_id", input.InstructorID))

	return course, nil
}

// GetCourse retrieves a course for its instructor, with publish-gate state.
func (srv *courseService) GetCourse(ctx context.Context, instructorID, courseID uuid.UUID) (*usecase.CourseWithStatus, error) {
	course, err := srv.findOwnedCourse(ctx, instructorID, courseID)
	if err != nil {
		return nil, err
	}

	return withStatus(course), nil
}

// ListMyCourses lists an instructor's courses, newest first.
func (srv *courseService) ListMyCourses(ctx context.Context, instructorID uuid.UUID) ([]*usecase.CourseWithStatus, error) {
	courses, err := srv.courseRepo.ListByInstructor(ctx, instructorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}

	result := make([]*usecase.CourseWithStatus, 0, len(courses))
	for _, course := range courses {
		result = append(result, withStatus(course))
	}

	return result, nil
}

// UpdateCourse edits course fields. Only the owning instructor may edit.
func (srv *courseService) UpdateCourse(ctx context.Context, instructorID, courseID uuid.UUID, input usecase.UpdateCourseInput) (*entity.Course, error) {
	course, err := srv.findOwnedCourse(ctx, instructorID, courseID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("title cannot be empty")
		}
		course.Title = *input.Title
	}
	if input.Description != nil {
		course.Description = *input.Description
	}
	if input.ImageURL != nil {
		course.ImageURL = *input.ImageURL
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("price cannot be negative")
		}
		course.Price = input.Price
	}

	if err := srv.courseRepo.Update(ctx, course); err != nil {
		return nil, errors.Wrap(err, "failed to update course")
	}

	return course, nil
}

// DeleteCourse removes a course and its chapters, attachments, and videos.
func (srv *courseService) DeleteCourse(ctx context.Context, instructorID, courseID uuid.UUID) error {
	course, err := srv.findOwnedCourse(ctx, instructorID, courseID)
	if err != nil {
		return err
	}

	if err := srv.courseRepo.Delete(ctx, course.ID); err != nil {
		return errors.Wrap(err, "failed to delete course")
	}

	// Blob cleanup runs after the rows are gone. A failed delete only leaks
	// storage, so log and move on.
	for _, chapter := range course.Chapters {
		if chapter.VideoKey == "" {
			continue
		}
		if err := srv.videoStorage.Delete(ctx, chapter.VideoKey); err != nil {
			srv.log(ctx).Warn("Failed to delete chapter video",
				slog.Any("error", err), slog.Any("chapter_id", chapter.ID))
		}
	}
	for _, attachment := range course.Attachments {
		if err := srv.attachments.Delete(ctx, attachment.ObjectKey); err != nil {
			srv.log(ctx).Warn("Failed to delete attachment blob",
				slog.Any("error", err), slog.Any("attachment_id", attachment.ID))
		}
	}
	srv.log(ctx).Info("Course deleted", slog.Any("course_id", courseID))

	return nil
}

// PublishCourse makes a course publicly visible, gated on completeness.
func (srv *courseService) PublishCourse(ctx context.Context, instructorID, courseID uuid.UUID) error {
	course, err := srv.findOwnedCourse(ctx, instructorID, courseID)
	if err != nil {
		return err
	}

	if !course.RequiredFieldsComplete() {
		return domainerrors.ErrCourseIncomplete.WithDetails(course.CompletionText())
	}

	if course.IsPublished {
		return nil
	}

	course.IsPublished = true
	if err := srv.courseRepo.Update(ctx, course); err != nil {
		return errors.Wrap(err, "failed to publish course")
	}

	event := &service.CourseEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Type:        service.EventCoursePublished,
		CourseID:    course.ID.String(),
		CourseTitle: course.Title,
	}
	if err := srv.publisher.PublishCourseEvent(ctx, event); err != nil {
		// Publishing already happened; the notification fan-out is best effort.
		srv.log(ctx).Error("Failed to publish course event",
			slog.Any("error", err), slog.Any("course_id", course.ID))
	}
	srv.log(ctx).Info("Course published", slog.Any("course_id", course.ID))

	return nil
}

// UnpublishCourse hides a course from the catalog.
func (srv *courseService) UnpublishCourse(ctx context.Context, instructorID, courseID uuid.UUID) error {
	course, err := srv.findOwnedCourse(ctx, instructorID, courseID)
	if err != nil {
		return err
	}

	if !course.IsPublished {
		return nil
	}

	course.IsPublished = false
	if err := srv.courseRepo.Update(ctx, course); err != nil {
		return errors.Wrap(err, "failed to unpublish course")
	}
	srv.log(ctx).Info("Course unpublished", slog.Any("course_id", course.ID))

	return nil
}

// ListCatalog lists published courses, optionally filtered by title.
func (srv *courseService) ListCatalog(ctx context.Context, userID uuid.UUID, titleQuery string) ([]*usecase.CatalogCourse, error) {
	courses, err := srv.courseRepo.ListPublished(ctx, titleQuery)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list catalog")
	}

	result := make([]*usecase.CatalogCourse, 0, len(courses))
	for _, course := range courses {
		item, err := srv.catalogView(ctx, userID, course)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	return result, nil
}

// GetCatalogCourse retrieves one published course with the requesting user's
// purchase and progress state.
func (srv *courseService) GetCatalogCourse(ctx context.Context, userID, courseID uuid.UUID) (*usecase.CatalogCourse, error) {
	course, err := srv.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, domainerrors.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course")
	}

	if !course.IsPublished {
		// Unpublished courses don't exist as far as the catalog is concerned.
		return nil, domainerrors.ErrCourseNotFound
	}

	return srv.catalogView(ctx, userID, course)
}

// CourseShareQR renders a QR code PNG linking to the course.
func (srv *courseService) CourseShareQR(ctx context.Context, courseID uuid.UUID) ([]byte, error) {
	course, err := srv.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, domainerrors.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course")
	}
	if !course.IsPublished {
		return nil, domainerrors.ErrCourseNotFound
	}

	png, err := srv.qrService.GenerateCourseQR(course.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

// AddAttachment stores the file content and records the attachment.
func (srv *courseService) AddAttachment(ctx context.Context, instructorID uuid.UUID, input usecase.AddAttachmentInput) (*entity.Attachment, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("attachment name is required")
	}

	course, err := srv.findOwnedCourse(ctx, instructorID, input.CourseID)
	if err != nil {
		return nil, err
	}

	attachment := &entity.Attachment{
		CourseID:  course.ID,
		Name:      input.Name,
		ObjectKey: fmt.Sprintf("courses/%s/attachments/%s", course.ID, uuid.NewString()),
	}

	if err := srv.attachments.Write(ctx, attachment.ObjectKey, input.ContentType, input.Content); err != nil {
		return nil, errors.Wrap(err, "failed to store attachment")
	}

	if err := srv.courseRepo.CreateAttachment(ctx, attachment); err != nil {
		// The row never existed, so drop the orphaned blob.
		if delErr := srv.attachments.Delete(ctx, attachment.ObjectKey); delErr != nil {
			srv.log(ctx).Warn("Failed to delete orphaned attachment blob",
				slog.Any("error", delErr), slog.String("object_key", attachment.ObjectKey))
		}

		return nil, errors.Wrap(err, "failed to record attachment")
	}
	srv.log(ctx).Info("Attachment added", slog.Any("course_id", course.ID), slog.Any("attachment_id", attachment.ID))

	return attachment, nil
}

// RemoveAttachment deletes an attachment record and its stored content.
func (srv *courseService) RemoveAttachment(ctx context.Context, instructorID, courseID, attachmentID uuid.UUID) error {
	if _, err := srv.findOwnedCourse(ctx, instructorID, courseID); err != nil {
		return err
	}

	attachment, err := srv.courseRepo.FindAttachment(ctx, attachmentID)
	if err != nil {
		if errors.Is(err, repository.ErrAttachmentNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("attachment not found")
		}

		return errors.Wrap(err, "failed to find attachment")
	}
	if attachment.CourseID != courseID {
		return domainerrors.ErrNotFound.WrapMessage("attachment not found")
	}

	if err := srv.courseRepo.DeleteAttachment(ctx, attachment.ID); err != nil {
		return errors.Wrap(err, "failed to delete attachment")
	}

	if err := srv.attachments.Delete(ctx, attachment.ObjectKey); err != nil {
		srv.log(ctx).Warn("Failed to delete attachment blob",
			slog.Any("error", err), slog.String("object_key", attachment.ObjectKey))
	}

	return nil
}

// ReadAttachment opens an attachment's content for a purchaser or the owning
// instructor.
func (srv *courseService) ReadAttachment(ctx context.Context, userID, courseID, attachmentID uuid.UUID) (*entity.Attachment, io.ReadCloser, error) {
	course, err := srv.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, nil, domainerrors.ErrCourseNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find course")
	}

	if course.InstructorID != userID {
		purchase, err := srv.purchaseRepo.FindByUserAndCourse(ctx, userID, courseID)
		if err != nil && !errors.Is(err, repository.ErrPurchaseNotFound) {
			return nil, nil, errors.Wrap(err, "failed to look up purchase")
		}
		if purchase == nil || !purchase.Grants() {
			return nil, nil, domainerrors.ErrPurchaseRequired
		}
	}

	attachment, err := srv.courseRepo.FindAttachment(ctx, attachmentID)
	if err != nil {
		if errors.Is(err, repository.ErrAttachmentNotFound) {
			return nil, nil, domainerrors.ErrNotFound.WrapMessage("attachment not found")
		}

		return nil, nil, errors.Wrap(err, "failed to find attachment")
	}
	if attachment.CourseID != courseID {
		return nil, nil, domainerrors.ErrNotFound.WrapMessage("attachment not found")
	}

	rc, err := srv.attachments.Read(ctx, attachment.ObjectKey)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open attachment")
	}

	return attachment, rc, nil
}

// findOwnedCourse loads a course and enforces instructor ownership.
func (srv *courseService) findOwnedCourse(ctx context.Context, instructorID, courseID uuid.UUID) (*entity.Course, error) {
	course, err := srv.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, domainerrors.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course")
	}
	if course.InstructorID != instructorID {
		// Hide the course's existence from non-owners.
		return nil, domainerrors.ErrCourseNotFound
	}

	return course, nil
}

// catalogView assembles the public view of a course for one user.
func (srv *courseService) catalogView(ctx context.Context, userID uuid.UUID, course *entity.Course) (*usecase.CatalogCourse, error) {
	item := &usecase.CatalogCourse{Course: course}
	if userID == uuid.Nil {
		return item, nil
	}

	purchase, err := srv.purchaseRepo.FindByUserAndCourse(ctx, userID, course.ID)
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			return item, nil
		}

		return nil, errors.Wrap(err, "failed to look up purchase")
	}
	if !purchase.Grants() {
		return item, nil
	}
	item.Purchased = true

	publishedIDs := make([]uuid.UUID, 0, len(course.Chapters))
	for _, chapter := range course.Chapters {
		if chapter.IsPublished {
			publishedIDs = append(publishedIDs, chapter.ID)
		}
	}

	completed := int64(0)
	if len(publishedIDs) > 0 {
		completed, err = srv.progressRepo.CountCompleted(ctx, userID, publishedIDs)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count completed chapters")
		}
	}

	progress := entity.ComputeCourseProgress(int(completed), len(publishedIDs))
	item.Progress = &progress

	return item, nil
}

// withStatus pairs a course with its publish-gate state.
func withStatus(course *entity.Course) *usecase.CourseWithStatus {
	return &usecase.CourseWithStatus{
		Course:         course,
		CompletionText: course.CompletionText(),
		CanPublish:     course.RequiredFieldsComplete(),
	}
}
