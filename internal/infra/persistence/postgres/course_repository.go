package postgres

import (
	"context"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// courseRepository implements the repository.CourseRepository interface using GORM.
type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository is the constructor for courseRepository.
func NewCourseRepository(db *gorm.DB) repository.CourseRepository {
	return &courseRepository{db: db}
}

// Create persists a new course.
func (repo *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	courseM := fromCourseDomain(course)

	if err := repo.db.WithContext(ctx).Create(courseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("instructor does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required course information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create course")
	}

	course.ID = courseM.ID
	course.CreatedAt = courseM.CreatedAt
	course.UpdatedAt = courseM.UpdatedAt

	return nil
}

// FindByID retrieves a course with its chapters (ordered by position) and attachments.
func (repo *courseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	var courseM model.CourseModel
	err := repo.db.WithContext(ctx).
		Preload("Chapters", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Attachments").
		Where("id = ?", id).
		First(&courseM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course by id")
	}

	return toCourseDomain(&courseM), nil
}

// ListByInstructor retrieves all courses authored by a user, newest first.
func (repo *courseRepository) ListByInstructor(ctx context.Context, instructorID uuid.UUID) ([]*entity.Course, error) {
	var courseMs []model.CourseModel
	err := repo.db.WithContext(ctx).
		Preload("Chapters", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("instructor_id = ?", instructorID).
		Order("created_at DESC").
		Find(&courseMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list courses by instructor")
	}

	return toCourseDomainSlice(courseMs), nil
}

// ListPublished retrieves the public catalog, optionally filtered by title.
func (repo *courseRepository) ListPublished(ctx context.Context, titleQuery string) ([]*entity.Course, error) {
	query := repo.db.WithContext(ctx).
		Preload("Chapters", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("is_published = ?", true)

	if titleQuery != "" {
		query = query.Where("title ILIKE ?", "%"+titleQuery+"%")
	}

	var courseMs []model.CourseModel
	if err := query.Order("created_at DESC").Find(&courseMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list published courses")
	}

	return toCourseDomainSlice(courseMs), nil
}

// Update modifies a course's own fields (not its chapters).
func (repo *courseRepository) Update(ctx context.Context, course *entity.Course) error {
	courseM := fromCourseDomain(course)

	err := repo.db.WithContext(ctx).
		Model(&model.CourseModel{ID: courseM.ID}).
		Select("Title", "Description", "ImageURL", "Price", "IsPublished").
		Updates(courseM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update course")
	}

	return nil
}

// Delete removes a course; chapters and attachments cascade at the database.
func (repo *courseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.CourseModel{}, "id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete course")
	}

	return nil
}

// CreateAttachment persists a new course attachment.
func (repo *courseRepository) CreateAttachment(ctx context.Context, attachment *entity.Attachment) error {
	attachmentM := fromAttachmentDomain(attachment)

	if err := repo.db.WithContext(ctx).Create(attachmentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCourseNotFound.WrapMessage("course does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create attachment")
	}

	attachment.ID = attachmentM.ID
	attachment.CreatedAt = attachmentM.CreatedAt

	return nil
}

// FindAttachment retrieves an attachment by its ID.
func (repo *courseRepository) FindAttachment(ctx context.Context, id uuid.UUID) (*entity.Attachment, error) {
	var attachmentM model.AttachmentModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&attachmentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAttachmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find attachment")
	}

	return toAttachmentDomain(&attachmentM), nil
}

// DeleteAttachment removes an attachment by its ID.
func (repo *courseRepository) DeleteAttachment(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.AttachmentModel{}, "id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete attachment")
	}

	return nil
}

// --- Mapper Functions ---

// toCourseDomain converts a GORM CourseModel to a domain Course entity.
func toCourseDomain(data *model.CourseModel) *entity.Course {
	if data == nil {
		return nil
	}

	chapters := make([]*entity.Chapter, 0, len(data.Chapters))
	for i := range data.Chapters {
		chapters = append(chapters, toChapterDomain(&data.Chapters[i]))
	}

	attachments := make([]*entity.Attachment, 0, len(data.Attachments))
	for i := range data.Attachments {
		attachments = append(attachments, toAttachmentDomain(&data.Attachments[i]))
	}

	return &entity.Course{
		ID:           data.ID,
		InstructorID: data.InstructorID,
		Title:        data.Title,
		Description:  data.Description,
		ImageURL:     data.ImageURL,
		Price:        data.Price,
		IsPublished:  data.IsPublished,
		Chapters:     chapters,
		Attachments:  attachments,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toCourseDomainSlice(data []model.CourseModel) []*entity.Course {
	courses := make([]*entity.Course, 0, len(data))
	for i := range data {
		courses = append(courses, toCourseDomain(&data[i]))
	}

	return courses
}

// fromCourseDomain converts a domain Course entity to a GORM CourseModel.
// Chapters and attachments are persisted through their own repositories.
func fromCourseDomain(data *entity.Course) *model.CourseModel {
	if data == nil {
		return nil
	}

	return &model.CourseModel{
		ID:           data.ID,
		InstructorID: data.InstructorID,
		Title:        data.Title,
		Description:  data.Description,
		ImageURL:     data.ImageURL,
		Price:        data.Price,
		IsPublished:  data.IsPublished,
	}
}

// toAttachmentDomain converts a GORM AttachmentModel to a domain Attachment entity.
func toAttachmentDomain(data *model.AttachmentModel) *entity.Attachment {
	if data == nil {
		return nil
	}

	return &entity.Attachment{
		ID:        data.ID,
		CourseID:  data.CourseID,
		Name:      data.Name,
		ObjectKey: data.ObjectKey,
		CreatedAt: data.CreatedAt,
	}
}

// fromAttachmentDomain converts a domain Attachment entity to a GORM AttachmentModel.
func fromAttachmentDomain(data *entity.Attachment) *model.AttachmentModel {
	if data == nil {
		return nil
	}

	return &model.AttachmentModel{
		ID:        data.ID,
		CourseID:  data.CourseID,
		Name:      data.Name,
		ObjectKey: data.ObjectKey,
	}
}
