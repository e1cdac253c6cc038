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

// chapterRepository implements the repository.ChapterRepository interface using GORM.
type chapterRepository struct {
	db *gorm.DB
}

// NewChapterRepository is the constructor for chapterRepository.
func NewChapterRepository(db *gorm.DB) repository.ChapterRepository {
	return &chapterRepository{db: db}
}

// Create persists a new chapter.
func (repo *chapterRepository) Create(ctx context.Context, chapter *entity.Chapter) error {
	chapterM := fromChapterDomain(chapter)

	if err := repo.db.WithContext(ctx).Create(chapterM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCourseNotFound.WrapMessage("course does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required chapter information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create chapter")
	}

	chapter.ID = chapterM.ID
	chapter.CreatedAt = chapterM.CreatedAt
	chapter.UpdatedAt = chapterM.UpdatedAt

	return nil
}

// FindByID retrieves a chapter by its ID.
func (repo *chapterRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Chapter, error) {
	var chapterM model.ChapterModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&chapterM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChapterNotFound
		}

		return nil, errors.Wrap(err, "failed to find chapter")
	}

	return toChapterDomain(&chapterM), nil
}

// FindByIDAndCourse retrieves a chapter scoped to a course.
func (repo *chapterRepository) FindByIDAndCourse(ctx context.Context, id, courseID uuid.UUID) (*entity.Chapter, error) {
	var chapterM model.ChapterModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND course_id = ?", id, courseID).
		First(&chapterM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChapterNotFound
		}

		return nil, errors.Wrap(err, "failed to find chapter in course")
	}

	return toChapterDomain(&chapterM), nil
}

// FindByVideoKey retrieves the chapter holding a pending video upload.
func (repo *chapterRepository) FindByVideoKey(ctx context.Context, videoKey string) (*entity.Chapter, error) {
	var chapterM model.ChapterModel
	err := repo.db.WithContext(ctx).
		Where("video_key = ?", videoKey).
		First(&chapterM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChapterNotFound
		}

		return nil, errors.Wrap(err, "failed to find chapter by video key")
	}

	return toChapterDomain(&chapterM), nil
}

// ListByCourse retrieves all chapters of a course ordered by position.
func (repo *chapterRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*entity.Chapter, error) {
	var chapterMs []model.ChapterModel
	err := repo.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("position ASC").
		Find(&chapterMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chapters")
	}

	return toChapterDomainSlice(chapterMs), nil
}

// ListPublishedByCourse retrieves the published chapters of a course ordered by position.
func (repo *chapterRepository) ListPublishedByCourse(ctx context.Context, courseID uuid.UUID) ([]*entity.Chapter, error) {
	var chapterMs []model.ChapterModel
	err := repo.db.WithContext(ctx).
		Where("course_id = ? AND is_published = ?", courseID, true).
		Order("position ASC").
		Find(&chapterMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list published chapters")
	}

	return toChapterDomainSlice(chapterMs), nil
}

// CountPublishedByCourse returns the number of published chapters in a course.
func (repo *chapterRepository) CountPublishedByCourse(ctx context.Context, courseID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ChapterModel{}).
		Where("course_id = ? AND is_published = ?", courseID, true).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count published chapters")
	}

	return count, nil
}

// MaxPosition returns the highest position in a course, or -1 when empty.
func (repo *chapterRepository) MaxPosition(ctx context.Context, courseID uuid.UUID) (int, error) {
	var max *int
	err := repo.db.WithContext(ctx).
		Model(&model.ChapterModel{}).
		Where("course_id = ?", courseID).
		Select("MAX(position)").
		Scan(&max).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to get max chapter position")
	}
	if max == nil {
		return -1, nil
	}

	return *max, nil
}

// Update modifies a chapter.
func (repo *chapterRepository) Update(ctx context.Context, chapter *entity.Chapter) error {
	chapterM := fromChapterDomain(chapter)

	err := repo.db.WithContext(ctx).
		Model(&model.ChapterModel{ID: chapterM.ID}).
		Select("Title", "Description", "Position", "IsPublished", "IsFree", "VideoKey", "VideoAssetID").
		Updates(chapterM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update chapter")
	}

	return nil
}

// UpdatePositions applies new positions for the given chapter IDs.
func (repo *chapterRepository) UpdatePositions(ctx context.Context, courseID uuid.UUID, positions map[uuid.UUID]int) error {
	for chapterID, position := range positions {
		err := repo.db.WithContext(ctx).
			Model(&model.ChapterModel{}).
			Where("id = ? AND course_id = ?", chapterID, courseID).
			Update("position", position).Error
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update chapter positions")
		}
	}

	return nil
}

// Delete removes a chapter by its ID.
func (repo *chapterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.ChapterModel{}, "id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete chapter")
	}

	return nil
}

// --- Mapper Functions ---

// toChapterDomain converts a GORM ChapterModel to a domain Chapter entity.
func toChapterDomain(data *model.ChapterModel) *entity.Chapter {
	if data == nil {
		return nil
	}

	return &entity.Chapter{
		ID:           data.ID,
		CourseID:     data.CourseID,
		Title:        data.Title,
		Description:  data.Description,
		Position:     data.Position,
		IsPublished:  data.IsPublished,
		IsFree:       data.IsFree,
		VideoKey:     data.VideoKey,
		VideoAssetID: data.VideoAssetID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toChapterDomainSlice(data []model.ChapterModel) []*entity.Chapter {
	chapters := make([]*entity.Chapter, 0, len(data))
	for i := range data {
		chapters = append(chapters, toChapterDomain(&data[i]))
	}

	return chapters
}

// fromChapterDomain converts a domain Chapter entity to a GORM ChapterModel.
func fromChapterDomain(data *entity.Chapter) *model.ChapterModel {
	if data == nil {
		return nil
	}

	return &model.ChapterModel{
		ID:           data.ID,
		CourseID:     data.CourseID,
		Title:        data.Title,
		Description:  data.Description,
		Position:     data.Position,
		IsPublished:  data.IsPublished,
		IsFree:       data.IsFree,
		VideoKey:     data.VideoKey,
		VideoAssetID: data.VideoAssetID,
	}
}
