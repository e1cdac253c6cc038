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
	"gorm.io/gorm/clause"
)

// progressRepository implements the repository.ProgressRepository interface using GORM.
type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository is the constructor for progressRepository.
func NewProgressRepository(db *gorm.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

// Upsert creates or updates the progress record for a user and chapter.
func (repo *progressRepository) Upsert(ctx context.Context, progress *entity.UserProgress) error {
	progressM := fromProgressDomain(progress)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "chapter_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_completed", "updated_at"}),
		}).
		Create(progressM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrChapterNotFound.WrapMessage("chapter does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert progress")
	}

	progress.CreatedAt = progressM.CreatedAt
	progress.UpdatedAt = progressM.UpdatedAt

	return nil
}

// Find retrieves the progress record for a user and chapter.
func (repo *progressRepository) Find(ctx context.Context, userID, chapterID uuid.UUID) (*entity.UserProgress, error) {
	var progressM model.ProgressModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND chapter_id = ?", userID, chapterID).
		First(&progressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProgressNotFound
		}

		return nil, errors.Wrap(err, "failed to find progress")
	}

	return toProgressDomain(&progressM), nil
}

// CountCompleted returns how many of the given chapters the user has completed.
func (repo *progressRepository) CountCompleted(ctx context.Context, userID uuid.UUID, chapterIDs []uuid.UUID) (int64, error) {
	if len(chapterIDs) == 0 {
		return 0, nil
	}

	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ProgressModel{}).
		Where("user_id = ? AND chapter_id IN ? AND is_completed = ?", userID, chapterIDs, true).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count completed chapters")
	}

	return count, nil
}

// ListByUserAndChapters retrieves the user's progress records for the given chapters.
func (repo *progressRepository) ListByUserAndChapters(ctx context.Context, userID uuid.UUID, chapterIDs []uuid.UUID) ([]*entity.UserProgress, error) {
	if len(chapterIDs) == 0 {
		return nil, nil
	}

	var progressMs []model.ProgressModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND chapter_id IN ?", userID, chapterIDs).
		Find(&progressMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list progress")
	}

	records := make([]*entity.UserProgress, 0, len(progressMs))
	for i := range progressMs {
		records = append(records, toProgressDomain(&progressMs[i]))
	}

	return records, nil
}

// --- Mapper Functions ---

// toProgressDomain converts a GORM ProgressModel to a domain UserProgress entity.
func toProgressDomain(data *model.ProgressModel) *entity.UserProgress {
	if data == nil {
		return nil
	}

	return &entity.UserProgress{
		UserID:      data.UserID,
		ChapterID:   data.ChapterID,
		IsCompleted: data.IsCompleted,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromProgressDomain converts a domain UserProgress entity to a GORM ProgressModel.
func fromProgressDomain(data *entity.UserProgress) *model.ProgressModel {
	if data == nil {
		return nil
	}

	return &model.ProgressModel{
		UserID:      data.UserID,
		ChapterID:   data.ChapterID,
		IsCompleted: data.IsCompleted,
	}
}
