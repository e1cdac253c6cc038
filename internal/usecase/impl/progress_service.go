package impl

import (
	"context"
	"log/slog"

	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// progressService implements the ProgressUsecase interface.
type progressService struct {
	courseRepo   repository.CourseRepository
	chapterRepo  repository.ChapterRepository
	progressRepo repository.ProgressRepository
	purchaseRepo repository.PurchaseRepository
	logger       *slog.Logger
}

// NewProgressService is the constructor for progressService.
func NewProgressService(
	courseRepo repository.CourseRepository,
	chapterRepo repository.ChapterRepository,
	progressRepo repository.ProgressRepository,
	purchaseRepo repository.PurchaseRepository,
	logger *slog.Logger,
) usecase.ProgressUsecase {
	return &progressService{
		courseRepo:   courseRepo,
		chapterRepo:  chapterRepo,
		progressRepo: progressRepo,
		purchaseRepo: purchaseRepo,
		logger:       logger,
	}
}

func (srv *progressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SetChapterProgress marks a chapter complete or not for the user and returns
// the recomputed course progress.
func (srv *progressService) SetChapterProgress(ctx context.Context, userID, courseID, chapterID uuid.UUID, completed bool) (*entity.CourseProgress, error) {
	course, chapter, err := srv.accessibleChapter(ctx, userID, courseID, chapterID)
	if err != nil {
		return nil, err
	}

	record := &entity.UserProgress{
		UserID:      userID,
		ChapterID:   chapter.ID,
		IsCompleted: completed,
	}
	if err := srv.progressRepo.Upsert(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to save progress")
	}
	srv.log(ctx).Info("Chapter progress set",
		slog.Any("user_id", userID), slog.Any("chapter_id", chapterID), slog.Bool("completed", completed))

	return srv.computeProgress(ctx, userID, course.ID)
}

// GetCourseProgress computes the user's completion over the course's published
// chapters.
func (srv *progressService) GetCourseProgress(ctx context.Context, userID, courseID uuid.UUID) (*entity.CourseProgress, error) {
	course, err := srv.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, domainerrors.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course")
	}
	if !course.IsPublished && course.InstructorID != userID {
		return nil, domainerrors.ErrCourseNotFound
	}

	return srv.computeProgress(ctx, userID, courseID)
}

// accessibleChapter enforces that the user can track progress on the chapter:
// it must be published (and its course too), and non-free chapters need a
// completed purchase.
func (srv *progressService) accessibleChapter(ctx context.Context, userID, courseID, chapterID uuid.UUID) (*entity.Course, *entity.Chapter, error) {
	course, err := srv.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, nil, domainerrors.ErrCourseNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find course")
	}
	if !course.IsPublished {
		return nil, nil, domainerrors.ErrCourseNotFound
	}

	chapter, err := srv.chapterRepo.FindByIDAndCourse(ctx, chapterID, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrChapterNotFound) {
			return nil, nil, domainerrors.ErrChapterNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find chapter")
	}
	if !chapter.IsPublished {
		return nil, nil, domainerrors.ErrChapterNotFound
	}

	if !chapter.IsFree {
		purchase, err := srv.purchaseRepo.FindByUserAndCourse(ctx, userID, courseID)
		if err != nil && !errors.Is(err, repository.ErrPurchaseNotFound) {
			return nil, nil, errors.Wrap(err, "failed to look up purchase")
		}
		if purchase == nil || !purchase.Grants() {
			return nil, nil, domainerrors.ErrPurchaseRequired
		}
	}

	return course, chapter, nil
}

// computeProgress derives the completion percentage over published chapters.
func (srv *progressService) computeProgress(ctx context.Context, userID, courseID uuid.UUID) (*entity.CourseProgress, error) {
	published, err := srv.chapterRepo.ListPublishedByCourse(ctx, courseID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list published chapters")
	}

	chapterIDs := make([]uuid.UUID, 0, len(published))
	for _, chapter := range published {
		chapterIDs = append(chapterIDs, chapter.ID)
	}

	completed := int64(0)
	if len(chapterIDs) > 0 {
		completed, err = srv.progressRepo.CountCompleted(ctx, userID, chapterIDs)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count completed chapters")
		}
	}

	progress := entity.ComputeCourseProgress(int(completed), len(chapterIDs))

	return &progress, nil
}
