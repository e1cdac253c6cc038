package impl

import (
	"context"
	"log/slog"
	"time"

	"academy/config"
	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/domain/service"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Presign lifetimes used when the storage config leaves them unset.
const (
	defaultUploadTTL   = 15 * time.Minute
	defaultPlaybackTTL = 2 * time.Hour
)

// chapterService implements the ChapterUsecase interface.
type chapterService struct {
	txManager    repository.TransactionManager
	courseRepo   repository.CourseRepository
	chapterRepo  repository.ChapterRepository
	purchaseRepo repository.PurchaseRepository
	videoStorage service.VideoStorage
	uploadTTL    time.Duration
	playbackTTL  time.Duration
	logger       *slog.Logger
}

// NewChapterService is the constructor for chapterService.
func NewChapterService(
	txManager repository.TransactionManager,
	courseRepo repository.CourseRepository,
	chapterRepo repository.ChapterRepository,
	purchaseRepo repository.PurchaseRepository,
	videoStorage service.VideoStorage,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ChapterUsecase {
	uploadTTL := defaultUploadTTL
	playbackTTL := defaultPlaybackTTL
	if cfg.Storage != nil {
		if cfg.Storage.UploadTTL > 0 {
			uploadTTL = cfg.Storage.UploadTTL
		}
		if cfg.Storage.PlaybackTTL > 0 {
			playbackTTL = cfg.Storage.PlaybackTTL
		}
	}

	return &chapterService{
		txManager:    txManager,
		courseRepo:   courseRepo,
		chapterRepo:  chapterRepo,
		purchaseRepo: purchaseRepo,
		videoStorage: videoStorage,
		uploadTTL:    uploadTTL,
		playbackTTL:  playbackTTL,
		logger:       logger,
	}
}

func (srv *chapterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateChapter appends a new draft chapter at the end of a course.
func (srv *chapterService) CreateChapter(ctx context.Context, instructorID uuid.UUID, input usecase.CreateChapterInput) (*entity.Chapter, error) {
	if input.Title == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}

	if _, err := srv.ownedCourse(ctx, instructorID, input.CourseID); err != nil {
		return nil, err
	}

	var chapter *entity.Chapter
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		chapterRepo := repoFactory.ChapterRepo()

		maxPos, err := chapterRepo.MaxPosition(ctx, input.CourseID)
		if err != nil {
			return errors.Wrap(err, "failed to get chapter position")
		}

		chapter = &entity.Chapter{
			CourseID: input.CourseID,
			Title:    input.Title,
			Position: maxPos + 1,
		}

		return chapterRepo.Create(ctx, chapter)
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Chapter created", slog.Any("chapter_id", chapter.ID), slog.Any("course_id", input.CourseID))

	return chapter, nil
}

// GetChapter retrieves a chapter for its instructor, with gate state.
func (srv *chapterService) GetChapter(ctx context.Context, instructorID, courseID, chapterID uuid.UUID) (*usecase.ChapterWithStatus, error) {
	chapter, err := srv.ownedChapter(ctx, instructorID, courseID, chapterID)
	if err != nil {
		return nil, err
	}

	return &usecase.ChapterWithStatus{
		Chapter:        chapter,
		CompletionText: chapter.CompletionText(),
		CanPublish:     chapter.RequiredFieldsComplete(),
	}, nil
}

// UpdateChapter edits chapter fields.
func (srv *chapterService) UpdateChapter(ctx context.Context, instructorID, courseID, chapterID uuid.UUID, input usecase.UpdateChapterInput) (*entity.Chapter, error) {
	chapter, err := srv.ownedChapter(ctx, instructorID, courseID, chapterID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("title cannot be empty")
		}
		chapter.Title = *input.Title
	}
	if input.Description != nil {
		chapter.Description = *input.Description
	}
	if input.IsFree != nil {
		chapter.IsFree = *input.IsFree
	}

	if err := srv.chapterRepo.Update(ctx, chapter); err != nil {
		return nil, errors.Wrap(err, "failed to update chapter")
	}

	return chapter, nil
}

// DeleteChapter removes a chapter and its video. If the deleted chapter was
// the course's last published one, the course is unpublished too.
func (srv *chapterService) DeleteChapter(ctx context.Context, instructorID, courseID, chapterID uuid.UUID) error {
	chapter, err := srv.ownedChapter(ctx, instructorID, courseID, chapterID)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ChapterRepo().Delete(ctx, chapter.ID); err != nil {
			return errors.Wrap(err, "failed to delete chapter")
		}

		return srv.unpublishCourseIfEmpty(ctx, repoFactory, courseID)
	})
	if err != nil {
		return err
	}

	if chapter.VideoKey != "" {
		if err := srv.videoStorage.Delete(ctx, chapter.VideoKey); err != nil {
			srv.log(ctx).Warn("Failed to delete chapter video",
				slog.Any("error", err), slog.Any("chapter_id", chapter.ID))
		}
	}
	srv.log(ctx).Info("Chapter deleted", slog.Any("chapter_id", chapterID), slog.Any("course_id", courseID))

	return nil
}

// ReorderChapters applies a new chapter ordering within a course.
func (srv *chapterService) ReorderChapters(ctx context.Context, instructorID uuid.UUID, input usecase.ReorderChaptersInput) error {
	course, err := srv.ownedCourse(ctx, instructorID, input.CourseID)
	if err != nil {
		return err
	}

	// The new ordering must be a permutation of the course's chapters.
	existing := make(map[uuid.UUID]bool, len(course.Chapters))
	for _, chapter := range course.Chapters {
		existing[chapter.ID] = true
	}
	if len(input.ChapterIDs) != len(existing) {
		return domainerrors.ErrValidationFailed.WithDetails("chapter list does not match the course")
	}
	positions := make(map[uuid.UUID]int, len(input.ChapterIDs))
	for i, id := range input.ChapterIDs {
		if !existing[id] {
			return domainerrors.ErrValidationFailed.WithDetails("chapter list does not match the course")
		}
		if _, dup := positions[id]; dup {
			return domainerrors.ErrValidationFailed.WithDetails("duplicate chapter in ordering")
		}
		positions[id] = i + 1
	}

	if err := srv.chapterRepo.UpdatePositions(ctx, input.CourseID, positions); err != nil {
		return errors.Wrap(err, "failed to reorder chapters")
	}

	return nil
}

// PublishChapter makes a chapter visible inside its course.
func (srv *chapterService) PublishChapter(ctx context.Context, instructorID, courseID, chapterID uuid.UUID) error {
	chapter, err := srv.ownedChapter(ctx, instructorID, courseID, chapterID)
	if err != nil {
		return err
	}

	if !chapter.RequiredFieldsComplete() {
		return domainerrors.ErrChapterIncomplete.WithDetails(chapter.CompletionText())
	}

	if chapter.IsPublished {
		return nil
	}

	chapter.IsPublished = true
	if err := srv.chapterRepo.Update(ctx, chapter); err != nil {
		return errors.Wrap(err, "failed to publish chapter")
	}
	srv.log(ctx).Info("Chapter published", slog.Any("chapter_id", chapter.ID))

	return nil
}

// UnpublishChapter hides a chapter. Unpublishing the course's last published
// chapter cascades and unpublishes the course.
func (srv *chapterService) UnpublishChapter(ctx context.Context, instructorID, courseID, chapterID uuid.UUID) error {
	chapter, err := srv.ownedChapter(ctx, instructorID, courseID, chapterID)
	if err != nil {
		return err
	}

	if !chapter.IsPublished {
		return nil
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		chapter.IsPublished = false
		if err := repoFactory.ChapterRepo().Update(ctx, chapter); err != nil {
			return errors.Wrap(err, "failed to unpublish chapter")
		}

		return srv.unpublishCourseIfEmpty(ctx, repoFactory, courseID)
	})
	if err != nil {
		return err
	}
	srv.log(ctx).Info("Chapter unpublished", slog.Any("chapter_id", chapter.ID))

	return nil
}

// RequestVideoUpload presigns an upload slot for the chapter's video and
// records the pending object key.
func (srv *chapterService) RequestVideoUpload(ctx context.Context, instructorID, courseID, chapterID uuid.UUID) (*usecase.VideoUploadTicket, error) {
	chapter, err := srv.ownedChapter(ctx, instructorID, courseID, chapterID)
	if err != nil {
		return nil, err
	}

	url, key, err := srv.videoStorage.PresignUpload(ctx, courseID.String(), chapterID.String(), srv.uploadTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to presign video upload")
	}

	previousKey := chapter.VideoKey

	// A new upload supersedes whatever was there; the asset ID resets until
	// the processing webhook confirms the fresh object.
	chapter.VideoKey = key
	chapter.VideoAssetID = ""
	if err := srv.chapterRepo.Update(ctx, chapter); err != nil {
		return nil, errors.Wrap(err, "failed to record upload key")
	}

	if previousKey != "" && previousKey != key {
		if err := srv.videoStorage.Delete(ctx, previousKey); err != nil {
			srv.log(ctx).Warn("Failed to delete replaced video",
				slog.Any("error", err), slog.String("video_key", previousKey))
		}
	}
	srv.log(ctx).Info("Video upload requested", slog.Any("chapter_id", chapter.ID), slog.String("video_key", key))

	return &usecase.VideoUploadTicket{UploadURL: url, VideoKey: key}, nil
}

// ConfirmVideoAsset records the processed asset ID once the video pipeline
// reports the upload playable.
func (srv *chapterService) ConfirmVideoAsset(ctx context.Context, videoKey, assetID string) error {
	if videoKey == "" || assetID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("video key and asset ID are required")
	}

	chapter, err := srv.chapterRepo.FindByVideoKey(ctx, videoKey)
	if err != nil {
		if errors.Is(err, repository.ErrChapterNotFound) {
			// The chapter may have been deleted while the video was processing.
			return domainerrors.ErrChapterNotFound
		}

		return errors.Wrap(err, "failed to find chapter by video key")
	}

	chapter.VideoAssetID = assetID
	if err := srv.chapterRepo.Update(ctx, chapter); err != nil {
		return errors.Wrap(err, "failed to record video asset")
	}
	srv.log(ctx).Info("Video asset confirmed", slog.Any("chapter_id", chapter.ID), slog.String("asset_id", assetID))

	return nil
}

// ChapterPlayback presigns a playback URL. Free chapters stream for any
// authenticated user; the rest require a completed purchase.
func (srv *chapterService) ChapterPlayback(ctx context.Context, userID, courseID, chapterID uuid.UUID) (string, error) {
	course, err := srv.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return "", domainerrors.ErrCourseNotFound
		}

		return "", errors.Wrap(err, "failed to find course")
	}

	chapter, err := srv.chapterRepo.FindByIDAndCourse(ctx, chapterID, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrChapterNotFound) {
			return "", domainerrors.ErrChapterNotFound
		}

		return "", errors.Wrap(err, "failed to find chapter")
	}

	isOwner := course.InstructorID == userID
	if !isOwner {
		if !course.IsPublished || !chapter.IsPublished {
			return "", domainerrors.ErrChapterNotFound
		}
		if !chapter.IsFree {
			purchase, err := srv.purchaseRepo.FindByUserAndCourse(ctx, userID, courseID)
			if err != nil && !errors.Is(err, repository.ErrPurchaseNotFound) {
				return "", errors.Wrap(err, "failed to look up purchase")
			}
			if purchase == nil || !purchase.Grants() {
				return "", domainerrors.ErrPurchaseRequired
			}
		}
	}

	if chapter.VideoKey == "" || chapter.VideoAssetID == "" {
		return "", domainerrors.ErrNotFound.WrapMessage("chapter has no playable video")
	}

	url, err := srv.videoStorage.PresignPlayback(ctx, chapter.VideoKey, srv.playbackTTL)
	if err != nil {
		return "", errors.Wrap(err, "failed to presign playback")
	}

	return url, nil
}

// --- Helpers ---

func (srv *chapterService) ownedCourse(ctx context.Context, instructorID, courseID uuid.UUID) (*entity.Course, error) {
	course, err := srv.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, domainerrors.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course")
	}
	if course.InstructorID != instructorID {
		return nil, domainerrors.ErrCourseNotFound
	}

	return course, nil
}

func (srv *chapterService) ownedChapter(ctx context.Context, instructorID, courseID, chapterID uuid.UUID) (*entity.Chapter, error) {
	if _, err := srv.ownedCourse(ctx, instructorID, courseID); err != nil {
		return nil, err
	}

	chapter, err := srv.chapterRepo.FindByIDAndCourse(ctx, chapterID, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrChapterNotFound) {
			return nil, domainerrors.ErrChapterNotFound
		}

		return nil, errors.Wrap(err, "failed to find chapter")
	}

	return chapter, nil
}

// unpublishCourseIfEmpty hides the course when no published chapters remain.
func (srv *chapterService) unpublishCourseIfEmpty(ctx context.Context, repoFactory repository.RepositoryFactory, courseID uuid.UUID) error {
	remaining, err := repoFactory.ChapterRepo().CountPublishedByCourse(ctx, courseID)
	if err != nil {
		return errors.Wrap(err, "failed to count published chapters")
	}
	if remaining > 0 {
		return nil
	}

	course, err := repoFactory.CourseRepo().FindByID(ctx, courseID)
	if err != nil {
		return errors.Wrap(err, "failed to find course")
	}
	if !course.IsPublished {
		return nil
	}

	course.IsPublished = false
	if err := repoFactory.CourseRepo().Update(ctx, course); err != nil {
		return errors.Wrap(err, "failed to unpublish course")
	}
	srv.log(ctx).Info("Course unpublished, no published chapters remain", slog.Any("course_id", courseID))

	return nil
}
