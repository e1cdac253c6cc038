package impl

import (
	"context"
	"testing"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	mockRepo "academy/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type progressServiceFixtures struct {
	service      *progressService
	courseRepo   *mockRepo.MockCourseRepository
	chapterRepo  *mockRepo.MockChapterRepository
	progressRepo *mockRepo.MockProgressRepository
	purchaseRepo *mockRepo.MockPurchaseRepository
}

func createTestProgressService(t *testing.T) progressServiceFixtures {
	courseRepo := mockRepo.NewMockCourseRepository(t)
	chapterRepo := mockRepo.NewMockChapterRepository(t)
	progressRepo := mockRepo.NewMockProgressRepository(t)
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)

	service := NewProgressService(
		courseRepo, chapterRepo, progressRepo, purchaseRepo, newDiscardLogger(),
	).(*progressService)

	return progressServiceFixtures{
		service:      service,
		courseRepo:   courseRepo,
		chapterRepo:  chapterRepo,
		progressRepo: progressRepo,
		purchaseRepo: purchaseRepo,
	}
}

func TestProgressService_SetChapterProgress(t *testing.T) {
	fx := createTestProgressService(t)

	ctx := context.Background()
	userID := uuid.New()
	course := &entity.Course{ID: uuid.New(), InstructorID: uuid.New(), IsPublished: true}
	chapters := []*entity.Chapter{
		{ID: uuid.New(), CourseID: course.ID, IsPublished: true, IsFree: true},
		{ID: uuid.New(), CourseID: course.ID, IsPublished: true},
	}

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)
	fx.chapterRepo.EXPECT().
		FindByIDAndCourse(ctx, chapters[0].ID, course.ID).
		Return(chapters[0], nil)

	var saved *entity.UserProgress
	fx.progressRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.UserProgress")).
		Run(func(_ context.Context, record *entity.UserProgress) {
			saved = record
		}).
		Return(nil)

	fx.chapterRepo.EXPECT().
		ListPublishedByCourse(ctx, course.ID).
		Return(chapters, nil)
	fx.progressRepo.EXPECT().
		CountCompleted(ctx, userID, []uuid.UUID{chapters[0].ID, chapters[1].ID}).
		Return(int64(1), nil)

	progress, err := fx.service.SetChapterProgress(ctx, userID, course.ID, chapters[0].ID, true)
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, userID, saved.UserID)
	assert.Equal(t, chapters[0].ID, saved.ChapterID)
	assert.True(t, saved.IsCompleted)

	assert.Equal(t, 1, progress.CompletedChapters)
	assert.Equal(t, 2, progress.TotalChapters)
	assert.InDelta(t, 50.0, progress.Percentage, 1e-9)
}

func TestProgressService_SetChapterProgress_PaidChapterRequiresPurchase(t *testing.T) {
	fx := createTestProgressService(t)

	ctx := context.Background()
	userID := uuid.New()
	course := &entity.Course{ID: uuid.New(), InstructorID: uuid.New(), IsPublished: true}
	chapter := &entity.Chapter{ID: uuid.New(), CourseID: course.ID, IsPublished: true}

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)
	fx.chapterRepo.EXPECT().
		FindByIDAndCourse(ctx, chapter.ID, course.ID).
		Return(chapter, nil)
	fx.purchaseRepo.EXPECT().
		FindByUserAndCourse(ctx, userID, course.ID).
		Return(nil, repository.ErrPurchaseNotFound)

	_, err := fx.service.SetChapterProgress(ctx, userID, course.ID, chapter.ID, true)
	assert.ErrorIs(t, err, domainerrors.ErrPurchaseRequired)
}

func TestProgressService_SetChapterProgress_UnpublishedChapter(t *testing.T) {
	fx := createTestProgressService(t)

	ctx := context.Background()
	course := &entity.Course{ID: uuid.New(), IsPublished: true}
	chapter := &entity.Chapter{ID: uuid.New(), CourseID: course.ID, IsFree: true}

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)
	fx.chapterRepo.EXPECT().
		FindByIDAndCourse(ctx, chapter.ID, course.ID).
		Return(chapter, nil)

	_, err := fx.service.SetChapterProgress(ctx, uuid.New(), course.ID, chapter.ID, true)
	assert.ErrorIs(t, err, domainerrors.ErrChapterNotFound)
}

func TestProgressService_SetChapterProgress_UnpublishedCourse(t *testing.T) {
	fx := createTestProgressService(t)

	ctx := context.Background()
	course := &entity.Course{ID: uuid.New()}

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)

	_, err := fx.service.SetChapterProgress(ctx, uuid.New(), course.ID, uuid.New(), true)
	assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)
}

func TestProgressService_GetCourseProgress_NoPublishedChapters(t *testing.T) {
	fx := createTestProgressService(t)

	ctx := context.Background()
	userID := uuid.New()
	course := &entity.Course{ID: uuid.New(), IsPublished: true}

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)
	fx.chapterRepo.EXPECT().
		ListPublishedByCourse(ctx, course.ID).
		Return(nil, nil)

	progress, err := fx.service.GetCourseProgress(ctx, userID, course.ID)
	require.NoError(t, err)
	assert.Zero(t, progress.TotalChapters)
	assert.Zero(t, progress.Percentage)
}

func TestProgressService_GetCourseProgress_AllComplete(t *testing.T) {
	fx := createTestProgressService(t)

	ctx := context.Background()
	userID := uuid.New()
	course := &entity.Course{ID: uuid.New(), IsPublished: true}
	chapters := []*entity.Chapter{
		{ID: uuid.New(), IsPublished: true},
		{ID: uuid.New(), IsPublished: true},
	}

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)
	fx.chapterRepo.EXPECT().
		ListPublishedByCourse(ctx, course.ID).
		Return(chapters, nil)
	fx.progressRepo.EXPECT().
		CountCompleted(ctx, userID, []uuid.UUID{chapters[0].ID, chapters[1].ID}).
		Return(int64(2), nil)

	progress, err := fx.service.GetCourseProgress(ctx, userID, course.ID)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, progress.Percentage, 1e-9)
}

func TestProgressService_GetCourseProgress_UnpublishedVisibleToInstructor(t *testing.T) {
	fx := createTestProgressService(t)

	ctx := context.Background()
	instructorID := uuid.New()
	course := &entity.Course{ID: uuid.New(), InstructorID: instructorID}

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)
	fx.chapterRepo.EXPECT().
		ListPublishedByCourse(ctx, course.ID).
		Return(nil, nil)

	_, err := fx.service.GetCourseProgress(ctx, instructorID, course.ID)
	assert.NoError(t, err)

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)

	_, err = fx.service.GetCourseProgress(ctx, uuid.New(), course.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)
}
