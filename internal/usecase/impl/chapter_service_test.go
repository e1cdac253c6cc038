package impl

import (
	"context"
	"testing"
	"time"

	"academy/config"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	mockRepo "academy/internal/mocks/repository"
	mockService "academy/internal/mocks/service"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type chapterServiceFixtures struct {
	service      *chapterService
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	courseRepo   *mockRepo.MockCourseRepository
	chapterRepo  *mockRepo.MockChapterRepository
	purchaseRepo *mockRepo.MockPurchaseRepository
	videoStorage *mockService.MockVideoStorage
}

func createTestChapterService(t *testing.T) chapterServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	courseRepo := mockRepo.NewMockCourseRepository(t)
	chapterRepo := mockRepo.NewMockChapterRepository(t)
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	videoStorage := mockService.NewMockVideoStorage(t)

	factory.EXPECT().CourseRepo().Return(courseRepo).Maybe()
	factory.EXPECT().ChapterRepo().Return(chapterRepo).Maybe()
	passthroughTx(txManager, factory)

	service := NewChapterService(
		txManager, courseRepo, chapterRepo, purchaseRepo,
		videoStorage, &config.Config{}, newDiscardLogger(),
	).(*chapterService)

	return chapterServiceFixtures{
		service:      service,
		txManager:    txManager,
		factory:      factory,
		courseRepo:   courseRepo,
		chapterRepo:  chapterRepo,
		purchaseRepo: purchaseRepo,
		videoStorage: videoStorage,
	}
}

func (fx chapterServiceFixtures) expectOwnedCourse(ctx context.Context, course *entity.Course) {
	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)
}

func TestChapterService_CreateChapter_AppendsAtEnd(t *testing.T) {
	fx := createTestChapterService(t)

	ctx := context.Background()
	instructorID := uuid.New()
	course := &entity.Course{ID: uuid.New(), InstructorID: instructorID, Title: "Go"}
	fx.expectOwnedCourse(ctx, course)

	fx.chapterRepo.EXPECT().
		MaxPosition(ctx, course.ID).
		Return(3, nil)

	fx.chapterRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Chapter")).
		Return(nil)

	chapter, err := fx.service.CreateChapter(ctx, instructorID, usecase.CreateChapterInput{
		CourseID: course.ID,
		Title:    "Interfaces",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, chapter.Position)
	assert.False(t, chapter.IsPublished)
}

func TestChapterService_CreateChapter_NonOwner(t *testing.T) {
	fx := createTestChapterService(t)

	ctx := context.Background()
	course := &entity.Course{ID: uuid.New(), InstructorID: uuid.New(), Title: "Go"}
	fx.expectOwnedCourse(ctx, course)

	_, err := fx.service.CreateChapter(ctx, uuid.New(), usecase.CreateChapterInput{
		CourseID: course.ID,
		Title:    "Interfaces",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)
}

func TestChapterService_ReorderChapters(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	instructorID := uuid.New()

	newCourse := func() *entity.Course {
		return &entity.Course{
			ID:           uuid.New(),
			InstructorID: instructorID,
			Chapters: []*entity.Chapter{
				{ID: ids[0], Position: 1},
				{ID: ids[1], Position: 2},
				{ID: ids[2], Position: 3},
			},
		}
	}

	t.Run("valid permutation", func(t *testing.T) {
		fx := createTestChapterService(t)
		ctx := context.Background()
		course := newCourse()
		fx.expectOwnedCourse(ctx, course)

		fx.chapterRepo.EXPECT().
			UpdatePositions(ctx, course.ID, map[uuid.UUID]int{
				ids[2]: 1,
				ids[0]: 2,
				ids[1]: 3,
			}).
			Return(nil)

		err := fx.service.ReorderChapters(ctx, instructorID, usecase.ReorderChaptersInput{
			CourseID:   course.ID,
			ChapterIDs: []uuid.UUID{ids[2], ids[0], ids[1]},
		})
		assert.NoError(t, err)
	})

	t.Run("missing chapter", func(t *testing.T) {
		fx := createTestChapterService(t)
		ctx := context.Background()
		course := newCourse()
		fx.expectOwnedCourse(ctx, course)

		err := fx.service.ReorderChapters(ctx, instructorID, usecase.ReorderChaptersInput{
			CourseID:   course.ID,
			ChapterIDs: []uuid.UUID{ids[0], ids[1]},
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("foreign chapter", func(t *testing.T) {
		fx := createTestChapterService(t)
		ctx := context.Background()
		course := newCourse()
		fx.expectOwnedCourse(ctx, course)

		err := fx.service.ReorderChapters(ctx, instructorID, usecase.ReorderChaptersInput{
			CourseID:   course.ID,
			ChapterIDs: []uuid.UUID{ids[0], ids[1], uuid.New()},
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("duplicate chapter", func(t *testing.T) {
		fx := createTestChapterService(t)
		ctx := context.Background()
		course := newCourse()
		fx.expectOwnedCourse(ctx, course)

		err := fx.service.ReorderChapters(ctx, instructorID, usecase.ReorderChaptersInput{
			CourseID:   course.ID,
			ChapterIDs: []uuid.UUID{ids[0], ids[1], ids[1]},
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestChapterService_PublishChapter_Gated(t *testing.T) {
	fx := createTestChapterService(t)

	ctx := context.Background()
	instructorID := uuid.New()
	course := &entity.Course{ID: uuid.New(), InstructorID: instructorID}
	chapter := &entity.Chapter{ID: uuid.New(), CourseID: course.ID, Title: "Intro"}

	fx.expectOwnedCourse(ctx, course)
	fx.chapterRepo.EXPECT().
		FindByIDAndCourse(ctx, chapter.ID, course.ID).
		Return(chapter, nil)

	err := fx.service.PublishChapter(ctx, instructorID, course.ID, chapter.ID)
	require.ErrorIs(t, err, domainerrors.ErrChapterIncomplete)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "(1/2)", appErr.Details())
}

func TestChapterService_PublishChapter(t *testing.T) {
	fx := createTestChapterService(t)

	ctx := context.Background()
	instructorID := uuid.New()
	course := &entity.Course{ID: uuid.New(), InstructorID: instructorID}
	chapter := &entity.Chapter{
		ID: uuid.New(), CourseID: course.ID,
		Title: "Intro", VideoKey: "videos/x", VideoAssetID: "asset-1",
	}

	fx.expectOwnedCourse(ctx, course)
	fx.chapterRepo.EXPECT().
		FindByIDAndCourse(ctx, chapter.ID, course.ID).
		Return(chapter, nil)
	fx.chapterRepo.EXPECT().
		Update(ctx, chapter).
		Return(nil)

	require.NoError(t, fx.service.PublishChapter(ctx, instructorID, course.ID, chapter.ID))
	assert.True(t, chapter.IsPublished)
}

func TestChapterService_UnpublishChapter_CascadesToCourse(t *testing.T) {
	fx := createTestChapterService(t)

	ctx := context.Background()
	instructorID := uuid.New()
	course := &entity.Course{ID: uuid.New(), InstructorID: instructorID, IsPublished: true}
	chapter := &entity.Chapter{ID: uuid.New(), CourseID: course.ID, IsPublished: true}

	// Ownership lookup, then the in-transaction course reload.
	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil).
		Times(2)
	fx.chapterRepo.EXPECT().
		FindByIDAndCourse(ctx, chapter.ID, course.ID).
		Return(chapter, nil)
	fx.chapterRepo.EXPECT().
		Update(ctx, chapter).
		Return(nil)
	fx.chapterRepo.EXPECT().
		CountPublishedByCourse(ctx, course.ID).
		Return(int64(0), nil)
	fx.courseRepo.EXPECT().
		Update(ctx, course).
		Return(nil)

	require.NoError(t, fx.service.UnpublishChapter(ctx, instructorID, course.ID, chapter.ID))
	assert.False(t, chapter.IsPublished)
	assert.False(t, course.IsPublished)
}

func TestChapterService_UnpublishChapter_OthersRemainPublished(t *testing.T) {
	fx := createTestChapterService(t)

	ctx := context.Background()
	instructorID := uuid.New()
	course := &entity.Course{ID: uuid.New(), InstructorID: instructorID, IsPublished: true}
	chapter := &entity.Chapter{ID: uuid.New(), CourseID: course.ID, IsPublished: true}

	fx.expectOwnedCourse(ctx, course)
	fx.chapterRepo.EXPECT().
		FindByIDAndCourse(ctx, chapter.ID, course.ID).
		Return(chapter, nil)
	fx.chapterRepo.EXPECT().
		Update(ctx, chapter).
		Return(nil)
	fx.chapterRepo.EXPECT().
		CountPublishedByCourse(ctx, course.ID).
		Return(int64(2), nil)

	require.NoError(t, fx.service.UnpublishChapter(ctx, instructorID, course.ID, chapter.ID))
	assert.True(t, course.IsPublished)
}

func TestChapterService_RequestVideoUpload_ReplacesPreviousVideo(t *testing.T) {
	fx := createTestChapterService(t)

	ctx := context.Background()
	instructorID := uuid.New()
	course := &entity.Course{ID: uuid.New(), InstructorID: instructorID}
	chapter := &entity.Chapter{
		ID: uuid.New(), CourseID: course.ID,
		VideoKey: "videos/old", VideoAssetID: "asset-old",
	}

	fx.expectOwnedCourse(ctx, course)
	fx.chapterRepo.EXPECT().
		FindByIDAndCourse(ctx, chapter.ID, course.ID).
		Return(chapter, nil)

	fx.videoStorage.EXPECT().
		PresignUpload(ctx, course.ID.String(), chapter.ID.String(), 15*time.Minute).
		Return("https://storage.example.com/upload", "videos/new", nil)

	fx.chapterRepo.EXPECT().
		Update(ctx, chapter).
		Return(nil)

	fx.videoStorage.EXPECT().
		Delete(ctx, "videos/old").
		Return(nil)

	ticket, err := fx.service.RequestVideoUpload(ctx, instructorID, course.ID, chapter.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://storage.example.com/upload", ticket.UploadURL)
	assert.Equal(t, "videos/new", ticket.VideoKey)

	// The asset ID resets until the processing webhook confirms the new object.
	assert.Equal(t, "videos/new", chapter.VideoKey)
	assert.Empty(t, chapter.VideoAssetID)
}

func TestChapterService_ConfirmVideoAsset(t *testing.T) {
	fx := createTestChapterService(t)

	ctx := context.Background()
	chapter := &entity.Chapter{ID: uuid.New(), VideoKey: "videos/new"}

	fx.chapterRepo.EXPECT().
		FindByVideoKey(ctx, "videos/new").
		Return(chapter, nil)
	fx.chapterRepo.EXPECT().
		Update(ctx, chapter).
		Return(nil)

	require.NoError(t, fx.service.ConfirmVideoAsset(ctx, "videos/new", "asset-7"))
	assert.Equal(t, "asset-7", chapter.VideoAssetID)
}

func TestChapterService_ConfirmVideoAsset_ChapterGone(t *testing.T) {
	fx := createTestChapterService(t)

	ctx := context.Background()
	fx.chapterRepo.EXPECT().
		FindByVideoKey(ctx, "videos/gone").
		Return(nil, repository.ErrChapterNotFound)

	err := fx.service.ConfirmVideoAsset(ctx, "videos/gone", "asset-7")
	assert.ErrorIs(t, err, domainerrors.ErrChapterNotFound)
}

func TestChapterService_ChapterPlayback(t *testing.T) {
	instructorID := uuid.New()
	courseID := uuid.New()
	chapterID := uuid.New()

	playableChapter := func() *entity.Chapter {
		return &entity.Chapter{
			ID: chapterID, CourseID: courseID, IsPublished: true,
			VideoKey: "videos/x", VideoAssetID: "asset-1",
		}
	}

	expectLookups := func(fx chapterServiceFixtures, ctx context.Context, course *entity.Course, chapter *entity.Chapter) {
		fx.courseRepo.EXPECT().
			FindByID(ctx, courseID).
			Return(course, nil)
		fx.chapterRepo.EXPECT().
			FindByIDAndCourse(ctx, chapterID, courseID).
			Return(chapter, nil)
	}

	t.Run("owner bypasses publish and purchase gates", func(t *testing.T) {
		fx := createTestChapterService(t)
		ctx := context.Background()
		course := &entity.Course{ID: courseID, InstructorID: instructorID}
		chapter := playableChapter()
		chapter.IsPublished = false
		expectLookups(fx, ctx, course, chapter)

		fx.videoStorage.EXPECT().
			PresignPlayback(ctx, "videos/x", 2*time.Hour).
			Return("https://stream.example.com/x", nil)

		url, err := fx.service.ChapterPlayback(ctx, instructorID, courseID, chapterID)
		require.NoError(t, err)
		assert.Equal(t, "https://stream.example.com/x", url)
	})

	t.Run("free chapter streams without purchase", func(t *testing.T) {
		fx := createTestChapterService(t)
		ctx := context.Background()
		course := &entity.Course{ID: courseID, InstructorID: instructorID, IsPublished: true}
		chapter := playableChapter()
		chapter.IsFree = true
		expectLookups(fx, ctx, course, chapter)

		fx.videoStorage.EXPECT().
			PresignPlayback(ctx, "videos/x", 2*time.Hour).
			Return("https://stream.example.com/x", nil)

		_, err := fx.service.ChapterPlayback(ctx, uuid.New(), courseID, chapterID)
		assert.NoError(t, err)
	})

	t.Run("paid chapter requires completed purchase", func(t *testing.T) {
		fx := createTestChapterService(t)
		ctx := context.Background()
		userID := uuid.New()
		course := &entity.Course{ID: courseID, InstructorID: instructorID, IsPublished: true}
		expectLookups(fx, ctx, course, playableChapter())

		fx.purchaseRepo.EXPECT().
			FindByUserAndCourse(ctx, userID, courseID).
			Return(nil, repository.ErrPurchaseNotFound)

		_, err := fx.service.ChapterPlayback(ctx, userID, courseID, chapterID)
		assert.ErrorIs(t, err, domainerrors.ErrPurchaseRequired)
	})

	t.Run("pending purchase does not grant access", func(t *testing.T) {
		fx := createTestChapterService(t)
		ctx := context.Background()
		userID := uuid.New()
		course := &entity.Course{ID: courseID, InstructorID: instructorID, IsPublished: true}
		expectLookups(fx, ctx, course, playableChapter())

		fx.purchaseRepo.EXPECT().
			FindByUserAndCourse(ctx, userID, courseID).
			Return(&entity.Purchase{Status: entity.PurchaseStatusPending}, nil)

		_, err := fx.service.ChapterPlayback(ctx, userID, courseID, chapterID)
		assert.ErrorIs(t, err, domainerrors.ErrPurchaseRequired)
	})

	t.Run("unpublished chapter hidden from students", func(t *testing.T) {
		fx := createTestChapterService(t)
		ctx := context.Background()
		course := &entity.Course{ID: courseID, InstructorID: instructorID, IsPublished: true}
		chapter := playableChapter()
		chapter.IsPublished = false
		expectLookups(fx, ctx, course, chapter)

		_, err := fx.service.ChapterPlayback(ctx, uuid.New(), courseID, chapterID)
		assert.ErrorIs(t, err, domainerrors.ErrChapterNotFound)
	})

	t.Run("no processed video", func(t *testing.T) {
		fx := createTestChapterService(t)
		ctx := context.Background()
		course := &entity.Course{ID: courseID, InstructorID: instructorID, IsPublished: true}
		chapter := playableChapter()
		chapter.VideoAssetID = ""
		chapter.IsFree = true
		expectLookups(fx, ctx, course, chapter)

		_, err := fx.service.ChapterPlayback(ctx, uuid.New(), courseID, chapterID)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}

func TestChapterService_DeleteChapter_RemovesVideoAndCascades(t *testing.T) {
	fx := createTestChapterService(t)

	ctx := context.Background()
	instructorID := uuid.New()
	course := &entity.Course{ID: uuid.New(), InstructorID: instructorID, IsPublished: true}
	chapter := &entity.Chapter{ID: uuid.New(), CourseID: course.ID, IsPublished: true, VideoKey: "videos/x"}

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil).
		Times(2)
	fx.chapterRepo.EXPECT().
		FindByIDAndCourse(ctx, chapter.ID, course.ID).
		Return(chapter, nil)
	fx.chapterRepo.EXPECT().
		Delete(ctx, chapter.ID).
		Return(nil)
	fx.chapterRepo.EXPECT().
		CountPublishedByCourse(ctx, course.ID).
		Return(int64(0), nil)
	fx.courseRepo.EXPECT().
		Update(ctx, course).
		Return(nil)
	fx.videoStorage.EXPECT().
		Delete(ctx, "videos/x").
		Return(nil)

	require.NoError(t, fx.service.DeleteChapter(ctx, instructorID, course.ID, chapter.ID))
	assert.False(t, course.IsPublished)
}
