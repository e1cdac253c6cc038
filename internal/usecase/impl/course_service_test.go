package impl

import (
	"context"
	"testing"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/domain/service"
	mockRepo "academy/internal/mocks/repository"
	mockService "academy/internal/mocks/service"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// courseServiceFixtures holds all test dependencies for course service tests.
type courseServiceFixtures struct {
	service      *courseService
	courseRepo   *mockRepo.MockCourseRepository
	purchaseRepo *mockRepo.MockPurchaseRepository
	progressRepo *mockRepo.MockProgressRepository
	videoStorage *mockService.MockVideoStorage
	attachments  *mockService.MockAttachmentStore
	qrService    *mockService.MockQRCodeService
	publisher    *mockService.MockEventPublisher
}

func createTestCourseService(t *testing.T) courseServiceFixtures {
	courseRepo := mockRepo.NewMockCourseRepository(t)
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	progressRepo := mockRepo.NewMockProgressRepository(t)
	videoStorage := mockService.NewMockVideoStorage(t)
	attachments := mockService.NewMockAttachmentStore(t)
	qrService := mockService.NewMockQRCodeService(t)
	publisher := mockService.NewMockEventPublisher(t)

	service := NewCourseService(
		courseRepo, purchaseRepo, progressRepo,
		videoStorage, attachments, qrService, publisher,
		newDiscardLogger(),
	).(*courseService)

	return courseServiceFixtures{
		service:      service,
		courseRepo:   courseRepo,
		purchaseRepo: purchaseRepo,
		progressRepo: progressRepo,
		videoStorage: videoStorage,
		attachments:  attachments,
		qrService:    qrService,
		publisher:    publisher,
	}
}

// completeCourse returns a course that passes every publish-gate check.
func completeCourse(instructorID uuid.UUID) *entity.Course {
	return &entity.Course{
		ID:           uuid.New(),
		InstructorID: instructorID,
		Title:        "Go from scratch",
		Description:  "Everything from syntax to servers",
		ImageURL:     "https://cdn.example.com/cover.png",
		Price:        int64Ptr(4900),
		Chapters: []*entity.Chapter{
			{ID: uuid.New(), Title: "Intro", IsPublished: true, VideoAssetID: "asset-1"},
		},
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}

func strPtr(s string) *string {
	return &s
}

func TestCourseService_CreateCourse(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	instructorID := uuid.New()

	fx.courseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Course")).
		Return(nil)

	course, err := fx.service.CreateCourse(ctx, usecase.CreateCourseInput{
		InstructorID: instructorID,
		Title:        "Go from scratch",
	})
	require.NoError(t, err)
	assert.Equal(t, instructorID, course.InstructorID)
	assert.False(t, course.IsPublished)
}

func TestCourseService_CreateCourse_MissingTitle(t *testing.T) {
	fx := createTestCourseService(t)

	_, err := fx.service.CreateCourse(context.Background(), usecase.CreateCourseInput{InstructorID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCourseService_GetCourse_HiddenFromNonOwner(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	course := completeCourse(uuid.New())

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)

	// Not the instructor's course: reported as missing, not forbidden.
	_, err := fx.service.GetCourse(ctx, uuid.New(), course.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)
}

func TestCourseService_GetCourse_Status(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	instructorID := uuid.New()
	course := &entity.Course{ID: uuid.New(), InstructorID: instructorID, Title: "Draft"}

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)

	result, err := fx.service.GetCourse(ctx, instructorID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "(1/5)", result.CompletionText)
	assert.False(t, result.CanPublish)
}

func TestCourseService_UpdateCourse_PatchesOnlyGivenFields(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	instructorID := uuid.New()
	course := completeCourse(instructorID)

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)

	fx.courseRepo.EXPECT().
		Update(ctx, course).
		Return(nil)

	updated, err := fx.service.UpdateCourse(ctx, instructorID, course.ID, usecase.UpdateCourseInput{
		Description: strPtr("New description"),
	})
	require.NoError(t, err)
	assert.Equal(t, "New description", updated.Description)
	assert.Equal(t, "Go from scratch", updated.Title)
}

func TestCourseService_UpdateCourse_RejectsNegativePrice(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	instructorID := uuid.New()
	course := completeCourse(instructorID)

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)

	_, err := fx.service.UpdateCourse(ctx, instructorID, course.ID, usecase.UpdateCourseInput{
		Price: int64Ptr(-1),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCourseService_PublishCourse_Gated(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	instructorID := uuid.New()
	course := &entity.Course{
		ID:           uuid.New(),
		InstructorID: instructorID,
		Title:        "Almost there",
		Description:  "d",
		ImageURL:     "i",
		// No price, no published chapter.
	}

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)

	err := fx.service.PublishCourse(ctx, instructorID, course.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCourseIncomplete)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "(3/5)", appErr.Details())
}

func TestCourseService_PublishCourse_EmitsEvent(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	instructorID := uuid.New()
	course := completeCourse(instructorID)

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)

	fx.courseRepo.EXPECT().
		Update(ctx, course).
		Return(nil)

	var published *service.CourseEvent
	fx.publisher.EXPECT().
		PublishCourseEvent(ctx, mock.AnythingOfType("*service.CourseEvent")).
		Run(func(_ context.Context, event *service.CourseEvent) {
			published = event
		}).
		Return(nil)

	require.NoError(t, fx.service.PublishCourse(ctx, instructorID, course.ID))
	assert.True(t, course.IsPublished)

	require.NotNil(t, published)
	assert.Equal(t, service.EventCoursePublished, published.Type)
	assert.Equal(t, course.ID.String(), published.CourseID)
	assert.Equal(t, course.Title, published.CourseTitle)
}

func TestCourseService_PublishCourse_AlreadyPublishedIsNoop(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	instructorID := uuid.New()
	course := completeCourse(instructorID)
	course.IsPublished = true

	// No Update and no event expected on the mocks.
	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)

	assert.NoError(t, fx.service.PublishCourse(ctx, instructorID, course.ID))
}

func TestCourseService_PublishCourse_EventFailureDoesNotFail(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	instructorID := uuid.New()
	course := completeCourse(instructorID)

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)

	fx.courseRepo.EXPECT().
		Update(ctx, course).
		Return(nil)

	fx.publisher.EXPECT().
		PublishCourseEvent(ctx, mock.Anything).
		Return(assert.AnError)

	assert.NoError(t, fx.service.PublishCourse(ctx, instructorID, course.ID))
}

func TestCourseService_UnpublishCourse(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	instructorID := uuid.New()
	course := completeCourse(instructorID)
	course.IsPublished = true

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)

	fx.courseRepo.EXPECT().
		Update(ctx, course).
		Return(nil)

	require.NoError(t, fx.service.UnpublishCourse(ctx, instructorID, course.ID))
	assert.False(t, course.IsPublished)
}

func TestCourseService_GetCatalogCourse_UnpublishedHidden(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	course := completeCourse(uuid.New())

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)

	_, err := fx.service.GetCatalogCourse(ctx, uuid.New(), course.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)
}

func TestCourseService_GetCatalogCourse_Anonymous(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	course := completeCourse(uuid.New())
	course.IsPublished = true

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)

	item, err := fx.service.GetCatalogCourse(ctx, uuid.Nil, course.ID)
	require.NoError(t, err)
	assert.False(t, item.Purchased)
	assert.Nil(t, item.Progress)
}

func TestCourseService_GetCatalogCourse_PurchaserSeesProgress(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	userID := uuid.New()
	course := completeCourse(uuid.New())
	course.IsPublished = true
	course.Chapters = []*entity.Chapter{
		{ID: uuid.New(), IsPublished: true},
		{ID: uuid.New(), IsPublished: true},
		{ID: uuid.New(), IsPublished: false},
	}

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)

	fx.purchaseRepo.EXPECT().
		FindByUserAndCourse(ctx, userID, course.ID).
		Return(&entity.Purchase{Status: entity.PurchaseStatusCompleted}, nil)

	fx.progressRepo.EXPECT().
		CountCompleted(ctx, userID, []uuid.UUID{course.Chapters[0].ID, course.Chapters[1].ID}).
		Return(int64(1), nil)

	item, err := fx.service.GetCatalogCourse(ctx, userID, course.ID)
	require.NoError(t, err)
	assert.True(t, item.Purchased)
	require.NotNil(t, item.Progress)
	assert.Equal(t, 1, item.Progress.CompletedChapters)
	assert.Equal(t, 2, item.Progress.TotalChapters)
	assert.InDelta(t, 50.0, item.Progress.Percentage, 1e-9)
}

func TestCourseService_GetCatalogCourse_PendingPurchaseGrantsNothing(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	userID := uuid.New()
	course := completeCourse(uuid.New())
	course.IsPublished = true

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)

	fx.purchaseRepo.EXPECT().
		FindByUserAndCourse(ctx, userID, course.ID).
		Return(&entity.Purchase{Status: entity.PurchaseStatusPending}, nil)

	item, err := fx.service.GetCatalogCourse(ctx, userID, course.ID)
	require.NoError(t, err)
	assert.False(t, item.Purchased)
	assert.Nil(t, item.Progress)
}

func TestCourseService_CourseShareQR(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	course := completeCourse(uuid.New())
	course.IsPublished = true

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)

	fx.qrService.EXPECT().
		GenerateCourseQR(course.ID).
		Return([]byte("png-bytes"), nil)

	png, err := fx.service.CourseShareQR(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestCourseService_ReadAttachment_RequiresPurchase(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	userID := uuid.New()
	course := completeCourse(uuid.New())

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)

	fx.purchaseRepo.EXPECT().
		FindByUserAndCourse(ctx, userID, course.ID).
		Return(nil, repository.ErrPurchaseNotFound)

	_, _, err := fx.service.ReadAttachment(ctx, userID, course.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrPurchaseRequired)
}

func TestCourseService_RemoveAttachment_ScopedToCourse(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	instructorID := uuid.New()
	course := completeCourse(instructorID)
	attachmentID := uuid.New()

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)

	// The attachment exists but belongs to another course.
	fx.courseRepo.EXPECT().
		FindAttachment(ctx, attachmentID).
		Return(&entity.Attachment{ID: attachmentID, CourseID: uuid.New()}, nil)

	err := fx.service.RemoveAttachment(ctx, instructorID, course.ID, attachmentID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
