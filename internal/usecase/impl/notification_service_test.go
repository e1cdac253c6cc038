package impl

import (
	"context"
	"testing"

	"academy/internal/domain/entity"
	"academy/internal/domain/service"
	mockRepo "academy/internal/mocks/repository"
	mockService "academy/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service      *notificationService
	deviceRepo   *mockRepo.MockDeviceRepository
	purchaseRepo *mockRepo.MockPurchaseRepository
	push         *mockService.MockNotificationService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	push := mockService.NewMockNotificationService(t)

	service := NewNotificationService(
		deviceRepo, purchaseRepo, push, newDiscardLogger(),
	).(*notificationService)

	return notificationServiceFixtures{
		service:      service,
		deviceRepo:   deviceRepo,
		purchaseRepo: purchaseRepo,
		push:         push,
	}
}

func TestNotificationService_CoursePublished_FansOutToPurchasers(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	courseID := uuid.New()
	buyers := []uuid.UUID{uuid.New(), uuid.New()}

	fx.purchaseRepo.EXPECT().
		ListCompletedUserIDsByCourse(ctx, courseID).
		Return(buyers, nil)

	fx.deviceRepo.EXPECT().
		ListByUserIDs(ctx, buyers).
		Return([]*entity.DeviceToken{
			{UserID: buyers[0], Token: "token-a"},
			{UserID: buyers[1], Token: "token-b"},
			{UserID: buyers[1], Token: "token-c"},
		}, nil)

	fx.push.EXPECT().
		SendBatchNotification(ctx, []string{"token-a", "token-b", "token-c"},
			"Course updated", "Go from scratch is live with new content",
			map[string]string{
				"type":      service.EventCoursePublished,
				"course_id": courseID.String(),
			}).
		Return(3, 0, nil, nil)

	err := fx.service.ProcessCourseEvent(ctx, &service.CourseEvent{
		Type:        service.EventCoursePublished,
		CourseID:    courseID.String(),
		CourseTitle: "Go from scratch",
	})
	assert.NoError(t, err)
}

func TestNotificationService_CoursePublished_NoPurchasers(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	courseID := uuid.New()

	fx.purchaseRepo.EXPECT().
		ListCompletedUserIDsByCourse(ctx, courseID).
		Return(nil, nil)

	err := fx.service.ProcessCourseEvent(ctx, &service.CourseEvent{
		Type:     service.EventCoursePublished,
		CourseID: courseID.String(),
	})
	assert.NoError(t, err)
}

func TestNotificationService_CoursePublished_PrunesStaleTokens(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	courseID := uuid.New()
	buyer := uuid.New()

	fx.purchaseRepo.EXPECT().
		ListCompletedUserIDsByCourse(ctx, courseID).
		Return([]uuid.UUID{buyer}, nil)

	fx.deviceRepo.EXPECT().
		ListByUserIDs(ctx, []uuid.UUID{buyer}).
		Return([]*entity.DeviceToken{
			{UserID: buyer, Token: "token-live"},
			{UserID: buyer, Token: "token-stale"},
		}, nil)

	fx.push.EXPECT().
		SendBatchNotification(ctx, []string{"token-live", "token-stale"},
			mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(1, 1, []string{"token-stale"}, nil)

	fx.deviceRepo.EXPECT().
		DeleteByToken(ctx, "token-stale").
		Return(nil)

	err := fx.service.ProcessCourseEvent(ctx, &service.CourseEvent{
		Type:        service.EventCoursePublished,
		CourseID:    courseID.String(),
		CourseTitle: "Go from scratch",
	})
	assert.NoError(t, err)
}

func TestNotificationService_PurchaseCompleted_NotifiesBuyer(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	courseID := uuid.New()
	buyer := uuid.New()

	fx.deviceRepo.EXPECT().
		ListByUserIDs(ctx, []uuid.UUID{buyer}).
		Return([]*entity.DeviceToken{{UserID: buyer, Token: "token-a"}}, nil)

	fx.push.EXPECT().
		SendBatchNotification(ctx, []string{"token-a"},
			"Purchase confirmed", "You now have full access to Go from scratch",
			map[string]string{
				"type":      service.EventPurchaseCompleted,
				"course_id": courseID.String(),
			}).
		Return(1, 0, nil, nil)

	err := fx.service.ProcessCourseEvent(ctx, &service.CourseEvent{
		Type:        service.EventPurchaseCompleted,
		CourseID:    courseID.String(),
		CourseTitle: "Go from scratch",
		UserID:      buyer.String(),
	})
	assert.NoError(t, err)
}

func TestNotificationService_PurchaseCompleted_BuyerHasNoDevices(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	buyer := uuid.New()

	fx.deviceRepo.EXPECT().
		ListByUserIDs(ctx, []uuid.UUID{buyer}).
		Return(nil, nil)

	err := fx.service.ProcessCourseEvent(ctx, &service.CourseEvent{
		Type:     service.EventPurchaseCompleted,
		CourseID: uuid.New().String(),
		UserID:   buyer.String(),
	})
	assert.NoError(t, err)
}

func TestNotificationService_PushFailure(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	buyer := uuid.New()

	fx.deviceRepo.EXPECT().
		ListByUserIDs(ctx, []uuid.UUID{buyer}).
		Return([]*entity.DeviceToken{{UserID: buyer, Token: "token-a"}}, nil)

	fx.push.EXPECT().
		SendBatchNotification(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, assert.AnError)

	err := fx.service.ProcessCourseEvent(ctx, &service.CourseEvent{
		Type:   service.EventPurchaseCompleted,
		UserID: buyer.String(),
	})
	assert.Error(t, err)
}

func TestNotificationService_UnknownEventType(t *testing.T) {
	fx := createTestNotificationService(t)

	err := fx.service.ProcessCourseEvent(context.Background(), &service.CourseEvent{
		Type: "course.archived",
	})
	assert.NoError(t, err)
}

func TestNotificationService_BadCourseID(t *testing.T) {
	fx := createTestNotificationService(t)

	err := fx.service.ProcessCourseEvent(context.Background(), &service.CourseEvent{
		Type:     service.EventCoursePublished,
		CourseID: "not-a-uuid",
	})
	require.Error(t, err)
}
