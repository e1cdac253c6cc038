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

type purchaseServiceFixtures struct {
	service      *purchaseService
	courseRepo   *mockRepo.MockCourseRepository
	purchaseRepo *mockRepo.MockPurchaseRepository
	gateway      *mockService.MockPaymentGateway
	publisher    *mockService.MockEventPublisher
}

func createTestPurchaseService(t *testing.T) purchaseServiceFixtures {
	courseRepo := mockRepo.NewMockCourseRepository(t)
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	gateway := mockService.NewMockPaymentGateway(t)
	publisher := mockService.NewMockEventPublisher(t)

	service := NewPurchaseService(
		courseRepo, purchaseRepo, gateway, publisher, newDiscardLogger(),
	).(*purchaseService)

	return purchaseServiceFixtures{
		service:      service,
		courseRepo:   courseRepo,
		purchaseRepo: purchaseRepo,
		gateway:      gateway,
		publisher:    publisher,
	}
}

func pricedCourse() *entity.Course {
	return &entity.Course{
		ID:           uuid.New(),
		InstructorID: uuid.New(),
		Title:        "Go from scratch",
		Price:        int64Ptr(4900),
		IsPublished:  true,
	}
}

func TestPurchaseService_Checkout_NewPurchase(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	userID := uuid.New()
	course := pricedCourse()

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)
	fx.purchaseRepo.EXPECT().
		FindByUserAndCourse(ctx, userID, course.ID).
		Return(nil, repository.ErrPurchaseNotFound)

	var created *entity.Purchase
	fx.purchaseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Purchase")).
		Run(func(_ context.Context, purchase *entity.Purchase) {
			purchase.ID = uuid.New()
			created = purchase
		}).
		Return(nil)

	fx.gateway.EXPECT().
		CreateBill(ctx, mock.AnythingOfType("uuid.UUID"), int64(4900), course.Title).
		Return(&service.Bill{ID: "bill-1", PaymentURL: "https://pay.example.com/bill-1"}, nil)

	fx.purchaseRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Purchase")).
		Return(nil)

	out, err := fx.service.Checkout(ctx, userID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/bill-1", out.PaymentURL)

	require.NotNil(t, created)
	assert.Equal(t, entity.PurchaseStatusPending, created.Status)
	assert.Equal(t, "bill-1", created.BillID)
}

func TestPurchaseService_Checkout_Rejections(t *testing.T) {
	t.Run("unpublished course", func(t *testing.T) {
		fx := createTestPurchaseService(t)
		ctx := context.Background()
		course := pricedCourse()
		course.IsPublished = false

		fx.courseRepo.EXPECT().
			FindByID(ctx, course.ID).
			Return(course, nil)

		_, err := fx.service.Checkout(ctx, uuid.New(), course.ID)
		assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)
	})

	t.Run("own course", func(t *testing.T) {
		fx := createTestPurchaseService(t)
		ctx := context.Background()
		course := pricedCourse()

		fx.courseRepo.EXPECT().
			FindByID(ctx, course.ID).
			Return(course, nil)

		_, err := fx.service.Checkout(ctx, course.InstructorID, course.ID)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("no price", func(t *testing.T) {
		fx := createTestPurchaseService(t)
		ctx := context.Background()
		course := pricedCourse()
		course.Price = nil

		fx.courseRepo.EXPECT().
			FindByID(ctx, course.ID).
			Return(course, nil)

		_, err := fx.service.Checkout(ctx, uuid.New(), course.ID)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("already purchased", func(t *testing.T) {
		fx := createTestPurchaseService(t)
		ctx := context.Background()
		userID := uuid.New()
		course := pricedCourse()

		fx.courseRepo.EXPECT().
			FindByID(ctx, course.ID).
			Return(course, nil)
		fx.purchaseRepo.EXPECT().
			FindByUserAndCourse(ctx, userID, course.ID).
			Return(&entity.Purchase{Status: entity.PurchaseStatusCompleted}, nil)

		_, err := fx.service.Checkout(ctx, userID, course.ID)
		assert.ErrorIs(t, err, domainerrors.ErrAlreadyPurchased)
	})
}

func TestPurchaseService_Checkout_PendingBillSettledMeanwhile(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	userID := uuid.New()
	course := pricedCourse()
	purchase := &entity.Purchase{
		ID: uuid.New(), UserID: userID, CourseID: course.ID,
		Status: entity.PurchaseStatusPending, BillID: "bill-1",
	}

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)
	fx.purchaseRepo.EXPECT().
		FindByUserAndCourse(ctx, userID, course.ID).
		Return(purchase, nil)
	fx.gateway.EXPECT().
		GetBillStatus(ctx, "bill-1").
		Return(&service.BillStatus{ID: "bill-1", Status: "PAID", Paid: true}, nil)
	fx.purchaseRepo.EXPECT().
		Update(ctx, purchase).
		Return(nil)
	fx.publisher.EXPECT().
		PublishCourseEvent(ctx, mock.Anything).
		Return(nil)

	_, err := fx.service.Checkout(ctx, userID, course.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyPurchased)
	assert.Equal(t, entity.PurchaseStatusCompleted, purchase.Status)
}

func TestPurchaseService_Checkout_PendingBillStillOpen(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	userID := uuid.New()
	course := pricedCourse()
	purchase := &entity.Purchase{
		ID: uuid.New(), UserID: userID, CourseID: course.ID,
		Status: entity.PurchaseStatusPending, BillID: "bill-1",
	}

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)
	fx.purchaseRepo.EXPECT().
		FindByUserAndCourse(ctx, userID, course.ID).
		Return(purchase, nil)
	fx.gateway.EXPECT().
		GetBillStatus(ctx, "bill-1").
		Return(&service.BillStatus{ID: "bill-1", Status: "NEW", Paid: false}, nil)
	fx.gateway.EXPECT().
		CreateBill(ctx, purchase.ID, int64(4900), course.Title).
		Return(&service.Bill{ID: "bill-2", PaymentURL: "https://pay.example.com/bill-2"}, nil)
	fx.purchaseRepo.EXPECT().
		Update(ctx, purchase).
		Return(nil)

	out, err := fx.service.Checkout(ctx, userID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "bill-2", purchase.BillID)
	assert.Equal(t, "https://pay.example.com/bill-2", out.PaymentURL)
}

func TestPurchaseService_Checkout_FailedPurchaseRetries(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	userID := uuid.New()
	course := pricedCourse()
	purchase := &entity.Purchase{
		ID: uuid.New(), UserID: userID, CourseID: course.ID,
		Status: entity.PurchaseStatusFailed, BillID: "bill-1",
	}

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)
	fx.purchaseRepo.EXPECT().
		FindByUserAndCourse(ctx, userID, course.ID).
		Return(purchase, nil)
	fx.gateway.EXPECT().
		CreateBill(ctx, purchase.ID, int64(4900), course.Title).
		Return(&service.Bill{ID: "bill-2", PaymentURL: "https://pay.example.com/bill-2"}, nil)
	fx.purchaseRepo.EXPECT().
		Update(ctx, purchase).
		Return(nil)

	_, err := fx.service.Checkout(ctx, userID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStatusPending, purchase.Status)
	assert.Equal(t, "bill-2", purchase.BillID)
}

func TestPurchaseService_Checkout_GatewayDown(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	userID := uuid.New()
	course := pricedCourse()

	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)
	fx.purchaseRepo.EXPECT().
		FindByUserAndCourse(ctx, userID, course.ID).
		Return(nil, repository.ErrPurchaseNotFound)
	fx.purchaseRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(nil)
	fx.gateway.EXPECT().
		CreateBill(ctx, mock.Anything, int64(4900), course.Title).
		Return(nil, assert.AnError)

	_, err := fx.service.Checkout(ctx, userID, course.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentGateway)
}

func TestPurchaseService_HandleWebhook_SettlesPaidBill(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	course := pricedCourse()
	purchase := &entity.Purchase{
		ID: uuid.New(), UserID: uuid.New(), CourseID: course.ID,
		Status: entity.PurchaseStatusPending, BillID: "bill-1",
	}

	fx.purchaseRepo.EXPECT().
		FindByBillID(ctx, "bill-1").
		Return(purchase, nil)
	fx.gateway.EXPECT().
		GetBillStatus(ctx, "bill-1").
		Return(&service.BillStatus{ID: "bill-1", Status: "PAID", Paid: true}, nil)
	fx.courseRepo.EXPECT().
		FindByID(ctx, course.ID).
		Return(course, nil)
	fx.purchaseRepo.EXPECT().
		Update(ctx, purchase).
		Return(nil)

	var published *service.CourseEvent
	fx.publisher.EXPECT().
		PublishCourseEvent(ctx, mock.AnythingOfType("*service.CourseEvent")).
		Run(func(_ context.Context, event *service.CourseEvent) {
			published = event
		}).
		Return(nil)

	require.NoError(t, fx.service.HandleWebhook(ctx, usecase.WebhookInput{BillID: "bill-1"}))
	assert.Equal(t, entity.PurchaseStatusCompleted, purchase.Status)

	require.NotNil(t, published)
	assert.Equal(t, service.EventPurchaseCompleted, published.Type)
	assert.Equal(t, purchase.UserID.String(), published.UserID)
	assert.Equal(t, course.ID.String(), published.CourseID)
}

func TestPurchaseService_HandleWebhook_IgnoresUnpaidNotification(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	purchase := &entity.Purchase{
		ID: uuid.New(), Status: entity.PurchaseStatusPending, BillID: "bill-1",
	}

	// The payload claims nothing either way; only the gateway's answer counts.
	fx.purchaseRepo.EXPECT().
		FindByBillID(ctx, "bill-1").
		Return(purchase, nil)
	fx.gateway.EXPECT().
		GetBillStatus(ctx, "bill-1").
		Return(&service.BillStatus{ID: "bill-1", Status: "NEW", Paid: false}, nil)

	require.NoError(t, fx.service.HandleWebhook(ctx, usecase.WebhookInput{BillID: "bill-1"}))
	assert.Equal(t, entity.PurchaseStatusPending, purchase.Status)
}

func TestPurchaseService_HandleWebhook_ExpiredBillMarksFailed(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	purchase := &entity.Purchase{
		ID: uuid.New(), Status: entity.PurchaseStatusPending, BillID: "bill-1",
	}

	fx.purchaseRepo.EXPECT().
		FindByBillID(ctx, "bill-1").
		Return(purchase, nil)
	fx.gateway.EXPECT().
		GetBillStatus(ctx, "bill-1").
		Return(&service.BillStatus{ID: "bill-1", Status: "EXPIRED", Paid: false}, nil)
	fx.purchaseRepo.EXPECT().
		Update(ctx, purchase).
		Return(nil)

	require.NoError(t, fx.service.HandleWebhook(ctx, usecase.WebhookInput{BillID: "bill-1"}))
	assert.Equal(t, entity.PurchaseStatusFailed, purchase.Status)
}

func TestPurchaseService_HandleWebhook_RedeliveryIsIdempotent(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	purchase := &entity.Purchase{
		ID: uuid.New(), Status: entity.PurchaseStatusCompleted, BillID: "bill-1",
	}

	// No gateway call, no update, no event on redelivery.
	fx.purchaseRepo.EXPECT().
		FindByBillID(ctx, "bill-1").
		Return(purchase, nil)

	assert.NoError(t, fx.service.HandleWebhook(ctx, usecase.WebhookInput{BillID: "bill-1"}))
}

func TestPurchaseService_HandleWebhook_UnknownBill(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	fx.purchaseRepo.EXPECT().
		FindByBillID(ctx, "bill-unknown").
		Return(nil, repository.ErrPurchaseNotFound)

	err := fx.service.HandleWebhook(ctx, usecase.WebhookInput{BillID: "bill-unknown"})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestPurchaseService_HasAccess(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	userID := uuid.New()
	courseID := uuid.New()

	fx.purchaseRepo.EXPECT().
		FindByUserAndCourse(ctx, userID, courseID).
		Return(&entity.Purchase{Status: entity.PurchaseStatusCompleted}, nil).
		Once()

	ok, err := fx.service.HasAccess(ctx, userID, courseID)
	require.NoError(t, err)
	assert.True(t, ok)

	fx.purchaseRepo.EXPECT().
		FindByUserAndCourse(ctx, userID, courseID).
		Return(&entity.Purchase{Status: entity.PurchaseStatusPending}, nil).
		Once()

	ok, err = fx.service.HasAccess(ctx, userID, courseID)
	require.NoError(t, err)
	assert.False(t, ok)

	fx.purchaseRepo.EXPECT().
		FindByUserAndCourse(ctx, userID, courseID).
		Return(nil, repository.ErrPurchaseNotFound).
		Once()

	ok, err = fx.service.HasAccess(ctx, userID, courseID)
	require.NoError(t, err)
	assert.False(t, ok)
}
