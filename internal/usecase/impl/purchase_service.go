package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/domain/service"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// purchaseService implements the PurchaseUsecase interface.
type purchaseService struct {
	courseRepo   repository.CourseRepository
	purchaseRepo repository.PurchaseRepository
	gateway      service.PaymentGateway
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewPurchaseService is the constructor for purchaseService.
func NewPurchaseService(
	courseRepo repository.CourseRepository,
	purchaseRepo repository.PurchaseRepository,
	gateway service.PaymentGateway,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.PurchaseUsecase {
	return &purchaseService{
		courseRepo:   courseRepo,
		purchaseRepo: purchaseRepo,
		gateway:      gateway,
		publisher:    publisher,
		logger:       logger,
	}
}

func (srv *purchaseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout opens a gateway bill for a published course.
func (srv *purchaseService) Checkout(ctx context.Context, userID, courseID uuid.UUID) (*usecase.CheckoutOutput, error) {
	course, err := srv.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, domainerrors.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course")
	}
	if !course.IsPublished {
		return nil, domainerrors.ErrCourseNotFound
	}
	if course.InstructorID == userID {
		return nil, domainerrors.ErrValidationFailed.WithDetails("instructors cannot buy their own course")
	}
	if course.Price == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("course has no price")
	}

	existing, err := srv.purchaseRepo.FindByUserAndCourse(ctx, userID, courseID)
	if err != nil && !errors.Is(err, repository.ErrPurchaseNotFound) {
		return nil, errors.Wrap(err, "failed to look up purchase")
	}
	if existing != nil {
		switch existing.Status {
		case entity.PurchaseStatusCompleted:
			return nil, domainerrors.ErrAlreadyPurchased
		case entity.PurchaseStatusPending:
			// Re-verify before handing the old bill back; the webhook may be
			// lagging behind an already settled payment.
			status, err := srv.gateway.GetBillStatus(ctx, existing.BillID)
			if err != nil {
				return nil, domainerrors.ErrPaymentGateway.WrapMessage(err.Error())
			}
			if status.Paid {
				if err := srv.settle(ctx, existing, course); err != nil {
					return nil, err
				}

				return nil, domainerrors.ErrAlreadyPurchased
			}

			bill, err := srv.gateway.CreateBill(ctx, existing.ID, *course.Price, course.Title)
			if err != nil {
				return nil, domainerrors.ErrPaymentGateway.WrapMessage(err.Error())
			}
			existing.BillID = bill.ID
			if err := srv.purchaseRepo.Update(ctx, existing); err != nil {
				return nil, errors.Wrap(err, "failed to update purchase")
			}

			return &usecase.CheckoutOutput{Purchase: existing, PaymentURL: bill.PaymentURL}, nil
		case entity.PurchaseStatusFailed:
			// A failed purchase may be retried with a fresh bill.
			bill, err := srv.gateway.CreateBill(ctx, existing.ID, *course.Price, course.Title)
			if err != nil {
				return nil, domainerrors.ErrPaymentGateway.WrapMessage(err.Error())
			}
			existing.BillID = bill.ID
			existing.Status = entity.PurchaseStatusPending
			if err := srv.purchaseRepo.Update(ctx, existing); err != nil {
				return nil, errors.Wrap(err, "failed to update purchase")
			}

			return &usecase.CheckoutOutput{Purchase: existing, PaymentURL: bill.PaymentURL}, nil
		}
	}

	purchase := &entity.Purchase{
		UserID:   userID,
		CourseID: courseID,
		Status:   entity.PurchaseStatusPending,
	}
	if err := srv.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, errors.Wrap(err, "failed to create purchase")
	}

	bill, err := srv.gateway.CreateBill(ctx, purchase.ID, *course.Price, course.Title)
	if err != nil {
		return nil, domainerrors.ErrPaymentGateway.WrapMessage(err.Error())
	}

	purchase.BillID = bill.ID
	if err := srv.purchaseRepo.Update(ctx, purchase); err != nil {
		return nil, errors.Wrap(err, "failed to record bill")
	}
	srv.log(ctx).Info("Checkout opened",
		slog.Any("user_id", userID), slog.Any("course_id", courseID), slog.String("bill_id", bill.ID))

	return &usecase.CheckoutOutput{Purchase: purchase, PaymentURL: bill.PaymentURL}, nil
}

// HandleWebhook settles a purchase from a gateway notification. The bill
// status is re-verified against the gateway before any state change.
func (srv *purchaseService) HandleWebhook(ctx context.Context, input usecase.WebhookInput) error {
	purchase, err := srv.purchaseRepo.FindByBillID(ctx, input.BillID)
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			return domainerrors.ErrNotFound.WrapMessage(fmt.Sprintf("unknown bill %s", input.BillID))
		}

		return errors.Wrap(err, "failed to find purchase")
	}

	if purchase.Status == entity.PurchaseStatusCompleted {
		// Gateways redeliver webhooks; a settled purchase stays settled.
		return nil
	}

	status, err := srv.gateway.GetBillStatus(ctx, input.BillID)
	if err != nil {
		return domainerrors.ErrPaymentGateway.WrapMessage(err.Error())
	}

	if status.Paid {
		course, err := srv.courseRepo.FindByID(ctx, purchase.CourseID)
		if err != nil {
			return errors.Wrap(err, "failed to find course")
		}

		return srv.settle(ctx, purchase, course)
	}

	if status.Status == "EXPIRED" || status.Status == "FAILED" {
		purchase.Status = entity.PurchaseStatusFailed
		if err := srv.purchaseRepo.Update(ctx, purchase); err != nil {
			return errors.Wrap(err, "failed to mark purchase failed")
		}
		srv.log(ctx).Info("Purchase failed", slog.Any("purchase_id", purchase.ID), slog.String("bill_status", status.Status))
	}

	return nil
}

// ListMyPurchases lists the user's purchases, newest first.
func (srv *purchaseService) ListMyPurchases(ctx context.Context, userID uuid.UUID) ([]*entity.Purchase, error) {
	purchases, err := srv.purchaseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	return purchases, nil
}

// HasAccess reports whether the user holds a completed purchase of the course.
func (srv *purchaseService) HasAccess(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	purchase, err := srv.purchaseRepo.FindByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to look up purchase")
	}

	return purchase.Grants(), nil
}

// settle marks a purchase completed and announces it.
func (srv *purchaseService) settle(ctx context.Context, purchase *entity.Purchase, course *entity.Course) error {
	purchase.Status = entity.PurchaseStatusCompleted
	if err := srv.purchaseRepo.Update(ctx, purchase); err != nil {
		return errors.Wrap(err, "failed to complete purchase")
	}

	event := &service.CourseEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Type:        service.EventPurchaseCompleted,
		CourseID:    course.ID.String(),
		CourseTitle: course.Title,
		UserID:      purchase.UserID.String(),
	}
	if err := srv.publisher.PublishCourseEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish purchase event",
			slog.Any("error", err), slog.Any("purchase_id", purchase.ID))
	}
	srv.log(ctx).Info("Purchase completed",
		slog.Any("purchase_id", purchase.ID), slog.Any("user_id", purchase.UserID), slog.Any("course_id", course.ID))

	return nil
}
