package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "academy/internal/delivery/context"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/domain/service"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// notificationService implements the NotificationUsecase interface. It runs
// on the worker side, consuming course events pushed from the queue.
type notificationService struct {
	deviceRepo   repository.DeviceRepository
	purchaseRepo repository.PurchaseRepository
	push         service.NotificationService
	logger       *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(
	deviceRepo repository.DeviceRepository,
	purchaseRepo repository.PurchaseRepository,
	push service.NotificationService,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo:   deviceRepo,
		purchaseRepo: purchaseRepo,
		push:         push,
		logger:       logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ProcessCourseEvent fans a course event out to subscribers' devices and
// prunes tokens the push provider reports stale.
func (srv *notificationService) ProcessCourseEvent(ctx context.Context, event *service.CourseEvent) error {
	switch event.Type {
	case service.EventCoursePublished:
		return srv.notifyPurchasers(ctx, event)
	case service.EventPurchaseCompleted:
		return srv.notifyBuyer(ctx, event)
	default:
		srv.log(ctx).Warn("Unknown course event type", slog.String("type", event.Type))

		return nil
	}
}

// notifyPurchasers tells everyone who bought the course that it is live again.
// Relevant on republish after a content update.
func (srv *notificationService) notifyPurchasers(ctx context.Context, event *service.CourseEvent) error {
	courseID, err := uuid.Parse(event.CourseID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid course id in event")
	}

	userIDs, err := srv.purchaseRepo.ListCompletedUserIDsByCourse(ctx, courseID)
	if err != nil {
		return errors.Wrap(err, "failed to list purchasers")
	}
	if len(userIDs) == 0 {
		return nil
	}

	devices, err := srv.deviceRepo.ListByUserIDs(ctx, userIDs)
	if err != nil {
		return errors.Wrap(err, "failed to list devices")
	}
	if len(devices) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.Token)
	}

	title := "Course updated"
	body := fmt.Sprintf("%s is live with new content", event.CourseTitle)
	data := map[string]string{
		"type":      event.Type,
		"course_id": event.CourseID,
	}

	successCount, failureCount, invalidTokens, err := srv.push.SendBatchNotification(ctx, tokens, title, body, data)
	if err != nil {
		return errors.Wrap(err, "failed to send notifications")
	}
	srv.log(ctx).Info("Course published notifications sent",
		slog.String("course_id", event.CourseID),
		slog.Int("success", successCount),
		slog.Int("failure", failureCount))

	srv.pruneTokens(ctx, invalidTokens)

	return nil
}

// notifyBuyer confirms a completed purchase on the buyer's devices.
func (srv *notificationService) notifyBuyer(ctx context.Context, event *service.CourseEvent) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid user id in event")
	}

	devices, err := srv.deviceRepo.ListByUserIDs(ctx, []uuid.UUID{userID})
	if err != nil {
		return errors.Wrap(err, "failed to list devices")
	}
	if len(devices) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.Token)
	}

	title := "Purchase confirmed"
	body := fmt.Sprintf("You now have full access to %s", event.CourseTitle)
	data := map[string]string{
		"type":      event.Type,
		"course_id": event.CourseID,
	}

	_, _, invalidTokens, err := srv.push.SendBatchNotification(ctx, tokens, title, body, data)
	if err != nil {
		return errors.Wrap(err, "failed to send notifications")
	}

	srv.pruneTokens(ctx, invalidTokens)

	return nil
}

// pruneTokens drops registrations the provider reported stale. Failures only
// delay the next prune, so they are logged, not returned.
func (srv *notificationService) pruneTokens(ctx context.Context, invalidTokens []string) {
	for _, token := range invalidTokens {
		if err := srv.deviceRepo.DeleteByToken(ctx, token); err != nil {
			srv.log(ctx).Warn("Failed to prune stale device token", slog.Any("error", err))
		}
	}
}
