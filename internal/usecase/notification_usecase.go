// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"academy/internal/domain/service"
)

// NotificationUsecase defines the interface for the worker-side handling of
// course events pushed from the message queue.
type NotificationUsecase interface {
	// ProcessCourseEvent fans a course event out to subscribers' devices and
	// prunes tokens the push provider reports stale.
	ProcessCourseEvent(ctx context.Context, event *service.CourseEvent) error
}
