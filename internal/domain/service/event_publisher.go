package service

import (
	"context"
)

// Course event types published to the message queue.
const (
	EventCoursePublished   = "course.published"
	EventPurchaseCompleted = "purchase.completed"
)

// CourseEvent represents an event about a course to be processed by the
// notification worker.
type CourseEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	Type        string `json:"type"`
	CourseID    string `json:"course_id"`
	CourseTitle string `json:"course_title"`
	UserID      string `json:"user_id,omitempty"` // Buyer for purchase events
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCourseEvent publishes a course event for async processing
	PublishCourseEvent(ctx context.Context, event *CourseEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
