package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateCourseQR generates a QR code linking to a course's catalog page
	GenerateCourseQR(courseID uuid.UUID) ([]byte, error)

	// ParseCourseQR parses QR code data and returns the course ID
	ParseCourseQR(qrData string) (uuid.UUID, error)
}
