package handler

import (
	"net/http"

	"academy/internal/delivery/http/response"
	"academy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProgressHandler holds dependencies for progress tracking handlers.
type ProgressHandler struct {
	progressUC usecase.ProgressUsecase
}

// NewProgressHandler is the constructor for ProgressHandler, injected by Fx.
func NewProgressHandler(progressUC usecase.ProgressUsecase) *ProgressHandler {
	return &ProgressHandler{progressUC: progressUC}
}

type setProgressRequest struct {
	Completed bool `json:"completed"`
}

// SetChapterProgress marks a chapter complete or not and returns the
// recomputed course progress.
func (h *ProgressHandler) SetChapterProgress(c echo.Context) error {
	userID, courseID, chapterID, err := chapterPath(c)
	if err != nil {
		return err
	}

	var input setProgressRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid progress input")
	}

	progress, err := h.progressUC.SetChapterProgress(c.Request().Context(), userID, courseID, chapterID, input.Completed)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, progress, "Progress updated")
}

// GetCourseProgress reports the caller's completion over a course.
func (h *ProgressHandler) GetCourseProgress(c echo.Context) error {
	userID, courseID, err := userAndCourseID(c)
	if err != nil {
		return err
	}

	progress, err := h.progressUC.GetCourseProgress(c.Request().Context(), userID, courseID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, progress, "Progress retrieved")
}
