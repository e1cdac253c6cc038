package handler

import (
	"net/http"

	"academy/internal/delivery/http/response"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChapterHandler holds dependencies for chapter authoring handlers.
type ChapterHandler struct {
	chapterUC usecase.ChapterUsecase
}

// NewChapterHandler is the constructor for ChapterHandler, injected by Fx.
func NewChapterHandler(chapterUC usecase.ChapterUsecase) *ChapterHandler {
	return &ChapterHandler{chapterUC: chapterUC}
}

type createChapterRequest struct {
	Title string `json:"title" validate:"required"`
}

// CreateChapter appends a new draft chapter to a course.
func (h *ChapterHandler) CreateChapter(c echo.Context) error {
	userID, courseID, err := userAndCourseID(c)
	if err != nil {
		return err
	}

	var input createChapterRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chapter input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	chapter, err := h.chapterUC.CreateChapter(c.Request().Context(), userID, usecase.CreateChapterInput{
		CourseID: courseID,
		Title:    input.Title,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, chapter, "Chapter created")
}

// GetChapter retrieves a chapter with its publish-gate state.
func (h *ChapterHandler) GetChapter(c echo.Context) error {
	userID, courseID, chapterID, err := chapterPath(c)
	if err != nil {
		return err
	}

	chapter, err := h.chapterUC.GetChapter(c.Request().Context(), userID, courseID, chapterID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, chapter, "Chapter retrieved")
}

type updateChapterRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsFree      *bool   `json:"is_free"`
}

// UpdateChapter edits chapter fields.
func (h *ChapterHandler) UpdateChapter(c echo.Context) error {
	userID, courseID, chapterID, err := chapterPath(c)
	if err != nil {
		return err
	}

	var input updateChapterRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chapter input")
	}

	chapter, err := h.chapterUC.UpdateChapter(c.Request().Context(), userID, courseID, chapterID, usecase.UpdateChapterInput{
		Title:       input.Title,
		Description: input.Description,
		IsFree:      input.IsFree,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, chapter, "Chapter updated")
}

// DeleteChapter removes a chapter and its video.
func (h *ChapterHandler) DeleteChapter(c echo.Context) error {
	userID, courseID, chapterID, err := chapterPath(c)
	if err != nil {
		return err
	}

	if err := h.chapterUC.DeleteChapter(c.Request().Context(), userID, courseID, chapterID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Chapter deleted")
}

type reorderChaptersRequest struct {
	ChapterIDs []uuid.UUID `json:"chapter_ids" validate:"required,min=1"`
}

// ReorderChapters applies a new chapter ordering.
func (h *ChapterHandler) ReorderChapters(c echo.Context) error {
	userID, courseID, err := userAndCourseID(c)
	if err != nil {
		return err
	}

	var input reorderChaptersRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reorder input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.chapterUC.ReorderChapters(c.Request().Context(), userID, usecase.ReorderChaptersInput{
		CourseID:   courseID,
		ChapterIDs: input.ChapterIDs,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Chapters reordered")
}

// SetChapterPublished applies the caller's publish intent to a chapter.
func (h *ChapterHandler) SetChapterPublished(c echo.Context) error {
	userID, courseID, chapterID, err := chapterPath(c)
	if err != nil {
		return err
	}

	var input publishRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid publish input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if *input.WantPublish {
		if err := h.chapterUC.PublishChapter(ctx, userID, courseID, chapterID); err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, nil, "Chapter published")
	}

	if err := h.chapterUC.UnpublishChapter(ctx, userID, courseID, chapterID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Chapter unpublished")
}

// RequestVideoUpload presigns an upload slot for the chapter's video.
func (h *ChapterHandler) RequestVideoUpload(c echo.Context) error {
	userID, courseID, chapterID, err := chapterPath(c)
	if err != nil {
		return err
	}

	ticket, err := h.chapterUC.RequestVideoUpload(c.Request().Context(), userID, courseID, chapterID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ticket, "Upload URL generated")
}

// ChapterPlayback presigns a playback URL for a chapter video.
func (h *ChapterHandler) ChapterPlayback(c echo.Context) error {
	userID, courseID, chapterID, err := chapterPath(c)
	if err != nil {
		return err
	}

	url, err := h.chapterUC.ChapterPlayback(c.Request().Context(), userID, courseID, chapterID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"playback_url": url}, "Playback URL generated")
}

// chapterPath extracts the authenticated user plus course and chapter IDs.
func chapterPath(c echo.Context) (uuid.UUID, uuid.UUID, uuid.UUID, error) {
	userID, courseID, err := userAndCourseID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, err
	}

	chapterID, err := uuid.Parse(c.Param("chapterID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid chapter ID")
	}

	return userID, courseID, chapterID, nil
}
