package handler

import (
	"net/http"

	"academy/internal/delivery/http/middleware"
	"academy/internal/delivery/http/response"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CourseHandler holds dependencies for course authoring and catalog handlers.
type CourseHandler struct {
	courseUC usecase.CourseUsecase
}

// NewCourseHandler is the constructor for CourseHandler, injected by Fx.
func NewCourseHandler(courseUC usecase.CourseUsecase) *CourseHandler {
	return &CourseHandler{courseUC: courseUC}
}

type createCourseRequest struct {
	Title string `json:"title" validate:"required"`
}

// CreateCourse starts a new course draft.
func (h *CourseHandler) CreateCourse(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Authentication required")
	}

	var input createCourseRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid course input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	course, err := h.courseUC.CreateCourse(c.Request().Context(), usecase.CreateCourseInput{
		InstructorID: userID,
		Title:        input.Title,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, course, "Course created")
}

// ListMyCourses lists the instructor's courses.
func (h *CourseHandler) ListMyCourses(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Authentication required")
	}

	courses, err := h.courseUC.ListMyCourses(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, courses, "Courses retrieved")
}

// GetCourse retrieves one of the instructor's courses with publish-gate state.
func (h *CourseHandler) GetCourse(c echo.Context) error {
	userID, courseID, err := userAndCourseID(c)
	if err != nil {
		return err
	}

	course, err := h.courseUC.GetCourse(c.Request().Context(), userID, courseID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, course, "Course retrieved")
}

type updateCourseRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	Price       *int64  `json:"price"`
}

// UpdateCourse edits course fields.
func (h *CourseHandler) UpdateCourse(c echo.Context) error {
	userID, courseID, err := userAndCourseID(c)
	if err != nil {
		return err
	}

	var input updateCourseRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid course input")
	}

	course, err := h.courseUC.UpdateCourse(c.Request().Context(), userID, courseID, usecase.UpdateCourseInput{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Price:       input.Price,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, course, "Course updated")
}

// DeleteCourse removes a course and everything under it.
func (h *CourseHandler) DeleteCourse(c echo.Context) error {
	userID, courseID, err := userAndCourseID(c)
	if err != nil {
		return err
	}

	if err := h.courseUC.DeleteCourse(c.Request().Context(), userID, courseID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Course deleted")
}

type publishRequest struct {
	WantPublish *bool `json:"wantPublish" validate:"required"`
}

// SetCoursePublished applies the caller's publish intent to a course.
func (h *CourseHandler) SetCoursePublished(c echo.Context) error {
	userID, courseID, err := userAndCourseID(c)
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
		if err := h.courseUC.PublishCourse(ctx, userID, courseID); err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, nil, "Course published")
	}

	if err := h.courseUC.UnpublishCourse(ctx, userID, courseID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Course unpublished")
}

// ListCatalog lists published courses for browsing.
func (h *CourseHandler) ListCatalog(c echo.Context) error {
	userID, _ := c.Get(middleware.ContextKeyUserID).(uuid.UUID)

	courses, err := h.courseUC.ListCatalog(c.Request().Context(), userID, c.QueryParam("title"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, courses, "Catalog retrieved")
}

// GetCatalogCourse retrieves one published course.
func (h *CourseHandler) GetCatalogCourse(c echo.Context) error {
	userID, _ := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	courseID, err := uuid.Parse(c.Param("courseID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid course ID")
	}

	course, err := h.courseUC.GetCatalogCourse(c.Request().Context(), userID, courseID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, course, "Course retrieved")
}

// CourseShareQR renders a QR code PNG linking to the course.
func (h *CourseHandler) CourseShareQR(c echo.Context) error {
	courseID, err := uuid.Parse(c.Param("courseID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid course ID")
	}

	png, err := h.courseUC.CourseShareQR(c.Request().Context(), courseID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// AddAttachment stores an uploaded file as a course attachment.
func (h *CourseHandler) AddAttachment(c echo.Context) error {
	userID, courseID, err := userAndCourseID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing attachment file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	name := c.FormValue("name")
	if name == "" {
		name = fileHeader.Filename
	}

	attachment, err := h.courseUC.AddAttachment(c.Request().Context(), userID, usecase.AddAttachmentInput{
		CourseID:    courseID,
		Name:        name,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, attachment, "Attachment added")
}

// RemoveAttachment deletes an attachment and its stored content.
func (h *CourseHandler) RemoveAttachment(c echo.Context) error {
	userID, courseID, err := userAndCourseID(c)
	if err != nil {
		return err
	}

	attachmentID, err := uuid.Parse(c.Param("attachmentID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid attachment ID")
	}

	if err := h.courseUC.RemoveAttachment(c.Request().Context(), userID, courseID, attachmentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Attachment removed")
}

// DownloadAttachment streams an attachment to a purchaser or the owner.
func (h *CourseHandler) DownloadAttachment(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Authentication required")
	}

	courseID, err := uuid.Parse(c.Param("courseID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid course ID")
	}
	attachmentID, err := uuid.Parse(c.Param("attachmentID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid attachment ID")
	}

	attachment, rc, err := h.courseUC.ReadAttachment(c.Request().Context(), userID, courseID, attachmentID)
	if err != nil {
		return errors.WithStack(err)
	}
	defer rc.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+attachment.Name+`"`)

	return c.Stream(http.StatusOK, echo.MIMEOctetStream, rc)
}

// userAndCourseID extracts the authenticated user and the courseID path
// param. Failures surface as echo.HTTPError for the error handler to render.
func userAndCourseID(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	courseID, err := uuid.Parse(c.Param("courseID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid course ID")
	}

	return userID, courseID, nil
}
