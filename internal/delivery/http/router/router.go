// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"academy/internal/delivery/http/middleware"
	"academy/internal/delivery/http/router/handler"
	"academy/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers Fx injects into the router.
type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CourseHandler   *handler.CourseHandler
	ChapterHandler  *handler.ChapterHandler
	ProgressHandler *handler.ProgressHandler
	PurchaseHandler *handler.PurchaseHandler
	WebhookHandler  *handler.WebhookHandler
	DeviceHandler   *handler.DeviceHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.params.AuthHandler.Signup)
		authGroup.POST("/verify-email", r.params.AuthHandler.VerifyEmail)
		authGroup.POST("/resend-code", r.params.AuthHandler.ResendCode)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/logout", r.params.AuthHandler.Logout)
		authGroup.GET("/google", r.params.AuthHandler.GoogleLogin)
		authGroup.GET("/google/callback", r.params.AuthHandler.GoogleCallback)

		sessionGroup := authGroup.Group("/sessions", auth.Authenticate)
		sessionGroup.GET("", r.params.AuthHandler.ListSessions)
		sessionGroup.DELETE("", r.params.AuthHandler.RevokeAllSessions)
		sessionGroup.DELETE("/:sessionID", r.params.AuthHandler.RevokeSession)
	}

	// Public catalog; purchase and progress annotations appear for logged-in users.
	catalogGroup := e.Group("/courses", auth.OptionalAuthenticate)
	{
		catalogGroup.GET("", r.params.CourseHandler.ListCatalog)
		catalogGroup.GET("/:courseID", r.params.CourseHandler.GetCatalogCourse)
		catalogGroup.GET("/:courseID/qr", r.params.CourseHandler.CourseShareQR)
	}

	// Learner routes that require authentication
	learnGroup := e.Group("/courses", auth.Authenticate)
	{
		learnGroup.POST("/:courseID/checkout", r.params.PurchaseHandler.Checkout)
		learnGroup.GET("/:courseID/progress", r.params.ProgressHandler.GetCourseProgress)
		learnGroup.PUT("/:courseID/chapters/:chapterID/progress", r.params.ProgressHandler.SetChapterProgress)
		learnGroup.GET("/:courseID/chapters/:chapterID/playback", r.params.ChapterHandler.ChapterPlayback)
		learnGroup.GET("/:courseID/attachments/:attachmentID", r.params.CourseHandler.DownloadAttachment)
	}

	userGroup := e.Group("", auth.Authenticate)
	{
		userGroup.GET("/purchases", r.params.PurchaseHandler.ListMyPurchases)
		userGroup.POST("/devices", r.params.DeviceHandler.RegisterDevice)
		userGroup.DELETE("/devices", r.params.DeviceHandler.UnregisterDevice)
	}

	// Instructor routes that require authentication and the "instructor" role
	instructorGroup := e.Group("/instructor/courses")
	instructorGroup.Use(auth.Authenticate)
	instructorGroup.Use(auth.RequireRole(entity.RoleInstructor))
	{
		instructorGroup.POST("", r.params.CourseHandler.CreateCourse)
		instructorGroup.GET("", r.params.CourseHandler.ListMyCourses)
		instructorGroup.GET("/:courseID", r.params.CourseHandler.GetCourse)
		instructorGroup.PATCH("/:courseID", r.params.CourseHandler.UpdateCourse)
		instructorGroup.DELETE("/:courseID", r.params.CourseHandler.DeleteCourse)
		instructorGroup.PATCH("/:courseID/publish", r.params.CourseHandler.SetCoursePublished)
		instructorGroup.POST("/:courseID/attachments", r.params.CourseHandler.AddAttachment)
		instructorGroup.DELETE("/:courseID/attachments/:attachmentID", r.params.CourseHandler.RemoveAttachment)

		instructorGroup.POST("/:courseID/chapters", r.params.ChapterHandler.CreateChapter)
		instructorGroup.PUT("/:courseID/chapters/reorder", r.params.ChapterHandler.ReorderChapters)
		instructorGroup.GET("/:courseID/chapters/:chapterID", r.params.ChapterHandler.GetChapter)
		instructorGroup.PATCH("/:courseID/chapters/:chapterID", r.params.ChapterHandler.UpdateChapter)
		instructorGroup.DELETE("/:courseID/chapters/:chapterID", r.params.ChapterHandler.DeleteChapter)
		instructorGroup.PATCH("/:courseID/chapters/:chapterID/publish", r.params.ChapterHandler.SetChapterPublished)
		instructorGroup.POST("/:courseID/chapters/:chapterID/video-upload", r.params.ChapterHandler.RequestVideoUpload)
	}

	// Signed callbacks from external systems
	webhookGroup := e.Group("/webhooks")
	{
		webhookGroup.POST("/payment", r.params.WebhookHandler.HandlePayment)
		webhookGroup.POST("/video", r.params.WebhookHandler.HandleVideoAsset)
	}
}
