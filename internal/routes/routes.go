package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"inakat_backend/internal/handlers"
	"inakat_backend/internal/metrics"
	"inakat_backend/internal/middleware"
	"inakat_backend/internal/models"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth           *handlers.AuthHandler
	Specialty      *handlers.SpecialtyHandler
	Job            *handlers.JobHandler
	Application    *handlers.ApplicationHandler
	Candidate      *handlers.CandidateHandler
	CompanyRequest *handlers.CompanyRequestHandler
	Pricing        *handlers.PricingHandler
	User           *handlers.UserHandler
	Upload         *handlers.UploadHandler
	File           *handlers.FileHandler
	Health         *handlers.HealthHandler
}

// Setup mounts all routes. Public routes carry no auth; admin routes sit
// behind the token gate plus a role check.
func Setup(router *gin.Engine, h Handlers, verifier middleware.TokenVerifier) {
	router.Use(metrics.Middleware())

	router.GET("/health", h.Health.Health)
	router.GET("/metrics", metrics.Handler())

	loginLimiter := middleware.NewRateLimiter(10, time.Minute)
	submitLimiter := middleware.NewRateLimiter(20, time.Minute)

	api := router.Group("/api/v1")
	{
		// Auth
		api.POST("/auth/login", loginLimiter.Middleware(), h.Auth.Login)
		api.POST("/auth/logout", h.Auth.Logout)
		api.GET("/auth/me", middleware.RequireAuth(verifier), h.Auth.Me)

		// Public board
		api.GET("/specialties", h.Specialty.ListPublic)
		api.GET("/jobs", h.Job.List)
		api.GET("/jobs/:id", h.Job.Get)
		api.POST("/jobs/:id/applications", submitLimiter.Middleware(), h.Application.Create)
		api.POST("/candidates", submitLimiter.Middleware(), h.Candidate.Create)
		api.POST("/company-requests", submitLimiter.Middleware(), h.CompanyRequest.Create)

		// CVs and registration documents are uploaded by public forms
		// before any account exists.
		api.POST("/upload", submitLimiter.Middleware(), h.Upload.Upload)
	}

	// Job and application management is open to company accounts as well.
	manage := router.Group("/api/v1/admin")
	manage.Use(middleware.RequireAuth(verifier), middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleCompany))
	{
		manage.POST("/jobs", h.Job.Create)
		manage.PUT("/jobs/:id", h.Job.Update)
		manage.DELETE("/jobs/:id", h.Job.Delete)
		manage.GET("/jobs/:id/applications", h.Application.ListByJob)
		manage.PATCH("/applications/:id/status", h.Application.UpdateStatus)
	}

	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.RequireAuth(verifier), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/specialties", h.Specialty.ListDetailed)
		admin.GET("/specialties/:id", h.Specialty.Get)
		admin.POST("/specialties", h.Specialty.Create)
		admin.PUT("/specialties/:id", h.Specialty.Update)
		admin.DELETE("/specialties/:id", h.Specialty.Delete)
		admin.PATCH("/specialties/:id/toggle", h.Specialty.ToggleActive)

		admin.GET("/candidates", h.Candidate.List)
		admin.GET("/candidates/:id", h.Candidate.Get)

		admin.GET("/company-requests", h.CompanyRequest.List)
		admin.GET("/company-requests/:id", h.CompanyRequest.Get)
		admin.POST("/company-requests/:id/approve", h.CompanyRequest.Approve)
		admin.POST("/company-requests/:id/reject", h.CompanyRequest.Reject)

		admin.GET("/users", h.User.List)
		admin.PATCH("/users/:id/status", h.User.UpdateStatus)

		admin.GET("/pricing", h.Pricing.List)
		admin.POST("/pricing", h.Pricing.Create)
		admin.PUT("/pricing/:id", h.Pricing.Update)
		admin.DELETE("/pricing/:id", h.Pricing.Delete)
	}

	// Stored documents are opened by browser navigation, so auth failures
	// redirect to login instead of returning JSON.
	files := router.Group("/api/v1/files")
	files.Use(middleware.RequirePageAuth(verifier, "/login", models.UserRoleAdmin))
	files.GET("/*filepath", h.File.Serve)
}
