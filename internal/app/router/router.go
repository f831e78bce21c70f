// Package router assembles the HTTP route table.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "academy_backend/internal/feature/auth/handler"
	categoryhandler "academy_backend/internal/feature/category/handler"
	coursehandler "academy_backend/internal/feature/course/handler"
	overviewhandler "academy_backend/internal/feature/overview/handler"
	sectionhandler "academy_backend/internal/feature/section/handler"
	settingshandler "academy_backend/internal/feature/settings/handler"
	userhandler "academy_backend/internal/feature/user/handler"
	"academy_backend/internal/platform/http/handler"
	"academy_backend/internal/platform/middleware"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Health     *handler.HealthHandler
	Auth       *authhandler.AuthHandler
	Categories *categoryhandler.CategoryHandler
	Courses    *coursehandler.CourseHandler
	Sections   *sectionhandler.SectionHandler
	Users      *userhandler.UserHandler
	Settings   *settingshandler.SettingsHandler
	Overview   *overviewhandler.OverviewHandler
}

// Rate limit tiers. Public covers unauthenticated reads, auth covers the
// credential endpoints, api covers everything behind the token gate.
const (
	publicLimit  = 100
	publicWindow = 15 * time.Minute
	authLimit    = 20
	authWindow   = 15 * time.Minute
	apiLimit     = 500
	apiWindow    = time.Hour
)

// New builds the engine with the full middleware chain and route table
// under /api/v1.
func New(h Handlers, tokens middleware.TokenVerifier, dev bool) *gin.Engine {
	r := gin.New()
	r.Use(cors.Default())
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(dev))
	r.Use(middleware.ErrorHandler(dev))

	publicLimiter := middleware.NewRateLimiter(publicLimit, publicWindow,
		"Too many requests from this IP, please try again after 15 minutes")
	authLimiter := middleware.NewRateLimiter(authLimit, authWindow,
		"Too many authentication attempts, please try again after 15 minutes")
	apiLimiter := middleware.NewRateLimiter(apiLimit, apiWindow,
		"Too many requests from this IP, please try again after an hour")

	v1 := r.Group("/api/v1")

	v1.GET("/health", publicLimiter.Middleware(), h.Health.Handle)

	auth := v1.Group("/auth", authLimiter.Middleware())
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	protected := v1.Group("/", apiLimiter.Middleware(), middleware.Auth(tokens))
	{
		protected.GET("/categories", h.Categories.List)
		protected.POST("/categories", h.Categories.Create)
		protected.GET("/categories/:id", h.Categories.Get)
		protected.PUT("/categories/:id", h.Categories.Update)
		protected.DELETE("/categories/:id", h.Categories.Delete)

		protected.GET("/courses", h.Courses.List)
		protected.POST("/courses", h.Courses.Create)
		protected.GET("/courses/:id", h.Courses.Get)
		protected.PUT("/courses/:id", h.Courses.Update)
		protected.DELETE("/courses/:id", h.Courses.Delete)

		protected.GET("/course-sections", h.Sections.List)
		protected.POST("/course-sections", h.Sections.Create)
		protected.GET("/course-sections/:id", h.Sections.Get)
		protected.PUT("/course-sections/:id", h.Sections.Update)
		protected.DELETE("/course-sections/:id", h.Sections.Delete)

		protected.GET("/users", h.Users.List)
		protected.POST("/users", h.Users.Create)
		protected.GET("/users/:id", h.Users.Get)
		protected.PUT("/users/:id", h.Users.Update)
		protected.DELETE("/users/:id", h.Users.Delete)

		protected.GET("/settings", h.Settings.Get)
		protected.PUT("/settings", h.Settings.Update)

		protected.GET("/overview", h.Overview.Stats)
		protected.GET("/overview/courses", h.Overview.TopCourses)
		protected.GET("/overview/user-growth", h.Overview.UserGrowth)
	}

	return r
}
