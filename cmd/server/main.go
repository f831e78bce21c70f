package main

import (
	"log"
	"log/slog"
	"os"

	authadapters "academy_backend/internal/feature/auth/adapters"
	authhandler "academy_backend/internal/feature/auth/handler"
	authusecase "academy_backend/internal/feature/auth/usecase"
	categoryadapters "academy_backend/internal/feature/category/adapters"
	categoryhandler "academy_backend/internal/feature/category/handler"
	categoryusecase "academy_backend/internal/feature/category/usecase"
	courseadapters "academy_backend/internal/feature/course/adapters"
	coursehandler "academy_backend/internal/feature/course/handler"
	courseusecase "academy_backend/internal/feature/course/usecase"
	overviewadapters "academy_backend/internal/feature/overview/adapters"
	overviewhandler "academy_backend/internal/feature/overview/handler"
	overviewusecase "academy_backend/internal/feature/overview/usecase"
	sectionadapters "academy_backend/internal/feature/section/adapters"
	sectionhandler "academy_backend/internal/feature/section/handler"
	sectionusecase "academy_backend/internal/feature/section/usecase"
	settingsadapters "academy_backend/internal/feature/settings/adapters"
	settingshandler "academy_backend/internal/feature/settings/handler"
	settingsusecase "academy_backend/internal/feature/settings/usecase"
	useradapters "academy_backend/internal/feature/user/adapters"
	userhandler "academy_backend/internal/feature/user/handler"
	userusecase "academy_backend/internal/feature/user/usecase"

	goredis "github.com/redis/go-redis/v9"

	"academy_backend/internal/app/router"
	"academy_backend/internal/platform/cache"
	"academy_backend/internal/platform/config"
	"academy_backend/internal/platform/db"
	"academy_backend/internal/platform/http/handler"
	"academy_backend/internal/platform/redis"
	"academy_backend/internal/platform/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	setupLogger(cfg)

	gormDB := db.Open(cfg)

	tokens, err := token.NewManager(cfg.JWTSecret, cfg.JWTExpiresIn)
	if err != nil {
		log.Fatalf("failed to initialize token manager: %v", err)
	}

	// Redis is optional; without it the overview endpoints hit the
	// database on every request.
	var rdb *goredis.Client
	if addr := cfg.RedisAddr(); addr != "" {
		client, err := redis.NewClient(addr, cfg.RedisPassword)
		if err != nil {
			slog.Warn("redis unavailable, continuing without cache", "error", err)
		} else {
			rdb = client
		}
	}

	authUC := authusecase.NewAuthUsecase(authadapters.NewUserGorm(gormDB), tokenSigner{tokens})
	categoryUC := categoryusecase.NewCategoryUsecase(categoryadapters.NewCategoryGorm(gormDB))
	courseRepo := courseadapters.NewCourseGorm(gormDB)
	courseUC := courseusecase.NewCourseUsecase(courseRepo)
	sectionUC := sectionusecase.NewSectionUsecase(sectionadapters.NewSectionGorm(gormDB), courseRepo)
	userUC := userusecase.NewUserUsecase(useradapters.NewUserGorm(gormDB))
	settingsUC := settingsusecase.NewSettingsUsecase(settingsadapters.NewSettingsGorm(gormDB))
	overviewUC := overviewusecase.NewOverviewUsecase(overviewadapters.NewStatsGorm(gormDB))
	overviewSvc := cache.NewCachingOverviewService(rdb, 0, overviewUC)

	handlers := router.Handlers{
		Health:     handler.NewHealthHandler(),
		Auth:       authhandler.NewAuthHandler(authUC),
		Categories: categoryhandler.NewCategoryHandler(categoryUC),
		Courses:    coursehandler.NewCourseHandler(courseUC),
		Sections:   sectionhandler.NewSectionHandler(sectionUC),
		Users:      userhandler.NewUserHandler(userUC),
		Settings:   settingshandler.NewSettingsHandler(settingsUC),
		Overview:   overviewhandler.NewOverviewHandler(overviewSvc),
	}

	r := router.New(handlers, tokens, cfg.IsDevelopment())

	slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func setupLogger(cfg *config.Config) {
	var h slog.Handler
	if cfg.IsDevelopment() {
		h = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(h))
}

// tokenSigner adapts *token.Manager's variadic Sign to the
// non-variadic authusecase.TokenSigner interface.
type tokenSigner struct {
	m *token.Manager
}

func (s tokenSigner) Sign(userID uint, role string) (string, error) {
	return s.m.Sign(userID, role)
}
