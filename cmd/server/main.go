package main

import (
	"log"
	"net/http"

	_ "taskboard/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"taskboard/internal/auth"
	"taskboard/internal/cache"
	"taskboard/internal/config"
	"taskboard/internal/db"
	"taskboard/internal/handler"
	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/router"
	"taskboard/internal/service"
)

// @title Kanban Board API
// @version 1.0
// @description Kanban-style task board API with boards, columns, tasks, comments and JWT authentication.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token issued by POST /login, with or without the "Bearer " prefix.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Relationship schema is migrated once at startup and never mutated after.
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Board{},
		&model.BoardUser{},
		&model.Column{},
		&model.Task{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	boardRepo := repository.NewBoardRepository(gormDB)
	columnRepo := repository.NewColumnRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	// Auth components
	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpirationDays)

	// Services
	authService := service.NewAuthService(userRepo, tokenService)
	userService := service.NewUserService(userRepo, cacheClient)
	boardService := service.NewBoardService(boardRepo, cacheClient)
	columnService := service.NewColumnService(columnRepo)
	taskService := service.NewTaskService(taskRepo)
	commentService := service.NewCommentService(commentRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	boardHandler := handler.NewBoardHandler(boardService, userService)
	columnHandler := handler.NewColumnHandler(columnService, boardService)
	taskHandler := handler.NewTaskHandler(taskService, columnService, userService)
	commentHandler := handler.NewCommentHandler(commentService, taskService)

	router.Register(
		e,
		tokenService,
		authHandler,
		userHandler,
		boardHandler,
		columnHandler,
		taskHandler,
		commentHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
