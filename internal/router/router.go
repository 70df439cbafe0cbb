package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"taskboard/internal/auth"
	"taskboard/internal/handler"
)

// Register wires routes and middleware. POST /login and POST /user are
// public; everything else sits behind the auth gate.
func Register(
	e *echo.Echo,
	tokens *auth.TokenService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	boardHandler *handler.BoardHandler,
	columnHandler *handler.ColumnHandler,
	taskHandler *handler.TaskHandler,
	commentHandler *handler.CommentHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/login", authHandler.Login)
	e.POST("/user", userHandler.CreateUser)

	// Secured routes
	secured := e.Group("", auth.Middleware(tokens))

	secured.GET("/users", userHandler.ListUsers)
	secured.GET("/user/:id", userHandler.GetUser)
	secured.PUT("/user/:id", userHandler.UpdateUser)
	secured.DELETE("/user/:id", userHandler.DeleteUser)

	secured.GET("/boards", boardHandler.ListBoards)
	secured.GET("/board/:id", boardHandler.GetBoard)
	secured.POST("/board", boardHandler.CreateBoard)
	secured.PUT("/board/:id", boardHandler.UpdateBoard)
	secured.DELETE("/board/:id", boardHandler.DeleteBoard)
	secured.POST("/collaborator", boardHandler.AddCollaborator)
	secured.DELETE("/board/:boardId/collaborator/:userId", boardHandler.RemoveCollaborator)

	secured.GET("/columns", columnHandler.ListColumns)
	secured.GET("/column/:id", columnHandler.GetColumn)
	secured.POST("/column", columnHandler.CreateColumn)
	secured.PUT("/column/:id", columnHandler.UpdateColumn)
	secured.DELETE("/column/:id", columnHandler.DeleteColumn)

	secured.GET("/tasks", taskHandler.ListTasks)
	secured.GET("/task/:id", taskHandler.GetTask)
	secured.POST("/task", taskHandler.CreateTask)
	secured.PUT("/task/:id", taskHandler.UpdateTask)
	secured.DELETE("/task/:id", taskHandler.DeleteTask)
	secured.GET("/tasks/column/:columnId", taskHandler.ListTasksByColumn)
	secured.GET("/tasks/board/:boardId", taskHandler.ListTasksByBoard)

	secured.POST("/comment", commentHandler.CreateComment)
	secured.GET("/comments", commentHandler.ListComments)
	secured.GET("/comments/:taskId", commentHandler.ListCommentsByTask)
	secured.GET("/comment/:id", commentHandler.GetComment)
	secured.PUT("/comment/:id", commentHandler.UpdateComment)
	secured.DELETE("/comment/:id", commentHandler.DeleteComment)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
