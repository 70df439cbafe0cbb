package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrBoardNotFound is returned when a board is not found.
	ErrBoardNotFound = errors.New("board not found")
	// ErrColumnNotFound is returned when a column is not found.
	ErrColumnNotFound = errors.New("column not found")
	// ErrTaskNotFound is returned when a task is not found.
	ErrTaskNotFound = errors.New("task not found")
	// ErrCommentNotFound is returned when a comment is not found.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email is already in use")
	// ErrCollaboratorExists is returned when the user is already linked to the board.
	ErrCollaboratorExists = errors.New("user is already a collaborator on this board")
	// ErrCollaboratorNotFound is returned when the user is not linked to the board.
	ErrCollaboratorNotFound = errors.New("user is not a collaborator on this board")
	// ErrUserNotExists is returned on login when no user matches the email.
	// Deliberately surfaced as 400, not 404.
	ErrUserNotExists = errors.New("user does not exist")
	// ErrWrongPassword is returned on login when the password does not match.
	ErrWrongPassword = errors.New("incorrect password")
)

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unanticipated
// becomes a 500 with the raw message passed through.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrBoardNotFound),
		errors.Is(err, ErrColumnNotFound),
		errors.Is(err, ErrTaskNotFound),
		errors.Is(err, ErrCommentNotFound),
		errors.Is(err, ErrCollaboratorNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrCollaboratorExists):
		return NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrUserNotExists),
		errors.Is(err, ErrWrongPassword):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
