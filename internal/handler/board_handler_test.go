package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"taskboard/internal/auth"
	apperrors "taskboard/internal/errors"
	"taskboard/internal/model"
)

// MockBoardService is a mock implementation of service.BoardService.
type MockBoardService struct {
	mock.Mock
}

func (m *MockBoardService) GetBoard(ctx context.Context, id uint) (*model.Board, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Board), args.Error(1)
}

func (m *MockBoardService) ListBoards(ctx context.Context) ([]model.Board, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Board), args.Error(1)
}

func (m *MockBoardService) CreateBoard(ctx context.Context, title string, ownerID uint) (*model.Board, error) {
	args := m.Called(ctx, title, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Board), args.Error(1)
}

func (m *MockBoardService) UpdateBoard(ctx context.Context, id uint, title string) (*model.Board, error) {
	args := m.Called(ctx, id, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Board), args.Error(1)
}

func (m *MockBoardService) DeleteBoard(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBoardService) AddCollaborator(ctx context.Context, boardID, userID uint) (*model.BoardUser, error) {
	args := m.Called(ctx, boardID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BoardUser), args.Error(1)
}

func (m *MockBoardService) RemoveCollaborator(ctx context.Context, boardID, userID uint) error {
	args := m.Called(ctx, boardID, userID)
	return args.Error(0)
}

func TestBoardHandler_CreateBoard_OwnerFromToken(t *testing.T) {
	mockBoards := new(MockBoardService)
	mockBoards.On("CreateBoard", mock.Anything, "Sprint 12", uint(7)).
		Return(&model.Board{ID: 1, Title: "Sprint 12", OwnerID: 7}, nil)

	h := NewBoardHandler(mockBoards, new(MockUserService))
	// owner_id in the body must be ignored in favor of the token identity
	c, rec := newTestContext(newTestEcho(), http.MethodPost, "/board", `{"title":"Sprint 12","owner_id":999}`)
	c.Set(auth.ContextKey, &auth.Claims{UserID: 7})

	assert.NoError(t, h.CreateBoard(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	mockBoards.AssertExpectations(t)
}

func TestBoardHandler_CreateBoard_MissingTitle(t *testing.T) {
	h := NewBoardHandler(new(MockBoardService), new(MockUserService))
	c, rec := newTestContext(newTestEcho(), http.MethodPost, "/board", `{}`)
	c.Set(auth.ContextKey, &auth.Claims{UserID: 7})

	assert.NoError(t, h.CreateBoard(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBoardHandler_DeleteBoard_SecondDeleteIsNotFound(t *testing.T) {
	mockBoards := new(MockBoardService)
	mockBoards.On("GetBoard", mock.Anything, uint(3)).Return(&model.Board{ID: 3, Title: "Old"}, nil).Once()
	mockBoards.On("DeleteBoard", mock.Anything, uint(3)).Return(nil).Once()
	mockBoards.On("GetBoard", mock.Anything, uint(3)).Return(nil, nil).Once()

	h := NewBoardHandler(mockBoards, new(MockUserService))
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodDelete, "/board/3", "")
	c.SetParamNames("id")
	c.SetParamValues("3")
	assert.NoError(t, h.DeleteBoard(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newTestContext(e, http.MethodDelete, "/board/3", "")
	c.SetParamNames("id")
	c.SetParamValues("3")
	assert.NoError(t, h.DeleteBoard(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	mockBoards.AssertExpectations(t)
}

func TestBoardHandler_AddCollaborator(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMocks   func(*MockBoardService, *MockUserService)
		expectedCode int
	}{
		{
			name: "successful link",
			body: `{"boardId":1,"userId":2}`,
			setupMocks: func(boards *MockBoardService, users *MockUserService) {
				boards.On("GetBoard", mock.Anything, uint(1)).Return(&model.Board{ID: 1}, nil)
				users.On("GetUser", mock.Anything, uint(2)).Return(&model.User{ID: 2}, nil)
				boards.On("AddCollaborator", mock.Anything, uint(1), uint(2)).
					Return(&model.BoardUser{BoardID: 1, UserID: 2}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "missing ids",
			body:         `{"boardId":1}`,
			setupMocks:   func(boards *MockBoardService, users *MockUserService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "board absent",
			body: `{"boardId":1,"userId":2}`,
			setupMocks: func(boards *MockBoardService, users *MockUserService) {
				boards.On("GetBoard", mock.Anything, uint(1)).Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "user absent",
			body: `{"boardId":1,"userId":2}`,
			setupMocks: func(boards *MockBoardService, users *MockUserService) {
				boards.On("GetBoard", mock.Anything, uint(1)).Return(&model.Board{ID: 1}, nil)
				users.On("GetUser", mock.Anything, uint(2)).Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "already linked",
			body: `{"boardId":1,"userId":2}`,
			setupMocks: func(boards *MockBoardService, users *MockUserService) {
				boards.On("GetBoard", mock.Anything, uint(1)).Return(&model.Board{ID: 1}, nil)
				users.On("GetUser", mock.Anything, uint(2)).Return(&model.User{ID: 2}, nil)
				boards.On("AddCollaborator", mock.Anything, uint(1), uint(2)).
					Return(nil, apperrors.ErrCollaboratorExists)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockBoards := new(MockBoardService)
			mockUsers := new(MockUserService)
			tt.setupMocks(mockBoards, mockUsers)

			h := NewBoardHandler(mockBoards, mockUsers)
			c, rec := newTestContext(newTestEcho(), http.MethodPost, "/collaborator", tt.body)

			assert.NoError(t, h.AddCollaborator(c))
			assert.Equal(t, tt.expectedCode, rec.Code)

			mockBoards.AssertExpectations(t)
			mockUsers.AssertExpectations(t)
		})
	}
}

func TestBoardHandler_RemoveCollaborator_NotLinked(t *testing.T) {
	mockBoards := new(MockBoardService)
	mockUsers := new(MockUserService)
	mockBoards.On("GetBoard", mock.Anything, uint(1)).Return(&model.Board{ID: 1}, nil)
	mockUsers.On("GetUser", mock.Anything, uint(2)).Return(&model.User{ID: 2}, nil)
	mockBoards.On("RemoveCollaborator", mock.Anything, uint(1), uint(2)).
		Return(apperrors.ErrCollaboratorNotFound)

	h := NewBoardHandler(mockBoards, mockUsers)
	c, rec := newTestContext(newTestEcho(), http.MethodDelete, "/board/1/collaborator/2", "")
	c.SetParamNames("boardId", "userId")
	c.SetParamValues("1", "2")

	assert.NoError(t, h.RemoveCollaborator(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	mockBoards.AssertExpectations(t)
	mockUsers.AssertExpectations(t)
}
