package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"taskboard/internal/auth"
	"taskboard/internal/model"
)

// MockCommentService is a mock implementation of service.CommentService.
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) GetComment(ctx context.Context, id uint) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentService) ListComments(ctx context.Context) ([]model.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentService) ListCommentsByTask(ctx context.Context, taskID uint) ([]model.Comment, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentService) CreateComment(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentService) UpdateComment(ctx context.Context, id uint, content string) (*model.Comment, error) {
	args := m.Called(ctx, id, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentService) DeleteComment(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCommentHandler_CreateComment(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMocks   func(*MockCommentService, *MockTaskService)
		expectedCode int
	}{
		{
			name: "author comes from token",
			body: `{"content":"Looks good","task_id":5,"user_id":999}`,
			setupMocks: func(comments *MockCommentService, tasks *MockTaskService) {
				tasks.On("GetTask", mock.Anything, uint(5)).Return(&model.Task{ID: 5}, nil)
				comments.On("CreateComment", mock.Anything, mock.MatchedBy(func(comment *model.Comment) bool {
					return comment.UserID == 7 && comment.TaskID == 5 && comment.Content == "Looks good"
				})).Return(&model.Comment{ID: 1, Content: "Looks good", TaskID: 5, UserID: 7}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "missing content",
			body:         `{"task_id":5}`,
			setupMocks:   func(comments *MockCommentService, tasks *MockTaskService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "task absent",
			body: `{"content":"Looks good","task_id":5}`,
			setupMocks: func(comments *MockCommentService, tasks *MockTaskService) {
				tasks.On("GetTask", mock.Anything, uint(5)).Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockComments := new(MockCommentService)
			mockTasks := new(MockTaskService)
			tt.setupMocks(mockComments, mockTasks)

			h := NewCommentHandler(mockComments, mockTasks)
			c, rec := newTestContext(newTestEcho(), http.MethodPost, "/comment", tt.body)
			c.Set(auth.ContextKey, &auth.Claims{UserID: 7})

			assert.NoError(t, h.CreateComment(c))
			assert.Equal(t, tt.expectedCode, rec.Code)

			mockComments.AssertExpectations(t)
			mockTasks.AssertExpectations(t)
		})
	}
}

// The global listing answers an empty table with 200, unlike the other lists.
func TestCommentHandler_ListComments_EmptyIsOK(t *testing.T) {
	mockComments := new(MockCommentService)
	mockComments.On("ListComments", mock.Anything).Return([]model.Comment{}, nil)

	h := NewCommentHandler(mockComments, new(MockTaskService))
	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/comments", "")

	assert.NoError(t, h.ListComments(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", decodeBody(t, rec)["status"])
	mockComments.AssertExpectations(t)
}

func TestCommentHandler_ListCommentsByTask_EmptyIsNotFound(t *testing.T) {
	mockComments := new(MockCommentService)
	mockComments.On("ListCommentsByTask", mock.Anything, uint(5)).Return([]model.Comment{}, nil)

	h := NewCommentHandler(mockComments, new(MockTaskService))
	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/comments/5", "")
	c.SetParamNames("taskId")
	c.SetParamValues("5")

	assert.NoError(t, h.ListCommentsByTask(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	mockComments.AssertExpectations(t)
}

func TestCommentHandler_DeleteComment_Absent(t *testing.T) {
	mockComments := new(MockCommentService)
	mockComments.On("GetComment", mock.Anything, uint(8)).Return(nil, nil)

	h := NewCommentHandler(mockComments, new(MockTaskService))
	c, rec := newTestContext(newTestEcho(), http.MethodDelete, "/comment/8", "")
	c.SetParamNames("id")
	c.SetParamValues("8")

	assert.NoError(t, h.DeleteComment(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	mockComments.AssertExpectations(t)
}
