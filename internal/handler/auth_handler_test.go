package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "taskboard/internal/errors"
	"taskboard/internal/model"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		setupMock       func(*MockAuthService)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "successful login",
			body: `{"email":"alice@example.com","password":"secret"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "alice@example.com", "secret").
					Return("signed-token", &model.User{ID: 1, Name: "Alice", Email: "alice@example.com", Role: model.RoleAdmin}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "logged in successfully",
		},
		{
			name:         "missing password",
			body:         `{"email":"alice@example.com"}`,
			setupMock:    func(m *MockAuthService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "unknown email",
			body: `{"email":"nobody@example.com","password":"secret"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "nobody@example.com", "secret").
					Return("", nil, apperrors.ErrUserNotExists)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "user does not exist",
		},
		{
			name: "wrong password",
			body: `{"email":"alice@example.com","password":"wrong"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "alice@example.com", "wrong").
					Return("", nil, apperrors.ErrWrongPassword)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "incorrect password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockAuthService)
			tt.setupMock(mockSvc)

			h := NewAuthHandler(mockSvc)
			c, rec := newTestContext(newTestEcho(), http.MethodPost, "/login", tt.body)

			assert.NoError(t, h.Login(c))
			assert.Equal(t, tt.expectedCode, rec.Code)

			body := decodeBody(t, rec)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "success", body["status"])
				assert.Equal(t, "signed-token", body["token"])
				user, ok := body["user"].(map[string]interface{})
				assert.True(t, ok)
				assert.Equal(t, "alice@example.com", user["email"])
				assert.NotContains(t, user, "password")
			} else {
				assert.Equal(t, "error", body["status"])
			}
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, body["message"])
			}

			mockSvc.AssertExpectations(t)
		})
	}
}
