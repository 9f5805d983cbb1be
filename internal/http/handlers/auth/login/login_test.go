package login_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/auth/login"
	services "github.com/magabrotheeeer/inventory-keeper/internal/services/auth"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func TestLoginHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	tests := []struct {
		name       string
		form       url.Values
		setupMocks func(s *ServiceMock)
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name: "успешный вход",
			form: url.Values{"username": {"testuser"}, "password": {"password123"}},
			setupMocks: func(s *ServiceMock) {
				s.On("Login", mock.Anything, "testuser", "password123").
					Return("signed-token", nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody: map[string]any{
				"access_token": "signed-token",
				"token_type":   "bearer",
			},
		},
		{
			name:       "пустое имя пользователя",
			form:       url.Values{"password": {"password123"}},
			setupMocks: func(_ *ServiceMock) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "пустой пароль",
			form:       url.Values{"username": {"testuser"}},
			setupMocks: func(_ *ServiceMock) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "неверные учётные данные",
			form: url.Values{"username": {"testuser"}, "password": {"wrong"}},
			setupMocks: func(s *ServiceMock) {
				s.On("Login", mock.Anything, "testuser", "wrong").
					Return("", services.ErrInvalidCredentials).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"status": "Error", "error": "invalid credentials"},
		},
		{
			name: "отказ хранилища — 500, а не неверные учётные данные",
			form: url.Values{"username": {"testuser"}, "password": {"password123"}},
			setupMocks: func(s *ServiceMock) {
				s.On("Login", mock.Anything, "testuser", "password123").
					Return("", errors.New("pq: connection refused")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]any{"status": "Error", "error": "internal service error"},
		},
		{
			name: "неизвестный пользователь даёт тот же ответ, что и неверный пароль",
			form: url.Values{"username": {"ghost"}, "password": {"whatever"}},
			setupMocks: func(s *ServiceMock) {
				s.On("Login", mock.Anything, "ghost", "whatever").
					Return("", services.ErrInvalidCredentials).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"status": "Error", "error": "invalid credentials"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(ServiceMock)
			tt.setupMocks(service)
			handler := login.New(logger, service)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
				strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != nil {
				var got map[string]any
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, tt.wantBody, got)
			}
			service.AssertExpectations(t)
		})
	}
}
