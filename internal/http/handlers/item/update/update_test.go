package update_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/item/update"
	"github.com/magabrotheeeer/inventory-keeper/internal/models"
	"github.com/magabrotheeeer/inventory-keeper/internal/storage/repository"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Update(ctx context.Context, id int, upd models.UpdateItem) (*models.Item, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func newRequestWithID(id, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/items/"+id,
		bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	updated := &models.Item{
		ID:       7,
		Name:     "Renamed",
		Category: models.CategoryGadget,
		Quantity: 9,
	}

	tests := []struct {
		name       string
		id         string
		body       string
		setupMocks func(s *ServiceMock)
		wantStatus int
		wantItem   *models.Item
	}{
		{
			name: "частичное обновление: только имя",
			id:   "7",
			body: `{"name": "Renamed"}`,
			setupMocks: func(s *ServiceMock) {
				s.On("Update", mock.Anything, 7, mock.MatchedBy(func(upd models.UpdateItem) bool {
					return upd.Name != nil && *upd.Name == "Renamed" &&
						upd.Quantity == nil && upd.Price == nil
				})).Return(updated, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantItem:   updated,
		},
		{
			name: "обновление количества нулём — валидное значение",
			id:   "7",
			body: `{"quantity": 0}`,
			setupMocks: func(s *ServiceMock) {
				s.On("Update", mock.Anything, 7, mock.MatchedBy(func(upd models.UpdateItem) bool {
					return upd.Quantity != nil && *upd.Quantity == 0 && upd.Name == nil
				})).Return(updated, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "нечисловой id",
			id:         "abc",
			body:       `{"name": "x"}`,
			setupMocks: func(_ *ServiceMock) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "битый JSON",
			id:         "7",
			body:       `{"name": `,
			setupMocks: func(_ *ServiceMock) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "неизвестная категория",
			id:         "7",
			body:       `{"category": "Food"}`,
			setupMocks: func(_ *ServiceMock) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "отрицательная цена",
			id:         "7",
			body:       `{"price": -1}`,
			setupMocks: func(_ *ServiceMock) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "отсутствующий предмет",
			id:   "404",
			body: `{"name": "x"}`,
			setupMocks: func(s *ServiceMock) {
				s.On("Update", mock.Anything, 404, mock.Anything).
					Return(nil, repository.ErrItemNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "новое имя занято",
			id:   "7",
			body: `{"name": "taken"}`,
			setupMocks: func(s *ServiceMock) {
				s.On("Update", mock.Anything, 7, mock.Anything).
					Return(nil, repository.ErrItemAlreadyExists).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(ServiceMock)
			tt.setupMocks(service)
			handler := update.New(logger, service)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, newRequestWithID(tt.id, tt.body))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantItem != nil {
				var got models.Item
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, tt.wantItem.ID, got.ID)
				assert.Equal(t, tt.wantItem.Name, got.Name)
			}
			service.AssertExpectations(t)
		})
	}
}
