package update

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/glass-quote/internal/models"
	"github.com/magabrotheeeer/glass-quote/internal/storage"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, id string, req models.GlassTypeRequest) (*models.GlassType, error) {
	args := m.Called(ctx, id, req)
	g, _ := args.Get(0).(*models.GlassType)
	return g, args.Error(1)
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	req := models.GlassTypeRequest{Name: "Float", Thickness: "5mm", PriceM2: 120}

	tests := []struct {
		name           string
		id             string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "updated",
			id:   "g1",
			body: `{"nombre":"Float","grosor":"5mm","precioM2":120}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "g1", req).
					Return(&models.GlassType{ID: "g1", Name: "Float", Thickness: "5mm", PriceM2: 120}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"_id":"g1","nombre":"Float","grosor":"5mm","precioM2":120}`,
		},
		{
			name: "not found",
			id:   "gx",
			body: `{"nombre":"Float","grosor":"5mm","precioM2":120}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "gx", req).Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"Tipo de vidrio no encontrado"}`,
		},
		{
			name:           "missing name",
			id:             "g1",
			body:           `{"precioM2":120}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"message":"el campo nombre es obligatorio"}`,
		},
		{
			name: "service error",
			id:   "g1",
			body: `{"nombre":"Float","grosor":"5mm","precioM2":120}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "g1", req).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"No se pudo actualizar el tipo de vidrio"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			r := httptest.NewRequest(http.MethodPut, "/api/vidrios/"+tt.id, strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
			rec := httptest.NewRecorder()

			New(logger, svc).ServeHTTP(rec, r)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
