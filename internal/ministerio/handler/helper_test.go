package handler_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"

	"ministerios/internal/ministerio/handler"
	"ministerios/internal/ministerio/metrics"
	"ministerios/internal/ministerio/model"
	"ministerios/internal/ministerio/repository"
	"ministerios/internal/ministerio/router"
	"ministerios/internal/ministerio/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
)

const apiPath = "/api/v1/ministerios"

func SetupServer(svc service.MinisterioService) *echo.Echo {
	e := echo.New()
	reg := prometheus.NewRegistry()
	metrics.RegisterCollectors(reg)
	router.RegisterRoutes(e, handler.NewMinisterioHandler(svc), "memory", reg)
	return e
}

func SetupMemoryServer() *echo.Echo {
	return SetupServer(service.NewService(repository.NewMemoryRepository()))
}

func PerformRequest(e *echo.Echo, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	switch b := body.(type) {
	case nil:
		bodyReader = strings.NewReader("")
	case string:
		bodyReader = strings.NewReader(b)
	default:
		raw, _ := json.Marshal(b)
		bodyReader = strings.NewReader(string(raw))
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeMap(rec *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return out
}

func decodeError(rec *httptest.ResponseRecorder) model.ErrorResponse {
	var out model.ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return out
}

type MockMinisterioService struct {
	mock.Mock
}

func (m *MockMinisterioService) CreateMinisterio(ctx context.Context, fields model.MinisterioFields) (*model.Ministerio, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ministerio), args.Error(1)
}

func (m *MockMinisterioService) GetMinisterio(ctx context.Context, id string) (*model.Ministerio, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ministerio), args.Error(1)
}

func (m *MockMinisterioService) UpdateMinisterio(ctx context.Context, id string, patch model.MinisterioPatch) (*model.Ministerio, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ministerio), args.Error(1)
}

func (m *MockMinisterioService) DeleteMinisterio(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMinisterioService) ListMinisterios(ctx context.Context, filter model.MinisterioFilter) ([]*model.Ministerio, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Ministerio), args.Error(1)
}

func (m *MockMinisterioService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
