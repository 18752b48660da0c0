package routes

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"construction_quote/internal/adapter/http/handlers"
	"construction_quote/internal/adapter/http/handlers/mocks"
	"construction_quote/internal/adapter/http/middleware"
	"construction_quote/internal/domain/entities"
	mock_interfaces "construction_quote/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type routeMocks struct {
	calculator *mocks.MockICalculatorUseCase
	leads      *mocks.MockILeadUseCase
	admin      *mocks.MockIAdminConfigUseCase
	authorizer *mock_interfaces.MockIAdminAuthorizer
}

func newTestRouter(t *testing.T, perMinute int) (*gin.Engine, routeMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	m := routeMocks{
		calculator: mocks.NewMockICalculatorUseCase(ctrl),
		leads:      mocks.NewMockILeadUseCase(ctrl),
		admin:      mocks.NewMockIAdminConfigUseCase(ctrl),
		authorizer: mock_interfaces.NewMockIAdminAuthorizer(ctrl),
	}
	limiter := middleware.NewRateLimiter(perMinute, time.Minute)
	t.Cleanup(limiter.Stop)

	r := gin.New()
	registerRoutes(r, routeHandlers{
		calculator: handlers.NewCalculatorHandler(m.calculator),
		leads:      handlers.NewLeadHandler(m.leads),
		admin:      handlers.NewAdminConfigHandler(m.admin),
	}, limiter, m.authorizer)
	return r, m
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoutes_Ping(t *testing.T) {
	r, _ := newTestRouter(t, 10)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRoutes_PublicCatalog(t *testing.T) {
	r, m := newTestRouter(t, 10)
	m.calculator.EXPECT().ListBuildingTypes(gomock.Any()).Return([]entities.BuildingTypeConfig{}, nil)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/v1/calculator/building-types", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestRoutes_QuoteIsRateLimited(t *testing.T) {
	r, _ := newTestRouter(t, 1)

	newReq := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/v1/calculator/quote", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		return req
	}

	if w := serve(r, newReq()); w.Code != http.StatusBadRequest {
		t.Fatalf("expected first request to reach the handler, got %d", w.Code)
	}
	if w := serve(r, newReq()); w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
}

func TestRoutes_AdminRequiresToken(t *testing.T) {
	r, m := newTestRouter(t, 10)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/v1/admin/configs", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	m.authorizer.EXPECT().IsAdmin(gomock.Any(), "s3cret").Return(true, nil)
	m.admin.EXPECT().ListConfigs(gomock.Any()).Return([]entities.BuildingTypeConfig{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/configs", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	if w := serve(r, req); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestRoutes_AdminLeads(t *testing.T) {
	r, m := newTestRouter(t, 10)
	m.authorizer.EXPECT().IsAdmin(gomock.Any(), "s3cret").Return(true, nil)
	m.leads.EXPECT().Delete(gomock.Any(), "lead-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/admin/leads/lead-1", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	if w := serve(r, req); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")
	if v, err := envInt("RATE_LIMIT_PER_MINUTE", 30); err != nil || v != 30 {
		t.Fatalf("expected default, got %d err=%v", v, err)
	}

	t.Setenv("RATE_LIMIT_PER_MINUTE", "zero")
	if _, err := envInt("RATE_LIMIT_PER_MINUTE", 30); err == nil {
		t.Fatalf("expected error for non-numeric value")
	}

	t.Setenv("CATALOG_CACHE_TTL", "90s")
	if v, err := envDuration("CATALOG_CACHE_TTL", time.Minute); err != nil || v != 90*time.Second {
		t.Fatalf("unexpected ttl %v err=%v", v, err)
	}

	t.Setenv("CATALOG_CACHE_TTL", "-1m")
	if _, err := envDuration("CATALOG_CACHE_TTL", time.Minute); err == nil {
		t.Fatalf("expected error for negative ttl")
	}
}

func TestOpenStores_UnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")
	if _, err := openStores(context.Background()); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
