package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mock_interfaces "construction_quote/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rl := newRateLimiter(2, time.Minute, func() time.Time { return now })

	if !rl.Allow("1.1.1.1") || !rl.Allow("1.1.1.1") {
		t.Fatalf("expected first two requests to pass")
	}
	if rl.Allow("1.1.1.1") {
		t.Fatalf("expected third request in the window to be rejected")
	}
	if !rl.Allow("2.2.2.2") {
		t.Fatalf("buckets must be per client")
	}

	now = now.Add(time.Minute)
	if !rl.Allow("1.1.1.1") {
		t.Fatalf("expected refill after the window")
	}

	now = now.Add(2 * time.Hour)
	rl.cleanup()
	if len(rl.clients) != 0 {
		t.Fatalf("expected idle buckets to be dropped, got %d", len(rl.clients))
	}
}

func TestRateLimit_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Now()
	rl := newRateLimiter(1, time.Minute, func() time.Time { return now })

	r := gin.New()
	r.POST("/v1/leads", RateLimit(rl), func(c *gin.Context) { c.Status(http.StatusCreated) })

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/v1/leads", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := send(); code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}
	if code := send(); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}
}

func TestAdminGuard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(auth *mock_interfaces.MockIAdminAuthorizer) *gin.Engine {
		r := gin.New()
		r.GET("/v1/admin/leads", AdminGuard(auth), func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}
	call := func(r *gin.Engine, header string) int {
		req := httptest.NewRequest(http.MethodGet, "/v1/admin/leads", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("missing or malformed header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(mock_interfaces.NewMockIAdminAuthorizer(ctrl))

		for _, h := range []string{"", "secret", "Basic abc", "Bearer   "} {
			if code := call(r, h); code != http.StatusUnauthorized {
				t.Fatalf("%q: expected 401, got %d", h, code)
			}
		}
	})

	t.Run("rejected token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mock_interfaces.NewMockIAdminAuthorizer(ctrl)
		auth.EXPECT().IsAdmin(gomock.Any(), "wrong").Return(false, nil)

		if code := call(newRouter(auth), "Bearer wrong"); code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", code)
		}
	})

	t.Run("authorizer failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mock_interfaces.NewMockIAdminAuthorizer(ctrl)
		auth.EXPECT().IsAdmin(gomock.Any(), "tok").Return(false, errors.New("not configured"))

		if code := call(newRouter(auth), "Bearer tok"); code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", code)
		}
	})

	t.Run("accepted token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mock_interfaces.NewMockIAdminAuthorizer(ctrl)
		auth.EXPECT().IsAdmin(gomock.Any(), "s3cret").Return(true, nil)

		if code := call(newRouter(auth), "bearer s3cret"); code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
	})
}
