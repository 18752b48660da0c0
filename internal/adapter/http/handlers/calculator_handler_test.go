package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"construction_quote/internal/adapter/http/handlers/mocks"
	"construction_quote/internal/domain/entities"
	"construction_quote/internal/domain/quotation"
	"construction_quote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCalculatorRouter(h *CalculatorHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/calculator/building-types", h.ListBuildingTypes)
	r.GET("/v1/calculator/building-types/:slug", h.GetBuildingType)
	r.GET("/v1/calculator/regions", h.ListRegions)
	r.POST("/v1/calculator/quote", h.Quote)
	return r
}

func TestCalculatorHandler_Quote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalculatorUseCase(ctrl)
		r := newCalculatorRouter(NewCalculatorHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/calculator/quote", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing field is named", func(t *testing.T) {
		cases := map[string]string{
			`{"area":500,"region":"Москва"}`:                "building_type is required",
			`{"building_type":"sklad","region":"Москва"}`:   "area is required",
			`{"building_type":"sklad","area":0}`:            "area is required",
			`{"building_type":"sklad","area":500}`:          "region is required",
			`{"building_type":"sklad","area":500,"region":""}`: "region is required",
		}
		for body, want := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockICalculatorUseCase(ctrl)
			r := newCalculatorRouter(NewCalculatorHandler(uc))

			req := httptest.NewRequest(http.MethodPost, "/v1/calculator/quote", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", body, w.Code)
			}
			var got map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &got)
			if got["code"] != "MISSING_FIELD" || got["message"] != want {
				t.Fatalf("%s: unexpected body %s", body, w.Body.String())
			}
			ctrl.Finish()
		}
	})

	t.Run("area above maximum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalculatorUseCase(ctrl)
		r := newCalculatorRouter(NewCalculatorHandler(uc))

		body := fmt.Sprintf(`{"building_type":"sklad","area":%d,"region":"Москва"}`, quotation.MaxArea+1)
		req := httptest.NewRequest(http.MethodPost, "/v1/calculator/quote", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["code"] != "AREA_OUT_OF_RANGE" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("use case rejects oversized area", func(t *testing.T) {
		appErr := mapCalculatorError(usecase.ErrAreaTooLarge)
		if appErr.HTTPStatus != http.StatusBadRequest || appErr.Code != "AREA_OUT_OF_RANGE" {
			t.Fatalf("unexpected mapping %+v", appErr)
		}
	})

	t.Run("catalog not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalculatorUseCase(ctrl)
		r := newCalculatorRouter(NewCalculatorHandler(uc))

		uc.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(entities.Quotation{}, usecase.ErrCatalogNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/calculator/quote", bytes.NewBufferString(`{"building_type":"nope","area":500,"region":"Москва"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalculatorUseCase(ctrl)
		r := newCalculatorRouter(NewCalculatorHandler(uc))

		uc.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(entities.Quotation{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodPost, "/v1/calculator/quote", bytes.NewBufferString(`{"building_type":"sklad","area":500,"region":"Москва"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalculatorUseCase(ctrl)
		r := newCalculatorRouter(NewCalculatorHandler(uc))

		uc.EXPECT().Quote(gomock.Any(), usecase.QuoteCommand{
			Slug: "sklad", Area: 500, Region: "Московская область", Options: []string{"X"},
		}).Return(entities.Quotation{
			Slug: "sklad", BuildingType: "Склад", Area: 500, Region: "Московская область", RegionCoefficient: 1.02,
			AppliedOptions: []string{"X"},
			Result:         entities.QuotationResult{PriceMin: 16932000, PriceMax: 24480000, DurationMin: 8, DurationMax: 16},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/calculator/quote",
			bytes.NewBufferString(`{"building_type":"sklad","area":500,"region":"Московская область","options":["X"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if got["price_min"] != float64(16932000) || got["price_range"] != "16.9–24.5 млн ₽" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if got["disclaimer"] == "" {
			t.Fatalf("expected disclaimer")
		}
	})
}

func TestCalculatorHandler_GetBuildingType(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalculatorUseCase(ctrl)
		r := newCalculatorRouter(NewCalculatorHandler(uc))

		uc.EXPECT().GetCatalog(gomock.Any(), "draft").Return(entities.PricingCatalog{}, usecase.ErrCatalogNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/calculator/building-types/draft", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalculatorUseCase(ctrl)
		r := newCalculatorRouter(NewCalculatorHandler(uc))

		uc.EXPECT().GetCatalog(gomock.Any(), "sklad").Return(entities.PricingCatalog{
			Config:  entities.BuildingTypeConfig{ID: "cfg-1", Slug: "sklad", IsPublished: true},
			Options: []entities.CalculatorOption{{ID: "opt-1", Name: "X"}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/calculator/building-types/sklad", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got struct {
			Slug    string           `json:"slug"`
			Options []map[string]any `json:"options"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got.Slug != "sklad" || len(got.Options) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCalculatorHandler_Lists(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICalculatorUseCase(ctrl)
	r := newCalculatorRouter(NewCalculatorHandler(uc))

	uc.EXPECT().ListBuildingTypes(gomock.Any()).Return([]entities.BuildingTypeConfig{{ID: "cfg-1"}, {ID: "cfg-2"}}, nil)
	uc.EXPECT().ListRegions(gomock.Any()).Return(nil, errors.New("db"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/calculator/building-types", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var list []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if len(list) != 2 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/calculator/regions", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
