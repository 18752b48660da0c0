package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"construction_quote/internal/domain/entities"
	"construction_quote/internal/domain/quotation"
	mock_interfaces "construction_quote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type calculatorMocks struct {
	configs *mock_interfaces.MockIBuildingTypeConfigRepository
	options *mock_interfaces.MockICalculatorOptionRepository
	regions *mock_interfaces.MockIRegionModifierRepository
	cache   *mock_interfaces.MockICatalogCache
}

func newCalculatorMocks(ctrl *gomock.Controller) calculatorMocks {
	return calculatorMocks{
		configs: mock_interfaces.NewMockIBuildingTypeConfigRepository(ctrl),
		options: mock_interfaces.NewMockICalculatorOptionRepository(ctrl),
		regions: mock_interfaces.NewMockIRegionModifierRepository(ctrl),
		cache:   mock_interfaces.NewMockICatalogCache(ctrl),
	}
}

func skladConfig() entities.BuildingTypeConfig {
	return entities.BuildingTypeConfig{
		ID:               "cfg-1",
		Slug:             "sklad",
		BuildingType:     "Склад",
		BasePriceMin:     32000,
		BasePriceMax:     46000,
		DurationMinWeeks: 8,
		DurationMaxWeeks: 16,
		IsPublished:      true,
	}
}

func skladOptions() []entities.CalculatorOption {
	return []entities.CalculatorOption{
		{ID: "opt-1", ConfigID: "cfg-1", Name: "X", AddPriceMin: 1200, AddPriceMax: 2000},
		{ID: "opt-2", ConfigID: "cfg-1", Name: "Кран-балка", AddPriceMin: 900, AddPriceMax: 1500},
	}
}

func moscowRegions() []entities.RegionModifier {
	return []entities.RegionModifier{
		{ID: "reg-1", Region: "Москва", Coefficient: 1.0},
		{ID: "reg-2", Region: "Московская область", Coefficient: 1.02},
	}
}

func TestCalculatorUseCase_Quote_Validation(t *testing.T) {
	cases := []struct {
		name string
		cmd  QuoteCommand
		want error
	}{
		{"missing slug", QuoteCommand{Slug: "  ", Area: 500, Region: "Москва"}, ErrMissingBuildingType},
		{"zero area", QuoteCommand{Slug: "sklad", Area: 0, Region: "Москва"}, ErrInvalidArea},
		{"negative area", QuoteCommand{Slug: "sklad", Area: -10, Region: "Москва"}, ErrInvalidArea},
		{"missing region", QuoteCommand{Slug: "sklad", Area: 500, Region: ""}, ErrMissingRegion},
		{"area above maximum", QuoteCommand{Slug: "sklad", Area: quotation.MaxArea + 1, Region: "Москва"}, ErrAreaTooLarge},
		{"slug checked before area", QuoteCommand{Area: 0}, ErrMissingBuildingType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// No repository calls are expected: a nil dependency would panic.
			uc := NewCalculatorUseCase(nil, nil, nil, nil)
			_, err := uc.Quote(context.Background(), tc.cmd)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestCalculatorUseCase_Quote(t *testing.T) {
	t.Run("catalog not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCalculatorMocks(ctrl)
		uc := NewCalculatorUseCase(m.configs, m.options, m.regions, nil)

		m.configs.EXPECT().GetBySlug(gomock.Any(), "missing", true).Return(entities.BuildingTypeConfig{}, nil)

		_, err := uc.Quote(context.Background(), QuoteCommand{Slug: "missing", Area: 100, Region: "Москва"})
		if !errors.Is(err, ErrCatalogNotFound) {
			t.Fatalf("expected ErrCatalogNotFound, got %v", err)
		}
	})

	t.Run("config lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCalculatorMocks(ctrl)
		uc := NewCalculatorUseCase(m.configs, m.options, m.regions, nil)

		m.configs.EXPECT().GetBySlug(gomock.Any(), "sklad", true).Return(entities.BuildingTypeConfig{}, errors.New("db"))

		_, err := uc.Quote(context.Background(), QuoteCommand{Slug: "sklad", Area: 100, Region: "Москва"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("options lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCalculatorMocks(ctrl)
		uc := NewCalculatorUseCase(m.configs, m.options, m.regions, nil)

		m.configs.EXPECT().GetBySlug(gomock.Any(), "sklad", true).Return(skladConfig(), nil)
		m.options.EXPECT().ListByConfigID(gomock.Any(), "cfg-1").Return(nil, errors.New("db"))

		_, err := uc.Quote(context.Background(), QuoteCommand{Slug: "sklad", Area: 100, Region: "Москва"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("unknown region", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCalculatorMocks(ctrl)
		uc := NewCalculatorUseCase(m.configs, m.options, m.regions, nil)

		m.configs.EXPECT().GetBySlug(gomock.Any(), "sklad", true).Return(skladConfig(), nil)
		m.options.EXPECT().ListByConfigID(gomock.Any(), "cfg-1").Return(skladOptions(), nil)
		m.regions.EXPECT().List(gomock.Any()).Return(moscowRegions(), nil)

		_, err := uc.Quote(context.Background(), QuoteCommand{Slug: "sklad", Area: 100, Region: "Тверь"})
		if !errors.Is(err, ErrRegionNotFound) {
			t.Fatalf("expected ErrRegionNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCalculatorMocks(ctrl)
		uc := NewCalculatorUseCase(m.configs, m.options, m.regions, nil)

		m.configs.EXPECT().GetBySlug(gomock.Any(), "sklad", true).Return(skladConfig(), nil)
		m.options.EXPECT().ListByConfigID(gomock.Any(), "cfg-1").Return(skladOptions(), nil)
		m.regions.EXPECT().List(gomock.Any()).Return(moscowRegions(), nil)

		q, err := uc.Quote(context.Background(), QuoteCommand{
			Slug:    " sklad ",
			Area:    500,
			Region:  "Московская область",
			Options: []string{"X", "Вертолётная площадка"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := entities.QuotationResult{PriceMin: 16932000, PriceMax: 24480000, DurationMin: 8, DurationMax: 16}
		if q.Result != want {
			t.Fatalf("unexpected result: %+v", q.Result)
		}
		if q.Slug != "sklad" || q.BuildingType != "Склад" || q.Area != 500 || q.RegionCoefficient != 1.02 {
			t.Fatalf("unexpected quotation: %+v", q)
		}
		if !reflect.DeepEqual(q.AppliedOptions, []string{"X"}) {
			t.Fatalf("unexpected applied options: %v", q.AppliedOptions)
		}
	})
}

func TestCalculatorUseCase_GetCatalog_Cache(t *testing.T) {
	t.Run("hit skips store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCalculatorMocks(ctrl)
		uc := NewCalculatorUseCase(m.configs, m.options, m.regions, m.cache)

		cached := entities.PricingCatalog{Config: skladConfig(), Options: skladOptions()}
		m.cache.EXPECT().GetCatalog(gomock.Any(), "sklad").Return(cached, true)

		got, err := uc.GetCatalog(context.Background(), "sklad")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Config.ID != "cfg-1" || len(got.Options) != 2 {
			t.Fatalf("unexpected catalog: %+v", got)
		}
	})

	t.Run("miss loads and stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCalculatorMocks(ctrl)
		uc := NewCalculatorUseCase(m.configs, m.options, m.regions, m.cache)

		m.cache.EXPECT().GetCatalog(gomock.Any(), "sklad").Return(entities.PricingCatalog{}, false)
		m.configs.EXPECT().GetBySlug(gomock.Any(), "sklad", true).Return(skladConfig(), nil)
		m.options.EXPECT().ListByConfigID(gomock.Any(), "cfg-1").Return(nil, nil)
		m.cache.EXPECT().SetCatalog(gomock.Any(), "sklad", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, c entities.PricingCatalog) error {
				if c.Options == nil {
					t.Fatalf("expected non-nil options slice")
				}
				return errors.New("redis down")
			},
		)

		got, err := uc.GetCatalog(context.Background(), "sklad")
		if err != nil {
			t.Fatalf("cache failure must not fail the read, got %v", err)
		}
		if got.Config.Slug != "sklad" || len(got.Options) != 0 {
			t.Fatalf("unexpected catalog: %+v", got)
		}
	})

	t.Run("not found is not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCalculatorMocks(ctrl)
		uc := NewCalculatorUseCase(m.configs, m.options, m.regions, m.cache)

		m.cache.EXPECT().GetCatalog(gomock.Any(), "draft").Return(entities.PricingCatalog{}, false)
		m.configs.EXPECT().GetBySlug(gomock.Any(), "draft", true).Return(entities.BuildingTypeConfig{}, nil)

		_, err := uc.GetCatalog(context.Background(), "draft")
		if !errors.Is(err, ErrCatalogNotFound) {
			t.Fatalf("expected ErrCatalogNotFound, got %v", err)
		}
	})
}

func TestCalculatorUseCase_ListBuildingTypes(t *testing.T) {
	t.Run("published only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCalculatorMocks(ctrl)
		uc := NewCalculatorUseCase(m.configs, m.options, m.regions, m.cache)

		m.cache.EXPECT().GetBuildingTypes(gomock.Any()).Return(nil, false)
		m.configs.EXPECT().List(gomock.Any(), true).Return([]entities.BuildingTypeConfig{skladConfig()}, nil)
		m.cache.EXPECT().SetBuildingTypes(gomock.Any(), gomock.Len(1)).Return(nil)

		got, err := uc.ListBuildingTypes(context.Background())
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result: %v %v", got, err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newCalculatorMocks(ctrl)
		uc := NewCalculatorUseCase(m.configs, m.options, m.regions, nil)

		m.configs.EXPECT().List(gomock.Any(), true).Return(nil, errors.New("db"))

		if _, err := uc.ListBuildingTypes(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestCalculatorUseCase_ListRegions_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newCalculatorMocks(ctrl)
	uc := NewCalculatorUseCase(m.configs, m.options, m.regions, m.cache)

	m.cache.EXPECT().GetRegions(gomock.Any()).Return(moscowRegions(), true)

	got, err := uc.ListRegions(context.Background())
	if err != nil || len(got) != 2 {
		t.Fatalf("unexpected result: %v %v", got, err)
	}
}
