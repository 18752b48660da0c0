package quotation

import (
	"math"
	"sync"
	"testing"

	"construction_quote/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func warehouseCatalog() entities.PricingCatalog {
	return entities.PricingCatalog{
		Config: entities.BuildingTypeConfig{
			ID:               "cfg-1",
			Slug:             "sklad",
			BuildingType:     "Warehouse",
			BasePriceMin:     32000,
			BasePriceMax:     46000,
			DurationMinWeeks: 8,
			DurationMaxWeeks: 16,
			IsPublished:      true,
		},
		Options: []entities.CalculatorOption{
			{ID: "opt-1", ConfigID: "cfg-1", Name: "X", AddPriceMin: 1200, AddPriceMax: 2000},
			{ID: "opt-2", ConfigID: "cfg-1", Name: "LED lighting", AddPriceMin: 500, AddPriceMax: 800},
			{ID: "opt-3", ConfigID: "cfg-1", Name: "Fire alarm", AddPriceMin: 400, AddPriceMax: 700},
		},
	}
}

func TestCompute_Scenarios(t *testing.T) {
	t.Run("option with regional surcharge", func(t *testing.T) {
		res := Compute(warehouseCatalog(), 500, []string{"X"}, 1.02)
		assert.Equal(t, entities.QuotationResult{PriceMin: 16932000, PriceMax: 24480000, DurationMin: 8, DurationMax: 16}, res)
	})

	t.Run("large area without options", func(t *testing.T) {
		res := Compute(warehouseCatalog(), 6000, nil, 1.0)
		assert.Equal(t, entities.QuotationResult{PriceMin: 192000000, PriceMax: 276000000, DurationMin: 12, DurationMax: 24}, res)
	})

	t.Run("rounds once after all multiplications", func(t *testing.T) {
		c := entities.PricingCatalog{Config: entities.BuildingTypeConfig{BasePriceMin: 0.3, BasePriceMax: 0.3}}
		// 0.3 * 1.5 * 3 = 1.35 -> 1; rounding per step would give round(0.45)=0.
		res := Compute(c, 3, nil, 1.5)
		assert.Equal(t, int64(1), res.PriceMin)
		assert.Equal(t, int64(1), res.PriceMax)
	})

	t.Run("half rounds up", func(t *testing.T) {
		c := entities.PricingCatalog{Config: entities.BuildingTypeConfig{BasePriceMin: 0.5, BasePriceMax: 1.5}}
		res := Compute(c, 1, nil, 1)
		assert.Equal(t, int64(1), res.PriceMin)
		assert.Equal(t, int64(2), res.PriceMax)
	})
}

func TestCompute_DurationTiers(t *testing.T) {
	cases := []struct {
		area    float64
		wantMin int
		wantMax int
	}{
		{area: 1, wantMin: 8, wantMax: 16},
		{area: 2000, wantMin: 8, wantMax: 16},
		{area: 2001, wantMin: 10, wantMax: 20},
		{area: 5000, wantMin: 10, wantMax: 20},
		{area: 5001, wantMin: 12, wantMax: 24},
		{area: 100000, wantMin: 12, wantMax: 24},
	}

	for _, tc := range cases {
		res := Compute(warehouseCatalog(), tc.area, nil, 1)
		assert.Equalf(t, tc.wantMin, res.DurationMin, "durationMin at area %v", tc.area)
		assert.Equalf(t, tc.wantMax, res.DurationMax, "durationMax at area %v", tc.area)
	}
}

func TestCompute_RegionIdentity(t *testing.T) {
	res := Compute(warehouseCatalog(), 750, []string{"X", "Fire alarm"}, 1.0)
	assert.Equal(t, int64((32000+1200+400)*750), res.PriceMin)
	assert.Equal(t, int64((46000+2000+700)*750), res.PriceMax)
}

func TestCompute_SelectionIsASet(t *testing.T) {
	once := Compute(warehouseCatalog(), 100, []string{"X"}, 1)
	twice := Compute(warehouseCatalog(), 100, []string{"X", "X", "X"}, 1)
	assert.Equal(t, once, twice)

	forward := Compute(warehouseCatalog(), 100, []string{"X", "LED lighting"}, 1.05)
	reverse := Compute(warehouseCatalog(), 100, []string{"LED lighting", "X"}, 1.05)
	assert.Equal(t, forward, reverse)
}

// Unknown option names are ignored rather than rejected. This may hide a stale
// selection after an option is renamed; kept as-is pending product sign-off.
func TestCompute_UnknownOptionNamesAreIgnored(t *testing.T) {
	base := Compute(warehouseCatalog(), 300, []string{"X"}, 1.1)
	withUnknown := Compute(warehouseCatalog(), 300, []string{"X", "Helipad", "x"}, 1.1)
	assert.Equal(t, base, withUnknown)
}

func TestCompute_OrderingInvariants(t *testing.T) {
	names := []string{"X", "LED lighting", "Fire alarm"}
	for _, area := range []float64{1, 10, 1999, 2000, 2001, 4999, 5000, 5001, 12345} {
		for _, coef := range []float64{0.9, 1, 1.02, 1.1, 2.5} {
			for mask := 0; mask < 1<<len(names); mask++ {
				var selected []string
				for i, n := range names {
					if mask&(1<<i) != 0 {
						selected = append(selected, n)
					}
				}
				res := Compute(warehouseCatalog(), area, selected, coef)
				require.LessOrEqualf(t, res.PriceMin, res.PriceMax, "area=%v coef=%v options=%v", area, coef, selected)
				require.LessOrEqualf(t, res.DurationMin, res.DurationMax, "area=%v coef=%v options=%v", area, coef, selected)
			}
		}
	}
}

func TestCompute_Monotonicity(t *testing.T) {
	t.Run("adding an option never lowers the price", func(t *testing.T) {
		for _, extra := range []string{"X", "LED lighting", "Fire alarm"} {
			without := Compute(warehouseCatalog(), 800, []string{"Fire alarm"}, 1.03)
			with := Compute(warehouseCatalog(), 800, []string{"Fire alarm", extra}, 1.03)
			assert.GreaterOrEqual(t, with.PriceMin, without.PriceMin)
			assert.GreaterOrEqual(t, with.PriceMax, without.PriceMax)
		}
	})

	t.Run("growing area never lowers price or duration", func(t *testing.T) {
		prev := Compute(warehouseCatalog(), 1, []string{"X"}, 1.07)
		for area := 2.0; area <= 7000; area += 37 {
			cur := Compute(warehouseCatalog(), area, []string{"X"}, 1.07)
			require.GreaterOrEqual(t, cur.PriceMin, prev.PriceMin)
			require.GreaterOrEqual(t, cur.PriceMax, prev.PriceMax)
			require.GreaterOrEqual(t, cur.DurationMin, prev.DurationMin)
			require.GreaterOrEqual(t, cur.DurationMax, prev.DurationMax)
			prev = cur
		}
	})
}

func TestCompute_MaxAreaStaysInRange(t *testing.T) {
	atMax := Compute(warehouseCatalog(), MaxArea, []string{"X", "LED lighting", "Fire alarm"}, 3)
	below := Compute(warehouseCatalog(), MaxArea-1, []string{"X", "LED lighting", "Fire alarm"}, 3)

	require.Positive(t, atMax.PriceMin)
	assert.LessOrEqual(t, atMax.PriceMin, atMax.PriceMax)
	assert.GreaterOrEqual(t, atMax.PriceMin, below.PriceMin)
	assert.GreaterOrEqual(t, atMax.PriceMax, below.PriceMax)
}

func TestCompute_HugeTotalsSaturate(t *testing.T) {
	small := Compute(warehouseCatalog(), 1e14, nil, 1)
	huge := Compute(warehouseCatalog(), 3e14, nil, 1)

	assert.Equal(t, int64(math.MaxInt64), huge.PriceMin)
	assert.Equal(t, int64(math.MaxInt64), huge.PriceMax)
	assert.GreaterOrEqual(t, huge.PriceMin, small.PriceMin)
	assert.GreaterOrEqual(t, huge.PriceMax, small.PriceMax)
}

func TestRoundTotal(t *testing.T) {
	assert.Equal(t, int64(2), roundTotal(1.5))
	assert.Equal(t, int64(math.MaxInt64), roundTotal(1e19))
	assert.Equal(t, int64(math.MinInt64), roundTotal(-1e19))
}

func TestCompute_IsIdempotentAndConcurrencySafe(t *testing.T) {
	catalog := warehouseCatalog()
	want := Compute(catalog, 4321, []string{"X", "LED lighting"}, 1.05)

	var wg sync.WaitGroup
	results := make([]entities.QuotationResult, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Compute(catalog, 4321, []string{"X", "LED lighting"}, 1.05)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestAppliedOptions(t *testing.T) {
	applied, unknown := AppliedOptions(warehouseCatalog(), []string{"Fire alarm", "Helipad", "X", "X", "Helipad"})
	assert.Equal(t, []string{"X", "Fire alarm"}, applied)
	assert.Equal(t, []string{"Helipad"}, unknown)

	applied, unknown = AppliedOptions(warehouseCatalog(), nil)
	assert.Empty(t, applied)
	assert.NotNil(t, applied)
	assert.Nil(t, unknown)
}
