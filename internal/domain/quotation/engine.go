// Package quotation computes price and duration ranges for a building type.
//
// Compute is a pure function over its arguments: it performs no I/O, keeps no
// state and is safe for concurrent use. Input validation (positive area and
// coefficient, known region) belongs to the caller.
package quotation

import (
	"math"

	"construction_quote/internal/domain/entities"
)

// Area thresholds (square meters) above which construction takes longer.
// Tiers are cumulative: an area above LargeAreaThreshold receives both extensions.
const (
	MediumAreaThreshold = 2000
	LargeAreaThreshold  = 5000

	// MaxArea is the largest area callers accept. Totals for any valid catalog
	// stay far below the int64 range at this size.
	MaxArea = 1_000_000

	tierExtraWeeksMin = 2
	tierExtraWeeksMax = 4
)

// Compute returns the quotation for catalog at the given area.
//
// Selected option names are treated as a set; names that match no option of the
// catalog are ignored. Rounding happens once, after every multiplication.
func Compute(catalog entities.PricingCatalog, area float64, selectedOptionNames []string, regionCoefficient float64) entities.QuotationResult {
	selected := make(map[string]struct{}, len(selectedOptionNames))
	for _, name := range selectedOptionNames {
		selected[name] = struct{}{}
	}

	priceMinPerUnit := catalog.Config.BasePriceMin
	priceMaxPerUnit := catalog.Config.BasePriceMax
	for _, opt := range catalog.Options {
		if _, ok := selected[opt.Name]; ok {
			priceMinPerUnit += opt.AddPriceMin
			priceMaxPerUnit += opt.AddPriceMax
		}
	}

	priceMinPerUnit *= regionCoefficient
	priceMaxPerUnit *= regionCoefficient

	durationMin := catalog.Config.DurationMinWeeks
	durationMax := catalog.Config.DurationMaxWeeks
	if area > MediumAreaThreshold {
		durationMin += tierExtraWeeksMin
		durationMax += tierExtraWeeksMax
	}
	if area > LargeAreaThreshold {
		durationMin += tierExtraWeeksMin
		durationMax += tierExtraWeeksMax
	}

	return entities.QuotationResult{
		PriceMin:    roundTotal(priceMinPerUnit * area),
		PriceMax:    roundTotal(priceMaxPerUnit * area),
		DurationMin: durationMin,
		DurationMax: durationMax,
	}
}

// AppliedOptions returns the catalog option names present in selectedOptionNames,
// in catalog order, and the selected names that matched nothing.
func AppliedOptions(catalog entities.PricingCatalog, selectedOptionNames []string) (applied []string, unknown []string) {
	owned := make(map[string]struct{}, len(catalog.Options))
	for _, opt := range catalog.Options {
		owned[opt.Name] = struct{}{}
	}

	selected := make(map[string]struct{}, len(selectedOptionNames))
	for _, name := range selectedOptionNames {
		if _, dup := selected[name]; dup {
			continue
		}
		selected[name] = struct{}{}
		if _, ok := owned[name]; !ok {
			unknown = append(unknown, name)
		}
	}

	applied = []string{}
	for _, opt := range catalog.Options {
		if _, ok := selected[opt.Name]; ok {
			applied = append(applied, opt.Name)
		}
	}
	return applied, unknown
}

// roundTotal rounds half away from zero, which matches Math.round for the
// non-negative totals produced from valid catalogs. Values outside the int64
// range saturate instead of wrapping.
func roundTotal(v float64) int64 {
	r := math.Round(v)
	switch {
	case r >= math.MaxInt64:
		return math.MaxInt64
	case r <= math.MinInt64:
		return math.MinInt64
	}
	return int64(r)
}
