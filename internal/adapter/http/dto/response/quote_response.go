package response

import (
	"construction_quote/internal/domain/entities"
	"fmt"
)

const QuoteDisclaimer = "* Расчёт является предварительным и не является публичной офертой"

type QuoteResponse struct {
	Slug              string   `json:"slug"`
	BuildingType      string   `json:"building_type"`
	Area              int      `json:"area"`
	Region            string   `json:"region"`
	RegionCoefficient float64  `json:"region_coefficient"`
	AppliedOptions    []string `json:"applied_options"`
	PriceMin          int64    `json:"price_min"`
	PriceMax          int64    `json:"price_max"`
	DurationMinWeeks  int      `json:"duration_min_weeks"`
	DurationMaxWeeks  int      `json:"duration_max_weeks"`
	PriceMinMillions  string   `json:"price_min_millions"`
	PriceMaxMillions  string   `json:"price_max_millions"`
	PriceRange        string   `json:"price_range"`
	DurationRange     string   `json:"duration_range"`
	Disclaimer        string   `json:"disclaimer"`
}

func FromQuotation(q entities.Quotation) QuoteResponse {
	minM := FormatMillions(q.Result.PriceMin)
	maxM := FormatMillions(q.Result.PriceMax)
	applied := q.AppliedOptions
	if applied == nil {
		applied = []string{}
	}
	return QuoteResponse{
		Slug:              q.Slug,
		BuildingType:      q.BuildingType,
		Area:              q.Area,
		Region:            q.Region,
		RegionCoefficient: q.RegionCoefficient,
		AppliedOptions:    applied,
		PriceMin:          q.Result.PriceMin,
		PriceMax:          q.Result.PriceMax,
		DurationMinWeeks:  q.Result.DurationMin,
		DurationMaxWeeks:  q.Result.DurationMax,
		PriceMinMillions:  minM,
		PriceMaxMillions:  maxM,
		PriceRange:        fmt.Sprintf("%s–%s млн ₽", minM, maxM),
		DurationRange:     fmt.Sprintf("%d–%d нед.", q.Result.DurationMin, q.Result.DurationMax),
		Disclaimer:        QuoteDisclaimer,
	}
}

// FormatMillions renders a non-negative total in millions with one decimal,
// rounding half up on the integer value so no float formatting is involved.
// Ties always go up, so 1_150_000 renders "1.2" where a binary float
// toFixed(1) of 1.15 would give "1.1".
func FormatMillions(total int64) string {
	tenths := total / 100_000
	if total%100_000 >= 50_000 {
		tenths++
	}
	return fmt.Sprintf("%d.%d", tenths/10, tenths%10)
}
