package entities

// QuotationResult is the computed range for one set of inputs. Prices are totals
// for the whole area, durations are weeks.
type QuotationResult struct {
	PriceMin    int64 `json:"price_min"`
	PriceMax    int64 `json:"price_max"`
	DurationMin int   `json:"duration_min"`
	DurationMax int   `json:"duration_max"`
}

// Quotation pairs a result with the inputs that produced it. It is never persisted.
type Quotation struct {
	Slug              string          `json:"slug"`
	BuildingType      string          `json:"building_type"`
	Area              int             `json:"area"`
	Region            string          `json:"region"`
	RegionCoefficient float64         `json:"region_coefficient"`
	AppliedOptions    []string        `json:"applied_options"`
	Result            QuotationResult `json:"result"`
}
