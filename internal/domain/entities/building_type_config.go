package entities

import "time"

// BuildingTypeConfig is the priced template for one category of structure (e.g. warehouse).
//
// Prices are per square meter. Unpublished configs stay editable by administrators
// but are never offered by the public calculator.
type BuildingTypeConfig struct {
	ID               string    `json:"id"`
	Slug             string    `json:"slug"`
	BuildingType     string    `json:"building_type"`
	BasePriceMin     float64   `json:"base_price_min"`
	BasePriceMax     float64   `json:"base_price_max"`
	DurationMinWeeks int       `json:"duration_min_weeks"`
	DurationMaxWeeks int       `json:"duration_max_weeks"`
	Notes            *string   `json:"notes,omitempty"`
	IsPublished      bool      `json:"is_published"`
	SortOrder        int       `json:"sort_order"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CalculatorOption is an optional add-on owned by exactly one config.
// Names are unique within the owning config only.
type CalculatorOption struct {
	ID          string    `json:"id"`
	ConfigID    string    `json:"config_id"`
	Name        string    `json:"name"`
	AddPriceMin float64   `json:"add_price_min"`
	AddPriceMax float64   `json:"add_price_max"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PricingCatalog is one config together with its options, ordered by sort_order.
type PricingCatalog struct {
	Config  BuildingTypeConfig `json:"config"`
	Options []CalculatorOption `json:"options"`
}
