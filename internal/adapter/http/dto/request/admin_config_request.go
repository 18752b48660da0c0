package request

// ConfigRequest is a full building type config as edited in the back office.
// Omitted durations and is_published fall back to the create defaults.
type ConfigRequest struct {
	Slug             string  `json:"slug" binding:"required"`
	BuildingType     string  `json:"building_type" binding:"required"`
	BasePriceMin     float64 `json:"base_price_min" binding:"gte=0"`
	BasePriceMax     float64 `json:"base_price_max" binding:"gtefield=BasePriceMin"`
	DurationMinWeeks *int    `json:"duration_min_weeks" binding:"omitempty,gte=0"`
	DurationMaxWeeks *int    `json:"duration_max_weeks" binding:"omitempty,gte=0"`
	Notes            *string `json:"notes"`
	IsPublished      *bool   `json:"is_published"`
	SortOrder        int     `json:"sort_order"`
}

type PublishRequest struct {
	IsPublished *bool `json:"is_published" binding:"required"`
}

type OptionRequest struct {
	Name        string  `json:"name" binding:"required"`
	AddPriceMin float64 `json:"add_price_min" binding:"gte=0"`
	AddPriceMax float64 `json:"add_price_max" binding:"gtefield=AddPriceMin"`
	SortOrder   int     `json:"sort_order"`
}

type RegionRequest struct {
	Region      string   `json:"region" binding:"required"`
	Coefficient *float64 `json:"coefficient" binding:"omitempty,gt=0"`
	SortOrder   int      `json:"sort_order"`
}
