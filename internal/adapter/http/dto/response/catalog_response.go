package response

import (
	"construction_quote/internal/domain/entities"
	"time"
)

type BuildingTypeResponse struct {
	ID               string    `json:"id"`
	Slug             string    `json:"slug"`
	BuildingType     string    `json:"building_type"`
	BasePriceMin     float64   `json:"base_price_min"`
	BasePriceMax     float64   `json:"base_price_max"`
	DurationMinWeeks int       `json:"duration_min_weeks"`
	DurationMaxWeeks int       `json:"duration_max_weeks"`
	Notes            *string   `json:"notes"`
	IsPublished      bool      `json:"is_published"`
	SortOrder        int       `json:"sort_order"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type OptionResponse struct {
	ID          string    `json:"id"`
	ConfigID    string    `json:"config_id"`
	Name        string    `json:"name"`
	AddPriceMin float64   `json:"add_price_min"`
	AddPriceMax float64   `json:"add_price_max"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RegionResponse struct {
	ID          string    `json:"id"`
	Region      string    `json:"region"`
	Coefficient float64   `json:"coefficient"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CatalogResponse is what the calculator page needs to render one building type.
type CatalogResponse struct {
	BuildingTypeResponse
	Options []OptionResponse `json:"options"`
}

func FromBuildingType(c entities.BuildingTypeConfig) BuildingTypeResponse {
	return BuildingTypeResponse{
		ID:               c.ID,
		Slug:             c.Slug,
		BuildingType:     c.BuildingType,
		BasePriceMin:     c.BasePriceMin,
		BasePriceMax:     c.BasePriceMax,
		DurationMinWeeks: c.DurationMinWeeks,
		DurationMaxWeeks: c.DurationMaxWeeks,
		Notes:            c.Notes,
		IsPublished:      c.IsPublished,
		SortOrder:        c.SortOrder,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func FromBuildingTypes(cs []entities.BuildingTypeConfig) []BuildingTypeResponse {
	out := make([]BuildingTypeResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromBuildingType(c))
	}
	return out
}

func FromOption(o entities.CalculatorOption) OptionResponse {
	return OptionResponse{
		ID:          o.ID,
		ConfigID:    o.ConfigID,
		Name:        o.Name,
		AddPriceMin: o.AddPriceMin,
		AddPriceMax: o.AddPriceMax,
		SortOrder:   o.SortOrder,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func FromOptions(os []entities.CalculatorOption) []OptionResponse {
	out := make([]OptionResponse, 0, len(os))
	for _, o := range os {
		out = append(out, FromOption(o))
	}
	return out
}

func FromRegion(r entities.RegionModifier) RegionResponse {
	return RegionResponse{
		ID:          r.ID,
		Region:      r.Region,
		Coefficient: r.Coefficient,
		SortOrder:   r.SortOrder,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func FromRegions(rs []entities.RegionModifier) []RegionResponse {
	out := make([]RegionResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRegion(r))
	}
	return out
}

func FromCatalog(c entities.PricingCatalog) CatalogResponse {
	return CatalogResponse{
		BuildingTypeResponse: FromBuildingType(c.Config),
		Options:              FromOptions(c.Options),
	}
}
