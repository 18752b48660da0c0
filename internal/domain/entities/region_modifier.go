package entities

import "time"

// RegionModifier is a multiplicative adjustment applied to the per-area price.
// A coefficient of 1.0 means no adjustment.
type RegionModifier struct {
	ID          string    `json:"id"`
	Region      string    `json:"region"`
	Coefficient float64   `json:"coefficient"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
