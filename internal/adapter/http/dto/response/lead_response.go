package response

import (
	"construction_quote/internal/domain/entities"
	"time"
)

type LeadResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Phone             string    `json:"phone"`
	Email             *string   `json:"email"`
	BuildingType      *string   `json:"building_type"`
	AreaM2            *int      `json:"area_m2"`
	Region            *string   `json:"region"`
	Message           *string   `json:"message"`
	MeetingPreference *string   `json:"meeting_preference"`
	Source            string    `json:"source"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

// LeadAcceptedResponse is returned to the public form; contact data is not echoed.
type LeadAcceptedResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		ID:                l.ID,
		Name:              l.Name,
		Phone:             l.Phone,
		Email:             l.Email,
		BuildingType:      l.BuildingType,
		AreaM2:            l.AreaM2,
		Region:            l.Region,
		Message:           l.Message,
		MeetingPreference: l.MeetingPreference,
		Source:            string(l.Source),
		Status:            string(l.Status),
		CreatedAt:         l.CreatedAt,
	}
}

func FromLeads(ls []entities.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, FromLead(l))
	}
	return out
}

func LeadAccepted(l entities.Lead) LeadAcceptedResponse {
	return LeadAcceptedResponse{ID: l.ID, Status: string(l.Status)}
}
