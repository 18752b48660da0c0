package entities

import "time"

// LeadStatus represents the lifecycle of a lead in the back office.
type LeadStatus string

const (
	LeadStatusNew        LeadStatus = "new"
	LeadStatusInProgress LeadStatus = "in_progress"
	LeadStatusClosed     LeadStatus = "closed"
)

func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusInProgress, LeadStatusClosed:
		return true
	}
	return false
}

// LeadSource tags the surface that produced a lead.
type LeadSource string

const (
	LeadSourceCalculator LeadSource = "calculator"
	LeadSourceHomepage   LeadSource = "homepage"
	LeadSourceContacts   LeadSource = "contacts"
)

func (s LeadSource) IsValid() bool {
	switch s {
	case LeadSourceCalculator, LeadSourceHomepage, LeadSourceContacts:
		return true
	}
	return false
}

// Lead is a contact request stored in the leads collection.
//
// The computed price is intentionally not part of the record: only the inputs
// (building type, area, region) that produced the quotation are kept.
type Lead struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Phone             string     `json:"phone"`
	Email             *string    `json:"email,omitempty"`
	BuildingType      *string    `json:"building_type,omitempty"`
	AreaM2            *int       `json:"area_m2,omitempty"`
	Region            *string    `json:"region,omitempty"`
	Message           *string    `json:"message,omitempty"`
	MeetingPreference *string    `json:"meeting_preference,omitempty"`
	Source            LeadSource `json:"source"`
	Status            LeadStatus `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
}
