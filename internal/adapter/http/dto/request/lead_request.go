package request

// LeadRequest is accepted from every public surface; Source tells which one.
type LeadRequest struct {
	Name              string  `json:"name" binding:"required"`
	Phone             string  `json:"phone" binding:"required"`
	Email             *string `json:"email"`
	BuildingType      *string `json:"building_type"`
	AreaM2            *int    `json:"area_m2" binding:"omitempty,gt=0"`
	Region            *string `json:"region"`
	Message           *string `json:"message" binding:"omitempty,max=2000"`
	MeetingPreference *string `json:"meeting_preference"`
	Source            string  `json:"source" binding:"required,oneof=calculator homepage contacts"`
}

type LeadStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new in_progress closed"`
}
