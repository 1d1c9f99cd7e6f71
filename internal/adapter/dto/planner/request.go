package planner

// TimeSlotsRequest represents query parameters for the slot catalog
type TimeSlotsRequest struct {
	Interval int `query:"interval" validate:"omitempty,min=1,max=1440"`
}

// ListMeetingsRequest represents query parameters for listing meetings
type ListMeetingsRequest struct {
	Today bool `query:"today"`
}

// CandidatesRequest represents the search box of a picker
type CandidatesRequest struct {
	Search string `query:"search"`
}

// UpdateDraftRequest sets one field of a meeting draft
type UpdateDraftRequest struct {
	Field string `json:"field" validate:"required,oneof=title description organizer location date startTime endTime"`
	Value string `json:"value"`
}

// EmailRequest names one participant
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PickerRequest opens or closes the participant picker and review list
type PickerRequest struct {
	PickerOpen *bool `json:"pickerOpen,omitempty"`
	ReviewOpen *bool `json:"reviewOpen,omitempty"`
}

// UpdateItemRequest sets one column of an action item
type UpdateItemRequest struct {
	Field string `json:"field" validate:"required,oneof=item responsible deadline status description"`
	Value string `json:"value"`
}
