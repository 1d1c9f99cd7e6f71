package planner

import "time"

// TimeSlotResponse is one selectable time
type TimeSlotResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TimeSlotsResponse is the whole slot catalog
type TimeSlotsResponse struct {
	Interval int                `json:"interval"`
	Slots    []TimeSlotResponse `json:"slots"`
}

// ParticipantResponse is a roster entry
type ParticipantResponse struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department,omitempty"`
	FacultyID  string `json:"facultyId,omitempty"`
	Initials   string `json:"initials"`
}

// ActionItemResponse is one ledger row
type ActionItemResponse struct {
	Item        string `json:"item"`
	Responsible string `json:"responsible"`
	Deadline    string `json:"deadline"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// MeetingResponse is a stored meeting
type MeetingResponse struct {
	ID                       string                `json:"id"`
	MeetingID                string                `json:"meetingId"`
	Title                    string                `json:"title"`
	Description              string                `json:"description"`
	Organizer                string                `json:"organizer"`
	Date                     string                `json:"date"`
	StartTime                string                `json:"startTime"`
	EndTime                  string                `json:"endTime"`
	Time                     string                `json:"time"`
	TimeLabel                string                `json:"timeLabel,omitempty"`
	Location                 string                `json:"location"`
	CreatedAt                time.Time             `json:"createdAt"`
	AvailableParticipants    []ParticipantResponse `json:"availableParticipants"`
	NotAvailableParticipants []ParticipantResponse `json:"notAvailableParticipants"`
	ActionItems              []ActionItemResponse  `json:"actionItems"`
}

// MeetingListResponse is the local meeting list
type MeetingListResponse struct {
	Meetings    []MeetingResponse `json:"meetings"`
	Total       int               `json:"total"`
	RefreshedAt *time.Time        `json:"refreshedAt,omitempty"`
}

// RefreshResponse reports the store after a refresh
type RefreshResponse struct {
	Participants int       `json:"participants"`
	Meetings     int       `json:"meetings"`
	RefreshedAt  time.Time `json:"refreshedAt"`
}

// BannerResponse is a transient notice
type BannerResponse struct {
	Kind     string    `json:"kind"`
	Message  string    `json:"message"`
	PostedAt time.Time `json:"postedAt"`
}

// DraftResponse is the editable part of a meeting
type DraftResponse struct {
	ID          string `json:"id,omitempty"`
	MeetingID   string `json:"meetingId,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Organizer   string `json:"organizer"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

// ScheduleSessionResponse is the state of a scheduling session
type ScheduleSessionResponse struct {
	ID         string                `json:"id"`
	Draft      DraftResponse         `json:"draft"`
	Selected   []ParticipantResponse `json:"selected"`
	PickerOpen bool                  `json:"pickerOpen"`
	ReviewOpen bool                  `json:"reviewOpen"`
	Banner     *BannerResponse       `json:"banner,omitempty"`
}

// EditSessionResponse is the state of a meeting edit session
type EditSessionResponse struct {
	ID         string          `json:"id"`
	MeetingID  string          `json:"meetingId"`
	State      string          `json:"state"`
	Draft      DraftResponse   `json:"draft"`
	Violations []string        `json:"violations"`
	Banner     *BannerResponse `json:"banner,omitempty"`
}

// AttendeeSessionResponse is the state of an attendee session
type AttendeeSessionResponse struct {
	ID        string                `json:"id"`
	MeetingID string                `json:"meetingId"`
	Attendees []ParticipantResponse `json:"attendees"`
	Dirty     bool                  `json:"dirty"`
	Banner    *BannerResponse       `json:"banner,omitempty"`
}

// LedgerRowResponse is an action item with its position
type LedgerRowResponse struct {
	Index int `json:"index"`
	ActionItemResponse
	ResponsibleIsAttendee bool `json:"responsibleIsAttendee"`
}

// ActionSessionResponse is the state of an action item session
type ActionSessionResponse struct {
	ID        string              `json:"id"`
	MeetingID string              `json:"meetingId"`
	Rows      []LedgerRowResponse `json:"rows"`
	Dirty     bool                `json:"dirty"`
	Banner    *BannerResponse     `json:"banner,omitempty"`
}

// CommitResponse is the outcome of a successful commit
type CommitResponse struct {
	Message string           `json:"message"`
	Meeting *MeetingResponse `json:"meeting,omitempty"`
}
