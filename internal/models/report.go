package models

import "time"

const (
	ReportStatusOpen       = "open"
	ReportStatusInProgress = "in_progress"
	ReportStatusResolved   = "resolved"
)

const (
	ReportTypeBehavior = "behavior"
	ReportTypeAcademic = "academic"
	ReportTypeFacility = "facility"
	ReportTypeOther    = "other"
)

type Report struct {
	ID          string    `json:"id"`
	Message     string    `json:"message"`
	ReportType  string    `json:"report_type"`
	FollowUp    string    `json:"follow_up"`
	Status      string    `json:"status"`
	PICUsername string    `json:"pic_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReportUpdate carries a full-record overwrite for the admin update route.
type ReportUpdate struct {
	Message     string
	ReportType  string
	FollowUp    string
	Status      string
	PICUsername string
}
