package domain

import "time"

// RawComplaint is a consumer complaint row as returned by the complaints service.
type RawComplaint struct {
	ODINumber          int64
	Components         string
	Summary            string
	Crash              bool
	Fire               bool
	NumberOfInjuries   int
	DateComplaintFiled string
}

// ComplaintRecord is the normalised subset of a complaint.
type ComplaintRecord struct {
	ID           int64  `json:"id"`
	Component    string `json:"component"`
	Summary      string `json:"summary"`
	Crash        bool   `json:"crash"`
	Fire         bool   `json:"fire"`
	Injuries     int    `json:"injuries"`
	DateReceived string `json:"dateReceived"`
}

// ComplaintReport is the result of a complaint search.
type ComplaintReport struct {
	Vehicle        VehicleIdentity   `json:"vehicle"`
	ComplaintCount int               `json:"complaintCount"`
	Complaints     []ComplaintRecord `json:"complaints"`
	FetchedAt      time.Time         `json:"fetchedAt"`
}
