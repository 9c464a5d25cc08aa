package domain

import "time"

// RawRecall is a recall row as returned by the recalls service.
type RawRecall struct {
	CampaignNumber string
	Component      string
	Summary        string
	Consequence    string
	Remedy         string
	Manufacturer   string
}

// RecallRecord is the normalised subset of a recall.
type RecallRecord struct {
	CampaignNumber string `json:"campaignNumber"`
	Component      string `json:"component"`
	Summary        string `json:"summary"`
	Consequence    string `json:"consequence"`
	Remedy         string `json:"remedy"`
	Manufacturer   string `json:"manufacturer"`
}

// RecallReport is the result of a recall lookup.
// RecallCount is the number of recalls the upstream service reported;
// Recalls holds at most MaxListedRecords of them.
type RecallReport struct {
	VIN         string           `json:"vin,omitempty"`
	Vehicle     *VehicleIdentity `json:"vehicle,omitempty"`
	RecallCount int              `json:"recallCount"`
	Recalls     []RecallRecord   `json:"recalls"`
	Message     string           `json:"message,omitempty"`
	FetchedAt   time.Time        `json:"fetchedAt"`
}
