// Package nhtsa normalises NHTSA decode, recall and complaint rows.
package nhtsa

import (
	"github.com/custodia-labs/autodata/internal/core/domain"
	"github.com/custodia-labs/autodata/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.RecordNormaliser = (*Normaliser)(nil)

// Normaliser implements driven.RecordNormaliser for NHTSA payloads.
type Normaliser struct{}

// New creates a new NHTSA normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// CleanSpec keeps every attribute except those whose value is "" or
// "Not Applicable". A later duplicate Variable overwrites an earlier one.
func (n *Normaliser) CleanSpec(raw []domain.RawAttribute) domain.CleanedSpec {
	spec := make(domain.CleanedSpec, len(raw))
	for _, attr := range raw {
		if suppressed(attr.Value) {
			continue
		}
		spec[attr.Variable] = attr.Value
	}
	return spec
}

// suppressed reports whether v is one of the two placeholder values.
func suppressed(v string) bool {
	return v == "" || v == domain.NotApplicable
}

// Recall maps a recall row to a RecallRecord.
func (n *Normaliser) Recall(raw domain.RawRecall) domain.RecallRecord {
	return domain.RecallRecord{
		CampaignNumber: raw.CampaignNumber,
		Component:      raw.Component,
		Summary:        raw.Summary,
		Consequence:    raw.Consequence,
		Remedy:         raw.Remedy,
		Manufacturer:   raw.Manufacturer,
	}
}

// Complaint maps a complaint row to a ComplaintRecord.
func (n *Normaliser) Complaint(raw domain.RawComplaint) domain.ComplaintRecord {
	return domain.ComplaintRecord{
		ID:           raw.ODINumber,
		Component:    raw.Components,
		Summary:      raw.Summary,
		Crash:        raw.Crash,
		Fire:         raw.Fire,
		Injuries:     raw.NumberOfInjuries,
		DateReceived: raw.DateComplaintFiled,
	}
}
