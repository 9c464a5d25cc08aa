package driven

import "github.com/custodia-labs/autodata/internal/core/domain"

// RecordNormaliser converts upstream rows into clean domain records.
// Implementations are pure: no I/O, no shared state.
type RecordNormaliser interface {
	// CleanSpec drops attributes whose value is empty or "Not Applicable".
	// Later duplicates of the same Variable overwrite earlier ones.
	CleanSpec(raw []domain.RawAttribute) domain.CleanedSpec

	// Recall maps an upstream recall row to a RecallRecord.
	Recall(raw domain.RawRecall) domain.RecallRecord

	// Complaint maps an upstream complaint row to a ComplaintRecord.
	// The summary is returned untruncated; length caps are a lookup policy.
	Complaint(raw domain.RawComplaint) domain.ComplaintRecord
}
