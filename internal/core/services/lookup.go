package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/autodata/internal/core/domain"
	"github.com/custodia-labs/autodata/internal/core/ports/driven"
	"github.com/custodia-labs/autodata/internal/core/ports/driving"
	"github.com/custodia-labs/autodata/internal/logger"
)

// Ensure LookupService implements the interface.
var _ driving.LookupService = (*LookupService)(nil)

// unresolvedMessage is returned when a decode lacks make, model or year.
const unresolvedMessage = "could not resolve make, model and model year"

// recallSearchFailedMessage marks a report degraded by a failed recall search.
const recallSearchFailedMessage = "recall search failed; recalls are unavailable"

// LookupService composes upstream calls and normalisation into the
// vehicle-data operations.
type LookupService struct {
	source     driven.VehicleDataSource
	normaliser driven.RecordNormaliser
	now        func() time.Time
}

// NewLookupService creates a new lookup service.
func NewLookupService(source driven.VehicleDataSource, normaliser driven.RecordNormaliser) *LookupService {
	return &LookupService{
		source:     source,
		normaliser: normaliser,
		now:        time.Now,
	}
}

// normaliseVIN upper-cases a VIN before use.
func normaliseVIN(vin string) string {
	return strings.ToUpper(strings.TrimSpace(vin))
}

// Identify decodes a VIN. Decode errors reported by the service are data.
func (s *LookupService) Identify(ctx context.Context, vin string) (*domain.Identification, error) {
	vin = normaliseVIN(vin)
	logger.Section("Identify")

	spec, err := s.decode(ctx, vin)
	if err != nil {
		return nil, err
	}

	id := &domain.Identification{
		VIN:       vin,
		ErrorCode: spec.Get(domain.AttrErrorCode),
		Vehicle:   spec.Identity(),
		Spec:      spec,
	}
	id.IsValid = id.ErrorCode == "0"
	if !id.IsValid {
		id.ErrorMessage = spec.Get(domain.AttrErrorText)
		logger.Debug("Identify: %s reported error code %q", vin, id.ErrorCode)
	}
	id.FetchedAt = s.now()
	return id, nil
}

// RecallsByVIN decodes the VIN, then searches recalls by the resolved
// make, model and year. An unresolved VIN or a failed recall search yields
// an empty report instead of an error.
func (s *LookupService) RecallsByVIN(ctx context.Context, vin string) (*domain.RecallReport, error) {
	vin = normaliseVIN(vin)
	logger.Section("Recalls by VIN")

	spec, err := s.decode(ctx, vin)
	if err != nil {
		return nil, err
	}

	report := &domain.RecallReport{VIN: vin, Recalls: []domain.RecallRecord{}}

	identity := spec.Identity()
	if identity == nil {
		logger.Debug("Recalls: %s did not resolve to a vehicle", vin)
		report.Message = unresolvedMessage
		report.FetchedAt = s.now()
		return report, nil
	}
	report.Vehicle = identity

	raw, err := s.searchRecalls(ctx, *identity)
	if err != nil {
		logger.Warn("Recalls: search for %s failed, returning empty list: %v", vin, err)
		report.Message = recallSearchFailedMessage
		report.FetchedAt = s.now()
		return report, nil
	}

	report.RecallCount = len(raw)
	report.Recalls = s.recallRecords(raw)
	report.FetchedAt = s.now()
	return report, nil
}

// RecallsByVehicle searches recalls by make, model and year. Upstream
// failures propagate.
func (s *LookupService) RecallsByVehicle(
	ctx context.Context, makeName, model, modelYear string,
) (*domain.RecallReport, error) {
	logger.Section("Recalls by vehicle")

	identity := domain.VehicleIdentity{Make: makeName, Model: model, ModelYear: modelYear}
	raw, err := s.searchRecalls(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("recalls for %s %s %s: %w", makeName, model, modelYear, err)
	}

	return &domain.RecallReport{
		Vehicle:     &identity,
		RecallCount: len(raw),
		Recalls:     s.recallRecords(raw),
		FetchedAt:   s.now(),
	}, nil
}

// ModelsForMake lists model names in upstream order.
func (s *LookupService) ModelsForMake(ctx context.Context, makeName string) (*domain.ModelCatalog, error) {
	logger.Section("Models for make")

	raw, err := s.source.GetModelsForMake(ctx, makeName)
	if err != nil {
		return nil, fmt.Errorf("models for %s: %w", makeName, err)
	}

	models := make([]string, 0, len(raw))
	for _, m := range raw {
		models = append(models, m.ModelName)
	}
	logger.Debug("Models: %d for %s", len(models), makeName)

	return &domain.ModelCatalog{
		Make:       makeName,
		ModelCount: len(models),
		Models:     models,
		FetchedAt:  s.now(),
	}, nil
}

// Makes lists the full make catalog.
func (s *LookupService) Makes(ctx context.Context) (*domain.MakeCatalog, error) {
	logger.Section("Makes")

	raw, err := s.source.GetAllMakes(ctx)
	if err != nil {
		return nil, fmt.Errorf("all makes: %w", err)
	}

	makes := make([]domain.Make, 0, len(raw))
	for _, m := range raw {
		makes = append(makes, domain.Make{ID: m.ID, Name: m.Name})
	}

	return &domain.MakeCatalog{
		MakeCount: len(makes),
		Makes:     makes,
		FetchedAt: s.now(),
	}, nil
}

// Complaints searches complaints. Each summary is cut to MaxSummaryChars
// and the list to MaxListedRecords.
func (s *LookupService) Complaints(
	ctx context.Context, makeName, model, modelYear string,
) (*domain.ComplaintReport, error) {
	logger.Section("Complaints")

	raw, err := s.source.ComplaintsByVehicle(ctx, makeName, model, modelYear)
	if err != nil {
		return nil, fmt.Errorf("complaints for %s %s %s: %w", makeName, model, modelYear, err)
	}

	complaints := make([]domain.ComplaintRecord, 0, len(raw))
	for _, r := range raw {
		rec := s.normaliser.Complaint(r)
		rec.Summary = domain.TruncateChars(rec.Summary, domain.MaxSummaryChars)
		complaints = append(complaints, rec)
	}
	if len(complaints) > domain.MaxListedRecords {
		complaints = complaints[:domain.MaxListedRecords]
	}
	logger.Debug("Complaints: %d upstream, %d listed", len(raw), len(complaints))

	return &domain.ComplaintReport{
		Vehicle:        domain.VehicleIdentity{Make: makeName, Model: model, ModelYear: modelYear},
		ComplaintCount: len(raw),
		Complaints:     complaints,
		FetchedAt:      s.now(),
	}, nil
}

// Compare runs one pipeline per VIN concurrently: decode, then count
// recalls by VIN. A failed count zeroes that row only; a failed decode
// fails the whole comparison. Rows keep input order.
func (s *LookupService) Compare(ctx context.Context, vins []string) (*domain.Comparison, error) {
	logger.Section("Compare")
	logger.Debug("Compare: fanning out over %d VINs", len(vins))

	rows := make([]domain.ComparisonRow, len(vins))
	errs := make([]error, len(vins))

	var wg sync.WaitGroup
	wg.Add(len(vins))
	for i, vin := range vins {
		go func(i int, vin string) {
			defer wg.Done()
			rows[i], errs[i] = s.compareOne(ctx, normaliseVIN(vin))
		}(i, vin)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("compare: %w", err)
		}
	}

	return &domain.Comparison{
		Vehicles:   rows,
		ComparedAt: s.now(),
	}, nil
}

// compareOne is a single Compare pipeline.
func (s *LookupService) compareOne(ctx context.Context, vin string) (domain.ComparisonRow, error) {
	spec, err := s.decode(ctx, vin)
	if err != nil {
		return domain.ComparisonRow{}, err
	}
	row := domain.NewComparisonRow(vin, spec)

	recalls, err := s.source.RecallsByVIN(ctx, vin)
	if err != nil {
		logger.Warn("Compare: recall count for %s failed, using 0: %v", vin, err)
		return row, nil
	}
	row.RecallCount = len(recalls)
	return row, nil
}

func (s *LookupService) decode(ctx context.Context, vin string) (domain.CleanedSpec, error) {
	raw, err := s.source.DecodeVIN(ctx, vin)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", vin, err)
	}
	spec := s.normaliser.CleanSpec(raw)
	logger.Debug("Decode: %s -> %d of %d attributes kept", vin, len(spec), len(raw))
	return spec, nil
}

// searchRecalls queries by identity with make and model lower-cased.
func (s *LookupService) searchRecalls(ctx context.Context, id domain.VehicleIdentity) ([]domain.RawRecall, error) {
	return s.source.RecallsByVehicle(ctx,
		strings.ToLower(id.Make), strings.ToLower(id.Model), id.ModelYear)
}

// recallRecords normalises raw and keeps the first MaxListedRecords.
func (s *LookupService) recallRecords(raw []domain.RawRecall) []domain.RecallRecord {
	records := make([]domain.RecallRecord, 0, len(raw))
	for _, r := range raw {
		records = append(records, s.normaliser.Recall(r))
	}
	if len(records) > domain.MaxListedRecords {
		records = records[:domain.MaxListedRecords]
	}
	return records
}
