package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/autodata/internal/adapters/driving/registry"
	"github.com/custodia-labs/autodata/internal/core/domain"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <vin>",
	Short: "Decode a VIN",
	Long: `Decode a 17-character VIN into its vehicle specification.

Attributes the decoder reports as empty or "Not Applicable" are omitted.
A VIN the decoder cannot fully resolve is still printed, with the
decoder's error text.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

var recallsCmd = &cobra.Command{
	Use:   "recalls [vin]",
	Short: "Search safety recalls",
	Long: `Search safety recalls either by VIN or by make, model and year.

Examples:
  autodata recalls 1HGCM82633A004352
  autodata recalls --make honda --model accord --year 2003`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecalls,
}

var complaintsCmd = &cobra.Command{
	Use:   "complaints <make> <model> <year>",
	Short: "Search consumer complaints",
	Args:  cobra.ExactArgs(3),
	RunE:  runComplaints,
}

var modelsCmd = &cobra.Command{
	Use:   "models <make>",
	Short: "List models for a make",
	Args:  cobra.ExactArgs(1),
	RunE:  runModels,
}

var makesCmd = &cobra.Command{
	Use:   "makes",
	Short: "List every make",
	Args:  cobra.NoArgs,
	RunE:  runMakes,
}

var compareCmd = &cobra.Command{
	Use:   "compare <vin> <vin> [vin...]",
	Short: "Compare vehicles side by side",
	Long: fmt.Sprintf(`Decode %d to %d VINs concurrently and compare their key attributes
and open recall counts.`, domain.MinCompareVINs, domain.MaxCompareVINs),
	Args: cobra.RangeArgs(domain.MinCompareVINs, domain.MaxCompareVINs),
	RunE: runCompare,
}

func init() {
	recallsCmd.Flags().String("make", "", "vehicle make")
	recallsCmd.Flags().String("model", "", "vehicle model")
	recallsCmd.Flags().String("year", "", "model year")
	makesCmd.Flags().StringP("filter", "f", "", "only list makes containing this text")

	rootCmd.AddCommand(decodeCmd, recallsCmd, complaintsCmd, modelsCmd, makesCmd, compareCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	if lookupService == nil {
		return ErrServiceUnavailable
	}
	vin, err := parseVIN(args[0])
	if err != nil {
		return err
	}

	id, err := lookupService.Identify(cmd.Context(), vin)
	if err != nil {
		return fmt.Errorf("decode %s: %w", vin, err)
	}

	return render(cmd.OutOrStdout(), id, func(w io.Writer) {
		writeTitle(w, "VIN %s", id.VIN)
		if !id.IsValid {
			writeNote(w, "decoder error %s: %s", id.ErrorCode, id.ErrorMessage)
		}
		keys := make([]string, 0, len(id.Spec))
		for k := range id.Spec {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([][2]string, 0, len(keys))
		for _, k := range keys {
			fields = append(fields, [2]string{k, id.Spec[k]})
		}
		writeFields(w, fields)
	})
}

func runRecalls(cmd *cobra.Command, args []string) error {
	if lookupService == nil {
		return ErrServiceUnavailable
	}
	makeName, _ := cmd.Flags().GetString("make")
	model, _ := cmd.Flags().GetString("model")
	year, _ := cmd.Flags().GetString("year")
	byVehicle := makeName != "" || model != "" || year != ""

	var (
		report *domain.RecallReport
		err    error
	)
	switch {
	case len(args) == 1 && byVehicle:
		return errors.New("pass either a VIN or --make/--model/--year, not both")
	case len(args) == 1:
		vin, verr := parseVIN(args[0])
		if verr != nil {
			return verr
		}
		report, err = lookupService.RecallsByVIN(cmd.Context(), vin)
	case byVehicle:
		if err := checkVehicle(makeName, model, year); err != nil {
			return err
		}
		report, err = lookupService.RecallsByVehicle(cmd.Context(), makeName, model, year)
	default:
		return errors.New("a VIN or --make, --model and --year are required")
	}
	if err != nil {
		return fmt.Errorf("search recalls: %w", err)
	}

	return render(cmd.OutOrStdout(), report, func(w io.Writer) {
		if report.Vehicle != nil {
			writeTitle(w, "Recalls for %s %s %s", report.Vehicle.ModelYear, report.Vehicle.Make, report.Vehicle.Model)
		} else {
			writeTitle(w, "Recalls for %s", report.VIN)
		}
		if report.Message != "" {
			writeNote(w, "%s", report.Message)
		}
		writeNote(w, "%d recall(s) reported, %d listed", report.RecallCount, len(report.Recalls))
		if len(report.Recalls) == 0 {
			return
		}
		rows := make([][]string, 0, len(report.Recalls))
		for _, r := range report.Recalls {
			rows = append(rows, []string{r.CampaignNumber, truncateCell(r.Component, 30), truncateCell(r.Summary, cellWidth)})
		}
		writeTable(w, []string{"Campaign", "Component", "Summary"}, rows)
	})
}

func runComplaints(cmd *cobra.Command, args []string) error {
	if lookupService == nil {
		return ErrServiceUnavailable
	}
	makeName, model, year := args[0], args[1], args[2]
	if err := checkVehicle(makeName, model, year); err != nil {
		return err
	}

	report, err := lookupService.Complaints(cmd.Context(), makeName, model, year)
	if err != nil {
		return fmt.Errorf("search complaints: %w", err)
	}

	return render(cmd.OutOrStdout(), report, func(w io.Writer) {
		writeTitle(w, "Complaints for %s %s %s", report.Vehicle.ModelYear, report.Vehicle.Make, report.Vehicle.Model)
		writeNote(w, "%d complaint(s) reported, %d listed", report.ComplaintCount, len(report.Complaints))
		if len(report.Complaints) == 0 {
			return
		}
		rows := make([][]string, 0, len(report.Complaints))
		for _, c := range report.Complaints {
			rows = append(rows, []string{
				strconv.FormatInt(c.ID, 10),
				c.DateReceived,
				truncateCell(c.Component, 30),
				yesNo(c.Crash),
				yesNo(c.Fire),
				strconv.Itoa(c.Injuries),
				truncateCell(c.Summary, cellWidth),
			})
		}
		writeTable(w, []string{"ODI", "Filed", "Component", "Crash", "Fire", "Injuries", "Summary"}, rows)
	})
}

func runModels(cmd *cobra.Command, args []string) error {
	if lookupService == nil {
		return ErrServiceUnavailable
	}
	makeName := strings.TrimSpace(args[0])
	if makeName == "" {
		return fmt.Errorf("%w: make must not be empty", domain.ErrInvalidInput)
	}

	catalog, err := lookupService.ModelsForMake(cmd.Context(), makeName)
	if err != nil {
		return fmt.Errorf("list models: %w", err)
	}

	return render(cmd.OutOrStdout(), catalog, func(w io.Writer) {
		writeTitle(w, "Models for %s (%d)", catalog.Make, catalog.ModelCount)
		rows := make([][]string, 0, len(catalog.Models))
		for _, m := range catalog.Models {
			rows = append(rows, []string{m})
		}
		writeTable(w, []string{"Model"}, rows)
	})
}

func runMakes(cmd *cobra.Command, _ []string) error {
	if lookupService == nil {
		return ErrServiceUnavailable
	}
	filter, _ := cmd.Flags().GetString("filter")

	catalog, err := lookupService.Makes(cmd.Context())
	if err != nil {
		return fmt.Errorf("list makes: %w", err)
	}
	if filter != "" {
		catalog = filterMakes(catalog, filter)
	}

	return render(cmd.OutOrStdout(), catalog, func(w io.Writer) {
		writeTitle(w, "Makes (%d)", catalog.MakeCount)
		rows := make([][]string, 0, len(catalog.Makes))
		for _, m := range catalog.Makes {
			rows = append(rows, []string{strconv.Itoa(m.ID), m.Name})
		}
		writeTable(w, []string{"ID", "Name"}, rows)
	})
}

func runCompare(cmd *cobra.Command, args []string) error {
	if lookupService == nil {
		return ErrServiceUnavailable
	}
	vins := make([]string, 0, len(args))
	for _, a := range args {
		vin, err := parseVIN(a)
		if err != nil {
			return err
		}
		vins = append(vins, vin)
	}

	cmp, err := lookupService.Compare(cmd.Context(), vins)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), cmp, func(w io.Writer) {
		writeTitle(w, "Comparing %d vehicles", len(cmp.Vehicles))
		headers := []string{"Field"}
		for _, v := range cmp.Vehicles {
			headers = append(headers, v.VIN)
		}
		fields := []struct {
			name string
			get  func(domain.ComparisonRow) string
		}{
			{"Valid", func(r domain.ComparisonRow) string { return yesNo(r.IsValid) }},
			{"Make", func(r domain.ComparisonRow) string { return r.Make }},
			{"Model", func(r domain.ComparisonRow) string { return r.Model }},
			{"Year", func(r domain.ComparisonRow) string { return r.ModelYear }},
			{"Trim", func(r domain.ComparisonRow) string { return r.Trim }},
			{"Type", func(r domain.ComparisonRow) string { return r.VehicleType }},
			{"Body", func(r domain.ComparisonRow) string { return r.BodyClass }},
			{"Doors", func(r domain.ComparisonRow) string { return r.Doors }},
			{"Drive", func(r domain.ComparisonRow) string { return r.DriveType }},
			{"Fuel", func(r domain.ComparisonRow) string { return r.FuelType }},
			{"Cylinders", func(r domain.ComparisonRow) string { return r.EngineCylinders }},
			{"Displacement (L)", func(r domain.ComparisonRow) string { return r.DisplacementL }},
			{"Transmission", func(r domain.ComparisonRow) string { return r.TransmissionStyle }},
			{"Plant country", func(r domain.ComparisonRow) string { return r.PlantCountry }},
			{"Recalls", func(r domain.ComparisonRow) string { return strconv.Itoa(r.RecallCount) }},
		}
		rows := make([][]string, 0, len(fields))
		for _, f := range fields {
			row := []string{f.name}
			for _, v := range cmp.Vehicles {
				row = append(row, f.get(v))
			}
			rows = append(rows, row)
		}
		writeTable(w, headers, rows)
	})
}

// parseVIN normalises and checks a VIN argument.
func parseVIN(arg string) (string, error) {
	vin := strings.ToUpper(strings.TrimSpace(arg))
	if !registry.ValidVIN(vin) {
		return "", fmt.Errorf("%w: invalid VIN %q: want 17 characters excluding I, O and Q",
			domain.ErrInvalidInput, arg)
	}
	return vin, nil
}

func checkVehicle(makeName, model, year string) error {
	if strings.TrimSpace(makeName) == "" || strings.TrimSpace(model) == "" {
		return fmt.Errorf("%w: make and model are required", domain.ErrInvalidInput)
	}
	if !registry.ValidYear(year) {
		return fmt.Errorf("%w: invalid model year %q", domain.ErrInvalidInput, year)
	}
	return nil
}

func filterMakes(catalog *domain.MakeCatalog, filter string) *domain.MakeCatalog {
	needle := strings.ToLower(filter)
	out := *catalog
	out.Makes = make([]domain.Make, 0)
	for _, m := range catalog.Makes {
		if strings.Contains(strings.ToLower(m.Name), needle) {
			out.Makes = append(out.Makes, m)
		}
	}
	out.MakeCount = len(out.Makes)
	return &out
}
