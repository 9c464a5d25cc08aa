package nhtsa

import (
	"context"
	"net/url"

	"github.com/custodia-labs/autodata/internal/core/domain"
)

type complaintsResponse struct {
	Count   int    `json:"count"`
	Message string `json:"message"`
	Results []struct {
		ODINumber          int64  `json:"odiNumber"`
		Manufacturer       string `json:"manufacturer"`
		Crash              bool   `json:"crash"`
		Fire               bool   `json:"fire"`
		NumberOfInjuries   int    `json:"numberOfInjuries"`
		NumberOfDeaths     int    `json:"numberOfDeaths"`
		DateOfIncident     string `json:"dateOfIncident"`
		DateComplaintFiled string `json:"dateComplaintFiled"`
		Components         string `json:"components"`
		Summary            string `json:"summary"`
	} `json:"results"`
}

// ComplaintsByVehicle calls GET {complaints}?make=&model=&modelYear=.
func (c *Client) ComplaintsByVehicle(ctx context.Context, makeName, model, modelYear string) ([]domain.RawComplaint, error) {
	q := url.Values{}
	q.Set("make", makeName)
	q.Set("model", model)
	q.Set("modelYear", modelYear)

	var resp complaintsResponse
	if err := c.fetchJSON(ctx, c.cfg.ComplaintsBaseURL, q, &resp); err != nil {
		return nil, err
	}

	complaints := make([]domain.RawComplaint, 0, len(resp.Results))
	for _, r := range resp.Results {
		complaints = append(complaints, domain.RawComplaint{
			ODINumber:          r.ODINumber,
			Components:         r.Components,
			Summary:            r.Summary,
			Crash:              r.Crash,
			Fire:               r.Fire,
			NumberOfInjuries:   r.NumberOfInjuries,
			DateComplaintFiled: r.DateComplaintFiled,
		})
	}
	return complaints, nil
}
