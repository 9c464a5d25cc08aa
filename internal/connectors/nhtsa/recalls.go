package nhtsa

import (
	"context"
	"net/url"

	"github.com/custodia-labs/autodata/internal/core/domain"
)

// recallsResponse is the recalls search payload. The service capitalises
// Count and Message but not results.
type recallsResponse struct {
	Count   int    `json:"Count"`
	Message string `json:"Message"`
	Results []struct {
		Manufacturer   string `json:"Manufacturer"`
		CampaignNumber string `json:"NHTSACampaignNumber"`
		Component      string `json:"Component"`
		Summary        string `json:"Summary"`
		Consequence    string `json:"Consequence"`
		Remedy         string `json:"Remedy"`
	} `json:"results"`
}

// RecallsByVehicle calls GET {recalls}?make=&model=&modelYear=.
func (c *Client) RecallsByVehicle(ctx context.Context, makeName, model, modelYear string) ([]domain.RawRecall, error) {
	q := url.Values{}
	q.Set("make", makeName)
	q.Set("model", model)
	q.Set("modelYear", modelYear)
	return c.searchRecalls(ctx, q)
}

// RecallsByVIN calls GET {recalls}?vin=.
func (c *Client) RecallsByVIN(ctx context.Context, vin string) ([]domain.RawRecall, error) {
	return c.searchRecalls(ctx, url.Values{"vin": {vin}})
}

func (c *Client) searchRecalls(ctx context.Context, q url.Values) ([]domain.RawRecall, error) {
	var resp recallsResponse
	if err := c.fetchJSON(ctx, c.cfg.RecallsBaseURL, q, &resp); err != nil {
		return nil, err
	}

	recalls := make([]domain.RawRecall, 0, len(resp.Results))
	for _, r := range resp.Results {
		recalls = append(recalls, domain.RawRecall{
			CampaignNumber: r.CampaignNumber,
			Component:      r.Component,
			Summary:        r.Summary,
			Consequence:    r.Consequence,
			Remedy:         r.Remedy,
			Manufacturer:   r.Manufacturer,
		})
	}
	return recalls, nil
}
