package nhtsa

import (
	"context"
	"net/url"

	"github.com/custodia-labs/autodata/internal/core/domain"
)

// vpicQuery is appended to every vPIC request.
var vpicQuery = url.Values{"format": {"json"}}

// decodeResponse is the decodevin payload. Value is null for attributes the
// decoder has nothing for.
type decodeResponse struct {
	Count          int    `json:"Count"`
	Message        string `json:"Message"`
	SearchCriteria string `json:"SearchCriteria"`
	Results        []struct {
		Variable   string  `json:"Variable"`
		VariableID int     `json:"VariableId"`
		Value      *string `json:"Value"`
	} `json:"Results"`
}

type makesResponse struct {
	Count   int `json:"Count"`
	Results []struct {
		MakeID   int    `json:"Make_ID"`
		MakeName string `json:"Make_Name"`
	} `json:"Results"`
}

type modelsResponse struct {
	Count   int `json:"Count"`
	Results []struct {
		MakeID    int    `json:"Make_ID"`
		MakeName  string `json:"Make_Name"`
		ModelID   int    `json:"Model_ID"`
		ModelName string `json:"Model_Name"`
	} `json:"Results"`
}

// DecodeVIN calls GET {vpic}/decodevin/{vin}?format=json.
func (c *Client) DecodeVIN(ctx context.Context, vin string) ([]domain.RawAttribute, error) {
	var resp decodeResponse
	endpoint := c.cfg.VPICBaseURL + "/decodevin/" + url.PathEscape(vin)
	if err := c.fetchJSON(ctx, endpoint, vpicQuery, &resp); err != nil {
		return nil, err
	}

	attrs := make([]domain.RawAttribute, 0, len(resp.Results))
	for _, r := range resp.Results {
		attr := domain.RawAttribute{Variable: r.Variable}
		if r.Value != nil {
			attr.Value = *r.Value
		}
		attrs = append(attrs, attr)
	}
	return attrs, nil
}

// GetAllMakes calls GET {vpic}/GetAllMakes?format=json.
func (c *Client) GetAllMakes(ctx context.Context) ([]domain.RawMake, error) {
	var resp makesResponse
	if err := c.fetchJSON(ctx, c.cfg.VPICBaseURL+"/GetAllMakes", vpicQuery, &resp); err != nil {
		return nil, err
	}

	makes := make([]domain.RawMake, 0, len(resp.Results))
	for _, r := range resp.Results {
		makes = append(makes, domain.RawMake{ID: r.MakeID, Name: r.MakeName})
	}
	return makes, nil
}

// GetModelsForMake calls GET {vpic}/GetModelsForMake/{make}?format=json.
// The make is sent as given.
func (c *Client) GetModelsForMake(ctx context.Context, makeName string) ([]domain.RawModel, error) {
	var resp modelsResponse
	endpoint := c.cfg.VPICBaseURL + "/GetModelsForMake/" + url.PathEscape(makeName)
	if err := c.fetchJSON(ctx, endpoint, vpicQuery, &resp); err != nil {
		return nil, err
	}

	models := make([]domain.RawModel, 0, len(resp.Results))
	for _, r := range resp.Results {
		models = append(models, domain.RawModel{MakeName: r.MakeName, ModelName: r.ModelName})
	}
	return models, nil
}
