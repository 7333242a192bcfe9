package http

import (
	"catalog-api/internal/country"
	"catalog-api/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Code   string `json:"code"   binding:"required,len=2"`
	Name   string `json:"name"   binding:"required,max=255"`
	Region string `json:"region"`
}

func (r createReq) toInput() (country.CreateInput, error) {
	region, err := parseRegion(r.Region)
	if err != nil {
		return country.CreateInput{}, err
	}
	return country.CreateInput{Code: r.Code, Name: r.Name, Region: region}, nil
}

type updateReq struct {
	Code   *string `json:"code"   binding:"omitempty,len=2"`
	Name   *string `json:"name"   binding:"omitempty,max=255"`
	Region *string `json:"region"`
}

func (r updateReq) toInput() (country.UpdateInput, error) {
	in := country.UpdateInput{Code: r.Code, Name: r.Name}
	if r.Region != nil {
		region, err := parseRegion(*r.Region)
		if err != nil {
			return country.UpdateInput{}, err
		}
		in.Region = &region
	}
	return in, nil
}

func parseRegion(s string) (country.Region, error) {
	if s == "" {
		return country.RegionUnknown, nil
	}
	region, ok := country.ParseRegion(s)
	if !ok {
		return 0, errInvalidRegion
	}
	return region, nil
}

// --- Response DTOs ---

type countryResp struct {
	ID        string            `json:"id"`
	Code      string            `json:"code"`
	Name      string            `json:"name"`
	Region    string            `json:"region"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newCountryResp(c country.Country) countryResp {
	return countryResp{
		ID:        c.ID.String(),
		Code:      c.Code,
		Name:      c.Name,
		Region:    c.Region.String(),
		CreatedAt: response.DateTime(c.CreatedAt),
	}
}

func (h *handler) newListResp(out country.ListOutput) response.PageResp[countryResp] {
	items := make([]countryResp, len(out.Page.Items))
	for i, c := range out.Page.Items {
		items[i] = newCountryResp(c)
	}
	return response.NewPageResp(items, out.Page.Offset, out.Page.Limit, out.Page.Total)
}
