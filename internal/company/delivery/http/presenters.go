package http

import (
	"time"

	"github.com/google/uuid"

	"catalog-api/internal/company"
	"catalog-api/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Name        string  `json:"name"        binding:"required,max=255"`
	Description *string `json:"description"`
	CountryID   string  `json:"country_id"  binding:"required,uuid"`
	Status      string  `json:"status"`
	FoundedAt   string  `json:"founded_at"`
}

func (r createReq) toInput() (company.CreateInput, error) {
	status, err := parseStatus(r.Status)
	if err != nil {
		return company.CreateInput{}, err
	}
	founded, err := parseDate(r.FoundedAt)
	if err != nil {
		return company.CreateInput{}, err
	}
	return company.CreateInput{
		Name:        r.Name,
		Description: r.Description,
		CountryID:   uuid.MustParse(r.CountryID),
		Status:      status,
		FoundedAt:   founded,
	}, nil
}

// updateReq leaves omitted fields untouched. The clear_* flags null out the
// optional columns since a JSON null cannot be told apart from an omission.
type updateReq struct {
	Name             *string `json:"name"       binding:"omitempty,max=255"`
	Description      *string `json:"description"`
	ClearDescription bool    `json:"clear_description"`
	CountryID        *string `json:"country_id" binding:"omitempty,uuid"`
	Status           *string `json:"status"`
	FoundedAt        *string `json:"founded_at"`
	ClearFoundedAt   bool    `json:"clear_founded_at"`
}

func (r updateReq) toInput() (company.UpdateInput, error) {
	in := company.UpdateInput{
		Name:             r.Name,
		Description:      r.Description,
		ClearDescription: r.ClearDescription,
		ClearFoundedAt:   r.ClearFoundedAt,
	}
	if r.CountryID != nil {
		id := uuid.MustParse(*r.CountryID)
		in.CountryID = &id
	}
	if r.Status != nil {
		status, err := parseStatus(*r.Status)
		if err != nil {
			return company.UpdateInput{}, err
		}
		in.Status = &status
	}
	if r.FoundedAt != nil {
		founded, err := parseDate(*r.FoundedAt)
		if err != nil {
			return company.UpdateInput{}, err
		}
		in.FoundedAt = founded
	}
	return in, nil
}

func parseStatus(s string) (company.Status, error) {
	if s == "" {
		return company.StatusActive, nil
	}
	status, ok := company.ParseStatus(s)
	if !ok {
		return 0, errInvalidStatus
	}
	return status, nil
}

// parseDate accepts a plain date or an RFC 3339 timestamp. Blank means unset.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{response.DateFormat, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, errInvalidDate
}

// --- Response DTOs ---

type companyResp struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description"`
	CountryID   string            `json:"country_id"`
	Status      string            `json:"status"`
	FoundedAt   *response.Date    `json:"founded_at"`
	CreatedAt   response.DateTime `json:"created_at"`
	UpdatedAt   response.DateTime `json:"updated_at"`
}

func newCompanyResp(c company.Company) companyResp {
	resp := companyResp{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		CountryID:   c.CountryID.String(),
		Status:      c.Status.String(),
		CreatedAt:   response.DateTime(c.CreatedAt),
		UpdatedAt:   response.DateTime(c.UpdatedAt),
	}
	if c.FoundedAt != nil {
		d := response.Date(*c.FoundedAt)
		resp.FoundedAt = &d
	}
	return resp
}

func (h *handler) newListResp(out company.ListOutput) response.PageResp[companyResp] {
	items := make([]companyResp, len(out.Page.Items))
	for i, c := range out.Page.Items {
		items[i] = newCompanyResp(c)
	}
	return response.NewPageResp(items, out.Page.Offset, out.Page.Limit, out.Page.Total)
}
