package http

import (
	"github.com/google/uuid"

	"catalog-api/internal/product"
	"catalog-api/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	CompanyID   string  `json:"company_id"  binding:"required,uuid"`
	Title       string  `json:"title"       binding:"required,max=255"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Available   *bool   `json:"available"`
	Category    string  `json:"category"`
}

func (r createReq) toInput() (product.CreateInput, error) {
	category, err := parseCategory(r.Category)
	if err != nil {
		return product.CreateInput{}, err
	}
	in := product.CreateInput{
		CompanyID:   uuid.MustParse(r.CompanyID),
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Quantity:    r.Quantity,
		Available:   true,
		Category:    category,
	}
	if r.Available != nil {
		in.Available = *r.Available
	}
	return in, nil
}

type updateReq struct {
	CompanyID        *string  `json:"company_id" binding:"omitempty,uuid"`
	Title            *string  `json:"title"      binding:"omitempty,max=255"`
	Description      *string  `json:"description"`
	ClearDescription bool     `json:"clear_description"`
	Price            *float64 `json:"price"`
	Quantity         *int     `json:"quantity"`
	Available        *bool    `json:"available"`
	Category         *string  `json:"category"`
}

func (r updateReq) toInput() (product.UpdateInput, error) {
	in := product.UpdateInput{
		Title:            r.Title,
		Description:      r.Description,
		ClearDescription: r.ClearDescription,
		Price:            r.Price,
		Quantity:         r.Quantity,
		Available:        r.Available,
	}
	if r.CompanyID != nil {
		id := uuid.MustParse(*r.CompanyID)
		in.CompanyID = &id
	}
	if r.Category != nil {
		category, err := parseCategory(*r.Category)
		if err != nil {
			return product.UpdateInput{}, err
		}
		in.Category = &category
	}
	return in, nil
}

func parseCategory(s string) (product.Category, error) {
	if s == "" {
		return product.CategoryOther, nil
	}
	c, ok := product.ParseCategory(s)
	if !ok {
		return 0, errInvalidCategory
	}
	return c, nil
}

// --- Response DTOs ---

type companyResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type productResp struct {
	ID          string            `json:"id"`
	CompanyID   string            `json:"company_id"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	Price       float64           `json:"price"`
	Quantity    int               `json:"quantity"`
	Available   bool              `json:"available"`
	Category    string            `json:"category"`
	CreatedAt   response.DateTime `json:"created_at"`
	UpdatedAt   response.DateTime `json:"updated_at"`
	Company     *companyResp      `json:"company,omitempty"`
}

func newProductResp(p product.Product) productResp {
	resp := productResp{
		ID:          p.ID.String(),
		CompanyID:   p.CompanyID.String(),
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Available:   p.Available,
		Category:    p.Category.String(),
		CreatedAt:   response.DateTime(p.CreatedAt),
		UpdatedAt:   response.DateTime(p.UpdatedAt),
	}
	if p.Company != nil {
		resp.Company = &companyResp{ID: p.Company.ID.String(), Name: p.Company.Name}
	}
	return resp
}

func (h *handler) newListResp(out product.ListOutput) response.PageResp[productResp] {
	items := make([]productResp, len(out.Page.Items))
	for i, p := range out.Page.Items {
		items[i] = newProductResp(p)
	}
	return response.NewPageResp(items, out.Page.Offset, out.Page.Limit, out.Page.Total)
}
