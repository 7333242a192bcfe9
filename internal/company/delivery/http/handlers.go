package http

import (
	"github.com/gin-gonic/gin"

	"catalog-api/pkg/response"
)

// Create godoc
// @Summary     Create a company
// @Tags        Companies
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Company data"
// @Success     200  {object} companyResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - name already taken"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/companies [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Create(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "company.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCompanyResp(out))
}

// List godoc
// @Summary     List companies
// @Description Filters: id, name, description, countryId, status, foundedAt, createdAt, updatedAt.
// @Description Datetime fields also accept From/To suffixes, e.g. foundedAtFrom=2000-01-01.
// @Description Prefix a value with ! to negate, quote it for an exact string match, leave it empty to test for null.
// @Tags        Companies
// @Produce     json
// @Param       sort   query string false "Comma separated fields, - prefix for descending"
// @Param       offset query int    false "Items to skip"
// @Param       limit  query int    false "Page size"
// @Success     200 {object} response.Resp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/companies [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.List(ctx, h.processListReq(c))
	if err != nil {
		h.l.Errorf(ctx, "company.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get a company
// @Tags        Companies
// @Produce     json
// @Param       id path string true "Company ID"
// @Success     200 {object} companyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/companies/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "company.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCompanyResp(out))
}

// Update godoc
// @Summary     Update a company
// @Description Partial update; omitted fields keep their value.
// @Tags        Companies
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Company ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} companyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - name already taken"
// @Router      /api/v1/companies/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Update(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "company.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCompanyResp(out))
}

// Delete godoc
// @Summary     Delete a company
// @Tags        Companies
// @Produce     json
// @Param       id path string true "Company ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/companies/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "company.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
