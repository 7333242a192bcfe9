package http

import (
	"github.com/gin-gonic/gin"

	"catalog-api/pkg/response"
)

// Create godoc
// @Summary     Create a country
// @Tags        Countries
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Country data"
// @Success     200  {object} countryResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - code already exists"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/countries [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Create(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "country.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCountryResp(out))
}

// List godoc
// @Summary     List countries
// @Description Filters by any field (code, name, region, id, createdAt, createdAtFrom, createdAtTo).
// @Description Prefix a value with ! to negate, quote it for an exact string match, leave it empty to test for null.
// @Tags        Countries
// @Produce     json
// @Param       sort   query string false "Comma separated fields, - prefix for descending"
// @Param       offset query int    false "Items to skip"
// @Param       limit  query int    false "Page size"
// @Success     200 {object} response.Resp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/countries [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.List(ctx, h.processListReq(c))
	if err != nil {
		h.l.Errorf(ctx, "country.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get a country
// @Tags        Countries
// @Produce     json
// @Param       id path string true "Country ID"
// @Success     200 {object} countryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/countries/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "country.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCountryResp(out))
}

// Update godoc
// @Summary     Update a country
// @Description Partial update; omitted fields keep their value.
// @Tags        Countries
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Country ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} countryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - code already exists"
// @Router      /api/v1/countries/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Update(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "country.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCountryResp(out))
}

// Delete godoc
// @Summary     Delete a country
// @Tags        Countries
// @Produce     json
// @Param       id path string true "Country ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/countries/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "country.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
