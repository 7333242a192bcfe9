package http

import (
	"github.com/gin-gonic/gin"

	"catalog-api/pkg/response"
)

// Create godoc
// @Summary     Create a product
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Product data"
// @Success     200  {object} productResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/products [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Create(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "product.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newProductResp(out))
}

// List godoc
// @Summary     List products
// @Description Filters: id, companyId, title, description, price, quantity, available, category, createdAt, updatedAt.
// @Description expand=company embeds the owning company in each item.
// @Description Prefix a value with ! to negate, quote it for an exact string match, leave it empty to test for null.
// @Tags        Products
// @Produce     json
// @Param       sort   query string false "Comma separated fields, - prefix for descending"
// @Param       offset query int    false "Items to skip"
// @Param       limit  query int    false "Page size"
// @Param       expand query string false "Relations to embed (company)"
// @Success     200 {object} response.Resp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/products [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.List(ctx, h.processListReq(c))
	if err != nil {
		h.l.Errorf(ctx, "product.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get a product
// @Tags        Products
// @Produce     json
// @Param       id path string true "Product ID"
// @Success     200 {object} productResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/products/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "product.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newProductResp(out))
}

// Update godoc
// @Summary     Update a product
// @Description Partial update; omitted fields keep their value.
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Product ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} productResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/products/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Update(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "product.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newProductResp(out))
}

// Delete godoc
// @Summary     Delete a product
// @Tags        Products
// @Produce     json
// @Param       id path string true "Product ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/products/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "product.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
