package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"catalog-api/internal/product"
	"catalog-api/pkg/query"
)

func (h *handler) processCreateReq(c *gin.Context) (product.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "product.http.processCreateReq: %v", err)
		return product.CreateInput{}, errWrongBody
	}
	return req.toInput()
}

func (h *handler) processListReq(c *gin.Context) product.ListInput {
	return product.ListInput{Params: query.ParseParams(c.Request.URL.Query(), h.params)}
}

func (h *handler) processUpdateReq(c *gin.Context) (product.UpdateInput, error) {
	id, err := h.processIDParam(c)
	if err != nil {
		return product.UpdateInput{}, err
	}
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "product.http.processUpdateReq: %v", err)
		return product.UpdateInput{}, errWrongBody
	}
	in, err := req.toInput()
	if err != nil {
		return product.UpdateInput{}, err
	}
	in.ID = id
	return in, nil
}

func (h *handler) processIDParam(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errInvalidID
	}
	return id, nil
}
