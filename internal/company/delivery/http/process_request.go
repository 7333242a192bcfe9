package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"catalog-api/internal/company"
	"catalog-api/pkg/query"
)

func (h *handler) processCreateReq(c *gin.Context) (company.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "company.http.processCreateReq: %v", err)
		return company.CreateInput{}, errWrongBody
	}
	return req.toInput()
}

// processListReq hands the raw query string to the engine.
func (h *handler) processListReq(c *gin.Context) company.ListInput {
	return company.ListInput{Params: query.ParseParams(c.Request.URL.Query(), h.params)}
}

func (h *handler) processUpdateReq(c *gin.Context) (company.UpdateInput, error) {
	id, err := h.processIDParam(c)
	if err != nil {
		return company.UpdateInput{}, err
	}
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "company.http.processUpdateReq: %v", err)
		return company.UpdateInput{}, errWrongBody
	}
	in, err := req.toInput()
	if err != nil {
		return company.UpdateInput{}, err
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
