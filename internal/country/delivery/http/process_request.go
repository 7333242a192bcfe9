package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"catalog-api/internal/country"
	"catalog-api/pkg/query"
)

func (h *handler) processCreateReq(c *gin.Context) (country.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "country.http.processCreateReq: %v", err)
		return country.CreateInput{}, errWrongBody
	}
	return req.toInput()
}

// processListReq never fails: malformed paging falls back to defaults and
// unusable filter keys are dropped by the query engine.
func (h *handler) processListReq(c *gin.Context) country.ListInput {
	return country.ListInput{Params: query.ParseParams(c.Request.URL.Query(), h.params)}
}

func (h *handler) processUpdateReq(c *gin.Context) (country.UpdateInput, error) {
	id, err := h.processIDParam(c)
	if err != nil {
		return country.UpdateInput{}, err
	}
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "country.http.processUpdateReq: %v", err)
		return country.UpdateInput{}, errWrongBody
	}
	in, err := req.toInput()
	if err != nil {
		return country.UpdateInput{}, err
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
