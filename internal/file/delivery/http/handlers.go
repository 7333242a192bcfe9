package http

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-api/pkg/response"
)

// Upload godoc
// @Summary     Upload a file
// @Tags        Files
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "File content"
// @Success     200 {object} fileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     413 {object} response.Resp "File too large"
// @Failure     503 {object} response.Resp "Storage not configured"
// @Router      /api/v1/files [POST]
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	input, closer, err := h.processUploadReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closer.Close()

	out, err := h.uc.Upload(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "file.http.Upload: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newFileResp(out))
}

// List godoc
// @Summary     List files
// @Description Filters: id, name, contentType, size, createdAt (createdAtFrom, createdAtTo).
// @Tags        Files
// @Produce     json
// @Param       sort   query string false "Comma separated fields, - prefix for descending"
// @Param       offset query int    false "Items to skip"
// @Param       limit  query int    false "Page size"
// @Success     200 {object} response.Resp
// @Router      /api/v1/files [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.List(ctx, h.processListReq(c))
	if err != nil {
		h.l.Errorf(ctx, "file.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get file metadata
// @Tags        Files
// @Produce     json
// @Param       id path string true "File ID"
// @Success     200 {object} fileResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/files/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "file.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newFileResp(out))
}

// Download godoc
// @Summary     Download file content
// @Tags        Files
// @Produce     octet-stream
// @Param       id path string true "File ID"
// @Success     200 {file} file
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Storage not configured"
// @Router      /api/v1/files/{id}/download [GET]
func (h *handler) Download(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Download(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "file.http.Download: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	defer out.Body.Close()

	c.DataFromReader(http.StatusOK, out.File.Size, out.File.ContentType, out.Body, map[string]string{
		"Content-Disposition": mime.FormatMediaType("attachment", map[string]string{"filename": out.File.Name}),
		"X-File-ID":           out.File.ID.String(),
	})
}

// Delete godoc
// @Summary     Delete a file
// @Tags        Files
// @Produce     json
// @Param       id path string true "File ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/files/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "file.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
