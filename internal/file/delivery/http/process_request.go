package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"catalog-api/internal/file"
	"catalog-api/pkg/query"
)

const formField = "file"

// processUploadReq opens the multipart part. The caller closes the returned file.
func (h *handler) processUploadReq(c *gin.Context) (file.UploadInput, io.Closer, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize+(1<<20))

	header, err := c.FormFile(formField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return file.UploadInput{}, nil, errFileTooLarge
		}
		h.l.Warnf(c.Request.Context(), "file.http.processUploadReq: %v", err)
		return file.UploadInput{}, nil, errMissingFile
	}
	if header.Size > h.maxUploadSize {
		return file.UploadInput{}, nil, errFileTooLarge
	}

	f, err := header.Open()
	if err != nil {
		h.l.Errorf(c.Request.Context(), "file.http.processUploadReq Open: %v", err)
		return file.UploadInput{}, nil, err
	}
	return file.UploadInput{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        f,
	}, f, nil
}

func (h *handler) processListReq(c *gin.Context) file.ListInput {
	return file.ListInput{Params: query.ParseParams(c.Request.URL.Query(), h.params)}
}

func (h *handler) processIDParam(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errInvalidID
	}
	return id, nil
}
