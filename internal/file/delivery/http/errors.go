package http

import (
	"errors"
	"net/http"

	"catalog-api/internal/file"
	pkgErrors "catalog-api/pkg/errors"
)

var (
	errMissingFile  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Missing multipart field \"file\"")
	errInvalidID    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid id")
	errFileTooLarge = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "File too large")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, file.ErrFileNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, file.ErrInvalidName), errors.Is(err, file.ErrEmptyFile):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, file.ErrStorageDisabled):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, file.ErrObjectUnavailable):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return err
	}
}
