package http

import (
	"errors"
	"net/http"

	"catalog-api/internal/country"
	pkgErrors "catalog-api/pkg/errors"
)

var (
	errWrongBody     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong body")
	errInvalidID     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid id")
	errInvalidRegion = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid region")
)

// mapError translates domain errors into HTTP errors. Unknown errors render as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, country.ErrCountryNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, country.ErrDuplicateCode):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, country.ErrInvalidCode), errors.Is(err, country.ErrInvalidName):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
