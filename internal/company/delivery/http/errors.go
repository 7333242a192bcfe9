package http

import (
	"errors"
	"net/http"

	"catalog-api/internal/company"
	pkgErrors "catalog-api/pkg/errors"
)

var (
	errWrongBody     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong body")
	errInvalidID     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid id")
	errInvalidStatus = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid status")
	errInvalidDate   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid founded_at")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, company.ErrCompanyNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, company.ErrDuplicateName):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, company.ErrCountryNotFound), errors.Is(err, company.ErrInvalidName):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
