package http

import (
	"errors"
	"net/http"

	"catalog-api/internal/product"
	pkgErrors "catalog-api/pkg/errors"
)

var (
	errWrongBody       = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong body")
	errInvalidID       = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid id")
	errInvalidCategory = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid category")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, product.ErrProductNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, product.ErrCompanyNotFound),
		errors.Is(err, product.ErrInvalidTitle),
		errors.Is(err, product.ErrInvalidPrice),
		errors.Is(err, product.ErrInvalidQuantity):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
