package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"catalog-api/internal/company"
	companyHTTP "catalog-api/internal/company/delivery/http"
	companyRepo "catalog-api/internal/company/repository/postgre"
	companyUC "catalog-api/internal/company/usecase"
	"catalog-api/internal/country"
	countryHTTP "catalog-api/internal/country/delivery/http"
	countryRepo "catalog-api/internal/country/repository/postgre"
	countryUC "catalog-api/internal/country/usecase"
	fileHTTP "catalog-api/internal/file/delivery/http"
	fileRepo "catalog-api/internal/file/repository/postgre"
	fileUC "catalog-api/internal/file/usecase"
	productHTTP "catalog-api/internal/product/delivery/http"
	productRepo "catalog-api/internal/product/repository/postgre"
	productUC "catalog-api/internal/product/usecase"
)

// Every domain is wired the same way:
//  1. Repository over the shared *sqlx.DB
//  2. UseCase with its collaborators and the list-query options
//  3. HTTP handler
//  4. Routes under /api/v1/<resource>

func (srv HTTPServer) setupCountryDomain(ctx context.Context, api *gin.RouterGroup) (country.UseCase, error) {
	repo := countryRepo.New(srv.db, srv.l)
	uc, err := countryUC.New(repo, srv.l, srv.queryOpts)
	if err != nil {
		return nil, err
	}
	countryHTTP.RegisterRoutes(api.Group("/countries"), countryHTTP.New(srv.l, uc, srv.queryOpts.Params()))

	srv.l.Infof(ctx, "Country domain registered")
	return uc, nil
}

func (srv HTTPServer) setupCompanyDomain(ctx context.Context, api *gin.RouterGroup, countries country.UseCase) (company.UseCase, error) {
	repo := companyRepo.New(srv.db, srv.l)
	uc, err := companyUC.New(repo, countries, srv.l, srv.queryOpts)
	if err != nil {
		return nil, err
	}
	companyHTTP.RegisterRoutes(api.Group("/companies"), companyHTTP.New(srv.l, uc, srv.queryOpts.Params()))

	srv.l.Infof(ctx, "Company domain registered")
	return uc, nil
}

func (srv HTTPServer) setupProductDomain(ctx context.Context, api *gin.RouterGroup, companies company.UseCase) error {
	repo := productRepo.New(srv.db, srv.l)
	uc, err := productUC.New(repo, companies, srv.l, srv.queryOpts)
	if err != nil {
		return err
	}
	productHTTP.RegisterRoutes(api.Group("/products"), productHTTP.New(srv.l, uc, srv.queryOpts.Params()))

	srv.l.Infof(ctx, "Product domain registered")
	return nil
}

func (srv HTTPServer) setupFileDomain(ctx context.Context, api *gin.RouterGroup) error {
	repo := fileRepo.New(srv.db, srv.l)
	uc, err := fileUC.New(repo, srv.storage, srv.l, srv.queryOpts)
	if err != nil {
		return err
	}
	fileHTTP.RegisterRoutes(api.Group("/files"), fileHTTP.New(srv.l, uc, srv.queryOpts.Params(), srv.maxUploadSize))

	if srv.storage.Enabled() {
		srv.l.Infof(ctx, "File domain registered")
	} else {
		srv.l.Warnf(ctx, "File domain registered without blob storage: uploads will answer 503")
	}
	return nil
}
