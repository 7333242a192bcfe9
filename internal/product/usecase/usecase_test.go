package usecase_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"

	"catalog-api/internal/company"
	"catalog-api/internal/model"
	"catalog-api/internal/product"
	repo "catalog-api/internal/product/repository"
	"catalog-api/internal/product/usecase"
	"catalog-api/pkg/query"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockCompanies struct {
	company.UseCase
	names map[uuid.UUID]string
}

func (m *mockCompanies) Detail(ctx context.Context, id uuid.UUID) (company.Company, error) {
	name, ok := m.names[id]
	if !ok {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return company.Company{ID: id, Name: name}, nil
}

// mockRepo stores products in memory and serves summaries from the company mock.
type mockRepo struct {
	items      []product.Product
	companies  *mockCompanies
	expandErr  error
	expandHits int
}

func (m *mockRepo) CreateProduct(ctx context.Context, opt repo.CreateProductOptions) (product.Product, error) {
	p := product.Product{
		ID: uuid.New(), CompanyID: opt.CompanyID, Title: opt.Title, Description: opt.Description,
		Price: opt.Price, Quantity: opt.Quantity, Available: opt.Available, Category: opt.Category,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	m.items = append(m.items, p)
	return p, nil
}

func (m *mockRepo) GetOneProduct(ctx context.Context, id uuid.UUID) (product.Product, error) {
	for _, p := range m.items {
		if p.ID == id {
			return p, nil
		}
	}
	return product.Product{}, nil
}

func (m *mockRepo) ListProducts(ctx context.Context, q query.Query[product.Product]) ([]product.Product, int64, error) {
	return query.NewSliceSource(m.items).Fetch(ctx, q)
}

func (m *mockRepo) UpdateProduct(ctx context.Context, opt repo.UpdateProductOptions) (product.Product, error) {
	for i, p := range m.items {
		if p.ID == opt.ID {
			m.items[i] = product.Product{
				ID: p.ID, CompanyID: opt.CompanyID, Title: opt.Title, Description: opt.Description,
				Price: opt.Price, Quantity: opt.Quantity, Available: opt.Available, Category: opt.Category,
				CreatedAt: p.CreatedAt, UpdatedAt: time.Now(),
			}
			return m.items[i], nil
		}
	}
	return product.Product{}, nil
}

func (m *mockRepo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	for i, p := range m.items {
		if p.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockRepo) ListCompanySummaries(ctx context.Context, ids []uuid.UUID) ([]product.CompanySummary, error) {
	m.expandHits++
	if m.expandErr != nil {
		return nil, m.expandErr
	}
	var out []product.CompanySummary
	for _, id := range ids {
		if name, ok := m.companies.names[id]; ok {
			out = append(out, product.CompanySummary{ID: id, Name: name})
		}
	}
	return out, nil
}

func newUseCase(t *testing.T, r *mockRepo) product.UseCase {
	t.Helper()
	uc, err := usecase.New(r, r.companies, &mockLogger{}, model.QueryOptions{DefaultLimit: 10, MaxLimit: 100})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return uc
}

func ptr[V any](v V) *V { return &v }

func TestCreate(t *testing.T) {
	muji := uuid.New()
	tcs := map[string]struct {
		input   product.CreateInput
		wantErr error
	}{
		"Created":         {input: product.CreateInput{CompanyID: muji, Title: " Pen ", Price: 1, Quantity: 3, Available: true}},
		"Free is fine":    {input: product.CreateInput{CompanyID: muji, Title: "Sticker"}},
		"Blank title":     {input: product.CreateInput{CompanyID: muji, Title: ""}, wantErr: product.ErrInvalidTitle},
		"Negative price":  {input: product.CreateInput{CompanyID: muji, Title: "Pen", Price: -1}, wantErr: product.ErrInvalidPrice},
		"Negative stock":  {input: product.CreateInput{CompanyID: muji, Title: "Pen", Quantity: -2}, wantErr: product.ErrInvalidQuantity},
		"Unknown company": {input: product.CreateInput{CompanyID: uuid.New(), Title: "Pen"}, wantErr: product.ErrCompanyNotFound},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			r := &mockRepo{companies: &mockCompanies{names: map[uuid.UUID]string{muji: "Muji"}}}
			got, err := newUseCase(t, r).Create(context.Background(), tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr == nil && (got.ID == uuid.Nil || len(r.items) != 1) {
				t.Errorf("product not stored: %+v", got)
			}
		})
	}
}

func TestListExpand(t *testing.T) {
	muji, uniqlo := uuid.New(), uuid.New()
	r := &mockRepo{
		companies: &mockCompanies{names: map[uuid.UUID]string{muji: "Muji", uniqlo: "Uniqlo"}},
		items: []product.Product{
			{ID: uuid.New(), CompanyID: muji, Title: "Pen", Price: 1.2, Available: true},
			{ID: uuid.New(), CompanyID: uniqlo, Title: "Shirt", Price: 20, Available: true, Category: product.CategoryApparel},
			{ID: uuid.New(), CompanyID: muji, Title: "Notebook", Price: 3},
		},
	}
	uc := newUseCase(t, r)
	ctx := context.Background()
	params := func(raw string) product.ListInput {
		values, _ := url.ParseQuery(raw)
		return product.ListInput{Params: query.ParseParams(values, query.ParamsConfig{})}
	}

	out, err := uc.List(ctx, params("available=true&expand=company"))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out.Page.Total != 2 || len(out.Page.Items) != 2 {
		t.Fatalf("unexpected page: %+v", out.Page)
	}
	for _, p := range out.Page.Items {
		if p.Company == nil || p.Company.ID != p.CompanyID {
			t.Errorf("%s: company not attached: %+v", p.Title, p.Company)
		}
	}
	if out.Page.Items[0].Company.Name != "Muji" || out.Page.Items[1].Company.Name != "Uniqlo" {
		t.Errorf("wrong companies attached: %+v, %+v", out.Page.Items[0].Company, out.Page.Items[1].Company)
	}

	hits := r.expandHits
	out, err = uc.List(ctx, params("sort=-price"))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if r.expandHits != hits || out.Page.Items[0].Company != nil {
		t.Errorf("companies loaded without expand")
	}
	if out.Page.Items[0].Title != "Shirt" {
		t.Errorf("sort=-price should start with Shirt, got %s", out.Page.Items[0].Title)
	}

	hits = r.expandHits
	if _, err := uc.List(ctx, params("title=nothing-matches&expand=company")); err != nil {
		t.Fatalf("List: %v", err)
	}
	if r.expandHits != hits {
		t.Errorf("empty page should not trigger a company lookup")
	}

	r.expandErr = errors.New("db down")
	if _, err := uc.List(ctx, params("expand=company")); !errors.Is(err, r.expandErr) {
		t.Errorf("expected expand error to propagate, got %v", err)
	}
}

func TestUpdateDelete(t *testing.T) {
	muji := uuid.New()
	pen := product.Product{ID: uuid.New(), CompanyID: muji, Title: "Pen", Description: ptr("Gel"), Price: 1, Quantity: 5}
	r := &mockRepo{companies: &mockCompanies{names: map[uuid.UUID]string{muji: "Muji"}}, items: []product.Product{pen}}
	uc := newUseCase(t, r)
	ctx := context.Background()

	got, err := uc.Update(ctx, product.UpdateInput{ID: pen.ID, Quantity: ptr(0), Available: ptr(true), ClearDescription: true})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Quantity != 0 || !got.Available || got.Description != nil || got.Title != "Pen" || got.Price != 1 {
		t.Errorf("unexpected update result: %+v", got)
	}

	tcs := map[string]struct {
		input   product.UpdateInput
		wantErr error
	}{
		"Negative price":  {input: product.UpdateInput{ID: pen.ID, Price: ptr(-0.5)}, wantErr: product.ErrInvalidPrice},
		"Blank title":     {input: product.UpdateInput{ID: pen.ID, Title: ptr(" ")}, wantErr: product.ErrInvalidTitle},
		"Unknown company": {input: product.UpdateInput{ID: pen.ID, CompanyID: ptr(uuid.New())}, wantErr: product.ErrCompanyNotFound},
		"Unknown product": {input: product.UpdateInput{ID: uuid.New()}, wantErr: product.ErrProductNotFound},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			if _, err := uc.Update(ctx, tc.input); !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	if err := uc.Delete(ctx, pen.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := uc.Detail(ctx, pen.ID); !errors.Is(err, product.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound after delete, got %v", err)
	}
}
