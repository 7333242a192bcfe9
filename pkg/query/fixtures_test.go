package query_test

import (
	"time"

	"github.com/google/uuid"

	"catalog-api/pkg/query"
)

type status int

const (
	statusActive status = iota
	statusInactive
	statusArchived
)

type company struct {
	ID        uuid.UUID
	Name      string
	Note      *string
	Employees int
	Rating    float64
	Public    bool
	Status    status
	Founded   time.Time
	Closed    *time.Time
}

func strPtr(s string) *string { return &s }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func companyFields() *query.FieldMap[company] {
	return query.MustFieldMap(
		query.GUID("id", func(c company) uuid.UUID { return c.ID }),
		query.String("name", func(c company) string { return c.Name }),
		query.NullableString("note", func(c company) *string { return c.Note }),
		query.Int("employees", func(c company) int { return c.Employees }),
		query.Float("rating", func(c company) float64 { return c.Rating }),
		query.Bool("public", func(c company) bool { return c.Public }),
		query.Enum("status", func(c company) status { return c.Status }, map[string]status{
			"Active":   statusActive,
			"Inactive": statusInactive,
			"Archived": statusArchived,
		}),
		query.Time("founded", func(c company) time.Time { return c.Founded }),
		query.NullableTime("closed", func(c company) *time.Time { return c.Closed }),
	)
}

var (
	idAcme     = uuid.MustParse("6f1c2a52-3d5b-4e7c-9a0e-1b2c3d4e5f60")
	idAcmeCorp = uuid.MustParse("7a2d3b63-4e6c-4f8d-8b1f-2c3d4e5f6071")
	idBeta     = uuid.MustParse("8b3e4c74-5f7d-409e-9c20-3d4e5f607182")
)

// companies returns the fixture set in a fixed order: Beta, Acme, Acme Corp.
func companies() []company {
	closed := date(2020, 6, 30)
	return []company{
		{ID: idBeta, Name: "Beta", Employees: 40, Rating: 3.5, Public: false, Status: statusInactive, Founded: date(2015, 3, 1), Closed: &closed},
		{ID: idAcme, Name: "Acme", Note: strPtr("rockets"), Employees: 10, Rating: 4.5, Public: true, Status: statusActive, Founded: date(2010, 1, 15)},
		{ID: idAcmeCorp, Name: "Acme Corp", Note: strPtr("Anvils"), Employees: 250, Rating: 4.5, Public: true, Status: statusArchived, Founded: date(2018, 9, 9)},
	}
}

func names(items []company) []string {
	out := make([]string, len(items))
	for i, c := range items {
		out[i] = c.Name
	}
	return out
}

func matching(f query.Filter[company], items []company) []string {
	var out []string
	for _, c := range items {
		if f.Match(c) {
			out = append(out, c.Name)
		}
	}
	return out
}
