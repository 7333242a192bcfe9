package country

import (
	"time"

	"github.com/google/uuid"

	"catalog-api/pkg/query"
)

// Region groups countries by continent. The zero value is RegionUnknown.
type Region int

const (
	RegionUnknown Region = iota
	RegionAfrica
	RegionAmericas
	RegionAsia
	RegionEurope
	RegionOceania
)

var regionNames = map[string]Region{
	"unknown":  RegionUnknown,
	"africa":   RegionAfrica,
	"americas": RegionAmericas,
	"asia":     RegionAsia,
	"europe":   RegionEurope,
	"oceania":  RegionOceania,
}

var regionLabels = [...]string{"unknown", "africa", "americas", "asia", "europe", "oceania"}

func (r Region) String() string {
	if r < 0 || int(r) >= len(regionLabels) {
		return regionLabels[RegionUnknown]
	}
	return regionLabels[r]
}

// ParseRegion resolves a region name case-insensitively.
func ParseRegion(s string) (Region, bool) {
	r, ok := regionNames[normalize(s)]
	return r, ok
}

// --- Country Domain Model ---

type Country struct {
	ID        uuid.UUID `db:"id"`
	Code      string    `db:"code"`
	Name      string    `db:"name"`
	Region    Region    `db:"region"`
	CreatedAt time.Time `db:"created_at"`
}

// --- UseCase Inputs ---

type CreateInput struct {
	Code   string
	Name   string
	Region Region
}

type ListInput struct {
	Params query.Params
}

type UpdateInput struct {
	ID     uuid.UUID
	Code   *string
	Name   *string
	Region *Region
}

// --- UseCase Outputs ---

type ListOutput struct {
	Page query.Page[Country]
}
