package company

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"catalog-api/pkg/query"
)

// Status is the lifecycle state of a company. The zero value is StatusActive.
type Status int

const (
	StatusActive Status = iota
	StatusInactive
	StatusArchived
)

var statusNames = map[string]Status{
	"active":   StatusActive,
	"inactive": StatusInactive,
	"archived": StatusArchived,
}

var statusLabels = [...]string{"active", "inactive", "archived"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusLabels) {
		return statusLabels[StatusActive]
	}
	return statusLabels[s]
}

// ParseStatus resolves a status name case-insensitively.
func ParseStatus(s string) (Status, bool) {
	st, ok := statusNames[strings.ToLower(strings.TrimSpace(s))]
	return st, ok
}

// --- Company Domain Model ---

type Company struct {
	ID          uuid.UUID  `db:"id"`
	Name        string     `db:"name"`
	Description *string    `db:"description"`
	CountryID   uuid.UUID  `db:"country_id"`
	Status      Status     `db:"status"`
	FoundedAt   *time.Time `db:"founded_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// --- UseCase Inputs ---

type CreateInput struct {
	Name        string
	Description *string
	CountryID   uuid.UUID
	Status      Status
	FoundedAt   *time.Time
}

type ListInput struct {
	Params query.Params
}

// UpdateInput carries only the fields to change. ClearDescription and
// ClearFoundedAt null out the optional columns.
type UpdateInput struct {
	ID               uuid.UUID
	Name             *string
	Description      *string
	ClearDescription bool
	CountryID        *uuid.UUID
	Status           *Status
	FoundedAt        *time.Time
	ClearFoundedAt   bool
}

// --- UseCase Outputs ---

type ListOutput struct {
	Page query.Page[Company]
}
