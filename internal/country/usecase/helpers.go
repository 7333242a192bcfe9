package usecase

import (
	"strings"

	"catalog-api/internal/country"
)

// normalizeCode upper-cases an ISO alpha-2 code.
func normalizeCode(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) != 2 {
		return "", country.ErrInvalidCode
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", country.ErrInvalidCode
		}
	}
	return code, nil
}
