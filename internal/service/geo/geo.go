// Package geo resolves human-readable "City, State" search input into the
// search provider's numeric location codes.
package geo

import (
	"fmt"
	"strings"

	"github.com/bloomday/bloomday/internal/pkg/constants"
)

// Resolve returns the provider location code for a (state, city) pair.
// Matching is exact after trimming; there is no fuzzy matching or fallback.
func Resolve(state, city string) (int, error) {
	state = strings.TrimSpace(state)
	city = strings.TrimSpace(city)

	cities, ok := locationCodes[state]
	if !ok {
		return 0, fmt.Errorf("state %q: %w", state, constants.ErrUnknownLocation)
	}

	code, ok := cities[city]
	if !ok {
		return 0, fmt.Errorf("city %q, state %q: %w", city, state, constants.ErrUnknownLocation)
	}

	return code, nil
}

// SplitLocation parses a "City, State" string into its parts.
func SplitLocation(location string) (city, state string, err error) {
	parts := strings.SplitN(location, ",", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("location %q is not in \"City, State\" form: %w", location, constants.ErrUnknownLocation)
	}

	city = strings.TrimSpace(parts[0])
	state = strings.TrimSpace(parts[1])
	if city == "" || state == "" {
		return "", "", fmt.Errorf("location %q is not in \"City, State\" form: %w", location, constants.ErrUnknownLocation)
	}

	return city, state, nil
}
