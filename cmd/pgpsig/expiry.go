package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidExpiry = errors.New("invalid expiry")

const expiryFormatHelp = "A period is a sequence of quantities with units s, h, d, w, m (months) or y, " +
	"such as \"90d\" or \"1y6m\"."

// expiryUnits maps each unit suffix accepted by parseExpiry to its length.
// A month is a twelfth of a 365-day year.
var expiryUnits = map[byte]time.Duration{
	's': time.Second,
	'h': time.Hour,
	'd': 24 * time.Hour,
	'w': 7 * 24 * time.Hour,
	'm': 365 * 24 * time.Hour / 12,
	'y': 365 * 24 * time.Hour,
}

// parseExpiry parses a positive expiry period made of one or more quantities
// each followed by a unit, such as "90d", "2y" or "1y6m".
func parseExpiry(input string) (time.Duration, error) {
	if input == "" {
		return 0, fmt.Errorf("%w: empty period", ErrInvalidExpiry)
	}

	var total time.Duration
	rest := strings.ToLower(input)
	for rest != "" {
		digits := strings.IndexFunc(rest, func(r rune) bool { return r < '0' || r > '9' })
		if digits == -1 {
			return 0, fmt.Errorf("%w: %q ends without a unit (use one of s, h, d, w, m, y)", ErrInvalidExpiry, input)
		}
		if digits == 0 {
			return 0, fmt.Errorf("%w: %q has a unit without a quantity", ErrInvalidExpiry, input)
		}

		unit, ok := expiryUnits[rest[digits]]
		if !ok {
			return 0, fmt.Errorf("%w: %q has unknown unit %q", ErrInvalidExpiry, input, rest[digits])
		}
		quantity, err := strconv.ParseInt(rest[:digits], 10, 64)
		if err != nil || quantity > int64(math.MaxInt64/unit) || total > math.MaxInt64-time.Duration(quantity)*unit {
			return 0, fmt.Errorf("%w: %q is too long", ErrInvalidExpiry, input)
		}

		total += time.Duration(quantity) * unit
		rest = rest[digits+1:]
	}

	if total == 0 {
		return 0, fmt.Errorf("%w: %q is zero; omit the option for no expiry", ErrInvalidExpiry, input)
	}
	return total, nil
}
