package domain

import (
	"fmt"
	"strconv"
	"time"
)

// MaxInviteLifetime caps how far in the future an invite may expire,
// regardless of the requested duration.
const MaxInviteLifetime = 30 * 24 * time.Hour

// ParseInviteDuration parses an invite duration of the form "<int><unit>"
// with unit h (hours), d (days), w (weeks) or m (months, counted as 30
// days). The result is clamped to MaxInviteLifetime.
func ParseInviteDuration(s string) (time.Duration, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}

	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}

	var unit time.Duration
	switch s[len(s)-1] {
	case 'h':
		unit = time.Hour
	case 'd':
		unit = 24 * time.Hour
	case 'w':
		unit = 7 * 24 * time.Hour
	case 'm':
		unit = 30 * 24 * time.Hour
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}

	d := time.Duration(n) * unit
	if d > MaxInviteLifetime {
		d = MaxInviteLifetime
	}
	return d, nil
}
