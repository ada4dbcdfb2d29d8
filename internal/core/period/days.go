package period

import (
	"fmt"
	"strconv"
)

// MaxDays bounds day-count parameters.
const MaxDays = 366

// ParseDays parses a trailing day count given as "7" or "7d".
// An empty string returns def.
func ParseDays(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}

	raw := s
	if len(raw) > 1 && raw[len(raw)-1] == 'd' {
		raw = raw[:len(raw)-1]
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid day count %q: %w", s, err)
	}
	if days <= 0 {
		return 0, fmt.Errorf("day count must be positive, got %q", s)
	}
	if days > MaxDays {
		return 0, fmt.Errorf("day count %q exceeds %d", s, MaxDays)
	}
	return days, nil
}
