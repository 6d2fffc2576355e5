// Package validate holds request-shape checks shared by the HTTP handlers.
package validate

import (
	"fmt"
	"strconv"
	"time"
)

// Date checks the ISO calendar-date form used for log dates and summary
// queries.
func Date(v string) error {
	if v == "" {
		return fmt.Errorf("date is required")
	}
	if _, err := time.Parse("2006-01-02", v); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}
	return nil
}

// Limit parses an optional ?limit= query value, applying def when absent and
// capping at max.
func Limit(raw string, def, max int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("limit must be a positive integer")
	}
	if n > max {
		n = max
	}
	return n, nil
}

func NonEmpty(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func MaxLen(field, v string, limit int) error {
	if len(v) > limit {
		return fmt.Errorf("%s exceeds %d characters", field, limit)
	}
	return nil
}
