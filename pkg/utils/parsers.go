package utils

import (
	"fmt"
	"strings"
	"time"
)

// HomeLocation is the railway's civil timezone, used whenever a search
// date or time is defaulted from the current clock.
func HomeLocation() *time.Location {
	if loc, err := time.LoadLocation("Asia/Jerusalem"); err == nil {
		return loc
	}
	return time.FixedZone("IST", 2*60*60)
}

// ParseDate normalizes a date flag to YYYY-MM-DD. Empty input means
// "default to today" and is passed through for the API client to fill.
func ParseDate(input string) (string, error) {
	input = strings.TrimSpace(input)
	switch input {
	case "":
		return "", nil
	case "today":
		return time.Now().In(HomeLocation()).Format("2006-01-02"), nil
	case "tomorrow":
		return time.Now().In(HomeLocation()).AddDate(0, 0, 1).Format("2006-01-02"), nil
	}

	for _, f := range []string{"2006-01-02", "02.01.2006"} {
		if parsed, err := time.Parse(f, input); err == nil {
			return parsed.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", input)
}

// ParseTime validates a time flag as HH:MM. Empty input means "default
// to now".
func ParseTime(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", nil
	}
	parsed, err := time.Parse("15:04", input)
	if err != nil {
		return "", fmt.Errorf("invalid time %q (expected HH:MM)", input)
	}
	return parsed.Format("15:04"), nil
}
