package rules

import (
	"strconv"
	"strings"
	"time"
)

const dateParamLayout = "20060102"

// ParseDateParam parses a YYYYMMDD condition parameter. Saved filters from
// old installs carry garbage here; those fall back to today, which keeps
// the comparison total instead of erroring the whole evaluation.
func ParseDateParam(param string, now time.Time) time.Time {
	parsed, err := time.Parse(dateParamLayout, strings.TrimSpace(param))
	if err != nil {
		return today(now)
	}
	return parsed
}

// ParseIntParam parses an integer condition parameter. Unparseable values
// become -1 so they take part in ordinary comparison and fail GreaterThan
// against any real value.
func ParseIntParam(param string) int {
	n, err := strconv.Atoi(strings.TrimSpace(param))
	if err != nil {
		return -1
	}
	return n
}

// ParseDaysParam parses a LastXDays window size. Unparseable values
// become 0, so a bad saved filter degrades to a cutoff of today instead
// of a window that can never match.
func ParseDaysParam(param string) int {
	n, err := strconv.Atoi(strings.TrimSpace(param))
	if err != nil {
		return 0
	}
	return n
}

// ParseDecimalParam parses a rating threshold. Unparseable values become
// -1, same contract as ParseIntParam.
func ParseDecimalParam(param string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(param), 64)
	if err != nil {
		return -1
	}
	return f
}

// today truncates a timestamp to midnight, matching the granularity of
// date parameters.
func today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
