package usecase

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// DayFormat is the compact date form used in provider queries, log lines and
// the error log.
const DayFormat = "20060102"

var dateLayouts = []string{DayFormat, "2006-01-02"}

// LoadDateRange reads the start and end dates from their input files. A
// missing or unparseable end file yields an end date one day before the
// start, the sentinel DateSequence treats as a single-day run.
func LoadDateRange(startPath, endPath string) (time.Time, time.Time, error) {
	raw, err := os.ReadFile(startPath)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("read start date file: %w", err)
	}
	start, err := parseDate(string(raw))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse start date file %s: %w", startPath, err)
	}

	end := start.AddDate(0, 0, -1)
	if raw, err := os.ReadFile(endPath); err == nil {
		if parsed, parseErr := parseDate(string(raw)); parseErr == nil {
			end = parsed
		}
	}

	return start, end, nil
}

// DateSequence computes the days to process, newest first. An end date after
// the start is a usage error. An end date exactly one day before the start is
// the single-day sentinel; any earlier end date gives an inclusive walk from
// start down to end.
func DateSequence(start, end time.Time) ([]time.Time, error) {
	if end.After(start) {
		return nil, fmt.Errorf("%w: start %s is before end %s",
			ErrInvalidDateRange, start.Format(DayFormat), end.Format(DayFormat))
	}
	if end.Equal(start.AddDate(0, 0, -1)) {
		return []time.Time{start}, nil
	}

	out := make([]time.Time, 0, 8)
	for day := start; !day.Before(end); day = day.AddDate(0, 0, -1) {
		out = append(out, day)
	}
	return out, nil
}

func parseDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		parsed, err := time.ParseInLocation(layout, value, time.UTC)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date value %q", value)
}
