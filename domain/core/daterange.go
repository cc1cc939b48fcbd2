package core

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts accepted in workbook cells. Field operators fill the tracker
// by hand, so both the French day-first form and the ISO form occur.
var dateLayouts = []string{
	"02/01/2006",
	"2006-01-02",
	"02/01/06",
}

// DateRange is an inclusive [Start, End] window of calendar dates.
// A range whose Start is after its End matches nothing.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange builds a range from two calendar dates, truncated to day
// precision. Start after End is allowed and yields the empty range.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: truncateDay(start), End: truncateDay(end)}
}

// IsEmpty reports whether the range can match no date at all.
func (r DateRange) IsEmpty() bool {
	return r.Start.After(r.End)
}

// Contains reports whether t falls within the inclusive bounds.
func (r DateRange) Contains(t time.Time) bool {
	d := truncateDay(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
}

// ParseDate parses a workbook date cell. Empty or unparseable values return
// ErrInvalidDate; callers exclude the row rather than failing the report.
func ParseDate(raw string) (time.Time, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return time.Time{}, fmt.Errorf("%w: empty cell", ErrInvalidDate)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return truncateDay(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
