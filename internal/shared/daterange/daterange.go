// Package daterange resolves named filter presets into concrete calendar
// ranges. Resolution is pure: the reference day is always injected, so the
// same (preset, day) pair yields the same range.
package daterange

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Preset names a shorthand date filter offered by the listing screens.
type Preset string

const (
	PresetToday       Preset = "Today"
	PresetYesterday   Preset = "Yesterday"
	PresetLast7Days   Preset = "Last 7 Days"
	PresetLast30Days  Preset = "Last 30 Days"
	PresetThisMonth   Preset = "This Month"
	PresetLastMonth   Preset = "Last Month"
	PresetTomorrow    Preset = "Tomorrow"
	PresetNextWeek    Preset = "Next Week"
	PresetNextMonth   Preset = "Next Month"
	PresetNext3Months Preset = "Next 3 Months"
	PresetNext6Months Preset = "Next 6 Months"
	PresetNextYear    Preset = "Next Year"
)

// LegacyLayout is the DD/MM/YYYY wire format the back-office expects for
// start_date/end_date query parameters.
const LegacyLayout = "02/01/2006"

var (
	ErrUnknownPreset = errors.New("unknown date range preset")
	ErrInvertedRange = errors.New("range start is after its end")
)

// Range is an inclusive calendar-day interval. From never exceeds To.
type Range struct {
	From time.Time
	To   time.Time
}

// NewRange builds a custom range, rejecting inverted bounds. Time-of-day is
// truncated to midnight on both ends.
func NewRange(from, to time.Time) (Range, error) {
	from = Midnight(from)
	to = Midnight(to)
	if from.After(to) {
		return Range{}, ErrInvertedRange
	}
	return Range{From: from, To: to}, nil
}

// Resolve maps a preset onto concrete bounds anchored on the given day.
func Resolve(preset Preset, today time.Time) (Range, error) {
	t := Midnight(today)
	year, month, _ := t.Date()
	loc := t.Location()

	switch preset {
	case PresetToday:
		return Range{From: t, To: t}, nil
	case PresetYesterday:
		y := t.AddDate(0, 0, -1)
		return Range{From: y, To: y}, nil
	case PresetLast7Days:
		return Range{From: t.AddDate(0, 0, -6), To: t}, nil
	case PresetLast30Days:
		return Range{From: t.AddDate(0, 0, -29), To: t}, nil
	case PresetThisMonth:
		return monthSpan(year, month, month, loc), nil
	case PresetLastMonth:
		return monthSpan(year, month-1, month-1, loc), nil
	case PresetTomorrow:
		tm := t.AddDate(0, 0, 1)
		return Range{From: tm, To: tm}, nil
	case PresetNextWeek:
		return Range{From: t, To: t.AddDate(0, 0, 6)}, nil
	case PresetNextMonth:
		return monthSpan(year, month+1, month+1, loc), nil
	case PresetNext3Months:
		return monthSpan(year, month+1, month+3, loc), nil
	case PresetNext6Months:
		return monthSpan(year, month+1, month+6, loc), nil
	case PresetNextYear:
		return Range{
			From: time.Date(year+1, time.January, 1, 0, 0, 0, 0, loc),
			To:   time.Date(year+1, time.December, 31, 0, 0, 0, 0, loc),
		}, nil
	default:
		return Range{}, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}
}

// ParsePreset matches a preset name case-insensitively.
func ParsePreset(name string) (Preset, bool) {
	trimmed := strings.TrimSpace(name)
	for _, p := range []Preset{
		PresetToday, PresetYesterday, PresetLast7Days, PresetLast30Days,
		PresetThisMonth, PresetLastMonth, PresetTomorrow, PresetNextWeek,
		PresetNextMonth, PresetNext3Months, PresetNext6Months, PresetNextYear,
	} {
		if strings.EqualFold(trimmed, string(p)) {
			return p, true
		}
	}
	return "", false
}

// Midnight truncates to the start of the calendar day in t's location.
func Midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// IsZero reports whether the range carries no bounds. The zero Range stands
// for "no filter": the back-office then answers with its own default horizon.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// LegacyFrom formats the lower bound for the back-office query string. A
// missing bound formats as the empty string.
func (r Range) LegacyFrom() string {
	if r.From.IsZero() {
		return ""
	}
	return r.From.Format(LegacyLayout)
}

// LegacyTo formats the upper bound for the back-office query string. A
// missing bound formats as the empty string.
func (r Range) LegacyTo() string {
	if r.To.IsZero() {
		return ""
	}
	return r.To.Format(LegacyLayout)
}

// Days returns the inclusive span length in calendar days.
func (r Range) Days() int {
	return int(r.To.Sub(r.From).Hours()/24) + 1
}

// monthSpan covers the first day of the `first` month through the last day of
// the `last` month. Out-of-range month values normalize the year, matching
// time.Date semantics.
func monthSpan(year int, first, last time.Month, loc *time.Location) Range {
	return Range{
		From: time.Date(year, first, 1, 0, 0, 0, 0, loc),
		To:   time.Date(year, last+1, 0, 0, 0, 0, 0, loc),
	}
}
