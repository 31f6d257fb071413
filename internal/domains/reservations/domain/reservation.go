package domain

import (
	"sort"
	"strings"
	"time"
)

// Tab is the screen bucket a reservation lands in.
type Tab string

const (
	TabConfirmed   Tab = "CONFIRMED"
	TabUnconfirmed Tab = "UNCONFIRMED"
	TabRejected    Tab = "REJECTED"
)

// TabForStatus maps the backend's status codes and words onto a tab.
// Anything unrecognized counts as pending.
func TabForStatus(status string) Tab {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "1", "accepted":
		return TabConfirmed
	case "-1", "rejected":
		return TabRejected
	default:
		return TabUnconfirmed
	}
}

// Record is one reservation, normalized for display.
type Record struct {
	ID       string
	Name     string
	Phone    string
	Email    string
	Guests   int
	Date     string
	Time     string
	Platform string
	Status   string
	Tab      Tab

	// SortKey is the naive wall-clock instant parsed from Date and Time.
	// Records the backend dated unparseably carry the zero instant and
	// therefore sort first.
	SortKey time.Time
}

// dateLayout and the two timeLayouts cover the backend's display formats.
const dateLayout = "02-01-2006"

var timeLayouts = []string{"3:04 PM", "15:04"}

// ParseSortKey combines the display date and time into a sortable instant.
// The wall-clock is taken at face value; no timezone conversion happens.
// Unparseable input yields the zero time.
func ParseSortKey(date, clock string) time.Time {
	day, err := time.Parse(dateLayout, strings.TrimSpace(date))
	if err != nil {
		return time.Time{}
	}
	clock = strings.ToUpper(strings.TrimSpace(clock))
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, clock); err == nil {
			return day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
		}
	}
	return day
}

// SortRecords orders records chronologically by their sort key. The sort is
// stable so equal keys keep arrival order.
func SortRecords(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SortKey.Before(records[j].SortKey)
	})
}

// List is the normalized reservation listing, already split by tab.
type List struct {
	Confirmed   []Record
	Unconfirmed []Record
	Rejected    []Record
	EmptyReason string
}

// Split distributes records into their tabs, sorting each tab
// chronologically.
func Split(records []Record) List {
	list := List{
		Confirmed:   []Record{},
		Unconfirmed: []Record{},
		Rejected:    []Record{},
	}
	for _, r := range records {
		switch r.Tab {
		case TabConfirmed:
			list.Confirmed = append(list.Confirmed, r)
		case TabRejected:
			list.Rejected = append(list.Rejected, r)
		default:
			list.Unconfirmed = append(list.Unconfirmed, r)
		}
	}
	SortRecords(list.Confirmed)
	SortRecords(list.Unconfirmed)
	SortRecords(list.Rejected)
	return list
}

// Settings are the restaurant's reservation toggles.
type Settings struct {
	AcceptReservations bool
	AutoConfirm        bool
}
