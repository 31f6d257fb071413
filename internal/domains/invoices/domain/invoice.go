package domain

import "strings"

// Invoice is one weekly commission invoice row.
type Invoice struct {
	ID        string
	WeekNo    string
	InvoiceNo string
	Year      string
}

// Filter narrows an invoice listing. Empty fields match everything.
type Filter struct {
	Year   string
	WeekNo string
}

// Match reports whether the invoice satisfies the filter.
func (f Filter) Match(inv Invoice) bool {
	if y := strings.TrimSpace(f.Year); y != "" && y != inv.Year {
		return false
	}
	if w := strings.TrimSpace(f.WeekNo); w != "" && w != inv.WeekNo {
		return false
	}
	return true
}

// Apply keeps only the invoices matching the filter.
func (f Filter) Apply(invoices []Invoice) []Invoice {
	out := make([]Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if f.Match(inv) {
			out = append(out, inv)
		}
	}
	return out
}
