// Package legacy normalizes back-office reservation payloads. The backend
// answers funId=86 in two shapes depending on deployment age: a structured
// reservation.list tree bucketed by decision and horizon, and a flat
// reservation_list array. Both collapse into the same tabbed listing.
package legacy

import (
	"strings"

	legacyclient "github.com/enayetchefonline/partner-gateway/internal/clients/http/legacy"
	"github.com/enayetchefonline/partner-gateway/internal/domains/reservations/domain"
)

const defaultEmptyReason = "No reservations found."

// Per-bucket status defaults for structured responses. Records inside a
// bucket often arrive without their own status field; the bucket itself
// carries the decision.
const (
	statusAccepted = "1"
	statusPending  = "3"
	statusRejected = "-1"
)

// NormalizeReservationList converts either response shape into the tabbed
// listing. The structured tree wins when present; otherwise the flat list
// is used; a failure flag or neither shape yields an empty listing.
func NormalizeReservationList(payload *legacyclient.ReservationListPayload) domain.List {
	if payload == nil {
		return emptyList(defaultEmptyReason)
	}
	if !payload.Status.OK() {
		reason := payload.Msg.Str()
		if reason == "" {
			reason = defaultEmptyReason
		}
		return emptyList(reason)
	}

	var records []domain.Record
	switch {
	case payload.Reservation != nil && payload.Reservation.List != nil:
		records = fromBuckets(*payload.Reservation.List)
	default:
		records = fromFlat(payload.FlatRecords())
	}

	list := domain.Split(records)
	if len(records) == 0 {
		list.EmptyReason = defaultEmptyReason
	}
	return list
}

// In the structured shape the bucket decides the tab. A record's own status
// field is kept for display but never moves it out of its bucket.
func fromBuckets(buckets legacyclient.ReservationBucketsPayload) []domain.Record {
	var records []domain.Record
	records = appendGroup(records, buckets.Accepted, statusAccepted, domain.TabConfirmed)
	records = appendGroup(records, buckets.Pending, statusPending, domain.TabUnconfirmed)
	records = appendGroup(records, buckets.Rejected, statusRejected, domain.TabRejected)
	return records
}

func appendGroup(records []domain.Record, group legacyclient.BucketGroupPayload, fallbackStatus string, tab domain.Tab) []domain.Record {
	for _, slice := range []legacyclient.BucketSlicePayload{group.Today, group.Tomorrow, group.Upcoming} {
		for _, rec := range slice.Records {
			r := toRecord(rec, fallbackStatus)
			r.Tab = tab
			records = append(records, r)
		}
	}
	return records
}

func fromFlat(flat []legacyclient.ReservationPayload) []domain.Record {
	records := make([]domain.Record, 0, len(flat))
	for _, rec := range flat {
		records = append(records, toRecord(rec, statusPending))
	}
	return records
}

func toRecord(rec legacyclient.ReservationPayload, fallbackStatus string) domain.Record {
	status := rec.StatusOrDefault(fallbackStatus)
	date := rec.ReservationDate.Str()
	clock := rec.ReservationTime.Str()
	return domain.Record{
		ID:       rec.ID.Str(),
		Name:     fullName(rec),
		Phone:    phone(rec),
		Email:    rec.Email.Str(),
		Guests:   rec.NoOfGuest.Int(),
		Date:     date,
		Time:     clock,
		Platform: rec.Platform.Str(),
		Status:   status,
		Tab:      domain.TabForStatus(status),
		SortKey:  domain.ParseSortKey(date, clock),
	}
}

func fullName(rec legacyclient.ReservationPayload) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{rec.Title.Str(), rec.FirstName.Str(), rec.LastName.Str()} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func phone(rec legacyclient.ReservationPayload) string {
	if m := rec.Mobile.Str(); m != "" {
		return m
	}
	return rec.Telephone.Str()
}

func emptyList(reason string) domain.List {
	return domain.List{
		Confirmed:   []domain.Record{},
		Unconfirmed: []domain.Record{},
		Rejected:    []domain.Record{},
		EmptyReason: reason,
	}
}
