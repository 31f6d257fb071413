package legacy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	legacyclient "github.com/enayetchefonline/partner-gateway/internal/clients/http/legacy"
	"github.com/enayetchefonline/partner-gateway/internal/domains/reservations/domain"
)

func decodeReservationList(t *testing.T, raw string) *legacyclient.ReservationListPayload {
	t.Helper()
	var payload legacyclient.ReservationListPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return &payload
}

func TestNormalizeStructuredBuckets(t *testing.T) {
	payload := decodeReservationList(t, `{
		"status": "1",
		"reservation": {"list": {
			"accepted": {
				"today": [{"id": "10", "first_name": "Amy", "reservation_date": "02-03-2026", "reservation_time": "6:40 PM"}],
				"upcoming": {"list": [{"id": "11", "first_name": "Ben", "reservation_date": "05-03-2026", "reservation_time": "1:00 AM"}]}
			},
			"pending": {
				"today": [{"id": "12", "first_name": "Cal"}]
			},
			"rejected": {
				"tomorrow": [{"id": "13", "first_name": "Dee", "status": "-1"}]
			}
		}}
	}`)

	list := NormalizeReservationList(payload)

	require.Len(t, list.Confirmed, 2)
	require.Len(t, list.Unconfirmed, 1)
	require.Len(t, list.Rejected, 1)
	assert.Equal(t, "1", list.Confirmed[0].Status)
	assert.Equal(t, "3", list.Unconfirmed[0].Status)
	assert.Equal(t, "-1", list.Rejected[0].Status)
	assert.Empty(t, list.EmptyReason)
}

func TestNormalizeStructuredBucketWinsOverRecordStatus(t *testing.T) {
	payload := decodeReservationList(t, `{
		"status": "1",
		"reservation": {"list": {
			"accepted": {"today": [{"id": "10", "status": "3"}]},
			"pending": {"today": [{"id": "11", "status": "1"}]}
		}}
	}`)

	list := NormalizeReservationList(payload)

	require.Len(t, list.Confirmed, 1)
	require.Len(t, list.Unconfirmed, 1)
	assert.Empty(t, list.Rejected)
	// The record keeps its own status for display; placement follows the bucket.
	assert.Equal(t, "10", list.Confirmed[0].ID)
	assert.Equal(t, "3", list.Confirmed[0].Status)
	assert.Equal(t, "11", list.Unconfirmed[0].ID)
	assert.Equal(t, "1", list.Unconfirmed[0].Status)
}

func TestNormalizeFlatListStatusWords(t *testing.T) {
	payload := decodeReservationList(t, `{
		"status": "1",
		"reservation_list": [
			{"id": "1", "status": "accepted"},
			{"id": "2", "status": "Rejected"},
			{"id": "3", "status": "0"},
			{"id": "4"}
		]
	}`)

	list := NormalizeReservationList(payload)

	require.Len(t, list.Confirmed, 1)
	require.Len(t, list.Rejected, 1)
	require.Len(t, list.Unconfirmed, 2)
	assert.Equal(t, "3", list.Unconfirmed[1].Status)
}

func TestNormalizeSortsWithinTab(t *testing.T) {
	payload := decodeReservationList(t, `{
		"status": "1",
		"reservation_list": [
			{"id": "late", "status": "1", "reservation_date": "02-03-2026", "reservation_time": "11:00 PM"},
			{"id": "noon", "status": "1", "reservation_date": "02-03-2026", "reservation_time": "6:40 PM"},
			{"id": "early", "status": "1", "reservation_date": "02-03-2026", "reservation_time": "1:00 AM"},
			{"id": "undated", "status": "1"}
		]
	}`)

	list := NormalizeReservationList(payload)

	require.Len(t, list.Confirmed, 4)
	assert.Equal(t, "undated", list.Confirmed[0].ID)
	assert.Equal(t, "early", list.Confirmed[1].ID)
	assert.Equal(t, "noon", list.Confirmed[2].ID)
	assert.Equal(t, "late", list.Confirmed[3].ID)
}

func TestNormalizeFailureFlag(t *testing.T) {
	payload := decodeReservationList(t, `{"status": "Failed", "msg": "No data"}`)

	list := NormalizeReservationList(payload)

	assert.Empty(t, list.Confirmed)
	assert.Empty(t, list.Unconfirmed)
	assert.Empty(t, list.Rejected)
	assert.Equal(t, "No data", list.EmptyReason)
}

func TestNormalizeNameAndPhone(t *testing.T) {
	payload := decodeReservationList(t, `{
		"status": "1",
		"reservation_list": [
			{"id": "1", "title": "Mr", "first_name": "Sam", "last_name": "Roy", "telephone": "0113 111", "no_of_guest": "4"}
		]
	}`)

	list := NormalizeReservationList(payload)

	require.Len(t, list.Unconfirmed, 1)
	rec := list.Unconfirmed[0]
	assert.Equal(t, "Mr Sam Roy", rec.Name)
	assert.Equal(t, "0113 111", rec.Phone)
	assert.Equal(t, 4, rec.Guests)
}

func TestParseSortKeyFallsBackToMidnight(t *testing.T) {
	withTime := domain.ParseSortKey("02-03-2026", "9:15 AM")
	dayOnly := domain.ParseSortKey("02-03-2026", "whenever")
	unparseable := domain.ParseSortKey("soon", "9:15 AM")

	assert.True(t, dayOnly.Before(withTime))
	assert.True(t, unparseable.IsZero())
}
