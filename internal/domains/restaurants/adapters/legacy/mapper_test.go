package legacy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	legacyclient "github.com/enayetchefonline/partner-gateway/internal/clients/http/legacy"
)

func TestNormalizeSummaryMissingFieldsStayZero(t *testing.T) {
	var payload legacyclient.SummaryPayload
	require.NoError(t, json.Unmarshal([]byte(`{
		"status": "1",
		"details": {"total_amount": "1204.50", "total_order": "89", "cash": ""}
	}`), &payload))

	summary := NormalizeSummary(&payload)

	assert.Equal(t, "1204.5", summary.TotalAmount.String())
	assert.Equal(t, 89, summary.TotalOrders)
	assert.True(t, summary.CashAmount.IsZero())
	assert.Zero(t, summary.DeliveryOrders)
}

func TestNormalizeSummaryFailure(t *testing.T) {
	var payload legacyclient.SummaryPayload
	require.NoError(t, json.Unmarshal([]byte(`{"status": "0"}`), &payload))

	summary := NormalizeSummary(&payload)

	assert.True(t, summary.TotalAmount.IsZero())
	assert.Zero(t, summary.TotalOrders)
}

func TestNormalizeTimetable(t *testing.T) {
	var payload legacyclient.OpeningHoursPayload
	require.NoError(t, json.Unmarshal([]byte(`{
		"status": "1",
		"opening_shift": [
			{"day_no": "1", "day_name": "Monday", "shift": [
				{"id": "55", "shift_no": "1", "opening_time": "17:00", "closing_time": "22:30"}
			]},
			{"day_no": "2", "day_name": "Tuesday", "shift": "closed"}
		]
	}`), &payload))

	days := NormalizeTimetable(&payload)

	require.Len(t, days, 2)
	require.Len(t, days[0].Shifts, 1)
	assert.Equal(t, "17:00", days[0].Shifts[0].Opens)
	assert.Equal(t, 1, days[0].Shifts[0].ShiftNo)
	assert.Empty(t, days[1].Shifts)
}

func TestNormalizePolicySchedule(t *testing.T) {
	var payload legacyclient.OpeningHoursPayload
	require.NoError(t, json.Unmarshal([]byte(`{
		"status": "1",
		"opening_shift": [
			{"day_no": "5", "day_name": "Friday", "shift": [
				{"id": "9", "policy_id": "2", "minutes": "45"}
			]}
		]
	}`), &payload))

	days := NormalizePolicySchedule(&payload)

	require.Len(t, days, 1)
	require.Len(t, days[0].Entries, 1)
	assert.Equal(t, 45, days[0].Entries[0].Minutes)
	assert.Equal(t, "2", days[0].Entries[0].PolicyID)
}
