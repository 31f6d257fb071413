package legacy

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	legacyclient "github.com/enayetchefonline/partner-gateway/internal/clients/http/legacy"
	"github.com/enayetchefonline/partner-gateway/internal/domains/orders/domain"
)

func decodeOrderList(t *testing.T, raw string) *legacyclient.OrderListPayload {
	t.Helper()
	var payload legacyclient.OrderListPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return &payload
}

func TestNormalizeOrderListServerAggregatesWin(t *testing.T) {
	payload := decodeOrderList(t, `{
		"status": "1",
		"orders": [
			{"order_no": "A1", "order_type": "Delivery", "payment_method": "Cash", "grand_total": "10.00"},
			{"order_no": "A2", "order_type": "Collection", "payment_method": "Card", "grand_total": "20.00"}
		],
		"total": "99.50",
		"total_order": "7",
		"payment": [
			{"payment_method": "Cash", "amount": "40.00"},
			{"payment_method": "CARD", "amount": "59.50"}
		]
	}`)

	list := NormalizeOrderList(payload)

	assert.Len(t, list.Orders, 2)
	assert.Equal(t, "99.5", list.Summary.TotalAmount.String())
	assert.Equal(t, 7, list.Summary.TotalOrders)
	assert.Equal(t, "40", list.Summary.CashAmount.String())
	assert.Equal(t, "59.5", list.Summary.CardAmount.String())
}

func TestNormalizeOrderListFirstPaymentEntryPerMethodWins(t *testing.T) {
	payload := decodeOrderList(t, `{
		"status": "1",
		"orders": [{"order_no": "A1", "payment_method": "Cash", "grand_total": "10.00"}],
		"total": "10.00",
		"total_order": "1",
		"payment": [
			{"payment_method": "Cash", "amount": "40.00"},
			{"payment_method": "cash", "amount": "1.00"},
			{"payment_method": "Card", "amount": "59.50"},
			{"payment_method": "CARD", "amount": "2.00"}
		]
	}`)

	list := NormalizeOrderList(payload)

	assert.Equal(t, "40", list.Summary.CashAmount.String())
	assert.Equal(t, "59.5", list.Summary.CardAmount.String())
}

func TestNormalizeOrderListZeroAggregatesFallBackPerField(t *testing.T) {
	payload := decodeOrderList(t, `{
		"status": "1",
		"orders": [
			{"order_no": "A1", "order_type": "Delivery", "payment_method": "Cash", "grand_total": "10.00"},
			{"order_no": "A2", "order_type": "Collection", "payment_method": "Card", "grand_total": "20.50"},
			{"order_no": "A3", "order_type": "Collection", "payment_method": "Card", "grand_total": "5.00"}
		],
		"total": "0",
		"total_order": 3,
		"payment": []
	}`)

	list := NormalizeOrderList(payload)

	assert.Equal(t, "35.5", list.Summary.TotalAmount.String())
	assert.Equal(t, "10", list.Summary.CashAmount.String())
	assert.Equal(t, "25.5", list.Summary.CardAmount.String())
	assert.Equal(t, 3, list.Summary.TotalOrders)
	assert.Equal(t, 2, list.Summary.CollectionOrders)
	assert.Equal(t, 1, list.Summary.DeliveryOrders)
}

func TestNormalizeOrderListFailureFlagIgnoresStrayOrders(t *testing.T) {
	payload := decodeOrderList(t, `{
		"status": "0",
		"msg": "No record found",
		"orders": [{"order_no": "A1", "grand_total": "10.00"}]
	}`)

	list := NormalizeOrderList(payload)

	assert.Empty(t, list.Orders)
	assert.Equal(t, "No record found", list.EmptyReason)
	assert.True(t, list.Summary.TotalAmount.IsZero())
	assert.Zero(t, list.Summary.TotalOrders)
}

func TestNormalizeOrderListNonArrayOrders(t *testing.T) {
	payload := decodeOrderList(t, `{"status": "1", "orders": "none"}`)

	list := NormalizeOrderList(payload)

	assert.Empty(t, list.Orders)
	assert.NotEmpty(t, list.EmptyReason)
}

func TestNormalizeOrderListNil(t *testing.T) {
	list := NormalizeOrderList(nil)

	assert.Empty(t, list.Orders)
	assert.Equal(t, "No orders found.", list.EmptyReason)
}

func TestDeriveSummaryOrderIndependent(t *testing.T) {
	records := []domain.OrderRecord{
		{Payment: domain.PaymentCash, Type: domain.OrderTypeDelivery, GrandTotal: decimal.RequireFromString("10.10")},
		{Payment: domain.PaymentCard, Type: domain.OrderTypeCollection, GrandTotal: decimal.RequireFromString("20.20")},
		{Payment: domain.PaymentCash, Type: domain.OrderTypeCollection, GrandTotal: decimal.RequireFromString("30.30")},
		{Payment: domain.PaymentCard, Type: domain.OrderTypeDelivery, GrandTotal: decimal.RequireFromString("40.40")},
	}
	want := domain.DeriveSummary(records)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := append([]domain.OrderRecord(nil), records...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		got := domain.DeriveSummary(shuffled)
		assert.True(t, want.TotalAmount.Equal(got.TotalAmount))
		assert.Equal(t, want.TotalOrders, got.TotalOrders)
		assert.True(t, want.CashAmount.Equal(got.CashAmount))
		assert.True(t, want.CardAmount.Equal(got.CardAmount))
	}
}

func TestNormalizeOrderDetailComputesTotalsFromItems(t *testing.T) {
	var rec legacyclient.OrderPayload
	require.NoError(t, json.Unmarshal([]byte(`{
		"order_no": "B9",
		"customer_name": "Pat",
		"items": [
			{"name": "Korma", "qty": "2", "price": "10.00"},
			{"name": "Rice", "price": "5.00"}
		]
	}`), &rec))

	detail := NormalizeOrderDetail(rec)

	require.Len(t, detail.Items, 2)
	assert.Equal(t, 2, detail.Items[0].Qty)
	assert.Equal(t, 1, detail.Items[1].Qty)
	assert.Equal(t, "25", detail.Subtotal.String())
	assert.Equal(t, "25", detail.Total.String())
}

func TestNormalizeOrderDetailKeepsServerTotals(t *testing.T) {
	var rec legacyclient.OrderPayload
	require.NoError(t, json.Unmarshal([]byte(`{
		"order_no": "B9",
		"sub_total": "30.00",
		"grand_total": "27.00",
		"discount": "3.00",
		"items": [{"name": "Korma", "qty": "1", "price": "10.00"}]
	}`), &rec))

	detail := NormalizeOrderDetail(rec)

	assert.Equal(t, "30", detail.Subtotal.String())
	assert.Equal(t, "27", detail.Total.String())
	assert.Equal(t, "3", detail.Discount.String())
}

func TestNormalizeOrderDetailAddressJoinsParts(t *testing.T) {
	var rec legacyclient.OrderPayload
	require.NoError(t, json.Unmarshal([]byte(`{
		"order_no": "C1",
		"address1": "1 High St",
		"city": "  ",
		"town": "Leeds",
		"postcode": "LS1 1AA"
	}`), &rec))

	detail := NormalizeOrderDetail(rec)

	assert.Equal(t, "1 High St, Leeds, LS1 1AA", detail.Address)
}

func TestNormalizeOrderDetailNestedItems(t *testing.T) {
	var rec legacyclient.OrderPayload
	require.NoError(t, json.Unmarshal([]byte(`{
		"order_no": "D1",
		"details": {"items": [{"item_name": "Naan", "item_qty": 3, "item_price": "2.50"}]}
	}`), &rec))

	detail := NormalizeOrderDetail(rec)

	require.Len(t, detail.Items, 1)
	assert.Equal(t, "Naan", detail.Items[0].Name)
	assert.Equal(t, 3, detail.Items[0].Qty)
	assert.Equal(t, "7.5", detail.Subtotal.String())
}
