// Package legacy normalizes back-office order payloads into the stable view
// models the gateway serves. The backend omits aggregates and varies field
// spellings between deployments, so every mapping here is defensive:
// malformed input degrades to empty collections and zeroed numbers, never an
// error.
package legacy

import (
	"strings"

	"github.com/shopspring/decimal"

	legacyclient "github.com/enayetchefonline/partner-gateway/internal/clients/http/legacy"
	"github.com/enayetchefonline/partner-gateway/internal/domains/orders/domain"
	"github.com/enayetchefonline/partner-gateway/internal/shared/flexjson"
)

const defaultEmptyReason = "No orders found."

// NormalizeOrderList converts the funId=33 payload into records plus a
// summary. Server aggregates win when non-zero; each missing-or-zero
// aggregate falls back independently to a value derived from the records.
func NormalizeOrderList(payload *legacyclient.OrderListPayload) domain.OrderList {
	if payload == nil {
		return emptyList(defaultEmptyReason)
	}
	records, ok := payload.OrderRecords()
	if !payload.Status.OK() || !ok {
		reason := payload.Msg.Str()
		if reason == "" {
			reason = defaultEmptyReason
		}
		return emptyList(reason)
	}

	orders := make([]domain.OrderRecord, 0, len(records))
	for _, rec := range records {
		orders = append(orders, toOrderRecord(rec))
	}

	summary := domain.OrderSummary{
		TotalAmount:      payload.Total.Decimal,
		TotalOrders:      payload.TotalOrder.Int(),
		CollectionOrders: payload.TotalCollectionOrder.Int(),
		DeliveryOrders:   payload.TotalDeliveryOrder.Int(),
	}
	summary.CashAmount, summary.CardAmount = paymentSplit(payload.Payment)
	summary = summary.FillZeroFrom(domain.DeriveSummary(orders))

	list := domain.OrderList{Orders: orders, Summary: summary}
	if len(orders) == 0 {
		list.EmptyReason = defaultEmptyReason
	}
	return list
}

// NormalizeOrderDetail builds the single-order view from a list record.
func NormalizeOrderDetail(rec legacyclient.OrderPayload) domain.OrderDetail {
	detail := domain.OrderDetail{
		Name:     pick("Customer", rec.CustomerName, rec.Name, rec.Customer),
		Address:  displayAddress(rec),
		Phone:    pick("", rec.CustomerMobile, rec.Phone, rec.CustomerPhone),
		Date:     pick("—", rec.OrderDate, rec.Date),
		TimeIn:   pick("—", rec.OrderIn),
		TimeOut:  pick("—", rec.OrderOut),
		Type:     pick("—", rec.OrderType, rec.Type),
		Payment:  pick("—", rec.PaymentMethod, rec.Payment),
		Subtotal: firstValidDecimal(rec.SubTotal, rec.Subtotal),
		Discount: firstValidDecimal(rec.Discount, rec.DiscountAmount),
		Total:    firstValidDecimal(rec.GrandTotal, rec.Total),
		Items:    lineItems(rec),
	}
	return detail.FillComputedTotals()
}

func toOrderRecord(rec legacyclient.OrderPayload) domain.OrderRecord {
	return domain.OrderRecord{
		OrderNo:      rec.OrderNo.Str(),
		CustomerName: rec.CustomerName.Str(),
		Postcode:     rec.Postcode.Str(),
		Type:         domain.ParseOrderType(rec.OrderType.Str()),
		Payment:      domain.ParsePaymentMethod(rec.PaymentMethod.Str()),
		GrandTotal:   rec.GrandTotal.Decimal,
		OrderDate:    rec.OrderDate.Str(),
		TimeIn:       rec.OrderIn.Str(),
		TimeOut:      rec.OrderOut.Str(),
		RawType:      rec.OrderType.Str(),
		RawPayment:   rec.PaymentMethod.Str(),
	}
}

// paymentSplit picks the cash and card aggregates out of the per-method
// payment array, matching method names case-insensitively. The first entry
// per method wins; duplicates are ignored.
func paymentSplit(entries []legacyclient.PaymentSplitPayload) (cash, card decimal.Decimal) {
	cash = decimal.Zero
	card = decimal.Zero
	var cashSet, cardSet bool
	for _, entry := range entries {
		switch strings.ToLower(strings.TrimSpace(entry.PaymentMethod.Str())) {
		case "cash":
			if !cashSet {
				cash = entry.Amount.Decimal
				cashSet = true
			}
		case "card":
			if !cardSet {
				card = entry.Amount.Decimal
				cardSet = true
			}
		}
	}
	return cash, card
}

// displayAddress joins the non-empty address candidates with commas. With no
// usable parts it falls back to a placeholder dash.
func displayAddress(rec legacyclient.OrderPayload) string {
	parts := make([]string, 0, 6)
	for _, candidate := range []flexjson.String{rec.Address, rec.Address1, rec.Address2, rec.City, rec.Town, rec.Postcode} {
		if v := strings.TrimSpace(candidate.Str()); v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return "—"
	}
	return strings.Join(parts, ", ")
}

func lineItems(rec legacyclient.OrderPayload) []domain.LineItem {
	raw := rec.Lines()
	items := make([]domain.LineItem, 0, len(raw))
	for _, it := range raw {
		qty := 1
		if q, ok := firstValidInt(it.Qty, it.Quantity, it.ItemQty); ok {
			qty = q
		}
		items = append(items, domain.LineItem{
			Name: pick("Item", it.Name, it.ItemName, it.ProductName, it.MenuName, it.Title),
			Qty:  qty,
			// Some deployments send a unit price, some a line total; the
			// price-ish spellings win when present.
			Price: firstValidDecimal(it.Price, it.ItemPrice, it.UnitPrice, it.Total),
		})
	}
	return items
}

// pick returns the first candidate with non-blank content, else fallback.
func pick(fallback string, candidates ...flexjson.String) string {
	for _, c := range candidates {
		if strings.TrimSpace(c.Str()) != "" {
			return c.Str()
		}
	}
	return fallback
}

func firstValidDecimal(values ...flexjson.Decimal) decimal.Decimal {
	for _, v := range values {
		if v.Valid {
			return v.Decimal
		}
	}
	return decimal.Zero
}

func firstValidInt(values ...flexjson.Int) (int, bool) {
	for _, v := range values {
		if v.Valid {
			return v.Int(), true
		}
	}
	return 0, false
}

func emptyList(reason string) domain.OrderList {
	return domain.OrderList{
		Orders:      []domain.OrderRecord{},
		Summary:     domain.ZeroSummary(),
		EmptyReason: reason,
	}
}
