package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// OrderType classifies how an order reaches the customer.
type OrderType string

const (
	OrderTypeCollection OrderType = "Collection"
	OrderTypeDelivery   OrderType = "Delivery"
	OrderTypeUnknown    OrderType = ""
)

// ParseOrderType matches the backend's free-form order type case-insensitively.
func ParseOrderType(raw string) OrderType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "collection":
		return OrderTypeCollection
	case "delivery":
		return OrderTypeDelivery
	default:
		return OrderTypeUnknown
	}
}

// PaymentMethod classifies how an order was paid.
type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "Cash"
	PaymentCard    PaymentMethod = "Card"
	PaymentUnknown PaymentMethod = ""
)

// ParsePaymentMethod matches the backend's free-form payment method
// case-insensitively.
func ParsePaymentMethod(raw string) PaymentMethod {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "cash":
		return PaymentCash
	case "card":
		return PaymentCard
	default:
		return PaymentUnknown
	}
}

// OrderRecord is one order in a ranged listing. Timestamps are opaque
// display strings; the backend renders them and nothing here parses them.
type OrderRecord struct {
	OrderNo      string
	CustomerName string
	Postcode     string
	Type         OrderType
	Payment      PaymentMethod
	GrandTotal   decimal.Decimal
	OrderDate    string
	TimeIn       string
	TimeOut      string

	// RawType and RawPayment keep the backend's original spellings for
	// display, since the parsed enums drop unknown values.
	RawType    string
	RawPayment string
}

// OrderSummary aggregates a date range of orders.
type OrderSummary struct {
	TotalAmount      decimal.Decimal
	CashAmount       decimal.Decimal
	CardAmount       decimal.Decimal
	TotalOrders      int
	CollectionOrders int
	DeliveryOrders   int
}

// ZeroSummary returns a summary with explicit zero decimals, so JSON output
// is stable even when nothing was aggregated.
func ZeroSummary() OrderSummary {
	return OrderSummary{
		TotalAmount: decimal.Zero,
		CashAmount:  decimal.Zero,
		CardAmount:  decimal.Zero,
	}
}

// DeriveSummary recomputes every aggregate from the records themselves.
// Sums are order-independent.
func DeriveSummary(records []OrderRecord) OrderSummary {
	s := ZeroSummary()
	s.TotalOrders = len(records)
	for _, r := range records {
		s.TotalAmount = s.TotalAmount.Add(r.GrandTotal)
		switch r.Payment {
		case PaymentCash:
			s.CashAmount = s.CashAmount.Add(r.GrandTotal)
		case PaymentCard:
			s.CardAmount = s.CardAmount.Add(r.GrandTotal)
		}
		switch r.Type {
		case OrderTypeCollection:
			s.CollectionOrders++
		case OrderTypeDelivery:
			s.DeliveryOrders++
		}
	}
	return s
}

// FillZeroFrom replaces every zero field with the corresponding derived
// value. A present-but-zero server aggregate is indistinguishable from a
// missing one, by the backend's contract, so both fall back.
func (s OrderSummary) FillZeroFrom(derived OrderSummary) OrderSummary {
	if s.TotalAmount.IsZero() {
		s.TotalAmount = derived.TotalAmount
	}
	if s.CashAmount.IsZero() {
		s.CashAmount = derived.CashAmount
	}
	if s.CardAmount.IsZero() {
		s.CardAmount = derived.CardAmount
	}
	if s.TotalOrders == 0 {
		s.TotalOrders = derived.TotalOrders
	}
	if s.CollectionOrders == 0 {
		s.CollectionOrders = derived.CollectionOrders
	}
	if s.DeliveryOrders == 0 {
		s.DeliveryOrders = derived.DeliveryOrders
	}
	return s
}

// OrderList is the normalized result of one ranged listing fetch.
// EmptyReason carries the server's message when the list came back empty or
// the response signalled failure; it is presentation state, not an error.
type OrderList struct {
	Orders      []OrderRecord
	Summary     OrderSummary
	EmptyReason string
}

// LineItem is one order line.
type LineItem struct {
	Name  string
	Qty   int
	Price decimal.Decimal
}

// OrderDetail is the single-order view.
type OrderDetail struct {
	Name     string
	Address  string
	Phone    string
	Date     string
	TimeIn   string
	TimeOut  string
	Type     string
	Payment  string
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
	Items    []LineItem
}

// FillComputedTotals derives subtotal and total from line items, but only
// when subtotal, discount, and total are all zero. A lone non-zero discount
// suppresses recomputation; that is the contract the listing screens rely
// on, not an oversight to fix here.
func (d OrderDetail) FillComputedTotals() OrderDetail {
	if !d.Subtotal.IsZero() || !d.Total.IsZero() || !d.Discount.IsZero() {
		return d
	}
	if len(d.Items) == 0 {
		return d
	}
	subtotal := decimal.Zero
	for _, item := range d.Items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Qty))))
	}
	d.Subtotal = subtotal
	d.Total = subtotal.Sub(d.Discount)
	return d
}
