package mapper

import (
	"github.com/shopspring/decimal"

	"github.com/enayetchefonline/partner-gateway/internal/domains/orders/domain"
)

// Order is the HTTP representation of one order row in a ranged listing.
type Order struct {
	OrderNo      string          `json:"orderNo"`
	CustomerName string          `json:"customerName,omitempty"`
	Postcode     string          `json:"postcode,omitempty"`
	Type         string          `json:"type,omitempty"`
	Payment      string          `json:"payment,omitempty"`
	GrandTotal   decimal.Decimal `json:"grandTotal"`
	OrderDate    string          `json:"orderDate,omitempty"`
	TimeIn       string          `json:"timeIn,omitempty"`
	TimeOut      string          `json:"timeOut,omitempty"`
}

// Summary is the HTTP representation of the range aggregates.
type Summary struct {
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	CashAmount       decimal.Decimal `json:"cashAmount"`
	CardAmount       decimal.Decimal `json:"cardAmount"`
	TotalOrders      int             `json:"totalOrders"`
	CollectionOrders int             `json:"collectionOrders"`
	DeliveryOrders   int             `json:"deliveryOrders"`
}

// OrderList is the HTTP response of the ranged listing.
type OrderList struct {
	Orders      []Order `json:"orders"`
	Summary     Summary `json:"summary"`
	EmptyReason string  `json:"emptyReason,omitempty"`
}

// LineItem is one order line in the detail view.
type LineItem struct {
	Name  string          `json:"name"`
	Qty   int             `json:"qty"`
	Price decimal.Decimal `json:"price"`
}

// OrderDetail is the HTTP representation of the single-order view.
type OrderDetail struct {
	Name     string          `json:"name"`
	Address  string          `json:"address"`
	Phone    string          `json:"phone,omitempty"`
	Date     string          `json:"date"`
	TimeIn   string          `json:"timeIn"`
	TimeOut  string          `json:"timeOut"`
	Type     string          `json:"type"`
	Payment  string          `json:"payment"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
	Items    []LineItem      `json:"items"`
}

// FromOrderList maps the normalized listing into its HTTP shape.
func FromOrderList(list *domain.OrderList) OrderList {
	if list == nil {
		return OrderList{Orders: []Order{}}
	}
	orders := make([]Order, 0, len(list.Orders))
	for _, rec := range list.Orders {
		orders = append(orders, Order{
			OrderNo:      rec.OrderNo,
			CustomerName: rec.CustomerName,
			Postcode:     rec.Postcode,
			Type:         rec.RawType,
			Payment:      rec.RawPayment,
			GrandTotal:   rec.GrandTotal,
			OrderDate:    rec.OrderDate,
			TimeIn:       rec.TimeIn,
			TimeOut:      rec.TimeOut,
		})
	}
	return OrderList{
		Orders: orders,
		Summary: Summary{
			TotalAmount:      list.Summary.TotalAmount,
			CashAmount:       list.Summary.CashAmount,
			CardAmount:       list.Summary.CardAmount,
			TotalOrders:      list.Summary.TotalOrders,
			CollectionOrders: list.Summary.CollectionOrders,
			DeliveryOrders:   list.Summary.DeliveryOrders,
		},
		EmptyReason: list.EmptyReason,
	}
}

// FromOrderDetail maps the single-order view into its HTTP shape.
func FromOrderDetail(detail *domain.OrderDetail) OrderDetail {
	if detail == nil {
		return OrderDetail{Items: []LineItem{}}
	}
	items := make([]LineItem, 0, len(detail.Items))
	for _, item := range detail.Items {
		items = append(items, LineItem{Name: item.Name, Qty: item.Qty, Price: item.Price})
	}
	return OrderDetail{
		Name:     detail.Name,
		Address:  detail.Address,
		Phone:    detail.Phone,
		Date:     detail.Date,
		TimeIn:   detail.TimeIn,
		TimeOut:  detail.TimeOut,
		Type:     detail.Type,
		Payment:  detail.Payment,
		Subtotal: detail.Subtotal,
		Discount: detail.Discount,
		Total:    detail.Total,
		Items:    items,
	}
}
