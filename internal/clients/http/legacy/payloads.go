package legacy

import (
	"encoding/json"

	"github.com/enayetchefonline/partner-gateway/internal/shared/flexjson"
)

// AckPayload is the minimal status+message envelope most write operations
// return. The message key varies between msg and message.
type AckPayload struct {
	Status  flexjson.Flag   `json:"status"`
	Msg     flexjson.String `json:"msg"`
	Message flexjson.String `json:"message"`
}

// Text returns whichever message field the backend populated.
func (a AckPayload) Text() string {
	if a.Msg != "" {
		return a.Msg.Str()
	}
	return a.Message.Str()
}

// LoginPayload is the funId=37 response.
type LoginPayload struct {
	Status  flexjson.Flag   `json:"status"`
	Msg     flexjson.String `json:"msg"`
	Details *LoginDetails   `json:"details"`
}

// LoginDetails carries the authenticated user profile and branch list.
type LoginDetails struct {
	UserID            flexjson.String     `json:"user_id"`
	Username          flexjson.String     `json:"username"`
	RestID            flexjson.String     `json:"rest_id"`
	Email             flexjson.String     `json:"email"`
	MobileNo          flexjson.String     `json:"mobile_no"`
	AssignRestaurants []RestaurantPayload `json:"assign_restaurants"`
}

// RestaurantPayload is one branch assigned to an account.
type RestaurantPayload struct {
	RestaurantID   flexjson.String `json:"restaurant_id"`
	RestaurantName flexjson.String `json:"restaurant_name"`
	Postcode       flexjson.String `json:"postcode"`
}

// OrderListPayload is the funId=33 response. Orders stays raw because the
// backend sometimes sends a non-array placeholder there.
type OrderListPayload struct {
	Status               flexjson.Flag         `json:"status"`
	Msg                  flexjson.String       `json:"msg"`
	Orders               json.RawMessage       `json:"orders"`
	Total                flexjson.Decimal      `json:"total"`
	Payment              []PaymentSplitPayload `json:"payment"`
	TotalOrder           flexjson.Int          `json:"total_order"`
	TotalCollectionOrder flexjson.Int          `json:"total_collection_order"`
	TotalDeliveryOrder   flexjson.Int          `json:"total_delivery_order"`
}

// OrderRecords decodes the raw orders field. ok is false when the field is
// missing or not an array.
func (p OrderListPayload) OrderRecords() (orders []OrderPayload, ok bool) {
	if len(p.Orders) == 0 {
		return nil, false
	}
	if err := json.Unmarshal(p.Orders, &orders); err != nil {
		return nil, false
	}
	return orders, true
}

// PaymentSplitPayload is one entry of the per-method payment aggregate.
type PaymentSplitPayload struct {
	PaymentMethod flexjson.String  `json:"payment_method"`
	Amount        flexjson.Decimal `json:"amount"`
}

// OrderPayload is a single order as it appears in the funId=33 list. The
// same record doubles as the detail view, so all candidate field spellings
// are declared here.
type OrderPayload struct {
	OrderNo      flexjson.String `json:"order_no"`
	CustomerName flexjson.String `json:"customer_name"`
	Name         flexjson.String `json:"name"`
	Customer     flexjson.String `json:"customer"`

	Postcode flexjson.String `json:"postcode"`
	Address  flexjson.String `json:"address"`
	Address1 flexjson.String `json:"address1"`
	Address2 flexjson.String `json:"address2"`
	City     flexjson.String `json:"city"`
	Town     flexjson.String `json:"town"`

	CustomerMobile flexjson.String `json:"customer_mobile"`
	Phone          flexjson.String `json:"phone"`
	CustomerPhone  flexjson.String `json:"customer_phone"`

	OrderDate flexjson.String `json:"order_date"`
	Date      flexjson.String `json:"date"`
	OrderIn   flexjson.String `json:"order_in"`
	OrderOut  flexjson.String `json:"order_out"`

	OrderType     flexjson.String `json:"order_type"`
	Type          flexjson.String `json:"type"`
	PaymentMethod flexjson.String `json:"payment_method"`
	Payment       flexjson.String `json:"payment"`

	GrandTotal     flexjson.Decimal `json:"grand_total"`
	Total          flexjson.Decimal `json:"total"`
	SubTotal       flexjson.Decimal `json:"sub_total"`
	Subtotal       flexjson.Decimal `json:"subtotal"`
	Discount       flexjson.Decimal `json:"discount"`
	DiscountAmount flexjson.Decimal `json:"discount_amount"`

	Items      json.RawMessage `json:"items"`
	OrderItems json.RawMessage `json:"order_items"`
	Details    struct {
		Items json.RawMessage `json:"items"`
	} `json:"details"`
}

// Lines decodes the first line-item array found among the three nesting
// locations the backend has used. Missing or malformed arrays yield nil.
func (p OrderPayload) Lines() []OrderItemPayload {
	for _, raw := range []json.RawMessage{p.Items, p.OrderItems, p.Details.Items} {
		if len(raw) == 0 {
			continue
		}
		var items []OrderItemPayload
		if err := json.Unmarshal(raw, &items); err == nil && items != nil {
			return items
		}
	}
	return nil
}

// OrderItemPayload is one line item, with every name/qty/price spelling the
// backend has been seen to use.
type OrderItemPayload struct {
	Name        flexjson.String `json:"name"`
	ItemName    flexjson.String `json:"item_name"`
	ProductName flexjson.String `json:"product_name"`
	MenuName    flexjson.String `json:"menu_name"`
	Title       flexjson.String `json:"title"`

	Qty      flexjson.Int `json:"qty"`
	Quantity flexjson.Int `json:"quantity"`
	ItemQty  flexjson.Int `json:"item_qty"`

	Price     flexjson.Decimal `json:"price"`
	ItemPrice flexjson.Decimal `json:"item_price"`
	UnitPrice flexjson.Decimal `json:"unit_price"`
	Total     flexjson.Decimal `json:"total"`
}

// ReservationListPayload is the funId=86 response. Two shapes exist: the
// structured reservation.list buckets, and a legacy flat reservation_list.
type ReservationListPayload struct {
	Status      flexjson.Flag   `json:"status"`
	Msg         flexjson.String `json:"msg"`
	Reservation *struct {
		List *ReservationBucketsPayload `json:"list"`
	} `json:"reservation"`
	ReservationList json.RawMessage `json:"reservation_list"`
}

// FlatRecords decodes the legacy flat list; nil when absent or not an array.
func (p ReservationListPayload) FlatRecords() []ReservationPayload {
	if len(p.ReservationList) == 0 {
		return nil
	}
	var records []ReservationPayload
	if err := json.Unmarshal(p.ReservationList, &records); err != nil {
		return nil
	}
	return records
}

// ReservationBucketsPayload groups reservations by decision status.
type ReservationBucketsPayload struct {
	Accepted BucketGroupPayload `json:"accepted"`
	Pending  BucketGroupPayload `json:"pending"`
	Rejected BucketGroupPayload `json:"rejected"`
}

// BucketGroupPayload subdivides one status bucket by horizon.
type BucketGroupPayload struct {
	Today    BucketSlicePayload `json:"today"`
	Tomorrow BucketSlicePayload `json:"tomorrow"`
	Upcoming BucketSlicePayload `json:"upcoming"`
}

// BucketSlicePayload is a sub-list that arrives either as a bare array or
// wrapped in {"list": [...]}.
type BucketSlicePayload struct {
	Records []ReservationPayload
}

// UnmarshalJSON accepts both encodings and never fails; anything else
// decodes to an empty slice.
func (b *BucketSlicePayload) UnmarshalJSON(data []byte) error {
	b.Records = nil
	var direct []ReservationPayload
	if err := json.Unmarshal(data, &direct); err == nil {
		b.Records = direct
		return nil
	}
	var wrapped struct {
		List []ReservationPayload `json:"list"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil {
		b.Records = wrapped.List
	}
	return nil
}

// ReservationPayload is a single reservation record.
type ReservationPayload struct {
	ID              flexjson.String `json:"id"`
	Title           flexjson.String `json:"title"`
	FirstName       flexjson.String `json:"first_name"`
	LastName        flexjson.String `json:"last_name"`
	Mobile          flexjson.String `json:"mobile"`
	Telephone       flexjson.String `json:"telephone"`
	Email           flexjson.String `json:"email"`
	NoOfGuest       flexjson.Int    `json:"no_of_guest"`
	ReservationDate flexjson.String `json:"reservation_date"`
	ReservationTime flexjson.String `json:"reservation_time"`
	Platform        flexjson.String `json:"platform"`
	Status          *flexjson.String `json:"status"`
}

// StatusOrDefault mirrors the `status ?? fallback` coalescing the clients
// always applied: only a missing/null status takes the fallback.
func (r ReservationPayload) StatusOrDefault(fallback string) string {
	if r.Status == nil {
		return fallback
	}
	return r.Status.Str()
}

// ReservationSettingsPayload is the funId=59 response.
type ReservationSettingsPayload struct {
	Status flexjson.Flag `json:"status"`
	List   *struct {
		AcceptReservation flexjson.String `json:"accept_reservation"`
		IsAutoReservation flexjson.String `json:"is_auto_reservation"`
	} `json:"list"`
}

// SummaryPayload is the funId=142 dashboard response.
type SummaryPayload struct {
	Status  flexjson.Flag   `json:"status"`
	Details *SummaryDetails `json:"details"`
}

// SummaryDetails carries the lifetime dashboard aggregates.
type SummaryDetails struct {
	TotalAmount     flexjson.Decimal `json:"total_amount"`
	TotalOrder      flexjson.Int     `json:"total_order"`
	Card            flexjson.Decimal `json:"card"`
	TotalCardOrder  flexjson.Int     `json:"total_card_order"`
	Cash            flexjson.Decimal `json:"cash"`
	TotalCashOrder  flexjson.Int     `json:"total_cash_order"`
	TotalDelivery   flexjson.Int     `json:"total_delivery"`
	TotalCollection flexjson.Int     `json:"total_collection"`
}

// OpeningHoursPayload is shared by funId=133 (opening), funId=134
// (reservation hours), and funId=138 (delivery/collection policy minutes).
type OpeningHoursPayload struct {
	Status       flexjson.Flag       `json:"status"`
	Msg          flexjson.String     `json:"msg"`
	OpeningShift []OpeningDayPayload `json:"opening_shift"`
}

// OpeningDayPayload is one weekday with its shift rows.
type OpeningDayPayload struct {
	DayNo   flexjson.Int    `json:"day_no"`
	DayName flexjson.String `json:"day_name"`
	Shift   json.RawMessage `json:"shift"`
}

// Shifts decodes the shift rows; nil when missing or not an array.
func (d OpeningDayPayload) Shifts() []ShiftPayload {
	if len(d.Shift) == 0 {
		return nil
	}
	var shifts []ShiftPayload
	if err := json.Unmarshal(d.Shift, &shifts); err != nil {
		return nil
	}
	return shifts
}

// ShiftPayload is one shift (or policy-time) row.
type ShiftPayload struct {
	ID          flexjson.String `json:"id"`
	ShiftNo     flexjson.Int    `json:"shift_no"`
	OpeningTime flexjson.String `json:"opening_time"`
	ClosingTime flexjson.String `json:"closing_time"`
	PolicyID    flexjson.String `json:"policy_id"`
	Minutes     flexjson.Int    `json:"minutes"`
}

// InvoicePayload is one row of the funId=131 bare-array response.
type InvoicePayload struct {
	ID        flexjson.String `json:"id"`
	WeekNo    flexjson.String `json:"week_no"`
	InvoiceNo flexjson.String `json:"InvoiceNo"`
	InvYear   flexjson.String `json:"InvYear"`
}

// ReviewListPayload is the funId=102 response.
type ReviewListPayload struct {
	Status flexjson.Flag   `json:"status"`
	Data   []ReviewPayload `json:"data"`
}

// ReviewPayload is one customer review with its reply thread.
type ReviewPayload struct {
	ID               flexjson.String      `json:"id"`
	Name             flexjson.String      `json:"name"`
	Email            flexjson.String      `json:"email"`
	QualityOfFood    flexjson.Int         `json:"quality_of_food"`
	QualityOfService flexjson.Int         `json:"quality_of_service"`
	ValueOfMoney     flexjson.Int         `json:"value_of_money"`
	ReviewComment    flexjson.String      `json:"review_comment"`
	Status           flexjson.String      `json:"status"`
	Reply            []ReviewReplyPayload `json:"reply"`
}

// ReviewReplyPayload is one entry of a review's reply thread.
type ReviewReplyPayload struct {
	ID       flexjson.String `json:"id"`
	ReplyBy  flexjson.String `json:"reply_by"`
	ReplyMsg flexjson.String `json:"reply_msg"`
}

// TicketListPayload is shared by funId=107 and funId=110.
type TicketListPayload struct {
	Status    flexjson.Flag   `json:"status"`
	Complains []TicketPayload `json:"complains"`
}

// TicketPayload is one support ticket row.
type TicketPayload struct {
	ID             flexjson.String `json:"id"`
	TicketID       flexjson.String `json:"ticket_id"`
	Title          flexjson.String `json:"title"`
	Message        flexjson.String `json:"message"`
	ComplainStatus flexjson.String `json:"complain_status"`
	CreatedAt      flexjson.String `json:"created_at"`
	UpdatedAt      flexjson.String `json:"updated_at"`
}

// ShiftStatusPayload is the funId=145 response: status 1 means today's
// online ordering is closed.
type ShiftStatusPayload struct {
	Status flexjson.Flag `json:"status"`
}

// FAQPayload is one row of the funId=143 bare-array response.
type FAQPayload struct {
	ID      flexjson.String `json:"id"`
	Title   flexjson.String `json:"title"`
	Content flexjson.String `json:"content"`
}

// PinStatusPayload is the funId=91 response.
type PinStatusPayload struct {
	Status flexjson.Flag   `json:"status"`
	Msg    flexjson.String `json:"msg"`
	HasPin flexjson.Flag   `json:"has_pin"`
}
