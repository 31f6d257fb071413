package legacy

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// LoginRequest carries the funId=37 parameters.
type LoginRequest struct {
	Username string
	Password string
	Platform string
	Token    string
}

// Login authenticates a back-office account.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginPayload, error) {
	params := url.Values{}
	params.Set("username", req.Username)
	params.Set("password", req.Password)
	params.Set("device_id", "0")
	params.Set("platform", req.Platform)
	params.Set("token", req.Token)
	var out LoginPayload
	if err := c.get(ctx, funLogin, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the device registration for a user.
func (c *Client) Logout(ctx context.Context, userID, platform, token string) (*AckPayload, error) {
	params := url.Values{}
	params.Set("user_id", userID)
	params.Set("device_id", "0")
	params.Set("token", token)
	params.Set("platform_id", platform)
	var out AckPayload
	if err := c.get(ctx, funLogout, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OrderList fetches orders for a restaurant between DD/MM/YYYY bounds.
func (c *Client) OrderList(ctx context.Context, restID, startDate, endDate string) (*OrderListPayload, error) {
	params := url.Values{}
	params.Set("rest_id", restID)
	params.Set("start_date", startDate)
	params.Set("end_date", endDate)
	var out OrderListPayload
	if err := c.get(ctx, funOrderList, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReservationList fetches reservations. Empty start/end selects the server's
// upcoming buckets instead of an explicit range.
func (c *Client) ReservationList(ctx context.Context, restID, startDate, endDate, status string) (*ReservationListPayload, error) {
	params := url.Values{}
	params.Set("rest_id", restID)
	params.Set("start_date", startDate)
	params.Set("end_date", endDate)
	params.Set("status", status)
	var out ReservationListPayload
	if err := c.get(ctx, funReservationList, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RestaurantSummary fetches the lifetime dashboard aggregates.
func (c *Client) RestaurantSummary(ctx context.Context, restID string) (*SummaryPayload, error) {
	var out SummaryPayload
	if err := c.get(ctx, funRestaurantSummary, restParams(restID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FAQs fetches the partner FAQ entries.
func (c *Client) FAQs(ctx context.Context) ([]FAQPayload, error) {
	var out []FAQPayload
	if err := c.get(ctx, funFAQList, url.Values{}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PinStatus reports whether a device PIN is configured for the user.
func (c *Client) PinStatus(ctx context.Context, userID string) (*PinStatusPayload, error) {
	params := url.Values{}
	params.Set("user_id", userID)
	var out PinStatusPayload
	if err := c.get(ctx, funPinStatus, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetPin registers a device PIN.
func (c *Client) SetPin(ctx context.Context, userID, pincode string) (*AckPayload, error) {
	params := url.Values{}
	params.Set("user_id", userID)
	params.Set("pincode", pincode)
	return c.ack(ctx, funSetPin, params)
}

// VerifyPin checks a device PIN.
func (c *Client) VerifyPin(ctx context.Context, userID, pincode string) (*AckPayload, error) {
	params := url.Values{}
	params.Set("user_id", userID)
	params.Set("pincode", pincode)
	return c.ack(ctx, funVerifyPin, params)
}

// RequestPinReset triggers a PIN reset via the registered mobile number.
func (c *Client) RequestPinReset(ctx context.Context, userID, mobileNo string) (*AckPayload, error) {
	params := url.Values{}
	params.Set("user_id", userID)
	params.Set("mobile_no", mobileNo)
	return c.ack(ctx, funResetPin, params)
}

// ChangePincode swaps the device PIN.
func (c *Client) ChangePincode(ctx context.Context, userID, oldPin, newPin string) (*AckPayload, error) {
	params := url.Values{}
	params.Set("user_id", userID)
	params.Set("old_pincode", oldPin)
	params.Set("new_pincode", newPin)
	return c.ack(ctx, funChangePincode, params)
}

// ChangePassword updates the back-office password.
func (c *Client) ChangePassword(ctx context.Context, email, previous, next string) (*AckPayload, error) {
	params := url.Values{}
	params.Set("email", email)
	params.Set("previouspassword", previous)
	params.Set("newpassword", next)
	return c.ack(ctx, funChangePassword, params)
}

// AddBranch links a new branch login under a parent restaurant.
func (c *Client) AddBranch(ctx context.Context, parentRestaurantID, username, password string) (*AckPayload, error) {
	params := url.Values{}
	params.Set("parent_restaurant_id", parentRestaurantID)
	params.Set("username", username)
	params.Set("password", password)
	return c.ack(ctx, funAddBranch, params)
}

// OpeningHours fetches the weekday/shift table for online ordering.
func (c *Client) OpeningHours(ctx context.Context, restID string) (*OpeningHoursPayload, error) {
	var out OpeningHoursPayload
	if err := c.get(ctx, funOpeningHours, restParams(restID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReservationHours fetches the weekday/shift table for reservations.
func (c *Client) ReservationHours(ctx context.Context, restID string) (*OpeningHoursPayload, error) {
	var out OpeningHoursPayload
	if err := c.get(ctx, funReservationHours, restParams(restID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EditShift updates one shift's open/close unix times.
func (c *Client) EditShift(ctx context.Context, shiftID string, openingUnix, closingUnix int64) (*AckPayload, error) {
	params := url.Values{}
	params.Set("id", shiftID)
	params.Set("opening_time", strconv.FormatInt(openingUnix, 10))
	params.Set("closing_time", strconv.FormatInt(closingUnix, 10))
	return c.ack(ctx, funEditShift, params)
}

// CloseShift disables one shift row.
func (c *Client) CloseShift(ctx context.Context, shiftID string) (*AckPayload, error) {
	params := url.Values{}
	params.Set("id", shiftID)
	return c.ack(ctx, funCloseShift, params)
}

// AddShiftRequest carries the funId=137 parameters.
type AddShiftRequest struct {
	RestID      string
	Weekday     int
	OpeningUnix int64
	ClosingUnix int64
	ShiftNo     int
	Reservation bool
}

// AddShift creates a new shift row for a weekday. Reservation selects the
// type=4 reservation table instead of the type=3 opening table.
func (c *Client) AddShift(ctx context.Context, req AddShiftRequest) (*AckPayload, error) {
	params := url.Values{}
	params.Set("rest_id", req.RestID)
	params.Set("weekday", strconv.Itoa(req.Weekday))
	params.Set("opening_time", strconv.FormatInt(req.OpeningUnix, 10))
	params.Set("closing_time", strconv.FormatInt(req.ClosingUnix, 10))
	params.Set("shift", strconv.Itoa(req.ShiftNo))
	if req.Reservation {
		params.Set("type", shiftTypeReservation)
	} else {
		params.Set("type", shiftTypeOpening)
	}
	return c.ack(ctx, funAddShift, params)
}

// PolicyTimes fetches delivery/collection lead minutes per day and shift.
func (c *Client) PolicyTimes(ctx context.Context, restID string) (*OpeningHoursPayload, error) {
	var out OpeningHoursPayload
	if err := c.get(ctx, funPolicyTimes, restParams(restID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClosePolicyTime removes one policy-time row.
func (c *Client) ClosePolicyTime(ctx context.Context, id string) (*AckPayload, error) {
	params := url.Values{}
	params.Set("id", id)
	return c.ack(ctx, funClosePolicyTime, params)
}

// EditPolicyTime updates the minutes on one policy-time row.
func (c *Client) EditPolicyTime(ctx context.Context, id string, minutes int) (*AckPayload, error) {
	params := url.Values{}
	params.Set("id", id)
	params.Set("minutes", strconv.Itoa(minutes))
	return c.ack(ctx, funEditPolicyTime, params)
}

// AddPolicyTimeRequest carries the funId=141 parameters.
type AddPolicyTimeRequest struct {
	RestID   string
	DayNo    int
	PolicyID string
	Minutes  int
	ShiftNo  int
}

// AddPolicyTime creates a policy-time row for a day/shift/policy.
func (c *Client) AddPolicyTime(ctx context.Context, req AddPolicyTimeRequest) (*AckPayload, error) {
	params := url.Values{}
	params.Set("rest_id", req.RestID)
	params.Set("day_no", strconv.Itoa(req.DayNo))
	params.Set("policy_id", req.PolicyID)
	params.Set("minutes", strconv.Itoa(req.Minutes))
	params.Set("shift_no", strconv.Itoa(req.ShiftNo))
	return c.ack(ctx, funAddPolicyTime, params)
}

// TicketList fetches support tickets for a user.
func (c *Client) TicketList(ctx context.Context, userID, pincode string, limit int) (*TicketListPayload, error) {
	params := url.Values{}
	params.Set("user_id", userID)
	params.Set("pincode", pincode)
	params.Set("limit", strconv.Itoa(limit))
	var out TicketListPayload
	if err := c.get(ctx, funTicketList, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FilterTickets fetches tickets by complain status (1=pending, 2=resolved).
func (c *Client) FilterTickets(ctx context.Context, userID string, complainStatus, limit int) (*TicketListPayload, error) {
	params := url.Values{}
	params.Set("user_id", userID)
	params.Set("ticket_id", "")
	params.Set("title", "")
	params.Set("complain_status", strconv.Itoa(complainStatus))
	params.Set("limit", strconv.Itoa(limit))
	var out TicketListPayload
	if err := c.get(ctx, funTicketFilter, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTicketRequest carries the funId=108 form fields. Files are raw
// base64 strings without a data: prefix.
type CreateTicketRequest struct {
	UserID  string
	Pincode string
	Message string
	Files   []string
}

// CreateTicket submits a new support ticket as a form POST.
func (c *Client) CreateTicket(ctx context.Context, req CreateTicketRequest) (*AckPayload, error) {
	files := req.Files
	if files == nil {
		files = []string{}
	}
	encoded, err := json.Marshal(files)
	if err != nil {
		return nil, err
	}
	form := url.Values{}
	form.Set("file", string(encoded))
	form.Set("user_id", req.UserID)
	form.Set("ticket_id", "0")
	form.Set("pincode", req.Pincode)
	form.Set("message", req.Message)
	form.Set("complain_status", "1")
	form.Set("ticket_type", "0")
	var out AckPayload
	if err := c.postForm(ctx, funTicketCreate, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InvoiceList fetches the weekly invoice rows for a restaurant.
func (c *Client) InvoiceList(ctx context.Context, restID string) ([]InvoicePayload, error) {
	var out []InvoicePayload
	if err := c.get(ctx, funInvoiceList, restParams(restID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// InvoiceDownloadURL renders the direct funId=132 download link for an
// invoice. The PDF itself is fetched by the caller, not this client.
func (c *Client) InvoiceDownloadURL(invoiceNo string) string {
	params := url.Values{}
	params.Set("invoice_id", invoiceNo)
	return c.endpointURL(funInvoiceDownload, params)
}

// Reviews fetches customer reviews for a restaurant.
func (c *Client) Reviews(ctx context.Context, restID string) (*ReviewListPayload, error) {
	var out ReviewListPayload
	if err := c.get(ctx, funReviewList, restParams(restID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetReviewStatus publishes (1) or unpublishes (0) a review.
func (c *Client) SetReviewStatus(ctx context.Context, reviewID string, publish bool) (*AckPayload, error) {
	params := url.Values{}
	params.Set("review_id", reviewID)
	if publish {
		params.Set("status", "1")
	} else {
		params.Set("status", "0")
	}
	return c.ack(ctx, funReviewStatus, params)
}

// ReplyReview posts a restaurant reply (reply_by=1) to a review.
func (c *Client) ReplyReview(ctx context.Context, reviewID, message string) (*AckPayload, error) {
	params := url.Values{}
	params.Set("review_id", reviewID)
	params.Set("reply_by", "1")
	params.Set("reply_msg", message)
	return c.ack(ctx, funReviewReply, params)
}

// ReservationSettings reads the accept/auto reservation toggles.
func (c *Client) ReservationSettings(ctx context.Context, restID string) (*ReservationSettingsPayload, error) {
	var out ReservationSettingsPayload
	if err := c.get(ctx, funReservationSettings, restParams(restID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetAcceptReservation toggles whether the restaurant takes reservations.
func (c *Client) SetAcceptReservation(ctx context.Context, restID string, accept bool) (*AckPayload, error) {
	params := restParams(restID)
	params.Set("accept_reservation", boolFlag(accept))
	return c.ack(ctx, funAcceptReservation, params)
}

// SetAutoReservation toggles automatic reservation confirmation.
func (c *Client) SetAutoReservation(ctx context.Context, restID string, auto bool) (*AckPayload, error) {
	params := restParams(restID)
	params.Set("is_auto_reservation", boolFlag(auto))
	return c.ack(ctx, funAutoReservation, params)
}

// ShiftStatus reads today's online ordering status; closed means status 1.
func (c *Client) ShiftStatus(ctx context.Context, restID string) (closed bool, err error) {
	var out ShiftStatusPayload
	if err := c.get(ctx, funShiftStatus, restParams(restID), &out); err != nil {
		return false, err
	}
	return out.Status.OK(), nil
}

// SetShiftStatus sets today's online ordering status ('1' closed, '0' open).
func (c *Client) SetShiftStatus(ctx context.Context, restID, userID string, closed bool) (*AckPayload, error) {
	params := restParams(restID)
	params.Set("user_id", userID)
	params.Set("status", boolFlag(closed))
	return c.ack(ctx, funSetShiftStatus, params)
}

func (c *Client) ack(ctx context.Context, funID int, params url.Values) (*AckPayload, error) {
	var out AckPayload
	if err := c.get(ctx, funID, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func restParams(restID string) url.Values {
	params := url.Values{}
	params.Set("rest_id", restID)
	return params
}

func boolFlag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
