// Package legacy wraps the back-office partner API: a single PHP endpoint
// multiplexing every operation through a numeric funId query parameter.
// The wire format is dictated by the backend; payload types here decode it
// tolerantly and leave interpretation to the domain normalizers.
package legacy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const endpointPath = "Tigger.php"

// funId operation selectors, as assigned by the back-office.
const (
	funChangePassword      = 10
	funOrderList           = 33
	funLogin               = 37
	funAutoReservation     = 57
	funAcceptReservation   = 58
	funReservationSettings = 59
	funLogout              = 73
	funAddBranch           = 84
	funReservationList     = 86
	funSetPin              = 87
	funChangePincode       = 88
	funVerifyPin           = 89
	funResetPin            = 90
	funPinStatus           = 91
	funReviewList          = 102
	funReviewStatus        = 103
	funReviewReply         = 104
	funTicketList          = 107
	funTicketCreate        = 108
	funTicketFilter        = 110
	funInvoiceList         = 131
	funInvoiceDownload     = 132
	funOpeningHours        = 133
	funReservationHours    = 134
	funEditShift           = 135
	funCloseShift          = 136
	funAddShift            = 137
	funPolicyTimes         = 138
	funClosePolicyTime     = 139
	funEditPolicyTime      = 140
	funAddPolicyTime       = 141
	funRestaurantSummary   = 142
	funFAQList             = 143
	funSetShiftStatus      = 144
	funShiftStatus         = 145
)

// Shift type codes for funId=137.
const (
	shiftTypeOpening     = "3"
	shiftTypeReservation = "4"
)

// Client issues requests against the legacy partner endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a legacy client with sane defaults. baseURL is the
// directory containing Tigger.php.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("legacy base URL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse legacy base URL: %w", err)
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: baseURL, http: httpClient}, nil
}

// endpointURL renders the full query-string URL for an operation.
func (c *Client) endpointURL(funID int, params url.Values) string {
	values := url.Values{}
	values.Set("funId", strconv.Itoa(funID))
	for key, vals := range params {
		for _, v := range vals {
			values.Add(key, v)
		}
	}
	return c.baseURL + endpointPath + "?" + values.Encode()
}

// get performs a GET for the given operation and decodes the JSON body into
// out. Shape tolerance is handled by the payload types; this layer only
// fails on transport errors, non-2xx statuses, and non-JSON bodies.
func (c *Client) get(ctx context.Context, funID int, params url.Values, out any) error {
	if c == nil || c.http == nil {
		return errors.New("legacy client not configured")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL(funID, params), nil)
	if err != nil {
		return fmt.Errorf("build legacy request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, funID, out)
}

// postForm performs a form-urlencoded POST against Tigger.php. The funId
// travels inside the form body for POST operations.
func (c *Client) postForm(ctx context.Context, funID int, form url.Values, out any) error {
	if c == nil || c.http == nil {
		return errors.New("legacy client not configured")
	}
	form.Set("funId", strconv.Itoa(funID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpointPath, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build legacy request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	req.Header.Set("Accept", "application/json")
	return c.do(req, funID, out)
}

func (c *Client) do(req *http.Request, funID int, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call legacy API (funId=%d): %w", funID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("read legacy response (funId=%d): %w", funID, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("legacy API returned %s (funId=%d)", resp.Status, funID)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode legacy response (funId=%d): %w", funID, err)
	}
	return nil
}
