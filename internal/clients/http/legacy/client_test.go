package legacy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewClient(server.URL, server.Client())
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient("  ", nil)
	require.Error(t, err)
}

func TestOrderList_BuildsQueryString(t *testing.T) {
	var captured *url.URL
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r.URL
		w.Write([]byte(`{"status":"1","orders":[]}`))
	})

	_, err := client.OrderList(context.Background(), "734", "01/08/2025", "23/08/2025")
	require.NoError(t, err)

	require.Equal(t, "/"+endpointPath, captured.Path)
	query := captured.Query()
	require.Equal(t, "33", query.Get("funId"))
	require.Equal(t, "734", query.Get("rest_id"))
	require.Equal(t, "01/08/2025", query.Get("start_date"))
	require.Equal(t, "23/08/2025", query.Get("end_date"))
}

func TestLogin_DecodesDetails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "37", r.URL.Query().Get("funId"))
		require.Equal(t, "owner@example.com", r.URL.Query().Get("username"))
		w.Write([]byte(`{
			"status": 1,
			"details": {
				"user_id": 42,
				"username": "owner@example.com",
				"rest_id": "734",
				"assign_restaurants": [
					{"restaurant_id": "734", "restaurant_name": "Spice Garden"},
					{"restaurant_id": 735, "restaurant_name": "Spice Garden North"}
				]
			}
		}`))
	})

	payload, err := client.Login(context.Background(), LoginRequest{
		Username: "owner@example.com",
		Password: "secret",
		Platform: "android",
		Token:    "push-token",
	})
	require.NoError(t, err)
	require.True(t, payload.Status.OK())
	require.NotNil(t, payload.Details)
	require.Equal(t, "42", payload.Details.UserID.Str())
	require.Len(t, payload.Details.AssignRestaurants, 2)
	require.Equal(t, "735", payload.Details.AssignRestaurants[1].RestaurantID.Str())
}

func TestCreateTicket_PostsForm(t *testing.T) {
	var form url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		w.Write([]byte(`{"status":"1","message":"Ticket created"}`))
	})

	ack, err := client.CreateTicket(context.Background(), CreateTicketRequest{
		UserID:  "42",
		Pincode: "1234",
		Message: "EPOS terminal offline",
		Files:   []string{"aGVsbG8="},
	})
	require.NoError(t, err)
	require.Equal(t, "Ticket created", ack.Text())

	require.Equal(t, "108", form.Get("funId"))
	require.Equal(t, "42", form.Get("user_id"))
	require.Equal(t, "1234", form.Get("pincode"))
	require.Equal(t, "1", form.Get("complain_status"))
	require.Equal(t, `["aGVsbG8="]`, form.Get("file"))
}

func TestGet_RejectsNonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	})

	_, err := client.OrderList(context.Background(), "734", "01/08/2025", "01/08/2025")
	require.Error(t, err)
	require.Contains(t, err.Error(), "503")
}

func TestGet_RejectsNonJSONBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>fatal error</html>"))
	})

	_, err := client.RestaurantSummary(context.Background(), "734")
	require.Error(t, err)
}

func TestInvoiceDownloadURL(t *testing.T) {
	client, err := NewClient("https://api.example.com/b2b", nil)
	require.NoError(t, err)

	link := client.InvoiceDownloadURL("INV-77")
	parsed, err := url.Parse(link)
	require.NoError(t, err)
	require.Equal(t, "/b2b/Tigger.php", parsed.Path)
	require.Equal(t, "132", parsed.Query().Get("funId"))
	require.Equal(t, "INV-77", parsed.Query().Get("invoice_id"))
}

func TestReservationList_EmptyRangeSelectsUpcoming(t *testing.T) {
	var captured url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r.URL.Query()
		w.Write([]byte(`{"status":"Success","reservation":{"list":{}}}`))
	})

	_, err := client.ReservationList(context.Background(), "734", "", "", "")
	require.NoError(t, err)
	require.Equal(t, "86", captured.Get("funId"))
	require.Equal(t, "", captured.Get("start_date"))
	require.Equal(t, "", captured.Get("end_date"))
}
