//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	pacttest "github.com/enayetchefonline/partner-gateway/test/pact"

	legacyclient "github.com/enayetchefonline/partner-gateway/internal/clients/http/legacy"
	accountslegacy "github.com/enayetchefonline/partner-gateway/internal/domains/accounts/adapters/legacy"
	accountsmemory "github.com/enayetchefonline/partner-gateway/internal/domains/accounts/adapters/memory"
	accountsapp "github.com/enayetchefonline/partner-gateway/internal/domains/accounts/application"
	accountsdomain "github.com/enayetchefonline/partner-gateway/internal/domains/accounts/domain"
	invoiceslegacy "github.com/enayetchefonline/partner-gateway/internal/domains/invoices/adapters/legacy"
	invoicesapp "github.com/enayetchefonline/partner-gateway/internal/domains/invoices/application"
	orderslegacy "github.com/enayetchefonline/partner-gateway/internal/domains/orders/adapters/legacy"
	ordersapp "github.com/enayetchefonline/partner-gateway/internal/domains/orders/application"
	reservationslegacy "github.com/enayetchefonline/partner-gateway/internal/domains/reservations/adapters/legacy"
	reservationsapp "github.com/enayetchefonline/partner-gateway/internal/domains/reservations/application"
	restaurantslegacy "github.com/enayetchefonline/partner-gateway/internal/domains/restaurants/adapters/legacy"
	restaurantsapp "github.com/enayetchefonline/partner-gateway/internal/domains/restaurants/application"
	reviewslegacy "github.com/enayetchefonline/partner-gateway/internal/domains/reviews/adapters/legacy"
	reviewsapp "github.com/enayetchefonline/partner-gateway/internal/domains/reviews/application"
	ticketslegacy "github.com/enayetchefonline/partner-gateway/internal/domains/tickets/adapters/legacy"
	ticketsworkflows "github.com/enayetchefonline/partner-gateway/internal/domains/tickets/adapters/workflows"
	ticketsapp "github.com/enayetchefonline/partner-gateway/internal/domains/tickets/application"
	"github.com/enayetchefonline/partner-gateway/internal/transport/rest"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestPartnerGatewayProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateLoginValid: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			return nil, nil
		},
		pacttest.StateOrdersExist: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.backOffice.setOrderList(ordersTodayPayload)
			return nil, nil
		},
		pacttest.StateOrderMissing: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.backOffice.setOrderList(ordersEmptyPayload)
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.seedSession()
			return nil
		},
	})
	require.NoError(t, err)
}

const (
	loginSuccessPayload = `{"status":"success","details":{"user_id":"7","username":"pact-partner","rest_id":"889","email":"pact@example.test","mobile_no":"07000000001"}}`
	ordersTodayPayload  = `{"status":"success","orders":[{"order_no":"554433","customer_name":"Pact Diner","grand_total":"24.50","order_type":"Delivery","payment_method":"Card"}],"total":"24.50","total_order":1,"total_collection_order":0,"total_delivery_order":1}`
	ordersEmptyPayload  = `{"status":"success","orders":[],"total":"0","total_order":0}`
	ackSuccessPayload   = `{"status":"success","msg":"ok"}`
)

type contractProviderApp struct {
	backOffice *fakeBackOffice
	sessions   *accountsmemory.SessionStore
	server     *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	backOffice := newFakeBackOffice()
	t.Cleanup(backOffice.server.Close)

	client, err := legacyclient.NewClient(backOffice.server.URL, backOffice.server.Client())
	require.NoError(t, err)

	sessions := accountsmemory.NewSessionStore()
	accountService := accountsapp.NewService(accountslegacy.NewGateway(client), sessions)
	orderService := ordersapp.NewService(orderslegacy.NewGateway(client))
	reservationService := reservationsapp.NewService(reservationslegacy.NewGateway(client))
	restaurantService := restaurantsapp.NewService(restaurantslegacy.NewGateway(client))
	invoiceService := invoicesapp.NewService(invoiceslegacy.NewGateway(client))
	reviewService := reviewsapp.NewService(reviewslegacy.NewGateway(client))
	ticketService := ticketsapp.NewService(ticketslegacy.NewGateway(client))

	handlers := rest.APIHandlers{
		Accounts:     rest.NewAccountAPI(accountService),
		Orders:       rest.NewOrderAPI(orderService),
		Reservations: rest.NewReservationAPI(reservationService),
		Restaurants:  rest.NewRestaurantAPI(restaurantService),
		Invoices:     rest.NewInvoiceAPI(invoiceService),
		Reviews:      rest.NewReviewAPI(reviewService),
		Tickets:      rest.NewTicketAPI(ticketService, ticketsworkflows.NewInlineTicketWorkflows(ticketService)),
	}

	server := httptest.NewServer(rest.NewRouter(handlers, accountService))
	t.Cleanup(server.Close)

	return &contractProviderApp{
		backOffice: backOffice,
		sessions:   sessions,
		server:     server,
	}
}

func (a *contractProviderApp) seedSession() {
	now := time.Now()
	_ = a.sessions.Save(context.Background(), accountsdomain.Session{
		Token:        pacttest.SessionToken,
		UserID:       pacttest.UserID,
		RestaurantID: pacttest.RestaurantID,
		CreatedAt:    now,
		ExpiresAt:    now.Add(time.Hour),
	})
}

// fakeBackOffice emulates the Tigger.php endpoint, dispatching on funId.
type fakeBackOffice struct {
	mu        sync.Mutex
	orderList string
	server    *httptest.Server
}

func newFakeBackOffice() *fakeBackOffice {
	f := &fakeBackOffice{orderList: ordersEmptyPayload}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

func (f *fakeBackOffice) setOrderList(payload string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orderList = payload
}

func (f *fakeBackOffice) handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Query().Get("funId") {
	case "37":
		fmt.Fprint(w, loginSuccessPayload)
	case "33":
		f.mu.Lock()
		payload := f.orderList
		f.mu.Unlock()
		fmt.Fprint(w, payload)
	default:
		fmt.Fprint(w, ackSuccessPayload)
	}
}
