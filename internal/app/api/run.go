// Package api boots the partner gateway HTTP process: configuration,
// observability, the legacy back-office client, the bounded context
// services, and the REST router.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	legacyclient "github.com/enayetchefonline/partner-gateway/internal/clients/http/legacy"
	accountslegacy "github.com/enayetchefonline/partner-gateway/internal/domains/accounts/adapters/legacy"
	accountsmemory "github.com/enayetchefonline/partner-gateway/internal/domains/accounts/adapters/memory"
	accountspostgres "github.com/enayetchefonline/partner-gateway/internal/domains/accounts/adapters/persistence/postgres"
	accountsapp "github.com/enayetchefonline/partner-gateway/internal/domains/accounts/application"
	accountsports "github.com/enayetchefonline/partner-gateway/internal/domains/accounts/ports"
	invoiceslegacy "github.com/enayetchefonline/partner-gateway/internal/domains/invoices/adapters/legacy"
	invoicesapp "github.com/enayetchefonline/partner-gateway/internal/domains/invoices/application"
	orderslegacy "github.com/enayetchefonline/partner-gateway/internal/domains/orders/adapters/legacy"
	ordersobs "github.com/enayetchefonline/partner-gateway/internal/domains/orders/adapters/observability"
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
	ticketsports "github.com/enayetchefonline/partner-gateway/internal/domains/tickets/ports"
	"github.com/enayetchefonline/partner-gateway/internal/platform/migrations"
	platformobservability "github.com/enayetchefonline/partner-gateway/internal/platform/observability"
	platformpostgres "github.com/enayetchefonline/partner-gateway/internal/platform/postgres"
	"github.com/enayetchefonline/partner-gateway/internal/transport/rest"
)

// Run boots the partner gateway HTTP API with observability, the session
// store, and workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "partner-gateway-api"
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	backOffice, err := legacyclient.NewClient(cfg.LegacyBaseURL, &http.Client{Timeout: 30 * time.Second})
	if err != nil {
		return fmt.Errorf("failed to build back-office client: %w", err)
	}

	sessions, cleanupSessions := buildSessionStore(ctx, logger)
	defer cleanupSessions()

	accountService := accountsapp.NewService(
		accountslegacy.NewGateway(backOffice),
		sessions,
		accountsapp.WithSessionTTL(cfg.SessionTTL),
	)
	orderService := ordersobs.New(
		ordersapp.NewService(orderslegacy.NewGateway(backOffice)),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	reservationService := reservationsapp.NewService(reservationslegacy.NewGateway(backOffice))
	restaurantService := restaurantsapp.NewService(restaurantslegacy.NewGateway(backOffice))
	invoiceService := invoicesapp.NewService(invoiceslegacy.NewGateway(backOffice))
	reviewService := reviewsapp.NewService(reviewslegacy.NewGateway(backOffice))
	ticketService := ticketsapp.NewService(ticketslegacy.NewGateway(backOffice))

	var ticketWorkflows ticketsports.WorkflowOrchestrator = ticketsworkflows.NewInlineTicketWorkflows(ticketService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, submitting tickets inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		ticketWorkflows = ticketsworkflows.NewTemporalTicketWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	handlers := rest.APIHandlers{
		Accounts:     rest.NewAccountAPI(accountService),
		Orders:       rest.NewOrderAPI(orderService),
		Reservations: rest.NewReservationAPI(reservationService),
		Restaurants:  rest.NewRestaurantAPI(restaurantService),
		Invoices:     rest.NewInvoiceAPI(invoiceService),
		Reviews:      rest.NewReviewAPI(reviewService),
		Tickets:      rest.NewTicketAPI(ticketService, ticketWorkflows),
	}

	router := rest.NewRouter(handlers, accountService, otelgin.Middleware(serviceName))
	logger.Info("partner gateway API listening", slog.String("addr", cfg.Addr()))
	if err := router.Run(cfg.Addr()); err != nil {
		logger.Error("partner gateway API server exited", slog.String("addr", cfg.Addr()), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildSessionStore(ctx context.Context, logger *slog.Logger) (accountsports.SessionStore, func()) {
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	if db == nil {
		return accountsmemory.NewSessionStore(), cleanup
	}
	if err := migrations.Run(db); err != nil {
		logger.Warn("failed to run session migrations, falling back to memory", slog.String("error", err.Error()))
		cleanup()
		return accountsmemory.NewSessionStore(), func() {}
	}
	logger.Info("session store configured with postgres")
	return accountspostgres.NewSessionStore(db), cleanup
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	logger := workerlog.NewStructuredLogger(effectiveLogger(instruments))
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    logger,
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
