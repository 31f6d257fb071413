package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	legacyclient "github.com/enayetchefonline/partner-gateway/internal/clients/http/legacy"
	ticketslegacy "github.com/enayetchefonline/partner-gateway/internal/domains/tickets/adapters/legacy"
	ticketsapp "github.com/enayetchefonline/partner-gateway/internal/domains/tickets/application"
	platformobservability "github.com/enayetchefonline/partner-gateway/internal/platform/observability"
	ticketactivities "github.com/enayetchefonline/partner-gateway/internal/platform/temporal/activities/tickets"
	ticketworkflows "github.com/enayetchefonline/partner-gateway/internal/platform/temporal/workflows/tickets"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	const serviceName = "partner-gateway-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	backOffice, err := legacyclient.NewClient(os.Getenv("LEGACY_BASE_URL"), &http.Client{Timeout: 30 * time.Second})
	if err != nil {
		logger.Error("failed to build back-office client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	ticketService := ticketsapp.NewService(ticketslegacy.NewGateway(backOffice))
	ticketActivities := ticketactivities.NewActivities(ticketService)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, ticketworkflows.TicketSubmissionTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(ticketworkflows.TicketSubmissionWorkflow, workflow.RegisterOptions{Name: ticketworkflows.TicketSubmissionWorkflowName})
	w.RegisterActivityWithOptions(ticketActivities.SubmitTicket, activity.RegisterOptions{Name: ticketactivities.SubmitTicketActivityName})

	logger.Info("worker listening", slog.String("taskQueue", ticketworkflows.TicketSubmissionTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
