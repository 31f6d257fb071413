package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/enayetchefonline/partner-gateway/internal/domains/orders/domain"
	"github.com/enayetchefonline/partner-gateway/internal/domains/orders/ports"
)

const tracerName = "github.com/enayetchefonline/partner-gateway/internal/domains/orders/adapters/observability/service"

// Service decorates the orders inbound port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// ListOrders fetches one date range of orders with instrumentation.
func (s *Service) ListOrders(ctx context.Context, q ports.Query) (*domain.OrderList, error) {
	ctx, span := s.startSpan(ctx, "Service.ListOrders",
		attribute.String("restaurant.id", q.RestaurantID),
		attribute.String("orders.range.from", q.Range.LegacyFrom()),
		attribute.String("orders.range.to", q.Range.LegacyTo()),
	)
	defer span.End()

	s.logInfo(ctx, "listing orders", slog.String("restaurant.id", q.RestaurantID))
	result, err := s.inner.ListOrders(ctx, q)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders", slog.String("restaurant.id", q.RestaurantID))
	}
	if result != nil {
		span.SetAttributes(attribute.Int("orders.result.count", len(result.Orders)))
		s.metrics.recordListed(ctx, len(result.Orders))
		s.logInfo(ctx, "orders listed",
			slog.String("restaurant.id", q.RestaurantID),
			slog.Int("count", len(result.Orders)))
	}
	return result, nil
}

// GetOrder resolves a single order detail with instrumentation.
func (s *Service) GetOrder(ctx context.Context, q ports.Query, orderNo string) (*domain.OrderDetail, error) {
	ctx, span := s.startSpan(ctx, "Service.GetOrder",
		attribute.String("restaurant.id", q.RestaurantID),
		attribute.String("order.no", orderNo),
	)
	defer span.End()

	s.logInfo(ctx, "loading order", slog.String("order.no", orderNo))
	result, err := s.inner.GetOrder(ctx, q, orderNo)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.String("order.no", orderNo))
	}
	s.logInfo(ctx, "order loaded", slog.String("order.no", orderNo))
	return result, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	ordersListed metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ordersListed, _ := m.Int64Counter("orders.service.listed", metric.WithDescription("Number of order rows returned by listings"))
	return serviceMetrics{ordersListed: ordersListed}
}

func (m serviceMetrics) recordListed(ctx context.Context, count int) {
	if m.ordersListed == nil {
		return
	}
	m.ordersListed.Add(ctx, int64(count))
}

var _ ports.Service = (*Service)(nil)
