package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/enayetchefonline/partner-gateway/internal/domains/invoices/domain"
	"github.com/enayetchefonline/partner-gateway/internal/domains/invoices/ports"
)

// ErrInvalidInput indicates missing or malformed use-case input.
var ErrInvalidInput = errors.New("invalid invoice input")

// Service orchestrates the invoices bounded context use cases.
type Service struct {
	gateway ports.Gateway
}

// NewService wires the invoices service with its dependencies.
func NewService(gateway ports.Gateway) *Service {
	return &Service{gateway: gateway}
}

// List fetches the invoice rows and filters them by year and week. The
// back-office has no filter parameters, so narrowing happens here.
func (s *Service) List(ctx context.Context, restaurantID string, filter domain.Filter) ([]domain.Invoice, error) {
	if strings.TrimSpace(restaurantID) == "" {
		return nil, fmt.Errorf("%w: restaurant id is required", ErrInvalidInput)
	}
	invoices, err := s.gateway.List(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return filter.Apply(invoices), nil
}

// DownloadURL renders the direct PDF link for an invoice number.
func (s *Service) DownloadURL(invoiceNo string) string {
	return s.gateway.DownloadURL(invoiceNo)
}

var _ ports.Service = (*Service)(nil)
