package ports

import (
	"context"

	"github.com/enayetchefonline/partner-gateway/internal/domains/invoices/domain"
)

// Gateway is the outbound port to the back-office invoice operations.
type Gateway interface {
	List(ctx context.Context, restaurantID string) ([]domain.Invoice, error)
	DownloadURL(invoiceNo string) string
}

// Service defines the invoices use cases exposed to adapters.
type Service interface {
	List(ctx context.Context, restaurantID string, filter domain.Filter) ([]domain.Invoice, error)
	DownloadURL(invoiceNo string) string
}
