// Package legacy adapts the back-office invoice operations to the invoices
// outbound port.
package legacy

import (
	"context"
	"fmt"

	legacyclient "github.com/enayetchefonline/partner-gateway/internal/clients/http/legacy"
	"github.com/enayetchefonline/partner-gateway/internal/domains/invoices/domain"
	"github.com/enayetchefonline/partner-gateway/internal/domains/invoices/ports"
	sharederrors "github.com/enayetchefonline/partner-gateway/internal/shared/errors"
)

// Gateway talks to the back-office for invoice listings and download links.
type Gateway struct {
	client *legacyclient.Client
}

// NewGateway wires the gateway with the shared back-office client.
func NewGateway(client *legacyclient.Client) *Gateway {
	return &Gateway{client: client}
}

// List fetches the weekly invoice rows.
func (g *Gateway) List(ctx context.Context, restaurantID string) ([]domain.Invoice, error) {
	payload, err := g.client.InvoiceList(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sharederrors.ErrUpstream, err)
	}
	invoices := make([]domain.Invoice, 0, len(payload))
	for _, row := range payload {
		invoices = append(invoices, domain.Invoice{
			ID:        row.ID.Str(),
			WeekNo:    row.WeekNo.Str(),
			InvoiceNo: row.InvoiceNo.Str(),
			Year:      row.InvYear.Str(),
		})
	}
	return invoices, nil
}

// DownloadURL renders the direct PDF link for an invoice number.
func (g *Gateway) DownloadURL(invoiceNo string) string {
	return g.client.InvoiceDownloadURL(invoiceNo)
}

var _ ports.Gateway = (*Gateway)(nil)
