package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enayetchefonline/partner-gateway/internal/domains/invoices/domain"
)

type stubGateway struct {
	invoices []domain.Invoice
}

func (s *stubGateway) List(_ context.Context, _ string) ([]domain.Invoice, error) {
	return s.invoices, nil
}

func (s *stubGateway) DownloadURL(invoiceNo string) string {
	return "https://example.test/Tigger.php?funId=132&invoice_id=" + invoiceNo
}

func TestListFiltersByYearAndWeek(t *testing.T) {
	gw := &stubGateway{invoices: []domain.Invoice{
		{ID: "1", WeekNo: "12", InvoiceNo: "INV-1", Year: "2026"},
		{ID: "2", WeekNo: "13", InvoiceNo: "INV-2", Year: "2026"},
		{ID: "3", WeekNo: "12", InvoiceNo: "INV-3", Year: "2025"},
	}}
	svc := NewService(gw)

	all, err := svc.List(context.Background(), "552", domain.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := svc.List(context.Background(), "552", domain.Filter{Year: "2026", WeekNo: "12"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "INV-1", filtered[0].InvoiceNo)
}

func TestListRequiresRestaurant(t *testing.T) {
	svc := NewService(&stubGateway{})

	_, err := svc.List(context.Background(), " ", domain.Filter{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
