package mapper

import "github.com/enayetchefonline/partner-gateway/internal/domains/invoices/domain"

// Invoice is the HTTP representation of one weekly invoice row.
type Invoice struct {
	ID        string `json:"id"`
	WeekNo    string `json:"weekNo"`
	InvoiceNo string `json:"invoiceNo"`
	Year      string `json:"year"`
}

// InvoiceList wraps the listing.
type InvoiceList struct {
	Invoices []Invoice `json:"invoices"`
}

// DownloadLink carries the direct PDF URL for one invoice.
type DownloadLink struct {
	InvoiceNo string `json:"invoiceNo"`
	URL       string `json:"url"`
}

// FromInvoices maps the listing into its HTTP shape.
func FromInvoices(invoices []domain.Invoice) InvoiceList {
	out := make([]Invoice, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, Invoice{
			ID:        inv.ID,
			WeekNo:    inv.WeekNo,
			InvoiceNo: inv.InvoiceNo,
			Year:      inv.Year,
		})
	}
	return InvoiceList{Invoices: out}
}
