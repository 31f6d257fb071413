package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	invoicehttpmapper "github.com/enayetchefonline/partner-gateway/internal/domains/invoices/adapters/http/mapper"
	invoicesdomain "github.com/enayetchefonline/partner-gateway/internal/domains/invoices/domain"
	invoicesports "github.com/enayetchefonline/partner-gateway/internal/domains/invoices/ports"
)

// InvoiceAPI wires HTTP transport with the invoices bounded context service.
type InvoiceAPI struct {
	service invoicesports.Service
}

// NewInvoiceAPI creates an InvoiceAPI backed by the provided service.
func NewInvoiceAPI(service invoicesports.Service) InvoiceAPI {
	return InvoiceAPI{service: service}
}

// Get /v1/restaurants/:restaurantId/invoices
// Weekly invoice listing, optionally narrowed by ?year= and ?week=
func (api *InvoiceAPI) ListInvoices(c *gin.Context) {
	filter := invoicesdomain.Filter{
		Year:   c.Query("year"),
		WeekNo: c.Query("week"),
	}
	invoices, err := api.service.List(c.Request.Context(), c.Param("restaurantId"), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoicehttpmapper.FromInvoices(invoices))
}

// Get /v1/invoices/:invoiceNo/download
// Direct PDF link for one invoice
func (api *InvoiceAPI) DownloadLink(c *gin.Context) {
	invoiceNo := c.Param("invoiceNo")
	c.JSON(http.StatusOK, invoicehttpmapper.DownloadLink{
		InvoiceNo: invoiceNo,
		URL:       api.service.DownloadURL(invoiceNo),
	})
}
