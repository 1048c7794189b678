package domain

import (
	"context"
	"io"

	"github.com/billkhata/billkhata/internal/providers/export"
)

// LineSelection is a (service, quantity) pick from the catalog.
type LineSelection struct {
	ServiceID string `json:"service_id"`
	Quantity  int64  `json:"quantity"`
}

type CreateInvoiceRequest struct {
	CustomerName string          `json:"customer_name"`
	BillNo       string          `json:"bill_no"`
	Date         string          `json:"date"`
	Items        []LineSelection `json:"items"`
}

type Service interface {
	Create(ctx context.Context, req CreateInvoiceRequest) (Invoice, error)
	// List returns all invoices, newest first.
	List(ctx context.Context) ([]Invoice, error)
	GetByID(ctx context.Context, id string) (Invoice, error)
	Delete(ctx context.Context, id string) error
	// RenderDocument produces the self-contained printable HTML document.
	RenderDocument(ctx context.Context, id string) (string, error)
	// ExportDocument renders and writes the document to the share directory.
	ExportDocument(ctx context.Context, id string) (export.Handle, error)
	// GeneratePDF produces the PDF rendition of the invoice.
	GeneratePDF(ctx context.Context, id string) (io.Reader, error)
}
