// Package domain contains the invoice aggregate and its persistence contract.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/billkhata/billkhata/pkg/money"
)

var (
	ErrMissingCustomerName = errors.New("missing_customer_name")
	ErrNoLineItems         = errors.New("no_line_items")
	ErrUnknownService      = errors.New("unknown_service")
	ErrInvoiceNotFound     = errors.New("invoice_not_found")
)

// InvoiceItem is one line on an invoice. ServiceName and RatePaise are
// snapshots taken when the line was added; catalog edits never flow back
// into stored invoices.
type InvoiceItem struct {
	ID          string      `json:"id"`
	ServiceID   string      `json:"service_id"`
	ServiceName string      `json:"service_name"`
	RatePaise   money.Paise `json:"rate_paise"`
	Quantity    int64       `json:"quantity"`
}

// Amount is the line total. Quantity is non-negative by construction.
func (it InvoiceItem) Amount() money.Paise {
	return it.RatePaise * money.Paise(it.Quantity)
}

// Invoice is an immutable historical record. TotalPaise is frozen at
// finalize time and always equals the sum over Items at that moment.
type Invoice struct {
	ID           string        `json:"id"`
	BillNo       string        `json:"bill_no"`
	Date         string        `json:"date"`
	CustomerName string        `json:"customer_name"`
	Items        []InvoiceItem `json:"items"`
	TotalPaise   money.Paise   `json:"total_paise"`
	CreatedAt    time.Time     `json:"created_at"`
}

// Repository is the append-only invoice history. Remove of an absent id is a
// no-op; a corrupt or missing collection reads as empty.
type Repository interface {
	Append(ctx context.Context, invoice Invoice) error
	List(ctx context.Context) ([]Invoice, error)
	Remove(ctx context.Context, id string) error
}
