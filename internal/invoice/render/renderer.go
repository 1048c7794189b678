package render

import "github.com/billkhata/billkhata/pkg/money"

// Renderer turns an invoice plus the business profile into a self-contained
// printable document. Implementations perform no network or disk I/O.
type Renderer interface {
	RenderHTML(input RenderInput) (string, error)
}

type RenderInput struct {
	Business BusinessView
	Invoice  InvoiceView
	Items    []LineItemView
}

type BusinessView struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

type InvoiceView struct {
	BillNo       string
	Date         string
	CustomerName string
	TotalPaise   money.Paise
}

type LineItemView struct {
	ServiceName string
	Quantity    int64
	RatePaise   money.Paise
	AmountPaise money.Paise
}
