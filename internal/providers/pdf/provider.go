// Package pdf produces the PDF rendition of an invoice.
package pdf

import (
	"context"
	"io"

	"go.uber.org/fx"
)

type Provider interface {
	GenerateInvoice(ctx context.Context, data InvoiceData) (io.Reader, error)
}

var Module = fx.Module("pdf",
	fx.Provide(New),
)
