package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type InvoiceData struct {
	BusinessName    string
	BusinessAddress string
	BusinessPhone   string
	BusinessEmail   string

	BillNo       string
	Date         string
	CustomerName string

	Items []InvoiceItem

	Total         string
	AmountInWords string
}

type InvoiceItem struct {
	ServiceName string
	Qty         int64
	Rate        string
	Amount      string
}

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GenerateInvoice(ctx context.Context, invoice InvoiceData) (io.Reader, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	// Business identity block
	m.AddRow(30,
		col.New(12).Add(
			text.New(invoice.BusinessName, props.Text{Size: 18, Style: fontstyle.Bold, Align: align.Center}),
			text.New(invoice.BusinessAddress, props.Text{Size: 9, Top: 9, Align: align.Center}),
			text.New(invoice.BusinessPhone, props.Text{Size: 9, Top: 14, Align: align.Center}),
			text.New(invoice.BusinessEmail, props.Text{Size: 9, Top: 19, Align: align.Center}),
		),
	)

	// Bill meta
	m.AddRow(18,
		col.New(6).Add(
			text.New("Bill to", props.Text{Style: fontstyle.Bold, Size: 9}),
			text.New(invoice.CustomerName, props.Text{Top: 5, Size: 11}),
		),
		col.New(6).Add(
			text.New("Bill no: "+invoice.BillNo, props.Text{Size: 9, Align: align.Right}),
			text.New("Date: "+invoice.Date, props.Text{Size: 9, Top: 5, Align: align.Right}),
		),
	)

	// Table header
	m.AddRow(10,
		text.NewCol(1, "#", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(5, "Service", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Rate", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	// Items
	for i, item := range invoice.Items {
		m.AddRow(9,
			text.NewCol(1, fmt.Sprintf("%d", i+1), props.Text{Size: 9}),
			text.NewCol(5, item.ServiceName, props.Text{Size: 9}),
			text.NewCol(2, fmt.Sprintf("%d", item.Qty), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.Rate, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.Amount, props.Text{Size: 9, Align: align.Right}),
		)
	}

	// Grand total
	m.AddRow(12,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 10}),
		text.NewCol(2, invoice.Total, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
	)

	// Amount in words
	m.AddRow(12,
		text.NewCol(12, invoice.AmountInWords, props.Text{Size: 9, Style: fontstyle.Italic}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}
