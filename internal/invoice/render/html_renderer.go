package render

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/billkhata/billkhata/internal/config"
	"github.com/billkhata/billkhata/pkg/money"
	"github.com/billkhata/billkhata/pkg/words"
)

const invoiceHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.Invoice.BillNo}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 32px;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      color: #1a1f36;
      background: #f7f9fc;
    }
    .invoice-card {
      background: #ffffff;
      max-width: 720px;
      margin: 0 auto;
      padding: 48px;
      box-shadow: 0 2px 5px rgba(0,0,0,0.04);
      border-radius: 4px;
    }
    .business {
      text-align: center;
      margin-bottom: 28px;
      border-bottom: 2px solid #1a1f36;
      padding-bottom: 16px;
    }
    .business h1 {
      margin: 0 0 6px;
      font-size: 22px;
      font-weight: 700;
    }
    .business .line {
      font-size: 13px;
      color: #697386;
      line-height: 1.5;
    }
    .meta {
      display: flex;
      justify-content: space-between;
      margin-bottom: 24px;
      font-size: 14px;
    }
    .label {
      font-size: 11px;
      text-transform: uppercase;
      color: #8792a2;
      margin-bottom: 4px;
      font-weight: 600;
      letter-spacing: 0.3px;
    }
    table {
      width: 100%;
      border-collapse: collapse;
      margin-bottom: 24px;
    }
    th {
      text-align: left;
      text-transform: uppercase;
      font-size: 11px;
      color: #8792a2;
      border-bottom: 1px solid #e3e8ee;
      padding: 8px 0;
      font-weight: 600;
      letter-spacing: 0.3px;
    }
    td {
      padding: 12px 0;
      border-bottom: 1px solid #e3e8ee;
      font-size: 14px;
      vertical-align: top;
    }
    .td-right { text-align: right; }
    .total-row {
      display: flex;
      justify-content: flex-end;
      gap: 40px;
      padding: 10px 0;
      font-weight: 700;
      font-size: 16px;
      border-top: 1px solid #e3e8ee;
    }
    .in-words {
      margin-top: 16px;
      font-size: 13px;
      color: #697386;
      font-style: italic;
    }
  </style>
</head>
<body>
  <div class="invoice-card">
    <div class="business">
      <h1>{{.Business.Name}}</h1>
      {{if .Business.Address}}<div class="line">{{nl2br .Business.Address}}</div>{{end}}
      {{if .Business.Phone}}<div class="line">{{nl2br .Business.Phone}}</div>{{end}}
      {{if .Business.Email}}<div class="line">{{.Business.Email}}</div>{{end}}
    </div>

    <div class="meta">
      <div>
        <div class="label">Bill to</div>
        <div><strong>{{.Invoice.CustomerName}}</strong></div>
      </div>
      <div style="text-align: right;">
        <div class="label">Bill no</div>
        <div>{{.Invoice.BillNo}}</div>
        <div class="label" style="margin-top: 10px;">Date</div>
        <div>{{.Invoice.Date}}</div>
      </div>
    </div>

    <table>
      <thead>
        <tr>
          <th style="width: 8%;">#</th>
          <th style="width: 44%;">Service</th>
          <th class="td-right">Qty</th>
          <th class="td-right">Rate</th>
          <th class="td-right">Amount</th>
        </tr>
      </thead>
      <tbody>
        {{range $i, $item := .Items}}
        <tr>
          <td>{{inc $i}}</td>
          <td>{{$item.ServiceName}}</td>
          <td class="td-right">{{$item.Quantity}}</td>
          <td class="td-right">{{formatMoney $item.RatePaise}}</td>
          <td class="td-right" style="font-weight: 500;">{{formatMoney $item.AmountPaise}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <div class="total-row">
      <span>Total</span>
      <span>{{formatMoney .Invoice.TotalPaise}}</span>
    </div>

    <div class="in-words">{{amountInWords .Invoice.TotalPaise}}</div>
  </div>
</body>
</html>
`

type HTMLRenderer struct {
	docCfg *config.DocumentConfigHolder
	tpl    *template.Template
}

func NewRenderer(docCfg *config.DocumentConfigHolder) Renderer {
	r := &HTMLRenderer{docCfg: docCfg}
	funcs := template.FuncMap{
		"formatMoney":   r.formatMoney,
		"amountInWords": amountInWords,
		"nl2br":         nl2br,
		"inc":           func(i int) int { return i + 1 },
	}
	r.tpl = template.Must(template.New("invoice").Funcs(funcs).Parse(invoiceHTMLTemplate))
	return r
}

func (r *HTMLRenderer) RenderHTML(input RenderInput) (string, error) {
	if strings.TrimSpace(input.Business.Name) == "" {
		input.Business.Name = "Invoice"
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, input); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (r *HTMLRenderer) formatMoney(amount money.Paise) string {
	return r.docCfg.Get().CurrencyGlyph + amount.Display()
}

func amountInWords(amount money.Paise) string {
	rupees, paise := amount.Split()
	return words.Amount(rupees, paise)
}

// nl2br escapes the value and converts embedded line breaks into <br> so a
// multi-line phone or address block survives HTML rendering.
func nl2br(value string) template.HTML {
	escaped := template.HTMLEscapeString(value)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return template.HTML(escaped)
}
