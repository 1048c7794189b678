package service

import (
	"context"
	"io"
	"sort"
	"strings"
	"time"

	businessdomain "github.com/billkhata/billkhata/internal/business/domain"
	catalogdomain "github.com/billkhata/billkhata/internal/catalog/domain"
	"github.com/billkhata/billkhata/internal/clock"
	"github.com/billkhata/billkhata/internal/config"
	invoicedomain "github.com/billkhata/billkhata/internal/invoice/domain"
	invoiceformat "github.com/billkhata/billkhata/internal/invoice/format"
	"github.com/billkhata/billkhata/internal/invoice/render"
	"github.com/billkhata/billkhata/internal/providers/export"
	"github.com/billkhata/billkhata/internal/providers/pdf"
	"github.com/billkhata/billkhata/pkg/money"
	"github.com/billkhata/billkhata/pkg/words"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type ServiceParam struct {
	fx.In

	Log      *zap.Logger
	GenID    *snowflake.Node
	Clock    clock.Clock
	DocCfg   *config.DocumentConfigHolder
	Repo     invoicedomain.Repository
	Catalog  catalogdomain.CatalogService
	Business businessdomain.Service
	Renderer render.Renderer
	Exporter export.Exporter
	PDF      pdf.Provider
}

type Service struct {
	log      *zap.Logger
	genID    *snowflake.Node
	clock    clock.Clock
	docCfg   *config.DocumentConfigHolder
	repo     invoicedomain.Repository
	catalog  catalogdomain.CatalogService
	business businessdomain.Service
	renderer render.Renderer
	exporter export.Exporter
	pdf      pdf.Provider
}

func NewService(p ServiceParam) invoicedomain.Service {
	return &Service{
		log:      p.Log.Named("invoice.service"),
		genID:    p.GenID,
		clock:    p.Clock,
		docCfg:   p.DocCfg,
		repo:     p.Repo,
		catalog:  p.Catalog,
		business: p.Business,
		renderer: p.Renderer,
		exporter: p.Exporter,
		pdf:      p.PDF,
	}
}

func (s *Service) Create(ctx context.Context, req invoicedomain.CreateInvoiceRequest) (invoicedomain.Invoice, error) {
	draft := invoicedomain.NewDraft(s.genID)
	for _, sel := range req.Items {
		if sel.Quantity < 0 {
			return invoicedomain.Invoice{}, money.ErrInvalidQuantity
		}
		svc, err := s.catalog.GetByID(ctx, sel.ServiceID)
		if err != nil {
			return invoicedomain.Invoice{}, invoicedomain.ErrUnknownService
		}
		item := draft.AddItem(svc)
		if sel.Quantity != 1 {
			draft.SetQuantity(item.ID, sel.Quantity)
		}
	}

	now := s.clock.Now()

	billNo := strings.TrimSpace(req.BillNo)
	if billNo == "" {
		billNo = s.suggestBillNo(ctx, now)
	}
	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = now.Format("02/01/2006")
	}

	invoice, err := draft.Finalize(req.CustomerName, billNo, date, now)
	if err != nil {
		return invoicedomain.Invoice{}, err
	}

	if err := s.repo.Append(ctx, invoice); err != nil {
		return invoicedomain.Invoice{}, err
	}

	s.log.Info("invoice created",
		zap.String("id", invoice.ID),
		zap.String("bill_no", invoice.BillNo),
		zap.Int64("total_paise", int64(invoice.TotalPaise)),
	)
	return invoice, nil
}

func (s *Service) List(ctx context.Context) ([]invoicedomain.Invoice, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].CreatedAt.After(invoices[j].CreatedAt)
	})
	return invoices, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (invoicedomain.Invoice, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return invoicedomain.Invoice{}, err
	}
	for _, inv := range invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return invoicedomain.Invoice{}, invoicedomain.ErrInvoiceNotFound
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Remove(ctx, id)
}

func (s *Service) RenderDocument(ctx context.Context, id string) (string, error) {
	invoice, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	profile, err := s.business.Get(ctx)
	if err != nil {
		return "", err
	}

	return s.renderer.RenderHTML(buildRenderInput(invoice, profile))
}

func (s *Service) ExportDocument(ctx context.Context, id string) (export.Handle, error) {
	invoice, err := s.GetByID(ctx, id)
	if err != nil {
		return export.Handle{}, err
	}

	document, err := s.RenderDocument(ctx, id)
	if err != nil {
		return export.Handle{}, err
	}

	label := invoice.BillNo
	if label == "" {
		label = invoice.ID
	}
	return s.exporter.Export(ctx, label, document)
}

func (s *Service) GeneratePDF(ctx context.Context, id string) (io.Reader, error) {
	invoice, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile, err := s.business.Get(ctx)
	if err != nil {
		return nil, err
	}

	glyph := s.docCfg.Get().CurrencyGlyph
	data := pdf.InvoiceData{
		BusinessName:    profile.Name,
		BusinessAddress: profile.Address,
		BusinessPhone:   strings.ReplaceAll(profile.Phone, "\n", ", "),
		BusinessEmail:   profile.Email,
		BillNo:          invoice.BillNo,
		Date:            invoice.Date,
		CustomerName:    invoice.CustomerName,
		Total:           glyph + invoice.TotalPaise.Display(),
		AmountInWords:   totalInWords(invoice.TotalPaise),
	}
	for _, item := range invoice.Items {
		data.Items = append(data.Items, pdf.InvoiceItem{
			ServiceName: item.ServiceName,
			Qty:         item.Quantity,
			Rate:        glyph + item.RatePaise.Display(),
			Amount:      glyph + item.Amount().Display(),
		})
	}

	return s.pdf.GenerateInvoice(ctx, data)
}

// suggestBillNo derives a default bill number from the configured template
// and the current invoice count. Falls back to the default template when the
// configured one cannot resolve.
func (s *Service) suggestBillNo(ctx context.Context, now time.Time) string {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		invoices = nil
	}
	seq := int64(len(invoices)) + 1

	template := s.docCfg.Get().BillNoTemplate
	billNo, err := invoiceformat.FormatBillNumber(template, now, seq)
	if err != nil {
		s.log.Warn("bill number template unresolvable, using default",
			zap.String("template", template), zap.Error(err))
		billNo, _ = invoiceformat.FormatBillNumber(invoiceformat.DefaultBillNumberTemplate, now, seq)
	}
	return billNo
}

func buildRenderInput(invoice invoicedomain.Invoice, profile businessdomain.Profile) render.RenderInput {
	input := render.RenderInput{
		Business: render.BusinessView{
			Name:    profile.Name,
			Address: profile.Address,
			Phone:   profile.Phone,
			Email:   profile.Email,
		},
		Invoice: render.InvoiceView{
			BillNo:       invoice.BillNo,
			Date:         invoice.Date,
			CustomerName: invoice.CustomerName,
			TotalPaise:   invoice.TotalPaise,
		},
	}
	for _, item := range invoice.Items {
		input.Items = append(input.Items, render.LineItemView{
			ServiceName: item.ServiceName,
			Quantity:    item.Quantity,
			RatePaise:   item.RatePaise,
			AmountPaise: item.Amount(),
		})
	}
	return input
}

func totalInWords(total money.Paise) string {
	rupees, paise := total.Split()
	return words.Amount(rupees, paise)
}
