package service

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"
	"time"

	businessrepository "github.com/billkhata/billkhata/internal/business/repository"
	businessservice "github.com/billkhata/billkhata/internal/business/service"
	catalogdomain "github.com/billkhata/billkhata/internal/catalog/domain"
	catalogrepository "github.com/billkhata/billkhata/internal/catalog/repository"
	catalogservice "github.com/billkhata/billkhata/internal/catalog/service"
	"github.com/billkhata/billkhata/internal/clock"
	"github.com/billkhata/billkhata/internal/config"
	invoicedomain "github.com/billkhata/billkhata/internal/invoice/domain"
	"github.com/billkhata/billkhata/internal/invoice/render"
	invoicerepository "github.com/billkhata/billkhata/internal/invoice/repository"
	"github.com/billkhata/billkhata/internal/kvstore"
	"github.com/billkhata/billkhata/internal/providers/export"
	"github.com/billkhata/billkhata/internal/providers/pdf"
	"github.com/billkhata/billkhata/pkg/money"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type testEnv struct {
	svc     invoicedomain.Service
	catalog catalogdomain.CatalogService
	clock   *clock.FakeClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&kvstore.Record{}))

	log := zap.NewNop()
	fake := clock.NewFakeClock(time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	kv := kvstore.New(db, fake, log)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	holder := config.NewStaticDocumentConfigHolder(config.DefaultDocumentConfig())

	catalogSvc := catalogservice.NewService(catalogservice.ServiceParam{
		Log:   log,
		GenID: node,
		Repo:  catalogrepository.New(kv, log),
	})
	businessSvc := businessservice.NewService(businessservice.ServiceParam{
		Log:  log,
		Repo: businessrepository.New(kv, holder, log),
	})

	svc := NewService(ServiceParam{
		Log:      log,
		GenID:    node,
		Clock:    fake,
		DocCfg:   holder,
		Repo:     invoicerepository.New(kv, log),
		Catalog:  catalogSvc,
		Business: businessSvc,
		Renderer: render.NewRenderer(holder),
		Exporter: export.NewFileExporter(config.Config{ShareDir: t.TempDir()}, log),
		PDF:      pdf.New(),
	})

	return &testEnv{svc: svc, catalog: catalogSvc, clock: fake}
}

func (e *testEnv) seedService(t *testing.T, name string, rate money.Paise) catalogdomain.Service {
	t.Helper()
	svc, err := e.catalog.Create(context.Background(), catalogdomain.CreateServiceRequest{
		Name:      name,
		RatePaise: rate,
	})
	require.NoError(t, err)
	return svc
}

func TestCreate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	consulting := env.seedService(t, "Consulting", 15000)
	transport := env.seedService(t, "Transport", 7035)

	invoice, err := env.svc.Create(ctx, invoicedomain.CreateInvoiceRequest{
		CustomerName: "Asha Traders",
		Items: []invoicedomain.LineSelection{
			{ServiceID: consulting.ID, Quantity: 2},
			{ServiceID: transport.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, invoice.ID)
	assert.Equal(t, money.Paise(37035), invoice.TotalPaise)
	require.Len(t, invoice.Items, 2)
	assert.Equal(t, "Consulting", invoice.Items[0].ServiceName)
	assert.Equal(t, int64(2), invoice.Items[0].Quantity)
	assert.Equal(t, money.Paise(15000), invoice.Items[0].RatePaise)
}

func TestCreate_DefaultsBillNoAndDate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	consulting := env.seedService(t, "Consulting", 15000)

	invoice, err := env.svc.Create(ctx, invoicedomain.CreateInvoiceRequest{
		CustomerName: "Asha Traders",
		Items:        []invoicedomain.LineSelection{{ServiceID: consulting.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-20260314-0001", invoice.BillNo)
	assert.Equal(t, "14/03/2026", invoice.Date)

	second, err := env.svc.Create(ctx, invoicedomain.CreateInvoiceRequest{
		CustomerName: "Asha Traders",
		Items:        []invoicedomain.LineSelection{{ServiceID: consulting.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-20260314-0002", second.BillNo)
}

func TestCreate_ExplicitBillNoKept(t *testing.T) {
	env := newTestEnv(t)
	consulting := env.seedService(t, "Consulting", 15000)

	invoice, err := env.svc.Create(context.Background(), invoicedomain.CreateInvoiceRequest{
		CustomerName: "Asha Traders",
		BillNo:       "CUSTOM-42",
		Date:         "01/04/2026",
		Items:        []invoicedomain.LineSelection{{ServiceID: consulting.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, "CUSTOM-42", invoice.BillNo)
	assert.Equal(t, "01/04/2026", invoice.Date)
}

func TestCreate_NegativeQuantity(t *testing.T) {
	env := newTestEnv(t)
	consulting := env.seedService(t, "Consulting", 15000)

	_, err := env.svc.Create(context.Background(), invoicedomain.CreateInvoiceRequest{
		CustomerName: "Asha Traders",
		Items:        []invoicedomain.LineSelection{{ServiceID: consulting.ID, Quantity: -1}},
	})
	assert.ErrorIs(t, err, money.ErrInvalidQuantity)
}

func TestCreate_UnknownService(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Create(context.Background(), invoicedomain.CreateInvoiceRequest{
		CustomerName: "Asha Traders",
		Items:        []invoicedomain.LineSelection{{ServiceID: "no-such-service", Quantity: 1}},
	})
	assert.ErrorIs(t, err, invoicedomain.ErrUnknownService)
}

func TestCreate_MissingCustomerName(t *testing.T) {
	env := newTestEnv(t)
	consulting := env.seedService(t, "Consulting", 15000)

	_, err := env.svc.Create(context.Background(), invoicedomain.CreateInvoiceRequest{
		CustomerName: "   ",
		Items:        []invoicedomain.LineSelection{{ServiceID: consulting.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, invoicedomain.ErrMissingCustomerName)
}

func TestCreate_NoLineItems(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Create(context.Background(), invoicedomain.CreateInvoiceRequest{
		CustomerName: "Asha Traders",
	})
	assert.ErrorIs(t, err, invoicedomain.ErrNoLineItems)
}

func TestList_NewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	consulting := env.seedService(t, "Consulting", 15000)

	first, err := env.svc.Create(ctx, invoicedomain.CreateInvoiceRequest{
		CustomerName: "First Customer",
		Items:        []invoicedomain.LineSelection{{ServiceID: consulting.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	env.clock.Advance(time.Hour)

	second, err := env.svc.Create(ctx, invoicedomain.CreateInvoiceRequest{
		CustomerName: "Second Customer",
		Items:        []invoicedomain.LineSelection{{ServiceID: consulting.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	invoices, err := env.svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, second.ID, invoices[0].ID)
	assert.Equal(t, first.ID, invoices[1].ID)
}

func TestStoredInvoice_UnaffectedByCatalogEdit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	consulting := env.seedService(t, "Consulting", 15000)

	invoice, err := env.svc.Create(ctx, invoicedomain.CreateInvoiceRequest{
		CustomerName: "Asha Traders",
		Items:        []invoicedomain.LineSelection{{ServiceID: consulting.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	_, err = env.catalog.Update(ctx, consulting.ID, catalogdomain.UpdateServiceRequest{
		Name:      "Premium Consulting",
		RatePaise: 99900,
	})
	require.NoError(t, err)

	got, err := env.svc.GetByID(ctx, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Consulting", got.Items[0].ServiceName)
	assert.Equal(t, money.Paise(15000), got.Items[0].RatePaise)
	assert.Equal(t, money.Paise(30000), got.TotalPaise)
}

func TestGetByID_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.GetByID(context.Background(), "no-such-invoice")
	assert.ErrorIs(t, err, invoicedomain.ErrInvoiceNotFound)
}

func TestDelete_AbsentIDIsNoOp(t *testing.T) {
	env := newTestEnv(t)

	assert.NoError(t, env.svc.Delete(context.Background(), "no-such-invoice"))
}

func TestDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	consulting := env.seedService(t, "Consulting", 15000)

	invoice, err := env.svc.Create(ctx, invoicedomain.CreateInvoiceRequest{
		CustomerName: "Asha Traders",
		Items:        []invoicedomain.LineSelection{{ServiceID: consulting.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, env.svc.Delete(ctx, invoice.ID))

	_, err = env.svc.GetByID(ctx, invoice.ID)
	assert.ErrorIs(t, err, invoicedomain.ErrInvoiceNotFound)
}

func TestRenderDocument(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	consulting := env.seedService(t, "Consulting", 15000)

	invoice, err := env.svc.Create(ctx, invoicedomain.CreateInvoiceRequest{
		CustomerName: "Asha Traders",
		Items:        []invoicedomain.LineSelection{{ServiceID: consulting.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	document, err := env.svc.RenderDocument(ctx, invoice.ID)
	require.NoError(t, err)

	assert.Contains(t, document, "Asha Traders")
	assert.Contains(t, document, "₹300.00")
	assert.Contains(t, document, "Three Hundred Rupees Only")
}

func TestExportDocument(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	consulting := env.seedService(t, "Consulting", 15000)

	invoice, err := env.svc.Create(ctx, invoicedomain.CreateInvoiceRequest{
		CustomerName: "Asha Traders",
		Items:        []invoicedomain.LineSelection{{ServiceID: consulting.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	handle, err := env.svc.ExportDocument(ctx, invoice.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, handle.ID)

	written, err := os.ReadFile(handle.Path)
	require.NoError(t, err)
	assert.Contains(t, string(written), invoice.BillNo)
}

func TestGeneratePDF(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	consulting := env.seedService(t, "Consulting", 15000)

	invoice, err := env.svc.Create(ctx, invoicedomain.CreateInvoiceRequest{
		CustomerName: "Asha Traders",
		Items:        []invoicedomain.LineSelection{{ServiceID: consulting.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	reader, err := env.svc.GeneratePDF(ctx, invoice.ID)
	require.NoError(t, err)

	raw, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}
