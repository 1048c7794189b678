package domain

import (
	"testing"
	"time"

	catalogdomain "github.com/billkhata/billkhata/internal/catalog/domain"
	"github.com/billkhata/billkhata/pkg/money"
	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNode(t *testing.T) *snowflake.Node {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return node
}

var (
	consulting = catalogdomain.Service{ID: "svc-1", Name: "Consulting", RatePaise: 15000}
	transport  = catalogdomain.Service{ID: "svc-2", Name: "Transport", RatePaise: 7035}
)

func TestDraft_TotalTracksItems(t *testing.T) {
	draft := NewDraft(newTestNode(t))
	assert.Equal(t, money.Paise(0), draft.Total())

	a := draft.AddItem(consulting)
	assert.Equal(t, money.Paise(15000), draft.Total())

	b := draft.AddItem(transport)
	assert.Equal(t, money.Paise(22035), draft.Total())

	draft.SetQuantity(a.ID, 2)
	assert.Equal(t, money.Paise(37035), draft.Total())

	draft.SetQuantity(b.ID, 0)
	assert.Equal(t, money.Paise(30000), draft.Total())

	draft.RemoveItem(a.ID)
	assert.Equal(t, money.Paise(0), draft.Total())
}

func TestDraft_AddItemSnapshotsService(t *testing.T) {
	draft := NewDraft(newTestNode(t))
	svc := catalogdomain.Service{ID: "svc-9", Name: "Audit", RatePaise: 50000}

	item := draft.AddItem(svc)

	// Later catalog edits must not reach the line item.
	svc.Name = "Renamed"
	svc.RatePaise = 99900

	got := draft.Items()[0]
	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, "Audit", got.ServiceName)
	assert.Equal(t, money.Paise(50000), got.RatePaise)
	assert.Equal(t, int64(1), got.Quantity)
}

func TestDraft_SetQuantityNegativeIgnored(t *testing.T) {
	draft := NewDraft(newTestNode(t))
	item := draft.AddItem(consulting)

	draft.SetQuantity(item.ID, -3)

	assert.Equal(t, int64(1), draft.Items()[0].Quantity)
	assert.Equal(t, money.Paise(15000), draft.Total())
}

func TestDraft_SetQuantityUnknownID(t *testing.T) {
	draft := NewDraft(newTestNode(t))
	draft.AddItem(consulting)

	draft.SetQuantity("no-such-item", 5)

	assert.Equal(t, int64(1), draft.Items()[0].Quantity)
}

func TestDraft_RemoveItemUnknownID(t *testing.T) {
	draft := NewDraft(newTestNode(t))
	draft.AddItem(consulting)

	draft.RemoveItem("no-such-item")

	assert.Len(t, draft.Items(), 1)
}

func TestDraft_Finalize(t *testing.T) {
	draft := NewDraft(newTestNode(t))
	a := draft.AddItem(consulting)
	draft.AddItem(transport)
	draft.SetQuantity(a.ID, 2)

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	invoice, err := draft.Finalize("Asha Traders", "INV-0007", "14/03/2026", now)
	require.NoError(t, err)

	assert.NotEmpty(t, invoice.ID)
	assert.Equal(t, "INV-0007", invoice.BillNo)
	assert.Equal(t, "14/03/2026", invoice.Date)
	assert.Equal(t, "Asha Traders", invoice.CustomerName)
	assert.Equal(t, money.Paise(37035), invoice.TotalPaise)
	assert.Equal(t, now, invoice.CreatedAt)
	assert.Len(t, invoice.Items, 2)
}

func TestDraft_FinalizeMissingCustomerName(t *testing.T) {
	draft := NewDraft(newTestNode(t))
	draft.AddItem(consulting)

	_, err := draft.Finalize("   ", "INV-0001", "14/03/2026", time.Now())
	assert.ErrorIs(t, err, ErrMissingCustomerName)
}

func TestDraft_FinalizeNoLineItems(t *testing.T) {
	draft := NewDraft(newTestNode(t))

	_, err := draft.Finalize("Asha Traders", "INV-0001", "14/03/2026", time.Now())
	assert.ErrorIs(t, err, ErrNoLineItems)
}
