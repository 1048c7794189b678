package domain

import (
	"strings"
	"time"

	catalogdomain "github.com/billkhata/billkhata/internal/catalog/domain"
	"github.com/billkhata/billkhata/pkg/money"
	"github.com/bwmarrin/snowflake"
)

// Draft is the mutable invoice being composed. The total is never cached;
// it is recomputed from the items on every read so it cannot drift.
type Draft struct {
	genID *snowflake.Node
	items []InvoiceItem
}

func NewDraft(genID *snowflake.Node) *Draft {
	return &Draft{genID: genID}
}

// AddItem appends a line for the given catalog service with quantity 1,
// snapshotting the service's current name and rate.
func (d *Draft) AddItem(svc catalogdomain.Service) InvoiceItem {
	item := InvoiceItem{
		ID:          d.genID.Generate().String(),
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		RatePaise:   svc.RatePaise,
		Quantity:    1,
	}
	d.items = append(d.items, item)
	return item
}

// SetQuantity replaces the quantity of one line. Negative quantities are
// silently ignored; unknown ids are a no-op.
func (d *Draft) SetQuantity(itemID string, quantity int64) {
	if quantity < 0 {
		return
	}
	for i := range d.items {
		if d.items[i].ID == itemID {
			d.items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem removes exactly one line; unknown ids are a no-op.
func (d *Draft) RemoveItem(itemID string) {
	for i := range d.items {
		if d.items[i].ID == itemID {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return
		}
	}
}

// Items returns the lines in insertion order.
func (d *Draft) Items() []InvoiceItem {
	out := make([]InvoiceItem, len(d.items))
	copy(out, d.items)
	return out
}

// Total recomputes the grand total from the current items.
func (d *Draft) Total() money.Paise {
	amounts := make([]money.Paise, 0, len(d.items))
	for _, item := range d.items {
		amounts = append(amounts, item.Amount())
	}
	return money.Sum(amounts...)
}

// Finalize validates the draft and freezes it into an immutable Invoice.
func (d *Draft) Finalize(customerName, billNo, date string, now time.Time) (Invoice, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return Invoice{}, ErrMissingCustomerName
	}
	if len(d.items) == 0 {
		return Invoice{}, ErrNoLineItems
	}

	return Invoice{
		ID:           d.genID.Generate().String(),
		BillNo:       billNo,
		Date:         date,
		CustomerName: customerName,
		Items:        d.Items(),
		TotalPaise:   d.Total(),
		CreatedAt:    now,
	}, nil
}
