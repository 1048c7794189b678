package repository

import (
	"context"
	"encoding/json"

	invoicedomain "github.com/billkhata/billkhata/internal/invoice/domain"
	"github.com/billkhata/billkhata/internal/kvstore"
	"go.uber.org/zap"
)

const invoicesKey = "invoices_v1"

// blobV1 is the versioned envelope stored under invoicesKey.
type blobV1 struct {
	Version  int                     `json:"version"`
	Invoices []invoicedomain.Invoice `json:"invoices"`
}

type Repository struct {
	kv  kvstore.Store
	log *zap.Logger
}

func New(kv kvstore.Store, log *zap.Logger) invoicedomain.Repository {
	return &Repository{
		kv:  kv,
		log: log.Named("invoice.repository"),
	}
}

func (r *Repository) Append(ctx context.Context, invoice invoicedomain.Invoice) error {
	invoices := r.load(ctx)
	invoices = append(invoices, invoice)
	return r.save(ctx, invoices)
}

func (r *Repository) List(ctx context.Context) ([]invoicedomain.Invoice, error) {
	return r.load(ctx), nil
}

func (r *Repository) Remove(ctx context.Context, id string) error {
	invoices := r.load(ctx)

	filtered := invoices[:0]
	for _, inv := range invoices {
		if inv.ID != id {
			filtered = append(filtered, inv)
		}
	}
	if len(filtered) == len(invoices) {
		// Removing an absent id is a no-op; nothing to write back.
		return nil
	}
	return r.save(ctx, filtered)
}

// load reads the full collection. A missing, corrupt, or unreadable blob is
// an empty collection, never an error.
func (r *Repository) load(ctx context.Context) []invoicedomain.Invoice {
	raw, err := r.kv.Get(ctx, invoicesKey)
	if err != nil {
		r.log.Warn("invoice history read failed, treating as empty", zap.Error(err))
		return nil
	}
	if len(raw) == 0 {
		return nil
	}

	var blob blobV1
	if err := json.Unmarshal(raw, &blob); err == nil && blob.Version >= 1 {
		return blob.Invoices
	}

	// Legacy form: bare array without an envelope. Migrated forward on the
	// next save.
	var legacy []invoicedomain.Invoice
	if err := json.Unmarshal(raw, &legacy); err == nil {
		return legacy
	}

	r.log.Warn("invoice blob undecodable, treating as empty")
	return nil
}

func (r *Repository) save(ctx context.Context, invoices []invoicedomain.Invoice) error {
	if invoices == nil {
		invoices = []invoicedomain.Invoice{}
	}
	raw, err := json.Marshal(blobV1{Version: 1, Invoices: invoices})
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, invoicesKey, raw)
}
