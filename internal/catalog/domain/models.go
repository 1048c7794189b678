// Package domain contains the service catalog models.
package domain

import (
	"context"
	"errors"

	"github.com/billkhata/billkhata/pkg/money"
)

var (
	ErrNotFound    = errors.New("service_not_found")
	ErrInvalidName = errors.New("invalid_service_name")
	ErrInvalidRate = errors.New("invalid_service_rate")
)

// Service is a reusable catalog entry. Invoices copy its name and rate at the
// moment a line item is added; later catalog edits never touch old invoices.
type Service struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	RatePaise money.Paise `json:"rate_paise"`
}

// Repository persists the whole catalog as one collection.
type Repository interface {
	List(ctx context.Context) ([]Service, error)
	Save(ctx context.Context, services []Service) error
}

type CreateServiceRequest struct {
	Name      string      `json:"name"`
	RatePaise money.Paise `json:"rate_paise"`
}

type UpdateServiceRequest struct {
	Name      string      `json:"name"`
	RatePaise money.Paise `json:"rate_paise"`
}

type CatalogService interface {
	List(ctx context.Context) ([]Service, error)
	GetByID(ctx context.Context, id string) (Service, error)
	Create(ctx context.Context, req CreateServiceRequest) (Service, error)
	Update(ctx context.Context, id string, req UpdateServiceRequest) (Service, error)
	Delete(ctx context.Context, id string) error
}
