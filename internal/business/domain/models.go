// Package domain contains the business profile model.
package domain

import (
	"context"
	"errors"
)

var ErrMissingName = errors.New("missing_business_name")

// Profile is the singleton business identity printed on every invoice.
// Phone may contain embedded line breaks.
type Profile struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// Repository persists the profile. Get never fails on a missing or corrupt
// record; it falls back to the configured default profile.
type Repository interface {
	Get(ctx context.Context) (Profile, error)
	Put(ctx context.Context, profile Profile) error
}

type Service interface {
	Get(ctx context.Context) (Profile, error)
	Put(ctx context.Context, profile Profile) (Profile, error)
}
