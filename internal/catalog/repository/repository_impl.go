package repository

import (
	"context"
	"encoding/json"

	catalogdomain "github.com/billkhata/billkhata/internal/catalog/domain"
	"github.com/billkhata/billkhata/internal/kvstore"
	"go.uber.org/zap"
)

const servicesKey = "services_v1"

// blobV1 is the versioned envelope stored under servicesKey.
type blobV1 struct {
	Version  int                     `json:"version"`
	Services []catalogdomain.Service `json:"services"`
}

type Repository struct {
	kv  kvstore.Store
	log *zap.Logger
}

func New(kv kvstore.Store, log *zap.Logger) catalogdomain.Repository {
	return &Repository{
		kv:  kv,
		log: log.Named("catalog.repository"),
	}
}

func (r *Repository) List(ctx context.Context) ([]catalogdomain.Service, error) {
	raw, err := r.kv.Get(ctx, servicesKey)
	if err != nil {
		r.log.Warn("catalog read failed, treating as empty", zap.Error(err))
		return nil, nil
	}
	return decode(raw, r.log), nil
}

func (r *Repository) Save(ctx context.Context, services []catalogdomain.Service) error {
	if services == nil {
		services = []catalogdomain.Service{}
	}
	raw, err := json.Marshal(blobV1{Version: 1, Services: services})
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, servicesKey, raw)
}

// decode accepts the v1 envelope or the legacy bare array and migrates the
// latter forward. Anything undecodable collapses to an empty catalog.
func decode(raw []byte, log *zap.Logger) []catalogdomain.Service {
	if len(raw) == 0 {
		return nil
	}

	var blob blobV1
	if err := json.Unmarshal(raw, &blob); err == nil && blob.Version >= 1 {
		return blob.Services
	}

	var legacy []catalogdomain.Service
	if err := json.Unmarshal(raw, &legacy); err == nil {
		return legacy
	}

	log.Warn("catalog blob undecodable, treating as empty")
	return nil
}
