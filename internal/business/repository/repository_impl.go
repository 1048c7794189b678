package repository

import (
	"context"
	"encoding/json"

	businessdomain "github.com/billkhata/billkhata/internal/business/domain"
	"github.com/billkhata/billkhata/internal/config"
	"github.com/billkhata/billkhata/internal/kvstore"
	"go.uber.org/zap"
)

const profileKey = "business_details_v1"

// blobV1 is the versioned envelope stored under profileKey.
type blobV1 struct {
	Version int                    `json:"version"`
	Profile businessdomain.Profile `json:"profile"`
}

type Repository struct {
	kv     kvstore.Store
	docCfg *config.DocumentConfigHolder
	log    *zap.Logger
}

func New(kv kvstore.Store, docCfg *config.DocumentConfigHolder, log *zap.Logger) businessdomain.Repository {
	return &Repository{
		kv:     kv,
		docCfg: docCfg,
		log:    log.Named("business.repository"),
	}
}

func (r *Repository) Get(ctx context.Context) (businessdomain.Profile, error) {
	raw, err := r.kv.Get(ctx, profileKey)
	if err != nil {
		r.log.Warn("profile read failed, using default", zap.Error(err))
		return r.defaultProfile(), nil
	}
	if len(raw) == 0 {
		return r.defaultProfile(), nil
	}

	var blob blobV1
	if err := json.Unmarshal(raw, &blob); err != nil || blob.Version == 0 {
		// Legacy form: the profile object stored bare, without an envelope.
		var legacy businessdomain.Profile
		if err := json.Unmarshal(raw, &legacy); err != nil || legacy.Name == "" {
			r.log.Warn("profile blob undecodable, using default")
			return r.defaultProfile(), nil
		}
		return legacy, nil
	}
	return blob.Profile, nil
}

func (r *Repository) Put(ctx context.Context, profile businessdomain.Profile) error {
	raw, err := json.Marshal(blobV1{Version: 1, Profile: profile})
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, profileKey, raw)
}

func (r *Repository) defaultProfile() businessdomain.Profile {
	def := r.docCfg.Get().DefaultBusiness
	return businessdomain.Profile{
		Name:    def.Name,
		Address: def.Address,
		Phone:   def.Phone,
		Email:   def.Email,
	}
}
