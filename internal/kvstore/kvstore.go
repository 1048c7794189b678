// Package kvstore is the durable key-value collaborator behind every
// persisted collection. Each collection lives under a single key as one JSON
// document; writers always replace the whole value (last writer wins, which
// is acceptable with one logical writer per collection).
package kvstore

import (
	"context"
	"time"

	"github.com/billkhata/billkhata/internal/clock"
	"github.com/billkhata/billkhata/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one stored key-value pair.
type Record struct {
	Key       string         `gorm:"primaryKey;column:key"`
	Value     datatypes.JSON `gorm:"column:value;not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}

// TableName sets the database table name.
func (Record) TableName() string { return "kv_records" }

// Store reads and writes whole JSON documents by key.
type Store interface {
	// Get returns the stored value, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type gormStore struct {
	db      *gorm.DB
	records repository.Repository[Record]
	clock   clock.Clock
	log     *zap.Logger
}

func New(db *gorm.DB, clk clock.Clock, log *zap.Logger) Store {
	return &gormStore{
		db:      db,
		records: repository.ProvideStore[Record](db),
		clock:   clk,
		log:     log.Named("kvstore"),
	}
}

func (s *gormStore) Get(ctx context.Context, key string) ([]byte, error) {
	rec, err := s.records.FindOne(ctx, &Record{Key: key})
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return []byte(rec.Value), nil
}

func (s *gormStore) Set(ctx context.Context, key string, value []byte) error {
	rec := Record{
		Key:       key,
		Value:     datatypes.JSON(value),
		UpdatedAt: s.clock.Now(),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
}

func (s *gormStore) Delete(ctx context.Context, key string) error {
	return s.records.Delete(ctx, &Record{Key: key})
}

var Module = fx.Module("kvstore",
	fx.Provide(New),
)
