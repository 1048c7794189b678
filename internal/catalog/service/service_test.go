package service

import (
	"context"
	"testing"

	catalogdomain "github.com/billkhata/billkhata/internal/catalog/domain"
	catalogrepository "github.com/billkhata/billkhata/internal/catalog/repository"
	"github.com/billkhata/billkhata/internal/clock"
	"github.com/billkhata/billkhata/internal/kvstore"
	"github.com/billkhata/billkhata/pkg/money"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (catalogdomain.CatalogService, kvstore.Store) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&kvstore.Record{}))

	log := zap.NewNop()
	kv := kvstore.New(db, clock.NewSystemClock(), log)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := NewService(ServiceParam{
		Log:   log,
		GenID: node,
		Repo:  catalogrepository.New(kv, log),
	})
	return svc, kv
}

func TestCreate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, catalogdomain.CreateServiceRequest{
		Name:      "  Consulting  ",
		RatePaise: 15000,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Consulting", created.Name)
	assert.Equal(t, money.Paise(15000), created.RatePaise)

	services, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, created, services[0])
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, catalogdomain.CreateServiceRequest{Name: "  ", RatePaise: 100})
	assert.ErrorIs(t, err, catalogdomain.ErrInvalidName)

	_, err = svc.Create(ctx, catalogdomain.CreateServiceRequest{Name: "Consulting", RatePaise: -1})
	assert.ErrorIs(t, err, catalogdomain.ErrInvalidRate)
}

func TestGetByID(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, catalogdomain.CreateServiceRequest{Name: "Consulting", RatePaise: 15000})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.GetByID(ctx, "no-such-service")
	assert.ErrorIs(t, err, catalogdomain.ErrNotFound)
}

func TestUpdate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, catalogdomain.CreateServiceRequest{Name: "Consulting", RatePaise: 15000})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, catalogdomain.UpdateServiceRequest{
		Name:      "Premium Consulting",
		RatePaise: 25000,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Premium Consulting", updated.Name)
	assert.Equal(t, money.Paise(25000), updated.RatePaise)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Update(context.Background(), "no-such-service", catalogdomain.UpdateServiceRequest{
		Name:      "Consulting",
		RatePaise: 15000,
	})
	assert.ErrorIs(t, err, catalogdomain.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, catalogdomain.CreateServiceRequest{Name: "Consulting", RatePaise: 15000})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	services, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, services)

	// Deleting an absent entry must not error.
	assert.NoError(t, svc.Delete(ctx, created.ID))
}

func TestList_LegacyBareArray(t *testing.T) {
	svc, kv := newTestService(t)
	ctx := context.Background()

	legacy := `[{"id":"old-1","name":"Consulting","rate_paise":15000}]`
	require.NoError(t, kv.Set(ctx, "services_v1", []byte(legacy)))

	services, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "old-1", services[0].ID)
}

func TestList_CorruptBlobReadsEmpty(t *testing.T) {
	svc, kv := newTestService(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "services_v1", []byte("{not json")))

	services, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, services)
}
