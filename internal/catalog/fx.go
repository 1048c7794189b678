package catalog

import (
	"github.com/billkhata/billkhata/internal/catalog/repository"
	"github.com/billkhata/billkhata/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.New),
	fx.Provide(service.NewService),
)
