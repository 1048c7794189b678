package business

import (
	"github.com/billkhata/billkhata/internal/business/repository"
	"github.com/billkhata/billkhata/internal/business/service"
	"go.uber.org/fx"
)

var Module = fx.Module("business.service",
	fx.Provide(repository.New),
	fx.Provide(service.NewService),
)
