package invoice

import (
	"github.com/billkhata/billkhata/internal/invoice/render"
	"github.com/billkhata/billkhata/internal/invoice/repository"
	"github.com/billkhata/billkhata/internal/invoice/service"
	"github.com/billkhata/billkhata/internal/providers/export"
	"github.com/billkhata/billkhata/internal/providers/pdf"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	export.Module,
	pdf.Module,
	fx.Provide(render.NewRenderer),
	fx.Provide(repository.New),
	fx.Provide(service.NewService),
)
