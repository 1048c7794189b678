package server

import (
	"context"
	"net/http"
	"time"

	"github.com/billkhata/billkhata/internal/business"
	businessdomain "github.com/billkhata/billkhata/internal/business/domain"
	"github.com/billkhata/billkhata/internal/catalog"
	catalogdomain "github.com/billkhata/billkhata/internal/catalog/domain"
	"github.com/billkhata/billkhata/internal/config"
	"github.com/billkhata/billkhata/internal/invoice"
	invoicedomain "github.com/billkhata/billkhata/internal/invoice/domain"
	"github.com/billkhata/billkhata/internal/kvstore"
	obsmetrics "github.com/billkhata/billkhata/internal/observability/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	obsmetrics.Module,
	kvstore.Module,
	business.Module,
	catalog.Module,
	invoice.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(*Server) {}),
	fx.Invoke(run),
)

func NewEngine(httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	businessSvc businessdomain.Service
	catalogSvc  catalogdomain.CatalogService
	invoiceSvc  invoicedomain.Service
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	BusinessSvc businessdomain.Service
	CatalogSvc  catalogdomain.CatalogService
	InvoiceSvc  invoicedomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		businessSvc: p.BusinessSvc,
		catalogSvc:  p.CatalogSvc,
		invoiceSvc:  p.InvoiceSvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Business profile --------
	api.GET("/business", s.GetBusinessProfile)
	api.PUT("/business", s.PutBusinessProfile)

	// -------- Service catalog --------
	api.GET("/services", s.ListServices)
	api.POST("/services", s.CreateService)
	api.PUT("/services/:id", s.UpdateService)
	api.DELETE("/services/:id", s.DeleteService)

	// -------- Invoices --------
	api.GET("/invoices", s.ListInvoices)
	api.POST("/invoices", s.CreateInvoice)
	api.GET("/invoices/:id", s.GetInvoiceByID)
	api.DELETE("/invoices/:id", s.DeleteInvoice)
	api.GET("/invoices/:id/document", s.GetInvoiceDocument)
	api.POST("/invoices/:id/export", s.ExportInvoice)
	api.GET("/invoices/:id/pdf", s.GetInvoicePDF)
}
