package service

import (
	"context"
	"strings"

	catalogdomain "github.com/billkhata/billkhata/internal/catalog/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type ServiceParam struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  catalogdomain.Repository
}

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	repo  catalogdomain.Repository
}

func NewService(p ServiceParam) catalogdomain.CatalogService {
	return &Service{
		log:   p.Log.Named("catalog.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]catalogdomain.Service, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (catalogdomain.Service, error) {
	services, err := s.repo.List(ctx)
	if err != nil {
		return catalogdomain.Service{}, err
	}
	for _, svc := range services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return catalogdomain.Service{}, catalogdomain.ErrNotFound
}

func (s *Service) Create(ctx context.Context, req catalogdomain.CreateServiceRequest) (catalogdomain.Service, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return catalogdomain.Service{}, catalogdomain.ErrInvalidName
	}
	if req.RatePaise < 0 {
		return catalogdomain.Service{}, catalogdomain.ErrInvalidRate
	}

	services, err := s.repo.List(ctx)
	if err != nil {
		return catalogdomain.Service{}, err
	}

	svc := catalogdomain.Service{
		ID:        s.genID.Generate().String(),
		Name:      name,
		RatePaise: req.RatePaise,
	}
	services = append(services, svc)
	if err := s.repo.Save(ctx, services); err != nil {
		return catalogdomain.Service{}, err
	}

	s.log.Info("catalog service created", zap.String("id", svc.ID), zap.String("name", svc.Name))
	return svc, nil
}

func (s *Service) Update(ctx context.Context, id string, req catalogdomain.UpdateServiceRequest) (catalogdomain.Service, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return catalogdomain.Service{}, catalogdomain.ErrInvalidName
	}
	if req.RatePaise < 0 {
		return catalogdomain.Service{}, catalogdomain.ErrInvalidRate
	}

	services, err := s.repo.List(ctx)
	if err != nil {
		return catalogdomain.Service{}, err
	}

	for i, svc := range services {
		if svc.ID != id {
			continue
		}
		services[i].Name = name
		services[i].RatePaise = req.RatePaise
		if err := s.repo.Save(ctx, services); err != nil {
			return catalogdomain.Service{}, err
		}
		return services[i], nil
	}
	return catalogdomain.Service{}, catalogdomain.ErrNotFound
}

func (s *Service) Delete(ctx context.Context, id string) error {
	services, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	filtered := services[:0]
	for _, svc := range services {
		if svc.ID != id {
			filtered = append(filtered, svc)
		}
	}
	if len(filtered) == len(services) {
		// Deleting an absent entry is a no-op.
		return nil
	}
	return s.repo.Save(ctx, filtered)
}
