package service

import (
	"context"
	"strings"

	businessdomain "github.com/billkhata/billkhata/internal/business/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type ServiceParam struct {
	fx.In

	Log  *zap.Logger
	Repo businessdomain.Repository
}

type Service struct {
	log  *zap.Logger
	repo businessdomain.Repository
}

func NewService(p ServiceParam) businessdomain.Service {
	return &Service{
		log:  p.Log.Named("business.service"),
		repo: p.Repo,
	}
}

func (s *Service) Get(ctx context.Context) (businessdomain.Profile, error) {
	return s.repo.Get(ctx)
}

func (s *Service) Put(ctx context.Context, profile businessdomain.Profile) (businessdomain.Profile, error) {
	profile.Name = strings.TrimSpace(profile.Name)
	profile.Email = strings.TrimSpace(profile.Email)
	if profile.Name == "" {
		return businessdomain.Profile{}, businessdomain.ErrMissingName
	}

	if err := s.repo.Put(ctx, profile); err != nil {
		return businessdomain.Profile{}, err
	}
	s.log.Info("business profile saved", zap.String("name", profile.Name))
	return profile, nil
}
