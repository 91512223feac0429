package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"newsroom-backend/internal/domains/region"
	"newsroom-backend/internal/shared/pagination"
)

type regionService struct {
	repo region.Repository
}

func NewRegionService(repo region.Repository) region.Service {
	return &regionService{repo: repo}
}

func (s *regionService) Create(ctx context.Context, req *region.CreateRegionRequest) (*region.Region, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &region.Region{Code: req.Code, Name: req.Name})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("region_id", created.ID).Str("code", created.Code).Msg("region created")
	return created, nil
}

func (s *regionService) GetByID(ctx context.Context, id int64) (*region.Region, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *regionService) GetAll(ctx context.Context, p pagination.Params) ([]region.Region, int64, error) {
	return s.repo.GetAll(ctx, p)
}

func (s *regionService) Update(ctx context.Context, id int64, req *region.UpdateRegionRequest) (*region.Region, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, &region.Region{ID: id, Code: req.Code, Name: req.Name})
}

func (s *regionService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("region_id", id).Msg("region deleted")
	return nil
}
