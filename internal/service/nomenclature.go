package service

import (
	"context"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/repository"
)

type nomenclatureService struct {
	repo repository.NomenclatureRepository
}

func NewNomenclatureService(repo repository.NomenclatureRepository) NomenclatureService {
	return &nomenclatureService{repo: repo}
}

func (s *nomenclatureService) Cities(ctx context.Context, countyID int32, search string) ([]domain.City, error) {
	return s.repo.Cities(ctx, countyID, search)
}

func (s *nomenclatureService) Counties(ctx context.Context) ([]domain.County, error) {
	return s.repo.Counties(ctx)
}

func (s *nomenclatureService) Domains(ctx context.Context) ([]domain.Domain, error) {
	return s.repo.Domains(ctx)
}
