package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/therapy-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/therapy-scheduler/internal/dto"
)

type ListProviders struct {
	repo domain.Repository
}

func NewListProviders(repo domain.Repository) *ListProviders {
	return &ListProviders{repo: repo}
}

func (uc *ListProviders) Execute(ctx context.Context) ([]dto.ProviderDTO, error) {
	providers, err := uc.repo.ListProviders(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProviderDTO, 0, len(providers))
	for _, p := range providers {
		out = append(out, dto.ProviderDTO{ID: p.ID, Name: p.Name})
	}
	return out, nil
}
