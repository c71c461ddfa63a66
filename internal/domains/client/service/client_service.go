package service

import (
	"context"
	"errors"

	"libreria-backend/internal/domains/client/model"
	"libreria-backend/internal/domains/client/repository"
)

type clientService struct {
	repo repository.RepositoryInterface
}

// NewClientService creates the client service.
func NewClientService(repo repository.RepositoryInterface) ServiceInterface {
	return &clientService{repo: repo}
}

// FindOrCreate implements ServiceInterface.FindOrCreate. Matching is by
// exact phone; the name is only compared to detect a conflict, never
// normalized.
func (s *clientService) FindOrCreate(ctx context.Context, req model.FindOrCreateRequest) (*model.Resolution, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByPhone(ctx, req.Phone)
	switch {
	case err == nil:
		if existing.Name != req.Name {
			return &model.Resolution{
				Status:       model.StatusConflict,
				ClientID:     existing.ID,
				ExistingName: existing.Name,
			}, nil
		}
		return &model.Resolution{Status: model.StatusFound, ClientID: existing.ID}, nil

	case errors.Is(err, model.ErrClientNotFound):
		id, err := s.repo.Create(ctx, req.Name, req.Phone)
		if err != nil {
			return nil, err
		}
		return &model.Resolution{Status: model.StatusCreated, ClientID: id}, nil

	default:
		return nil, err
	}
}

// Get implements ServiceInterface.Get.
func (s *clientService) Get(ctx context.Context, id int64) (*model.Client, error) {
	return s.repo.GetByID(ctx, id)
}
