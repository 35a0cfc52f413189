package service

import (
	"context"

	"sensor-ops/internal/dto"
	"sensor-ops/internal/repository"
)

type ManualService interface {
	List(ctx context.Context) (*dto.ManualsResponse, error)
}

type manualService struct {
	manualRepo repository.ManualRepository
}

func NewManualService(manualRepo repository.ManualRepository) ManualService {
	return &manualService{manualRepo: manualRepo}
}

func (s *manualService) List(ctx context.Context) (*dto.ManualsResponse, error) {
	docs, err := s.manualRepo.ListDocs(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.ManualsResponse{Docs: make([]dto.ManualDocView, 0, len(docs))}
	for _, doc := range docs {
		resp.Docs = append(resp.Docs, dto.ManualDocView{
			Category: doc.Category,
			Detail:   doc.Detail,
			Link:     doc.NormalizedLink(),
		})
	}
	return resp, nil
}
