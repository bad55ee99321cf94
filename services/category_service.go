package services

import (
	"context"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/dto"
)

// CategoryService encapsulates category listing and DTO mapping.
type CategoryService struct {
	categories CategoryStore
}

func NewCategoryService(categories CategoryStore) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) List(ctx context.Context) ([]dto.CategoryDTO, error) {
	items, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryDTO, 0, len(items))
	for _, c := range items {
		out = append(out, dto.NewCategoryDTO(c))
	}
	return out, nil
}
