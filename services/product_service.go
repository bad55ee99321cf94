package services

import (
	"context"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/dto"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/repositories"
)

// ProductService encapsulates catalogue listing/detail and DTO mapping.
type ProductService struct {
	products ProductStore
	reviews  ReviewStore
}

func NewProductService(products ProductStore, reviews ReviewStore) *ProductService {
	return &ProductService{products: products, reviews: reviews}
}

type ListProductsInput struct {
	Page       int
	PageSize   int
	CategoryID int64
}

func (s *ProductService) List(ctx context.Context, in ListProductsInput) ([]dto.ProductDTO, error) {
	items, err := s.products.List(ctx, repositories.ListProductsOptions{
		Page:       in.Page,
		PageSize:   in.PageSize,
		CategoryID: in.CategoryID,
	})
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
	}
	reviewsByProduct, err := s.reviews.ListByProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProductDTO, 0, len(items))
	for _, p := range items {
		out = append(out, dto.NewProductDTO(p, reviewsByProduct[p.ID]))
	}
	return out, nil
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (*dto.ProductDTO, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	d := dto.NewProductDTO(*p, reviews)
	return &d, nil
}
