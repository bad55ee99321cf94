package dto

import (
	"time"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/models"
)

// ProductDTO is the API view of a product: category embedded, reviews
// nested, internal bookkeeping fields hidden.
type ProductDTO struct {
	ID            int64       `json:"id"`
	Name          string      `json:"name"`
	Slug          string      `json:"slug"`
	Description   string      `json:"description"`
	AIDescription string      `json:"ai_description"`
	Price         float64     `json:"price"`
	Image         string      `json:"image"`
	Category      CategoryDTO `json:"category"`
	Reviews       []ReviewDTO `json:"reviews"`
	CreatedAt     time.Time   `json:"created_at"`
}

// NewProductDTO constructs ProductDTO from a product and its reviews.
// Reviews may be nil; the DTO always carries a list.
func NewProductDTO(p models.Product, reviews []models.Review) ProductDTO {
	rs := make([]ReviewDTO, 0, len(reviews))
	for _, r := range reviews {
		rs = append(rs, NewReviewDTO(r))
	}
	return ProductDTO{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		AIDescription: p.AIDescription,
		Price:         p.Price,
		Image:         p.ImageURL,
		Category: CategoryDTO{
			ID:   p.CategoryID,
			Name: p.CategoryName,
			Slug: p.CategorySlug,
		},
		Reviews:   rs,
		CreatedAt: p.CreatedAt,
	}
}
