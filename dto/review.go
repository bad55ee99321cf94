package dto

import (
	"time"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/models"
)

type ReviewDTO struct {
	ID        string    `json:"id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func NewReviewDTO(r models.Review) ReviewDTO {
	return ReviewDTO{
		ID:        r.ID.Hex(),
		UserName:  r.UserName,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
