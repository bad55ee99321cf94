package services

import (
	"context"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/models"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/repositories"
)

// Store interfaces consumed by the services. The Mongo repositories satisfy
// them; tests substitute in-memory fakes. The catalogue side is read-only
// from here: nothing in the orchestration layer writes product data.

type ProductStore interface {
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]models.Product, error)
	List(ctx context.Context, opt repositories.ListProductsOptions) ([]models.Product, error)
	ListAll(ctx context.Context) ([]models.Product, error)
	ListByCategoryExcluding(ctx context.Context, categoryID, excludeID int64, limit int) ([]models.Product, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
	ListIDs(ctx context.Context) ([]int64, error)
}

type ReviewStore interface {
	ListByProduct(ctx context.Context, productID int64) ([]models.Review, error)
	ListByProducts(ctx context.Context, productIDs []int64) (map[int64][]models.Review, error)
}

type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
}

type OrderStore interface {
	ListByUser(ctx context.Context, userID int64) ([]models.Order, error)
}

type AILogStore interface {
	Insert(ctx context.Context, l models.AILog) error
}
