package services_test

import (
	"context"
	"strings"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/gateway"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/models"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/repositories"
)

// In-memory store fakes. They mirror the query semantics of the Mongo
// repositories closely enough for orchestration tests.

type fakeProductStore struct {
	products []models.Product
}

func (f *fakeProductStore) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeProductStore) FindByIDs(ctx context.Context, ids []int64) ([]models.Product, error) {
	wanted := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	out := []models.Product{}
	for _, p := range f.products {
		if _, ok := wanted[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductStore) List(ctx context.Context, opt repositories.ListProductsOptions) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range f.products {
		if opt.CategoryID != 0 && p.CategoryID != opt.CategoryID {
			continue
		}
		out = append(out, p)
	}
	if opt.PageSize > 0 && len(out) > opt.PageSize {
		out = out[:opt.PageSize]
	}
	return out, nil
}

func (f *fakeProductStore) ListAll(ctx context.Context) ([]models.Product, error) {
	return f.products, nil
}

func (f *fakeProductStore) ListByCategoryExcluding(ctx context.Context, categoryID, excludeID int64, limit int) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range f.products {
		if p.CategoryID != categoryID || p.ID == excludeID {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeProductStore) Search(ctx context.Context, query string) ([]models.Product, error) {
	q := strings.ToLower(query)
	out := []models.Product{}
	for _, p := range f.products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductStore) ListIDs(ctx context.Context) ([]int64, error) {
	ids := make([]int64, 0, len(f.products))
	for _, p := range f.products {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

type fakeReviewStore struct {
	byProduct map[int64][]models.Review
}

func (f *fakeReviewStore) ListByProduct(ctx context.Context, productID int64) ([]models.Review, error) {
	return f.byProduct[productID], nil
}

func (f *fakeReviewStore) ListByProducts(ctx context.Context, productIDs []int64) (map[int64][]models.Review, error) {
	out := map[int64][]models.Review{}
	for _, id := range productIDs {
		if rs, ok := f.byProduct[id]; ok {
			out[id] = rs
		}
	}
	return out, nil
}

type fakeOrderStore struct {
	byUser map[int64][]models.Order
}

func (f *fakeOrderStore) ListByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	return f.byUser[userID], nil
}

type fakeCategoryStore struct {
	categories []models.Category
}

func (f *fakeCategoryStore) List(ctx context.Context) ([]models.Category, error) {
	return f.categories, nil
}

type fakeAILogStore struct {
	inserted chan models.AILog
}

func (f *fakeAILogStore) Insert(ctx context.Context, l models.AILog) error {
	f.inserted <- l
	return nil
}

// fakeGateway is a scripted gateway.Client that counts calls and records the
// last request it saw.
type fakeGateway struct {
	available bool
	reply     string
	err       error
	calls     int
	lastReq   gateway.Request
}

func (f *fakeGateway) Generate(ctx context.Context, req gateway.Request) (string, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeGateway) Available() bool { return f.available }

func (f *fakeGateway) CredentialName() string { return "OPENAI_API_KEY" }
