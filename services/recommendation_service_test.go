package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/gateway"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/models"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/repositories"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/services"
)

func newRecommendationService(products *fakeProductStore, reviews *fakeReviewStore, orders *fakeOrderStore, gw *fakeGateway) *services.RecommendationService {
	var noAudit *services.AIAudit
	return services.NewRecommendationService(products, reviews, orders, gw, "gpt-4.1-mini", "gpt-5-mini", noAudit)
}

func sameCategoryCatalogue() *fakeProductStore {
	products := []models.Product{
		{ID: 1, CategoryID: 10, CategoryName: "Audio", Name: "Wireless Earbuds", Price: 49.99},
	}
	for i := int64(2); i <= 7; i++ {
		products = append(products, models.Product{
			ID: i, CategoryID: 10, CategoryName: "Audio",
			Name: fmt.Sprintf("Speaker %d", i), Price: float64(i) * 10,
		})
	}
	return &fakeProductStore{products: products}
}

func TestRecommendUnknownBaseProduct(t *testing.T) {
	svc := newRecommendationService(&fakeProductStore{}, &fakeReviewStore{}, &fakeOrderStore{}, &fakeGateway{available: true})

	_, err := svc.Recommend(context.Background(), 99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestRecommendExcludesBaseAndBoundsCandidates(t *testing.T) {
	gw := &fakeGateway{available: true, reply: "These go well together."}
	svc := newRecommendationService(sameCategoryCatalogue(), &fakeReviewStore{}, &fakeOrderStore{}, gw)

	resp, err := svc.Recommend(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.BaseProduct.ID)
	assert.LessOrEqual(t, len(resp.Recommendations), 4)
	for _, r := range resp.Recommendations {
		assert.NotEqual(t, resp.BaseProduct.ID, r.ID)
	}
	assert.Equal(t, "These go well together.", resp.AIMessage)
}

func TestRecommendWithMissingCredential(t *testing.T) {
	gw := &fakeGateway{available: false}
	svc := newRecommendationService(sameCategoryCatalogue(), &fakeReviewStore{}, &fakeOrderStore{}, gw)

	resp, err := svc.Recommend(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "AI explanation is disabled because OPENAI_API_KEY is not configured.", resp.AIMessage)
	assert.Equal(t, 0, gw.calls)
	assert.NotEmpty(t, resp.Recommendations)
}

func TestRecommendWithGatewayFailure(t *testing.T) {
	gw := &fakeGateway{available: true, err: fmt.Errorf("%w: timeout", gateway.ErrGenerationFailed)}
	svc := newRecommendationService(sameCategoryCatalogue(), &fakeReviewStore{}, &fakeOrderStore{}, gw)

	resp, err := svc.Recommend(context.Background(), 1)
	require.NoError(t, err)

	assert.Contains(t, resp.AIMessage, "AI explanation unavailable: ")
	assert.NotEmpty(t, resp.Recommendations)
}

func TestRecommendForUserWithoutOrders(t *testing.T) {
	gw := &fakeGateway{available: true}
	svc := newRecommendationService(sameCategoryCatalogue(), &fakeReviewStore{}, &fakeOrderStore{}, gw)

	resp, err := svc.RecommendForUser(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.UserID)
	assert.Equal(t, []int64{}, resp.ProductIDs)
	assert.Empty(t, resp.Products)
	assert.Equal(t, 0, gw.calls)
}

func TestRecommendForUserWithoutCredential(t *testing.T) {
	orders := &fakeOrderStore{byUser: map[int64][]models.Order{7: {{UserID: 7, ProductID: 2}}}}
	gw := &fakeGateway{available: false}
	svc := newRecommendationService(sameCategoryCatalogue(), &fakeReviewStore{}, orders, gw)

	resp, err := svc.RecommendForUser(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, []int64{}, resp.ProductIDs)
	assert.Equal(t, 0, gw.calls)
}

func TestRecommendForUserFiltersAndOrdersSuggestions(t *testing.T) {
	orders := &fakeOrderStore{byUser: map[int64][]models.Order{7: {
		{UserID: 7, ProductID: 2, ProductName: "Speaker 2", CategoryName: "Audio"},
	}}}
	// 99 is not in the catalogue and must be dropped; model order (5 before 3) kept
	gw := &fakeGateway{available: true, reply: "[5, 99, 3]"}
	svc := newRecommendationService(sameCategoryCatalogue(), &fakeReviewStore{}, orders, gw)

	resp, err := svc.RecommendForUser(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, []int64{5, 3}, resp.ProductIDs)
	require.Len(t, resp.Products, 2)
	assert.Equal(t, int64(5), resp.Products[0].ID)
	assert.Equal(t, int64(3), resp.Products[1].ID)

	assert.Equal(t, 1, gw.calls)
	assert.Equal(t, "gpt-5-mini", gw.lastReq.Model)
	assert.Equal(t, 128, gw.lastReq.MaxTokens)
	assert.InDelta(t, 0.2, gw.lastReq.Temperature, 0.001)
}

func TestRecommendForUserCapsSuggestions(t *testing.T) {
	orders := &fakeOrderStore{byUser: map[int64][]models.Order{7: {{UserID: 7, ProductID: 2}}}}
	gw := &fakeGateway{available: true, reply: "[2, 3, 4, 5, 6]"}
	svc := newRecommendationService(sameCategoryCatalogue(), &fakeReviewStore{}, orders, gw)

	resp, err := svc.RecommendForUser(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 3, 4}, resp.ProductIDs)
	assert.Len(t, resp.Products, 3)
}

func TestRecommendForUserGatewayFailureDegradesToEmpty(t *testing.T) {
	orders := &fakeOrderStore{byUser: map[int64][]models.Order{7: {{UserID: 7, ProductID: 2}}}}
	gw := &fakeGateway{available: true, err: fmt.Errorf("%w: boom", gateway.ErrGenerationFailed)}
	svc := newRecommendationService(sameCategoryCatalogue(), &fakeReviewStore{}, orders, gw)

	resp, err := svc.RecommendForUser(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, []int64{}, resp.ProductIDs)
	assert.Empty(t, resp.Products)
}

func TestRecommendForUserUnparseableOutput(t *testing.T) {
	orders := &fakeOrderStore{byUser: map[int64][]models.Order{7: {{UserID: 7, ProductID: 2}}}}
	gw := &fakeGateway{available: true, reply: "I would suggest the speakers."}
	svc := newRecommendationService(sameCategoryCatalogue(), &fakeReviewStore{}, orders, gw)

	resp, err := svc.RecommendForUser(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, []int64{}, resp.ProductIDs)
	assert.Empty(t, resp.Products)
}
