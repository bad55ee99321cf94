package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/models"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/repositories"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/services"
)

func TestProductServiceList(t *testing.T) {
	products := &fakeProductStore{products: []models.Product{
		{ID: 1, CategoryID: 10, Name: "Earbuds"},
		{ID: 2, CategoryID: 20, Name: "Desk Lamp"},
	}}
	reviews := &fakeReviewStore{byProduct: map[int64][]models.Review{
		1: {{ProductID: 1, Comment: "nice"}},
	}}
	svc := services.NewProductService(products, reviews)

	out, err := svc.List(context.Background(), services.ListProductsInput{Page: 1, PageSize: 20})
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Len(t, out[0].Reviews, 1)
	assert.Len(t, out[1].Reviews, 0)
}

func TestProductServiceListFiltersByCategory(t *testing.T) {
	products := &fakeProductStore{products: []models.Product{
		{ID: 1, CategoryID: 10},
		{ID: 2, CategoryID: 20},
	}}
	svc := services.NewProductService(products, &fakeReviewStore{})

	out, err := svc.List(context.Background(), services.ListProductsInput{Page: 1, PageSize: 20, CategoryID: 20})
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, int64(2), out[0].ID)
}

func TestProductServiceGetByID(t *testing.T) {
	products := &fakeProductStore{products: []models.Product{{ID: 1, Name: "Earbuds", CategoryID: 10, CategoryName: "Audio"}}}
	svc := services.NewProductService(products, &fakeReviewStore{})

	got, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Earbuds", got.Name)
	assert.Equal(t, "Audio", got.Category.Name)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCategoryServiceList(t *testing.T) {
	categories := &fakeCategoryStore{categories: []models.Category{
		{ID: 10, Name: "Audio", Slug: "audio"},
	}}
	svc := services.NewCategoryService(categories)

	out, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "audio", out[0].Slug)
}
