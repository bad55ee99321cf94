package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/models"
)

type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{col: db.Collection("reviews")}
}

// ListByProduct returns a product's reviews, newest first. Recency order
// matters: summarization input is built in this order.
func (r *ReviewRepository) ListByProduct(ctx context.Context, productID int64) ([]models.Review, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"product_id": productID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Review{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByProducts returns reviews for a set of products keyed by product id,
// newest first within each product.
func (r *ReviewRepository) ListByProducts(ctx context.Context, productIDs []int64) (map[int64][]models.Review, error) {
	out := map[int64][]models.Review{}
	if len(productIDs) == 0 {
		return out, nil
	}
	cur, err := r.col.Find(ctx,
		bson.M{"product_id": bson.M{"$in": productIDs}},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var reviews []models.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	for _, rv := range reviews {
		out[rv.ProductID] = append(out[rv.ProductID], rv)
	}
	return out, nil
}
