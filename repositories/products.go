package repositories

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/models"
)

type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection("products")}
}

// FindByID returns a single product by its numeric id.
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, mapFindErr(err)
	}
	return &p, nil
}

// FindByIDs returns the products whose ids are in the given list.
// Result order is unspecified; callers that care reorder themselves.
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []int64) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Product{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type ListProductsOptions struct {
	Page       int
	PageSize   int
	CategoryID int64 // 0 means no filter
}

// List returns products ordered by creation time (newest first).
func (r *ProductRepository) List(ctx context.Context, opt ListProductsOptions) ([]models.Product, error) {
	page := opt.Page
	if page < 1 {
		page = 1
	}
	pageSize := opt.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	filter := bson.M{}
	if opt.CategoryID != 0 {
		filter["category_id"] = opt.CategoryID
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Product{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAll returns the whole catalogue ordered by id. Used for the
// id-recommendation prompt, which embeds a compact view of every product.
func (r *ProductRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Product{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByCategoryExcluding returns up to limit products sharing a category,
// with one product (the recommendation base) excluded.
func (r *ProductRepository) ListByCategoryExcluding(ctx context.Context, categoryID, excludeID int64, limit int) ([]models.Product, error) {
	filter := bson.M{
		"category_id": categoryID,
		"_id":         bson.M{"$ne": excludeID},
	}
	findOpts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Product{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Search matches the query as a case-insensitive substring of the product
// name or description.
func (r *ProductRepository) Search(ctx context.Context, query string) ([]models.Product, error) {
	pattern := regexp.QuoteMeta(query)
	filter := bson.M{"$or": bson.A{
		bson.M{"name": primitive.Regex{Pattern: pattern, Options: "i"}},
		bson.M{"description": primitive.Regex{Pattern: pattern, Options: "i"}},
	}}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Product{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListIDs returns every product id currently in the catalogue.
func (r *ProductRepository) ListIDs(ctx context.Context) ([]int64, error) {
	raw, err := r.col.Distinct(ctx, "_id", bson.M{})
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(raw))
	for _, v := range raw {
		switch n := v.(type) {
		case int64:
			ids = append(ids, n)
		case int32:
			ids = append(ids, int64(n))
		}
	}
	return ids, nil
}
