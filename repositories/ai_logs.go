package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/models"
)

type AILogRepository struct {
	col *mongo.Collection
}

func NewAILogRepository(db *mongo.Database) *AILogRepository {
	return &AILogRepository{col: db.Collection("ai_logs")}
}

func (r *AILogRepository) Insert(ctx context.Context, l models.AILog) error {
	if l.RequestedAt.IsZero() {
		l.RequestedAt = time.Now()
	}
	if l.CompletedAt.IsZero() {
		l.CompletedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, l)
	return err
}
