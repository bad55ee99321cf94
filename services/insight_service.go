package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/dto"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/gateway"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/internal/logger"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/interpreter"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/prompts"
)

const (
	insightFeature     = "review_summary"
	insightMaxTokens   = 300
	insightTemperature = 0.4
)

// InsightService orchestrates review summarization: gather reviews, check
// enrichment eligibility, attempt the model call, assemble the response.
// The catalogue skeleton (id, name, review count) is present on every path.
type InsightService struct {
	products ProductStore
	reviews  ReviewStore
	gw       gateway.Client
	model    string
	audit    *AIAudit
}

func NewInsightService(products ProductStore, reviews ReviewStore, gw gateway.Client, model string, audit *AIAudit) *InsightService {
	return &InsightService{products: products, reviews: reviews, gw: gw, model: model, audit: audit}
}

// ReviewSummaryResult pairs the response body with the HTTP status it must
// be served under. The three degraded paths carry deliberately distinct
// statuses: no input is the caller's situation (200), a missing credential
// is our misconfiguration (500), a failed call is an upstream fault (502).
type ReviewSummaryResult struct {
	Status int
	Body   dto.ReviewSummaryDTO
}

// Summarize builds the AI review summary for one product. A returned error
// means the catalogue lookup itself failed (unknown product included);
// enrichment problems never surface as errors, only as result shapes.
func (s *InsightService) Summarize(ctx context.Context, productID int64) (*ReviewSummaryResult, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	comments := make([]string, 0, len(reviews))
	for _, r := range reviews {
		if r.Comment != "" {
			comments = append(comments, r.Comment)
		}
	}

	body := dto.ReviewSummaryDTO{
		ProductID:   product.ID,
		ProductName: product.Name,
		ReviewCount: len(comments),
		Pros:        []string{},
		Cons:        []string{},
	}

	if len(comments) == 0 {
		body.Message = "No reviews available for summarisation."
		return &ReviewSummaryResult{Status: http.StatusOK, Body: body}, nil
	}

	if !s.gw.Available() {
		body.Error = fmt.Sprintf("%s is not configured on the server.", s.gw.CredentialName())
		return &ReviewSummaryResult{Status: http.StatusInternalServerError, Body: body}, nil
	}

	msgs := prompts.ReviewInsightMessages(comments)
	start := time.Now()
	raw, genErr := s.gw.Generate(ctx, gateway.Request{
		Model:       s.model,
		Messages:    msgs,
		MaxTokens:   insightMaxTokens,
		Temperature: insightTemperature,
	})
	s.audit.Record(insightFeature, s.model, msgs, raw, genErr, start)

	if genErr != nil {
		body.Error = fmt.Sprintf("AI service error: %v", genErr)
		return &ReviewSummaryResult{Status: http.StatusBadGateway, Body: body}, nil
	}

	outcome := interpreter.ReviewInsight(raw)
	if outcome.Degraded {
		logger.InfoWithFields("review insight degraded to raw-text fallback", logger.Fields{
			"feature":    insightFeature,
			"product_id": product.ID,
		})
	}

	body.Summary = &outcome.Insight.Summary
	body.Pros = outcome.Insight.Pros
	body.Cons = outcome.Insight.Cons
	if outcome.Insight.Sentiment != "" {
		sentiment := outcome.Insight.Sentiment
		body.Sentiment = &sentiment
	}
	return &ReviewSummaryResult{Status: http.StatusOK, Body: body}, nil
}
