package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/dto"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/gateway"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/interpreter"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/prompts"
)

const (
	searchFeature     = "search_explanation"
	searchMaxTokens   = 200
	searchTemperature = 0.6
)

// SearchService runs the catalogue text search and attaches an AI
// explanation of why the matches fit the query.
type SearchService struct {
	products ProductStore
	reviews  ReviewStore
	gw       gateway.Client
	model    string
	audit    *AIAudit
}

func NewSearchService(products ProductStore, reviews ReviewStore, gw gateway.Client, model string, audit *AIAudit) *SearchService {
	return &SearchService{products: products, reviews: reviews, gw: gw, model: model, audit: audit}
}

// Search returns the matching products plus an explanation. With zero
// matches the gateway is never invoked; a disabled or failed model call
// resolves to a deterministic explanation string. The result list is
// returned in every case.
func (s *SearchService) Search(ctx context.Context, query string) (*dto.SearchResponseDTO, error) {
	matches, err := s.products.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	reviewsByProduct, err := s.reviews.ListByProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	results := make([]dto.ProductDTO, 0, len(matches))
	for _, m := range matches {
		results = append(results, dto.NewProductDTO(m, reviewsByProduct[m.ID]))
	}

	resp := &dto.SearchResponseDTO{
		Query:   query,
		Count:   len(results),
		Results: results,
	}

	switch {
	case len(matches) == 0:
		resp.Explanation = "No products matched this search query."
	case !s.gw.Available():
		resp.Explanation = fmt.Sprintf("AI explanation is disabled because %s is not configured.", s.gw.CredentialName())
	default:
		msgs := prompts.SearchExplanationMessages(query, matches)
		start := time.Now()
		raw, genErr := s.gw.Generate(ctx, gateway.Request{
			Model:       s.model,
			Messages:    msgs,
			MaxTokens:   searchMaxTokens,
			Temperature: searchTemperature,
		})
		s.audit.Record(searchFeature, s.model, msgs, raw, genErr, start)

		if genErr != nil {
			resp.Explanation = fmt.Sprintf("AI explanation unavailable: %v", genErr)
		} else {
			resp.Explanation = interpreter.Text(raw)
		}
	}
	return resp, nil
}
