package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/dto"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/gateway"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/internal/logger"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/interpreter"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/models"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/prompts"
)

const (
	recommendFeature     = "recommendation"
	recommendMaxTokens   = 180
	recommendTemperature = 0.6

	purchaseFeature     = "purchase_recommendation"
	purchaseMaxTokens   = 128
	purchaseTemperature = 0.2

	// maxRecommendations bounds the same-category candidate list.
	maxRecommendations = 4

	// maxSuggestedIDs bounds how many model-suggested ids are kept.
	maxSuggestedIDs = 3
)

// RecommendationService serves both recommendation flavours: same-category
// candidates with an AI explanation, and purchase-history-driven product-id
// suggestions.
type RecommendationService struct {
	products  ProductStore
	reviews   ReviewStore
	orders    OrderStore
	gw        gateway.Client
	chatModel string
	recModel  string
	audit     *AIAudit
}

func NewRecommendationService(products ProductStore, reviews ReviewStore, orders OrderStore, gw gateway.Client, chatModel, recModel string, audit *AIAudit) *RecommendationService {
	return &RecommendationService{
		products:  products,
		reviews:   reviews,
		orders:    orders,
		gw:        gw,
		chatModel: chatModel,
		recModel:  recModel,
		audit:     audit,
	}
}

// Recommend returns the base product, up to maxRecommendations same-category
// candidates (base always excluded) and an explanation string. Enrichment is
// additive: a failed or disabled model call still yields a complete response
// with a deterministic ai_message.
func (s *RecommendationService) Recommend(ctx context.Context, productID int64) (*dto.RecommendationResponseDTO, error) {
	base, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.products.ListByCategoryExcluding(ctx, base.CategoryID, base.ID, maxRecommendations)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(candidates)+1)
	ids = append(ids, base.ID)
	for _, c := range candidates {
		ids = append(ids, c.ID)
	}
	reviewsByProduct, err := s.reviews.ListByProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	recDTOs := make([]dto.ProductDTO, 0, len(candidates))
	for _, c := range candidates {
		recDTOs = append(recDTOs, dto.NewProductDTO(c, reviewsByProduct[c.ID]))
	}

	resp := &dto.RecommendationResponseDTO{
		BaseProduct:     dto.NewProductDTO(*base, reviewsByProduct[base.ID]),
		Recommendations: recDTOs,
	}

	if !s.gw.Available() {
		resp.AIMessage = fmt.Sprintf("AI explanation is disabled because %s is not configured.", s.gw.CredentialName())
		return resp, nil
	}

	msgs := prompts.RecommendationMessages(*base, candidates)
	start := time.Now()
	raw, genErr := s.gw.Generate(ctx, gateway.Request{
		Model:       s.chatModel,
		Messages:    msgs,
		MaxTokens:   recommendMaxTokens,
		Temperature: recommendTemperature,
	})
	s.audit.Record(recommendFeature, s.chatModel, msgs, raw, genErr, start)

	if genErr != nil {
		resp.AIMessage = fmt.Sprintf("AI explanation unavailable: %v", genErr)
		return resp, nil
	}
	resp.AIMessage = interpreter.Text(raw)
	return resp, nil
}

// RecommendForUser asks the model for product ids based on the user's
// purchase history and the full catalogue. Every failure path — no orders,
// no credential, gateway failure, unparseable output — degrades silently to
// an empty suggestion list; this endpoint never errors on enrichment.
func (s *RecommendationService) RecommendForUser(ctx context.Context, userID int64) (*dto.PurchaseRecommendationDTO, error) {
	resp := &dto.PurchaseRecommendationDTO{
		UserID:     userID,
		ProductIDs: []int64{},
		Products:   []dto.ProductDTO{},
	}

	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return resp, nil
	}

	if !s.gw.Available() {
		logger.Log.Infof("%s not found, skipping ai recommendations for user %d", s.gw.CredentialName(), userID)
		return resp, nil
	}

	catalogue, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(catalogue) == 0 {
		return resp, nil
	}

	msgs := prompts.PurchaseRecommendationMessages(userID, orders, catalogue)
	start := time.Now()
	raw, genErr := s.gw.Generate(ctx, gateway.Request{
		Model:       s.recModel,
		Messages:    msgs,
		MaxTokens:   purchaseMaxTokens,
		Temperature: purchaseTemperature,
	})
	s.audit.Record(purchaseFeature, s.recModel, msgs, raw, genErr, start)

	if genErr != nil {
		logger.Log.Warnf("ai recommendation call failed for user %d: %v", userID, genErr)
		return resp, nil
	}

	existingIDs, err := s.products.ListIDs(ctx)
	if err != nil {
		return nil, err
	}
	existing := make(map[int64]struct{}, len(existingIDs))
	for _, id := range existingIDs {
		existing[id] = struct{}{}
	}

	suggested := interpreter.ProductIDs(raw, existing)
	if len(suggested) > maxSuggestedIDs {
		suggested = suggested[:maxSuggestedIDs]
	}
	resp.ProductIDs = suggested
	if len(suggested) == 0 {
		return resp, nil
	}

	found, err := s.products.FindByIDs(ctx, suggested)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]models.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	reviewsByProduct, err := s.reviews.ListByProducts(ctx, suggested)
	if err != nil {
		return nil, err
	}

	// keep the model's ordering
	for _, id := range suggested {
		if p, ok := byID[id]; ok {
			resp.Products = append(resp.Products, dto.NewProductDTO(p, reviewsByProduct[p.ID]))
		}
	}
	return resp, nil
}
