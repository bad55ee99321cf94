package prompts

import (
	"fmt"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/gateway"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/models"
)

const recommendationSystem = "You are a helpful shopping assistant explaining product recommendations."

// RecommendationMessages builds the free-text prompt explaining why the
// candidate products fit the base product.
func RecommendationMessages(base models.Product, recommended []models.Product) []gateway.Message {
	prompt := fmt.Sprintf(`The shopper is looking at this product:

%s

You (the AI assistant) selected these products as recommendations:

%s

Write a short, friendly explanation (3-4 sentences max) that tells the
shopper why these items are good recommendations based on the base product.
Avoid marketing buzzwords and be concise.`,
		productLine(base), productLines(recommended))

	return []gateway.Message{
		{Role: gateway.RoleSystem, Content: recommendationSystem},
		{Role: gateway.RoleUser, Content: prompt},
	}
}
