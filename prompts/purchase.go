package prompts

import (
	"encoding/json"
	"fmt"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/gateway"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/models"
)

// compactProduct is the minimal product view embedded in the
// id-recommendation prompt.
type compactProduct struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// PurchaseRecommendationMessages builds the structured-output prompt that
// asks the model for product ids to recommend from purchase history. The
// instruction demands a bare JSON array of integers with a worked example
// and forbids prose; the interpreter filters whatever comes back against
// the live catalogue anyway.
func PurchaseRecommendationMessages(userID int64, purchased []models.Order, catalogue []models.Product) []gateway.Message {
	bought := make([]compactProduct, 0, len(purchased))
	for _, o := range purchased {
		bought = append(bought, compactProduct{ID: o.ProductID, Name: o.ProductName, Category: o.CategoryName})
	}
	all := make([]compactProduct, 0, len(catalogue))
	for _, p := range catalogue {
		all = append(all, compactProduct{ID: p.ID, Name: p.Name, Category: p.CategoryName})
	}

	boughtJSON, _ := json.Marshal(bought)
	catalogueJSON, _ := json.Marshal(all)

	prompt := fmt.Sprintf(`You are a recommendation engine for an e-commerce website.

User ID: %d

User purchase history (list of products already bought):
%s

Full product catalogue:
%s

Task:
Recommend 3 NEW products the user is likely to buy next.
You must return ONLY a JSON array of product IDs (integers) that exist in the catalogue.
Example of correct output:
[1, 4, 6]

Do not include any explanation text, just the JSON list.`,
		userID, boughtJSON, catalogueJSON)

	return []gateway.Message{
		{Role: gateway.RoleUser, Content: prompt},
	}
}
