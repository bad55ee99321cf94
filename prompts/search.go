package prompts

import (
	"fmt"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/gateway"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/models"
)

const searchSystem = "You are a helpful shopping assistant explaining search results to users."

// SearchExplanationMessages builds the free-text prompt explaining why the
// matched products fit the search query.
func SearchExplanationMessages(query string, matches []models.Product) []gateway.Message {
	prompt := fmt.Sprintf(`The user searched for:

    %q

You are shown the following products from an e-commerce catalogue:

%s

In 3-4 short sentences, explain in plain language why these items are
good matches for the search query. Focus on category, use case, price range,
and relevant features. Be concise and shopper-friendly.`,
		query, productLines(matches))

	return []gateway.Message{
		{Role: gateway.RoleSystem, Content: searchSystem},
		{Role: gateway.RoleUser, Content: prompt},
	}
}
