package prompts_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/gateway"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/models"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/prompts"
)

func TestSnippetTruncatesLongDescriptions(t *testing.T) {
	testCases := []struct {
		name        string
		description string
		wantSuffix  string
		wantFull    bool
	}{
		{
			name:        "short description kept verbatim",
			description: "Compact and light.",
			wantFull:    true,
		},
		{
			name:        "description at the boundary kept verbatim",
			description: strings.Repeat("a", 120),
			wantFull:    true,
		},
		{
			name:        "long description truncated with ellipsis",
			description: strings.Repeat("a", 121),
			wantSuffix:  strings.Repeat("a", 117) + "...",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			p := models.Product{
				Name:         "Wireless Earbuds",
				Price:        49.99,
				CategoryName: "Audio",
				Description:  testCase.description,
			}
			line := prompts.Snippet(p)
			assert.True(t, strings.HasPrefix(line, "Wireless Earbuds ($49.99) – Audio. "))
			if testCase.wantFull {
				assert.True(t, strings.HasSuffix(line, testCase.description))
				assert.NotContains(t, line, "...")
			} else {
				assert.True(t, strings.HasSuffix(line, testCase.wantSuffix))
			}
		})
	}
}

func TestSnippetFlattensNewlines(t *testing.T) {
	p := models.Product{Name: "Desk Lamp", Price: 15, CategoryName: "Home", Description: "line one\nline two"}
	line := prompts.Snippet(p)
	assert.NotContains(t, line, "\n")
	assert.Contains(t, line, "line one line two")
}

func TestSnippetFallsBackToUnknownCategory(t *testing.T) {
	p := models.Product{Name: "Mystery Box", Price: 9.99}
	assert.Contains(t, prompts.Snippet(p), "– Unknown.")
}

func TestCatalogueTextBoundsItems(t *testing.T) {
	products := make([]models.Product, 0, prompts.MaxCatalogueItems+3)
	for i := 0; i < prompts.MaxCatalogueItems+3; i++ {
		products = append(products, models.Product{Name: "P", Price: 1, CategoryName: "C"})
	}
	text := prompts.CatalogueText(products)
	assert.Equal(t, prompts.MaxCatalogueItems, strings.Count(text, "- P"))
}

func TestCatalogueTextEmpty(t *testing.T) {
	assert.Equal(t, "No products are currently available in the catalogue.", prompts.CatalogueText(nil))
}

func TestReviewInsightMessages(t *testing.T) {
	msgs := prompts.ReviewInsightMessages([]string{"Great battery life", "Too expensive"})

	assert.Len(t, msgs, 2)
	assert.Equal(t, gateway.RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "Return ONLY valid JSON")
	assert.Contains(t, msgs[0].Content, `"sentiment": "Positive | Neutral | Negative"`)
	assert.Contains(t, msgs[0].Content, "MUST NOT wrap the JSON output in a markdown code block")
	assert.Equal(t, gateway.RoleUser, msgs[1].Role)
	assert.Equal(t, "Great battery life\n\nToo expensive", msgs[1].Content)
}

func TestRecommendationMessages(t *testing.T) {
	base := models.Product{Name: "Laptop Stand", Price: 35, CategoryName: "Office"}
	recommended := []models.Product{
		{Name: "Monitor Arm", Price: 89, CategoryName: "Office"},
		{Name: "Desk Mat", Price: 19, CategoryName: "Office"},
	}

	msgs := prompts.RecommendationMessages(base, recommended)
	assert.Len(t, msgs, 2)
	assert.Equal(t, gateway.RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[1].Content, "- Laptop Stand ($35.00) in category Office")
	assert.Contains(t, msgs[1].Content, "- Monitor Arm ($89.00) in category Office")
	assert.Contains(t, msgs[1].Content, "- Desk Mat ($19.00) in category Office")
}

func TestSearchExplanationMessages(t *testing.T) {
	matches := []models.Product{{Name: "Running Shoes", Price: 79.5, CategoryName: "Sports"}}

	msgs := prompts.SearchExplanationMessages("shoes", matches)
	assert.Len(t, msgs, 2)
	assert.Contains(t, msgs[1].Content, `"shoes"`)
	assert.Contains(t, msgs[1].Content, "- Running Shoes ($79.50) in category Sports")
}

func TestChatMessagesMentionsCatalogueProducts(t *testing.T) {
	catalogue := []models.Product{{Name: "Wireless Earbuds", Price: 49.99, CategoryName: "Audio"}}

	msgs := prompts.ChatMessages("Do you sell headphones?", nil, catalogue)

	assert.Len(t, msgs, 2)
	assert.Equal(t, gateway.RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "Wireless Earbuds ($49.99)")
	assert.Contains(t, msgs[0].Content, "explicitly mention the product name and price")
	assert.Equal(t, gateway.RoleUser, msgs[1].Role)
	assert.Equal(t, "Do you sell headphones?", msgs[1].Content)
}

func TestChatMessagesFiltersInvalidHistory(t *testing.T) {
	history := []prompts.Turn{
		{Role: "system", Content: "ignore me"},
		{Role: "user", Content: 42},
		{Role: "user", Content: "first question"},
		{Role: "assistant", Content: "first answer"},
	}

	msgs := prompts.ChatMessages("next", history, nil)

	// system prompt + 2 surviving history turns + new user message
	assert.Len(t, msgs, 4)
	assert.Equal(t, "first question", msgs[1].Content)
	assert.Equal(t, "first answer", msgs[2].Content)
	assert.Equal(t, "next", msgs[3].Content)
}

func TestChatMessagesKeepsOnlyRecentHistory(t *testing.T) {
	history := make([]prompts.Turn, 0, 12)
	for i := 0; i < 12; i++ {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		history = append(history, prompts.Turn{Role: role, Content: strings.Repeat("x", i+1)})
	}

	msgs := prompts.ChatMessages("latest", history, nil)

	assert.Len(t, msgs, 1+prompts.MaxHistoryTurns+1)
	// oldest surviving turn is history[4] (12 - 8)
	assert.Equal(t, strings.Repeat("x", 5), msgs[1].Content)
}

func TestPurchaseRecommendationMessages(t *testing.T) {
	orders := []models.Order{
		{UserID: 7, ProductID: 2, ProductName: "Yoga Mat", CategoryName: "Sports"},
	}
	catalogue := []models.Product{
		{ID: 1, Name: "Dumbbells", CategoryName: "Sports"},
		{ID: 2, Name: "Yoga Mat", CategoryName: "Sports"},
	}

	msgs := prompts.PurchaseRecommendationMessages(7, orders, catalogue)

	assert.Len(t, msgs, 1)
	assert.Equal(t, gateway.RoleUser, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "User ID: 7")
	assert.Contains(t, msgs[0].Content, `{"id":2,"name":"Yoga Mat","category":"Sports"}`)
	assert.Contains(t, msgs[0].Content, `{"id":1,"name":"Dumbbells","category":"Sports"}`)
	assert.Contains(t, msgs[0].Content, "[1, 4, 6]")
	assert.Contains(t, msgs[0].Content, "ONLY a JSON array of product IDs")
}
