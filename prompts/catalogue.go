// Package prompts builds the text prompts and message sequences sent to the
// model gateway. Every builder is a pure function of its inputs: no clock,
// no randomness, no mutable state. Size is kept predictable by bounding the
// number of catalogue items and truncating descriptions.
package prompts

import (
	"fmt"
	"strings"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/models"
)

const (
	// MaxCatalogueItems bounds how many products a prompt may embed.
	MaxCatalogueItems = 8

	// descriptionBudget is the character budget for a product description
	// inside a prompt; longer descriptions get the budget plus an ellipsis.
	descriptionBudget = 117
)

// Snippet renders one product as a single prompt line:
// name, price, category and a flattened, truncated description.
func Snippet(p models.Product) string {
	desc := strings.ReplaceAll(p.Description, "\n", " ")
	rs := []rune(desc)
	if len(rs) > descriptionBudget+3 {
		desc = string(rs[:descriptionBudget]) + "..."
	}
	return fmt.Sprintf("%s ($%.2f) – %s. %s", p.Name, p.Price, categoryName(p), desc)
}

// CatalogueText renders a bounded catalogue snapshot as a bullet list.
// An empty catalogue yields an explicit marker line so the model is told,
// rather than left to guess, that nothing is for sale.
func CatalogueText(products []models.Product) string {
	if len(products) > MaxCatalogueItems {
		products = products[:MaxCatalogueItems]
	}
	if len(products) == 0 {
		return "No products are currently available in the catalogue."
	}
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, "- "+Snippet(p))
	}
	return strings.Join(lines, "\n")
}

// productLine is the short form used by explanation prompts.
func productLine(p models.Product) string {
	return fmt.Sprintf("- %s ($%.2f) in category %s", p.Name, p.Price, categoryName(p))
}

func productLines(products []models.Product) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, productLine(p))
	}
	return strings.Join(lines, "\n")
}

func categoryName(p models.Product) string {
	if p.CategoryName == "" {
		return "Unknown"
	}
	return p.CategoryName
}
