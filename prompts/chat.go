package prompts

import (
	"fmt"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/gateway"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/models"
)

// MaxHistoryTurns bounds how much conversation history a chat prompt keeps.
const MaxHistoryTurns = 8

// Turn is one caller-supplied conversation entry. Content is untyped on
// purpose: request payloads may carry anything there, and only string
// content survives into the prompt.
type Turn struct {
	Role    string
	Content any
}

const chatSystemTemplate = `You are a friendly shopping assistant for the SmartShop e-commerce website.

You MUST base your product suggestions ONLY on the following catalogue.
When you recommend something, explicitly mention the product name and price.
If a request cannot be answered with these products, say so honestly.

SmartShop catalogue:
%s`

// ChatMessages builds the message sequence for the chat assistant: a system
// prompt carrying a bounded catalogue snapshot, the last MaxHistoryTurns
// valid history turns, then the new user message.
//
// History turns with a role outside {user, assistant} or with non-string
// content are silently dropped before the bound is applied.
func ChatMessages(userMessage string, history []Turn, catalogue []models.Product) []gateway.Message {
	msgs := []gateway.Message{
		{Role: gateway.RoleSystem, Content: fmt.Sprintf(chatSystemTemplate, CatalogueText(catalogue))},
	}

	valid := make([]gateway.Message, 0, len(history))
	for _, t := range history {
		if t.Role != gateway.RoleUser && t.Role != gateway.RoleAssistant {
			continue
		}
		content, ok := t.Content.(string)
		if !ok {
			continue
		}
		valid = append(valid, gateway.Message{Role: t.Role, Content: content})
	}
	if len(valid) > MaxHistoryTurns {
		valid = valid[len(valid)-MaxHistoryTurns:]
	}
	msgs = append(msgs, valid...)

	return append(msgs, gateway.Message{Role: gateway.RoleUser, Content: userMessage})
}
