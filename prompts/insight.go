package prompts

import (
	"strings"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/gateway"
)

// reviewInsightInstruction demands a machine-parseable payload and nothing
// else. The worked shape keeps the model honest; the interpreter still
// degrades gracefully when it is not.
const reviewInsightInstruction = `You are an AI assistant that analyses e-commerce product reviews.
Return ONLY valid JSON with the following structure:
{
  "summary": "short paragraph summary",
  "pros": ["bullet 1", "bullet 2"],
  "cons": ["bullet 1", "bullet 2"],
  "sentiment": "Positive | Neutral | Negative"
}
You MUST NOT wrap the JSON output in a markdown code block.
Do not include any explanation text outside the JSON object.`

// ReviewInsightMessages builds the structured-output prompt for review
// summarization. Review comments are expected newest first and are joined
// with blank lines.
func ReviewInsightMessages(comments []string) []gateway.Message {
	return []gateway.Message{
		{Role: gateway.RoleSystem, Content: reviewInsightInstruction},
		{Role: gateway.RoleUser, Content: strings.Join(comments, "\n\n")},
	}
}
