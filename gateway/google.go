package gateway

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/api/trace"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/internal/logger"
)

const geminiKeyEnv = "GEMINI_API_KEY"

// GoogleClient talks to the Gemini API. Message sequences are mapped onto
// genai contents: the system message becomes the system instruction,
// assistant turns become "model" turns.
type GoogleClient struct{}

func NewGoogle() *GoogleClient {
	return &GoogleClient{}
}

func (c *GoogleClient) Available() bool {
	return os.Getenv(geminiKeyEnv) != ""
}

func (c *GoogleClient) CredentialName() string {
	return geminiKeyEnv
}

func (c *GoogleClient) Generate(ctx context.Context, req Request) (string, error) {
	apiKey := os.Getenv(geminiKeyEnv)
	if apiKey == "" {
		return "", fmt.Errorf("%w: %s is not set", ErrGenerationFailed, geminiKeyEnv)
	}

	requestID, spanID := trace.NextSpanID(ctx)
	logger.DebugWithFields("calling gemini generate content", logger.Fields{
		"model":      req.Model,
		"request_id": requestID,
		"span_id":    spanID,
	})

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Temperature),
		MaxOutputTokens: int32(req.MaxTokens),
	}

	var contents []*genai.Content
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: m.Content}}}
		case RoleAssistant:
			contents = append(contents, &genai.Content{
				Role:  genai.RoleModel,
				Parts: []*genai.Part{{Text: m.Content}},
			})
		default:
			contents = append(contents, &genai.Content{
				Role:  genai.RoleUser,
				Parts: []*genai.Part{{Text: m.Content}},
			})
		}
	}

	result, err := client.Models.GenerateContent(ctx, req.Model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty completion", ErrGenerationFailed)
	}
	return text, nil
}
