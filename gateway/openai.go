package gateway

import (
	"context"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/api/trace"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/internal/logger"
)

const openAIKeyEnv = "OPENAI_API_KEY"

// OpenAIClient talks to the OpenAI chat-completions API. The API key is read
// from the environment on every call.
type OpenAIClient struct {
	baseURL string
}

func NewOpenAI(baseURL string) *OpenAIClient {
	return &OpenAIClient{baseURL: baseURL}
}

func (c *OpenAIClient) Available() bool {
	return os.Getenv(openAIKeyEnv) != ""
}

func (c *OpenAIClient) CredentialName() string {
	return openAIKeyEnv
}

func (c *OpenAIClient) Generate(ctx context.Context, req Request) (string, error) {
	apiKey := os.Getenv(openAIKeyEnv)
	if apiKey == "" {
		return "", fmt.Errorf("%w: %s is not set", ErrGenerationFailed, openAIKeyEnv)
	}

	requestID, spanID := trace.NextSpanID(ctx)
	logger.DebugWithFields("calling openai chat completion", logger.Fields{
		"model":      req.Model,
		"request_id": requestID,
		"span_id":    spanID,
	})

	cfg := openai.DefaultConfig(apiKey)
	if c.baseURL != "" {
		cfg.BaseURL = c.baseURL
	}
	client := openai.NewClientWithConfig(cfg)

	var msgs []openai.ChatCompletionMessage
	for _, m := range req.Messages {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    msgs,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", ErrGenerationFailed)
	}
	return resp.Choices[0].Message.Content, nil
}
