package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/dto"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/gateway"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/interpreter"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/prompts"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/repositories"
)

const (
	chatFeature     = "assistant_chat"
	chatMaxTokens   = 250
	chatTemperature = 0.7
)

// ChatError carries the HTTP status and user-facing message for a failed
// chat request.
type ChatError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *ChatError) Error() string {
	if e == nil {
		return "chat failed"
	}
	return e.Message
}

// ChatService answers shopper questions grounded in a bounded catalogue
// snapshot. Unlike the other features it has no eligibility gate: a missing
// credential simply fails the model call and surfaces as a request-level
// 502, because there is no catalogue-only response worth returning.
type ChatService struct {
	products ProductStore
	gw       gateway.Client
	model    string
	audit    *AIAudit
}

func NewChatService(products ProductStore, gw gateway.Client, model string, audit *AIAudit) *ChatService {
	return &ChatService{products: products, gw: gw, model: model, audit: audit}
}

func (s *ChatService) Chat(ctx context.Context, message string, history []dto.ChatTurnDTO) (*dto.ChatResponseDTO, *ChatError) {
	snapshot, err := s.products.List(ctx, repositories.ListProductsOptions{
		Page:     1,
		PageSize: prompts.MaxCatalogueItems,
	})
	if err != nil {
		return nil, &ChatError{StatusCode: http.StatusInternalServerError, Message: "failed to load catalogue", Cause: err}
	}

	turns := make([]prompts.Turn, 0, len(history))
	for _, h := range history {
		turns = append(turns, prompts.Turn{Role: h.Role, Content: h.Content})
	}

	msgs := prompts.ChatMessages(message, turns, snapshot)
	start := time.Now()
	raw, genErr := s.gw.Generate(ctx, gateway.Request{
		Model:       s.model,
		Messages:    msgs,
		MaxTokens:   chatMaxTokens,
		Temperature: chatTemperature,
	})
	s.audit.Record(chatFeature, s.model, msgs, raw, genErr, start)

	if genErr != nil {
		return nil, &ChatError{
			StatusCode: http.StatusBadGateway,
			Message:    fmt.Sprintf("AI error: %v", genErr),
			Cause:      genErr,
		}
	}

	return &dto.ChatResponseDTO{Reply: interpreter.Text(raw)}, nil
}
