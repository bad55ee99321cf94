package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/eventbus"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/events"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/gateway"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/internal/logger"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/models"
)

const (
	promptExcerptLimit   = 500
	responseExcerptLimit = 200
)

// AIAudit records every outbound model call: an ai_logs document for
// monitoring and an AIGenerationEvent on the bus. Recording happens off the
// request path and never affects the response; a nil *AIAudit disables it.
type AIAudit struct {
	logs AILogStore
	bus  eventbus.Publisher
}

func NewAIAudit(logs AILogStore, bus eventbus.Publisher) *AIAudit {
	return &AIAudit{logs: logs, bus: bus}
}

// Record persists one call. The caller's context is not reused: auditing
// outlives the request by design.
func (a *AIAudit) Record(feature, model string, msgs []gateway.Message, raw string, callErr error, requestedAt time.Time) {
	if a == nil {
		return
	}
	completedAt := time.Now()

	var prompt string
	if len(msgs) > 0 {
		prompt = msgs[len(msgs)-1].Content
	}

	entry := models.AILog{
		Feature:         feature,
		Model:           model,
		DurationMs:      completedAt.Sub(requestedAt).Milliseconds(),
		Success:         callErr == nil,
		PromptExcerpt:   truncate(prompt, promptExcerptLimit),
		ResponseExcerpt: truncate(raw, responseExcerptLimit),
		RequestedAt:     requestedAt,
		CompletedAt:     completedAt,
	}
	if callErr != nil {
		msg := callErr.Error()
		entry.ErrorMessage = &msg
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if a.logs != nil {
			if err := a.logs.Insert(ctx, entry); err != nil {
				logger.Log.Errorf("failed to insert ai log (feature=%s): %v", feature, err)
			}
		}
		if a.bus != nil {
			ev := events.AIGenerationEvent{
				ID:         uuid.NewString(),
				Type:       events.TopicAIGeneration,
				Feature:    feature,
				Model:      model,
				Success:    callErr == nil,
				DurationMs: entry.DurationMs,
				OccurredAt: completedAt,
				Source:     "smartshop-api",
			}
			if err := a.bus.Publish(ctx, events.TopicAIGeneration, ev.ID, ev); err != nil {
				logger.Log.Errorf("failed to publish ai generation event: %v", err)
			}
		}
	}()
}

// truncate returns s truncated to max runes.
func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}
