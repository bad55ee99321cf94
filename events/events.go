package events

import "time"

// TopicAIGeneration carries one event per outbound model call.
const TopicAIGeneration = "smartshop.ai.generation"

// AIGenerationEvent reports a single model call for downstream consumers
// (usage dashboards, cost accounting). It is fire-and-forget: publishing
// never blocks or fails a user request.
type AIGenerationEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Feature    string    `json:"feature"`
	Model      string    `json:"model"`
	Success    bool      `json:"success"`
	DurationMs int64     `json:"duration_ms"`
	OccurredAt time.Time `json:"occurred_at"`
	Source     string    `json:"source"`
}
