// Package gateway wraps the external generative-language backend behind a
// small client interface. Every failure mode of the outbound call (transport,
// auth, quota, empty response) collapses into ErrGenerationFailed: callers
// never branch on failure subtypes, they only take the fallback path.
package gateway

import (
	"context"
	"errors"
	"time"
)

// ErrGenerationFailed is the single opaque failure condition of the gateway.
// The underlying cause is wrapped for logs but carries no contract.
var ErrGenerationFailed = errors.New("generation failed")

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// callTimeout bounds the single outbound attempt. A timeout surfaces as the
// same opaque generation failure as any other error.
const callTimeout = 30 * time.Second

// Message is one role-tagged entry of a conversational prompt.
type Message struct {
	Role    string
	Content string
}

// Request carries one generation call. Exactly one attempt is made per
// request: no retries, no caching.
type Request struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float32
}

// Client is the model gateway consumed by the orchestration services.
//
// Available reports whether the access credential is currently present in
// the process environment. It is checked per request, never cached, so that
// removing the key disables enrichment without a restart.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
	Available() bool
	CredentialName() string
}
