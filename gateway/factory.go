package gateway

import (
	"fmt"
	"strings"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/config"
)

const (
	ProviderOpenAI = "openai"
	ProviderGoogle = "google"
)

// New builds the gateway client for the configured provider.
func New(cfg config.AIConfig) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderOpenAI, "":
		return NewOpenAI(""), nil
	case ProviderGoogle:
		return NewGoogle(), nil
	default:
		return nil, fmt.Errorf("unknown ai provider: %s", cfg.Provider)
	}
}
