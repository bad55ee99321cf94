package services_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/dto"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/gateway"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/models"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/services"
)

func newChatService(products *fakeProductStore, gw *fakeGateway) *services.ChatService {
	var noAudit *services.AIAudit
	return services.NewChatService(products, gw, "gpt-4.1-mini", noAudit)
}

func TestChatReply(t *testing.T) {
	products := &fakeProductStore{products: []models.Product{
		{ID: 1, Name: "Wireless Earbuds", Price: 49.99, CategoryName: "Audio"},
	}}
	gw := &fakeGateway{available: true, reply: "  We have Wireless Earbuds for $49.99.\n"}
	svc := newChatService(products, gw)

	resp, chatErr := svc.Chat(context.Background(), "Do you sell headphones?", nil)
	require.Nil(t, chatErr)

	assert.Equal(t, "We have Wireless Earbuds for $49.99.", resp.Reply)

	// the catalogue snapshot must be embedded in the system prompt
	require.NotEmpty(t, gw.lastReq.Messages)
	assert.Equal(t, gateway.RoleSystem, gw.lastReq.Messages[0].Role)
	assert.Contains(t, gw.lastReq.Messages[0].Content, "Wireless Earbuds ($49.99)")
	assert.Equal(t, 250, gw.lastReq.MaxTokens)
	assert.InDelta(t, 0.7, gw.lastReq.Temperature, 0.001)
}

func TestChatForwardsHistory(t *testing.T) {
	gw := &fakeGateway{available: true, reply: "Sure."}
	svc := newChatService(&fakeProductStore{}, gw)

	history := []dto.ChatTurnDTO{
		{Role: "user", Content: "What do you sell?"},
		{Role: "assistant", Content: "Mostly audio gear."},
		{Role: "user", Content: 12345}, // non-string content must be dropped
	}
	_, chatErr := svc.Chat(context.Background(), "Anything under $50?", history)
	require.Nil(t, chatErr)

	// system + 2 surviving history turns + new message
	require.Len(t, gw.lastReq.Messages, 4)
	assert.Equal(t, "What do you sell?", gw.lastReq.Messages[1].Content)
	assert.Equal(t, "Mostly audio gear.", gw.lastReq.Messages[2].Content)
	assert.Equal(t, "Anything under $50?", gw.lastReq.Messages[3].Content)
}

func TestChatGatewayFailure(t *testing.T) {
	gw := &fakeGateway{available: true, err: fmt.Errorf("%w: upstream down", gateway.ErrGenerationFailed)}
	svc := newChatService(&fakeProductStore{}, gw)

	resp, chatErr := svc.Chat(context.Background(), "hello", nil)

	assert.Nil(t, resp)
	require.NotNil(t, chatErr)
	assert.Equal(t, http.StatusBadGateway, chatErr.StatusCode)
	assert.Contains(t, chatErr.Message, "AI error: ")
	assert.ErrorIs(t, chatErr.Cause, gateway.ErrGenerationFailed)
}
