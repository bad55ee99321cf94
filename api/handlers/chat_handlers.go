package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/dto"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/services"
)

// ChatHandler godoc
// @Summary      Catalogue-aware assistant chat
// @Description  Answer a shopper question grounded in a snapshot of the catalogue
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ChatRequestDTO  true  "chat request"
// @Success      200   {object}  dto.ChatResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      502   {object}  dto.ErrorResponseDTO
// @Router       /assistant/chat [post]
func ChatHandler(svc *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ChatRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "message field is required."})
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "message field is required."})
			return
		}

		resp, chatErr := svc.Chat(c.Request.Context(), req.Message, req.History)
		if chatErr != nil {
			c.JSON(chatErr.StatusCode, dto.ErrorResponseDTO{Error: chatErr.Message})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
