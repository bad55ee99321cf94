package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/dto"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/repositories"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/services"
)

// ReviewSummaryHandler godoc
// @Summary      AI review summary
// @Description  Summarize a product's reviews into summary, pros, cons and sentiment
// @Tags         enrichment
// @Param        product_id  path  int  true  "Product id"
// @Produce      json
// @Success      200  {object}  dto.ReviewSummaryDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ReviewSummaryDTO  "model credential missing"
// @Failure      502  {object}  dto.ReviewSummaryDTO  "model call failed"
// @Router       /products/{product_id}/review-summary [get]
func ReviewSummaryHandler(svc *services.InsightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "Product not found."})
			return
		}

		result, err := svc.Summarize(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "Product not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(result.Status, result.Body)
	}
}

// RecommendationsHandler godoc
// @Summary      Same-category recommendations
// @Description  Return the base product, up to 4 same-category products and an AI explanation
// @Tags         enrichment
// @Param        product_id  query  int  true  "Base product id"
// @Produce      json
// @Success      200  {object}  dto.RecommendationResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /recommendations [get]
func RecommendationsHandler(svc *services.RecommendationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query("product_id")
		if raw == "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "product_id query parameter is required."})
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "Base product not found."})
			return
		}

		resp, err := svc.Recommend(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "Base product not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// SearchHandler godoc
// @Summary      Catalogue search
// @Description  Substring search over product name/description with an AI explanation of the matches
// @Tags         enrichment
// @Param        q  query  string  true  "Search text"
// @Produce      json
// @Success      200  {object}  dto.SearchResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /search [get]
func SearchHandler(svc *services.SearchService) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := strings.TrimSpace(c.Query("q"))
		if query == "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "q query parameter is required."})
			return
		}

		resp, err := svc.Search(c.Request.Context(), query)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// PurchaseRecommendationsHandler godoc
// @Summary      Purchase-history recommendations
// @Description  Suggest up to 3 catalogue products based on the user's past orders
// @Tags         enrichment
// @Param        user_id  path  int  true  "User id"
// @Produce      json
// @Success      200  {object}  dto.PurchaseRecommendationDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /users/{user_id}/ai-recommendations [get]
func PurchaseRecommendationsHandler(svc *services.RecommendationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "user_id must be an integer."})
			return
		}

		resp, err := svc.RecommendForUser(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
