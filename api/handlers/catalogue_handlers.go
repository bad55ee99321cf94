package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/dto"
	"github.com/jeanlimsl3-LithanAcad/smartshop-ai/services"
)

// ListProductsHandler godoc
// @Summary      List products
// @Description  List catalogue products with pagination and optional category filter
// @Tags         catalogue
// @Param        page         query  int    false  "Page number (1-based)"
// @Param        page_size    query  int    false  "Page size (<=100)"
// @Param        category_id  query  int    false  "Category id"
// @Produce      json
// @Success      200  {array}   dto.ProductDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /products [get]
func ListProductsHandler(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ListProductsInput
		in.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		in.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
		in.CategoryID, _ = strconv.ParseInt(c.Query("category_id"), 10, 64)

		out, err := svc.List(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetProductHandler godoc
// @Summary      Get product by id
// @Description  Get a single product with its reviews
// @Tags         catalogue
// @Param        product_id  path  int  true  "Product id"
// @Produce      json
// @Success      200  {object}  dto.ProductDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /products/{product_id} [get]
func GetProductHandler(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "Product not found."})
			return
		}
		product, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "Product not found."})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// ListCategoriesHandler godoc
// @Summary      List categories
// @Tags         catalogue
// @Produce      json
// @Success      200  {array}   dto.CategoryDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /categories [get]
func ListCategoriesHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
