package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateProduct
// @Summary CreateProduct
// @Description Validates and stores a product
// @ID create-product
// @Accept json
// @Produce json
// @Param input body models.Product true "product"
// @Success 201 {object} models.Product
// @Failure 400 {object} validationResponse
// @Failure 500 {object} errorResponse
// @Router /api/products [post]
func (h *Handler) CreateProduct(c *gin.Context) {
	payload, ok := body(c)
	if !ok {
		return
	}
	p, err := h.svc.CreateProduct(c.Request.Context(), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// GetProduct
// @Summary GetProduct
// @ID get-product
// @Produce json
// @Param id path string true "product id"
// @Success 200 {object} models.Product
// @Failure 404 {object} errorResponse
// @Router /api/products/{id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	p, err := h.svc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProduct
// @Summary UpdateProduct
// @Description Applies a partial product update
// @ID update-product
// @Accept json
// @Produce json
// @Param id path string true "product id"
// @Param input body models.Product false "fields to change"
// @Success 200 {object} models.Product
// @Failure 400 {object} validationResponse
// @Failure 404 {object} errorResponse
// @Router /api/products/{id} [patch]
func (h *Handler) UpdateProduct(c *gin.Context) {
	payload, ok := body(c)
	if !ok {
		return
	}
	p, err := h.svc.UpdateProduct(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
