package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type couponRequest struct {
	Code       string   `json:"code"        example:"WELCOME50"`
	CustomerID string   `json:"customer_id"`
	Subtotal   *float64 `json:"subtotal"`
}

// ValidateCoupon
// @Summary ValidateCoupon
// @Description Checks a coupon for a customer and quotes the discount
// @ID validate-coupon
// @Accept json
// @Produce json
// @Param input body couponRequest true "coupon check"
// @Success 200 {object} service.CouponQuote
// @Failure 400 {object} errorResponse
// @Router /api/coupons/validate [post]
func (h *Handler) ValidateCoupon(c *gin.Context) {
	payload, ok := body(c)
	if !ok {
		return
	}
	q, err := h.svc.ValidateCoupon(c.Request.Context(), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// ListSavedAddresses
// @Summary ListSavedAddresses
// @Description Returns the customer's active addresses, default first
// @ID list-saved-addresses
// @Produce json
// @Param customerId path string true "customer id"
// @Success 200 {array} models.SavedAddress
// @Failure 400 {object} validationResponse
// @Router /api/customers/{customerId}/addresses [get]
func (h *Handler) ListSavedAddresses(c *gin.Context) {
	out, err := h.svc.ListSavedAddresses(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// CreateSavedAddress
// @Summary CreateSavedAddress
// @ID create-saved-address
// @Accept json
// @Produce json
// @Param customerId path string true "customer id"
// @Param input body models.SavedAddress true "address"
// @Success 201 {object} models.SavedAddress
// @Failure 400 {object} validationResponse
// @Router /api/customers/{customerId}/addresses [post]
func (h *Handler) CreateSavedAddress(c *gin.Context) {
	payload, ok := body(c)
	if !ok {
		return
	}
	a, err := h.svc.CreateSavedAddress(c.Request.Context(), c.Param("customerId"), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}
