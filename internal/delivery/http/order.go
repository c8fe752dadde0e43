package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/models"
)

type statusRequest struct {
	Status string `json:"status" example:"confirmed"`
}

// CreateOrder
// @Summary CreateOrder
// @Description Validates an order payload and places the order
// @ID create-order
// @Accept json
// @Produce json
// @Param input body models.Order true "order"
// @Success 201 {object} models.Order
// @Failure 400 {object} validationResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	payload, ok := body(c)
	if !ok {
		return
	}
	order, err := h.svc.CreateOrder(c.Request.Context(), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetOrder
// @Summary GetOrder
// @Description Returns an order by id
// @ID get-order
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} models.Order
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/{id} [get]
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.svc.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// ListCustomerOrders
// @Summary ListCustomerOrders
// @Description Returns a customer's orders, newest first
// @ID list-customer-orders
// @Produce json
// @Param customerId path string true "customer id"
// @Success 200 {array} models.Order
// @Failure 400 {object} validationResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/customer/{customerId} [get]
func (h *Handler) ListCustomerOrders(c *gin.Context) {
	orders, err := h.svc.ListCustomerOrders(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus
// @Summary UpdateOrderStatus
// @Description Moves an order to its next lifecycle status. Status "cancelled" is handled as CancelOrder and returns its result.
// @ID update-order-status
// @Accept json
// @Produce json
// @Param id path string true "order id"
// @Param input body statusRequest true "new status"
// @Success 200 {object} models.Order
// @Failure 400 {object} validationResponse
// @Failure 404,409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/{id}/status [patch]
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	payload, ok := body(c)
	if !ok {
		return
	}
	status, err := h.v.ParseStatusUpdate(payload)
	if err != nil {
		writeError(c, err)
		return
	}
	if status == models.OrderCancelled {
		h.CancelOrder(c)
		return
	}
	order, err := h.svc.UpdateOrderStatus(c.Request.Context(), c.Param("id"), string(status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// CancelOrder
// @Summary CancelOrder
// @Description Cancels an order and refunds it when it was paid
// @ID cancel-order
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} service.CancelResult
// @Failure 404,409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/{id}/cancel [post]
func (h *Handler) CancelOrder(c *gin.Context) {
	res, err := h.svc.CancelOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// InitiatePayment
// @Summary InitiatePayment
// @Description Opens a gateway payment for the order total
// @ID initiate-payment
// @Produce json
// @Param id path string true "order id"
// @Success 201 {object} payment.PaymentOrder
// @Failure 404,409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/{id}/payment [post]
func (h *Handler) InitiatePayment(c *gin.Context) {
	p, err := h.svc.InitiatePayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// VerifyPayment
// @Summary VerifyPayment
// @Description Confirms a gateway payment and marks the order paid
// @ID verify-payment
// @Accept json
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} models.Order
// @Failure 400 {object} errorResponse
// @Failure 404,409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/{id}/payment/verify [post]
func (h *Handler) VerifyPayment(c *gin.Context) {
	payload, ok := body(c)
	if !ok {
		return
	}
	order, err := h.svc.VerifyPayment(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
