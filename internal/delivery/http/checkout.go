package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dora-eats/internal/models"
)

type validateResponse struct {
	Valid bool                `json:"valid"`
	Order models.OrderRequest `json:"order"`
}

type confirmationResponse struct {
	models.PlacedOrder
	SubtotalText string `json:"subtotalText"`
}

// GetCheckoutOptions
// @Summary GetCheckoutOptions
// @Description Lists fulfillment types, pickup locations, pickup time slots and payment methods
// @ID get-checkout-options
// @Produce json
// @Success 200 {object} service.CheckoutOptions
// @Router /api/checkout/options [get]
func (h *Handler) GetCheckoutOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.CheckoutOptions())
}

// ValidateCheckout
// @Summary ValidateCheckout
// @Description Validates checkout form state without placing an order
// @ID validate-checkout
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param input body object true "flat form fields"
// @Success 200 {object} validateResponse
// @Failure 400 {object} errorResponse
// @Failure 422 {object} validationResponse
// @Router /api/checkout/validate [post]
func (h *Handler) ValidateCheckout(c *gin.Context) {
	fields, err := bindFields(c)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid form body")
		return
	}
	req, err := h.svc.ValidateOrder(c.Request.Context(), fields)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, validateResponse{Valid: true, Order: req.Redacted()})
}

// PlaceOrder
// @Summary PlaceOrder
// @Description Validates the form and places one order for the session's cart
// @ID place-order
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param X-Session-Id header string true "session id"
// @Param input body object true "flat form fields"
// @Success 201 {object} confirmationResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 422 {object} validationResponse
// @Failure 502 {object} errorResponse
// @Router /api/checkout [post]
func (h *Handler) PlaceOrder(c *gin.Context) {
	fields, err := bindFields(c)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid form body")
		return
	}
	order, err := h.svc.PlaceOrder(c.Request.Context(), session(c), fields)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, confirmationResponse{PlacedOrder: order, SubtotalText: h.svc.FormatPrice(order.Subtotal)})
}

// GetOrder
// @Summary GetOrder
// @Description Returns the confirmation of a recently placed order
// @ID get-order
// @Produce json
// @Param number path string true "order number, e.g. DORA-12345"
// @Success 200 {object} confirmationResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/{number} [get]
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.svc.GetOrder(c.Param("number"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, confirmationResponse{PlacedOrder: order, SubtotalText: h.svc.FormatPrice(order.Subtotal)})
}
