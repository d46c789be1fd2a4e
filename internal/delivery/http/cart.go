package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dora-eats/internal/models"
)

type cartLineResponse struct {
	models.CartLine
	LineTotal int `json:"total"`
}

type cartResponse struct {
	SessionID    string             `json:"sessionId"`
	Lines        []cartLineResponse `json:"lines"`
	Subtotal     int                `json:"subtotal"`
	SubtotalText string             `json:"subtotalText"`
}

type addCartItemRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	Quantity int    `json:"quantity" binding:"gte=0"`
}

type changeCartItemRequest struct {
	Delta *int `json:"delta" binding:"required"`
}

func (h *Handler) cartJSON(c *gin.Context, status int, cart models.Cart) {
	lines := make([]cartLineResponse, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, cartLineResponse{CartLine: l, LineTotal: l.Total()})
	}
	c.JSON(status, cartResponse{
		SessionID:    session(c),
		Lines:        lines,
		Subtotal:     cart.Subtotal(),
		SubtotalText: h.svc.FormatPrice(cart.Subtotal()),
	})
}

// GetCart
// @Summary GetCart
// @Description Returns the cart of the calling session
// @ID get-cart
// @Produce json
// @Param X-Session-Id header string true "session id"
// @Success 200 {object} cartResponse
// @Failure 400 {object} errorResponse
// @Router /api/cart [get]
func (h *Handler) GetCart(c *gin.Context) {
	h.cartJSON(c, http.StatusOK, h.svc.Cart(session(c)))
}

// AddCartItem
// @Summary AddCartItem
// @Description Adds a menu item to the cart, merging with an existing line
// @ID add-cart-item
// @Accept json
// @Produce json
// @Param X-Session-Id header string true "session id"
// @Param input body addCartItemRequest true "item and quantity (defaults to 1)"
// @Success 200 {object} cartResponse
// @Failure 400,404 {object} errorResponse
// @Router /api/cart/items [post]
func (h *Handler) AddCartItem(c *gin.Context) {
	var in addCartItemRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	cart, err := h.svc.AddToCart(c.Request.Context(), session(c), in.ItemID, in.Quantity)
	if err != nil {
		serviceError(c, err)
		return
	}
	h.cartJSON(c, http.StatusOK, cart)
}

// ChangeCartItem
// @Summary ChangeCartItem
// @Description Shifts a line's quantity by delta; the quantity never drops below one
// @ID change-cart-item
// @Accept json
// @Produce json
// @Param X-Session-Id header string true "session id"
// @Param id path string true "menu item id"
// @Param input body changeCartItemRequest true "quantity delta"
// @Success 200 {object} cartResponse
// @Failure 400,404 {object} errorResponse
// @Router /api/cart/items/{id} [patch]
func (h *Handler) ChangeCartItem(c *gin.Context) {
	var in changeCartItemRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	cart, err := h.svc.ChangeQuantity(session(c), c.Param("id"), *in.Delta)
	if err != nil {
		serviceError(c, err)
		return
	}
	h.cartJSON(c, http.StatusOK, cart)
}

// RemoveCartItem
// @Summary RemoveCartItem
// @Description Removes a line from the cart
// @ID remove-cart-item
// @Produce json
// @Param X-Session-Id header string true "session id"
// @Param id path string true "menu item id"
// @Success 200 {object} cartResponse
// @Failure 400,404 {object} errorResponse
// @Router /api/cart/items/{id} [delete]
func (h *Handler) RemoveCartItem(c *gin.Context) {
	cart, err := h.svc.RemoveFromCart(session(c), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	h.cartJSON(c, http.StatusOK, cart)
}
