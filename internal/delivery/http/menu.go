package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dora-eats/internal/models"
)

type menuItemResponse struct {
	models.MenuItem
	PriceText string `json:"priceText"`
}

type getMenuResponse struct {
	Category string             `json:"category"`
	Items    []menuItemResponse `json:"items"`
}

type getCategoriesResponse struct {
	Categories []string `json:"categories"`
}

func (h *Handler) menuItems(items []models.MenuItem) []menuItemResponse {
	out := make([]menuItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, menuItemResponse{MenuItem: it, PriceText: h.svc.FormatPrice(it.Price)})
	}
	return out
}

// GetMenu
// @Summary GetMenu
// @Description Lists menu items, optionally filtered by category ("All" or empty disables the filter)
// @ID get-menu
// @Produce json
// @Param category query string false "category name"
// @Success 200 {object} getMenuResponse
// @Failure 500 {object} errorResponse
// @Router /api/menu [get]
func (h *Handler) GetMenu(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	items, err := h.svc.Menu(category)
	if err != nil {
		serviceError(c, err)
		return
	}
	if category == "" {
		category = models.AllCategories
	}
	c.JSON(http.StatusOK, getMenuResponse{Category: category, Items: h.menuItems(items)})
}

// GetCategories
// @Summary GetCategories
// @Description Lists menu categories, starting with "All"
// @ID get-menu-categories
// @Produce json
// @Success 200 {object} getCategoriesResponse
// @Failure 500 {object} errorResponse
// @Router /api/menu/categories [get]
func (h *Handler) GetCategories(c *gin.Context) {
	cats, err := h.svc.Categories()
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, getCategoriesResponse{Categories: cats})
}

// GetBestsellers
// @Summary GetBestsellers
// @Description Lists the items featured on the homepage
// @ID get-bestsellers
// @Produce json
// @Success 200 {object} getMenuResponse
// @Failure 500 {object} errorResponse
// @Router /api/menu/bestsellers [get]
func (h *Handler) GetBestsellers(c *gin.Context) {
	items, err := h.svc.Bestsellers()
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, getMenuResponse{Category: models.AllCategories, Items: h.menuItems(items)})
}

// GetMenuItem
// @Summary GetMenuItem
// @Description Returns one menu item by id
// @ID get-menu-item
// @Produce json
// @Param id path string true "menu item id"
// @Success 200 {object} menuItemResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/menu/{id} [get]
func (h *Handler) GetMenuItem(c *gin.Context) {
	it, err := h.svc.MenuItem(c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, menuItemResponse{MenuItem: it, PriceText: h.svc.FormatPrice(it.Price)})
}
