package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Get own cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Cart
// @Failure 401 {object} map[string]string
// @Router /cart [get]
func (s *Server) getCart(c *gin.Context) {
	cart, err := s.carts.GetCart(c, c.GetString(ctxUserID))
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cart)
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Cart
// @Failure 401 {object} map[string]string
// @Router /cart [delete]
func (s *Server) clearCart(c *gin.Context) {
	cart, err := s.carts.Clear(c, c.GetString(ctxUserID))
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cart)
}

type addCartItemReq struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// @Summary Add item to cart
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body addCartItemReq true "Item"
// @Success 200 {object} domain.Cart
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items [post]
func (s *Server) addCartItem(c *gin.Context) {
	var req addCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	cart, err := s.carts.AddItem(c, c.GetString(ctxUserID), req.ProductID, req.Quantity, req.Size, req.Color)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cart)
}

type updateCartItemReq struct {
	Quantity int64 `json:"quantity"`
}

// @Summary Update cart item quantity
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart item ID"
// @Param input body updateCartItemReq true "Quantity"
// @Success 200 {object} domain.Cart
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{id} [put]
func (s *Server) updateCartItem(c *gin.Context) {
	var req updateCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	cart, err := s.carts.UpdateItemQuantity(c, c.GetString(ctxUserID), c.Param("id"), req.Quantity)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cart)
}

// @Summary Remove item from cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart item ID"
// @Success 200 {object} domain.Cart
// @Failure 404 {object} map[string]string
// @Router /cart/items/{id} [delete]
func (s *Server) removeCartItem(c *gin.Context) {
	cart, err := s.carts.RemoveItem(c, c.GetString(ctxUserID), c.Param("id"))
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cart)
}
