package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"iraxas/internal/domain"
)

type createOrderReq struct {
	Items           []domain.OrderItem     `json:"items"`
	ShippingAddress domain.ShippingAddress `json:"shipping_address"`
}

// @Summary Create order and open a gateway order for payment
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body createOrderReq true "Order"
// @Success 201 {object} service.CreateOrderResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /orders [post]
func (s *Server) createOrder(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	res, err := s.orders.Create(c, c.GetString(ctxUserID), req.Items, req.ShippingAddress)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary List own orders, most recent first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Order
// @Failure 401 {object} map[string]string
// @Router /orders [get]
func (s *Server) listOrders(c *gin.Context) {
	list, err := s.orders.ListByUser(c, c.GetString(ctxUserID))
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

type verifyPaymentReq struct {
	GatewayOrderID   string `json:"gateway_order_id"`
	GatewayPaymentID string `json:"gateway_payment_id"`
	Signature        string `json:"signature"`
}

// @Summary Verify payment signature and finalize the order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body verifyPaymentReq true "Gateway callback data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/verify [post]
func (s *Server) verifyPayment(c *gin.Context) {
	var req verifyPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	err := s.orders.VerifyPayment(c, c.GetString(ctxUserID), req.GatewayOrderID, req.GatewayPaymentID, req.Signature)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment verified"})
}
