package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"iraxas/internal/auth"
	"iraxas/internal/repository"
	"iraxas/internal/service"
)

type Server struct {
	engine   *gin.Engine
	auth     *service.AuthService
	products *service.ProductService
	carts    *service.CartService
	orders   *service.OrderService
	tokens   *auth.TokenManager
}

func NewServer(authSvc *service.AuthService, products *service.ProductService, carts *service.CartService, orders *service.OrderService, tokens *auth.TokenManager) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), requestID())
	s := &Server{engine: r, auth: authSvc, products: products, carts: carts, orders: orders, tokens: tokens}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.engine.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		authGroup.POST("/send-verification-code", s.sendVerificationCode)
		authGroup.POST("/verify-code", s.verifyCode)
		authGroup.POST("/check-email", s.checkEmail)
		authGroup.GET("/profile", s.protect, s.getProfile)
		authGroup.PUT("/profile", s.protect, s.updateProfile)

		products := v1.Group("/products")
		products.GET("", s.listProducts)
		products.GET(":id", s.getProduct)
		products.POST("", s.protect, s.adminOnly, s.createProduct)
		products.PUT(":id", s.protect, s.adminOnly, s.updateProduct)
		products.DELETE(":id", s.protect, s.adminOnly, s.deleteProduct)

		cart := v1.Group("/cart", s.protect)
		cart.GET("", s.getCart)
		cart.DELETE("", s.clearCart)
		cart.POST("/items", s.addCartItem)
		cart.PUT("/items/:id", s.updateCartItem)
		cart.DELETE("/items/:id", s.removeCartItem)

		orders := v1.Group("/orders", s.protect)
		orders.POST("", s.createOrder)
		orders.GET("", s.listOrders)
		orders.POST("/verify", s.verifyPayment)
	}
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCode):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrSignatureMismatch):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
