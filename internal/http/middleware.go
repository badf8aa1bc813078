package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"iraxas/internal/domain"
)

const (
	ctxUserID   = "userID"
	ctxUserRole = "userRole"
)

// protect пускает дальше только запросы с действительным Bearer-токеном
func (s *Server) protect(c *gin.Context) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	claims, err := s.tokens.Parse(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxUserRole, claims.Role)
	c.Next()
}

// adminOnly ставится после protect
func (s *Server) adminOnly(c *gin.Context) {
	if c.GetString(ctxUserRole) != string(domain.RoleAdmin) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
		return
	}
	c.Next()
}

// requestID проставляет X-Request-ID входящим запросам
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
