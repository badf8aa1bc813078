package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type sendCodeReq struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// @Summary Send verification code
// @Tags auth
// @Accept json
// @Produce json
// @Param input body sendCodeReq true "Email"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /auth/send-verification-code [post]
func (s *Server) sendVerificationCode(c *gin.Context) {
	var req sendCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.auth.SendVerificationCode(c, req.Email, req.Name); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "verification code sent"})
}

type verifyCodeReq struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type verifyCodeResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        any    `json:"user"`
	IsNewUser   bool   `json:"is_new_user"`
}

// @Summary Verify code and log in
// @Tags auth
// @Accept json
// @Produce json
// @Param input body verifyCodeReq true "Email and code"
// @Success 200 {object} verifyCodeResp
// @Failure 400 {object} map[string]string
// @Router /auth/verify-code [post]
func (s *Server) verifyCode(c *gin.Context) {
	var req verifyCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	res, err := s.auth.VerifyCode(c, req.Email, req.Code)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, verifyCodeResp{
		AccessToken: res.Token,
		TokenType:   "bearer",
		User:        res.User,
		IsNewUser:   res.IsNewUser,
	})
}

type checkEmailReq struct {
	Email string `json:"email"`
}

// @Summary Check whether an email is registered
// @Tags auth
// @Accept json
// @Produce json
// @Param input body checkEmailReq true "Email"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Router /auth/check-email [post]
func (s *Server) checkEmail(c *gin.Context) {
	var req checkEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	exists, err := s.auth.CheckEmail(c, req.Email)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

// @Summary Get own profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/profile [get]
func (s *Server) getProfile(c *gin.Context) {
	user, err := s.auth.Profile(c, c.GetString(ctxUserID))
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateProfileReq struct {
	Name string `json:"name"`
}

// @Summary Update own profile
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body updateProfileReq true "Profile"
// @Success 200 {object} domain.User
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/profile [put]
func (s *Server) updateProfile(c *gin.Context) {
	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	user, err := s.auth.UpdateProfile(c, c.GetString(ctxUserID), req.Name)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}
