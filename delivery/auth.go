package delivery

import (
	"errors"
	"luxefurnish/domain"
	"luxefurnish/dto"
	"luxefurnish/middleware"
	"luxefurnish/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUseCase
}

func NewAuthHandler(app *gin.Engine, authUC domain.AuthUseCase, limiter middleware.RateLimiter, limit middleware.RateLimiterConfig) {
	h := &AuthHandler{authUC: authUC}

	api := app.Group("/api")
	api.POST("/signup", h.Signup)

	signin := api.Group("")
	if limiter != nil {
		signin.Use(middleware.EndpointRateLimitMiddleware(limiter, limit, "signin"))
	}
	signin.POST("/signin", h.Signin)
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "", "Signup", err)
		return
	}

	user, err := h.authUC.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, req.Email, "Signup", "Signup failed", err)
		return
	}

	utils.PrintLogInfo(&user.Email, http.StatusCreated, "Signup", nil)
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

// Signin answers every credential failure with 400 and the same body.
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "", "Signin", err)
		return
	}

	res, err := h.authUC.Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			utils.PrintLogInfo(&req.Email, http.StatusBadRequest, "Signin", &err)
			c.JSON(http.StatusBadRequest, gin.H{"message": "Signin failed", "error": err.Error()})
			return
		}
		respondError(c, req.Email, "Signin", "Signin failed", err)
		return
	}

	utils.PrintLogInfo(&res.User.Email, http.StatusOK, "Signin", nil)
	c.JSON(http.StatusOK, gin.H{
		"message":   "Signin successful",
		"token":     res.Token,
		"expiresIn": int(h.authUC.GetAccessTokenManager().TokenDuration().Seconds()),
		"user":      res.User,
	})
}
