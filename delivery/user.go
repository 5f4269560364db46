package delivery

import (
	"luxefurnish/config"
	"luxefurnish/domain"
	"luxefurnish/middleware"
	"luxefurnish/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	uc domain.UserUseCase
}

func NewUserHandler(app *gin.Engine, uc domain.UserUseCase, jwtManager *utils.JWTManager) {
	h := &UserHandler{uc: uc}

	users := app.Group("/api/users")
	users.Use(config.AuthMiddleware(jwtManager), middleware.AdminOnly())
	{
		users.GET("", h.GetAllUsers)
		users.GET("/:id", h.GetUserByID)
		users.DELETE("/:id", h.DeleteUser)
	}
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	who := utils.GetAPIHitter(c)
	users, err := h.uc.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, who, "GetAllUsers", "Failed to fetch users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	who := utils.GetAPIHitter(c)
	user, err := h.uc.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, who, "GetUserByID", "Failed to fetch user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	who := utils.GetAPIHitter(c)
	if err := h.uc.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, who, "DeleteUser", "Failed to delete user", err)
		return
	}

	utils.PrintLogInfo(&who, http.StatusOK, "DeleteUser", nil)
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
