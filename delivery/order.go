package delivery

import (
	"luxefurnish/config"
	"luxefurnish/domain"
	"luxefurnish/dto"
	"luxefurnish/middleware"
	"luxefurnish/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderUC domain.OrderUseCase
	otpUC   domain.OTPUseCase
}

func NewOrderHandler(app *gin.Engine, orderUC domain.OrderUseCase, otpUC domain.OTPUseCase, jwtManager *utils.JWTManager, limiter middleware.RateLimiter, limit middleware.RateLimiterConfig) {
	h := &OrderHandler{orderUC: orderUC, otpUC: otpUC}

	orders := app.Group("/api/orders")

	// OTP confirmation is reachable without a token
	otp := orders.Group("")
	if limiter != nil {
		otp.Use(middleware.EndpointRateLimitMiddleware(limiter, limit, "otp"))
	}
	{
		otp.POST("/send-otp", h.SendOTP)
		otp.POST("/verify-otp", h.VerifyOTP)
	}

	customer := orders.Group("")
	customer.Use(config.AuthMiddleware(jwtManager))
	{
		customer.POST("", h.CreateOrder)
		customer.GET("/:id", h.GetOrderByID)
	}

	admin := orders.Group("")
	admin.Use(config.AuthMiddleware(jwtManager), middleware.AdminOnly())
	{
		admin.GET("", h.GetAllOrders)
		admin.PUT("/:id/status", h.UpdateOrderStatus)
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	who := utils.GetAPIHitter(c)
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, who, "CreateOrder", err)
		return
	}

	order, err := h.orderUC.CreateOrder(c.Request.Context(), dto.MakeCreateOrderInput(who, &req))
	if err != nil {
		respondError(c, who, "CreateOrder", "Failed to create order", err)
		return
	}

	utils.PrintLogInfo(&who, http.StatusCreated, "CreateOrder", nil)
	c.JSON(http.StatusCreated, gin.H{"message": "Order created", "order": order})
}

func (h *OrderHandler) GetAllOrders(c *gin.Context) {
	who := utils.GetAPIHitter(c)
	orders, err := h.orderUC.GetAllOrders(c.Request.Context())
	if err != nil {
		respondError(c, who, "GetAllOrders", "Failed to fetch orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrderByID lets customers read only their own orders; others look missing.
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	who := utils.GetAPIHitter(c)
	order, err := h.orderUC.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, who, "GetOrderByID", "Failed to fetch order", err)
		return
	}

	if role, _ := c.Get("role"); role != domain.RoleAdmin && order.UserID != who {
		respondError(c, who, "GetOrderByID", "Failed to fetch order", domain.ErrOrderNotFound)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	who := utils.GetAPIHitter(c)
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, who, "UpdateOrderStatus", err)
		return
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, who, "UpdateOrderStatus", "Failed to update order status", err)
		return
	}

	utils.PrintLogInfo(&who, http.StatusOK, "UpdateOrderStatus", nil)
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "order": order})
}

func (h *OrderHandler) SendOTP(c *gin.Context) {
	var req dto.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "", "SendOTP", err)
		return
	}

	if err := h.otpUC.SendOTP(c.Request.Context(), req.Email); err != nil {
		respondError(c, req.Email, "SendOTP", "Failed to send OTP", err)
		return
	}

	utils.PrintLogInfo(&req.Email, http.StatusOK, "SendOTP", nil)
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully"})
}

func (h *OrderHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "", "VerifyOTP", err)
		return
	}

	order, err := h.otpUC.VerifyOTP(c.Request.Context(), req.Email, string(req.OTP), req.OrderID)
	if err != nil {
		respondError(c, req.Email, "VerifyOTP", "OTP verification failed", err)
		return
	}

	utils.PrintLogInfo(&req.Email, http.StatusOK, "VerifyOTP", nil)
	c.JSON(http.StatusOK, gin.H{"message": "OTP verified, order confirmed", "order": order})
}
