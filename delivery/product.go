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

type ProductHandler struct {
	uc domain.ProductUseCase
}

func NewProductHandler(app *gin.Engine, uc domain.ProductUseCase, jwtManager *utils.JWTManager) {
	h := &ProductHandler{uc: uc}

	products := app.Group("/api/products")
	products.GET("", h.GetAllProducts)
	products.GET("/:id", h.GetProductByID)

	admin := products.Group("")
	admin.Use(config.AuthMiddleware(jwtManager), middleware.AdminOnly())
	{
		admin.POST("", h.CreateProduct)
		admin.PUT("/:id", h.UpdateProduct)
		admin.DELETE("/:id", h.DeleteProduct)
	}
}

func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	who := utils.GetAPIHitter(c)
	products, err := h.uc.GetAllProducts(c.Request.Context())
	if err != nil {
		respondError(c, who, "GetAllProducts", "Failed to fetch products", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	who := utils.GetAPIHitter(c)
	product, err := h.uc.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, who, "GetProductByID", "Failed to fetch product", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	who := utils.GetAPIHitter(c)
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, who, "CreateProduct", err)
		return
	}

	created, err := h.uc.CreateProduct(c.Request.Context(), dto.MakeProduct(&req))
	if err != nil {
		respondError(c, who, "CreateProduct", "Failed to create product", err)
		return
	}

	utils.PrintLogInfo(&who, http.StatusCreated, "CreateProduct", nil)
	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "product": created})
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	who := utils.GetAPIHitter(c)
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, who, "UpdateProduct", err)
		return
	}

	updated, err := h.uc.UpdateProduct(c.Request.Context(), c.Param("id"), dto.MakeProductPatch(&req))
	if err != nil {
		respondError(c, who, "UpdateProduct", "Failed to update product", err)
		return
	}

	utils.PrintLogInfo(&who, http.StatusOK, "UpdateProduct", nil)
	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "product": updated})
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	who := utils.GetAPIHitter(c)
	if err := h.uc.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, who, "DeleteProduct", "Failed to delete product", err)
		return
	}

	utils.PrintLogInfo(&who, http.StatusOK, "DeleteProduct", nil)
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
