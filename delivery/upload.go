package delivery

import (
	"luxefurnish/config"
	"luxefurnish/domain"
	"luxefurnish/middleware"
	"luxefurnish/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

const uploadField = "image"

type UploadHandler struct {
	uc domain.UploadUseCase
}

func NewUploadHandler(app *gin.Engine, uc domain.UploadUseCase, jwtManager *utils.JWTManager) {
	h := &UploadHandler{uc: uc}

	upload := app.Group("/api/upload")
	upload.Use(config.AuthMiddleware(jwtManager), middleware.AdminOnly())
	upload.POST("", h.UploadImage)
}

func (h *UploadHandler) UploadImage(c *gin.Context) {
	who := utils.GetAPIHitter(c)
	fileHeader, err := c.FormFile(uploadField)
	if err != nil {
		utils.PrintLogInfo(&who, http.StatusBadRequest, "UploadImage - FormFile", &err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded", "error": "multipart field \"image\" is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, who, "UploadImage - Open", "Failed to read upload", err)
		return
	}
	defer file.Close()

	url, err := h.uc.UploadImage(c.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		respondError(c, who, "UploadImage", "Failed to store upload", err)
		return
	}

	utils.PrintLogInfo(&who, http.StatusCreated, "UploadImage", nil)
	c.JSON(http.StatusCreated, gin.H{"message": "File uploaded", "imageUrl": url})
}
