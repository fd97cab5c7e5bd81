package api

import (
	"github.com/RealCheck/RealCheck-backend/internal/services"
	"github.com/RealCheck/RealCheck-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// 上传图片的大小上限
const maxUploadSize = 10 << 20 // 10 MB

// UploadHandler 图片上传，转存到对象存储后返回URL
type UploadHandler struct {
	storageService *services.StorageService
}

func NewUploadHandler() *UploadHandler {
	return &UploadHandler{
		storageService: services.NewStorageService(),
	}
}

// UploadImage 接收 multipart 文件，返回公开URL，
// 调用方把URL当作不透明的 image 字符串用在新闻/评论上
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.BadRequest(c, "image file is required")
		return
	}

	if fileHeader.Size > maxUploadSize {
		utils.BadRequest(c, "image file too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.InternalServerError(c, "failed to open uploaded file")
		return
	}
	defer file.Close()

	url, err := h.storageService.UploadImage(
		c.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"url": url})
}
