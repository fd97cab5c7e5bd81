package api

import (
	"errors"
	"strconv"

	"github.com/RealCheck/RealCheck-backend/internal/middleware"
	"github.com/RealCheck/RealCheck-backend/internal/models"
	"github.com/RealCheck/RealCheck-backend/internal/services"
	"github.com/RealCheck/RealCheck-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// NewsHandler 封装与新闻相关的 HTTP 请求处理逻辑
type NewsHandler struct {
	newsService *services.NewsService
}

// NewNewsHandler 创建并返回一个新的 NewsHandler 实例
func NewNewsHandler() *NewsHandler {
	return &NewsHandler{
		newsService: services.NewNewsService(),
	}
}

// CreateNews 发布新闻，需要 member 及以上权限
func (h *NewsHandler) CreateNews(c *gin.Context) {
	var req models.NewsCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request data: "+err.Error())
		return
	}

	news, err := h.newsService.CreateNews(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDateTime) {
			utils.BadRequest(c, err.Error())
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Created(c, news.ToResponse())
}

// GetNewsByID 获取单条新闻，removed 的新闻对非管理员返回404
func (h *NewsHandler) GetNewsByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.BadRequest(c, "Invalid news ID")
		return
	}

	news, err := h.newsService.GetNewsByID(uint(id), middleware.IsAdmin(c))
	if err != nil {
		if errors.Is(err, services.ErrNewsNotFound) {
			utils.NotFound(c, err.Error())
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, news.ToResponse())
}

// GetNews 搜索/过滤/分页列出新闻
// 查询参数：keyword, status(real|fake|equal|removed|all), sort, order, page, size
func (h *NewsHandler) GetNews(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size < 1 || size > 100 { // 限制每页最大大小，防止过大查询
		size = 10
	}

	query := models.NewsQuery{
		Keyword:   c.Query("keyword"),
		Status:    c.Query("status"),
		SortField: c.DefaultQuery("sort", "dateTime"),
		SortOrder: c.DefaultQuery("order", "desc"),
		Page:      page,
		Size:      size,
	}

	newsList, total, err := h.newsService.GetNews(query, middleware.IsAdmin(c))
	if err != nil {
		if errors.Is(err, services.ErrRemovedAdminOnly) {
			utils.Forbidden(c, err.Error())
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	newsResponses := make([]models.NewsResponse, 0, len(newsList))
	for _, news := range newsList {
		newsResponses = append(newsResponses, news.ToResponse())
	}

	utils.SuccessWithPagination(c, newsResponses, total, page, size)
}

// GetRemovedNews 列出被软删除的新闻，仅管理员
func (h *NewsHandler) GetRemovedNews(c *gin.Context) {
	newsList, err := h.newsService.GetRemovedNews()
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	newsResponses := make([]models.NewsResponse, 0, len(newsList))
	for _, news := range newsList {
		newsResponses = append(newsResponses, news.ToResponse())
	}

	utils.Success(c, newsResponses)
}

// DeleteNews 软删除新闻，仅管理员，幂等
func (h *NewsHandler) DeleteNews(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.BadRequest(c, "Invalid news ID")
		return
	}

	if err := h.newsService.SoftDeleteNews(uint(id)); err != nil {
		if errors.Is(err, services.ErrNewsNotFound) {
			utils.NotFound(c, err.Error())
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, gin.H{"message": "News deleted successfully"})
}
