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

// CommentHandler 封装与评论相关的 HTTP 请求处理逻辑
type CommentHandler struct {
	commentService *services.CommentService
}

// NewCommentHandler 创建并返回一个新的 CommentHandler 实例
func NewCommentHandler() *CommentHandler {
	return &CommentHandler{
		commentService: services.NewCommentService(),
	}
}

// AddComment 给新闻挂评论并投票，vote 必须是 real 或 fake
func (h *CommentHandler) AddComment(c *gin.Context) {
	newsID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid news ID")
		return
	}

	var req models.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request data: "+err.Error())
		return
	}

	comment, err := h.commentService.AddComment(uint(newsID), &req)
	if err != nil {
		if errors.Is(err, services.ErrNewsNotFound) {
			utils.NotFound(c, err.Error())
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Created(c, comment.ToResponse())
}

// DeleteComment 删除评论并回退计票，仅管理员。
// 评论必须属于这条新闻，否则404
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	newsID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid news ID")
		return
	}
	commentID, err := strconv.Atoi(c.Param("commentId"))
	if err != nil {
		utils.BadRequest(c, "Invalid comment ID")
		return
	}

	if err := h.commentService.DeleteComment(uint(newsID), uint(commentID)); err != nil {
		switch {
		case errors.Is(err, services.ErrNewsNotFound), errors.Is(err, services.ErrCommentNotFound):
			utils.NotFound(c, err.Error())
		default:
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, gin.H{"message": "Comment deleted successfully"})
}

// GetComments 按时间倒序分页获取某条新闻的评论
func (h *CommentHandler) GetComments(c *gin.Context) {
	newsID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid news ID")
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size < 1 || size > 100 {
		size = 10
	}

	comments, total, err := h.commentService.GetCommentsByNewsID(uint(newsID), page, size, middleware.IsAdmin(c))
	if err != nil {
		if errors.Is(err, services.ErrNewsNotFound) {
			utils.NotFound(c, err.Error())
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	commentResponses := make([]models.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		commentResponses = append(commentResponses, comment.ToResponse())
	}

	utils.SuccessWithPagination(c, commentResponses, total, page, size)
}

// GetSummary 某条新闻的投票/评论统计
func (h *CommentHandler) GetSummary(c *gin.Context) {
	newsID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid news ID")
		return
	}

	summary, err := h.commentService.GetVoteSummary(uint(newsID), middleware.IsAdmin(c))
	if err != nil {
		if errors.Is(err, services.ErrNewsNotFound) {
			utils.NotFound(c, err.Error())
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, summary)
}
