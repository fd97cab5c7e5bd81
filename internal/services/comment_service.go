package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/RealCheck/RealCheck-backend/internal/database"
	"github.com/RealCheck/RealCheck-backend/internal/models"
	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

// CommentService 封装评论相关的数据库操作和业务逻辑。
// 评论和计票必须一起变：每条评论的 vote 在挂上去时给对应计数 +1，
// 摘下来时 -1（最低到0）。这两个变更始终放在同一个事务里
type CommentService struct {
	db *gorm.DB
}

// NewCommentService 创建并返回一个新的 CommentService 实例
func NewCommentService() *CommentService {
	return &CommentService{
		db: database.GetDB(),
	}
}

// voteColumn 投票值对应的计数字段
func voteColumn(vote models.VoteValue) string {
	if vote == models.VoteReal {
		return "real_votes"
	}
	return "fake_votes"
}

// AddComment 给新闻挂评论并计票。评论插入和计数 +1 在一个事务内完成，
// 并发的读方不会看到只改了一半的状态，计数用加法表达式避免丢失更新
func (s *CommentService) AddComment(newsID uint, req *models.CommentCreateRequest) (*models.Comment, error) {
	if s.db == nil {
		return nil, errors.New("database connection not initialized")
	}

	comment := &models.Comment{
		NewsID:    newsID,
		Username:  req.Username,
		Text:      req.Text,
		Image:     req.Image,
		Vote:      models.VoteValue(req.Vote),
		CreatedAt: time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// 验证新闻是否存在
		var news models.News
		if err := tx.First(&news, newsID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNewsNotFound
			}
			return fmt.Errorf("failed to check news existence: %w", err)
		}

		if err := tx.Create(comment).Error; err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}

		column := voteColumn(comment.Vote)
		if err := tx.Model(&news).Update(column, gorm.Expr(column+" + 1")).Error; err != nil {
			return fmt.Errorf("failed to update vote count: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return comment, nil
}

// DeleteComment 从新闻上摘掉评论并回退计票（管理员操作）。
// commentId 必须属于这条新闻，属于别的新闻也按 NotFound 处理。
// 计数回退最低到0：种子数据的基线可能比评论数少
func (s *CommentService) DeleteComment(newsID, commentID uint) error {
	if s.db == nil {
		return errors.New("database connection not initialized")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var news models.News
		if err := tx.First(&news, newsID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNewsNotFound
			}
			return fmt.Errorf("failed to check news existence: %w", err)
		}

		var comment models.Comment
		if err := tx.Where("id = ? AND news_id = ?", commentID, newsID).First(&comment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCommentNotFound
			}
			return fmt.Errorf("failed to get comment: %w", err)
		}

		if err := tx.Delete(&comment).Error; err != nil {
			return fmt.Errorf("failed to delete comment: %w", err)
		}

		column := voteColumn(comment.Vote)
		if err := tx.Model(&news).Update(column, gorm.Expr("GREATEST("+column+" - 1, 0)")).Error; err != nil {
			return fmt.Errorf("failed to update vote count: %w", err)
		}

		return nil
	})
}

// GetCommentsByNewsID 按时间倒序分页获取某条新闻的评论
func (s *CommentService) GetCommentsByNewsID(newsID uint, page, pageSize int, isAdmin bool) ([]models.Comment, int64, error) {
	if s.db == nil {
		return nil, 0, errors.New("database connection not initialized")
	}

	if _, err := s.visibleNews(newsID, isAdmin); err != nil {
		return nil, 0, err
	}

	var comments []models.Comment
	var total int64

	// 计算总记录数
	if err := s.db.Model(&models.Comment{}).Where("news_id = ?", newsID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count total comments: %w", err)
	}

	// 计算分页偏移量
	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}
	if pageSize <= 0 {
		pageSize = 10 // 默认值
	}

	// 查询带分页的评论数据，按创建时间倒序排列
	if err := s.db.Where("news_id = ?", newsID).
		Order("created_at desc").
		Offset(offset).Limit(pageSize).
		Find(&comments).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get comments with pagination: %w", err)
	}

	return comments, total, nil
}

// GetVoteSummary 某条新闻的投票与评论统计
func (s *CommentService) GetVoteSummary(newsID uint, isAdmin bool) (*models.CommentSummaryResponse, error) {
	if s.db == nil {
		return nil, errors.New("database connection not initialized")
	}

	news, err := s.visibleNews(newsID, isAdmin)
	if err != nil {
		return nil, err
	}

	var totalComments int64
	if err := s.db.Model(&models.Comment{}).Where("news_id = ?", newsID).Count(&totalComments).Error; err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	return &models.CommentSummaryResponse{
		NewsID:        news.ID,
		Real:          news.RealVotes,
		Fake:          news.FakeVotes,
		TotalComments: int(totalComments),
	}, nil
}

// visibleNews 解析新闻并套用可见范围：removed 的新闻对非管理员是 NotFound
func (s *CommentService) visibleNews(newsID uint, isAdmin bool) (*models.News, error) {
	var news models.News
	if err := s.db.First(&news, newsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, fmt.Errorf("failed to get news: %w", err)
	}

	if news.Removed && !isAdmin {
		return nil, ErrNewsNotFound
	}

	return &news, nil
}
