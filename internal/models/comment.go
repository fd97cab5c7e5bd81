package models

import (
	"time"
)

// VoteValue 评论携带的投票值，必须是 real 或 fake 之一
type VoteValue string

const (
	VoteReal VoteValue = "real"
	VoteFake VoteValue = "fake"
)

// Comment 对应数据库中的 'comments' 表
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	NewsID    uint      `json:"news_id" gorm:"not null;index"`              // 所属新闻ID
	Username  string    `json:"username" gorm:"not null;type:varchar(100)"` // 显示名，自由文本
	Text      string    `json:"text" gorm:"type:text"`                      // 评论内容
	Image     string    `json:"image" gorm:"type:varchar(1000)"`            // 图片URL，可为空
	Vote      VoteValue `json:"vote" gorm:"not null;type:varchar(10)"`      // real 或 fake
	CreatedAt time.Time `json:"created_at"`                                 // 评论时间
}

func (Comment) TableName() string {
	return "comments"
}

// CommentResponse 用于向前端返回评论信息
type CommentResponse struct {
	ID        uint      `json:"id"`
	NewsID    uint      `json:"news_id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	Image     string    `json:"image"`
	Vote      VoteValue `json:"vote"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Comment) ToResponse() CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		NewsID:    c.NewsID,
		Username:  c.Username,
		Text:      c.Text,
		Image:     c.Image,
		Vote:      c.Vote,
		CreatedAt: c.CreatedAt,
	}
}

// CommentCreateRequest 用于创建评论时的请求体，vote 必须是 real/fake
type CommentCreateRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Text     string `json:"text" binding:"max=4000"`
	Image    string `json:"image"`
	Vote     string `json:"vote" binding:"required,oneof=real fake"`
}

// CommentSummaryResponse 某条新闻的投票/评论统计
type CommentSummaryResponse struct {
	NewsID        uint `json:"news_id"`
	Real          int  `json:"real"`
	Fake          int  `json:"fake"`
	TotalComments int  `json:"total_comments"`
}
