package models

import (
	"time"
)

// NewsStatus 新闻状态，由投票计数推导出来，不存数据库
type NewsStatus string

const (
	StatusReal  NewsStatus = "real"
	StatusFake  NewsStatus = "fake"
	StatusEqual NewsStatus = "equal"

	// StatusRemoved 只作为查询过滤值使用，不是新闻自身的分类
	StatusRemoved NewsStatus = "removed"
	StatusAll     NewsStatus = "all"
)

// News 对应数据库中的 'news' 表
type News struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Topic       string    `json:"topic" gorm:"not null;type:varchar(500)"`  // 新闻标题
	ShortDetail string    `json:"short_detail" gorm:"type:varchar(4000)"`   // 简介
	FullDetail  string    `json:"full_detail" gorm:"type:text"`             // 正文内容
	Image       string    `json:"image" gorm:"type:varchar(1000)"`          // 图片URL，可为空
	Reporter    string    `json:"reporter" gorm:"type:varchar(100);index"`  // 记者名
	DateTime    time.Time `json:"date_time" gorm:"not null;index"`          // 发布时间
	Removed     bool      `json:"removed" gorm:"not null;default:false"`    // 软删除标记
	RealVotes   int       `json:"real_votes" gorm:"not null;default:0"`     // real 票计数
	FakeVotes   int       `json:"fake_votes" gorm:"not null;default:0"`     // fake 票计数

	// GORM 自动维护的时间戳
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// GORM 关系定义：删除新闻时级联删除评论
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:NewsID;constraint:OnDelete:CASCADE"`
}

func (News) TableName() string {
	return "news"
}

// TotalVotes 总票数，读取时计算
func (n *News) TotalVotes() int {
	return n.RealVotes + n.FakeVotes
}

// CommentCount 评论数，读取时计算（需要预加载 Comments）
func (n *News) CommentCount() int {
	return len(n.Comments)
}

// Status 根据计数推导 real/fake/equal，removed 的新闻也有自己的分类
func (n *News) Status() NewsStatus {
	switch {
	case n.RealVotes > n.FakeVotes:
		return StatusReal
	case n.RealVotes < n.FakeVotes:
		return StatusFake
	default:
		return StatusEqual
	}
}

// VoteSummary 投票统计
type VoteSummary struct {
	Real int `json:"real"`
	Fake int `json:"fake"`
}

// NewsResponse 用于向前端返回新闻信息
type NewsResponse struct {
	ID           uint              `json:"id"`
	Topic        string            `json:"topic"`
	ShortDetail  string            `json:"short_detail"`
	FullDetail   string            `json:"full_detail"`
	Image        string            `json:"image"`
	Reporter     string            `json:"reporter"`
	DateTime     time.Time         `json:"date_time"`
	Removed      bool              `json:"removed"`
	VoteSummary  VoteSummary       `json:"vote_summary"`
	TotalVotes   int               `json:"total_votes"`
	CommentCount int               `json:"comment_count"`
	Status       NewsStatus        `json:"status"`
	Comments     []CommentResponse `json:"comments"`
}

func (n *News) ToResponse() NewsResponse {
	comments := make([]CommentResponse, 0, len(n.Comments))
	for _, c := range n.Comments {
		comments = append(comments, c.ToResponse())
	}

	return NewsResponse{
		ID:           n.ID,
		Topic:        n.Topic,
		ShortDetail:  n.ShortDetail,
		FullDetail:   n.FullDetail,
		Image:        n.Image,
		Reporter:     n.Reporter,
		DateTime:     n.DateTime,
		Removed:      n.Removed,
		VoteSummary:  VoteSummary{Real: n.RealVotes, Fake: n.FakeVotes},
		TotalVotes:   n.TotalVotes(),
		CommentCount: n.CommentCount(),
		Status:       n.Status(),
		Comments:     comments,
	}
}

// NewsCreateRequest 用于创建新闻时的请求体
type NewsCreateRequest struct {
	Topic       string `json:"topic" binding:"required,max=500"`
	ShortDetail string `json:"short_detail" binding:"required,max=4000"`
	FullDetail  string `json:"full_detail" binding:"required"`
	Image       string `json:"image"` // 图片URL可选
	Reporter    string `json:"reporter" binding:"required,max=100"`
	DateTime    string `json:"date_time"` // ISO-8601，可选，默认为提交时间
}

// NewsQuery 列表/搜索的查询参数
type NewsQuery struct {
	Keyword   string
	Status    string
	SortField string
	SortOrder string
	Page      int
	Size      int
}
