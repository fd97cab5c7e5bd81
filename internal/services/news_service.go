package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/RealCheck/RealCheck-backend/internal/database"
	"github.com/RealCheck/RealCheck-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrNewsNotFound     = errors.New("news not found")
	ErrRemovedAdminOnly = errors.New("only admin can view removed news")
	ErrInvalidDateTime  = errors.New("invalid date_time format, expecting ISO-8601, e.g. 2024-05-01T12:34:56Z")
)

// NewsService 封装新闻相关的数据库操作和业务逻辑
type NewsService struct {
	db *gorm.DB
}

// NewNewsService 创建并返回一个新的 NewsService 实例
func NewNewsService() *NewsService {
	return &NewsService{
		db: database.GetDB(),
	}
}

// CreateNews 创建新闻。date_time 不传默认用提交时间，传了必须是合法的 ISO-8601
func (s *NewsService) CreateNews(req *models.NewsCreateRequest) (*models.News, error) {
	if s.db == nil {
		return nil, errors.New("database connection not initialized")
	}

	dateTime, err := parseDateTime(req.DateTime)
	if err != nil {
		return nil, err
	}

	news := &models.News{
		Topic:       req.Topic,
		ShortDetail: req.ShortDetail,
		FullDetail:  req.FullDetail,
		Image:       req.Image,
		Reporter:    req.Reporter,
		DateTime:    dateTime,
		Removed:     false,
		RealVotes:   0,
		FakeVotes:   0,
	}

	if err := s.db.Create(news).Error; err != nil {
		return nil, fmt.Errorf("failed to create news: %w", err)
	}

	return news, nil
}

// parseDateTime 空串默认用当前时间，否则必须是合法的 ISO-8601
func parseDateTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDateTime
	}
	return parsed, nil
}

// GetNewsByID 根据ID获取单条新闻。removed 的新闻对非管理员表现为不存在
func (s *NewsService) GetNewsByID(id uint, isAdmin bool) (*models.News, error) {
	if s.db == nil {
		return nil, errors.New("database connection not initialized")
	}

	var news models.News
	if err := s.db.Preload("Comments").First(&news, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, fmt.Errorf("failed to get news by ID: %w", err)
	}

	if news.Removed && !isAdmin {
		return nil, ErrNewsNotFound
	}

	return &news, nil
}

// GetRemovedNews 获取所有被软删除的新闻（管理员视图）
func (s *NewsService) GetRemovedNews() ([]models.News, error) {
	if s.db == nil {
		return nil, errors.New("database connection not initialized")
	}

	var newsList []models.News
	if err := s.db.Preload("Comments").Where("removed = ?", true).Find(&newsList).Error; err != nil {
		return nil, fmt.Errorf("failed to get removed news: %w", err)
	}

	return newsList, nil
}

// SoftDeleteNews 软删除新闻：只置 removed 标记，评论和计票都不动。幂等
func (s *NewsService) SoftDeleteNews(id uint) error {
	if s.db == nil {
		return errors.New("database connection not initialized")
	}

	var news models.News
	if err := s.db.First(&news, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNewsNotFound
		}
		return fmt.Errorf("failed to get news: %w", err)
	}

	if news.Removed {
		// 已经删过了，幂等返回
		return nil
	}

	if err := s.db.Model(&news).Update("removed", true).Error; err != nil {
		return fmt.Errorf("failed to soft delete news: %w", err)
	}

	return nil
}

// GetNews 搜索/过滤/排序/分页，全部在内存中按固定顺序执行：
// 关键词并集 → 状态过滤 → 排序 → 窗口
func (s *NewsService) GetNews(query models.NewsQuery, isAdmin bool) ([]models.News, int64, error) {
	if s.db == nil {
		return nil, 0, errors.New("database connection not initialized")
	}

	// 非管理员不能用 removed 过滤
	if models.NewsStatus(query.Status) == models.StatusRemoved && !isAdmin {
		return nil, 0, ErrRemovedAdminOnly
	}

	var candidates []models.News
	var err error

	if query.Keyword != "" {
		candidates, err = s.searchByKeyword(query.Keyword, isAdmin)
	} else {
		candidates, err = s.findAll(isAdmin)
	}
	if err != nil {
		return nil, 0, err
	}

	// 状态过滤作用在关键词结果集上，顺序不能反：
	// 两个阶段的可见性范围不一样
	if isAdmin {
		candidates = filterByStatusIncludingRemoved(candidates, query.Status)
	} else {
		candidates = filterByStatus(candidates, query.Status)
	}

	sorted := sortNewsList(candidates, query.SortField, query.SortOrder)

	pageContent, total := paginateNews(sorted, query.Page, query.Size)
	return pageContent, total, nil
}

// findAll 全量候选集，非管理员只拿未删除的
func (s *NewsService) findAll(includeRemoved bool) ([]models.News, error) {
	q := s.db.Preload("Comments")
	if !includeRemoved {
		q = q.Where("removed = ?", false)
	}

	var newsList []models.News
	if err := q.Find(&newsList).Error; err != nil {
		return nil, fmt.Errorf("failed to load news: %w", err)
	}
	return newsList, nil
}

// searchByKeyword 对 topic、short_detail、reporter 三个字段分别做
// 不区分大小写的子串匹配，再按先见顺序取并集去重。
// 同一条新闻命中多个字段只出现一次，顺序是 topic > short_detail > reporter
func (s *NewsService) searchByKeyword(keyword string, includeRemoved bool) ([]models.News, error) {
	pattern := "%" + keyword + "%"
	columns := []string{"topic", "short_detail", "reporter"}

	lists := make([][]models.News, 0, len(columns))
	for _, column := range columns {
		q := s.db.Preload("Comments").Where(column+" ILIKE ?", pattern)
		if !includeRemoved {
			q = q.Where("removed = ?", false)
		}

		var matches []models.News
		if err := q.Find(&matches).Error; err != nil {
			return nil, fmt.Errorf("failed to search news by %s: %w", column, err)
		}
		lists = append(lists, matches)
	}

	return unionByID(lists...), nil
}

// unionByID 按ID去重合并，保留第一次出现的位置
func unionByID(lists ...[]models.News) []models.News {
	seen := make(map[uint]bool)
	var result []models.News
	for _, list := range lists {
		for _, news := range list {
			if seen[news.ID] {
				continue
			}
			seen[news.ID] = true
			result = append(result, news)
		}
	}
	return result
}

// filterByStatus 非管理员路径的状态过滤。输入已经只含可见新闻，
// 这里只按推导状态匹配
func filterByStatus(newsList []models.News, status string) []models.News {
	st := models.NewsStatus(status)
	if status == "" || st == models.StatusAll {
		return newsList
	}

	var result []models.News
	for _, news := range newsList {
		if news.Status() == st {
			result = append(result, news)
		}
	}
	return result
}

// filterByStatusIncludingRemoved 管理员路径的状态过滤。
// removed 只按删除标记过滤；real/fake/equal 会先排除已删除的新闻，
// 管理员想看已删除的内容只能走 removed 或 all
func filterByStatusIncludingRemoved(newsList []models.News, status string) []models.News {
	st := models.NewsStatus(status)
	if status == "" || st == models.StatusAll {
		return newsList
	}

	var result []models.News
	if st == models.StatusRemoved {
		for _, news := range newsList {
			if news.Removed {
				result = append(result, news)
			}
		}
		return result
	}

	for _, news := range newsList {
		if !news.Removed && news.Status() == st {
			result = append(result, news)
		}
	}
	return result
}

// sortNewsList 在过滤后的全集上排序，不是每页单独排。
// 支持 dateTime、totalVotes、commentCount，未知字段保持原有顺序。
// 默认 dateTime 降序由 handler 填进来
func sortNewsList(newsList []models.News, field, order string) []models.News {
	sorted := make([]models.News, len(newsList))
	copy(sorted, newsList)

	var less func(a, b *models.News) int
	switch field {
	case "dateTime":
		less = func(a, b *models.News) int {
			return a.DateTime.Compare(b.DateTime)
		}
	case "totalVotes":
		less = func(a, b *models.News) int {
			return a.TotalVotes() - b.TotalVotes()
		}
	case "commentCount":
		less = func(a, b *models.News) int {
			return a.CommentCount() - b.CommentCount()
		}
	default:
		// 未知排序字段不排序
		return sorted
	}

	// 方向不区分大小写，asc 以外都按降序
	asc := strings.EqualFold(order, "asc")
	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := less(&sorted[i], &sorted[j])
		if asc {
			return cmp < 0
		}
		return cmp > 0
	})

	return sorted
}

// paginateNews 1-based 页码换算窗口，越界的页返回空页不报错，
// total 永远是过滤后全集的大小
func paginateNews(newsList []models.News, page, size int) ([]models.News, int64) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = 10
	}

	total := int64(len(newsList))
	start := (page - 1) * size
	if start >= len(newsList) {
		return []models.News{}, total
	}

	end := start + size
	if end > len(newsList) {
		end = len(newsList)
	}

	return newsList[start:end], total
}
