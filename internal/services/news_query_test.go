package services

import (
	"testing"
	"time"

	"github.com/RealCheck/RealCheck-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func newsItem(id uint, real, fake int, removed bool) models.News {
	return models.News{
		ID:        id,
		RealVotes: real,
		FakeVotes: fake,
		Removed:   removed,
	}
}

func TestUnionByID(t *testing.T) {
	// 同一条新闻命中多个字段只出现一次，
	// 顺序是 topic > short_detail > reporter 的先见顺序
	topicMatches := []models.News{newsItem(1, 0, 0, false), newsItem(2, 0, 0, false)}
	shortMatches := []models.News{newsItem(2, 0, 0, false), newsItem(3, 0, 0, false)}
	reporterMatches := []models.News{newsItem(1, 0, 0, false), newsItem(4, 0, 0, false)}

	result := unionByID(topicMatches, shortMatches, reporterMatches)

	ids := make([]uint, 0, len(result))
	for _, n := range result {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []uint{1, 2, 3, 4}, ids)
}

func TestFilterByStatus(t *testing.T) {
	list := []models.News{
		newsItem(1, 6, 5, false), // real
		newsItem(2, 5, 6, false), // fake
		newsItem(3, 5, 5, false), // equal
	}

	assert.Len(t, filterByStatus(list, "real"), 1)
	assert.Len(t, filterByStatus(list, "fake"), 1)
	assert.Len(t, filterByStatus(list, "equal"), 1)

	// all 和空串都是 no-op
	assert.Len(t, filterByStatus(list, "all"), 3)
	assert.Len(t, filterByStatus(list, ""), 3)
}

func TestFilterByStatusIncludingRemoved(t *testing.T) {
	list := []models.News{
		newsItem(1, 6, 5, false), // real, visible
		newsItem(2, 6, 5, true),  // real, removed
		newsItem(3, 5, 6, true),  // fake, removed
		newsItem(4, 5, 5, false), // equal, visible
	}

	// removed 只按删除标记过滤
	removed := filterByStatusIncludingRemoved(list, "removed")
	assert.Len(t, removed, 2)
	for _, n := range removed {
		assert.True(t, n.Removed)
	}

	// real/fake/equal 会先排除已删除的新闻，即使是管理员路径
	realOnly := filterByStatusIncludingRemoved(list, "real")
	assert.Len(t, realOnly, 1)
	assert.Equal(t, uint(1), realOnly[0].ID)

	fake := filterByStatusIncludingRemoved(list, "fake")
	assert.Empty(t, fake)

	// all 包含已删除的
	assert.Len(t, filterByStatusIncludingRemoved(list, "all"), 4)
}

func TestSortNewsList(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	list := []models.News{
		{ID: 1, DateTime: base.Add(time.Hour), RealVotes: 1, FakeVotes: 0},
		{ID: 2, DateTime: base, RealVotes: 5, FakeVotes: 5},
		{ID: 3, DateTime: base.Add(2 * time.Hour), RealVotes: 2, FakeVotes: 1},
	}

	byDateDesc := sortNewsList(list, "dateTime", "desc")
	assert.Equal(t, uint(3), byDateDesc[0].ID)
	assert.Equal(t, uint(2), byDateDesc[2].ID)

	byDateAsc := sortNewsList(list, "dateTime", "asc")
	assert.Equal(t, uint(2), byDateAsc[0].ID)

	// 方向不区分大小写
	byDateAscUpper := sortNewsList(list, "dateTime", "ASC")
	assert.Equal(t, uint(2), byDateAscUpper[0].ID)

	byVotesDesc := sortNewsList(list, "totalVotes", "desc")
	assert.Equal(t, uint(2), byVotesDesc[0].ID) // 10票
	assert.Equal(t, uint(1), byVotesDesc[2].ID) // 1票

	// 未知排序字段保持原有顺序
	unknown := sortNewsList(list, "hotness", "desc")
	assert.Equal(t, uint(1), unknown[0].ID)
	assert.Equal(t, uint(2), unknown[1].ID)
	assert.Equal(t, uint(3), unknown[2].ID)

	// 排序不改动输入
	assert.Equal(t, uint(1), list[0].ID)
}

func TestSortNewsListByCommentCount(t *testing.T) {
	list := []models.News{
		{ID: 1, Comments: []models.Comment{{}, {}}},
		{ID: 2, Comments: []models.Comment{{}, {}, {}}},
		{ID: 3},
	}

	sorted := sortNewsList(list, "commentCount", "asc")
	assert.Equal(t, uint(3), sorted[0].ID)
	assert.Equal(t, uint(2), sorted[2].ID)
}

func TestSortNewsListStability(t *testing.T) {
	// 相同票数的新闻保持彼此的相对顺序
	list := []models.News{
		newsItem(1, 2, 0, false),
		newsItem(2, 1, 1, false),
		newsItem(3, 0, 2, false),
	}

	sorted := sortNewsList(list, "totalVotes", "desc")
	assert.Equal(t, uint(1), sorted[0].ID)
	assert.Equal(t, uint(2), sorted[1].ID)
	assert.Equal(t, uint(3), sorted[2].ID)
}

func TestPaginateNews(t *testing.T) {
	// 23条、每页10条：第1页10条，第3页3条，第4页空页不报错，
	// total 每一页都是23
	list := make([]models.News, 23)
	for i := range list {
		list[i] = newsItem(uint(i+1), 0, 0, false)
	}

	page1, total := paginateNews(list, 1, 10)
	assert.Len(t, page1, 10)
	assert.Equal(t, int64(23), total)
	assert.Equal(t, uint(1), page1[0].ID)

	page3, total := paginateNews(list, 3, 10)
	assert.Len(t, page3, 3)
	assert.Equal(t, int64(23), total)
	assert.Equal(t, uint(21), page3[0].ID)

	page4, total := paginateNews(list, 4, 10)
	assert.Empty(t, page4)
	assert.Equal(t, int64(23), total)
}

func TestPaginateNewsDefaults(t *testing.T) {
	list := make([]models.News, 5)

	// 非法页码和页大小回退到默认值
	page, total := paginateNews(list, 0, 0)
	assert.Len(t, page, 5)
	assert.Equal(t, int64(5), total)
}

func TestParseDateTime(t *testing.T) {
	// 合法的 ISO-8601
	parsed, err := parseDateTime("2024-05-01T12:34:56Z")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 34, 56, 0, time.UTC), parsed)

	// 不合法的格式
	_, err = parseDateTime("01/05/2024")
	assert.ErrorIs(t, err, ErrInvalidDateTime)

	// 空串默认用当前时间
	before := time.Now()
	parsed, err = parseDateTime("")
	assert.NoError(t, err)
	assert.False(t, parsed.Before(before))
}

func TestVoteColumn(t *testing.T) {
	assert.Equal(t, "real_votes", voteColumn(models.VoteReal))
	assert.Equal(t, "fake_votes", voteColumn(models.VoteFake))
}
