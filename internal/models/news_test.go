package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewsStatus(t *testing.T) {
	// 状态完全由计数推导，不存储
	tests := []struct {
		name string
		real int
		fake int
		want NewsStatus
	}{
		{"equal votes", 5, 5, StatusEqual},
		{"more real", 6, 5, StatusReal},
		{"more fake", 5, 6, StatusFake},
		{"zero votes", 0, 0, StatusEqual},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := News{RealVotes: tt.real, FakeVotes: tt.fake}
			assert.Equal(t, tt.want, n.Status())
		})
	}
}

func TestNewsStatusIgnoresRemoved(t *testing.T) {
	// removed 的新闻保留计数推导出的分类，removed 不是分类值
	n := News{RealVotes: 6, FakeVotes: 5, Removed: true}
	assert.Equal(t, StatusReal, n.Status())
}

func TestNewsDerivedValues(t *testing.T) {
	n := News{
		RealVotes: 3,
		FakeVotes: 2,
		Comments:  []Comment{{Vote: VoteReal}, {Vote: VoteFake}},
	}

	assert.Equal(t, 5, n.TotalVotes())
	assert.Equal(t, 2, n.CommentCount())
}

func TestNewsToResponse(t *testing.T) {
	dateTime := time.Date(2025, 2, 20, 9, 0, 0, 0, time.UTC)
	n := News{
		ID:        7,
		Topic:     "test topic",
		Reporter:  "test reporter",
		DateTime:  dateTime,
		RealVotes: 981,
		FakeVotes: 125,
		Comments:  []Comment{{ID: 1, NewsID: 7, Vote: VoteReal}},
	}

	resp := n.ToResponse()
	assert.Equal(t, uint(7), resp.ID)
	assert.Equal(t, 981, resp.VoteSummary.Real)
	assert.Equal(t, 125, resp.VoteSummary.Fake)
	assert.Equal(t, 1106, resp.TotalVotes)
	assert.Equal(t, 1, resp.CommentCount)
	assert.Equal(t, StatusReal, resp.Status)
	assert.Len(t, resp.Comments, 1)
}
