package services

import (
	"testing"

	"github.com/RealCheck/RealCheck-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildSeedNewsStacksVotesOnBaseline(t *testing.T) {
	// 种子新闻的最终计数 = 基线 + 评论投出的票，
	// 基线就是"无评论投票"，计数永远不从评论重新汇总
	anonymousVotes := false
	for _, sample := range sampleNewsItems() {
		news := buildSeedNews(sample)

		commentReal, commentFake := 0, 0
		for _, c := range news.Comments {
			switch c.Vote {
			case models.VoteReal:
				commentReal++
			case models.VoteFake:
				commentFake++
			default:
				t.Fatalf("sample %q has invalid vote %q", sample.topic, c.Vote)
			}
		}

		assert.Equal(t, sample.baseReal+commentReal, news.RealVotes, sample.topic)
		assert.Equal(t, sample.baseFake+commentFake, news.FakeVotes, sample.topic)
		assert.Len(t, news.Comments, len(sample.comments), sample.topic)

		if sample.baseReal > 0 || sample.baseFake > 0 {
			anonymousVotes = true
		}
	}
	assert.True(t, anonymousVotes)
}

func TestSampleNewsDerivedStatus(t *testing.T) {
	// 三条样例分别落在 real / real / fake
	statuses := make([]models.NewsStatus, 0, 3)
	for _, sample := range sampleNewsItems() {
		statuses = append(statuses, buildSeedNews(sample).Status())
	}
	assert.Equal(t, []models.NewsStatus{models.StatusReal, models.StatusReal, models.StatusFake}, statuses)
}
