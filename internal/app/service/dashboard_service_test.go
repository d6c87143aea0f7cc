package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"preptrack/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dashOwner = "owner-1"

func newDashboardFixture(questions []model.Question) (*DashboardService, *memQuestionRepo) {
	repo := &memQuestionRepo{questions: questions}
	svc := NewDashboardService(repo, time.UTC)
	svc.now = func() time.Time { return streakToday.Add(10 * time.Hour) }
	return svc, repo
}

func seedQuestion(i int, topic model.QuestionTopic, difficulty model.QuestionDifficulty, solved, created time.Time) model.Question {
	return model.Question{
		ID:         fmt.Sprintf("q-%d", i),
		OwnerID:    dashOwner,
		Title:      fmt.Sprintf("Question %d", i),
		Topic:      topic,
		Difficulty: difficulty,
		Platform:   model.PlatformLeetCode,
		SolvedDate: solved,
		CreatedAt:  created,
		UpdatedAt:  created,
	}
}

func TestGetSummary(t *testing.T) {
	created := func(i int) time.Time { return streakToday.Add(time.Duration(i) * time.Minute) }
	questions := []model.Question{
		seedQuestion(1, model.TopicArrays, model.DifficultyEasy, day(0).Add(8*time.Hour), created(1)),
		seedQuestion(2, model.TopicArrays, model.DifficultyMedium, day(0).Add(20*time.Hour), created(2)),
		seedQuestion(3, model.TopicStrings, model.DifficultyEasy, day(-1).Add(12*time.Hour), created(3)),
		seedQuestion(4, model.TopicTrees, model.DifficultyHard, day(-2).Add(12*time.Hour), created(4)),
		seedQuestion(5, model.TopicArrays, model.DifficultyEasy, day(-4).Add(12*time.Hour), created(5)),
		seedQuestion(6, model.TopicDP, model.DifficultyMedium, day(-4).Add(18*time.Hour), created(6)),
	}
	svc, _ := newDashboardFixture(questions)

	summary, err := svc.GetSummary(context.Background(), dashOwner)
	require.NoError(t, err)

	assert.Equal(t, 6, summary.TotalQuestions)

	// Partition-sum invariant: every grouping adds up to the total.
	assert.Equal(t, summary.TotalQuestions, sumCounts(summary.QuestionsByTopic))
	assert.Equal(t, summary.TotalQuestions, sumCounts(summary.QuestionsByDifficulty))

	// Groupings are sorted by count descending.
	assert.Equal(t, "Arrays", summary.QuestionsByTopic[0].Key)
	assert.Equal(t, 3, summary.QuestionsByTopic[0].Count)
	for i := 1; i < len(summary.QuestionsByTopic); i++ {
		assert.GreaterOrEqual(t, summary.QuestionsByTopic[i-1].Count, summary.QuestionsByTopic[i].Count)
	}

	// Recent: min(5, total) newest-created-first.
	require.Len(t, summary.RecentQuestions, 5)
	assert.Equal(t, "q-6", summary.RecentQuestions[0].ID)
	assert.Equal(t, "q-2", summary.RecentQuestions[4].ID)

	// Per-day series: ascending, one entry per distinct day, sums to total.
	dateTotal := 0
	seen := map[string]bool{}
	for i, dc := range summary.QuestionsByDate {
		dateTotal += dc.Count
		assert.False(t, seen[dc.Date], "duplicate date %s", dc.Date)
		seen[dc.Date] = true
		if i > 0 {
			assert.Less(t, summary.QuestionsByDate[i-1].Date, dc.Date)
		}
	}
	assert.Equal(t, summary.TotalQuestions, dateTotal)
	assert.Len(t, summary.QuestionsByDate, 4)

	// Solves on today, -1, -2 then a gap: streak of 3.
	assert.Equal(t, 3, summary.Streak)
}

func TestGetSummaryEmpty(t *testing.T) {
	svc, _ := newDashboardFixture(nil)

	summary, err := svc.GetSummary(context.Background(), dashOwner)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalQuestions)
	assert.Empty(t, summary.QuestionsByTopic)
	assert.Empty(t, summary.QuestionsByDifficulty)
	assert.Empty(t, summary.RecentQuestions)
	assert.Empty(t, summary.QuestionsByDate)
	assert.Equal(t, 0, summary.Streak)
}

func TestGetSummaryStoreFailure(t *testing.T) {
	svc, repo := newDashboardFixture(nil)
	repo.err = errors.New("connection refused")

	summary, err := svc.GetSummary(context.Background(), dashOwner)
	assert.Error(t, err)
	assert.Nil(t, summary, "no partial summary on store failure")
}

func TestGetSummaryIgnoresOtherOwners(t *testing.T) {
	other := seedQuestion(9, model.TopicOS, model.DifficultyHard, day(0), streakToday)
	other.OwnerID = "someone-else"
	svc, _ := newDashboardFixture([]model.Question{
		seedQuestion(1, model.TopicArrays, model.DifficultyEasy, day(0), streakToday),
		other,
	})

	summary, err := svc.GetSummary(context.Background(), dashOwner)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalQuestions)
	assert.Equal(t, 1, sumCounts(summary.QuestionsByTopic))
}

func sumCounts(counts []model.FieldCount) int {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	return total
}
