package service

import (
	"context"
	"sort"
	"time"

	"preptrack/internal/common"
	"preptrack/internal/domain/model"
	"preptrack/internal/domain/repository"
)

const recentQuestionLimit = 5

// DashboardService composes the per-user summary: total and grouped counts,
// the five most recently logged questions, the per-day time series and the
// solve streak. Every call reads fresh from the store; if the store is
// unreachable the whole summary fails rather than returning a partial one.
type DashboardService struct {
	questionRepo repository.QuestionRepository
	loc          *time.Location
	now          func() time.Time
}

func NewDashboardService(questionRepo repository.QuestionRepository, loc *time.Location) *DashboardService {
	return &DashboardService{
		questionRepo: questionRepo,
		loc:          loc,
		now:          time.Now,
	}
}

func (s *DashboardService) GetSummary(ctx context.Context, ownerID string) (*model.DashboardSummary, error) {
	total, err := s.questionRepo.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, common.Errorf("failed to count questions: %w", err)
	}

	byTopic, err := s.questionRepo.GroupCount(ctx, ownerID, "topic")
	if err != nil {
		return nil, common.Errorf("failed to group questions by topic: %w", err)
	}

	byDifficulty, err := s.questionRepo.GroupCount(ctx, ownerID, "difficulty")
	if err != nil {
		return nil, common.Errorf("failed to group questions by difficulty: %w", err)
	}

	recent, err := s.questionRepo.ListRecent(ctx, ownerID, recentQuestionLimit)
	if err != nil {
		return nil, common.Errorf("failed to list recent questions: %w", err)
	}

	solveDates, err := s.questionRepo.SolveDates(ctx, ownerID)
	if err != nil {
		return nil, common.Errorf("failed to list solve dates: %w", err)
	}

	days := DistinctDays(solveDates, s.loc)
	today := truncateToDay(s.now().In(s.loc))

	return &model.DashboardSummary{
		TotalQuestions:        total,
		QuestionsByTopic:      byTopic,
		QuestionsByDifficulty: byDifficulty,
		RecentQuestions:       recent,
		QuestionsByDate:       countByDay(solveDates, s.loc),
		Streak:                CalculateStreak(days, today),
	}, nil
}

// countByDay buckets solve timestamps per calendar day in loc, sorted by
// date ascending. One entry per day that has at least one record.
func countByDay(dates []time.Time, loc *time.Location) []model.DateCount {
	counts := make(map[string]int, len(dates))
	for _, d := range dates {
		counts[d.In(loc).Format("2006-01-02")]++
	}

	out := make([]model.DateCount, 0, len(counts))
	for date, count := range counts {
		out = append(out, model.DateCount{Date: date, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
