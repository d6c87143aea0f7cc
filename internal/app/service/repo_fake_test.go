package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"preptrack/internal/common"
	"preptrack/internal/domain/model"
)

// memQuestionRepo is an in-memory QuestionRepository for service tests.
type memQuestionRepo struct {
	questions []model.Question
	err       error // when set, every method fails with it
}

func (r *memQuestionRepo) Create(_ context.Context, q *model.Question) error {
	if r.err != nil {
		return r.err
	}
	r.questions = append(r.questions, *q)
	return nil
}

func (r *memQuestionRepo) FindByID(_ context.Context, id string) (*model.Question, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, q := range r.questions {
		if q.ID == id {
			found := q
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memQuestionRepo) ListByOwner(_ context.Context, ownerID string) ([]model.Question, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.ownedByCreatedDesc(ownerID), nil
}

func (r *memQuestionRepo) Update(_ context.Context, q *model.Question) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.questions {
		if r.questions[i].ID == q.ID {
			r.questions[i] = *q
			return nil
		}
	}
	return common.ErrNotFound
}

func (r *memQuestionRepo) Delete(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.questions {
		if r.questions[i].ID == id {
			r.questions = append(r.questions[:i], r.questions[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

func (r *memQuestionRepo) CountByOwner(_ context.Context, ownerID string) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	count := 0
	for _, q := range r.questions {
		if q.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

func (r *memQuestionRepo) GroupCount(_ context.Context, ownerID, column string) ([]model.FieldCount, error) {
	if r.err != nil {
		return nil, r.err
	}
	counts := map[string]int{}
	var order []string
	for _, q := range r.questions {
		if q.OwnerID != ownerID {
			continue
		}
		var key string
		switch column {
		case "topic":
			key = string(q.Topic)
		case "difficulty":
			key = string(q.Difficulty)
		case "platform":
			key = string(q.Platform)
		default:
			return nil, errors.New("column not groupable")
		}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	out := make([]model.FieldCount, 0, len(order))
	for _, key := range order {
		out = append(out, model.FieldCount{Key: key, Count: counts[key]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out, nil
}

func (r *memQuestionRepo) ListRecent(_ context.Context, ownerID string, limit int) ([]model.Question, error) {
	if r.err != nil {
		return nil, r.err
	}
	owned := r.ownedByCreatedDesc(ownerID)
	if len(owned) > limit {
		owned = owned[:limit]
	}
	return owned, nil
}

func (r *memQuestionRepo) SolveDates(_ context.Context, ownerID string) ([]time.Time, error) {
	if r.err != nil {
		return nil, r.err
	}
	var dates []time.Time
	for _, q := range r.questions {
		if q.OwnerID == ownerID {
			dates = append(dates, q.SolvedDate)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	return dates, nil
}

func (r *memQuestionRepo) ownedByCreatedDesc(ownerID string) []model.Question {
	var owned []model.Question
	for _, q := range r.questions {
		if q.OwnerID == ownerID {
			owned = append(owned, q)
		}
	}
	sort.SliceStable(owned, func(i, j int) bool { return owned[i].CreatedAt.After(owned[j].CreatedAt) })
	return owned
}
