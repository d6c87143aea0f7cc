package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"preptrack/internal/platform/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	entries []catalog.Entry
	err     error
}

func (f *stubFetcher) FetchAll(context.Context) ([]catalog.Entry, error) {
	return f.entries, f.err
}

func newSelector(f CatalogFetcher) *DailyProblemService {
	return NewDailyProblemService(f, nil, time.Hour)
}

var fallbackTitles = map[string]bool{
	"Two Sum":                         true,
	"Valid Parentheses":               true,
	"Best Time to Buy and Sell Stock": true,
	"Contains Duplicate":              true,
	"Maximum Subarray":                true,
}

func TestRandomProblemFallbackOnFetchFailure(t *testing.T) {
	svc := newSelector(&stubFetcher{err: errors.New("connection timed out")})

	for i := 0; i < 20; i++ {
		problem, err := svc.GetRandomEasyProblem(context.Background())
		require.NoError(t, err, "catalog failure must not surface as an error")
		assert.True(t, fallbackTitles[problem.Title], "unexpected title %q", problem.Title)
		assert.Equal(t, "Easy", problem.Difficulty)
		assert.Contains(t, problem.Link, "https://leetcode.com/problems/")
	}
}

func TestRandomProblemFallbackWhenNoEasyEntries(t *testing.T) {
	svc := newSelector(&stubFetcher{entries: []catalog.Entry{
		{"title": "Hard Thing", "difficulty": "Hard"},
		{"title": "Medium Thing", "level": "Medium"},
	}})

	problem, err := svc.GetRandomEasyProblem(context.Background())
	require.NoError(t, err)
	assert.True(t, fallbackTitles[problem.Title])
}

func TestRandomProblemFiltersEasyCaseInsensitively(t *testing.T) {
	svc := newSelector(&stubFetcher{entries: []catalog.Entry{
		{"title": "Shouty Easy", "difficulty": "EASY", "titleSlug": "shouty-easy"},
		{"title": "Hard Thing", "difficulty": "Hard"},
	}})
	svc.randInt = func(n int) int { return 0 }

	problem, err := svc.GetRandomEasyProblem(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Shouty Easy", problem.Title)
	assert.Equal(t, "https://leetcode.com/problems/shouty-easy/", problem.Link)
}

func TestRandomProblemNormalizesAlternateFieldNames(t *testing.T) {
	svc := newSelector(&stubFetcher{entries: []catalog.Entry{
		{
			"questionTitle": "Merge Two Sorted Lists",
			"level":         "easy",
			"slug":          "merge-two-sorted-lists",
			"topicTags": []any{
				map[string]any{"name": "Linked List"},
				map[string]any{"name": "Recursion"},
			},
		},
	}})
	svc.randInt = func(n int) int { return 0 }

	problem, err := svc.GetRandomEasyProblem(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Merge Two Sorted Lists", problem.Title)
	assert.Equal(t, "easy", problem.Difficulty)
	assert.Equal(t, "https://leetcode.com/problems/merge-two-sorted-lists/", problem.Link)
	assert.Equal(t, []string{"Linked List", "Recursion"}, problem.Tags)
}

func TestRandomProblemDerivesSlugFromTitle(t *testing.T) {
	svc := newSelector(&stubFetcher{entries: []catalog.Entry{
		{"name": "Plus One", "difficultyLevel": "Easy", "topics": []any{"Array", "Math"}},
	}})
	svc.randInt = func(n int) int { return 0 }

	problem, err := svc.GetRandomEasyProblem(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Plus One", problem.Title)
	assert.Equal(t, "https://leetcode.com/problems/plus-one/", problem.Link)
	assert.Equal(t, []string{"Array", "Math"}, problem.Tags)
}

func TestRandomProblemCoversWholePool(t *testing.T) {
	entries := []catalog.Entry{
		{"title": "A", "difficulty": "Easy", "titleSlug": "a"},
		{"title": "B", "difficulty": "Easy", "titleSlug": "b"},
		{"title": "C", "difficulty": "Easy", "titleSlug": "c"},
	}
	svc := newSelector(&stubFetcher{entries: entries})

	for i := range entries {
		idx := i
		svc.randInt = func(n int) int {
			require.Equal(t, len(entries), n)
			return idx
		}
		problem, err := svc.GetRandomEasyProblem(context.Background())
		require.NoError(t, err)
		assert.Equal(t, entries[idx]["title"], problem.Title)
	}
}
