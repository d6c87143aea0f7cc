package service

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"strings"
	"time"

	"preptrack/internal/common"
	"preptrack/internal/domain/model"
	"preptrack/internal/platform/catalog"

	"github.com/gosimple/slug"
	"github.com/redis/go-redis/v9"
)

const easyPoolCacheKey = "catalog:easy_pool"

// Candidate field names per logical field, tried in priority order. The
// external catalog has shipped several shapes over time.
var (
	titleFields      = []string{"title", "questionTitle", "name"}
	difficultyFields = []string{"difficulty", "level", "difficultyLevel"}
	slugFields       = []string{"titleSlug", "slug"}
	tagsFields       = []string{"tags", "topicTags", "topics"}
)

// fallbackProblems is served whenever the external catalog is unreachable
// or yields no Easy entries.
var fallbackProblems = []catalog.Entry{
	{"title": "Two Sum", "titleSlug": "two-sum", "difficulty": "Easy",
		"tags": []any{"Array", "Hash Table", "Math"}},
	{"title": "Valid Parentheses", "titleSlug": "valid-parentheses", "difficulty": "Easy",
		"tags": []any{"String", "Stack"}},
	{"title": "Best Time to Buy and Sell Stock", "titleSlug": "best-time-to-buy-and-sell-stock", "difficulty": "Easy",
		"tags": []any{"Array", "Dynamic Programming"}},
	{"title": "Contains Duplicate", "titleSlug": "contains-duplicate", "difficulty": "Easy",
		"tags": []any{"Array", "Hash Table"}},
	{"title": "Maximum Subarray", "titleSlug": "maximum-subarray", "difficulty": "Easy",
		"tags": []any{"Array", "Divide and Conquer"}},
}

// CatalogFetcher fetches the raw external problem catalog.
type CatalogFetcher interface {
	FetchAll(ctx context.Context) ([]catalog.Entry, error)
}

// DailyProblemService picks one Easy problem per request, uniformly at
// random, from the external catalog when reachable and a fixed local pool
// otherwise. Catalog failures are absorbed, never surfaced to the caller.
type DailyProblemService struct {
	fetcher  CatalogFetcher
	rdb      *redis.Client // optional cache of the fetched easy pool
	cacheTTL time.Duration
	randInt  func(n int) int
}

func NewDailyProblemService(fetcher CatalogFetcher, rdb *redis.Client, cacheTTL time.Duration) *DailyProblemService {
	return &DailyProblemService{
		fetcher:  fetcher,
		rdb:      rdb,
		cacheTTL: cacheTTL,
		randInt:  rand.Intn,
	}
}

func (s *DailyProblemService) GetRandomEasyProblem(ctx context.Context) (*model.DailyProblem, error) {
	pool := fallbackProblems
	if easy := s.easyPool(ctx); len(easy) > 0 {
		pool = easy
	}

	if len(pool) == 0 {
		return nil, common.Errorf("no easy problems found: %w", common.ErrNotFound)
	}

	picked := pool[s.randInt(len(pool))]
	problem := normalizeEntry(picked)
	return &problem, nil
}

// easyPool returns the external catalog filtered to Easy entries, going
// through the Redis cache when one is configured. Any failure along the
// way returns nil so the caller keeps the local fallback pool.
func (s *DailyProblemService) easyPool(ctx context.Context) []catalog.Entry {
	if cached := s.cachedPool(ctx); cached != nil {
		return cached
	}

	entries, err := s.fetcher.FetchAll(ctx)
	if err != nil {
		log.Printf("External catalog fetch failed, using fallback pool: %v", err)
		return nil
	}

	easy := filterEasy(entries)
	if len(easy) > 0 {
		s.storePool(ctx, easy)
	}
	return easy
}

func (s *DailyProblemService) cachedPool(ctx context.Context) []catalog.Entry {
	if s.rdb == nil {
		return nil
	}
	data, err := s.rdb.Get(ctx, easyPoolCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Catalog cache read failed: %v", err)
		}
		return nil
	}
	var pool []catalog.Entry
	if err := json.Unmarshal(data, &pool); err != nil {
		log.Printf("Catalog cache entry malformed, ignoring: %v", err)
		return nil
	}
	return pool
}

func (s *DailyProblemService) storePool(ctx context.Context, pool []catalog.Entry) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(pool)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, easyPoolCacheKey, data, s.cacheTTL).Err(); err != nil {
		log.Printf("Catalog cache write failed: %v", err)
	}
}

func filterEasy(entries []catalog.Entry) []catalog.Entry {
	var easy []catalog.Entry
	for _, e := range entries {
		if strings.EqualFold(firstString(e, difficultyFields), "easy") {
			easy = append(easy, e)
		}
	}
	return easy
}

// normalizeEntry maps a heterogeneous catalog entry onto the fixed output
// shape and builds the solve link from the entry's slug. Entries with no
// slug at all get one derived from the title.
func normalizeEntry(e catalog.Entry) model.DailyProblem {
	title := firstString(e, titleFields)
	if title == "" {
		title = "Unknown Title"
	}

	difficulty := firstString(e, difficultyFields)
	if difficulty == "" {
		difficulty = "Easy"
	}

	linkSlug := firstString(e, slugFields)
	if linkSlug == "" {
		linkSlug = slug.Make(title)
	}

	return model.DailyProblem{
		Title:      title,
		Difficulty: difficulty,
		Link:       "https://leetcode.com/problems/" + linkSlug + "/",
		Tags:       firstTags(e, tagsFields),
	}
}

func firstString(e catalog.Entry, fields []string) string {
	for _, f := range fields {
		if v, ok := e[f].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// firstTags reads the first present tag list. Tag elements are either plain
// strings or objects carrying a "name" field (topicTags shape).
func firstTags(e catalog.Entry, fields []string) []string {
	for _, f := range fields {
		raw, ok := e[f].([]any)
		if !ok {
			continue
		}
		tags := make([]string, 0, len(raw))
		for _, t := range raw {
			switch v := t.(type) {
			case string:
				tags = append(tags, v)
			case map[string]any:
				if name, ok := v["name"].(string); ok {
					tags = append(tags, name)
				}
			}
		}
		return tags
	}
	return []string{}
}
