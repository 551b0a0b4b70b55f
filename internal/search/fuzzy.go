package search

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/Alexander-D-Karpov/omnis/internal/config"
	"github.com/Alexander-D-Karpov/omnis/pkg/types"
)

type Engine struct {
	cfg *config.Config
}

func NewEngine(cfg *config.Config) *Engine {
	return &Engine{cfg: cfg}
}

func (e *Engine) Enabled() bool {
	return e.cfg == nil || e.cfg.Search.Enabled
}

// Filter keeps the entries whose date or any event matches query, in
// their incoming order. An empty query returns entries unchanged.
func (e *Engine) Filter(entries []types.LogEntry, query string) []types.LogEntry {
	query = strings.TrimSpace(query)
	if query == "" || !e.Enabled() {
		return entries
	}

	limit := len(entries)
	if e.cfg != nil && e.cfg.Search.MaxResults > 0 && e.cfg.Search.MaxResults < limit {
		limit = e.cfg.Search.MaxResults
	}

	result := make([]types.LogEntry, 0, limit)
	for _, entry := range entries {
		if len(result) == limit {
			break
		}
		if matches(entry, query) {
			result = append(result, entry)
		}
	}

	return result
}

func matches(entry types.LogEntry, query string) bool {
	if fuzzy.MatchNormalizedFold(query, entry.DateStr) {
		return true
	}

	for _, event := range entry.Events {
		if fuzzy.MatchNormalizedFold(query, event) {
			return true
		}
	}

	return false
}

// Rank scores how closely text matches query; lower is closer and -1 means
// no match. Used to pick the best entry when jumping to a search hit.
func Rank(query, text string) int {
	return fuzzy.RankMatchNormalizedFold(query, text)
}

// Best returns the index of the entry whose text ranks closest to query,
// or -1 when nothing matches.
func Best(entries []types.LogEntry, query string) int {
	best, bestRank := -1, -1
	for i, entry := range entries {
		candidates := append([]string{entry.DateStr}, entry.Events...)
		for _, c := range candidates {
			r := Rank(query, c)
			if r < 0 {
				continue
			}
			if bestRank < 0 || r < bestRank {
				best, bestRank = i, r
			}
		}
	}
	return best
}
