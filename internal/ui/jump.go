package ui

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// JumpIndex ranks the known tree paths against a typed query so the
// keybinding layer can pick a jump target
type JumpIndex struct {
	paths []string
}

func NewJumpIndex(paths []string) *JumpIndex {
	return &JumpIndex{paths: paths}
}

// SetPaths replaces the candidate set, e.g. after a refresh
func (j *JumpIndex) SetPaths(paths []string) {
	j.paths = paths
}

// Matches returns up to limit paths ordered by fuzzy rank. An empty query
// returns the candidates in their original order.
func (j *JumpIndex) Matches(query string, limit int) []string {
	if query == "" {
		if limit > 0 && len(j.paths) > limit {
			return j.paths[:limit]
		}
		return j.paths
	}

	ranks := fuzzy.RankFindNormalizedFold(query, j.paths)
	sort.Sort(ranks)

	result := make([]string, 0, len(ranks))
	for _, r := range ranks {
		result = append(result, r.Target)
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result
}

// Best returns the single best match for query
func (j *JumpIndex) Best(query string) (string, bool) {
	matches := j.Matches(query, 1)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}
