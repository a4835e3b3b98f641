package extraction

import (
	"sort"
	"strings"
)

// FoldBlocks reduces one job's raw blocks to the best answer per alias.
//
// QUERY_RESULT blocks are indexed by id first, then every QUERY block
// resolves its linked ids in link order. Multi-token answers are joined with
// a single space and keep the first token's confidence as representative.
// Per alias the higher confidence wins; an exact tie keeps the candidate
// that was admitted first.
func FoldBlocks(blocks []ResultBlock) BestAnswerMap {
	resultsByID := make(map[string]ResultBlock)
	for _, block := range blocks {
		if block.Kind == KindQueryResult {
			resultsByID[block.ID] = block
		}
	}

	best := make(BestAnswerMap)
	for _, block := range blocks {
		if block.Kind != KindQuery || block.Query == nil {
			continue
		}
		var texts []string
		var confidence float64
		for _, id := range block.ResultIDs {
			answer, ok := resultsByID[id]
			if !ok {
				continue
			}
			if len(texts) == 0 {
				confidence = answer.Confidence
			}
			texts = append(texts, answer.Text)
		}
		if len(texts) == 0 {
			continue
		}
		best.admit(CandidateAnswer{
			Alias:        block.Query.Alias,
			QuestionText: block.Query.Text,
			AnswerText:   strings.Join(texts, " "),
			Confidence:   confidence,
		})
	}
	return best
}

// MergeMaps folds per-page maps into one document-level map, in page order,
// with the same higher-confidence-wins / first-seen-tie rule. Merging a map
// with itself is a no-op.
func MergeMaps(maps ...BestAnswerMap) BestAnswerMap {
	merged := make(BestAnswerMap)
	for _, m := range maps {
		for _, alias := range m.aliases() {
			merged.admit(m[alias])
		}
	}
	return merged
}

func (m BestAnswerMap) admit(candidate CandidateAnswer) {
	current, ok := m[candidate.Alias]
	if ok && current.Confidence >= candidate.Confidence {
		return
	}
	m[candidate.Alias] = candidate
}

// aliases returns the map's keys in a stable order so that merge results do
// not depend on Go's map iteration order.
func (m BestAnswerMap) aliases() []string {
	keys := make([]string, 0, len(m))
	for alias := range m {
		keys = append(keys, alias)
	}
	sort.Strings(keys)
	return keys
}

// Candidates lists the winning answers sorted by alias, the shape the API
// returns per document.
func (m BestAnswerMap) Candidates() []CandidateAnswer {
	candidates := make([]CandidateAnswer, 0, len(m))
	for _, alias := range m.aliases() {
		candidates = append(candidates, m[alias])
	}
	return candidates
}
