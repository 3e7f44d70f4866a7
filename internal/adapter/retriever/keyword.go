package retriever

import (
	"sort"
	"strings"

	"docqa/internal/domain"
)

// DefaultMaxResults bounds how many chunks a query returns.
const DefaultMaxResults = 5

// minTokenLength filters out short query words ("a", "is", "of") that would
// otherwise match almost everything as substrings.
const minTokenLength = 3

// KeywordRetriever scores chunks against a query by summed term frequency.
// Matching is substring matching, not word-boundary matching: the query
// token "cat" counts an occurrence inside "category". Kept intentionally,
// the scoring contract depends on it.
type KeywordRetriever struct{}

func NewKeywordRetriever() *KeywordRetriever {
	return &KeywordRetriever{}
}

// Retrieve filters docs to allowedIDs when non-empty, flattens their chunks
// with document provenance and ranks them against the query.
//
// Ownership is not checked here; callers must pass only documents the
// requesting user may read.
func (r *KeywordRetriever) Retrieve(docs []domain.Document, query string, allowedIDs []string, maxResults int) []domain.ScoredChunk {
	return Rank(flattenChunks(filterByID(docs, allowedIDs)), query, maxResults)
}

// Rank scores candidates by term frequency and returns at most maxResults
// of them, highest score first. Chunks that match no query token are
// dropped; ties keep input order. A pure function: same inputs, same output.
func Rank(candidates []domain.ScoredChunk, query string, maxResults int) []domain.ScoredChunk {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	tokens := queryTokens(query)
	if len(candidates) == 0 || len(tokens) == 0 {
		return nil
	}

	scored := make([]domain.ScoredChunk, 0, len(candidates))
	for _, c := range candidates {
		content := strings.ToLower(c.Content)
		score := 0
		for _, token := range tokens {
			score += strings.Count(content, token)
		}
		if score == 0 {
			continue
		}
		c.Score = score
		scored = append(scored, c)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}
	return scored
}

// queryTokens lowercases the query, splits on whitespace and drops tokens
// too short to be meaningful.
func queryTokens(query string) []string {
	words := strings.Fields(strings.ToLower(query))
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) >= minTokenLength {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

// filterByID keeps only documents whose ID appears in allowedIDs.
// An empty filter keeps everything.
func filterByID(docs []domain.Document, allowedIDs []string) []domain.Document {
	if len(allowedIDs) == 0 {
		return docs
	}
	allowed := make(map[string]struct{}, len(allowedIDs))
	for _, id := range allowedIDs {
		allowed[id] = struct{}{}
	}
	filtered := make([]domain.Document, 0, len(docs))
	for _, doc := range docs {
		if _, ok := allowed[doc.ID]; ok {
			filtered = append(filtered, doc)
		}
	}
	return filtered
}

// flattenChunks joins every document's chunks with its identity, preserving
// document-then-chunk insertion order.
func flattenChunks(docs []domain.Document) []domain.ScoredChunk {
	var all []domain.ScoredChunk
	for _, doc := range docs {
		for _, chunk := range doc.Chunks {
			all = append(all, domain.ScoredChunk{
				Chunk:      chunk,
				DocumentID: doc.ID,
				Filename:   doc.Filename,
			})
		}
	}
	return all
}
