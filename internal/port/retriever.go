package port

import "docqa/internal/domain"

// Retriever selects the chunks that best match a query from the given
// document set.
//
// The caller must pre-restrict documents to the requesting user's own —
// no ownership check happens here. Passing a foreign document set silently
// retrieves across it.
type Retriever interface {
	// Retrieve filters documents to allowedIDs when non-empty, flattens
	// their chunks and ranks them against the query, returning at most
	// maxResults chunks ordered by descending score.
	Retrieve(docs []domain.Document, query string, allowedIDs []string, maxResults int) []domain.ScoredChunk
}
