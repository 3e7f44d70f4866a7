package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"docqa/internal/domain"
)

type errorResponse struct {
	Error      string    `json:"error"`
	StatusCode int       `json:"statusCode"`
	Timestamp  time.Time `json:"timestamp"`
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{
		Error:      message,
		StatusCode: status,
		Timestamp:  time.Now(),
	})
}

// documentSummary is a document without its content, for listings.
type documentSummary struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	ChunksCount int       `json:"chunksCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func summarize(doc domain.Document) documentSummary {
	return documentSummary{
		ID:          doc.ID,
		Filename:    doc.Filename,
		ChunksCount: len(doc.Chunks),
		CreatedAt:   doc.CreatedAt,
	}
}

// answerChunk is a relevant chunk as returned from /qa/ask: provenance is
// limited to the filename, the owning document id is stripped.
type answerChunk struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Filename string `json:"filename"`
	Score    int    `json:"score"`
}

func answerChunks(chunks []domain.ScoredChunk) []answerChunk {
	out := make([]answerChunk, len(chunks))
	for i, c := range chunks {
		out[i] = answerChunk{
			ID:       c.ID,
			Content:  c.Content,
			Filename: c.Filename,
			Score:    c.Score,
		}
	}
	return out
}
