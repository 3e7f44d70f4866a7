package domain

import "time"

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type Document struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Filename  string    `json:"filename"`
	Content   string    `json:"content"`
	Chunks    []Chunk   `json:"chunks"`
	CreatedAt time.Time `json:"createdAt"`
}

type Chunk struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// ScoredChunk is a query-time join of a chunk with its parent document's
// identity and a term-frequency score. Never persisted.
type ScoredChunk struct {
	Chunk
	DocumentID string `json:"documentId"`
	Filename   string `json:"filename"`
	Score      int    `json:"score"`
}

type RetrievalResult struct {
	Query  string        `json:"query"`
	Chunks []ScoredChunk `json:"chunks"`
}

// Confidence labels how an answer was produced: generated text is high,
// degraded fallback and the no-results response are low.
type Confidence string

const (
	ConfidenceHigh Confidence = "high"
	ConfidenceLow  Confidence = "low"
)

type AnswerResult struct {
	Answer         string        `json:"answer"`
	RelevantChunks []ScoredChunk `json:"relevantChunks"`
	Confidence     Confidence    `json:"confidence"`
	Question       string        `json:"question"`
}
