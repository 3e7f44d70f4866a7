package chunker

import (
	"regexp"
	"strings"
)

// DefaultMaxChunkSize is the soft cap on chunk length in bytes.
const DefaultMaxChunkSize = 500

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// SentenceChunker splits text at sentence-terminal punctuation and greedily
// packs sentences into chunks of at most maxSize bytes. The cap is soft:
// it is checked at sentence granularity only, so a single sentence longer
// than maxSize becomes its own oversized chunk rather than being split
// mid-sentence.
type SentenceChunker struct {
	maxSize int
}

func NewSentenceChunker(maxSize int) *SentenceChunker {
	if maxSize <= 0 {
		maxSize = DefaultMaxChunkSize
	}
	return &SentenceChunker{maxSize: maxSize}
}

// Split segments text into an ordered sequence of trimmed, non-empty chunks.
// Text without any sentence boundary is returned as a single chunk.
func (c *SentenceChunker) Split(text string) []string {
	var sentences []string
	for _, s := range sentenceBoundary.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences = append(sentences, s)
		}
	}

	var chunks []string
	current := ""

	for _, sentence := range sentences {
		if len(current)+len(sentence) > c.maxSize && len(current) > 0 {
			chunks = append(chunks, strings.TrimSpace(current))
			current = sentence
			continue
		}
		if current != "" {
			current += ". " + sentence
		} else {
			current = sentence
		}
	}

	if strings.TrimSpace(current) != "" {
		chunks = append(chunks, strings.TrimSpace(current))
	}

	if len(chunks) == 0 {
		return []string{text}
	}
	return chunks
}
