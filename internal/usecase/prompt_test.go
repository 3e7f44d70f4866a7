package usecase

import (
	"strings"
	"testing"

	"docqa/internal/domain"
)

func scoredChunk(filename, content string, score int) domain.ScoredChunk {
	return domain.ScoredChunk{
		Chunk:    domain.Chunk{ID: "c-" + filename, Content: content},
		Filename: filename,
		Score:    score,
	}
}

func TestAssembleContext(t *testing.T) {
	chunks := []domain.ScoredChunk{
		scoredChunk("a.txt", "Cats are mammals", 3),
		scoredChunk("b.txt", "Birds can fly", 1),
	}

	got := AssembleContext(chunks)
	want := "[1] From \"a.txt\": Cats are mammals\n\n[2] From \"b.txt\": Birds can fly"
	if got != want {
		t.Errorf("AssembleContext =\n%q\nwant\n%q", got, want)
	}
}

func TestAssembleContextEmpty(t *testing.T) {
	if got := AssembleContext(nil); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestQAPrompt(t *testing.T) {
	b := NewPromptBuilder()

	prompt := b.QAPrompt("[1] From \"a.txt\": Cats are mammals", "Are cats mammals?")

	if !strings.HasPrefix(prompt, "You are a helpful assistant that answers questions based on provided document context. Always be accurate and cite your sources when possible.") {
		t.Errorf("prompt opener changed:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Context from user's documents:\n[1] From \"a.txt\": Cats are mammals") {
		t.Errorf("prompt missing context:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Question: Are cats mammals?") {
		t.Errorf("prompt missing question:\n%s", prompt)
	}
	if !strings.HasSuffix(prompt, "cite which document sections you're referencing.") {
		t.Errorf("prompt closer changed:\n%s", prompt)
	}
}

func TestFallbackNotConfigured(t *testing.T) {
	b := NewPromptBuilder()

	got := b.Fallback("[1] From \"a.txt\": Cats are mammals", ReasonNotConfigured)
	want := "Based on your documents, here are the most relevant excerpts:\n\n" +
		"[1] From \"a.txt\": Cats are mammals\n\n" +
		"Please note: AI-powered answering is not configured. Set your API key to enable intelligent responses."
	if got != want {
		t.Errorf("fallback =\n%q\nwant\n%q", got, want)
	}
}

func TestFallbackProcessingFailed(t *testing.T) {
	b := NewPromptBuilder()

	got := b.Fallback("ctx", ReasonProcessingFailed)
	if !strings.Contains(got, "Please note: AI processing failed, showing raw context instead.") {
		t.Errorf("fallback missing reason:\n%s", got)
	}
	// The configuration hint only appears for configuration reasons.
	if strings.Contains(got, "Set your API key") {
		t.Errorf("unexpected hint in processing-failure fallback:\n%s", got)
	}
}
