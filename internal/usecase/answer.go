package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"docqa/internal/domain"
	"docqa/internal/port"
)

// QAUseCase runs the question-answering pipeline: retrieve the caller's
// best-matching chunks, assemble them into a bounded context and synthesize
// an answer, degrading to a raw-context fallback when the generator is
// unavailable or fails.
type QAUseCase struct {
	docs       port.DocumentStore
	retriever  port.Retriever
	generator  port.Generator
	prompts    *PromptBuilder
	maxResults int
}

func NewQAUseCase(docs port.DocumentStore, retriever port.Retriever, generator port.Generator, maxResults int) *QAUseCase {
	return &QAUseCase{
		docs:       docs,
		retriever:  retriever,
		generator:  generator,
		prompts:    NewPromptBuilder(),
		maxResults: maxResults,
	}
}

// Answer handles one question end to end. Ownership scoping happens here:
// only ownerID's documents are handed to the retriever. Generation failures
// never surface as errors — once retrieval found at least one chunk the
// caller always gets an answer, labelled with a confidence level.
func (u *QAUseCase) Answer(ctx context.Context, ownerID, question string, documentIDs []string) (domain.AnswerResult, error) {
	clean, err := ValidateQuestion(question)
	if err != nil {
		return domain.AnswerResult{}, err
	}
	if err := ValidateDocumentIDs(documentIDs); err != nil {
		return domain.AnswerResult{}, err
	}

	docs, err := u.docs.ListDocumentsByOwner(ownerID)
	if err != nil {
		return domain.AnswerResult{}, fmt.Errorf("failed to load documents: %w", err)
	}

	chunks := u.retriever.Retrieve(docs, clean, documentIDs, u.maxResults)
	if len(chunks) == 0 {
		return domain.AnswerResult{
			Answer:         NoResultsAnswer,
			RelevantChunks: []domain.ScoredChunk{},
			Confidence:     domain.ConfidenceLow,
			Question:       clean,
		}, nil
	}

	contextText := AssembleContext(chunks)

	var answer string
	confidence := domain.ConfidenceHigh

	if !u.generator.IsAvailable() {
		answer = u.prompts.Fallback(contextText, ReasonNotConfigured)
		confidence = domain.ConfidenceLow
	} else if generated, genErr := u.generator.GenerateContent(ctx, u.prompts.QAPrompt(contextText, clean)); genErr != nil {
		log.Warn().Err(genErr).Str("model", u.generator.ModelName()).Msg("generation failed, returning raw context")
		answer = u.prompts.Fallback(contextText, ReasonProcessingFailed)
		confidence = domain.ConfidenceLow
	} else {
		answer = generated
	}

	return domain.AnswerResult{
		Answer:         answer,
		RelevantChunks: chunks,
		Confidence:     confidence,
		Question:       clean,
	}, nil
}

// Search runs retrieval only, without answer synthesis.
func (u *QAUseCase) Search(ownerID, query string) (domain.RetrievalResult, error) {
	clean, err := ValidateQuestion(query)
	if err != nil {
		return domain.RetrievalResult{}, err
	}

	docs, err := u.docs.ListDocumentsByOwner(ownerID)
	if err != nil {
		return domain.RetrievalResult{}, fmt.Errorf("failed to load documents: %w", err)
	}

	chunks := u.retriever.Retrieve(docs, clean, nil, u.maxResults)
	if chunks == nil {
		chunks = []domain.ScoredChunk{}
	}
	return domain.RetrievalResult{Query: clean, Chunks: chunks}, nil
}
