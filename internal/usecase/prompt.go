package usecase

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"docqa/internal/domain"
)

//go:embed templates/*.txt
var promptTemplates embed.FS

// Fallback reasons shown to the user when no generated answer is produced.
const (
	ReasonNotConfigured    = "AI-powered answering is not configured"
	ReasonProcessingFailed = "AI processing failed, showing raw context instead"
)

const configHint = "Set your API key to enable intelligent responses."

// NoResultsAnswer is the canned response for queries matching no chunks.
const NoResultsAnswer = "I couldn't find any relevant information in your uploaded documents to answer this question."

// AssembleContext formats ranked chunks into the context string handed to
// the generator, one numbered entry per chunk with its source filename,
// entries separated by a blank line.
func AssembleContext(chunks []domain.ScoredChunk) string {
	entries := make([]string, len(chunks))
	for i, chunk := range chunks {
		entries[i] = fmt.Sprintf("[%d] From \"%s\": %s", i+1, chunk.Filename, chunk.Content)
	}
	return strings.Join(entries, "\n\n")
}

// PromptBuilder renders the question-answering and fallback prompts.
type PromptBuilder struct {
	qa       *template.Template
	fallback *template.Template
}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		qa:       mustTemplate("templates/qa_prompt.txt"),
		fallback: mustTemplate("templates/fallback.txt"),
	}
}

func mustTemplate(name string) *template.Template {
	data, err := promptTemplates.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return template.Must(template.New(name).Parse(string(data)))
}

// QAPrompt builds the generation prompt from the assembled context and the
// user's question.
func (b *PromptBuilder) QAPrompt(context, question string) string {
	return render(b.qa, map[string]string{
		"Context":  context,
		"Question": question,
	})
}

// Fallback builds the non-generated answer: the retrieved context verbatim
// under an excerpts heading plus the reason generation did not run. Reasons
// about configuration get a hint on how to enable it.
func (b *PromptBuilder) Fallback(context, reason string) string {
	hint := ""
	if strings.Contains(reason, "not configured") {
		hint = configHint
	}
	return render(b.fallback, map[string]string{
		"Context": context,
		"Reason":  reason,
		"Hint":    hint,
	})
}

func render(tmpl *template.Template, data map[string]string) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Templates are embedded and parsed at startup; execution over
		// plain string fields cannot fail.
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
