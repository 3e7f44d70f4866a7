package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"docqa/internal/domain"
	"docqa/internal/port"
)

// DocumentUseCase handles the document lifecycle. A document and its chunks
// are created together in one write and only ever removed together.
type DocumentUseCase struct {
	store   port.DocumentStore
	chunker port.Chunker
}

func NewDocumentUseCase(store port.DocumentStore, chunker port.Chunker) *DocumentUseCase {
	return &DocumentUseCase{store: store, chunker: chunker}
}

// Ingest chunks the extracted text and persists the document atomically.
// Chunk IDs and timestamps are assigned here, not by the chunker.
func (u *DocumentUseCase) Ingest(ownerID, filename, content string) (domain.Document, error) {
	if strings.TrimSpace(filename) == "" {
		return domain.Document{}, &InputError{"File must have a valid name"}
	}
	if strings.TrimSpace(content) == "" {
		return domain.Document{}, &InputError{"Document content cannot be empty"}
	}

	now := time.Now()
	pieces := u.chunker.Split(content)
	chunks := make([]domain.Chunk, len(pieces))
	for i, piece := range pieces {
		chunks[i] = domain.Chunk{
			ID:        uuid.NewString(),
			Content:   strings.TrimSpace(piece),
			CreatedAt: now,
		}
	}

	doc := domain.Document{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Filename:  filename,
		Content:   content,
		Chunks:    chunks,
		CreatedAt: now,
	}
	if err := u.store.PutDocument(doc); err != nil {
		return domain.Document{}, fmt.Errorf("failed to store document: %w", err)
	}
	return doc, nil
}

// Get returns the document when it exists and belongs to ownerID.
func (u *DocumentUseCase) Get(id, ownerID string) (domain.Document, error) {
	doc, err := u.store.GetDocument(id)
	if err != nil {
		return domain.Document{}, err
	}
	if doc.OwnerID != ownerID {
		return domain.Document{}, domain.ErrAccessDenied
	}
	return doc, nil
}

func (u *DocumentUseCase) List(ownerID string) ([]domain.Document, error) {
	return u.store.ListDocumentsByOwner(ownerID)
}

func (u *DocumentUseCase) Delete(id, ownerID string) error {
	return u.store.DeleteDocument(id, ownerID)
}
