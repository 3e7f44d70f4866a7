package port

import "docqa/internal/domain"

type DocumentStore interface {
	PutDocument(doc domain.Document) error

	GetDocument(id string) (domain.Document, error)

	// ListDocumentsByOwner returns the owner's documents in insertion order.
	ListDocumentsByOwner(ownerID string) ([]domain.Document, error)

	// DeleteDocument removes the document and, with it, all of its chunks.
	// Fails when the document does not exist or belongs to another owner.
	DeleteDocument(id, ownerID string) error
}

type UserStore interface {
	CreateUser(user domain.User, passwordHash []byte) error

	GetUserByID(id string) (domain.User, error)

	// GetUserByEmail returns the user plus their password hash for
	// credential checks.
	GetUserByEmail(email string) (domain.User, []byte, error)
}
