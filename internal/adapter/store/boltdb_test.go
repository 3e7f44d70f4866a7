package store

import (
	"errors"
	"os"
	"testing"
	"time"

	"docqa/internal/domain"
)

func newTestStore(t *testing.T) *BoltStore {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "store_test")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	st, err := NewBoltStore(tmpDir + "/test.db")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestUserRoundtrip(t *testing.T) {
	st := newTestStore(t)

	user := domain.User{
		ID:        "u1",
		Username:  "alice",
		Email:     "alice@example.com",
		CreatedAt: time.Now(),
	}
	if err := st.CreateUser(user, []byte("hash")); err != nil {
		t.Fatal(err)
	}

	got, err := st.GetUserByID("u1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Username != "alice" || got.Email != "alice@example.com" {
		t.Errorf("got %+v", got)
	}

	byEmail, hash, err := st.GetUserByEmail("alice@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if byEmail.ID != "u1" {
		t.Errorf("lookup by email returned %s", byEmail.ID)
	}
	if string(hash) != "hash" {
		t.Errorf("password hash = %q", hash)
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	st := newTestStore(t)

	user := domain.User{ID: "u1", Username: "alice", Email: "alice@example.com", CreatedAt: time.Now()}
	if err := st.CreateUser(user, []byte("hash")); err != nil {
		t.Fatal(err)
	}

	sameEmail := domain.User{ID: "u2", Username: "bob", Email: "alice@example.com", CreatedAt: time.Now()}
	if err := st.CreateUser(sameEmail, []byte("hash")); !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("duplicate email: got %v", err)
	}

	sameName := domain.User{ID: "u3", Username: "alice", Email: "other@example.com", CreatedAt: time.Now()}
	if err := st.CreateUser(sameName, []byte("hash")); !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("duplicate username: got %v", err)
	}
}

func TestUserNotFound(t *testing.T) {
	st := newTestStore(t)

	if _, err := st.GetUserByID("missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("got %v", err)
	}
	if _, _, err := st.GetUserByEmail("missing@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("got %v", err)
	}
}

func testDocument(id, ownerID string, createdAt time.Time) domain.Document {
	return domain.Document{
		ID:       id,
		OwnerID:  ownerID,
		Filename: id + ".txt",
		Content:  "Some content.",
		Chunks: []domain.Chunk{
			{ID: id + "-c1", Content: "Some content", CreatedAt: createdAt},
		},
		CreatedAt: createdAt,
	}
}

func TestDocumentRoundtrip(t *testing.T) {
	st := newTestStore(t)

	doc := testDocument("d1", "u1", time.Now())
	if err := st.PutDocument(doc); err != nil {
		t.Fatal(err)
	}

	got, err := st.GetDocument("d1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Filename != "d1.txt" || got.OwnerID != "u1" {
		t.Errorf("got %+v", got)
	}
	if len(got.Chunks) != 1 || got.Chunks[0].ID != "d1-c1" {
		t.Errorf("chunks not persisted with document: %+v", got.Chunks)
	}
}

func TestListDocumentsByOwner(t *testing.T) {
	st := newTestStore(t)

	base := time.Now()
	for i, spec := range []struct {
		id    string
		owner string
	}{
		{"d1", "u1"},
		{"d2", "u2"},
		{"d3", "u1"},
	} {
		doc := testDocument(spec.id, spec.owner, base.Add(time.Duration(i)*time.Second))
		if err := st.PutDocument(doc); err != nil {
			t.Fatal(err)
		}
	}

	docs, err := st.ListDocumentsByOwner("u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	// Insertion order per owner.
	if docs[0].ID != "d1" || docs[1].ID != "d3" {
		t.Errorf("order = %s, %s", docs[0].ID, docs[1].ID)
	}
}

func TestDeleteDocument(t *testing.T) {
	st := newTestStore(t)

	doc := testDocument("d1", "u1", time.Now())
	if err := st.PutDocument(doc); err != nil {
		t.Fatal(err)
	}

	if err := st.DeleteDocument("d1", "u2"); !errors.Is(err, domain.ErrAccessDenied) {
		t.Errorf("foreign delete: got %v", err)
	}

	if err := st.DeleteDocument("d1", "u1"); err != nil {
		t.Fatal(err)
	}
	if _, err := st.GetDocument("d1"); !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Errorf("document still present: %v", err)
	}
	docs, err := st.ListDocumentsByOwner("u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 0 {
		t.Errorf("owner index still lists %d documents", len(docs))
	}

	if err := st.DeleteDocument("missing", "u1"); !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Errorf("missing delete: got %v", err)
	}
}
