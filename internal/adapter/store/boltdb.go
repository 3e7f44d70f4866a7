package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"docqa/internal/domain"
)

var (
	bucketUsers      = []byte("users")
	bucketUserEmails = []byte("user_emails")
	bucketUserNames  = []byte("user_names")
	bucketDocs       = []byte("docs")
	bucketOwnerDocs  = []byte("owner_docs")
)

// BoltStore persists users and documents in a single bbolt file. Reads run
// inside View transactions, so every request sees a consistent snapshot of
// a document and its chunks even while other requests write.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{bucketUsers, bucketUserEmails, bucketUserNames, bucketDocs, bucketOwnerDocs}
		for _, b := range buckets {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

type userRecord struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash []byte `json:"password_hash"`
	CreatedAt    int64  `json:"created_at"`
}

func (s *BoltStore) CreateUser(user domain.User, passwordHash []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		emails := tx.Bucket(bucketUserEmails)
		names := tx.Bucket(bucketUserNames)
		if emails.Get([]byte(user.Email)) != nil || names.Get([]byte(user.Username)) != nil {
			return domain.ErrUserExists
		}

		rec := userRecord{
			Username:     user.Username,
			Email:        user.Email,
			PasswordHash: passwordHash,
			CreatedAt:    user.CreatedAt.Unix(),
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if err := tx.Bucket(bucketUsers).Put([]byte(user.ID), data); err != nil {
			return err
		}
		if err := emails.Put([]byte(user.Email), []byte(user.ID)); err != nil {
			return err
		}
		return names.Put([]byte(user.Username), []byte(user.ID))
	})
}

func (s *BoltStore) GetUserByID(id string) (domain.User, error) {
	var user domain.User
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketUsers).Get([]byte(id))
		if data == nil {
			return domain.ErrUserNotFound
		}
		var rec userRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return err
		}
		user = recordToUser(id, rec)
		return nil
	})
	return user, err
}

func (s *BoltStore) GetUserByEmail(email string) (domain.User, []byte, error) {
	var (
		user domain.User
		hash []byte
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		id := tx.Bucket(bucketUserEmails).Get([]byte(email))
		if id == nil {
			return domain.ErrUserNotFound
		}
		data := tx.Bucket(bucketUsers).Get(id)
		if data == nil {
			return domain.ErrUserNotFound
		}
		var rec userRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return err
		}
		user = recordToUser(string(id), rec)
		hash = append([]byte(nil), rec.PasswordHash...)
		return nil
	})
	return user, hash, err
}

func recordToUser(id string, rec userRecord) domain.User {
	return domain.User{
		ID:        id,
		Username:  rec.Username,
		Email:     rec.Email,
		CreatedAt: time.Unix(rec.CreatedAt, 0),
	}
}

func (s *BoltStore) PutDocument(doc domain.Document) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		if err := tx.Bucket(bucketDocs).Put([]byte(doc.ID), data); err != nil {
			return err
		}
		return tx.Bucket(bucketOwnerDocs).Put(ownerKey(doc), []byte(doc.ID))
	})
}

func (s *BoltStore) GetDocument(id string) (domain.Document, error) {
	var doc domain.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketDocs).Get([]byte(id))
		if data == nil {
			return domain.ErrDocumentNotFound
		}
		return json.Unmarshal(data, &doc)
	})
	return doc, err
}

func (s *BoltStore) ListDocumentsByOwner(ownerID string) ([]domain.Document, error) {
	var docs []domain.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		docsBucket := tx.Bucket(bucketDocs)
		c := tx.Bucket(bucketOwnerDocs).Cursor()
		prefix := ownerPrefix(ownerID)
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			data := docsBucket.Get(v)
			if data == nil {
				continue
			}
			var doc domain.Document
			if err := json.Unmarshal(data, &doc); err != nil {
				return err
			}
			docs = append(docs, doc)
		}
		return nil
	})
	return docs, err
}

func (s *BoltStore) DeleteDocument(id, ownerID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketDocs).Get([]byte(id))
		if data == nil {
			return domain.ErrDocumentNotFound
		}
		var doc domain.Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		if doc.OwnerID != ownerID {
			return domain.ErrAccessDenied
		}
		if err := tx.Bucket(bucketOwnerDocs).Delete(ownerKey(doc)); err != nil {
			return err
		}
		return tx.Bucket(bucketDocs).Delete([]byte(id))
	})
}

// ownerKey orders an owner's documents by creation time. The document ID
// suffix keeps keys unique when two documents share a timestamp.
func ownerKey(doc domain.Document) []byte {
	return []byte(fmt.Sprintf("%s/%020d/%s", doc.OwnerID, doc.CreatedAt.UnixNano(), doc.ID))
}

func ownerPrefix(ownerID string) []byte {
	return []byte(ownerID + "/")
}
