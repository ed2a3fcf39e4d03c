package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"
)

var ErrDocumentSaveFailed = errors.New("document save failed")

const (
	defaultSaveAttempts = 3
	defaultSaveBackoff  = 250 * time.Millisecond
)

type DocumentRepository interface {
	Find(userID uint, name string) (string, bool, error)
	Upsert(userID uint, name string, value string) error
}

// DocumentStore persists per-user JSON documents. Writes are retried with a
// linearly increasing delay before a failure is reported; reads treat
// unparseable stored JSON as absent so a corrupt blob never blocks startup.
type DocumentStore struct {
	documents DocumentRepository
	attempts  int
	backoff   time.Duration
}

func NewDocumentStore(documents DocumentRepository) *DocumentStore {
	return &DocumentStore{
		documents: documents,
		attempts:  defaultSaveAttempts,
		backoff:   defaultSaveBackoff,
	}
}

// NewDocumentStoreWithRetry overrides the retry policy, mainly for tests.
func NewDocumentStoreWithRetry(documents DocumentRepository, attempts int, backoff time.Duration) *DocumentStore {
	if attempts < 1 {
		attempts = 1
	}
	return &DocumentStore{
		documents: documents,
		attempts:  attempts,
		backoff:   backoff,
	}
}

// Save marshals the value and upserts it under the user/name pair, retrying
// on repository failure.
func (store *DocumentStore) Save(userID uint, name string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrDocumentSaveFailed, name, err)
	}

	var lastErr error
	for attempt := 1; attempt <= store.attempts; attempt++ {
		lastErr = store.documents.Upsert(userID, name, string(encoded))
		if lastErr == nil {
			return nil
		}
		if attempt < store.attempts {
			time.Sleep(time.Duration(attempt) * store.backoff)
		}
	}
	return fmt.Errorf("%w: %s after %d attempts: %v", ErrDocumentSaveFailed, name, store.attempts, lastErr)
}

// Load unmarshals the stored document into target. It returns false when no
// document exists or the stored JSON cannot be parsed; only repository
// failures propagate as errors.
func (store *DocumentStore) Load(userID uint, name string, target any) (bool, error) {
	raw, found, err := store.documents.Find(userID, name)
	if err != nil {
		return false, fmt.Errorf("load document %s: %w", name, err)
	}
	if !found {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), target); err != nil {
		log.Printf("document %s for user %d is unreadable, starting fresh: %v", name, userID, err)
		return false, nil
	}
	return true, nil
}
