package services

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/RACSolutions/endocare/internal/models"
)

var (
	ErrEntriesLoadFailed = errors.New("load entries failed")
	ErrInvalidSeverity   = errors.New("invalid severity")
)

type EntryDocumentStore interface {
	Save(userID uint, name string, value any) error
	Load(userID uint, name string, target any) (bool, error)
}

// EntryPatch carries a shallow merge onto an existing entry. Nil fields are
// left untouched; the date key itself is always re-asserted by the store.
type EntryPatch struct {
	Symptoms           *map[string]map[string]models.Severity `json:"symptoms"`
	Activities         *[]string                              `json:"activities"`
	Notes              *string                                `json:"notes"`
	CustomActivities   *string                                `json:"customActivities"`
	NoSymptomsRecorded *bool                                  `json:"noSymptomsRecorded"`
}

// EntryStore owns the authoritative per-user entry map. Every mutation
// applies to in-memory state synchronously (read-your-writes) and replaces
// the whole map copy-on-write, then persists the full collection
// asynchronously. Readers always see a complete snapshot, never a partial
// one.
type EntryStore struct {
	documents EntryDocumentStore

	mu      sync.RWMutex
	cache   map[uint]map[string]models.DailyEntry
	pending map[uint]map[string]models.DailyEntry
	saving  map[uint]bool
	lastErr map[uint]error

	persists sync.WaitGroup
}

func NewEntryStore(documents EntryDocumentStore) *EntryStore {
	return &EntryStore{
		documents: documents,
		cache:     make(map[uint]map[string]models.DailyEntry),
		pending:   make(map[uint]map[string]models.DailyEntry),
		saving:    make(map[uint]bool),
		lastErr:   make(map[uint]error),
	}
}

// Entries returns the user's full entry map as a read-only snapshot. Callers
// must not mutate it; all writes go through the store.
func (store *EntryStore) Entries(userID uint) (map[string]models.DailyEntry, error) {
	store.mu.RLock()
	snapshot, cached := store.cache[userID]
	store.mu.RUnlock()
	if cached {
		return snapshot, nil
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	if snapshot, cached = store.cache[userID]; cached {
		return snapshot, nil
	}

	document := map[string]json.RawMessage{}
	if _, err := store.documents.Load(userID, models.DocumentEntries, &document); err != nil {
		return nil, ErrEntriesLoadFailed
	}
	snapshot = DecodeEntriesDocument(document)
	store.cache[userID] = snapshot
	return snapshot, nil
}

// Get returns the entry for a date, or the canonical zero-value entry when
// none was recorded. Callers never branch on existence.
func (store *EntryStore) Get(userID uint, dateKey string) (models.DailyEntry, error) {
	entries, err := store.Entries(userID)
	if err != nil {
		return models.DailyEntry{}, err
	}
	entry, exists := entries[dateKey]
	if !exists {
		return models.NewDailyEntry(dateKey), nil
	}
	return cloneEntry(entry), nil
}

// Update shallow-merges the patch onto the stored (or zero-value) entry and
// persists the full collection in the background. Conflicting state between
// symptoms and the no-symptoms flag is resolved in the flag-setter's favor.
func (store *EntryStore) Update(userID uint, dateKey string, patch EntryPatch) (models.DailyEntry, error) {
	return store.mutate(userID, dateKey, func(entry *models.DailyEntry) {
		if patch.Symptoms != nil {
			entry.Symptoms = cloneSymptoms(*patch.Symptoms)
			pruneEmptyCategories(entry.Symptoms)
			if len(entry.Symptoms) > 0 {
				entry.NoSymptomsRecorded = false
			}
		}
		if patch.Activities != nil {
			entry.Activities = append([]string{}, (*patch.Activities)...)
		}
		if patch.Notes != nil {
			entry.Notes = *patch.Notes
		}
		if patch.CustomActivities != nil {
			entry.CustomActivities = *patch.CustomActivities
		}
		if patch.NoSymptomsRecorded != nil {
			entry.NoSymptomsRecorded = *patch.NoSymptomsRecorded
			if entry.NoSymptomsRecorded {
				entry.Symptoms = map[string]map[string]models.Severity{}
			}
		}
	})
}

// SetSymptomSeverity records one symptom's severity for a day. Severity zero
// deletes the symptom key, and a category emptied by that deletion is removed
// entirely. Recording any symptom clears the no-symptoms flag.
func (store *EntryStore) SetSymptomSeverity(userID uint, dateKey string, categoryID string, name string, severity models.Severity) (models.DailyEntry, error) {
	if severity != 0 && !severity.Valid() {
		return models.DailyEntry{}, ErrInvalidSeverity
	}

	return store.mutate(userID, dateKey, func(entry *models.DailyEntry) {
		if severity == 0 {
			if categorySymptoms, exists := entry.Symptoms[categoryID]; exists {
				delete(categorySymptoms, name)
				if len(categorySymptoms) == 0 {
					delete(entry.Symptoms, categoryID)
				}
			}
			return
		}

		if entry.Symptoms[categoryID] == nil {
			entry.Symptoms[categoryID] = map[string]models.Severity{}
		}
		entry.Symptoms[categoryID][name] = severity
		entry.NoSymptomsRecorded = false
	})
}

// ToggleActivity adds the activity name to the day, or removes it when
// already present.
func (store *EntryStore) ToggleActivity(userID uint, dateKey string, name string) (models.DailyEntry, error) {
	return store.mutate(userID, dateKey, func(entry *models.DailyEntry) {
		filtered := make([]string, 0, len(entry.Activities))
		removed := false
		for _, activity := range entry.Activities {
			if activity == name {
				removed = true
				continue
			}
			filtered = append(filtered, activity)
		}
		if !removed {
			filtered = append(filtered, name)
		}
		entry.Activities = filtered
	})
}

// SetNoSymptoms marks a day as explicitly symptom-free or clears that mark.
// Setting the flag wipes recorded symptoms but keeps activities and notes;
// clearing it never restores what was wiped.
func (store *EntryStore) SetNoSymptoms(userID uint, dateKey string, confirmed bool) (models.DailyEntry, error) {
	return store.mutate(userID, dateKey, func(entry *models.DailyEntry) {
		entry.NoSymptomsRecorded = confirmed
		if confirmed {
			entry.Symptoms = map[string]map[string]models.Severity{}
		}
	})
}

// PersistenceWarning reports the most recent background save failure for the
// user, if any. In-memory state stays authoritative either way.
func (store *EntryStore) PersistenceWarning(userID uint) error {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.lastErr[userID]
}

// Wait blocks until all in-flight background persists have finished. Used on
// shutdown and in tests.
func (store *EntryStore) Wait() {
	store.persists.Wait()
}

func (store *EntryStore) mutate(userID uint, dateKey string, apply func(entry *models.DailyEntry)) (models.DailyEntry, error) {
	if _, err := store.Entries(userID); err != nil {
		return models.DailyEntry{}, err
	}

	store.mu.Lock()
	current := store.cache[userID]

	entry, exists := current[dateKey]
	if exists {
		entry = cloneEntry(entry)
	} else {
		entry = models.NewDailyEntry(dateKey)
	}
	apply(&entry)
	entry.Date = dateKey

	next := make(map[string]models.DailyEntry, len(current)+1)
	for key, value := range current {
		next[key] = value
	}
	next[dateKey] = entry
	store.cache[userID] = next

	// Coalesce background saves: only the newest snapshot is pending at any
	// time, and one persister per user drains it, so an older snapshot can
	// never overwrite a newer one.
	store.pending[userID] = next
	startPersister := !store.saving[userID]
	if startPersister {
		store.saving[userID] = true
		store.persists.Add(1)
	}
	store.mu.Unlock()

	if startPersister {
		go store.drainPersists(userID)
	}
	return entry, nil
}

func (store *EntryStore) drainPersists(userID uint) {
	defer store.persists.Done()
	for {
		store.mu.Lock()
		snapshot, dirty := store.pending[userID]
		if !dirty {
			store.saving[userID] = false
			store.mu.Unlock()
			return
		}
		delete(store.pending, userID)
		store.mu.Unlock()

		err := store.documents.Save(userID, models.DocumentEntries, snapshot)

		store.mu.Lock()
		if err != nil {
			store.lastErr[userID] = err
		} else {
			delete(store.lastErr, userID)
		}
		store.mu.Unlock()

		if err != nil {
			log.Printf("persist entries for user %d failed: %v", userID, err)
		}
	}
}

func cloneEntry(entry models.DailyEntry) models.DailyEntry {
	cloned := entry
	cloned.Symptoms = cloneSymptoms(entry.Symptoms)
	cloned.Activities = append([]string{}, entry.Activities...)
	return cloned
}

func cloneSymptoms(symptoms map[string]map[string]models.Severity) map[string]map[string]models.Severity {
	cloned := make(map[string]map[string]models.Severity, len(symptoms))
	for categoryID, categorySymptoms := range symptoms {
		clonedCategory := make(map[string]models.Severity, len(categorySymptoms))
		for name, severity := range categorySymptoms {
			clonedCategory[name] = severity
		}
		cloned[categoryID] = clonedCategory
	}
	return cloned
}

func pruneEmptyCategories(symptoms map[string]map[string]models.Severity) {
	for categoryID, categorySymptoms := range symptoms {
		if len(categorySymptoms) == 0 {
			delete(symptoms, categoryID)
		}
	}
}
