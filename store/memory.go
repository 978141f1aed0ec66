package store

import (
	"strings"
	"sync"

	"github.com/Neumenon/lexipack/lexipack"
)

// MemStore is an in-memory dictionary store with the same observable
// behavior as DB: (id, lang) is the unique key, the word path only sees ids
// below the codec's 16-bit ceiling, and reloading an entry replaces the
// prior word. Safe for concurrent use.
type MemStore struct {
	mu     sync.RWMutex
	byID   map[idKey]string
	byWord map[wordKey]uint32
}

var _ lexipack.Store = (*MemStore)(nil)

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		byID:   make(map[idKey]string),
		byWord: make(map[wordKey]uint32),
	}
}

// Load upserts entries. Last write wins for both the (id, lang) key and the
// (word, lang) access path.
func (m *MemStore) Load(entries []lexipack.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range entries {
		word := strings.ToLower(e.Word)
		key := idKey{e.Lang, e.ID}
		if prev, ok := m.byID[key]; ok {
			// Replacing the row drops the old word's mapping if it still
			// points at this id.
			prevKey := wordKey{e.Lang, prev}
			if id, ok := m.byWord[prevKey]; ok && id == e.ID {
				delete(m.byWord, prevKey)
			}
		}
		m.byID[key] = word
		if e.ID < lexipack.MaxCodecID {
			m.byWord[wordKey{e.Lang, word}] = e.ID
		}
	}
	return nil
}

// LookupWords implements lexipack.Store.
func (m *MemStore) LookupWords(words []string, lang lexipack.Language) (map[string]uint32, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make(map[string]uint32, len(words))
	for _, w := range words {
		if id, ok := m.byWord[wordKey{lang, w}]; ok {
			result[w] = id
		}
	}
	return result, nil
}

// LookupIDs implements lexipack.Store.
func (m *MemStore) LookupIDs(ids []uint32, lang lexipack.Language) (map[uint32]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make(map[uint32]string, len(ids))
	for _, id := range ids {
		if word, ok := m.byID[idKey{lang, id}]; ok {
			result[id] = word
		}
	}
	return result, nil
}
