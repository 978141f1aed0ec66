package store

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Neumenon/lexipack/lexipack"
)

// DefaultCacheSize is the per-direction entry count used by NewCached when
// the caller passes 0.
const DefaultCacheSize = 64 * 1024

type wordKey struct {
	lang lexipack.Language
	word string
}

type idKey struct {
	lang lexipack.Language
	id   uint32
}

// Cached is a read-through LRU in front of another store. Only positive
// results are cached: a miss may be a word loaded since the last query, so
// it is re-asked every time. Batches are split into cache hits and a single
// underlying query for the remainder.
type Cached struct {
	inner  lexipack.Store
	byWord *lru.Cache[wordKey, uint32]
	byID   *lru.Cache[idKey, string]
}

var _ lexipack.Store = (*Cached)(nil)

// NewCached wraps inner with LRU caches of the given size per direction.
func NewCached(inner lexipack.Store, size int) (*Cached, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	byWord, err := lru.New[wordKey, uint32](size)
	if err != nil {
		return nil, fmt.Errorf("store: cache: %w", err)
	}
	byID, err := lru.New[idKey, string](size)
	if err != nil {
		return nil, fmt.Errorf("store: cache: %w", err)
	}
	return &Cached{inner: inner, byWord: byWord, byID: byID}, nil
}

// Load forwards to the inner store when it is loadable, then refreshes the
// cached mappings for the loaded entries.
func (c *Cached) Load(entries []lexipack.Entry) error {
	dst, ok := c.inner.(Loadable)
	if !ok {
		return fmt.Errorf("store: cache: inner store is not loadable")
	}
	if err := dst.Load(entries); err != nil {
		return err
	}
	for _, e := range entries {
		word := strings.ToLower(e.Word)
		key := idKey{e.Lang, e.ID}
		// Replacing the row evicts the old word's mapping if it still
		// points at this id, mirroring the inner stores' upsert.
		if prev, ok := c.byID.Peek(key); ok && prev != word {
			prevKey := wordKey{e.Lang, prev}
			if id, ok := c.byWord.Peek(prevKey); ok && id == e.ID {
				c.byWord.Remove(prevKey)
			}
		}
		// Mirror the codec's visibility rule: oversize ids are invisible
		// on the word path but resolvable on the id path.
		c.byID.Add(key, word)
		if e.ID < lexipack.MaxCodecID {
			c.byWord.Add(wordKey{e.Lang, word}, e.ID)
		}
	}
	return nil
}

// LookupWords serves cached words and batches the rest through the inner
// store.
func (c *Cached) LookupWords(words []string, lang lexipack.Language) (map[string]uint32, error) {
	result := make(map[string]uint32, len(words))
	var misses []string

	for _, w := range words {
		if id, ok := c.byWord.Get(wordKey{lang, w}); ok {
			result[w] = id
		} else {
			misses = append(misses, w)
		}
	}

	if len(misses) > 0 {
		found, err := c.inner.LookupWords(misses, lang)
		if err != nil {
			return nil, err
		}
		for w, id := range found {
			result[w] = id
			c.byWord.Add(wordKey{lang, w}, id)
		}
	}

	return result, nil
}

// LookupIDs serves cached ids and batches the rest through the inner store.
func (c *Cached) LookupIDs(ids []uint32, lang lexipack.Language) (map[uint32]string, error) {
	result := make(map[uint32]string, len(ids))
	var misses []uint32

	for _, id := range ids {
		if word, ok := c.byID.Get(idKey{lang, id}); ok {
			result[id] = word
		} else {
			misses = append(misses, id)
		}
	}

	if len(misses) > 0 {
		found, err := c.inner.LookupIDs(misses, lang)
		if err != nil {
			return nil, err
		}
		for id, word := range found {
			result[id] = word
			c.byID.Add(idKey{lang, id}, word)
		}
	}

	return result, nil
}
