package store

import (
	"reflect"
	"testing"

	"github.com/Neumenon/lexipack/lexipack"
)

// countingStore wraps MemStore and counts underlying batch calls.
type countingStore struct {
	*MemStore
	wordCalls int
	idCalls   int
}

func (c *countingStore) LookupWords(words []string, lang lexipack.Language) (map[string]uint32, error) {
	c.wordCalls++
	return c.MemStore.LookupWords(words, lang)
}

func (c *countingStore) LookupIDs(ids []uint32, lang lexipack.Language) (map[uint32]string, error) {
	c.idCalls++
	return c.MemStore.LookupIDs(ids, lang)
}

func newCountingStore(t *testing.T) *countingStore {
	t.Helper()
	inner := &countingStore{MemStore: NewMemStore()}
	err := inner.Load([]lexipack.Entry{
		{ID: 10, Word: "hello", Lang: lexipack.EN},
		{ID: 11, Word: "world", Lang: lexipack.EN},
	})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return inner
}

func TestCachedServesRepeatsFromCache(t *testing.T) {
	inner := newCountingStore(t)
	cached, err := NewCached(inner, 16)
	if err != nil {
		t.Fatalf("NewCached failed: %v", err)
	}

	want := map[string]uint32{"hello": 10, "world": 11}
	for i := 0; i < 3; i++ {
		got, err := cached.LookupWords([]string{"hello", "world"}, lexipack.EN)
		if err != nil {
			t.Fatalf("LookupWords #%d failed: %v", i+1, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("LookupWords #%d = %v, want %v", i+1, got, want)
		}
	}
	if inner.wordCalls != 1 {
		t.Errorf("inner word calls = %d, want 1", inner.wordCalls)
	}

	for i := 0; i < 3; i++ {
		if _, err := cached.LookupIDs([]uint32{10, 11}, lexipack.EN); err != nil {
			t.Fatalf("LookupIDs #%d failed: %v", i+1, err)
		}
	}
	if inner.idCalls != 1 {
		t.Errorf("inner id calls = %d, want 1", inner.idCalls)
	}
}

func TestCachedMissesAlwaysReAsked(t *testing.T) {
	inner := newCountingStore(t)
	cached, err := NewCached(inner, 16)
	if err != nil {
		t.Fatalf("NewCached failed: %v", err)
	}

	// "late" is absent, so every batch goes to the inner store; a word
	// loaded after the first miss must become visible.
	if _, err := cached.LookupWords([]string{"late"}, lexipack.EN); err != nil {
		t.Fatalf("LookupWords failed: %v", err)
	}
	if err := inner.Load([]lexipack.Entry{{ID: 12, Word: "late", Lang: lexipack.EN}}); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got, err := cached.LookupWords([]string{"late"}, lexipack.EN)
	if err != nil {
		t.Fatalf("LookupWords failed: %v", err)
	}
	if got["late"] != 12 {
		t.Errorf("late = %v, want 12", got)
	}
	if inner.wordCalls != 2 {
		t.Errorf("inner word calls = %d, want 2", inner.wordCalls)
	}
}

func TestCachedPartialBatch(t *testing.T) {
	inner := newCountingStore(t)
	cached, err := NewCached(inner, 16)
	if err != nil {
		t.Fatalf("NewCached failed: %v", err)
	}

	if _, err := cached.LookupWords([]string{"hello"}, lexipack.EN); err != nil {
		t.Fatalf("LookupWords failed: %v", err)
	}

	// "hello" is cached, "world" needs the inner store: one more batch.
	got, err := cached.LookupWords([]string{"hello", "world"}, lexipack.EN)
	if err != nil {
		t.Fatalf("LookupWords failed: %v", err)
	}
	want := map[string]uint32{"hello": 10, "world": 11}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LookupWords = %v, want %v", got, want)
	}
	if inner.wordCalls != 2 {
		t.Errorf("inner word calls = %d, want 2", inner.wordCalls)
	}
}

func TestCachedLoadWritesThrough(t *testing.T) {
	inner := newCountingStore(t)
	cached, err := NewCached(inner, 16)
	if err != nil {
		t.Fatalf("NewCached failed: %v", err)
	}

	if err := cached.Load([]lexipack.Entry{{ID: 20, Word: "fresh", Lang: lexipack.EN}}); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got, err := cached.LookupWords([]string{"fresh"}, lexipack.EN)
	if err != nil {
		t.Fatalf("LookupWords failed: %v", err)
	}
	if got["fresh"] != 20 {
		t.Errorf("fresh = %v, want 20", got)
	}
	// Served from the cache primed by Load.
	if inner.wordCalls != 0 {
		t.Errorf("inner word calls = %d, want 0", inner.wordCalls)
	}
}

func TestCachedLoadLowercases(t *testing.T) {
	inner := newCountingStore(t)
	cached, err := NewCached(inner, 16)
	if err != nil {
		t.Fatalf("NewCached failed: %v", err)
	}

	if err := cached.Load([]lexipack.Entry{{ID: 20, Word: "Fresh", Lang: lexipack.EN}}); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// The cached id path must agree with the inner store, which folds
	// words to lowercase on ingestion.
	ids, err := cached.LookupIDs([]uint32{20}, lexipack.EN)
	if err != nil {
		t.Fatalf("LookupIDs failed: %v", err)
	}
	if ids[20] != "fresh" {
		t.Errorf("id 20 = %q, want %q", ids[20], "fresh")
	}

	// The word path must be primed under the folded key, so the
	// tokenizer-lowercased lookup is a cache hit.
	words, err := cached.LookupWords([]string{"fresh"}, lexipack.EN)
	if err != nil {
		t.Fatalf("LookupWords failed: %v", err)
	}
	if words["fresh"] != 20 {
		t.Errorf("fresh = %v, want 20", words)
	}
	if inner.wordCalls != 0 {
		t.Errorf("inner word calls = %d, want 0", inner.wordCalls)
	}
}

func TestCachedLoadReplaceEvictsStaleWord(t *testing.T) {
	inner := newCountingStore(t)
	cached, err := NewCached(inner, 16)
	if err != nil {
		t.Fatalf("NewCached failed: %v", err)
	}

	if err := cached.Load([]lexipack.Entry{{ID: 30, Word: "old", Lang: lexipack.EN}}); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := cached.Load([]lexipack.Entry{{ID: 30, Word: "new", Lang: lexipack.EN}}); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// The replaced word must stop resolving, same as querying the inner
	// store directly.
	words, err := cached.LookupWords([]string{"old", "new"}, lexipack.EN)
	if err != nil {
		t.Fatalf("LookupWords failed: %v", err)
	}
	if _, ok := words["old"]; ok {
		t.Errorf("replaced word still resolves: %v", words)
	}
	if words["new"] != 30 {
		t.Errorf("new = %v, want 30", words)
	}

	ids, err := cached.LookupIDs([]uint32{30}, lexipack.EN)
	if err != nil {
		t.Fatalf("LookupIDs failed: %v", err)
	}
	if ids[30] != "new" {
		t.Errorf("id 30 = %q, want %q", ids[30], "new")
	}
}

func TestMemStoreReplaceSemantics(t *testing.T) {
	mem := NewMemStore()
	if err := mem.Load([]lexipack.Entry{{ID: 10, Word: "old", Lang: lexipack.EN}}); err != nil {
		t.Fatal(err)
	}
	if err := mem.Load([]lexipack.Entry{{ID: 10, Word: "new", Lang: lexipack.EN}}); err != nil {
		t.Fatal(err)
	}

	ids, err := mem.LookupIDs([]uint32{10}, lexipack.EN)
	if err != nil {
		t.Fatal(err)
	}
	if ids[10] != "new" {
		t.Errorf("id 10 = %q, want %q", ids[10], "new")
	}
	words, err := mem.LookupWords([]string{"old", "new"}, lexipack.EN)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := words["old"]; ok {
		t.Error("replaced word still resolves")
	}
}

func TestMemStoreOversizeID(t *testing.T) {
	mem := NewMemStore()
	if err := mem.Load([]lexipack.Entry{{ID: 70000, Word: "big", Lang: lexipack.EN}}); err != nil {
		t.Fatal(err)
	}

	words, err := mem.LookupWords([]string{"big"}, lexipack.EN)
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 0 {
		t.Errorf("word path returned oversize id: %v", words)
	}
	ids, err := mem.LookupIDs([]uint32{70000}, lexipack.EN)
	if err != nil {
		t.Fatal(err)
	}
	if ids[70000] != "big" {
		t.Errorf("id path = %v, want big", ids)
	}
}
