package catalog

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePopulateOnlyOnce(t *testing.T) {
	store := NewStore(nil, quietLogger())
	assert.True(t, store.Populate(makeEntries(3)))
	assert.False(t, store.Populate(makeEntries(5)))
	assert.Len(t, store.Entries(), 3)
}

func TestStoreEntriesReturnsCopy(t *testing.T) {
	store := NewStore(nil, quietLogger())
	store.Populate(makeEntries(2))
	entries := store.Entries()
	entries[0].Name = "mutated"
	assert.Equal(t, "e1", store.Entries()[0].Name)
}

func TestStoreLookupCachesSuccess(t *testing.T) {
	f := newFakeFetcher()
	ref := f.add("eevee", "normal")
	store := NewStore(f, quietLogger())
	store.Populate([]EntryRef{ref})

	d1, ok := store.Lookup(ref)
	require.True(t, ok)
	d2, ok := store.Lookup(ref)
	require.True(t, ok)

	assert.Same(t, d1, d2)
	assert.Equal(t, 1, f.callCount())

	cached, ok := store.Cached(ref)
	assert.True(t, ok)
	assert.Same(t, d1, cached)
}

func TestStoreLookupRetriesAfterFailure(t *testing.T) {
	f := newFakeFetcher()
	ref := f.add("ditto", "normal")
	f.failing[ref.Handle] = true

	var logs bytes.Buffer
	store := NewStore(f, slog.New(slog.NewTextHandler(&logs, nil)))

	_, ok := store.Lookup(ref)
	assert.False(t, ok)
	assert.Contains(t, logs.String(), "detail unavailable")
	assert.Contains(t, logs.String(), "ditto")

	f.failing[ref.Handle] = false
	d, ok := store.Lookup(ref)
	require.True(t, ok)
	assert.Equal(t, "ditto", d.Name)
	assert.Equal(t, 2, f.callCount())
}

func TestStoreLookupWithoutFetcherIsAbsent(t *testing.T) {
	store := NewStore(nil, quietLogger())
	_, ok := store.Lookup(EntryRef{Name: "x", Handle: "h"})
	assert.False(t, ok)
}

func TestStoreConcurrentLookups(t *testing.T) {
	f := newFakeFetcher()
	var refs []EntryRef
	for _, n := range []string{"a", "b", "c", "d"} {
		refs = append(refs, f.add(n, "t"))
	}
	store := NewStore(f, quietLogger())
	store.Populate(refs)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d, ok := store.Lookup(refs[i%len(refs)])
			assert.True(t, ok)
			assert.NotNil(t, d)
		}(i)
	}
	wg.Wait()

	for _, r := range refs {
		_, ok := store.Cached(r)
		assert.True(t, ok)
	}
}
