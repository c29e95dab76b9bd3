package catalog

import (
	"log/slog"
	"sync"
)

// DetailFetcher retrieves the detail record behind a handle.
type DetailFetcher interface {
	FetchDetail(handle string) (*EntryDetail, error)
}

// DetailLookup resolves an entry to its detail. ok is false when the detail
// is absent for any reason.
type DetailLookup interface {
	Lookup(ref EntryRef) (detail *EntryDetail, ok bool)
}

// LookupFunc adapts a function to DetailLookup.
type LookupFunc func(ref EntryRef) (*EntryDetail, bool)

func (f LookupFunc) Lookup(ref EntryRef) (*EntryDetail, bool) {
	return f(ref)
}

// Store holds the full entry index and a lazily filled detail cache.
//
// The index is set once by Populate. Lookups are safe for concurrent use;
// only successful fetches are cached so a failed entry is retried the next
// time it is looked up.
type Store struct {
	fetcher DetailFetcher
	logger  *slog.Logger

	mu        sync.Mutex
	entries   []EntryRef
	populated bool
	details   map[string]*EntryDetail
}

// NewStore builds an empty store. A nil logger falls back to slog.Default().
func NewStore(fetcher DetailFetcher, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		fetcher: fetcher,
		logger:  logger,
		details: make(map[string]*EntryDetail),
	}
}

// Populate installs the entry index. Only the first call has any effect.
func (s *Store) Populate(entries []EntryRef) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.populated {
		s.logger.Warn("catalog already populated, ignoring", "entries", len(entries))
		return false
	}
	s.entries = append([]EntryRef(nil), entries...)
	s.populated = true
	return true
}

// Entries returns a copy of the full index in original order.
func (s *Store) Entries() []EntryRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]EntryRef(nil), s.entries...)
}

// Cached returns a detail without fetching.
func (s *Store) Cached(ref EntryRef) (*EntryDetail, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.details[ref.Handle]
	return d, ok
}

// Lookup returns the cached detail or fetches it. Fetch failures are logged
// and reported as absent.
func (s *Store) Lookup(ref EntryRef) (*EntryDetail, bool) {
	if d, ok := s.Cached(ref); ok {
		return d, true
	}
	if s.fetcher == nil {
		return nil, false
	}

	d, err := s.fetcher.FetchDetail(ref.Handle)
	if err != nil {
		s.logger.Warn("detail unavailable", "entry", ref.Name, "handle", ref.Handle, "error", err)
		return nil, false
	}
	if d == nil {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.details[ref.Handle]; ok {
		return existing, true
	}
	s.details[ref.Handle] = d
	return d, true
}
