package catalog

import "golang.org/x/sync/errgroup"

// Filter keeps the entries whose detail carries any selected tag, in
// original order. Lookups run one at a time.
func Filter(entries []EntryRef, selected TagSet, lookup DetailLookup) []EntryRef {
	return FilterConcurrent(entries, selected, lookup, 1)
}

// FilterConcurrent is Filter with up to limit lookups in flight. An empty
// selection returns entries as-is without any lookups. Entries whose detail
// is absent are dropped; one missing detail never affects the others.
func FilterConcurrent(entries []EntryRef, selected TagSet, lookup DetailLookup, limit int) []EntryRef {
	if len(selected) == 0 {
		return entries
	}
	if len(entries) == 0 || lookup == nil {
		return []EntryRef{}
	}
	if limit < 1 {
		limit = 1
	}

	keep := make([]bool, len(entries))
	var g errgroup.Group
	g.SetLimit(limit)
	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			detail, ok := lookup.Lookup(entry)
			keep[i] = ok && detail.HasAnyTag(selected)
			return nil
		})
	}
	_ = g.Wait()

	out := make([]EntryRef, 0, len(entries))
	for i, entry := range entries {
		if keep[i] {
			out = append(out, entry)
		}
	}
	return out
}
