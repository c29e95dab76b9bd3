package catalog

// Pipeline owns the mutable browsing state: the selected tags, the current
// page and the filtered list derived from them.
//
// Every mutation bumps a generation counter. Work that runs off the caller's
// goroutine (filtering, resolving a page of details) carries the generation
// it was started under, and its result is only installed while that
// generation is still current. Pipeline itself is not safe for concurrent
// use; the UI loop is its only writer.
type Pipeline struct {
	store    *Store
	pageSize int

	selected   TagSet
	filtered   []EntryRef
	page       int
	filtering  bool
	generation uint64
	cards      []Card
}

// Card is a displayable entry on the current page.
type Card struct {
	Ref    EntryRef
	Detail *EntryDetail
}

// View is a snapshot of the pipeline for rendering.
type View struct {
	Page          Page
	FilteredCount int
	Selected      []string
	Filtering     bool
	// Cards is nil until the details for the current page are resolved.
	Cards         []Card
}

// FilterRequest is a filter pass to run away from the UI loop.
type FilterRequest struct {
	Generation uint64
	Entries    []EntryRef
	Selected   TagSet
}

// FilterResult is the outcome of a FilterRequest.
type FilterResult struct {
	Generation uint64
	Filtered   []EntryRef
}

// PageRequest resolves the details for one page.
type PageRequest struct {
	Generation uint64
	Slice      []EntryRef
}

// PageResult is the outcome of a PageRequest.
type PageResult struct {
	Generation uint64
	Cards      []Card
}

// NewPipeline starts with no tags selected, every store entry visible and
// the first page current.
func NewPipeline(store *Store, pageSize int) *Pipeline {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Pipeline{
		store:    store,
		pageSize: pageSize,
		selected: TagSet{},
		filtered: store.Entries(),
		page:     1,
	}
}

// IsSelected reports whether a tag is currently checked.
func (p *Pipeline) IsSelected(tag string) bool {
	return p.selected.Has(tag)
}

// ToggleTag flips a tag, returns to page 1 and starts a new filter pass.
func (p *Pipeline) ToggleTag(tag string) FilterRequest {
	p.selected.Toggle(tag)
	return p.startFilter()
}

// ClearTags unchecks every tag, returns to page 1 and starts a new filter
// pass.
func (p *Pipeline) ClearTags() FilterRequest {
	p.selected = TagSet{}
	return p.startFilter()
}

// Refilter reruns the current selection over the store's entries. The UI
// calls it once the store has been populated.
func (p *Pipeline) Refilter() FilterRequest {
	return p.startFilter()
}

func (p *Pipeline) startFilter() FilterRequest {
	p.generation++
	p.page = 1
	p.filtering = true
	p.cards = nil
	return FilterRequest{
		Generation: p.generation,
		Entries:    p.store.Entries(),
		Selected:   p.selected.Clone(),
	}
}

// Run executes the filter with up to limit concurrent detail lookups.
func (r FilterRequest) Run(lookup DetailLookup, limit int) FilterResult {
	return FilterResult{
		Generation: r.Generation,
		Filtered:   FilterConcurrent(r.Entries, r.Selected, lookup, limit),
	}
}

// ApplyFilter installs a filter result unless a newer mutation has
// superseded it. The page stays at 1.
func (p *Pipeline) ApplyFilter(res FilterResult) bool {
	if res.Generation != p.generation {
		return false
	}
	p.filtered = res.Filtered
	p.filtering = false
	p.page = 1
	return true
}

// SetPage moves to page n, clamped to the valid range. The filter is left
// untouched. While a filter pass is pending the page is pinned to 1 and ok
// is false. When n clamps to the page already shown nothing changes and req
// is nil.
func (p *Pipeline) SetPage(n int) (req *PageRequest, ok bool) {
	if p.filtering {
		return nil, false
	}
	target := clamp(n, 1, TotalPages(len(p.filtered), p.pageSize))
	if target == p.page {
		return nil, true
	}
	p.generation++
	p.page = target
	p.cards = nil
	next := p.pageRequest()
	return &next, true
}

// NextPage advances one page.
func (p *Pipeline) NextPage() (*PageRequest, bool) {
	return p.SetPage(p.page + 1)
}

// PrevPage goes back one page.
func (p *Pipeline) PrevPage() (*PageRequest, bool) {
	return p.SetPage(p.page - 1)
}

// CurrentPageRequest asks for the details of the page currently shown
// without changing any state.
func (p *Pipeline) CurrentPageRequest() PageRequest {
	return p.pageRequest()
}

func (p *Pipeline) pageRequest() PageRequest {
	pg := Paginate(p.filtered, p.page, p.pageSize)
	return PageRequest{Generation: p.generation, Slice: pg.Slice}
}

// Run resolves each entry on the page; entries without a detail are left
// out of the result.
func (r PageRequest) Run(lookup DetailLookup) PageResult {
	cards := make([]Card, 0, len(r.Slice))
	for _, ref := range r.Slice {
		detail, ok := lookup.Lookup(ref)
		if !ok {
			continue
		}
		cards = append(cards, Card{Ref: ref, Detail: detail})
	}
	return PageResult{Generation: r.Generation, Cards: cards}
}

// ApplyPage installs resolved cards for the current page unless superseded.
func (p *Pipeline) ApplyPage(res PageResult) bool {
	if res.Generation != p.generation || p.filtering {
		return false
	}
	p.cards = res.Cards
	return true
}

// Current returns a rendering snapshot.
func (p *Pipeline) Current() View {
	pg := Paginate(p.filtered, p.page, p.pageSize)
	return View{
		Page:          pg,
		FilteredCount: len(p.filtered),
		Selected:      p.selected.Sorted(),
		Filtering:     p.filtering,
		Cards:         p.cards,
	}
}
