package catalog

// DefaultPageSize is the number of entries shown per page.
const DefaultPageSize = 10

// PageWindow is the maximum number of page-number controls shown at once.
const PageWindow = 5

// Page is one paginated view of a filtered list.
type Page struct {
	// Number is the requested page after clamping to [1, TotalPages].
	Number       int
	Slice        []EntryRef
	VisiblePages []int
	TotalPages   int
}

// Paginate slices filtered into pages of pageSize and computes the window of
// page numbers to display around page. Out-of-range pages are clamped.
func Paginate(filtered []EntryRef, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	total := TotalPages(len(filtered), pageSize)
	page = clamp(page, 1, total)

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Page{
		Number:       page,
		Slice:        filtered[start:end:end],
		VisiblePages: pageWindow(page, total),
		TotalPages:   total,
	}
}

// TotalPages is ceil(n/pageSize), never less than 1.
func TotalPages(n, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	total := (n + pageSize - 1) / pageSize
	if total < 1 {
		return 1
	}
	return total
}

func pageWindow(page, total int) []int {
	width := PageWindow
	if total < width {
		width = total
	}
	start := page - PageWindow/2
	if start < 1 {
		start = 1
	}
	if start+width-1 > total {
		start = total - width + 1
	}
	out := make([]int, width)
	for i := range out {
		out[i] = start + i
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
