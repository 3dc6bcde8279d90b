package board

import (
	"sync"

	"github.com/renval/gangboard/internal/domain/activity"
)

// PageSize is the number of rows shown per category page.
const PageSize = 25

// Move is a paging action.
type Move int

const (
	MoveFirst Move = iota
	MovePrev
	MoveNext
	MoveLast
)

// MoveByName resolves the wire form of a paging action.
func MoveByName(name string) (Move, bool) {
	switch name {
	case "first":
		return MoveFirst, true
	case "prev":
		return MovePrev, true
	case "next":
		return MoveNext, true
	case "last":
		return MoveLast, true
	}
	return 0, false
}

// Name returns the wire form of a paging action.
func (m Move) Name() string {
	switch m {
	case MovePrev:
		return "prev"
	case MoveNext:
		return "next"
	case MoveLast:
		return "last"
	default:
		return "first"
	}
}

// Pager tracks the current page per category. Cursors live in memory only
// and reset to the first page on restart. Out-of-range cursors self-heal:
// every read clamps the stored value against the current item count.
type Pager struct {
	mu    sync.Mutex
	pages map[string]int
}

// NewPager creates an empty pager.
func NewPager() *Pager {
	return &Pager{pages: make(map[string]int)}
}

// Current returns the cursor for a category clamped to the valid page range
// for total items, writing the clamped value back.
func (p *Pager) Current(t activity.Type, total int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.clamp(t, total)
}

// Advance applies a paging action and returns the resulting page.
func (p *Pager) Advance(t activity.Type, total int, m Move) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	current := p.clamp(t, total)
	last := TotalPages(total) - 1
	switch m {
	case MoveFirst:
		current = 0
	case MovePrev:
		current--
	case MoveNext:
		current++
	case MoveLast:
		current = last
	}
	p.pages[t.Code] = current
	return p.clamp(t, total)
}

func (p *Pager) clamp(t activity.Type, total int) int {
	page := p.pages[t.Code]
	if max := TotalPages(total) - 1; page > max {
		page = max
	}
	if page < 0 {
		page = 0
	}
	p.pages[t.Code] = page
	return page
}

// TotalPages returns how many pages total items span. Zero items still count
// as a single (empty) page.
func TotalPages(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + PageSize - 1) / PageSize
}
