package diag

import (
	"cmp"
	"slices"

	"fortio.org/safecast"

	"ferrite/internal/source"
)

// Bag collects the diagnostics of one run, up to a limit.
type Bag struct {
	items []Diagnostic
	max   uint16
}

// NewBag создаёт Bag с лимитом max; значения вне uint16 обрезаются.
func NewBag(max int) *Bag {
	limit := clampLimit(max)
	return &Bag{
		items: make([]Diagnostic, 0, min(int(limit), 64)),
		max:   limit,
	}
}

func clampLimit(n int) uint16 {
	limit, err := safecast.Conv[uint16](n)
	switch {
	case err == nil:
		return limit
	case n < 0:
		return 0
	default:
		return ^uint16(0)
	}
}

// Add returns false once the limit is reached; d is dropped then.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() uint16 {
	return b.max
}

// Count returns how many diagnostics are at least as severe as sev.
func (b *Bag) Count(sev Severity) int {
	n := 0
	for i := range b.items {
		if b.items[i].Severity >= sev {
			n++
		}
	}
	return n
}

func (b *Bag) HasErrors() bool   { return b.Count(SevError) > 0 }
func (b *Bag) HasWarnings() bool { return b.Count(SevWarning) > 0 }

func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает внутренний срез; не изменять.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends other's diagnostics, raising the limit so that none of
// them is lost.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	if total := len(b.items) + len(other.items); total > int(b.max) {
		b.max = clampLimit(total)
	}
	room := int(b.max) - len(b.items)
	b.items = append(b.items, other.items[:min(room, len(other.items))]...)
}

// Sort orders by file, start, end, then most severe first, then code.
// Diagnostics without a source location (I/O) come first.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		if xs, ys := x.Code.HasSource(), y.Code.HasSource(); xs != ys {
			if ys {
				return -1
			}
			return 1
		}
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Start, y.Primary.Start),
			cmp.Compare(x.Primary.End, y.Primary.End),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}

type dedupKey struct {
	code Code
	span source.Span
}

// Dedup keeps the first diagnostic for every (code, primary span) pair.
func (b *Bag) Dedup() {
	seen := make(map[dedupKey]struct{}, len(b.items))
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool {
		key := dedupKey{code: d.Code, span: d.Primary}
		if _, dup := seen[key]; dup {
			return true
		}
		seen[key] = struct{}{}
		return false
	})
}
