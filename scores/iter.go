package scores

import (
	"fmt"
	"sort"

	"github.com/NLeSC/massmatch/core"
	"github.com/NLeSC/massmatch/similarity"
)

// Entry is one matrix cell together with its coordinates.
type Entry struct {
	Reference int
	Query     int
	Result    similarity.Result
}

// Iter walks the cells of one matrix row or column in the style of
// bufio.Scanner: Next advances and reports whether an entry is available,
// Entry returns the current one. An Iter is a pure read over the stored
// matrix; obtaining a fresh one from the accessor restarts the walk.
type Iter struct {
	s       *Scores
	order   []int // indices along the varying axis
	fixed   int   // index along the fixed axis
	byQuery bool  // varying axis is references when true
	pos     int
}

// Next advances the iterator. It returns false when the walk is done.
func (it *Iter) Next() bool {
	if it.pos >= len(it.order) {
		return false
	}
	it.pos++
	return true
}

// Entry returns the entry at the current position. Valid only after a
// Next call that returned true.
func (it *Iter) Entry() Entry {
	i := it.order[it.pos-1]
	if it.byQuery {
		res, _ := it.s.Result(i, it.fixed)
		return Entry{Reference: i, Query: it.fixed, Result: res}
	}
	res, _ := it.s.Result(it.fixed, i)
	return Entry{Reference: it.fixed, Query: i, Result: res}
}

// ByQuery returns an iterator over one query column: every reference
// paired with its result for that query. With sortDescending the entries
// are ordered by score, highest first, ties broken by reference index;
// otherwise they follow reference order. Returns core.ErrNotComputed
// before a completed Calculate pass.
func (s *Scores) ByQuery(query int, sortDescending bool) (*Iter, error) {
	if !s.isComputed() {
		return nil, core.ErrNotComputed
	}
	if query < 0 || query >= len(s.queries) {
		return nil, fmt.Errorf("query index %d out of range [0, %d)", query, len(s.queries))
	}

	order := axisOrder(len(s.refs))
	if sortDescending {
		cols := len(s.queries)
		sortByScore(order, func(i int) float64 { return s.cells[i*cols+query].Score })
	}
	return &Iter{s: s, order: order, fixed: query, byQuery: true}, nil
}

// ByReference returns an iterator over one reference row: every query
// paired with its result for that reference. Ordering follows the same
// rules as ByQuery.
func (s *Scores) ByReference(reference int, sortDescending bool) (*Iter, error) {
	if !s.isComputed() {
		return nil, core.ErrNotComputed
	}
	if reference < 0 || reference >= len(s.refs) {
		return nil, fmt.Errorf("reference index %d out of range [0, %d)", reference, len(s.refs))
	}

	order := axisOrder(len(s.queries))
	if sortDescending {
		cols := len(s.queries)
		sortByScore(order, func(i int) float64 { return s.cells[reference*cols+i].Score })
	}
	return &Iter{s: s, order: order, fixed: reference}, nil
}

func axisOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

// sortByScore orders indices by descending score, breaking ties by index
// ascending so repeated walks are identical.
func sortByScore(order []int, score func(int) float64) {
	sort.Slice(order, func(a, b int) bool {
		sa, sb := score(order[a]), score(order[b])
		if sa != sb {
			return sa > sb
		}
		return order[a] < order[b]
	})
}

// RangeIter lazily walks all matrix cells meeting a score and match-count
// threshold in row-major order, without materializing the hit list.
type RangeIter struct {
	s          *Scores
	minScore   float64
	maxScore   float64
	minMatches int
	r, q       int // position of the next cell to examine
	cur        Entry
	valid      bool
}

// Next advances to the next qualifying cell, returning false when the
// matrix is exhausted.
func (it *RangeIter) Next() bool {
	rows, cols := it.s.Shape()
	for ; it.r < rows; it.r++ {
		for ; it.q < cols; it.q++ {
			res := it.s.cells[it.r*cols+it.q]
			if res.Score < it.minScore || res.Score > it.maxScore || res.Matches < it.minMatches {
				continue
			}
			it.cur = Entry{Reference: it.r, Query: it.q, Result: res}
			it.valid = true
			it.q++
			return true
		}
		it.q = 0
	}
	it.valid = false
	return false
}

// Entry returns the entry found by the last successful Next.
func (it *RangeIter) Entry() Entry {
	return it.cur
}

// Range returns a lazy iterator over every cell whose score lies in
// [minScore, maxScore] and whose match count is at least minMatches.
// Used to threshold library-search hit lists. Returns core.ErrNotComputed
// before a completed Calculate pass.
func (s *Scores) Range(minScore, maxScore float64, minMatches int) (*RangeIter, error) {
	if !s.isComputed() {
		return nil, core.ErrNotComputed
	}
	return &RangeIter{
		s:          s,
		minScore:   minScore,
		maxScore:   maxScore,
		minMatches: minMatches,
	}, nil
}
