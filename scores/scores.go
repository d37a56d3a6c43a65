package scores

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/NLeSC/massmatch/core"
	"github.com/NLeSC/massmatch/similarity"
)

// Scores computes and holds a dense matrix of similarity results between a
// reference collection and a query collection. The matrix is stored
// row-major in a single flat buffer indexed [reference*queries+query].
//
// Scores borrows the two spectrum collections; they must not be mutated
// while the Scores instance is in use. After Calculate completes the
// instance is read-only; recomputation requires a new instance.
type Scores struct {
	refs    []*core.Spectrum
	queries []*core.Spectrum
	measure similarity.Measure
	cfg     Config

	cells     []similarity.Result
	symmetric bool

	mu       sync.Mutex
	computed bool
}

// New builds an empty Scores over the given collections and measure.
// Both collections must be non-empty; otherwise core.ErrEmptyCollection
// is returned. Symmetric mode is engaged when references and queries are
// the same slice and the measure documents itself symmetric; it can be
// disabled through Config.ForceFullMatrix.
func New(references, queries []*core.Spectrum, measure similarity.Measure, cfg Config) (*Scores, error) {
	if len(references) == 0 {
		return nil, fmt.Errorf("%w: references", core.ErrEmptyCollection)
	}
	if len(queries) == 0 {
		return nil, fmt.Errorf("%w: queries", core.ErrEmptyCollection)
	}
	if measure == nil {
		return nil, fmt.Errorf("similarity measure must not be nil")
	}

	return &Scores{
		refs:      references,
		queries:   queries,
		measure:   measure,
		cfg:       cfg,
		cells:     make([]similarity.Result, len(references)*len(queries)),
		symmetric: !cfg.ForceFullMatrix && measure.Symmetric() && sameCollection(references, queries),
	}, nil
}

// NewSymmetric builds a Scores of one collection against itself.
func NewSymmetric(spectra []*core.Spectrum, measure similarity.Measure, cfg Config) (*Scores, error) {
	return New(spectra, spectra, measure, cfg)
}

// sameCollection reports whether the two slices are views of the same
// backing collection.
func sameCollection(a, b []*core.Spectrum) bool {
	return len(a) == len(b) && len(a) > 0 && &a[0] == &b[0]
}

// Shape returns the matrix dimensions (references, queries).
func (s *Scores) Shape() (int, int) {
	return len(s.refs), len(s.queries)
}

// References returns the borrowed reference collection.
func (s *Scores) References() []*core.Spectrum {
	return s.refs
}

// Queries returns the borrowed query collection.
func (s *Scores) Queries() []*core.Spectrum {
	return s.queries
}

// Symmetric reports whether the triangle optimization is active.
func (s *Scores) Symmetric() bool {
	return s.symmetric
}

// Calculate populates every cell of the matrix, invoking the measure once
// per (reference, query) pair. Rows are computed in parallel across
// Config.Workers goroutines; cell computations are independent and write
// to disjoint matrix slots. In symmetric mode only the upper triangle
// including the diagonal is computed and mirrored into the lower triangle.
//
// Cancellation is cooperative with row granularity: ctx is checked before
// each row, and a cancelled context aborts the pass leaving the instance
// uncomputed. Calling Calculate twice is an error.
func (s *Scores) Calculate(ctx context.Context) error {
	s.mu.Lock()
	if s.computed {
		s.mu.Unlock()
		return fmt.Errorf("scores already computed; build a new instance to recompute")
	}
	s.mu.Unlock()

	log := s.cfg.logger()
	workers := s.cfg.workers()
	rows, cols := len(s.refs), len(s.queries)

	log.Info("calculating similarity matrix",
		zap.Int("references", rows),
		zap.Int("queries", cols),
		zap.Bool("symmetric", s.symmetric),
		zap.Int("workers", workers),
	)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	rowCh := make(chan int)

	g.Go(func() error {
		defer close(rowCh)
		for r := 0; r < rows; r++ {
			if err := gctx.Err(); err != nil {
				return err
			}
			select {
			case rowCh <- r:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	var progressMu sync.Mutex
	done := 0
	rowDone := func() {
		if s.cfg.Progress == nil {
			return
		}
		progressMu.Lock()
		done++
		s.cfg.Progress(done, rows)
		progressMu.Unlock()
	}

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for r := range rowCh {
				s.calculateRow(r)
				rowDone()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("similarity matrix calculation aborted: %w", err)
	}

	s.mu.Lock()
	s.computed = true
	s.mu.Unlock()

	log.Info("similarity matrix complete",
		zap.Int("cells", rows*cols),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// calculateRow fills row r. In symmetric mode the columns below the
// diagonal were already produced by earlier rows and are mirrored instead
// of recomputed; each such cell is written exactly once, by the row that
// computed its transposed twin.
func (s *Scores) calculateRow(r int) {
	cols := len(s.queries)
	q0 := 0
	if s.symmetric {
		q0 = r
	}
	for q := q0; q < cols; q++ {
		res := s.measure.Pair(s.refs[r], s.queries[q])
		s.cells[r*cols+q] = res
		if s.symmetric && q != r {
			s.cells[q*cols+r] = res
		}
	}
}

// isComputed reports whether a full computation pass has finished.
func (s *Scores) isComputed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.computed
}

// Result returns the similarity result for one (reference, query) cell.
// Returns core.ErrNotComputed before a completed Calculate pass.
func (s *Scores) Result(reference, query int) (similarity.Result, error) {
	if !s.isComputed() {
		return similarity.Result{}, core.ErrNotComputed
	}
	if reference < 0 || reference >= len(s.refs) {
		return similarity.Result{}, fmt.Errorf("reference index %d out of range [0, %d)", reference, len(s.refs))
	}
	if query < 0 || query >= len(s.queries) {
		return similarity.Result{}, fmt.Errorf("query index %d out of range [0, %d)", query, len(s.queries))
	}
	return s.cells[reference*len(s.queries)+query], nil
}
