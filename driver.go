package listcmp

import (
	"io"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Pair holds two expressions that are meant to be compared with each other.
type Pair struct {
	Left  string
	Right string
}

// Driver runs the aggregate queries over collections of expressions.
type Driver struct {
	compare CompareFunc
	workers int
	logger  *slog.Logger
}

// Option configures a Driver.
type Option func(*Driver)

// WithComparator sets the ordering relation. Defaults to CompareStrings.
func WithComparator(fn CompareFunc) Option {
	return func(d *Driver) {
		if fn != nil {
			d.compare = fn
		}
	}
}

// WithWorkers sets how many pairs are compared concurrently.
func WithWorkers(n int) Option {
	return func(d *Driver) {
		if n > 0 {
			d.workers = n
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDriver creates a Driver. Without options it compares with
// CompareStrings on a single goroutine and logs nothing.
func NewDriver(opts ...Option) *Driver {
	d := &Driver{
		compare: CompareStrings,
		workers: 1,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Compare orders two expressions with the driver's comparator.
func (d *Driver) Compare(left, right string) (Ordering, error) {
	return d.compare(left, right)
}

// PairAgreementSum adds up the 1-based positions of the pairs whose left
// expression orders before their right expression. When several pairs fail
// the error of the first one is returned, whatever the number of workers.
func (d *Driver) PairAgreementSum(pairs []Pair) (int, error) {
	verdicts := make([]Ordering, len(pairs))
	errs := make([]error, len(pairs))

	var g errgroup.Group
	g.SetLimit(d.workers)

	for i := range pairs {
		i := i
		g.Go(func() error {
			verdicts[i], errs[i] = d.compare(pairs[i].Left, pairs[i].Right)
			return nil
		})
	}
	_ = g.Wait()

	for i, err := range errs {
		if err != nil {
			d.logger.Debug("pair comparison failed", "pair", i+1, "error", err)
			return 0, &PairError{Index: i + 1, Err: err}
		}
	}

	sum := 0
	for i, o := range verdicts {
		d.logger.Debug("pair compared", "pair", i+1, "verdict", o)
		if o == Less {
			sum += i + 1
		}
	}
	return sum, nil
}

// Sort returns a stably sorted copy of exprs. The first comparison error
// aborts the sort.
func (d *Driver) Sort(exprs []string) ([]string, error) {
	order, err := d.sortIndexes(exprs)
	if err != nil {
		return nil, err
	}

	sorted := make([]string, len(order))
	for i, j := range order {
		sorted[i] = exprs[j]
	}
	return sorted, nil
}

// sortIndexes returns the positions of exprs in sorted order.
func (d *Driver) sortIndexes(exprs []string) ([]int, error) {
	order := make([]int, len(exprs))
	for i := range order {
		order[i] = i
	}

	var sortErr error
	slices.SortStableFunc(order, func(a, b int) int {
		if sortErr != nil {
			return 0
		}
		o, err := d.compare(exprs[a], exprs[b])
		if err != nil {
			sortErr = err
			return 0
		}
		return int(o)
	})
	if sortErr != nil {
		return nil, sortErr
	}

	return order, nil
}

// RankQuery adds both sentinels to exprs, sorts the result and multiplies
// the 1-based positions the sentinels end up at.
func (d *Driver) RankQuery(exprs []string, a, b string) (int, error) {
	all := append(slices.Clone(exprs), a, b)

	order, err := d.sortIndexes(all)
	if err != nil {
		return 0, err
	}

	rankA := slices.Index(order, len(exprs)) + 1
	rankB := slices.Index(order, len(exprs)+1) + 1

	d.logger.Debug("sentinels ranked", "sentinel", a, "rank", rankA)
	d.logger.Debug("sentinels ranked", "sentinel", b, "rank", rankB)

	return rankA * rankB, nil
}

// RankByPartition computes the same product as RankQuery without sorting:
// the rank of a sentinel is one plus the number of elements placed before
// it, which only takes comparing every expression against both sentinels.
func (d *Driver) RankByPartition(exprs []string, a, b string) (int, error) {
	rankA, rankB := 1, 1

	for _, expr := range exprs {
		o, err := d.compare(expr, a)
		if err != nil {
			return 0, err
		}
		if o != Greater {
			rankA++
		}

		if o, err = d.compare(expr, b); err != nil {
			return 0, err
		}
		if o != Greater {
			rankB++
		}
	}

	// Ties between the sentinels keep a first.
	o, err := d.compare(a, b)
	if err != nil {
		return 0, err
	}
	if o == Greater {
		rankA++
	} else {
		rankB++
	}

	d.logger.Debug("sentinels ranked", "sentinel", a, "rank", rankA)
	d.logger.Debug("sentinels ranked", "sentinel", b, "rank", rankB)

	return rankA * rankB, nil
}

var defaultDriver = NewDriver()

// PairAgreementSum runs Driver.PairAgreementSum with the default driver.
func PairAgreementSum(pairs []Pair) (int, error) {
	return defaultDriver.PairAgreementSum(pairs)
}

// SortExpressions runs Driver.Sort with the default driver.
func SortExpressions(exprs []string) ([]string, error) {
	return defaultDriver.Sort(exprs)
}

// RankQuery runs Driver.RankQuery with the default driver.
func RankQuery(exprs []string, a, b string) (int, error) {
	return defaultDriver.RankQuery(exprs, a, b)
}
