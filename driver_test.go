package listcmp

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readSample(t *testing.T) ([]Pair, []string) {
	t.Helper()

	data, err := os.ReadFile("testdata/sample.txt")
	require.NoError(t, err)

	pairs, err := ReadPairs(bytes.NewReader(data))
	require.NoError(t, err)

	exprs, err := ReadExpressions(bytes.NewReader(data))
	require.NoError(t, err)

	return pairs, exprs
}

func TestPairAgreementSum(t *testing.T) {
	pairs, _ := readSample(t)
	require.Len(t, pairs, 8)

	sum, err := PairAgreementSum(pairs)
	require.NoError(t, err)
	assert.Equal(t, 13, sum)
}

func TestRankQuery(t *testing.T) {
	_, exprs := readSample(t)
	require.Len(t, exprs, 16)

	product, err := RankQuery(exprs, `[[2]]`, `[[6]]`)
	require.NoError(t, err)
	assert.Equal(t, 140, product)
}

func TestSortExpressions(t *testing.T) {
	_, exprs := readSample(t)

	sorted, err := SortExpressions(append(exprs, `[[2]]`, `[[6]]`))
	require.NoError(t, err)

	assert.Equal(t, []string{
		`[]`,
		`[[]]`,
		`[[[]]]`,
		`[1,1,3,1,1]`,
		`[1,1,5,1,1]`,
		`[[1],[2,3,4]]`,
		`[1,[2,[3,[4,[5,6,0]]]],8,9]`,
		`[1,[2,[3,[4,[5,6,7]]]],8,9]`,
		`[[1],4]`,
		`[[2]]`,
		`[3]`,
		`[[4,4],4,4]`,
		`[[4,4],4,4,4]`,
		`[[6]]`,
		`[7,7,7]`,
		`[7,7,7,7]`,
		`[[8,7,6]]`,
		`[9]`,
	}, sorted)

	// The input is left untouched.
	assert.Equal(t, `[1,1,3,1,1]`, exprs[0])
}

func TestSortIsStable(t *testing.T) {
	exprs := []string{`[[3]]`, `[1]`, `[3]`, `3`, `[[[3]]]`}

	sorted, err := SortExpressions(exprs)
	require.NoError(t, err)
	assert.Equal(t, []string{`[1]`, `[[3]]`, `[3]`, `3`, `[[[3]]]`}, sorted)
}

func TestDriverOptions(t *testing.T) {
	pairs, exprs := readSample(t)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	for _, mode := range []Mode{ModeStream, ModeTree} {
		fn, err := ComparatorFor(mode)
		require.NoError(t, err)

		for _, workers := range []int{1, 3, 16} {
			d := NewDriver(WithComparator(fn), WithWorkers(workers), WithLogger(logger))

			sum, err := d.PairAgreementSum(pairs)
			require.NoError(t, err)
			assert.Equal(t, 13, sum, "mode %s, %d workers", mode, workers)

			product, err := d.RankQuery(exprs, `[[2]]`, `[[6]]`)
			require.NoError(t, err)
			assert.Equal(t, 140, product, "mode %s", mode)

			product, err = d.RankByPartition(exprs, `[[2]]`, `[[6]]`)
			require.NoError(t, err)
			assert.Equal(t, 140, product, "mode %s", mode)
		}
	}

	assert.Contains(t, logs.String(), "sentinels ranked")
	assert.Contains(t, logs.String(), "verdict=less")
}

func TestRankByPartitionMatchesSort(t *testing.T) {
	exprs := []string{`[2]`, `[[2]]`, `[6]`, `[1]`, `[[6],1]`, `[]`, `[[2]]`}

	d := NewDriver()
	sentinels := [][2]string{
		{`[[2]]`, `[[6]]`},
		{`[[6]]`, `[[2]]`},
		{`[2]`, `[[2]]`},
		{`[[2]]`, `[[2]]`},
	}

	for _, s := range sentinels {
		want, err := d.RankQuery(exprs, s[0], s[1])
		require.NoError(t, err)

		got, err := d.RankByPartition(exprs, s[0], s[1])
		require.NoError(t, err)

		assert.Equal(t, want, got, "sentinels %v", s)
	}
}

func TestDriverErrors(t *testing.T) {
	pairs := []Pair{
		{Left: `[1]`, Right: `[2]`},
		{Left: `[1]`, Right: `[,2]`},
	}

	_, err := PairAgreementSum(pairs)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedExpression)

	var perr *PairError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Index)

	_, err = SortExpressions([]string{`[1]`, `[a]`, `[2]`})
	assert.Error(t, err)

	_, err = RankQuery([]string{`[1]`}, `[[2]]`, `[[x]]`)
	assert.Error(t, err)

	_, err = NewDriver().RankByPartition([]string{`[1]`}, `[[2]]`, `[[x]]`)
	assert.Error(t, err)
}

func TestPairErrorIsFirstFailingPair(t *testing.T) {
	pairs := make([]Pair, 0, 40)
	for i := 0; i < 40; i++ {
		pairs = append(pairs, Pair{Left: `[1]`, Right: `[2]`})
	}
	pairs[4] = Pair{Left: `[1]`, Right: `[,2]`}
	pairs[5] = Pair{Left: `[a]`, Right: `[2]`}
	pairs[30] = Pair{Left: `[1]`, Right: `[,2]`}

	for _, workers := range []int{1, 4, 40} {
		d := NewDriver(WithWorkers(workers))

		for i := 0; i < 20; i++ {
			_, err := d.PairAgreementSum(pairs)

			var perr *PairError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, 5, perr.Index, "%d workers", workers)
			assert.ErrorIs(t, err, ErrMalformedExpression)
		}
	}
}
