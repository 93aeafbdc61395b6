package runs_test

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/panda-re/ord-by-set/internal/runs"
	"github.com/stretchr/testify/assert"
)

func order(a, b int) int {
	return cmp.Compare(a, b)
}

func refBounds(s []int, key int) (lo, hi int) {
	lo = len(s)
	for i, v := range s {
		if v >= key {
			lo = i
			break
		}
	}
	hi = len(s)
	for i, v := range s {
		if v > key {
			hi = i
			break
		}
	}
	return
}

func Test_Bounds(t *testing.T) {
	s := []int{1, 2, 3, 3, 3, 4}

	assert.Equal(t, 2, runs.LowerBound(s, 3, order))
	assert.Equal(t, 5, runs.UpperBound(s, 3, order))
	assert.Equal(t, 0, runs.LowerBound(s, 0, order))
	assert.Equal(t, 0, runs.UpperBound(s, 0, order))
	assert.Equal(t, len(s), runs.LowerBound(s, 5, order))
	assert.Equal(t, len(s), runs.UpperBound(s, 5, order))
}

func Test_Empty(t *testing.T) {
	lo, hi := runs.Locate(nil, 42, order)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 0, hi)
}

func Test_Random(t *testing.T) {
	const (
		n    = 1000
		maxV = 50
	)

	s := make([]int, n)
	for i := range s {
		s[i] = rand.IntN(maxV)
	}
	slices.Sort(s)

	for key := -1; key <= maxV; key++ {
		refLo, refHi := refBounds(s, key)
		lo, hi := runs.Locate(s, key, order)
		assert.Equal(t, refLo, lo)
		assert.Equal(t, refHi, hi)
		assert.Equal(t, refLo, runs.LowerBound(s, key, order))
		assert.Equal(t, refHi, runs.UpperBound(s, key, order))
	}
}

func Test_WeakOrder(t *testing.T) {
	byLen := func(a, b string) int {
		return cmp.Compare(len(a), len(b))
	}

	s := []string{"a", "z", "bb", "yy", "xx", "ccc"}
	lo, hi := runs.Locate(s, "??", byLen)
	assert.Equal(t, 2, lo)
	assert.Equal(t, 5, hi)
}
