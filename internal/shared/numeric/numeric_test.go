package numeric

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestDescNullsLast(t *testing.T) {
	t.Parallel()

	vals := []*float64{nil, f64(2), f64(10), nil, f64(5)}
	sort.SliceStable(vals, func(i, j int) bool { return DescNullsLast(vals[i], vals[j]) })

	require.Len(t, vals, 5)
	assert.Equal(t, 10.0, *vals[0])
	assert.Equal(t, 5.0, *vals[1])
	assert.Equal(t, 2.0, *vals[2])
	assert.Nil(t, vals[3])
	assert.Nil(t, vals[4])
}

func TestAscNullsLast(t *testing.T) {
	t.Parallel()

	vals := []*float64{f64(10), nil, f64(2)}
	sort.SliceStable(vals, func(i, j int) bool { return AscNullsLast(vals[i], vals[j]) })

	assert.Equal(t, 2.0, *vals[0])
	assert.Equal(t, 10.0, *vals[1])
	assert.Nil(t, vals[2])
}

func TestSum(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Sum(nil))
	assert.Nil(t, Sum([]*float64{nil, nil}))

	got := Sum([]*float64{f64(1.5), nil, f64(2.5)})
	require.NotNil(t, got)
	assert.Equal(t, 4.0, *got)
}

func TestMean(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Mean([]*float64{nil}))

	got := Mean([]*float64{f64(1), nil, f64(3)})
	require.NotNil(t, got)
	assert.Equal(t, 2.0, *got, "missing values are ignored, not counted as zero")
}
