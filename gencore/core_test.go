package gencore

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorePacking(t *testing.T) {
	c := NewCore(42, 7)
	assert.Equal(t, uint32(42), c.Label())
	assert.Equal(t, uint32(7), c.Length())
}

func TestCoreOrderingIsNumeric(t *testing.T) {
	a := NewCore(1, 0)
	b := NewCore(1, 1)
	c := NewCore(2, 0)
	assert.Less(t, uint64(a), uint64(b))
	assert.Less(t, uint64(b), uint64(c))
}

func TestCoreBufferGrowth(t *testing.T) {
	buf := NewCoreBuffer(2)
	assert.Equal(t, 2, cap(buf))
	for i := 0; i < 10; i++ {
		buf.Append(NewCore(uint32(i), 1))
	}
	assert.Equal(t, 10, len(buf))
}

func TestCoreSliceSortsAscending(t *testing.T) {
	buf := CoreBuffer{NewCore(3, 0), NewCore(1, 0), NewCore(2, 0)}
	sort.Sort(coreSlice(buf))
	assert.True(t, sort.IsSorted(coreSlice(buf)))
	assert.Equal(t, uint32(1), buf[0].Label())
	assert.Equal(t, uint32(3), buf[2].Label())
}

func TestEstimateCapacityFA(t *testing.T) {
	assert.Equal(t, 0, EstimateCapacityFA(0, 4))
	assert.Greater(t, EstimateCapacityFA(1_000_000, 1), 0)
}

func TestEstimateCapacityFQ(t *testing.T) {
	plain := EstimateCapacityFQ(1_000_000, 4, false)
	gz := EstimateCapacityFQ(1_000_000, 4, true)
	assert.Greater(t, gz, plain)
}
