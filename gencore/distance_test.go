package gencore

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func buf(vals ...uint32) CoreBuffer {
	b := make(CoreBuffer, len(vals))
	for i, v := range vals {
		b[i] = NewCore(v, 1)
	}
	return b
}

func TestMergeWalkVectorMode(t *testing.T) {
	a := buf(1, 1, 2)
	b := buf(1, 2, 2, 3)
	intersection, union := MergeWalk(a, b, SignatureVector)
	assert.Equal(t, 2, intersection)
	assert.Equal(t, 5, union)
}

func TestMergeWalkSetMode(t *testing.T) {
	a := buf(1, 1, 2)
	b := buf(1, 2, 2, 3)
	intersection, union := MergeWalk(a, b, SignatureSet)
	assert.Equal(t, 2, intersection)
	assert.Equal(t, 3, union)
}

func TestDistancesBoundsWhenNonEmpty(t *testing.T) {
	d := Distances(2, 5, 3, 4, 10, 12)
	assert.GreaterOrEqual(t, d.Jaccard, 0.0)
	assert.LessOrEqual(t, d.Jaccard, 1.0)
	assert.GreaterOrEqual(t, d.Dice, 0.0)
	assert.LessOrEqual(t, d.Dice, 1.0)
}

func TestDistancesReflexivity(t *testing.T) {
	d := Distances(3, 3, 3, 3, 9, 9)
	assert.Equal(t, 0.0, d.Jaccard)
	assert.Equal(t, 0.0, d.Dice)
}

func TestDistancesNaNOnEmptyBoth(t *testing.T) {
	d := Distances(0, 0, 0, 0, 0, 0)
	assert.True(t, math.IsNaN(d.Jaccard))
	assert.True(t, math.IsNaN(d.Dice))
	assert.True(t, math.IsNaN(d.Hamming))
	assert.True(t, math.IsNaN(d.JC))
}

func TestDistancesNeverPanics(t *testing.T) {
	assert.NotPanics(t, func() {
		Distances(0, 0, 5, 0, 0, 0)
		Distances(5, 5, 5, 5, 0, 0)
	})
}

func TestComputeAllDistancesSymmetryAndZeroDiagonal(t *testing.T) {
	g1 := &GenomeArgs{Cores: buf(1, 2, 3), CoreCount: 3, TotalLen: 9}
	g2 := &GenomeArgs{Cores: buf(1, 2, 3), CoreCount: 3, TotalLen: 9}
	g3 := &GenomeArgs{Cores: buf(4, 5, 6), CoreCount: 3, TotalLen: 9}
	genomes := []*GenomeArgs{g1, g2, g3}

	m := ComputeAllDistances(genomes, SignatureSet, 2)
	assert.Equal(t, m.Jaccard[0][1], m.Jaccard[1][0])
	assert.Equal(t, 0.0, m.Jaccard[0][1])
	assert.Equal(t, m.Jaccard[0][2], m.Jaccard[1][2])
}
