package gencore

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runLenBuffer(values []uint32, runLengths []int) CoreBuffer {
	var buf CoreBuffer
	for i, v := range values {
		for k := 0; k < runLengths[i]; k++ {
			buf = append(buf, NewCore(v, 1))
		}
	}
	return buf
}

func TestFinalizeSortInvariant(t *testing.T) {
	buf := CoreBuffer{NewCore(3, 1), NewCore(1, 1), NewCore(2, 1), NewCore(1, 1)}
	sig, _ := Finalize(buf, 0, math.MaxUint32, SignatureVector)
	for i := 1; i < len(sig); i++ {
		assert.LessOrEqual(t, sig[i-1], sig[i])
	}
}

func TestFinalizeSetModeUniqueness(t *testing.T) {
	buf := runLenBuffer([]uint32{1, 2, 3}, []int{3, 1, 2})
	sig, _ := Finalize(buf, 0, math.MaxUint32, SignatureSet)
	for i := 1; i < len(sig); i++ {
		assert.Less(t, sig[i-1], sig[i])
	}
}

func TestFinalizeFilterCorrectness(t *testing.T) {
	buf := runLenBuffer([]uint32{1, 2, 3, 4}, []int{3, 5, 7, 9})

	setSig, _ := Finalize(buf, 5, 7, SignatureSet)
	assert.Equal(t, 2, len(setSig))
	assert.Equal(t, uint32(2), setSig[0].Label())
	assert.Equal(t, uint32(3), setSig[1].Label())

	vecSig, _ := Finalize(buf, 5, 7, SignatureVector)
	assert.Equal(t, 12, len(vecSig))
}

func TestFinalizeEmptyInput(t *testing.T) {
	sig, totalLen := Finalize(nil, 0, math.MaxUint32, SignatureSet)
	assert.Empty(t, sig)
	assert.Equal(t, uint64(0), totalLen)
}

func TestFinalizeSingleValueOutsideBound(t *testing.T) {
	buf := runLenBuffer([]uint32{1}, []int{2})
	sig, totalLen := Finalize(buf, 5, 10, SignatureSet)
	assert.Empty(t, sig)
	assert.Equal(t, uint64(0), totalLen)
}

func TestFinalizeTotalLenSumsDistinctOnly(t *testing.T) {
	buf := CoreBuffer{NewCore(1, 4), NewCore(1, 4), NewCore(1, 4), NewCore(2, 9)}
	_, totalLen := Finalize(buf, 0, math.MaxUint32, SignatureVector)
	assert.Equal(t, uint64(13), totalLen)
}
