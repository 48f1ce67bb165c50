package lps

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeepenIsIdempotent(t *testing.T) {
	p := New([]byte("ACGTACGTTGCAACGTACGTTGCAACGTACGTTGCA"))
	p.Deepen(1)
	first := append([]Core(nil), p.Cores()...)
	p.Deepen(1)
	assert.Equal(t, first, p.Cores())
	p.Deepen(0)
	assert.Equal(t, first, p.Cores())
}

func TestDeepenCoversWholeSequence(t *testing.T) {
	seq := []byte("ACGTACGTTGCAACGTACGTTGCAACGTACGTTGCAACGT")
	p := New(seq)
	p.Deepen(1)
	cores := p.Cores()
	require.NotEmpty(t, cores)
	assert.Equal(t, 0, cores[0].Start)
	assert.Equal(t, len(seq), cores[len(cores)-1].End)
	for i := 1; i < len(cores); i++ {
		assert.Equal(t, cores[i-1].End, cores[i].Start)
	}
}

func TestDeepenCoarsens(t *testing.T) {
	seq := bytes.Repeat([]byte("ACGTTGCAACGT"), 8)
	p := New(seq)
	p.Deepen(1)
	n1 := len(p.Cores())
	p.Deepen(2)
	n2 := len(p.Cores())
	assert.LessOrEqual(t, n2, n1)
}

func TestNewRCReversesAndComplements(t *testing.T) {
	p := NewRC([]byte("ACGT"))
	assert.Equal(t, []byte("ACGT"), p.seq)
}

func TestWriteReadRoundTrip(t *testing.T) {
	p := New([]byte("ACGTACGTTGCAACGTACGTTGCAACGTACGTTGCAACGT"))
	p.Deepen(1)

	var buf bytes.Buffer
	require.NoError(t, p.Write(&buf))

	loaded, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, p.Level(), loaded.Level())
	assert.Equal(t, p.Cores(), loaded.Cores())
}

func TestReadParserCanDeepenFurther(t *testing.T) {
	seq := bytes.Repeat([]byte("ACGTTGCAACGT"), 8)
	p := New(seq)
	p.Deepen(1)

	var buf bytes.Buffer
	require.NoError(t, p.Write(&buf))
	loaded, err := Read(&buf)
	require.NoError(t, err)

	loaded.Deepen(2)
	assert.Equal(t, 2, loaded.Level())
	assert.LessOrEqual(t, len(loaded.Cores()), len(p.Cores()))
}

func TestEmptySequenceProducesNoCores(t *testing.T) {
	p := New(nil)
	p.Deepen(1)
	assert.Empty(t, p.Cores())
}
