package gencore

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gencore-tools/gencore/internal/lps"
)

func TestArchiveRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewArchiveWriter(&buf)

	p1 := lps.New([]byte("ACGTACGTTGCAACGTACGTTGCAACGTACGTTGCA"))
	p1.Deepen(2)
	p2 := lps.New([]byte("TTTTGGGGCCCCAAAATTTTGGGGCCCCAAAA"))
	p2.Deepen(2)

	require.NoError(t, w.Save(p1))
	require.NoError(t, w.Save(p2))
	require.NoError(t, w.Done())

	r := NewArchiveReader(&buf)

	got1, done, err := r.Next()
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, p1.Cores(), got1.Cores())

	got2, done, err := r.Next()
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, p2.Cores(), got2.Cores())

	_, done, err = r.Next()
	require.NoError(t, err)
	assert.True(t, done)
}

func TestArchiveMissingTerminatorIsInvariantViolation(t *testing.T) {
	var buf bytes.Buffer
	w := NewArchiveWriter(&buf)
	p := lps.New([]byte("ACGTACGT"))
	p.Deepen(1)
	require.NoError(t, w.Save(p))

	r := NewArchiveReader(&buf)
	_, _, err := r.Next()
	require.NoError(t, err)

	_, _, err = r.Next()
	assert.ErrorIs(t, err, ErrNoTerminator)
}

func TestArchiveInvalidFlag(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(7)
	r := NewArchiveReader(&buf)
	_, _, err := r.Next()
	assert.ErrorIs(t, err, ErrInvalidArchive)
}
