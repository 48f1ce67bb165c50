package gencore

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMatrixFormat(t *testing.T) {
	names := []string{"genomeA", "genomeB"}
	m := [][]float64{
		{0, 0.5},
		{0.5, 0},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteMatrix(&buf, names, m))

	sc := bufio.NewScanner(&buf)
	require.True(t, sc.Scan())
	assert.Equal(t, "2", sc.Text())

	require.True(t, sc.Scan())
	line := sc.Text()
	assert.Equal(t, PadShortName("genomeA"), line[:ShortNameWidth])
	fields := strings.Fields(line[ShortNameWidth:])
	require.Len(t, fields, 2)
	for _, f := range fields {
		dot := strings.Index(f, ".")
		require.GreaterOrEqual(t, dot, 0)
		assert.Len(t, f[dot+1:], 15)
	}

	remaining := 0
	for sc.Scan() {
		remaining++
	}
	assert.Equal(t, 1, remaining)
}

func TestMatrixFileName(t *testing.T) {
	name := MatrixFileName("gc", SignatureSet, MetricJaccard, 4)
	assert.Equal(t, "gc.set.jaccard.lvl004.phy", name)
}
