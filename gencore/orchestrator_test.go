package gencore

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenomeFixture(t *testing.T, name, content, shortName string) *GenomeArgs {
	t.Helper()
	path := writeTempFile(t, name, content)
	return &GenomeArgs{
		InPath:    path,
		ShortName: PadShortName(shortName),
		MaxCC:     math.MaxUint32,
		LCPLevel:  1,
		Mode:      ModeFA,
		Type:      SignatureSet,
	}
}

func TestRunThreeGenomesMatrixSymmetry(t *testing.T) {
	g1 := newGenomeFixture(t, "g1.fa", ">c\nAAAACCCCGGGGTTTTAAAACCCCGGGGTTTT\n", "g1")
	g2 := newGenomeFixture(t, "g2.fa", ">c\nAAAACCCCGGGGTTTTAAAACCCCGGGGTTTT\n", "g2")
	g3 := newGenomeFixture(t, "g3.fa", ">c\nTTTTAAAACCCCGGGGTTTTAAAACCCCGGGG\n", "g3")

	dir := t.TempDir()
	cfg := RunConfig{Mode: ModeFA, ThreadNumber: 4, Prefix: filepath.Join(dir, "gc"), LCPLevel: 1}

	require.NoError(t, Run(cfg, []*GenomeArgs{g1, g2, g3}))

	data, err := os.ReadFile(MatrixFileName(cfg.Prefix, SignatureSet, MetricJaccard, cfg.LCPLevel))
	require.NoError(t, err)
	assert.Contains(t, string(data), "3\n")

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 4)
	rows := make([][]string, 3)
	for i := range rows {
		rows[i] = strings.Fields(lines[i+1][ShortNameWidth:])
		require.Len(t, rows[i], 3)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, rows[i][j], rows[j][i])
		}
	}
}

func TestRunDeterministicAcrossThreadCounts(t *testing.T) {
	fixture := func(dir string) []*GenomeArgs {
		return []*GenomeArgs{
			{InPath: writeFixtureIn(t, dir, "a.fa", ">c\nAAAACCCCGGGGTTTT\n"), ShortName: PadShortName("a"), MaxCC: math.MaxUint32, LCPLevel: 1, Mode: ModeFA, Type: SignatureSet},
			{InPath: writeFixtureIn(t, dir, "b.fa", ">c\nTTTTGGGGCCCCAAAA\n"), ShortName: PadShortName("b"), MaxCC: math.MaxUint32, LCPLevel: 1, Mode: ModeFA, Type: SignatureSet},
		}
	}

	dir1, dir2 := t.TempDir(), t.TempDir()
	cfg1 := RunConfig{Mode: ModeFA, ThreadNumber: 1, Prefix: filepath.Join(dir1, "gc"), LCPLevel: 1}
	cfg2 := RunConfig{Mode: ModeFA, ThreadNumber: 8, Prefix: filepath.Join(dir2, "gc"), LCPLevel: 1}

	require.NoError(t, Run(cfg1, fixture(dir1)))
	require.NoError(t, Run(cfg2, fixture(dir2)))

	for _, m := range []Metric{MetricDice, MetricJaccard, MetricJC} {
		data1, err := os.ReadFile(MatrixFileName(cfg1.Prefix, SignatureSet, m, 1))
		require.NoError(t, err)
		data2, err := os.ReadFile(MatrixFileName(cfg2.Prefix, SignatureSet, m, 1))
		require.NoError(t, err)
		assert.Equal(t, data1, data2)
	}
}

func TestRunPerGenomeFailureIsIsolated(t *testing.T) {
	good := newGenomeFixture(t, "good.fa", ">c\nACGTACGTTGCAACGTACGTTGCAACGTACGTTGCA\n", "good")
	bad := &GenomeArgs{InPath: "/no/such/file.fa", ShortName: PadShortName("bad"), MaxCC: math.MaxUint32, LCPLevel: 1, Mode: ModeFA, Type: SignatureSet}

	cfg := RunConfig{Mode: ModeFA, ThreadNumber: 2, Prefix: filepath.Join(t.TempDir(), "gc"), LCPLevel: 1}
	require.NoError(t, Run(cfg, []*GenomeArgs{good, bad}))

	assert.Error(t, bad.Err)
	assert.Equal(t, 0, bad.CoreCount)
	assert.NoError(t, good.Err)
}

func TestRunEmptyGenomeListIsFatal(t *testing.T) {
	cfg := RunConfig{Mode: ModeFA, ThreadNumber: 2, Prefix: filepath.Join(t.TempDir(), "gc"), LCPLevel: 1}
	err := Run(cfg, nil)
	assert.ErrorIs(t, err, ErrEmptyInputList)
}

func writeFixtureIn(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
