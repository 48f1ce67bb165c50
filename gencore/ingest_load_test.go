package gencore

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveRoundTripMatchesDirectRun(t *testing.T) {
	inPath := writeTempFile(t, "genome.fa", ">contig1\nACGTACGTTGCAACGTACGTTGCAACGTACGTTGCAACGT\n>contig2\nTTTTGGGGCCCCAAAATTTTGGGGCCCCAAAA\n")
	archivePath := filepath.Join(t.TempDir(), "genome.arc")

	direct := &GenomeArgs{
		InPath:   inPath,
		MaxCC:    math.MaxUint32,
		LCPLevel: 4,
		Type:     SignatureSet,
	}
	require.NoError(t, IngestFASTA(direct))

	archived := &GenomeArgs{
		InPath:       inPath,
		OutPath:      archivePath,
		WriteArchive: true,
		MaxCC:        math.MaxUint32,
		LCPLevel:     4,
		Type:         SignatureSet,
	}
	require.NoError(t, IngestFASTA(archived))

	loaded := &GenomeArgs{
		InPath:   archivePath,
		MaxCC:    math.MaxUint32,
		LCPLevel: 4,
		Type:     SignatureSet,
	}
	require.NoError(t, IngestLoad(loaded))

	assert.Equal(t, direct.Cores, loaded.Cores)
	assert.Equal(t, direct.TotalLen, loaded.TotalLen)
}

func TestIngestLoadMissingTerminatorIsFatal(t *testing.T) {
	archivePath := filepath.Join(t.TempDir(), "broken.arc")
	require.NoError(t, os.WriteFile(archivePath, []byte{0}, 0o644))

	g := &GenomeArgs{InPath: archivePath, MaxCC: math.MaxUint32, LCPLevel: 1, Type: SignatureSet}
	err := IngestLoad(g)
	assert.Error(t, err)
}
