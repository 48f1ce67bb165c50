// Copyright © 2018-2020 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package gencore

import (
	"math"
	"time"
)

// MagicFA is the FASTA core-buffer capacity-estimate divisor.
const MagicFA = 2.20

// MagicFQ is the FASTQ core-buffer capacity-estimate divisor.
const MagicFQ = 2.00

// ShortNameWidth is the fixed width of a genome's PHYLIP row/column label.
const ShortNameWidth = 10

// Mode is a tagged dispatch variant, not a polymorphic ingester hierarchy.
type Mode int

// Supported run modes.
const (
	ModeFA Mode = iota
	ModeFQ
	ModeLoad
	ModeBAM
)

func (m Mode) String() string {
	switch m {
	case ModeFA:
		return "fa"
	case ModeFQ:
		return "fq"
	case ModeLoad:
		return "ld"
	case ModeBAM:
		return "bam"
	default:
		return "unknown"
	}
}

// SignatureType selects SET (distinct cores) or VECTOR (multiset) semantics.
type SignatureType int

// Signature semantics.
const (
	SignatureSet SignatureType = iota
	SignatureVector
)

func (t SignatureType) String() string {
	if t == SignatureVector {
		return "vec"
	}
	return "set"
}

// RunConfig is process-wide configuration, immutable after argument parsing.
type RunConfig struct {
	Mode            Mode
	ThreadNumber    int
	Prefix          string
	NumberOfGenomes int
	LCPLevel        int
	Verbose         bool
}

// GenomeArgs is a per-genome descriptor. It is created during argument
// parsing, populated exclusively by its assigned worker, then read-only for
// the distance engine once the pool has joined.
type GenomeArgs struct {
	InPath       string
	OutPath      string
	ShortName    string
	MinCC        uint32
	MaxCC        uint32
	LCPLevel     int
	Mode         Mode
	Type         SignatureType
	WriteArchive bool
	Verbose      bool

	Cores     CoreBuffer
	CoreCount int
	TotalLen  uint64
	Elapsed   time.Duration
	Err       error
}

// PadShortName truncates or space-pads s to exactly ShortNameWidth bytes.
func PadShortName(s string) string {
	if len(s) >= ShortNameWidth {
		return s[:ShortNameWidth]
	}
	buf := make([]byte, ShortNameWidth)
	copy(buf, s)
	for i := len(s); i < ShortNameWidth; i++ {
		buf[i] = ' '
	}
	return string(buf)
}

// MaxCCUnbounded is the default, effectively-unbounded max-cc value.
const MaxCCUnbounded = math.MaxUint32
