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

import "math"

// Core packs an LCP label (upper 32 bits) and a source-substring length
// (lower 32 bits) into one comparable uint64. Ordering and equality are
// numeric over the whole value.
type Core uint64

// NewCore packs a label and length into a Core.
func NewCore(label, length uint32) Core {
	return Core(uint64(label)<<32 | uint64(length))
}

// Label returns the LCP label.
func (c Core) Label() uint32 {
	return uint32(c >> 32)
}

// Length returns the source substring length.
func (c Core) Length() uint32 {
	return uint32(c)
}

// CoreBuffer is a genome's growable, append-only core array. Finalize does
// not modify it; it returns a sorted, filtered copy.
type CoreBuffer []Core

// NewCoreBuffer allocates a buffer with the given capacity hint.
func NewCoreBuffer(capacityHint int) CoreBuffer {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return make(CoreBuffer, 0, capacityHint)
}

// Append adds c to the buffer, growing the backing array by 1.5x when full.
func (b *CoreBuffer) Append(c Core) {
	if len(*b) == cap(*b) {
		newCap := int(float64(cap(*b))*1.5) + 1
		grown := make(CoreBuffer, len(*b), newCap)
		copy(grown, *b)
		*b = grown
	}
	*b = append(*b, c)
}

// coreSlice adapts CoreBuffer to sort.Interface for the rare case callers
// need a stable, dependency-free sort (Finalize itself uses sortutil).
type coreSlice CoreBuffer

func (s coreSlice) Len() int           { return len(s) }
func (s coreSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s coreSlice) Less(i, j int) bool { return s[i] < s[j] }

// EstimateCapacityFA computes the initial core-buffer capacity for a FASTA
// input of the given file size, per the MAGIC_FA formula.
func EstimateCapacityFA(fileSize int64, level int) int {
	if fileSize <= 0 {
		return 0
	}
	return int(float64(fileSize) / math.Pow(MagicFA, float64(level)))
}

// EstimateCapacityFQ computes the initial core-buffer capacity for a FASTQ
// input, per the MAGIC_FQ formula. gzipped inputs are assumed to inflate 4x.
func EstimateCapacityFQ(size int64, level int, gzipped bool) int {
	if size <= 0 {
		return 0
	}
	uncompressed := size
	if gzipped {
		uncompressed *= 4
	}
	return int(float64(uncompressed/2) / math.Pow(MagicFQ, float64(level)))
}
