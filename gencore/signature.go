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

	"github.com/twotwotwo/sorts/sortutil"
)

// Finalize sorts buf ascending, applies the [minCC,maxCC] run-length filter,
// and collapses runs to a single copy in SET mode. It returns the compacted
// signature and the summed length of its distinct retained values.
//
// Filtering happens before deduplication: a kept run in VECTOR mode retains
// every original copy, not just one.
func Finalize(buf CoreBuffer, minCC, maxCC uint32, sigType SignatureType) (CoreBuffer, uint64) {
	if len(buf) == 0 {
		return CoreBuffer{}, 0
	}

	raw := make([]uint64, len(buf))
	for i, c := range buf {
		raw[i] = uint64(c)
	}
	sortutil.Uint64s(raw)

	if sigType == SignatureVector && minCC <= 1 && maxCC == math.MaxUint32 {
		out := make(CoreBuffer, len(raw))
		var totalLen uint64
		for i, v := range raw {
			out[i] = Core(v)
			if i == 0 || v != raw[i-1] {
				totalLen += uint64(Core(v).Length())
			}
		}
		return out, totalLen
	}

	out := make(CoreBuffer, 0, len(raw))
	var totalLen uint64
	i := 0
	for i < len(raw) {
		j := i + 1
		for j < len(raw) && raw[j] == raw[i] {
			j++
		}
		runLen := uint32(j - i)
		if runLen >= minCC && runLen <= maxCC {
			c := Core(raw[i])
			totalLen += uint64(c.Length())
			if sigType == SignatureSet {
				out = append(out, c)
			} else {
				for k := i; k < j; k++ {
					out = append(out, Core(raw[k]))
				}
			}
		}
		i = j
	}
	return out, totalLen
}
