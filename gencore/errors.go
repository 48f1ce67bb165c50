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

import "errors"

// ErrNoTerminator means an archive stream ended without its terminator record.
var ErrNoTerminator = errors.New("gencore: archive stream ended without a terminator record")

// ErrInvalidArchive means an archive flag byte was neither continue nor done.
var ErrInvalidArchive = errors.New("gencore: invalid archive flag byte")

// ErrShortNameCount means the short-name list length didn't match the genome count.
var ErrShortNameCount = errors.New("gencore: short-name list length does not match genome count")

// ErrCCFileCount means a min-cc/max-cc file's line count didn't match the genome count.
var ErrCCFileCount = errors.New("gencore: min-cc/max-cc file length does not match genome count")

// ErrBAMNotWired means BAM mode was selected but is not implemented.
var ErrBAMNotWired = errors.New("gencore: bam mode is not wired into the pipeline yet")

// ErrEmptyInputList means -i resolved to zero input files.
var ErrEmptyInputList = errors.New("gencore: input file list is empty")
