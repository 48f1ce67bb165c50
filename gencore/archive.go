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
	"encoding/binary"
	"io"

	"github.com/gencore-tools/gencore/internal/lps"
)

// archiveFlag is the archive's continuation marker. Fixed at 8 bits: sibling
// formats in the original repo used three different widths for this same
// flag; this one never widens.
type archiveFlag uint8

const (
	flagContinue archiveFlag = 0
	flagDone     archiveFlag = 1
)

var archiveByteOrder = binary.LittleEndian

// ArchiveWriter appends lps records to an archive, terminated by Done.
type ArchiveWriter struct {
	w io.Writer
}

// NewArchiveWriter wraps w for archive writing.
func NewArchiveWriter(w io.Writer) *ArchiveWriter {
	return &ArchiveWriter{w: w}
}

// Save writes one continuation record: flag, then p's own binary form.
func (aw *ArchiveWriter) Save(p *lps.Parser) error {
	if err := binary.Write(aw.w, archiveByteOrder, flagContinue); err != nil {
		return err
	}
	return p.Write(aw.w)
}

// Done writes the terminator record. On compute runs this is the final write.
func (aw *ArchiveWriter) Done() error {
	return binary.Write(aw.w, archiveByteOrder, flagDone)
}

// ArchiveReader reads lps records back out of an archive written by
// ArchiveWriter.
type ArchiveReader struct {
	r io.Reader
}

// NewArchiveReader wraps r for archive reading.
func NewArchiveReader(r io.Reader) *ArchiveReader {
	return &ArchiveReader{r: r}
}

// Next reads one record. It returns (parser, false, nil) on a continuation
// record, (nil, true, nil) on the terminator, and a non-nil error if the
// stream is malformed or ends without a terminator.
func (ar *ArchiveReader) Next() (*lps.Parser, bool, error) {
	var flag archiveFlag
	if err := binary.Read(ar.r, archiveByteOrder, &flag); err != nil {
		if err == io.EOF {
			return nil, false, ErrNoTerminator
		}
		return nil, false, err
	}
	switch flag {
	case flagDone:
		return nil, true, nil
	case flagContinue:
		p, err := lps.Read(ar.r)
		if err != nil {
			return nil, false, err
		}
		return p, false, nil
	default:
		return nil, false, ErrInvalidArchive
	}
}
