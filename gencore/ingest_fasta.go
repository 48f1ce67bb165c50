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
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"

	"github.com/gencore-tools/gencore/internal/lps"
)

// IngestFASTA streams g.InPath as FASTA, one lps parse per contig. Each
// contig's cores are appended to the core buffer and, when g.WriteArchive is
// set, the contig's lps is also written to g.OutPath. Finalize runs once at
// the end, populating g.Cores/CoreCount/TotalLen.
func IngestFASTA(g *GenomeArgs) error {
	capacityHint := 0
	if info, err := os.Stat(g.InPath); err == nil {
		capacityHint = EstimateCapacityFA(info.Size(), g.LCPLevel)
	}
	coreBuf := NewCoreBuffer(capacityHint)

	reader, err := fastx.NewDefaultReader(g.InPath)
	if err != nil {
		return errors.Wrap(err, g.InPath)
	}

	var archiveWriter *ArchiveWriter
	if g.WriteArchive {
		out, err := xopen.Wopen(g.OutPath)
		if err != nil {
			return errors.Wrap(err, g.OutPath)
		}
		defer out.Close()
		archiveWriter = NewArchiveWriter(out)
	}

	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return errors.Wrap(err, g.InPath)
		}

		p := lps.New(record.Seq.Seq)
		p.Deepen(g.LCPLevel)

		if archiveWriter != nil {
			if err := archiveWriter.Save(p); err != nil {
				return errors.Wrap(err, g.OutPath)
			}
		}
		for _, c := range p.Cores() {
			coreBuf.Append(NewCore(c.Label, uint32(c.End-c.Start)))
		}
	}

	if archiveWriter != nil {
		if err := archiveWriter.Done(); err != nil {
			return errors.Wrap(err, g.OutPath)
		}
	}

	sig, totalLen := Finalize(coreBuf, g.MinCC, g.MaxCC, g.Type)
	g.Cores = sig
	g.CoreCount = len(sig)
	g.TotalLen = totalLen
	return nil
}
