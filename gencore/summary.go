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
	"github.com/dustin/go-humanize"
	"github.com/shenwei356/stable"
)

// PrintSummary renders one table row per genome (short name, core count,
// total length, elapsed time, and error if any) to the shared logger, when
// -v is set.
func PrintSummary(genomes []*GenomeArgs) {
	style := &stable.TableStyle{
		Name:      "plain",
		HeaderRow: stable.RowStyle{Begin: "", Sep: "  ", End: ""},
		DataRow:   stable.RowStyle{Begin: "", Sep: "  ", End: ""},
		Padding:   "",
	}

	columns := []stable.Column{
		{Header: "genome"},
		{Header: "cores", Align: stable.AlignRight},
		{Header: "total_len", Align: stable.AlignRight},
		{Header: "elapsed", Align: stable.AlignRight},
		{Header: "status", Align: stable.AlignLeft},
	}

	tbl := stable.New()
	tbl.HeaderWithFormat(columns)

	for _, g := range genomes {
		status := "ok"
		if g.Err != nil {
			status = g.Err.Error()
		}
		tbl.AddRow([]interface{}{
			g.ShortName,
			humanize.Comma(int64(g.CoreCount)),
			humanize.Comma(int64(g.TotalLen)),
			g.Elapsed.String(),
			status,
		})
	}

	log.Infof("\n%s", tbl.Render(style))
}
