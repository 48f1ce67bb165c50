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
	"fmt"
	"io"
	"os"
)

// Metric names a distance matrix.
type Metric int

// Supported metrics.
const (
	MetricDice Metric = iota
	MetricJaccard
	MetricJC
)

func (m Metric) String() string {
	switch m {
	case MetricDice:
		return "dice"
	case MetricJaccard:
		return "jaccard"
	case MetricJC:
		return "jc"
	default:
		return "unknown"
	}
}

// MatrixFileName builds the "{prefix}.{set|vec}.{metric}.lvl{NNN}.phy" output
// path for one metric.
func MatrixFileName(prefix string, sigType SignatureType, metric Metric, level int) string {
	return fmt.Sprintf("%s.%s.%s.lvl%03d.phy", prefix, sigType.String(), metric.String(), level)
}

// WriteMatrix writes one PHYLIP-format square (full, symmetric) matrix:
// genome count on line 1, then one row per genome with its 10-character
// short name followed by each column's distance at 15 fractional digits.
func WriteMatrix(w io.Writer, shortNames []string, matrix [][]float64) error {
	n := len(shortNames)
	if _, err := fmt.Fprintf(w, "%d\n", n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprint(w, PadShortName(shortNames[i])); err != nil {
			return err
		}
		for j := 0; j < n; j++ {
			if _, err := fmt.Fprintf(w, " %.15f", matrix[i][j]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteAllMatrices writes the three PHYLIP files for one run under prefix.
func WriteAllMatrices(prefix string, sigType SignatureType, level int, shortNames []string, m PairMatrices) error {
	files := []struct {
		metric Metric
		matrix [][]float64
	}{
		{MetricDice, m.Dice},
		{MetricJaccard, m.Jaccard},
		{MetricJC, m.JC},
	}
	for _, f := range files {
		path := MatrixFileName(prefix, sigType, f.metric, level)
		out, err := os.Create(path)
		if err != nil {
			return err
		}
		err = WriteMatrix(out, shortNames, f.matrix)
		closeErr := out.Close()
		if err != nil {
			return err
		}
		if closeErr != nil {
			return closeErr
		}
	}
	return nil
}
