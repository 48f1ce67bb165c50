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

import "time"

// Run dispatches every genome to the worker pool by cfg.Mode, waits for the
// pool to join, then computes and writes the three distance matrices. A
// per-genome failure is logged and yields an empty signature for that
// genome; the run continues and still produces matrices.
func Run(cfg RunConfig, genomes []*GenomeArgs) error {
	if len(genomes) == 0 {
		return ErrEmptyInputList
	}

	workers := WorkerCount(cfg.ThreadNumber, len(genomes))
	pool := NewPool(workers)

	for _, g := range genomes {
		g := g
		pool.Submit(func() {
			start := time.Now()
			err := ingestOne(cfg.Mode, g)
			g.Elapsed = time.Since(start)
			if err != nil {
				g.Err = err
				log.Errorf("%s: %v", g.InPath, err)
				g.Cores = CoreBuffer{}
				g.CoreCount = 0
				g.TotalLen = 0
			}
		})
	}
	pool.Wait()

	if cfg.Verbose {
		PrintSummary(genomes)
	}

	sigType := SignatureSet
	if len(genomes) > 0 {
		sigType = genomes[0].Type
	}

	matrices := ComputeAllDistances(genomes, sigType, workers)

	shortNames := make([]string, len(genomes))
	for i, g := range genomes {
		shortNames[i] = g.ShortName
	}

	return WriteAllMatrices(cfg.Prefix, sigType, cfg.LCPLevel, shortNames, matrices)
}

func ingestOne(mode Mode, g *GenomeArgs) error {
	switch mode {
	case ModeFA:
		return IngestFASTA(g)
	case ModeFQ:
		return IngestFASTQ(g)
	case ModeLoad:
		return IngestLoad(g)
	default:
		return ErrBAMNotWired
	}
}
