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

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/gencore-tools/gencore/gencore"
	"github.com/shenwei356/util/pathutil"
	"github.com/spf13/cobra"
)

// modeDefaultCC returns the (min-cc, max-cc) pair a mode falls back to when
// the user didn't pass --min-cc/--max-cc explicitly. fq reads carry
// sequencing-error noise, so short- and long-run cores are filtered out by
// default; fa/ld keep every run.
func modeDefaultCC(mode gencore.Mode) (uint32, uint32) {
	if mode == gencore.ModeFQ {
		return 15, 256
	}
	return 0, gencore.MaxCCUnbounded
}

// buildRun reads every persistent flag and list file shared by fa/fq/ld and
// assembles the RunConfig plus one GenomeArgs per input genome.
func buildRun(cmd *cobra.Command, mode gencore.Mode) (gencore.RunConfig, []*gencore.GenomeArgs) {
	threads := getFlagInt(cmd, "threads")
	level := getFlagInt(cmd, "level")
	prefix := getFlagString(cmd, "prefix")
	verbose := getFlagBool(cmd, "verbose")
	vec := getFlagBool(cmd, "vec")

	sigType := gencore.SignatureSet
	if vec {
		sigType = gencore.SignatureVector
	}

	infileList := getFlagString(cmd, "infile-list")
	if infileList == "" {
		checkError(fmt.Errorf("--infile-list/-i is required"))
	}
	inPaths := readListFile(infileList)
	if len(inPaths) == 0 {
		checkError(fmt.Errorf("%s: no input paths", infileList))
	}
	for _, in := range inPaths {
		ok, err := pathutil.Exists(in)
		if err != nil {
			checkError(fmt.Errorf("fail to check input file %s: %w", in, err))
		}
		if !ok {
			checkError(fmt.Errorf("input file does not exist: %s", in))
		}
	}

	outPaths := readListFile(getFlagString(cmd, "outfile-list"))
	checkListLength("--outfile-list", outPaths, len(inPaths))

	shortNames := readListFile(getFlagString(cmd, "shortname-list"))
	checkListLength("--shortname-list", shortNames, len(inPaths))

	minCCs := readUint32ListFile(getFlagString(cmd, "min-cc-file"))
	checkListLength("--min-cc-file", minCCs, len(inPaths))
	maxCCs := readUint32ListFile(getFlagString(cmd, "max-cc-file"))
	checkListLength("--max-cc-file", maxCCs, len(inPaths))

	modeMinCC, modeMaxCC := modeDefaultCC(mode)
	defaultMinCC, defaultMaxCC := modeMinCC, modeMaxCC
	if cmd.Flags().Changed("min-cc") {
		defaultMinCC = getFlagUint32(cmd, "min-cc")
	}
	if cmd.Flags().Changed("max-cc") {
		defaultMaxCC = getFlagUint32(cmd, "max-cc")
	}

	genomes := make([]*gencore.GenomeArgs, len(inPaths))
	for i, in := range inPaths {
		name := atIndexString(shortNames, i, filepath.Base(in))
		g := &gencore.GenomeArgs{
			InPath:    in,
			ShortName: gencore.PadShortName(name),
			MinCC:     atIndexUint32(minCCs, i, defaultMinCC),
			MaxCC:     atIndexUint32(maxCCs, i, defaultMaxCC),
			LCPLevel:  level,
			Mode:      mode,
			Type:      sigType,
			Verbose:   verbose,
		}
		if i < len(outPaths) {
			g.OutPath = outPaths[i]
			g.WriteArchive = true
		}
		genomes[i] = g
	}

	cfg := gencore.RunConfig{
		Mode:            mode,
		ThreadNumber:    threads,
		Prefix:          prefix,
		NumberOfGenomes: len(genomes),
		LCPLevel:        level,
		Verbose:         verbose,
	}
	return cfg, genomes
}
