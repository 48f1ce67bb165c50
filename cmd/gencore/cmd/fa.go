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
	"github.com/gencore-tools/gencore/gencore"
	"github.com/spf13/cobra"
)

var faCmd = &cobra.Command{
	Use:   "fa",
	Short: "compute distance matrices from FASTA genome assemblies",
	Long: `fa computes LCP cores for one FASTA assembly per input file, then
writes the pairwise Jaccard/Dice/Jukes-Cantor distance matrices.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, genomes := buildRun(cmd, gencore.ModeFA)
		checkError(gencore.Run(cfg, genomes))
	},
}

func init() {
	RootCmd.AddCommand(faCmd)
}
