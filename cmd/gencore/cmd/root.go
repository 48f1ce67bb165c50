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
	"os"

	"github.com/spf13/cobra"
)

// VERSION is the gencore release version.
const VERSION = "0.1.0"

// RootCmd is the base command when gencore is called without a subcommand.
var RootCmd = &cobra.Command{
	Use:   "gencore",
	Short: "LCP-based genome distance toolkit",
	Long: fmt.Sprintf(`gencore - LCP-based genome distance toolkit

Computes pairwise genome similarity and phylogenetic-distance matrices from
Locally Consistent Parsing cores, across FASTA assemblies, gzipped FASTQ read
sets, and previously archived core streams.

Version: %s

`, VERSION),
}

// Execute adds all child commands and runs the selected one.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().IntP("threads", "t", 8, "number of worker threads")
	RootCmd.PersistentFlags().IntP("level", "l", 4, "LCP level")
	RootCmd.PersistentFlags().StringP("prefix", "p", "gc", "matrix-file prefix")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "print verbose information")
	RootCmd.PersistentFlags().StringP("infile-list", "i", "", "list of input file paths, one per line (required)")
	RootCmd.PersistentFlags().StringP("outfile-list", "o", "", "list of output archive paths, one per line (enables archiving)")
	RootCmd.PersistentFlags().StringP("shortname-list", "s", "", "list of 10-char short names, one per line")
	RootCmd.PersistentFlags().Uint32P("min-cc", "", 0, "minimum run length kept (fq uses 15 unless set)")
	RootCmd.PersistentFlags().Uint32P("max-cc", "", gencoreMaxCC, "maximum run length kept (fq uses 256 unless set)")
	RootCmd.PersistentFlags().StringP("min-cc-file", "", "", "per-genome min-cc, one per line (overrides --min-cc)")
	RootCmd.PersistentFlags().StringP("max-cc-file", "", "", "per-genome max-cc, one per line (overrides --max-cc)")
	RootCmd.PersistentFlags().BoolP("set", "", true, "SET signature semantics (default)")
	RootCmd.PersistentFlags().BoolP("vec", "", false, "VECTOR signature semantics")
}

const gencoreMaxCC = 1<<32 - 1
