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
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shenwei356/breader"
	"github.com/spf13/cobra"
)

// checkError logs err and exits the process. Every fatal CLI-level error
// flows through here so a run either finishes or dies with one clear line.
func checkError(err error) {
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func getFlagInt(cmd *cobra.Command, flag string) int {
	v, err := cmd.Flags().GetInt(flag)
	checkError(errors.Wrap(err, flag))
	return v
}

func getFlagUint32(cmd *cobra.Command, flag string) uint32 {
	v, err := cmd.Flags().GetUint32(flag)
	checkError(errors.Wrap(err, flag))
	return v
}

func getFlagString(cmd *cobra.Command, flag string) string {
	v, err := cmd.Flags().GetString(flag)
	checkError(errors.Wrap(err, flag))
	return v
}

func getFlagBool(cmd *cobra.Command, flag string) bool {
	v, err := cmd.Flags().GetBool(flag)
	checkError(errors.Wrap(err, flag))
	return v
}

// readListFile reads a line-oriented list file (one entry per line, blank
// lines skipped) the same way unikmer reads its -i/-s list files.
func readListFile(file string) []string {
	if file == "" {
		return nil
	}
	var list []string
	reader, err := breader.NewDefaultBufferedReader(file)
	checkError(errors.Wrap(err, file))
	for chunk := range reader.Ch {
		checkError(chunk.Err)
		for _, data := range chunk.Data {
			line := strings.TrimSpace(data.(string))
			if line == "" {
				continue
			}
			list = append(list, line)
		}
	}
	return list
}

// readUint32ListFile reads a list file of unsigned decimal integers, used
// for --min-cc-file/--max-cc-file per-genome overrides.
func readUint32ListFile(file string) []uint32 {
	if file == "" {
		return nil
	}
	var list []uint32
	reader, err := breader.NewDefaultBufferedReader(file)
	checkError(errors.Wrap(err, file))
	for chunk := range reader.Ch {
		checkError(chunk.Err)
		for _, data := range chunk.Data {
			line := strings.TrimSpace(data.(string))
			if line == "" {
				continue
			}
			n, err := strconv.ParseUint(line, 10, 32)
			checkError(errors.Wrapf(err, "invalid integer in %s: %s", file, line))
			list = append(list, uint32(n))
		}
	}
	return list
}

// atIndexString returns list[i], or def when list has no entry at i (a missing
// per-genome override falls back to the run-wide default).
func atIndexString(list []string, i int, def string) string {
	if i < len(list) {
		return list[i]
	}
	return def
}

func atIndexUint32(list []uint32, i int, def uint32) uint32 {
	if i < len(list) {
		return list[i]
	}
	return def
}

// checkListLength fails fast when a supplied list file doesn't have exactly
// one entry per input genome.
func checkListLength(what string, list []string, n int) {
	if list != nil && len(list) != n {
		checkError(fmt.Errorf("%s has %d entries, expected %d", what, len(list), n))
	}
}
