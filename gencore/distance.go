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

import "math"

// MergeWalk walks two sorted signatures with two cursors and returns the
// intersection and union sizes. In SET mode, equal-value runs collapse to a
// single contribution on both sides of every branch. In VECTOR mode every
// occurrence counts, including the documented asymmetry: on an a<b step, a
// is advanced once with no extra skip (the multiset merge-union convention).
func MergeWalk(a, b CoreBuffer, sigType SignatureType) (intersection, union int) {
	isSet := sigType == SignatureSet
	ia, ib := 0, 0
	na, nb := len(a), len(b)

	for ia < na && ib < nb {
		union++
		switch {
		case a[ia] == b[ib]:
			intersection++
			ia++
			ib++
			if isSet {
				for ia < na && a[ia] == a[ia-1] {
					ia++
				}
				for ib < nb && b[ib] == b[ib-1] {
					ib++
				}
			}
		case a[ia] < b[ib]:
			ia++
			if isSet {
				for ia < na && a[ia] == a[ia-1] {
					ia++
				}
			}
		default:
			ib++
			if isSet {
				for ib < nb && b[ib] == b[ib-1] {
					ib++
				}
			}
		}
	}
	for ia < na {
		union++
		ia++
		if isSet {
			for ia < na && a[ia] == a[ia-1] {
				ia++
			}
		}
	}
	for ib < nb {
		union++
		ib++
		if isSet {
			for ib < nb && b[ib] == b[ib-1] {
				ib++
			}
		}
	}
	return intersection, union
}

// PairDistances holds the four metrics computed for one genome pair.
type PairDistances struct {
	Jaccard float64
	Dice    float64
	Hamming float64
	JC      float64
}

func safeRatio(num, den float64) float64 {
	if den == 0 {
		return math.NaN()
	}
	return num / den
}

// Distances derives the four metrics from merge-walk counts and signature
// metadata. Every undefined operation (division by zero, log of a
// non-positive number) yields NaN rather than a panic.
func Distances(intersection, union, nA, nB int, totalLenA, totalLenB uint64) PairDistances {
	jaccard := 1 - safeRatio(float64(intersection), float64(union))

	diceSim := safeRatio(2*float64(intersection), float64(nA+nB))
	dice := 1 - diceSim

	var hamming float64
	if math.IsNaN(diceSim) {
		hamming = math.NaN()
	} else {
		avgLen := safeRatio(float64(totalLenA+totalLenB), float64(nA+nB))
		if math.IsNaN(avgLen) || avgLen == 0 {
			hamming = math.NaN()
		} else {
			hamming = 1 - math.Pow(diceSim, 1/avgLen)
		}
	}

	var jc float64
	if math.IsNaN(hamming) {
		jc = math.NaN()
	} else if inner := 1 - 0.75*hamming; inner <= 0 {
		jc = math.NaN()
	} else {
		jc = -0.75 * math.Log(inner)
	}

	return PairDistances{Jaccard: jaccard, Dice: dice, Hamming: hamming, JC: jc}
}

// PairMatrices holds the three square, symmetric distance matrices the
// matrix writer will render.
type PairMatrices struct {
	Jaccard [][]float64
	Dice    [][]float64
	JC      [][]float64
}

// ComputeAllDistances computes all three matrices over the upper triangle in
// parallel using a Pool, then mirrors results onto the lower triangle — an
// embarrassingly parallel, read-only pass over already-finalized signatures.
func ComputeAllDistances(genomes []*GenomeArgs, sigType SignatureType, workers int) PairMatrices {
	n := len(genomes)
	m := PairMatrices{
		Jaccard: newSquareMatrix(n),
		Dice:    newSquareMatrix(n),
		JC:      newSquareMatrix(n),
	}

	pool := NewPool(workers)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			i, j := i, j
			pool.Submit(func() {
				intersection, union := MergeWalk(genomes[i].Cores, genomes[j].Cores, sigType)
				d := Distances(intersection, union, genomes[i].CoreCount, genomes[j].CoreCount,
					genomes[i].TotalLen, genomes[j].TotalLen)
				m.Jaccard[i][j], m.Jaccard[j][i] = d.Jaccard, d.Jaccard
				m.Dice[i][j], m.Dice[j][i] = d.Dice, d.Dice
				m.JC[i][j], m.JC[j][i] = d.JC, d.JC
			})
		}
	}
	pool.Wait()
	return m
}

func newSquareMatrix(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	return m
}
