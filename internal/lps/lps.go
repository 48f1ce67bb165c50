// Package lps is a minimal, deterministic stand-in for the Locally
// Consistent Parsing engine that gencore treats as an external collaborator.
// It exposes exactly the interface gencore needs: construction from a byte
// sequence (forward or reverse-complement), level-based refinement, and an
// ordered list of labeled cores. It borrows its building blocks — rolling
// k-mer hashing and closed-syncmer-style local-minimum selection — from the
// minimizer/syncmer sketching code this project's teacher pack already
// depends on for exactly this kind of substring fingerprinting.
package lps

import (
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash"
	"github.com/will-rowe/nthash"
)

const (
	sMerSize    = 3 // s-mer size used for the level-1 rolling hash
	baseWindow  = 5 // closed-syncmer window, in s-mer tokens, at level 1
	groupWindow = 3 // closed-syncmer window, in cores, for deeper levels
)

// Core is a single labeled substring fingerprint, ordered by Start within a
// Parser's Cores() result.
type Core struct {
	Label uint32
	Start int
	End   int
}

// Parser holds the current parse of one sequence at some refinement level.
type Parser struct {
	seq   []byte
	level int
	cores []Core
}

// New builds a Parser over seq at level 0 (unparsed). Call Deepen to produce
// cores.
func New(seq []byte) *Parser {
	cp := make([]byte, len(seq))
	copy(cp, seq)
	return &Parser{seq: cp}
}

// NewRC builds a Parser over the reverse complement of seq.
func NewRC(seq []byte) *Parser {
	return New(reverseComplement(seq))
}

func reverseComplement(seq []byte) []byte {
	n := len(seq)
	out := make([]byte, n)
	for i, b := range seq {
		out[n-1-i] = complementBase(b)
	}
	return out
}

func complementBase(b byte) byte {
	switch b {
	case 'A':
		return 'T'
	case 'a':
		return 't'
	case 'T':
		return 'A'
	case 't':
		return 'a'
	case 'C':
		return 'G'
	case 'c':
		return 'g'
	case 'G':
		return 'C'
	case 'g':
		return 'c'
	default:
		return b
	}
}

// Level reports the current refinement level (0 means unparsed).
func (p *Parser) Level() int { return p.level }

// Cores returns the current ordered core list. Callers must not mutate it.
func (p *Parser) Cores() []Core { return p.cores }

// Deepen refines the parse to the requested level. It is idempotent: calling
// it with a level at or below the current one is a no-op. Each successive
// level merges adjacent cores of the previous one, so it never yields more
// cores than the previous level (it may yield the same number) and never
// contradicts it, matching the monotonic-refinement contract the caller
// relies on.
func (p *Parser) Deepen(level int) {
	for next := p.level + 1; next <= level; next++ {
		switch {
		case next == 1:
			p.cores = parseBase(p.seq)
		case len(p.cores) <= 1:
			// already collapsed to a single core; nothing left to refine
		default:
			p.cores = refine(p.cores)
		}
		p.level = next
	}
}

func parseBase(seq []byte) []Core {
	n := len(seq)
	if n == 0 {
		return nil
	}
	if n <= sMerSize {
		return []Core{{Label: labelOf(seq), Start: 0, End: n}}
	}

	numTokens := n - sMerSize + 1
	hashes := make([]uint64, numTokens)

	hasher, err := nthash.NewHasher(&seq, uint(sMerSize))
	if err != nil {
		for i := 0; i < numTokens; i++ {
			hashes[i] = xxhash.Sum64(seq[i : i+sMerSize])
		}
	} else {
		for i := 0; i < numTokens; i++ {
			code, ok := hasher.Next(true)
			if !ok {
				hashes[i] = xxhash.Sum64(seq[i : i+sMerSize])
				continue
			}
			hashes[i] = code
		}
	}

	w := baseWindow
	if w > numTokens {
		w = numTokens
	}
	boundaries := closedSyncmerBoundaries(hashes, w)
	if boundaries[len(boundaries)-1] != n {
		boundaries = append(boundaries, n)
	}
	return coresFromBoundaries(seq, boundaries)
}

func refine(prev []Core) []Core {
	n := len(prev)
	hashes := make([]uint64, n)
	for i, c := range prev {
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], c.Label)
		hashes[i] = xxhash.Sum64(buf[:])
	}

	w := groupWindow
	if w > n {
		w = n
	}
	boundaries := closedSyncmerBoundaries(hashes, w)
	if boundaries[len(boundaries)-1] != n {
		boundaries = append(boundaries, n)
	}
	boundaries = dedupeSorted(boundaries)

	cores := make([]Core, 0, len(boundaries)-1)
	for i := 1; i < len(boundaries); i++ {
		lo, hi := boundaries[i-1], boundaries[i]
		if lo == hi {
			continue
		}
		h := uint64(2166136261)
		for j := lo; j < hi; j++ {
			var buf [4]byte
			binary.LittleEndian.PutUint32(buf[:], prev[j].Label)
			h ^= xxhash.Sum64(buf[:])
			h *= 1099511628211
		}
		cores = append(cores, Core{
			Label: uint32(h),
			Start: prev[lo].Start,
			End:   prev[hi-1].End,
		})
	}
	if len(cores) == 0 {
		cores = []Core{{Label: prev[0].Label, Start: prev[0].Start, End: prev[n-1].End}}
	}
	return cores
}

// closedSyncmerBoundaries finds the positions that split [0,len(hash)] into
// segments using a closed-syncmer rule: a window of w consecutive hashes
// starting at i is a segment boundary if its minimum sits at either edge of
// the window.
func closedSyncmerBoundaries(hash []uint64, w int) []int {
	n := len(hash)
	if w < 1 {
		w = 1
	}
	boundarySet := map[int]struct{}{0: {}, n: {}}
	for i := 0; i+w <= n; i++ {
		minIdx := i
		for j := i + 1; j < i+w; j++ {
			if hash[j] < hash[minIdx] {
				minIdx = j
			}
		}
		if minIdx == i || minIdx == i+w-1 {
			boundarySet[i] = struct{}{}
			boundarySet[i+w] = struct{}{}
		}
	}
	out := make([]int, 0, len(boundarySet))
	for b := range boundarySet {
		out = append(out, b)
	}
	sort.Ints(out)
	return out
}

func coresFromBoundaries(seq []byte, boundaries []int) []Core {
	uniq := dedupeSorted(boundaries)
	cores := make([]Core, 0, len(uniq)-1)
	for i := 1; i < len(uniq); i++ {
		start, end := uniq[i-1], uniq[i]
		if start == end {
			continue
		}
		cores = append(cores, Core{Label: labelOf(seq[start:end]), Start: start, End: end})
	}
	return cores
}

func dedupeSorted(xs []int) []int {
	sort.Ints(xs)
	out := xs[:0]
	for i, x := range xs {
		if i == 0 || x != xs[i-1] {
			out = append(out, x)
		}
	}
	return out
}

func labelOf(b []byte) uint32 {
	return uint32(xxhash.Sum64(b))
}
