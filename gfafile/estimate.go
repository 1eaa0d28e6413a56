package gfafile

import (
	"bytes"

	"github.com/grailbio/base/log"
	"github.com/grailbio/flatgfa/gfaparse"
)

// EstimateToc scans raw GFA text once, counting lines by kind and summing
// header/segment/path line lengths, then derives a table of contents sized
// to comfortably hold the parsed result (see Estimate). It never allocates
// more than a handful of counters; the scan itself is a single pass over
// buf with no copying.
func EstimateToc(buf []byte) Toc {
	var p EstimateParams
	rest := buf
	for len(rest) > 0 {
		marker := rest[0]
		next := bytes.IndexByte(rest, '\n')
		if next < 0 {
			next = len(rest)
		}
		switch marker {
		case 'H':
			p.HeaderBytes += uint64(next)
		case 'S':
			p.Segs++
			p.SegBytes += uint64(next)
		case 'L':
			p.Links++
		case 'P':
			p.Paths++
			p.PathBytes += uint64(next)
		default:
			log.Panicf("gfafile: unrecognized line marker %q while estimating capacity", marker)
		}
		if next >= len(rest) {
			break
		}
		rest = rest[next+1:]
	}
	return Estimate(p)
}

// ParallelEstimateToc is EstimateToc's multi-core counterpart: it
// tallies line counts and byte totals with gfaparse.ParallelLineCount
// (splitting buf across goroutines) rather than EstimateToc's single
// sequential scan, then derives the same Toc via Estimate. Intended for
// large inputs, where the one-time cost of a second pass is worth
// spreading across cores.
func ParallelEstimateToc(buf []byte) Toc {
	counts := gfaparse.ParallelLineCount(buf)
	p := EstimateParams{
		HeaderBytes: counts.Bytes['H'],
		Segs:        uint64(counts.Lines['S']),
		SegBytes:    counts.Bytes['S'],
		Links:       uint64(counts.Lines['L']),
		Paths:       uint64(counts.Lines['P']),
		PathBytes:   counts.Bytes['P'],
	}
	for marker := range counts.Lines {
		switch marker {
		case 'H', 'S', 'L', 'P':
		default:
			log.Panicf("gfafile: unrecognized line marker %q while estimating capacity", marker)
		}
	}
	return Estimate(p)
}
