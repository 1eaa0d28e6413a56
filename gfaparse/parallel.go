package gfaparse

import (
	"bytes"
	"runtime"
	"sync"
)

// LineCounts tallies, per leading line-marker byte ('H', 'S', 'L', 'P',
// ...), how many lines carry that marker and how many bytes (including
// the marker itself, excluding the trailing newline) those lines total.
type LineCounts struct {
	Lines map[byte]int
	Bytes map[byte]uint64
}

func newLineCounts() LineCounts {
	return LineCounts{Lines: make(map[byte]int), Bytes: make(map[byte]uint64)}
}

func (c *LineCounts) add(other LineCounts) {
	for marker, n := range other.Lines {
		c.Lines[marker] += n
	}
	for marker, n := range other.Bytes {
		c.Bytes[marker] += n
	}
}

// countLines tallies every complete line in buf (buf need not end with a
// newline).
func countLines(buf []byte) LineCounts {
	c := newLineCounts()
	rest := buf
	for len(rest) > 0 {
		marker := rest[0]
		next := bytes.IndexByte(rest, '\n')
		if next < 0 {
			next = len(rest)
		}
		c.Lines[marker]++
		c.Bytes[marker] += uint64(next)
		if next >= len(rest) {
			break
		}
		rest = rest[next+1:]
	}
	return c
}

// ParallelLineCount counts buf's lines by marker byte, splitting the
// buffer into up to runtime.NumCPU() chunks at line boundaries and
// scanning each chunk in its own goroutine. A sync.WaitGroup coordinates
// completion and a channel carries each chunk's partial LineCounts back
// for reduction, mirroring the producer/reducer shape
// ReadBaseStrandTsvIntoChannel uses for concurrent TSV ingestion.
func ParallelLineCount(buf []byte) LineCounts {
	nWorkers := runtime.NumCPU()
	if nWorkers < 1 {
		nWorkers = 1
	}
	chunks := splitIntoChunks(buf, nWorkers)

	results := make(chan LineCounts, len(chunks))
	var wg sync.WaitGroup
	for _, chunk := range chunks {
		wg.Add(1)
		go func(chunk []byte) {
			defer wg.Done()
			results <- countLines(chunk)
		}(chunk)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	total := newLineCounts()
	for partial := range results {
		total.add(partial)
	}
	return total
}

// splitIntoChunks divides buf into at most n pieces, each boundary moved
// forward to the next newline so no line is split across two chunks.
func splitIntoChunks(buf []byte, n int) [][]byte {
	if len(buf) == 0 {
		return nil
	}
	targetSize := (len(buf) + n - 1) / n
	if targetSize < 1 {
		targetSize = 1
	}

	var chunks [][]byte
	start := 0
	for start < len(buf) {
		end := start + targetSize
		if end >= len(buf) {
			chunks = append(chunks, buf[start:])
			break
		}
		if nl := bytes.IndexByte(buf[end:], '\n'); nl >= 0 {
			end += nl + 1
		} else {
			end = len(buf)
		}
		chunks = append(chunks, buf[start:end])
		start = end
	}
	return chunks
}
