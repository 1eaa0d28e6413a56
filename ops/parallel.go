package ops

import (
	"runtime"
	"sync"

	"github.com/grailbio/flatgfa"
	"github.com/grailbio/flatgfa/gfaparse"
)

// ParallelGAFScan chunks every read's path against gfa concurrently,
// splitting reads across runtime.NumCPU() goroutines and reducing each
// goroutine's chunk count over a channel, mirroring the producer/reducer
// shape ReadBaseStrandTsvIntoChannel uses for concurrent TSV ingestion.
// It returns the total number of chunk events across all reads, the
// count-only result the original's rayon-parallel GAF benchmark produces.
func ParallelGAFScan(gfa flatgfa.FlatGFA, nameMap *gfaparse.NameMap, reads []GAFLine) int {
	if len(reads) == 0 {
		return 0
	}
	nWorkers := runtime.NumCPU()
	if nWorkers < 1 {
		nWorkers = 1
	}
	if nWorkers > len(reads) {
		nWorkers = len(reads)
	}
	chunkSize := (len(reads) + nWorkers - 1) / nWorkers

	results := make(chan int, nWorkers)
	var wg sync.WaitGroup
	for start := 0; start < len(reads); start += chunkSize {
		end := start + chunkSize
		if end > len(reads) {
			end = len(reads)
		}
		wg.Add(1)
		go func(batch []GAFLine) {
			defer wg.Done()
			n := 0
			for _, read := range batch {
				chunker := NewPathChunker(gfa, nameMap, read)
				for {
					if _, ok := chunker.Next(); !ok {
						break
					}
					n++
				}
			}
			results <- n
		}(reads[start:end])
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	total := 0
	for n := range results {
		total += n
	}
	return total
}
