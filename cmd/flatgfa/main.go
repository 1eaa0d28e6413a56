/*
flatgfa loads a GFA graph into the flat, mmap-friendly representation
implemented by the github.com/grailbio/flatgfa packages and applies one
of a handful of subcommands to it: dumping the binary TOC, listing path
names, printing summary stats, resolving a path offset to a segment,
extracting a neighborhood, chopping long segments, computing depth, or
chunking a GAF alignment's path against the graph.

Flag letters are assigned per subcommand rather than reused globally,
since Go's flag package shares one namespace across all subcommands
within a single process: -c is extract's BFS distance, -s is chop's max
segment size, -n is extract's origin segment name, -p is position's
<path>,<offset>,{+|-} spec. The gaf subcommand's -s/-b/-p switches (for
which the original reference CLI reuses those same letters, since each
of its subcommands gets its own flag namespace) are spelled out in full
here -- -seqs/-bench/-parallel -- to dodge the same collision.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/grailbio/base/log"
	"github.com/grailbio/flatgfa"
	"github.com/grailbio/flatgfa/gfafile"
	"github.com/grailbio/flatgfa/gfaparse"
	"github.com/grailbio/flatgfa/gfaprint"
	"github.com/grailbio/flatgfa/ops"
	"github.com/pkg/errors"
)

var (
	inPath     = flag.String("i", "", "Input GFA text path (default stdin)")
	inFlatPath = flag.String("I", "", "Input flat binary path (mmap'd); mutually exclusive with -i")
	outPath    = flag.String("o", "", "Output path (default stdout)")
	mmapOut    = flag.String("m", "", "Write the result as a flat binary file at this path instead of GFA text")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-i|-I input] [-o output] [-m flatfile] <subcommand> [args]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Subcommands: toc, paths, stats, position, extract, chop, depth, gaf\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	statsSeg := flag.Bool("S", false, "stats: print summary metrics (length, nodes, edges, paths, steps)")
	statsLink := flag.Bool("L", false, "stats: print self-loop link counts")
	posFlag := flag.String("p", "", "position: <path>,<offset>,{+|-}")
	extractName := flag.Uint64("n", 0, "extract: origin segment name")
	extractDist := flag.Int("c", 0, "extract: BFS distance")
	extractMaxSub := flag.Int("d", 0, "extract: max subpath merge distance")
	extractIters := flag.Int("e", 1, "extract: number of merge-subpaths iterations")
	chopSize := flag.Int("s", 1000, "chop: max segment size")
	chopLinks := flag.Bool("l", false, "chop: include links for chopped segments")
	gafSeqs := flag.Bool("seqs", false, "gaf: print the actual sequence for each chunk")
	gafBench := flag.Bool("bench", false, "gaf: benchmark only, print nothing but a final chunk count")
	gafParallel := flag.Bool("parallel", false, "gaf: parallelize the scan (only meaningful combined with -bench)")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(1)
	}
	cmd := args[0]

	gfa, err := loadInput()
	if err != nil {
		log.Fatalf("flatgfa: %v", err)
	}

	var result *flatgfa.GFAStore
	var printErr error

	switch cmd {
	case "toc":
		printToc(gfa)
		return
	case "paths":
		printPaths(gfa)
		return
	case "stats":
		printStats(gfa, *statsSeg, *statsLink)
		return
	case "position":
		if err := runPosition(gfa, *posFlag); err != nil {
			log.Fatalf("flatgfa: position: %v", err)
		}
		return
	case "extract":
		segID, ok := gfa.FindSeg(*extractName)
		if !ok {
			log.Fatalf("flatgfa: extract: no segment named %d", *extractName)
		}
		result = ops.Extract(gfa, segID, *extractDist, *extractMaxSub, *extractIters)
	case "chop":
		result = ops.Chop(gfa, *chopSize, *chopLinks)
	case "depth":
		printDepth(gfa)
		return
	case "gaf":
		if len(args) < 2 {
			log.Fatalf("flatgfa: gaf: a GAF file argument is required")
		}
		if err := runGAF(gfa, args[1], *gafSeqs, *gafBench, *gafParallel); err != nil {
			log.Fatalf("flatgfa: gaf: %v", err)
		}
		return
	default:
		fmt.Fprintf(os.Stderr, "flatgfa: unknown subcommand %q\n", cmd)
		usage()
		os.Exit(1)
	}

	if result == nil {
		return
	}
	resultView := result.View()
	if *mmapOut != "" {
		buf := make([]byte, gfafile.Size(resultView))
		gfafile.Dump(resultView, buf)
		if err := os.WriteFile(*mmapOut, buf, 0644); err != nil {
			log.Fatalf("flatgfa: writing %s: %v", *mmapOut, err)
		}
		return
	}
	w, closeFn := openOutput()
	defer closeFn()
	bw := bufio.NewWriter(w)
	printErr = gfaprint.Print(bw, resultView)
	if printErr == nil {
		printErr = bw.Flush()
	}
	if printErr != nil {
		log.Fatalf("flatgfa: %v", printErr)
	}
}

func loadInput() (flatgfa.FlatGFA, error) {
	if *inPath != "" && *inFlatPath != "" {
		return flatgfa.FlatGFA{}, errors.New("only one of -i and -I may be given")
	}
	if *inFlatPath != "" {
		_, gfa, err := gfafile.MapFile(*inFlatPath)
		return gfa, errors.Wrap(err, "mapping flat input")
	}
	r := os.Stdin
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			return flatgfa.FlatGFA{}, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		store, err := gfaparse.NewParser(flatgfa.NewHeapGFAStore()).ParseStream(f)
		if err != nil {
			return flatgfa.FlatGFA{}, errors.Wrap(err, "parsing input")
		}
		return store.View(), nil
	}
	store, err := gfaparse.NewParser(flatgfa.NewHeapGFAStore()).ParseStream(r)
	if err != nil {
		return flatgfa.FlatGFA{}, errors.Wrap(err, "parsing stdin")
	}
	return store.View(), nil
}

func openOutput() (*os.File, func()) {
	if *outPath == "" {
		return os.Stdout, func() {}
	}
	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("flatgfa: opening output: %v", err)
	}
	return f, func() { f.Close() }
}

func printToc(gfa flatgfa.FlatGFA) {
	toc := ops.BuildTOCSummary(gfa)
	fmt.Fprintf(os.Stderr, "header: %d\n", toc.Header)
	fmt.Fprintf(os.Stderr, "segs: %d\n", toc.Segs)
	fmt.Fprintf(os.Stderr, "paths: %d\n", toc.Paths)
	fmt.Fprintf(os.Stderr, "links: %d\n", toc.Links)
	fmt.Fprintf(os.Stderr, "steps: %d\n", toc.Steps)
	fmt.Fprintf(os.Stderr, "seq_data: %d\n", toc.SeqData)
	fmt.Fprintf(os.Stderr, "overlaps: %d\n", toc.Overlaps)
	fmt.Fprintf(os.Stderr, "alignment: %d\n", toc.Alignment)
	fmt.Fprintf(os.Stderr, "name_data: %d\n", toc.NameData)
	fmt.Fprintf(os.Stderr, "optional_data: %d\n", toc.OptionalData)
	fmt.Fprintf(os.Stderr, "line_order: %d\n", toc.LineOrder)
}

func printPaths(gfa flatgfa.FlatGFA) {
	for _, name := range ops.PathNames(gfa) {
		fmt.Println(name)
	}
}

func printStats(gfa flatgfa.FlatGFA, summarize, selfLoops bool) {
	if summarize {
		s := ops.Stats(gfa)
		fmt.Println("#length\tnodes\tedges\tpaths\tsteps")
		fmt.Printf("%d\t%d\t%d\t%d\t%d\n", s.Length, s.Nodes, s.Edges, s.Paths, s.Steps)
	} else if selfLoops {
		total, unique := ops.SelfLoops(gfa)
		fmt.Println("#type\tnum")
		fmt.Printf("total\t%d\n", total)
		fmt.Printf("unique\t%d\n", unique)
	}
}

func printDepth(gfa flatgfa.FlatGFA) {
	depths, uniq := ops.Depth(gfa)
	for i, seg := range gfa.Segs.All() {
		fmt.Printf("%d\t%d\t%d\n", seg.Name, depths[i], uniq[i])
	}
}

func runPosition(gfa flatgfa.FlatGFA, spec string) error {
	parts := strings.Split(spec, ",")
	if len(parts) != 3 {
		return errors.Errorf("expected <path>,<offset>,{+|-}, got %q", spec)
	}
	pathID, ok := gfa.FindPath([]byte(parts[0]))
	if !ok {
		return errors.Errorf("no path named %q", parts[0])
	}
	offset, err := strconv.Atoi(parts[1])
	if err != nil {
		return errors.Wrap(err, "offset")
	}
	path := gfa.Paths.At(pathID)
	handle, within, ok := ops.Position(gfa, path, offset)
	if !ok {
		return errors.Errorf("offset %d is past the end of path %q", offset, parts[0])
	}
	seg := gfa.GetHandleSeg(handle)
	fmt.Printf("%d%s\t%d\n", seg.Name, handle.Orient(), within)
	return nil
}

// runGAF implements the gaf subcommand: it chunks every read in a GAF
// file's path against gfa. With neither seqs nor bench, it prints each
// read's name followed by one line per chunk event. With seqs, it
// prints each read's name and the concatenated chunk sequences. With
// bench, it suppresses all per-chunk output and prints only the total
// chunk count, optionally counted with ops.ParallelGAFScan when
// parallel is also set -- the one combination the original reference
// CLI actually parallelizes.
func runGAF(gfa flatgfa.FlatGFA, path string, seqs, bench, parallel bool) error {
	reads, err := readGAFFile(path)
	if err != nil {
		return err
	}
	nameMap := ops.BuildSegNameMap(gfa)

	switch {
	case parallel && bench:
		fmt.Println(ops.ParallelGAFScan(gfa, nameMap, reads))
	case parallel:
		return errors.New("gaf: -parallel is only implemented combined with -bench")
	case bench:
		count := 0
		for _, read := range reads {
			chunker := ops.NewPathChunker(gfa, nameMap, read)
			for {
				if _, ok := chunker.Next(); !ok {
					break
				}
				count++
			}
		}
		fmt.Println(count)
	case seqs:
		for _, read := range reads {
			fmt.Printf("%s\t", read.Name)
			chunker := ops.NewPathChunker(gfa, nameMap, read)
			for {
				ev, ok := chunker.Next()
				if !ok {
					break
				}
				printChunkSeq(gfa, ev)
			}
			fmt.Println()
		}
	default:
		for _, read := range reads {
			fmt.Println(string(read.Name))
			chunker := ops.NewPathChunker(gfa, nameMap, read)
			for {
				ev, ok := chunker.Next()
				if !ok {
					break
				}
				printChunkEvent(gfa, ev)
			}
		}
	}
	return nil
}

// readGAFFile reads path and parses every non-empty line as a GAF
// record.
func readGAFFile(path string) ([]ops.GAFLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening GAF file")
	}
	defer f.Close()

	var reads []ops.GAFLine
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		read, err := ops.ParseGAFLine(append([]byte(nil), line...))
		if err != nil {
			return nil, err
		}
		reads = append(reads, read)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading GAF file")
	}
	return reads, nil
}

func printChunkEvent(gfa flatgfa.FlatGFA, ev ops.ChunkEvent) {
	seg := gfa.GetHandleSeg(ev.Handle)
	switch ev.Kind {
	case ops.ChunkPartial:
		fmt.Printf("%d: %d%s, %d-%dbp\n", ev.Index, seg.Name, ev.Handle.Orient(), ev.Start, ev.End)
	case ops.ChunkAll:
		fmt.Printf("%d: %d%s, %dbp\n", ev.Index, seg.Name, ev.Handle.Orient(), seg.Len())
	default:
		fmt.Printf("%d: (skipped)\n", ev.Index)
	}
}

func printChunkSeq(gfa flatgfa.FlatGFA, ev ops.ChunkEvent) {
	switch ev.Kind {
	case ops.ChunkPartial:
		fmt.Print(string(ops.OrientedSeq(gfa, ev.Handle)[ev.Start:ev.End]))
	case ops.ChunkAll:
		fmt.Print(string(ops.OrientedSeq(gfa, ev.Handle)))
	}
}
