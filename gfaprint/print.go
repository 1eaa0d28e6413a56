// Package gfaprint renders a flatgfa.FlatGFA back to GFA text, either in
// a normalized order (header, then all segments, then all paths, then
// all links) or, when the graph retains a recorded line order, in the
// exact interleaving of its original source file.
package gfaprint

import (
	"bufio"
	"io"
	"strconv"

	"github.com/grailbio/base/log"
	"github.com/grailbio/flatgfa"
	"github.com/grailbio/flatgfa/gfapool"
)

// Print writes gfa as GFA text to w. It preserves the original line order
// if gfa has one recorded, and otherwise falls back to normalized order.
func Print(w io.Writer, gfa flatgfa.FlatGFA) error {
	bw := bufio.NewWriter(w)
	order := gfa.GetLineOrder()
	if order == nil {
		printNormalized(bw, gfa)
	} else {
		printPreserved(bw, gfa, order)
	}
	return bw.Flush()
}

func printNormalized(w *bufio.Writer, gfa flatgfa.FlatGFA) {
	if !gfa.Header.IsEmpty() {
		printHeader(w, gfa.Header.All())
	}
	gfa.Segs.Each(func(_ gfapool.Id[flatgfa.Segment], seg flatgfa.Segment) {
		printSeg(w, gfa, seg)
	})
	gfa.Paths.Each(func(_ gfapool.Id[flatgfa.Path], path flatgfa.Path) {
		printPath(w, gfa, path)
	})
	gfa.Links.Each(func(_ gfapool.Id[flatgfa.Link], link flatgfa.Link) {
		printLink(w, gfa, link)
	})
}

func printPreserved(w *bufio.Writer, gfa flatgfa.FlatGFA, order []flatgfa.LineKind) {
	segs := gfa.Segs.All()
	paths := gfa.Paths.All()
	links := gfa.Links.All()
	var segIdx, pathIdx, linkIdx int

	for _, kind := range order {
		switch kind {
		case flatgfa.LineHeader:
			printHeader(w, gfa.Header.All())
		case flatgfa.LineSegment:
			if segIdx >= len(segs) {
				log.Panicf("gfaprint: line order names more segments than the graph has")
			}
			printSeg(w, gfa, segs[segIdx])
			segIdx++
		case flatgfa.LinePath:
			if pathIdx >= len(paths) {
				log.Panicf("gfaprint: line order names more paths than the graph has")
			}
			printPath(w, gfa, paths[pathIdx])
			pathIdx++
		case flatgfa.LineLink:
			if linkIdx >= len(links) {
				log.Panicf("gfaprint: line order names more links than the graph has")
			}
			printLink(w, gfa, links[linkIdx])
			linkIdx++
		}
	}
}

func printHeader(w *bufio.Writer, version []byte) {
	if len(version) == 0 {
		return
	}
	w.WriteString("H\t")
	w.Write(version)
	w.WriteByte('\n')
}

func printSeg(w *bufio.Writer, gfa flatgfa.FlatGFA, seg flatgfa.Segment) {
	w.WriteString("S\t")
	w.WriteString(strconv.FormatUint(seg.Name, 10))
	w.WriteByte('\t')
	w.Write(gfa.GetSeq(seg))
	if opt := gfa.GetOptionalData(seg); len(opt) > 0 {
		w.WriteByte('\t')
		w.Write(opt)
	}
	w.WriteByte('\n')
}

func printHandle(w *bufio.Writer, gfa flatgfa.FlatGFA, h flatgfa.Handle) {
	seg := gfa.GetHandleSeg(h)
	w.WriteString(strconv.FormatUint(seg.Name, 10))
	w.WriteString(h.Orient().String())
}

func printLink(w *bufio.Writer, gfa flatgfa.FlatGFA, link flatgfa.Link) {
	w.WriteString("L\t")
	printSegNameAndOrient(w, gfa, link.From)
	w.WriteByte('\t')
	printSegNameAndOrient(w, gfa, link.To)
	w.WriteByte('\t')
	w.WriteString(flatgfa.FormatAlignment(gfa.GetAlignment(link.Overlap)))
	w.WriteByte('\n')
}

func printSegNameAndOrient(w *bufio.Writer, gfa flatgfa.FlatGFA, h flatgfa.Handle) {
	seg := gfa.GetHandleSeg(h)
	w.WriteString(strconv.FormatUint(seg.Name, 10))
	w.WriteByte('\t')
	w.WriteString(h.Orient().String())
}

func printPath(w *bufio.Writer, gfa flatgfa.FlatGFA, path flatgfa.Path) {
	w.WriteString("P\t")
	w.Write(gfa.GetPathName(path))
	w.WriteByte('\t')

	steps := gfa.GetSteps(path)
	for i, step := range steps {
		if i > 0 {
			w.WriteByte(',')
		}
		printHandle(w, gfa, step)
	}
	w.WriteByte('\t')

	overlaps := gfa.GetOverlaps(path)
	if len(overlaps) == 0 {
		w.WriteByte('*')
	} else {
		for i, span := range overlaps {
			if i > 0 {
				w.WriteByte(',')
			}
			w.WriteString(flatgfa.FormatAlignment(gfa.GetAlignment(span)))
		}
	}
	w.WriteByte('\n')
}
