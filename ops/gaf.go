package ops

import (
	"bytes"

	"github.com/grailbio/flatgfa"
	"github.com/grailbio/flatgfa/gfaparse"
	"github.com/grailbio/flatgfa/gfapool"
	"github.com/grailbio/flatgfa/seqenc"
	"github.com/pkg/errors"
)

func segIDFromIndex(idx uint32) gfapool.Id[flatgfa.Segment] {
	return gfapool.NewId[flatgfa.Segment](int(idx))
}

// GAFLine is the subset of a GAF alignment record that PathChunker needs:
// the read name, its aligned range along the path, and the raw path
// string itself (left unparsed until a PathChunker walks it).
type GAFLine struct {
	Name  []byte
	Start int
	End   int
	Path  []byte
}

// ParseGAFLine parses a single tab-delimited GAF line. GAF's columns
// beyond the read name are, in order: length, start, end, strand, path
// name, path length, path start, path end -- of which only the path
// string and the alignment's start/end offsets along the path are needed
// here.
func ParseGAFLine(line []byte) (GAFLine, error) {
	fields := bytes.Split(line, []byte{'\t'})
	if len(fields) < 9 {
		return GAFLine{}, errors.Errorf("gaf: line has %d fields, want at least 9", len(fields))
	}
	path := fields[5]
	start, err := parseGAFInt(fields[7])
	if err != nil {
		return GAFLine{}, errors.Wrap(err, "gaf: path start")
	}
	end, err := parseGAFInt(fields[8])
	if err != nil {
		return GAFLine{}, errors.Wrap(err, "gaf: path end")
	}
	return GAFLine{Name: fields[0], Start: start, End: end, Path: path}, nil
}

func parseGAFInt(s []byte) (int, error) {
	if len(s) == 0 {
		return 0, errors.New("gaf: expected a number")
	}
	n := 0
	for _, b := range s {
		if b < '0' || b > '9' {
			return 0, errors.Errorf("gaf: expected a number, got %q", s)
		}
		n = n*10 + int(b-'0')
	}
	return n, nil
}

// BuildSegNameMap indexes every segment in gfa by its GFA name, for
// PathChunker to resolve the bare segment names that appear in a GAF
// path string.
func BuildSegNameMap(gfa flatgfa.FlatGFA) *gfaparse.NameMap {
	m := &gfaparse.NameMap{}
	for i, seg := range gfa.Segs.All() {
		m.Insert(seg.Name, uint32(i))
	}
	return m
}

// OrientedSeq returns h's segment sequence, reverse-complemented when h
// points Backward, for printing a GAF chunk's actual bases.
func OrientedSeq(gfa flatgfa.FlatGFA, h flatgfa.Handle) []byte {
	seq := gfa.GetSeq(gfa.GetHandleSeg(h))
	if h.Orient() == flatgfa.Forward {
		return seq
	}
	out := append([]byte(nil), seq...)
	seqenc.ReverseComplementASCII(out)
	return out
}

// ChunkRangeKind identifies which part, if any, of a chunk's segment a
// ChunkEvent's aligned range covers.
type ChunkRangeKind int

const (
	// ChunkNone means the read's aligned range doesn't reach this step at
	// all -- it's included in the path purely for context.
	ChunkNone ChunkRangeKind = iota
	// ChunkAll means the entire segment falls within the aligned range.
	ChunkAll
	// ChunkPartial means only [Start, End) of the segment's own coordinate
	// space falls within the aligned range.
	ChunkPartial
)

// ChunkEvent reports how one step of a GAF path relates to that
// alignment's [start, end) range along the path.
type ChunkEvent struct {
	Index  int
	Handle flatgfa.Handle
	Kind   ChunkRangeKind
	Start  int // meaningful only when Kind == ChunkPartial
	End    int // meaningful only when Kind == ChunkPartial
}

// pathParser parses a GAF path string, e.g. ">12<34>56".
type pathParser struct {
	buf   []byte
	index int
}

func newPathParser(buf []byte) *pathParser {
	return &pathParser{buf: buf}
}

func (p *pathParser) next() (name uint64, forward bool, ok bool) {
	if p.index >= len(p.buf) {
		return 0, false, false
	}
	b := p.buf[p.index]
	p.index++
	switch b {
	case '>':
		forward = true
	case '<':
		forward = false
	default:
		p.index--
		return 0, false, false
	}

	start := p.index
	for p.index < len(p.buf) && p.buf[p.index] >= '0' && p.buf[p.index] <= '9' {
		p.index++
	}
	if p.index == start {
		return 0, false, false
	}
	for _, b := range p.buf[start:p.index] {
		name = name*10 + uint64(b-'0')
	}
	return name, forward, true
}

// PathChunker walks a GAF alignment's path one step at a time, reporting
// for each step how it relates to the alignment's aligned range: whether
// the step is entirely inside, entirely outside, or straddles one edge of
// the range.
type PathChunker struct {
	gfa     flatgfa.FlatGFA
	nameMap *gfaparse.NameMap
	steps   *pathParser
	start   int
	end     int

	index   int
	pos     int
	started bool
	ended   bool
}

// NewPathChunker starts a chunker over read's path, resolving segment
// names through nameMap (see BuildSegNameMap).
func NewPathChunker(gfa flatgfa.FlatGFA, nameMap *gfaparse.NameMap, read GAFLine) *PathChunker {
	return &PathChunker{
		gfa:     gfa,
		nameMap: nameMap,
		steps:   newPathParser(read.Path),
		start:   read.Start,
		end:     read.End,
	}
}

// Next returns the next step's chunk event, or ok == false once the path
// is exhausted.
func (c *PathChunker) Next() (ChunkEvent, bool) {
	segName, forward, ok := c.steps.next()
	if !ok {
		return ChunkEvent{}, false
	}

	segID := segIDFromIndex(c.nameMap.Get(segName))
	dir := flatgfa.Backward
	if forward {
		dir = flatgfa.Forward
	}
	handle := flatgfa.NewHandle(segID, dir)

	segLen := c.gfa.Segs.At(segID).Len()
	nextPos := c.pos + segLen

	ev := ChunkEvent{Index: c.index, Handle: handle}
	switch {
	case !c.started && c.start < nextPos:
		c.started = true
		if c.end < nextPos {
			c.ended = true
			ev.Kind = ChunkPartial
			ev.Start = c.start - c.pos
			ev.End = c.end - c.pos
		} else {
			ev.Kind = ChunkPartial
			ev.Start = c.start - c.pos
			ev.End = segLen
		}
	case c.started && !c.ended && c.end < nextPos:
		c.ended = true
		ev.Kind = ChunkPartial
		ev.Start = 0
		ev.End = c.end - c.pos
	case c.started && !c.ended:
		ev.Kind = ChunkAll
	default:
		ev.Kind = ChunkNone
	}

	c.pos = nextPos
	c.index++
	return ev, true
}
