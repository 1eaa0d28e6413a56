// Package gfaparse implements a two-pass parser from GFA text into a
// flatgfa.GFAStore: segments and the header are recorded immediately,
// while links and paths are deferred until every segment name is known,
// since a link or a path step may reference a segment that appears later
// in the file.
package gfaparse

import (
	"bufio"
	"bytes"
	"io"

	"github.com/grailbio/flatgfa"
	"github.com/grailbio/flatgfa/gfapool"
	"github.com/pkg/errors"
)

// segID converts a resolved NameMap entry back into a typed segment Id.
func segID(idx uint32) gfapool.Id[flatgfa.Segment] {
	return gfapool.NewId[flatgfa.Segment](int(idx))
}

// Parser builds a flatgfa.GFAStore from GFA text.
type Parser struct {
	store  *flatgfa.GFAStore
	segIDs NameMap
}

// NewParser wraps a store (typically a freshly created heap or
// fixed-region GFAStore) in a Parser ready to accept GFA text.
func NewParser(store *flatgfa.GFAStore) *Parser {
	return &Parser{store: store}
}

// ParseMem parses an entire GFA file already resident in memory. It never
// copies segment sequence or optional-field bytes out of buf before
// handing them to the store, so the store ends up owning copies made by
// its own Add calls, not slices aliasing buf.
func (p *Parser) ParseMem(buf []byte) (*flatgfa.GFAStore, error) {
	var deferredLinks, deferredPaths [][]byte

	for _, line := range splitLines(buf) {
		if len(line) == 0 {
			continue
		}
		switch line[0] {
		case 'P':
			p.store.RecordLine(flatgfa.LinePath)
			deferredPaths = append(deferredPaths, line)
			continue
		case 'L':
			p.store.RecordLine(flatgfa.LineLink)
			deferredLinks = append(deferredLinks, line)
			continue
		}

		if err := p.parseEagerLine(line); err != nil {
			return nil, err
		}
	}

	for _, line := range deferredLinks {
		if err := p.addLinkLine(line); err != nil {
			return nil, err
		}
	}
	for _, line := range deferredPaths {
		if err := p.addPathLine(line); err != nil {
			return nil, err
		}
	}
	return p.store, nil
}

// ParseStream parses GFA text read incrementally from r. Like ParseMem, it
// defers links and paths to a second pass; since a streamed reader can't
// retain byte slices across lines the way an in-memory buffer can, each
// deferred line's raw bytes are copied once and held until every segment
// name has been seen.
func (p *Parser) ParseStream(r io.Reader) (*flatgfa.GFAStore, error) {
	var deferredLinks, deferredPaths [][]byte

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<30)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == 'P' || line[0] == 'L' {
			owned := make([]byte, len(line))
			copy(owned, line)
			if line[0] == 'P' {
				p.store.RecordLine(flatgfa.LinePath)
				deferredPaths = append(deferredPaths, owned)
			} else {
				p.store.RecordLine(flatgfa.LineLink)
				deferredLinks = append(deferredLinks, owned)
			}
			continue
		}
		if err := p.parseEagerLine(line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "gfaparse: reading input")
	}

	for _, line := range deferredLinks {
		if err := p.addLinkLine(line); err != nil {
			return nil, err
		}
	}
	for _, line := range deferredPaths {
		if err := p.addPathLine(line); err != nil {
			return nil, err
		}
	}
	return p.store, nil
}

// parseEagerLine records a header or segment line immediately. It also
// accepts a link line and resolves it at once, which needs every segment
// the link names to be known already; ParseMem and ParseStream both defer
// link lines instead of passing them here.
func (p *Parser) parseEagerLine(line []byte) error {
	if len(line) < 2 || line[1] != '\t' {
		return errors.Errorf("gfaparse: malformed line %q", line)
	}
	body := line[2:]
	switch line[0] {
	case 'H':
		p.store.RecordLine(flatgfa.LineHeader)
		p.store.AddHeader(body)
	case 'S':
		p.store.RecordLine(flatgfa.LineSegment)
		seg, err := parseSegLine(body)
		if err != nil {
			return err
		}
		id := p.store.AddSeg(seg.name, seg.seq, seg.optional)
		p.segIDs.Insert(seg.name, uint32(id.Index()))
	case 'L':
		p.store.RecordLine(flatgfa.LineLink)
		return p.addLinkLine(line)
	default:
		return errors.Errorf("gfaparse: unrecognized line marker %q", line[0])
	}
	return nil
}

func (p *Parser) addLinkLine(line []byte) error {
	if len(line) < 2 || line[1] != '\t' {
		return errors.Errorf("gfaparse: malformed link line %q", line)
	}
	link, err := parseLinkLine(line[2:])
	if err != nil {
		return err
	}
	from := flatgfa.NewHandle(segID(p.segIDs.Get(link.fromSeg)), link.fromOrient)
	to := flatgfa.NewHandle(segID(p.segIDs.Get(link.toSeg)), link.toOrient)
	p.store.AddLink(from, to, link.overlap)
	return nil
}

func (p *Parser) addPathLine(line []byte) error {
	if len(line) < 2 || line[1] != '\t' {
		return errors.Errorf("gfaparse: malformed path line %q", line)
	}
	body := line[2:]

	name, rest := parseField(body)

	sp := newStepsParser(rest)
	var handles []flatgfa.Handle
	for {
		segName, orient, ok := sp.next()
		if !ok {
			break
		}
		handles = append(handles, flatgfa.NewHandle(segID(p.segIDs.Get(segName)), orient))
	}
	rest, err := parseByte(sp.rest(), '\t')
	if err != nil {
		return errors.Wrap(err, "gfaparse: path line")
	}

	overlaps, rest, err := parseMaybeOverlapList(rest)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return errors.Errorf("gfaparse: path line has trailing data %q", rest)
	}

	steps := p.store.AddSteps(handles)
	p.store.AddPath(name, steps, overlaps)
	return nil
}

// splitLines splits buf on '\n', trimming a trailing '\r' from each line
// (for CRLF input) and dropping a final empty line caused by a trailing
// newline.
func splitLines(buf []byte) [][]byte {
	lines := bytes.Split(buf, []byte{'\n'})
	if n := len(lines); n > 0 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}
	for i, l := range lines {
		if n := len(l); n > 0 && l[n-1] == '\r' {
			lines[i] = l[:n-1]
		}
	}
	return lines
}
