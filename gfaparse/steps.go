package gfaparse

import "github.com/grailbio/flatgfa"

// stepsParseState tracks whether the steps parser is mid-segment-name or
// expecting a comma separator before the next one.
type stepsParseState int

const (
	stepsStateSeg stepsParseState = iota
	stepsStateComma
)

// stepsParser incrementally parses a GFA path's step list, e.g.
// "1+,23-,4+", without allocating anything beyond the returned steps
// themselves. It stops as soon as it sees a byte that can't continue the
// list (typically a tab introducing the overlaps field) and leaves that
// suffix available via rest.
type stepsParser struct {
	buf   []byte
	index int
	state stepsParseState
	name  uint64
}

func newStepsParser(buf []byte) *stepsParser {
	return &stepsParser{buf: buf}
}

// rest returns everything left unconsumed once Next has returned false.
func (p *stepsParser) rest() []byte {
	return p.buf[p.index:]
}

// next returns the next step's segment name and orientation, or ok==false
// once the list is exhausted.
func (p *stepsParser) next() (name uint64, orient flatgfa.Orientation, ok bool) {
	for p.index < len(p.buf) {
		b := p.buf[p.index]
		p.index++
		switch p.state {
		case stepsStateSeg:
			switch {
			case b == '+' || b == '-':
				p.state = stepsStateComma
				o := flatgfa.Forward
				if b == '-' {
					o = flatgfa.Backward
				}
				return p.name, o, true
			case b >= '0' && b <= '9':
				p.name = p.name*10 + uint64(b-'0')
			default:
				p.index--
				return 0, 0, false
			}
		case stepsStateComma:
			if b == ',' {
				p.state = stepsStateSeg
				p.name = 0
			} else {
				p.index--
				return 0, 0, false
			}
		}
	}
	return 0, 0, false
}
