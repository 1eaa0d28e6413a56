package gfaparse

import (
	farm "github.com/dgryski/go-farm"
	"github.com/grailbio/base/log"
)

// NameMap associates GFA segment names (the arbitrary integers that
// appear in "S" lines) with the sequential segment Ids FlatGFA assigns
// them. Most real pangenome GFAs number segments 1, 2, 3, ... in order,
// so the common case -- the next name is exactly one more than the last
// sequential name seen, and lands at the next sequential Id -- needs no
// table at all. Names that break the pattern fall back to an open
// addressing table hashed with farm.Hash64WithSeed, the same
// non-cryptographic hash the teacher's kmer index uses for its table.
type NameMap struct {
	// sequentialMax is the largest name covered by the fast path:
	// names in [1, sequentialMax] map to Id (name-1).
	sequentialMax uint64

	table    []nameEntry
	filled   int
}

type nameEntry struct {
	name  uint64
	id    uint32
	valid bool
}

const nameMapInitialSize = 16

// Insert records that name maps to id. Call this once per segment, in the
// order segments are added to the graph.
func (m *NameMap) Insert(name uint64, id uint32) {
	if name-1 == m.sequentialMax && name-1 == uint64(id) {
		m.sequentialMax++
		return
	}
	m.insertTable(name, id)
}

// Get resolves a previously inserted name back to its Id. It panics if
// name was never inserted, since every reference to a segment name in a
// well-formed GFA file must name a segment that was declared.
func (m *NameMap) Get(name uint64) uint32 {
	if name <= m.sequentialMax {
		return uint32(name - 1)
	}
	if m.table == nil {
		log.Panicf("gfaparse: reference to undeclared segment %d", name)
	}
	idx := m.probe(name)
	if !m.table[idx].valid {
		log.Panicf("gfaparse: reference to undeclared segment %d", name)
	}
	return m.table[idx].id
}

func hashName(name uint64) uint64 {
	return farm.Hash64WithSeed(nil, name)
}

func (m *NameMap) insertTable(name uint64, id uint32) {
	if m.table == nil {
		m.table = make([]nameEntry, nameMapInitialSize)
	}
	if (m.filled+1)*2 > len(m.table) {
		m.grow()
	}
	idx := m.probe(name)
	if !m.table[idx].valid {
		m.filled++
	}
	m.table[idx] = nameEntry{name: name, id: id, valid: true}
}

func (m *NameMap) probe(name uint64) int {
	mask := uint64(len(m.table) - 1)
	idx := hashName(name) & mask
	for {
		e := m.table[idx]
		if !e.valid || e.name == name {
			return int(idx)
		}
		idx = (idx + 1) & mask
	}
}

func (m *NameMap) grow() {
	old := m.table
	m.table = make([]nameEntry, len(old)*2)
	m.filled = 0
	for _, e := range old {
		if e.valid {
			idx := m.probe(e.name)
			m.table[idx] = e
			m.filled++
		}
	}
}
