package gfafile

import (
	"os"

	"github.com/grailbio/base/log"
	"github.com/grailbio/flatgfa"
	"github.com/grailbio/flatgfa/gfapool"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// MappedFile is an open, memory-mapped FlatGFA binary file. Close must be
// called to unmap the region and release the file descriptor.
type MappedFile struct {
	f    *os.File
	data []byte
}

// MapFile opens and memory-maps an existing FlatGFA binary file read-only,
// returning a zero-copy view over its contents.
func MapFile(path string) (*MappedFile, flatgfa.FlatGFA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, flatgfa.FlatGFA{}, errors.Wrapf(err, "gfafile: opening %s", path)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, flatgfa.FlatGFA{}, errors.Wrapf(err, "gfafile: stat %s", path)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(st.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, flatgfa.FlatGFA{}, errors.Wrapf(err, "gfafile: mmap %s", path)
	}
	mf := &MappedFile{f: f, data: data}
	return mf, View(data), nil
}

// MapNewFile creates path, sizes it to toc.Size() bytes, and maps it
// read-write, returning a GFAStore whose every Add writes directly into
// the mapped region. Suitable for emitting a freshly built graph straight
// to disk with no separate serialization pass.
func MapNewFile(path string, toc Toc) (*MappedFile, *flatgfa.GFAStore, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "gfafile: creating %s", path)
	}
	size := int(toc.Size())
	if err := f.Truncate(int64(size)); err != nil {
		f.Close()
		return nil, nil, errors.Wrapf(err, "gfafile: truncating %s to %d bytes", path, size)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, nil, errors.Wrapf(err, "gfafile: mmap %s", path)
	}
	mf := &MappedFile{f: f, data: data}
	return mf, Init(data, toc), nil
}

// MapFileMut opens an existing FlatGFA binary file read-write and maps it
// in place. The file's table of contents is left untouched, so callers may
// only append up to the spare capacity already reserved in each pool.
func MapFileMut(path string) (*MappedFile, *flatgfa.GFAStore, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "gfafile: opening %s", path)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, errors.Wrapf(err, "gfafile: stat %s", path)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(st.Size()), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, nil, errors.Wrapf(err, "gfafile: mmap %s", path)
	}
	toc, rest := readToc(data)
	mf := &MappedFile{f: f, data: data}
	return mf, initExisting(rest, toc), nil
}

// initExisting wraps an already-populated region's pools (sized per toc,
// with toc's lengths already live) without rewriting the table of
// contents, unlike Init which always starts from an all-empty TOC.
func initExisting(rest []byte, toc Toc) *flatgfa.GFAStore {
	var s flatgfa.GFAStore
	s.Header, rest = takeFixedStore[byte](rest, toc.Header)
	s.Segs, rest = takeFixedStore[flatgfa.Segment](rest, toc.Segs)
	s.Paths, rest = takeFixedStore[flatgfa.Path](rest, toc.Paths)
	s.Links, rest = takeFixedStore[flatgfa.Link](rest, toc.Links)
	s.Steps, rest = takeFixedStore[flatgfa.Handle](rest, toc.Steps)
	s.SeqData, rest = takeFixedStore[byte](rest, toc.SeqData)
	s.Overlaps, rest = takeFixedStore[gfapool.Span[flatgfa.AlignOp]](rest, toc.Overlaps)
	s.Alignment, rest = takeFixedStore[flatgfa.AlignOp](rest, toc.Alignment)
	s.NameData, rest = takeFixedStore[byte](rest, toc.NameData)
	s.OptionalData, rest = takeFixedStore[byte](rest, toc.OptionalData)
	s.LineOrder, _ = takeFixedStore[byte](rest, toc.LineOrder)
	return &s
}

// Close unmaps the file's backing memory and closes its descriptor. After
// Close, any FlatGFA or GFAStore built over this mapping is invalid.
func (mf *MappedFile) Close() error {
	if err := unix.Munmap(mf.data); err != nil {
		log.Error(errors.Wrap(err, "gfafile: munmap"))
	}
	return mf.f.Close()
}
