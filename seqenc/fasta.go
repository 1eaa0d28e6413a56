package seqenc

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// PackedFasta holds every sequence from a FASTA file, packed 2 bits per
// base, keyed by sequence name (the text after '>' up to the first
// space).
type PackedFasta struct {
	seqs     map[string]Packed
	seqNames []string
}

// Get returns seqName's packed sequence.
func (f *PackedFasta) Get(seqName string) (Packed, bool) {
	p, ok := f.seqs[seqName]
	return p, ok
}

// SeqNames returns every sequence name, in FASTA file order.
func (f *PackedFasta) SeqNames() []string {
	return f.seqNames
}

// ReadFasta parses a FASTA file and packs every sequence with Pack. It
// returns an error if any sequence contains a base outside A/C/G/T.
func ReadFasta(r io.Reader) (*PackedFasta, error) {
	f := &PackedFasta{seqs: make(map[string]Packed)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, 64*1024*1024)

	var seqName string
	var seq strings.Builder
	flush := func() error {
		if seqName == "" {
			return nil
		}
		p, err := Pack([]byte(seq.String()))
		if err != nil {
			return errors.Wrapf(err, "sequence %s", seqName)
		}
		f.seqs[seqName] = p
		f.seqNames = append(f.seqNames, seqName)
		seq.Reset()
		return nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return nil, err
			}
			seqName = strings.Split(line[1:], " ")[0]
			continue
		}
		seq.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "seqenc: reading FASTA")
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return f, nil
}
