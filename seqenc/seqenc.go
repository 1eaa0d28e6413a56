// Package seqenc is an experimental, optional codec for packing ASCII
// nucleotide sequences (as returned by flatgfa.FlatGFA.GetSeq) into 2 bits
// per base. It never touches the core seq_data pool, which always stores
// raw ASCII: this package is a derived export transform only.
package seqenc

import "github.com/pkg/errors"

// base2Table maps an ASCII base to its 2-bit code. Bases outside
// {A,C,G,T} (upper or lower case) have no 2-bit representation.
var base2Table = [256]int8{}

var base2Inverse = [4]byte{'A', 'C', 'G', 'T'}

func init() {
	for i := range base2Table {
		base2Table[i] = -1
	}
	base2Table['A'], base2Table['a'] = 0, 0
	base2Table['C'], base2Table['c'] = 1, 1
	base2Table['G'], base2Table['g'] = 2, 2
	base2Table['T'], base2Table['t'] = 3, 3
}

// Packed is a 2-bit-per-base encoding of an ASCII nucleotide sequence,
// packed four bases to a byte, lowest-order bits first.
type Packed struct {
	data []byte
	n    int
}

// Len returns the number of bases packed.
func (p Packed) Len() int {
	return p.n
}

// Bytes returns the packed byte representation: ceil(n/4) bytes.
func (p Packed) Bytes() []byte {
	return p.data
}

// Pack encodes seq into a 2-bit-per-base Packed value. It returns an
// error if seq contains a byte other than A/C/G/T in either case.
func Pack(seq []byte) (Packed, error) {
	out := make([]byte, (len(seq)+3)/4)
	for i, b := range seq {
		code := base2Table[b]
		if code < 0 {
			return Packed{}, errors.Errorf("seqenc: base %q at offset %d is not in {A,C,G,T}", b, i)
		}
		out[i/4] |= byte(code) << uint((i%4)*2)
	}
	return Packed{data: out, n: len(seq)}, nil
}

// Unpack decodes p back into an ASCII A/C/G/T byte slice.
func Unpack(p Packed) []byte {
	out := make([]byte, p.n)
	for i := range out {
		code := (p.data[i/4] >> uint((i%4)*2)) & 3
		out[i] = base2Inverse[code]
	}
	return out
}
