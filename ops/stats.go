package ops

import "github.com/grailbio/flatgfa"

// TOCSummary reports the live length of every pool in a FlatGFA, for the
// "toc" CLI subcommand.
type TOCSummary struct {
	Header       int
	Segs         int
	Paths        int
	Links        int
	Steps        int
	SeqData      int
	Overlaps     int
	Alignment    int
	NameData     int
	OptionalData int
	LineOrder    int
}

// BuildTOCSummary collects gfa's pool lengths into a TOCSummary.
func BuildTOCSummary(gfa flatgfa.FlatGFA) TOCSummary {
	return TOCSummary{
		Header:       gfa.Header.Len(),
		Segs:         gfa.Segs.Len(),
		Paths:        gfa.Paths.Len(),
		Links:        gfa.Links.Len(),
		Steps:        gfa.Steps.Len(),
		SeqData:      gfa.SeqData.Len(),
		Overlaps:     gfa.Overlaps.Len(),
		Alignment:    gfa.Alignment.Len(),
		NameData:     gfa.NameData.Len(),
		OptionalData: gfa.OptionalData.Len(),
		LineOrder:    gfa.LineOrder.Len(),
	}
}

// PathNames returns every path's name, in pool order.
func PathNames(gfa flatgfa.FlatGFA) []string {
	names := make([]string, gfa.Paths.Len())
	for i, path := range gfa.Paths.All() {
		names[i] = string(gfa.GetPathName(path))
	}
	return names
}

// StatsSummary is the "-S" basic-metrics row: total sequence length,
// node/edge/path counts, and total step count.
type StatsSummary struct {
	Length int
	Nodes  int
	Edges  int
	Paths  int
	Steps  int
}

// Stats computes gfa's StatsSummary.
func Stats(gfa flatgfa.FlatGFA) StatsSummary {
	steps := 0
	for _, path := range gfa.Paths.All() {
		steps += path.Steps.Len()
	}
	return StatsSummary{
		Length: gfa.SeqData.Len(),
		Nodes:  gfa.Segs.Len(),
		Edges:  gfa.Links.Len(),
		Paths:  gfa.Paths.Len(),
		Steps:  steps,
	}
}

// SelfLoops reports, for the "-L" stats mode, the total number of links
// whose two endpoints are the same segment, and the number of distinct
// segments that have at least one such link.
func SelfLoops(gfa flatgfa.FlatGFA) (total, unique int) {
	counts := make(map[int]int)
	for _, link := range gfa.Links.All() {
		if link.From.Segment() == link.To.Segment() {
			counts[link.From.Segment().Index()]++
			total++
		}
	}
	return total, len(counts)
}
