package packed

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/hillbig/rsdic"
	"golang.org/x/exp/slices"

	"xormax/bits"
	"xormax/errutil"
	"xormax/utils"
)

// PackedTrie is an immutable binary trie laid out level by level in
// rank/select bit vectors. Each level stores two child-presence bits per
// node, nodes in key order; a child's index at the next level is the rank
// of its presence bit within the level.
//
// The structure is built once by Pack and never mutated, so any number of
// goroutines may query it concurrently.
type PackedTrie struct {
	levels [bits.Width]*rsdic.RSDic
	size   int
}

// Pack builds a trie from keys. The input is copied, sorted and
// deduplicated; the caller's slice is left untouched.
func Pack(keys []bits.Key) *PackedTrie {
	ks := slices.Clone(keys)
	slices.Sort(ks)
	ks = slices.Compact(ks)

	p := &PackedTrie{size: len(ks)}
	if len(ks) == 0 {
		return p
	}

	for i := uint32(0); i < bits.Width; i++ {
		// Nodes at level i are the distinct i-bit prefixes, in sorted
		// order. A shift by Width yields 0, so level 0 is the single root.
		shift := bits.Width - i
		bv := rsdic.New()

		j := 0
		for j < len(ks) {
			prefix := uint32(ks[j]) >> shift
			var has [2]bool
			for j < len(ks) && uint32(ks[j])>>shift == prefix {
				b := (uint32(ks[j]) >> (shift - 1)) & 1
				has[b] = true
				j++
			}
			bv.PushBack(has[0])
			bv.PushBack(has[1])
		}
		p.levels[i] = bv
	}
	return p
}

// Len returns the number of distinct keys packed.
func (p *PackedTrie) Len() int {
	return p.size
}

// Contains reports whether k is in the packed key set.
func (p *PackedTrie) Contains(k bits.Key) bool {
	if p.size == 0 {
		return false
	}

	idx := uint64(0)
	for i := uint32(0); i < bits.Width; i++ {
		bv := p.levels[i]
		b := (uint32(k) >> (bits.Width - 1 - i)) & 1
		pos := 2*idx + uint64(b)
		if !bv.Bit(pos) {
			return false
		}
		idx = bv.Rank(pos, true)
	}
	return true
}

// MaxXor returns the maximum value of k XOR x over all packed x, with the
// same greedy descent and non-empty precondition as the pointer trie.
func (p *PackedTrie) MaxXor(k bits.Key) bits.Key {
	errutil.BugOn(p.size == 0, "MaxXor on an empty packed trie")

	idx := uint64(0)
	var result uint32
	for i := uint32(0); i < bits.Width; i++ {
		bv := p.levels[i]
		b := (uint32(k) >> (bits.Width - 1 - i)) & 1

		pos := 2*idx + uint64(1-b)
		if bv.Bit(pos) {
			result |= 1 << (bits.Width - 1 - i)
		} else {
			pos = 2*idx + uint64(b)
		}
		idx = bv.Rank(pos, true)
	}
	return bits.Key(result)
}

// MemReport returns the memory footprint of the packed trie, level by level.
func (p *PackedTrie) MemReport() utils.MemReport {
	report := utils.MemReport{Name: "packed"}
	for i, bv := range p.levels {
		if bv == nil {
			continue
		}
		// RSDic doesn't expose its allocated size, approximate based on bits stored.
		levelBytes := int(bv.Num()/8) + 64
		report.Children = append(report.Children, utils.MemReport{
			Name:       fmt.Sprintf("level %d", i),
			TotalBytes: levelBytes,
		})
		report.TotalBytes += levelBytes
	}
	return report
}

func (p *PackedTrie) String() string {
	var sb strings.Builder
	sb.WriteString("PackedTrie:\n")
	sb.WriteString(fmt.Sprintf("| width: %d\n", bits.Width))
	sb.WriteString(fmt.Sprintf("| size: %s\n", humanize.Comma(int64(p.size))))
	nodes := 0
	for _, bv := range p.levels {
		if bv != nil {
			nodes += int(bv.Num() / 2)
		}
	}
	sb.WriteString(fmt.Sprintf("| nodes: %s\n", humanize.Comma(int64(nodes))))
	return sb.String()
}
