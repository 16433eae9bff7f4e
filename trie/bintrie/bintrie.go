package bintrie

import (
	"fmt"
	"os"
	"strings"
	"unsafe"

	"github.com/dustin/go-humanize"

	"xormax/bits"
	"xormax/errutil"
	"xormax/utils"
)

var debug bool

func init() {
	if os.Getenv("DEBUG") == "1" {
		debug = true
	} else {
		debug = false
	}
}

// Trie is a fixed-width binary trie over integer keys. Every inserted key
// corresponds to exactly one full-depth root-to-leaf path, traversed most
// significant bit first, so keys sharing a bit prefix share path nodes.
//
// There is no removal: the structure grows monotonically. Concurrent
// lookups are safe; concurrent inserts require external synchronization.
type Trie struct {
	root  *node
	width uint32
	size  int
	nodes int
	fp    uint64
}

// New creates an empty trie over full-width (32-bit) keys.
func New() *Trie {
	return NewWithWidth(bits.Width)
}

// NewWithWidth creates an empty trie over width-bit keys. Inserted keys
// must fit in width bits.
func NewWithWidth(width uint32) *Trie {
	if width == 0 || width > bits.Width {
		panic(fmt.Sprintf("illegal trie width: %d", width))
	}
	return &Trie{
		root:  &node{},
		width: width,
		nodes: 1,
	}
}

// Len returns the number of distinct keys inserted.
func (t *Trie) Len() int {
	return t.size
}

// Nodes returns the number of allocated nodes, root included.
func (t *Trie) Nodes() int {
	return t.nodes
}

func (t *Trie) Width() uint32 {
	return t.width
}

// Insert adds k to the trie, allocating missing path nodes, and reports
// whether k was not already present. Re-inserting an existing key is a
// no-op besides the traversal.
func (t *Trie) Insert(k bits.Key) bool {
	errutil.BugOn(t.width < bits.Width && uint32(k)>>t.width != 0,
		"key %v does not fit in width %d", k, t.width)

	n := t.root
	created := false
	for i := t.width; i > 0; i-- {
		b := (uint32(k) >> (i - 1)) & 1
		if n.children[b] == nil {
			n.children[b] = &node{}
			t.nodes++
			created = true
		}
		n = n.children[b]
	}

	// All paths have full depth, so the key was present iff the whole
	// path already existed.
	if created {
		t.size++
		t.fp ^= k.Hash()
	}
	t.checkTrie()
	return created
}

// Contains reports whether k has been inserted.
func (t *Trie) Contains(k bits.Key) bool {
	n := t.root
	for i := t.width; i > 0; i-- {
		b := (uint32(k) >> (i - 1)) & 1
		n = n.children[b]
		if n == nil {
			return false
		}
	}
	return true
}

// MaxXor returns the maximum value of k XOR x over all inserted x.
//
// The trie must be non-empty. Higher bit positions dominate the result, so
// taking the opposite-bit child whenever one exists is optimal; when it
// does not, the same-bit child is forced, since every path on a non-empty
// trie has full depth.
func (t *Trie) MaxXor(k bits.Key) bits.Key {
	errutil.BugOn(t.size == 0, "MaxXor on an empty trie")

	n := t.root
	var result uint32
	for i := t.width; i > 0; i-- {
		b := (uint32(k) >> (i - 1)) & 1
		if opposite := n.children[1-b]; opposite != nil {
			result |= 1 << (i - 1)
			n = opposite
		} else {
			n = n.children[b]
		}
	}
	return bits.Key(result)
}

// Fingerprint returns an order-independent digest of the inserted key set:
// tries built from the same keys in any order have equal fingerprints.
func (t *Trie) Fingerprint() uint64 {
	return t.fp
}

// MemReport returns the memory footprint of the trie.
func (t *Trie) MemReport() utils.MemReport {
	nodeBytes := int(unsafe.Sizeof(node{}))
	return utils.MemReport{
		Name:       "bintrie",
		TotalBytes: int(unsafe.Sizeof(*t)) + t.nodes*nodeBytes,
		Children: []utils.MemReport{
			{Name: "nodes", TotalBytes: t.nodes * nodeBytes},
		},
	}
}

func (t *Trie) String() string {
	var sb strings.Builder
	sb.WriteString("BinTrie:\n")
	sb.WriteString(fmt.Sprintf("| width: %d\n", t.width))
	sb.WriteString(fmt.Sprintf("| size: %s\n", humanize.Comma(int64(t.size))))
	sb.WriteString(fmt.Sprintf("| nodes: %s\n", humanize.Comma(int64(t.nodes))))
	return sb.String()
}

func (t *Trie) checkTrie() {
	if !debug {
		return
	}
	nodeCnt, leafCnt := t.checkTrieRec(t.root, 0)
	if nodeCnt != t.nodes {
		errutil.Bug("node count mismatch: %d != %d", nodeCnt, t.nodes)
	}
	if leafCnt != t.size {
		errutil.Bug("leaf count mismatch: %d != %d", leafCnt, t.size)
	}
}

func (t *Trie) checkTrieRec(n *node, depth uint32) (nodeCnt, leafCnt int) {
	if n == nil {
		return 0, 0
	}

	if n.isLeaf() {
		// The root is a leaf only while the trie is empty.
		if depth != t.width && depth != 0 {
			errutil.Bug("leaf at depth %d, width %d", depth, t.width)
		}
		if depth == t.width {
			leafCnt = 1
		}
	}

	l0, f0 := t.checkTrieRec(n.children[0], depth+1)
	l1, f1 := t.checkTrieRec(n.children[1], depth+1)
	return 1 + l0 + l1, leafCnt + f0 + f1
}
