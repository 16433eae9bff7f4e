package bits

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/zeebo/xxh3"
)

const unsafe = false

// Width is the number of bits in a Key.
const Width = 32

// Key is a fixed-width integer key. Positions are counted from the most
// significant bit, so At(0) is the first branch taken during a trie descent.
type Key uint32

func (k Key) At(index uint32) bool {
	if !unsafe {
		if index >= Width {
			panic(fmt.Sprintf("index out of bounds index: %d >= width: %d", index, Width))
		}
	}
	return (k>>(Width-1-index))&1 != 0
}

// Data returns the big-endian encoding of the key, so byte order agrees
// with numeric order and with trie descent order.
func (k Key) Data() []byte {
	data := make([]byte, Width/8)
	binary.BigEndian.PutUint32(data, uint32(k))
	return data
}

func (k Key) String() string {
	var sb strings.Builder
	sb.Grow(Width)

	for i := uint32(0); i < Width; i++ {
		if k.At(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// ParseBinary parses a binary string of at most Width characters,
// most significant bit first.
func ParseBinary(text string) (Key, error) {
	if len(text) > Width {
		return 0, fmt.Errorf("length too big: %d", len(text))
	}

	var val uint32
	for _, r := range text {
		if r != '0' && r != '1' {
			return 0, fmt.Errorf("invalid string format: %q", text)
		}
		val <<= 1
		if r == '1' {
			val |= 1
		}
	}

	return Key(val), nil
}

func (k Key) Hash() uint64 {
	var data [Width / 8]byte
	binary.BigEndian.PutUint32(data[:], uint32(k))
	return xxh3.Hash(data[:])
}
