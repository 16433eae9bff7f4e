package packed

import (
	"math/rand"
	"testing"

	"github.com/hillbig/rsdic"
	trie "github.com/siongui/go-succinct-data-structure-trie"

	"xormax/bits"
)

// Rank dominates the packed descent; these compare the rsdic backend
// against the reference rank directory at the sizes a level reaches.

func benchKeys(n int) []bits.Key {
	r := rand.New(rand.NewSource(42))
	keys := make([]bits.Key, n)
	for i := range keys {
		keys[i] = bits.Key(r.Uint32())
	}
	return keys
}

func BenchmarkPack_100k(b *testing.B) {
	keys := benchKeys(100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Pack(keys)
	}
}

func BenchmarkPacked_MaxXor_100k(b *testing.B) {
	keys := benchKeys(100_000)
	p := Pack(keys)
	mask := len(keys) - 1

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.MaxXor(keys[i&mask])
	}
}

func BenchmarkPacked_Contains_100k(b *testing.B) {
	keys := benchKeys(100_000)
	p := Pack(keys)
	mask := len(keys) - 1

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Contains(keys[i&mask])
	}
}

func BenchmarkRSDic_Rank_100k(b *testing.B) { benchmarkRSDicRank(b, 100_000) }
func BenchmarkRSDic_Rank_1M(b *testing.B)   { benchmarkRSDicRank(b, 1_000_000) }

func benchmarkRSDicRank(b *testing.B, size int) {
	r := rand.New(rand.NewSource(42))
	rs := rsdic.New()
	for i := 0; i < size; i++ {
		rs.PushBack(r.Intn(2) == 1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rs.Rank(uint64(i%size), true)
	}
}

func BenchmarkRankDirectory_Rank_100k(b *testing.B) { benchmarkRankDirectoryRank(b, 100_000) }
func BenchmarkRankDirectory_Rank_1M(b *testing.B)   { benchmarkRankDirectoryRank(b, 1_000_000) }

func benchmarkRankDirectoryRank(b *testing.B, approxBits int) {
	data := generateRandomBase64Data(approxBits)
	numBits := uint(len(data) * 6)

	rd := trie.CreateRankDirectory(data, numBits, 32*32, 32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rd.Rank(1, uint(i%int(numBits)))
	}
}

func generateRandomBase64Data(approxBits int) string {
	charsNeeded := (approxBits + 5) / 6
	const base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	result := make([]byte, charsNeeded)
	for i := 0; i < charsNeeded; i++ {
		result[i] = base64Chars[rand.Intn(len(base64Chars))]
	}
	return string(result)
}
