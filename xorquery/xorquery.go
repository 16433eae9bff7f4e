// Package xorquery answers batches of limit-constrained maximum-XOR
// queries over a shared candidate set.
package xorquery

import (
	"golang.org/x/exp/slices"

	"xormax/bits"
	"xormax/trie/bintrie"
)

// NoAnswer is the result of a query whose limit excludes every candidate.
const NoAnswer = -1

// Query asks for the maximum Value XOR c over all candidates c <= Limit.
type Query struct {
	Value bits.Key
	Limit bits.Key
}

// BatchMaxXor answers every query, preserving input query order. Both
// input slices are left untouched.
//
// Candidates and queries are processed in ascending limit order over one
// shared growing trie, so each candidate is inserted exactly once across
// the whole batch instead of once per query.
func BatchMaxXor(candidates []bits.Key, queries []Query) []int64 {
	cs := slices.Clone(candidates)
	slices.Sort(cs)

	order := make([]int, len(queries))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) bool {
		return queries[a].Limit < queries[b].Limit
	})

	results := make([]int64, len(queries))
	tree := bintrie.New()
	cursor := 0

	for _, qi := range order {
		q := queries[qi]
		for cursor < len(cs) && cs[cursor] <= q.Limit {
			tree.Insert(cs[cursor])
			cursor++
		}

		// MaxXor is only defined on a non-empty trie.
		if tree.Len() == 0 {
			results[qi] = NoAnswer
			continue
		}
		results[qi] = int64(tree.MaxXor(q.Value))
	}
	return results
}
