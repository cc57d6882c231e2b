// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "sort"

// Result is one row of the ranked results
type Result struct {
	Rank       int
	Name       string
	Votes      int
	PhotoPath  string
	SymbolPath string
	Index      int // registration slot, used to look up images
}

// RankCandidates sorts candidates by descending vote count.
// Equal counts keep registration order.
func RankCandidates(candidates []Candidate, tally map[string]int) []Result {
	results := make([]Result, len(candidates))
	for i, c := range candidates {
		results[i] = Result{
			Name:       c.Name,
			Votes:      tally[c.Name],
			PhotoPath:  c.PhotoPath,
			SymbolPath: c.SymbolPath,
			Index:      i,
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Votes > results[j].Votes
	})

	for i := range results {
		results[i].Rank = i + 1
	}
	return results
}
