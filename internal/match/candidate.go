package match

import (
	"sort"
)

// DefaultMinScore is the lowest similarity worth suggesting.
const DefaultMinScore = 0.5

// Candidate is a name scored against a target.
type Candidate struct {
	Name  string
	Score float64
}

// Candidates is ordered best first.
type Candidates []Candidate

// Rank scores every name against target. Ties are broken alphabetically.
func Rank(target string, names []string) Candidates {
	out := make(Candidates, 0, len(names))
	for _, name := range names {
		out = append(out, Candidate{Name: name, Score: NameSimilarity(target, name)})
	}

	sort.Sort(out)

	return out
}

// Suggest returns up to n names scoring at least DefaultMinScore.
func Suggest(target string, names []string, n int) []string {
	return Rank(target, names).AboveThreshold(DefaultMinScore).Top(n).Names()
}

// Len implements sort.Interface.
func (c Candidates) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c Candidates) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c Candidates) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the first n candidates.
func (c Candidates) Top(n int) Candidates {
	if n < 0 {
		n = 0
	}

	if n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold keeps candidates scoring at least threshold.
func (c Candidates) AboveThreshold(threshold float64) Candidates {
	var out Candidates

	for _, cand := range c {
		if cand.Score >= threshold {
			out = append(out, cand)
		}
	}

	return out
}

// Names returns the candidate names in order.
func (c Candidates) Names() []string {
	if len(c) == 0 {
		return nil
	}

	names := make([]string, len(c))
	for i, cand := range c {
		names[i] = cand.Name
	}

	return names
}
