// Package level maps reputation scores onto an ordered table of named
// levels. The calculator is pure: no I/O, no mutation after construction.
package level

import "sort"

// Definition is one entry of the ordered level table. A level owns the
// closed-open score range [MinScore, next.MinScore); the last level is
// unbounded above.
type Definition struct {
	Name       string
	MinScore   int64
	Privileges []string
}

// Calculator resolves scores against an immutable level table.
type Calculator struct {
	levels []Definition
}

// NewCalculator builds a calculator from the configured table. The table
// is sorted by minimum score; an empty table falls back to a single
// zero-threshold level so lookups never fail.
func NewCalculator(levels []Definition) *Calculator {
	table := make([]Definition, len(levels))
	copy(table, levels)
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].MinScore < table[j].MinScore
	})

	if len(table) == 0 {
		table = []Definition{{Name: "Newcomer", MinScore: 0}}
	}

	return &Calculator{levels: table}
}

// ForScore returns the level containing score and its ordinal. Scores
// below the lowest threshold resolve to the lowest level; this is the
// misconfiguration fallback, not an error.
func (c *Calculator) ForScore(score int64) (Definition, int) {
	current := 0
	for i, l := range c.levels {
		if score >= l.MinScore {
			current = i
		} else {
			break
		}
	}
	return c.levels[current], current
}

// Next returns the level above the given ordinal, or nil at the ceiling.
func (c *Calculator) Next(ordinal int) *Definition {
	if ordinal < 0 || ordinal+1 >= len(c.levels) {
		return nil
	}
	next := c.levels[ordinal+1]
	return &next
}

// Progress returns the fraction of the way from the current level's
// threshold to the next one. The second return is false at the ceiling,
// where the fraction is undefined.
func (c *Calculator) Progress(score int64) (float64, bool) {
	current, ordinal := c.ForScore(score)
	next := c.Next(ordinal)
	if next == nil {
		return 0, false
	}

	span := next.MinScore - current.MinScore
	if span <= 0 {
		return 0, false
	}

	done := score - current.MinScore
	if done < 0 {
		done = 0
	}
	return float64(done) / float64(span), true
}

// Levels returns a copy of the ordered table.
func (c *Calculator) Levels() []Definition {
	out := make([]Definition, len(c.levels))
	copy(out, c.levels)
	return out
}
