package table

// capped narrows the upper bound of a level source
type capped struct {
	Source
	upper int
}

// Capped returns a view of src whose upper bound is at most upper.
// Costs are read from src unchanged.
func Capped(src Source, upper int) Source {
	lower, u := src.Bounds()
	if upper >= u || upper <= lower {
		return src
	}
	return capped{Source: src, upper: upper}
}

func (c capped) Bounds() (int, int) {
	lower, _ := c.Source.Bounds()
	return lower, c.upper
}
