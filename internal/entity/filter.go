package entity

// AdFilter carries the optional list-query parameters. A zero-value field
// contributes no constraint; fields present are combined with logical AND,
// so applying them in any order yields the same result set.
type AdFilter struct {
	CategoryIDs []int64
	Text        string
	Location    string
	PriceFrom   *int64
	PriceTo     *int64
}

func (f AdFilter) Empty() bool {
	return len(f.CategoryIDs) == 0 && f.Text == "" && f.Location == "" &&
		f.PriceFrom == nil && f.PriceTo == nil
}
