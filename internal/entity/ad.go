package entity

import "math"

const (
	AdNameMaxLen        = 200
	AdDescriptionMaxLen = 1000
	AdPriceMax          = math.MaxUint32
)

// Ad is a single classified listing. AuthorID is nullable; CategoryID is
// required and must resolve to an existing Category.
type Ad struct {
	ID          int64
	Name        string
	Price       int64
	Description *string
	ImageURL    *string
	IsPublished bool
	AuthorID    *int64
	CategoryID  int64
}

func (a *Ad) Validate() error {
	v := ValidationErrors{}
	checkRequired(v, "name", a.Name)
	checkMaxLen(v, "name", a.Name, AdNameMaxLen)
	if a.Price < 0 {
		v.add("price", "ensure this value is greater than or equal to 0")
	}
	if a.Price > AdPriceMax {
		v.add("price", "ensure this value is less than or equal to 4294967295")
	}
	if a.Description != nil {
		checkMaxLen(v, "description", *a.Description, AdDescriptionMaxLen)
	}
	if a.CategoryID == 0 {
		v.add("category", "this field cannot be null")
	}
	return v.orNil()
}
