package entity

const CategoryNameMaxLen = 20

type Category struct {
	ID       int64
	Name     string
	IsActive bool
}

func (c *Category) Validate() error {
	v := ValidationErrors{}
	checkRequired(v, "name", c.Name)
	checkMaxLen(v, "name", c.Name, CategoryNameMaxLen)
	return v.orNil()
}
