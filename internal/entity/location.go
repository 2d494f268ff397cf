package entity

const LocationNameMaxLen = 200

type Location struct {
	ID   int64
	Name *string
	Lat  *float64
	Lng  *float64
}

func (l *Location) Validate() error {
	v := ValidationErrors{}
	if l.Name != nil {
		checkMaxLen(v, "name", *l.Name, LocationNameMaxLen)
	}
	return v.orNil()
}
