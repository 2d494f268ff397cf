package entity

type Role string

const (
	RoleMember    Role = "member"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

const (
	UserFirstNameMaxLen = 20
	UserLastNameMaxLen  = 20
	UserUsernameMaxLen  = 30
	UserPasswordMaxLen  = 30
)

// AdUser owns zero or more Ads. LocationIDs keeps the association order,
// which is also the order location names appear in responses.
type AdUser struct {
	ID          int64
	FirstName   string
	LastName    *string
	Username    string
	Password    string
	Role        Role
	Age         uint16
	LocationIDs []int64
}

func (u *AdUser) Validate() error {
	v := ValidationErrors{}
	checkRequired(v, "first_name", u.FirstName)
	checkMaxLen(v, "first_name", u.FirstName, UserFirstNameMaxLen)
	if u.LastName != nil {
		checkMaxLen(v, "last_name", *u.LastName, UserLastNameMaxLen)
	}
	checkRequired(v, "username", u.Username)
	checkMaxLen(v, "username", u.Username, UserUsernameMaxLen)
	checkSlug(v, "username", u.Username)
	checkRequired(v, "password", u.Password)
	checkMaxLen(v, "password", u.Password, UserPasswordMaxLen)
	checkSlug(v, "password", u.Password)
	if !u.Role.Valid() {
		v.add("role", "value is not a valid choice")
	}
	return v.orNil()
}
