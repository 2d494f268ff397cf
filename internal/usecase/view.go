package usecase

// Output shapes. Every key is always present; null stands in for "absent".
// location_names is always a list, empty when the author is null.

type AdView struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Price         int64    `json:"price"`
	Description   *string  `json:"description"`
	Image         *string  `json:"image"`
	IsPublished   bool     `json:"is_published"`
	Author        *string  `json:"author"`
	Category      string   `json:"category"`
	LocationNames []string `json:"location_names"`
}

// AdImageView is the reduced shape returned by the image upload endpoint.
type AdImageView struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image"`
}

type CategoryView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryStatusView is returned by category update, which echoes is_active.
type CategoryStatusView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

type UserView struct {
	ID            int64    `json:"id"`
	FirstName     string   `json:"first_name"`
	LastName      *string  `json:"last_name"`
	Username      string   `json:"username"`
	Role          string   `json:"role"`
	Age           uint16   `json:"age"`
	LocationNames []string `json:"location_names"`
}

// UserListView adds the published-ad count carried only by the list endpoint.
type UserListView struct {
	UserView
	TotalAds int64 `json:"total_ads"`
}

type AdPage struct {
	Items    []AdView `json:"items"`
	NumPages int      `json:"num_pages"`
	Total    int64    `json:"total"`
}

type CategoryPage struct {
	Items    []CategoryView `json:"items"`
	NumPages int            `json:"num_pages"`
	Total    int64          `json:"total"`
}

type UserPage struct {
	Items    []UserListView `json:"items"`
	NumPages int            `json:"num_pages"`
	Total    int64          `json:"total"`
}
