package mongo

import "github.com/Glassyflute/adboard/internal/entity"

type categoryDocument struct {
	ID       int64  `bson:"_id"`
	Name     string `bson:"name"`
	IsActive bool   `bson:"is_active"`
}

func toCategoryDocument(c *entity.Category) *categoryDocument {
	return &categoryDocument{ID: c.ID, Name: c.Name, IsActive: c.IsActive}
}

func toCategoryEntity(doc *categoryDocument) *entity.Category {
	return &entity.Category{ID: doc.ID, Name: doc.Name, IsActive: doc.IsActive}
}

type locationDocument struct {
	ID   int64    `bson:"_id"`
	Name *string  `bson:"name"`
	Lat  *float64 `bson:"lat"`
	Lng  *float64 `bson:"lng"`
}

func toLocationDocument(l *entity.Location) *locationDocument {
	return &locationDocument{ID: l.ID, Name: l.Name, Lat: l.Lat, Lng: l.Lng}
}

func toLocationEntity(doc *locationDocument) *entity.Location {
	return &entity.Location{ID: doc.ID, Name: doc.Name, Lat: doc.Lat, Lng: doc.Lng}
}

type userDocument struct {
	ID          int64   `bson:"_id"`
	FirstName   string  `bson:"first_name"`
	LastName    *string `bson:"last_name"`
	Username    string  `bson:"username"`
	Password    string  `bson:"password"`
	Role        string  `bson:"role"`
	Age         uint16  `bson:"age"`
	LocationIDs []int64 `bson:"location_ids"`
}

func toUserDocument(u *entity.AdUser) *userDocument {
	return &userDocument{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Username:    u.Username,
		Password:    u.Password,
		Role:        string(u.Role),
		Age:         u.Age,
		LocationIDs: u.LocationIDs,
	}
}

func toUserEntity(doc *userDocument) *entity.AdUser {
	return &entity.AdUser{
		ID:          doc.ID,
		FirstName:   doc.FirstName,
		LastName:    doc.LastName,
		Username:    doc.Username,
		Password:    doc.Password,
		Role:        entity.Role(doc.Role),
		Age:         doc.Age,
		LocationIDs: doc.LocationIDs,
	}
}

type adDocument struct {
	ID          int64   `bson:"_id"`
	Name        string  `bson:"name"`
	Price       int64   `bson:"price"`
	Description *string `bson:"description"`
	ImageURL    *string `bson:"image_url"`
	IsPublished bool    `bson:"is_published"`
	AuthorID    *int64  `bson:"author_id"`
	CategoryID  int64   `bson:"category_id"`
}

func toAdDocument(a *entity.Ad) *adDocument {
	return &adDocument{
		ID:          a.ID,
		Name:        a.Name,
		Price:       a.Price,
		Description: a.Description,
		ImageURL:    a.ImageURL,
		IsPublished: a.IsPublished,
		AuthorID:    a.AuthorID,
		CategoryID:  a.CategoryID,
	}
}

func toAdEntity(doc *adDocument) *entity.Ad {
	return &entity.Ad{
		ID:          doc.ID,
		Name:        doc.Name,
		Price:       doc.Price,
		Description: doc.Description,
		ImageURL:    doc.ImageURL,
		IsPublished: doc.IsPublished,
		AuthorID:    doc.AuthorID,
		CategoryID:  doc.CategoryID,
	}
}
