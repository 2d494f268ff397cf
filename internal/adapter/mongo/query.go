package mongo

import (
	"regexp"

	"github.com/Glassyflute/adboard/internal/entity"
	"go.mongodb.org/mongo-driver/bson"
)

// containsInsensitive matches documents whose field contains the literal
// substring, case-insensitively. The substring is quoted so user input is
// never interpreted as a regular expression.
func containsInsensitive(substr string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(substr), "$options": "i"}
}

// adQuery translates the ad-level filter parameters into one composed
// predicate. An omitted parameter contributes no constraint, so an empty
// filter yields the match-all predicate. The location parameter is not
// handled here: it constrains the author set and is resolved against the
// locations and users collections before the ads query runs.
func adQuery(filter entity.AdFilter) bson.M {
	query := bson.M{}
	if len(filter.CategoryIDs) > 0 {
		query["category_id"] = bson.M{"$in": filter.CategoryIDs}
	}
	if filter.Text != "" {
		query["name"] = containsInsensitive(filter.Text)
	}
	price := bson.M{}
	if filter.PriceFrom != nil {
		price["$gte"] = *filter.PriceFrom
	}
	if filter.PriceTo != nil {
		price["$lte"] = *filter.PriceTo
	}
	if len(price) > 0 {
		query["price"] = price
	}
	return query
}

// adSort is the fixed list order: price descending, ties by id ascending
// for a deterministic sequence.
func adSort() bson.D {
	return bson.D{{Key: "price", Value: -1}, {Key: "_id", Value: 1}}
}
