package http

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Glassyflute/adboard/internal/entity"
)

// ErrInvalidParameter reports a query parameter that must be numeric but is
// not. It maps to a 400 response instead of being silently dropped.
var ErrInvalidParameter = errors.New("invalid query parameter")

// parseAdFilter reads the optional ad list parameters: cat (repeatable),
// text, loc, price_from, price_to. Absent parameters contribute no
// constraint.
func parseAdFilter(q url.Values) (entity.AdFilter, error) {
	filter := entity.AdFilter{}

	for _, raw := range q["cat"] {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return entity.AdFilter{}, fmt.Errorf("%w: cat must be an integer, got %q", ErrInvalidParameter, raw)
		}
		filter.CategoryIDs = append(filter.CategoryIDs, id)
	}
	filter.Text = q.Get("text")
	filter.Location = q.Get("loc")

	if raw := q.Get("price_from"); raw != "" {
		price, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return entity.AdFilter{}, fmt.Errorf("%w: price_from must be an integer, got %q", ErrInvalidParameter, raw)
		}
		filter.PriceFrom = &price
	}
	if raw := q.Get("price_to"); raw != "" {
		price, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return entity.AdFilter{}, fmt.Errorf("%w: price_to must be an integer, got %q", ErrInvalidParameter, raw)
		}
		filter.PriceTo = &price
	}
	return filter, nil
}

// parsePage reads the 1-based page number. A missing or malformed value
// falls back to page 1; out-of-range pages are clamped downstream.
func parsePage(q url.Values) int {
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil {
		return 1
	}
	return page
}
