package catalog

import (
	"fmt"
	"strings"
)

// PropertyFilter narrows a listing query. Zero values mean "no filter";
// numeric bounds are pointers so 0 is a usable boundary.
type PropertyFilter struct {
	Status       string
	PropertyType string
	MinPrice     *int64
	MaxPrice     *int64
	Beds         *int
	Baths        *float64
}

// whereClause renders the filter as a WHERE fragment with positional
// arguments starting at $1. Returns an empty string for the zero filter.
func (f PropertyFilter) whereClause() (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(format string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(format, len(args)))
	}

	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.PropertyType != "" {
		add("property_type = $%d", f.PropertyType)
	}
	if f.MinPrice != nil {
		add("price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add("price <= $%d", *f.MaxPrice)
	}
	if f.Beds != nil {
		add("beds >= $%d", *f.Beds)
	}
	if f.Baths != nil {
		add("baths >= $%d", *f.Baths)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
