// Package media holds the records exchanged between the upstream providers and the addon protocol.
package media

// Category is the protocol-level content type.
type Category string

const (
	CategoryMovie  Category = "movie"
	CategorySeries Category = "series"
)

// Categories lists every category the addon serves, in manifest order.
func Categories() []Category {
	return []Category{CategoryMovie, CategorySeries}
}

// ParseCategory validates a raw protocol type.
func ParseCategory(raw string) (Category, bool) {
	switch c := Category(raw); c {
	case CategoryMovie, CategorySeries:
		return c, true
	default:
		return "", false
	}
}

// Upstream returns the path segment both providers use for the category: "tv" for series, "movie" otherwise.
func (c Category) Upstream() string {
	if c == CategorySeries {
		return "tv"
	}
	return "movie"
}

func (c Category) String() string {
	return string(c)
}
