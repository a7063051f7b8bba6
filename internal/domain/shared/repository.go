package shared

// Filter carries the common list-query options. Aggregate-specific filters
// embed it and add their own fields. Repositories skip pagination when Page
// or PageSize is unset.
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
}

// DefaultFilter returns the listing defaults: first page of 20, newest first.
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 20,
		OrderBy:  "created_at",
		OrderDir: "desc",
	}
}
