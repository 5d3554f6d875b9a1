package repository

type OrderDirection string

const (
	OrderAscending  OrderDirection = "ASC"
	OrderDescending OrderDirection = "DESC"
)

// Filters carries the caller-supplied pagination, sort and search values.
type Filters struct {
	Page     int32
	PageSize int32
	SortBy   string
	Order    OrderDirection
	Search   string
}

// FilterConfig is the immutable per-entity column configuration that drives
// query shaping. Only columns named here ever reach the generated SQL, so a
// config doubles as the sort/search allowlist.
type FilterConfig struct {
	SortableColumns   []string
	SearchableColumns []string
	DefaultSortBy     string
	DefaultOrder      OrderDirection
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// SortColumn resolves the requested sort column against the allowlist,
// falling back to the configured default.
func (c FilterConfig) SortColumn(f Filters) string {
	for _, col := range c.SortableColumns {
		if col == f.SortBy {
			return col
		}
	}
	return c.DefaultSortBy
}

// SortOrder resolves the requested direction, falling back to the default.
func (c FilterConfig) SortOrder(f Filters) OrderDirection {
	if f.Order == OrderAscending || f.Order == OrderDescending {
		return f.Order
	}
	if c.DefaultOrder != "" {
		return c.DefaultOrder
	}
	return OrderAscending
}

// Limit returns the page size clamped to sane bounds.
func (f Filters) Limit() int32 {
	if f.PageSize <= 0 {
		return defaultPageSize
	}
	if f.PageSize > maxPageSize {
		return maxPageSize
	}
	return f.PageSize
}

// Offset returns the row offset for the requested page (1-based).
func (f Filters) Offset() int32 {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.Limit()
}
