package service

import "orghub-backend/internal/repository"

// Declarative column configurations for paginated listings. These are the
// only columns that ever reach generated SQL; handlers pass them unchanged
// into the repositories.

var RequestFilterConfig = repository.FilterConfig{
	SortableColumns:   []string{"name", "email", "organization_name", "created_on"},
	SearchableColumns: []string{"name", "email", "organization_name"},
	DefaultSortBy:     "created_on",
	DefaultOrder:      repository.OrderDescending,
}

var UserFilterConfig = repository.FilterConfig{
	SortableColumns:   []string{"name", "email", "created_on", "role"},
	SearchableColumns: []string{"name"},
	DefaultSortBy:     "name",
	DefaultOrder:      repository.OrderAscending,
}

var ApplicationFilterConfig = repository.FilterConfig{
	SortableColumns:   []string{"name", "type", "created_on"},
	SearchableColumns: []string{"name", "short_description"},
	DefaultSortBy:     "name",
	DefaultOrder:      repository.OrderAscending,
}
