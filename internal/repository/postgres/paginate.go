package postgres

import (
	"fmt"
	"strings"

	"orghub-backend/internal/repository"
)

// orderLimitClause renders ORDER BY / LIMIT / OFFSET from the filter config.
// Column and direction both come from the config's allowlist, never from the
// raw request, so interpolation is safe here.
func orderLimitClause(cfg repository.FilterConfig, f repository.Filters) string {
	return fmt.Sprintf(" ORDER BY %s %s LIMIT %d OFFSET %d",
		cfg.SortColumn(f), cfg.SortOrder(f), f.Limit(), f.Offset())
}

// searchClause renders an "AND (col ILIKE $n OR ...)" fragment for the
// configured searchable columns. argIndex is the positional index the search
// argument will occupy. Returns the empty string when there is nothing to
// search.
func searchClause(cfg repository.FilterConfig, f repository.Filters, argIndex int) (string, []interface{}) {
	if f.Search == "" || len(cfg.SearchableColumns) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(cfg.SearchableColumns))
	for _, col := range cfg.SearchableColumns {
		parts = append(parts, fmt.Sprintf("%s ILIKE $%d", col, argIndex))
	}
	return " AND (" + strings.Join(parts, " OR ") + ")", []interface{}{"%" + f.Search + "%"}
}
