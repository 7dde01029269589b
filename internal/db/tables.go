package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"sortable/internal/model"
)

// ListTables returns the names of the user tables in the database.
func ListTables(db *sql.DB) ([]string, error) {
	query := `
		SELECT name
		FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating table names: %w", err)
	}
	return names, nil
}

// LoadTable reads every row of the named table.
func LoadTable(db *sql.DB, name string) (model.Table, error) {
	return LoadQuery(db, name, "SELECT * FROM "+quoteIdent(name))
}

// LoadQuery runs a SELECT and returns its result as text cells under the
// given table name.
func LoadQuery(db *sql.DB, name, query string) (model.Table, error) {
	rows, err := db.Query(query)
	if err != nil {
		return model.Table{}, fmt.Errorf("failed to query %s: %w", name, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return model.Table{}, fmt.Errorf("failed to read columns of %s: %w", name, err)
	}

	t := model.Table{Name: name, Headers: columns, Searchable: true}
	for rows.Next() {
		raw := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range raw {
			dest[i] = &raw[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return model.Table{}, fmt.Errorf("failed to scan row of %s: %w", name, err)
		}
		cells := make([]string, len(columns))
		for i, v := range raw {
			cells[i] = formatValue(v)
		}
		t.Rows = append(t.Rows, cells)
	}
	if err := rows.Err(); err != nil {
		return model.Table{}, fmt.Errorf("error iterating rows of %s: %w", name, err)
	}
	return t, nil
}

// LoadAll loads every user table in name order.
func LoadAll(db *sql.DB) ([]model.Table, error) {
	names, err := ListTables(db)
	if err != nil {
		return nil, err
	}
	tables := make([]model.Table, 0, len(names))
	for _, name := range names {
		t, err := LoadTable(db, name)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
