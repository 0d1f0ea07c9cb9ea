package sqlite

import (
	"database/sql"
	"fmt"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTaskHours scans a single task_hours row
func ScanTaskHours(scanner Scanner) (*TaskHours, error) {
	row := &TaskHours{}
	var updatedAt sql.NullString

	if err := scanner.Scan(&row.TaskName, &row.Hours, &updatedAt); err != nil {
		return nil, err
	}

	if updatedAt.Valid && updatedAt.String != "" {
		t, err := ParseTimeFromDB(updatedAt.String)
		if err != nil {
			return nil, fmt.Errorf("task %q has malformed updated_at %q: %w", row.TaskName, updatedAt.String, err)
		}
		row.UpdatedAt = t
	}

	return row, nil
}

// ScanAllTaskHours scans every task_hours row
func ScanAllTaskHours(rows Rows) ([]*TaskHours, error) {
	var out []*TaskHours
	for rows.Next() {
		row, err := ScanTaskHours(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
