package sqlite

import (
	"database/sql"
	"time"
)

// TaskHours is one row of the task_hours table.
type TaskHours struct {
	TaskName  string
	Hours     sql.NullFloat64
	UpdatedAt time.Time
}
