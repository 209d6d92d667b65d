package schema

import "time"

// UpdateHistory represents the update_history table - append-only log of
// synchronization progress, one row per processed page. Used for
// observability only; pagination resumes from the in-memory cursor, not from
// this table.
type UpdateHistory struct {
	// ID is the surrogate primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CycleTime is the wall-clock time the page was processed
	CycleTime time.Time `gorm:"column:cycle_time;not null;type:timestamptz"`
	// UpstreamTime is the upstream update timestamp of the first record of the page
	UpstreamTime time.Time `gorm:"column:upstream_time;not null;type:timestamptz"`
	// RecordCount is the number of records in the page
	RecordCount int `gorm:"column:record_count;not null"`
}

// TableName specifies the table name for the UpdateHistory model
func (UpdateHistory) TableName() string {
	return "update_history"
}
