package schema

// Owner represents the owners dimension table - one row per distinct owner
// address ever observed in the feed. Owners are never deleted, even when they
// no longer hold any asset.
type Owner struct {
	// ID is the surrogate primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Address is the globally unique owner wallet address
	Address string `gorm:"column:address;not null;uniqueIndex;type:text"`
}

// TableName specifies the table name for the Owner model
func (Owner) TableName() string {
	return "owners"
}
