package schema

// Family represents the families dimension table - one row per distinct card family.
// Append-only, like all dimension tables.
type Family struct {
	// ID is the surrogate primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the globally unique family name
	Name string `gorm:"column:name;not null;uniqueIndex;type:text"`
}

// TableName specifies the table name for the Family model
func (Family) TableName() string {
	return "families"
}
