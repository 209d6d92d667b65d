package schema

// Element represents the elements dimension table - one row per distinct card element
// (air, fire, water...). Rows are created lazily when a new value is observed in the
// feed and are never renamed or deleted.
type Element struct {
	// ID is the surrogate primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the globally unique element name
	Name string `gorm:"column:name;not null;uniqueIndex;type:text"`
}

// TableName specifies the table name for the Element model
func (Element) TableName() string {
	return "elements"
}
