package schema

// Rarity represents the rarities dimension table - one row per distinct card rarity.
// Append-only, like all dimension tables.
type Rarity struct {
	// ID is the surrogate primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the globally unique rarity name
	Name string `gorm:"column:name;not null;uniqueIndex;type:text"`
}

// TableName specifies the table name for the Rarity model
func (Rarity) TableName() string {
	return "rarities"
}
