package schema

import "time"

// MintPass represents the mint_passes table - one row per minted pass
// instance, keyed by the upstream token identifier.
type MintPass struct {
	// ID is the upstream token identifier
	ID string `gorm:"column:id;primaryKey;type:text"`
	// MintPassTypeID references the pass design row
	MintPassTypeID string `gorm:"column:mint_pass_type_id;not null;index;type:text"`
	// OwnerID references the current owner's dimension row
	OwnerID int64 `gorm:"column:owner_id;not null;index"`
	// MintedAt is the upstream creation timestamp
	MintedAt time.Time `gorm:"column:minted_at;not null;type:timestamptz"`
	// UpdatedAt is the upstream timestamp of the last observed change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;type:timestamptz"`

	// Associations
	MintPassType MintPassType `gorm:"foreignKey:MintPassTypeID"`
	Owner        Owner        `gorm:"foreignKey:OwnerID"`
}

// TableName specifies the table name for the MintPass model
func (MintPass) TableName() string {
	return "mint_passes"
}
