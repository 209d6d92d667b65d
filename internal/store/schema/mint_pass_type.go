package schema

// MintPassType represents the mint_pass_types table - one row per distinct
// mint pass design, keyed like card archetypes by the key derived from the
// pass's image reference.
type MintPassType struct {
	// ID is the pass-type key derived from the image reference
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Name is the pass design's display name
	Name string `gorm:"column:name;not null;type:text"`
	// ImageURL is the pass artwork reference
	ImageURL string `gorm:"column:image_url;not null;type:text"`
}

// TableName specifies the table name for the MintPassType model
func (MintPassType) TableName() string {
	return "mint_pass_types"
}
