package schema

// CardMeta represents the card_meta table - one row per distinct card design
// (archetype), shared by all minted instances of that design. The descriptive
// content is immutable upstream, so first-write-wins on concurrent pages is
// acceptable.
type CardMeta struct {
	// ID is the archetype key derived from the card's image reference (e.g. "M1")
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Name is the card design's display name
	Name string `gorm:"column:name;not null;type:text"`
	// Description is the card design's flavor text
	Description string `gorm:"column:description;type:text"`
	// ImageURL is the card artwork reference
	ImageURL string `gorm:"column:image_url;not null;type:text"`
	// ElementID references the card's element dimension row
	ElementID int64 `gorm:"column:element_id;not null;index"`
	// RarityID references the card's rarity dimension row
	RarityID int64 `gorm:"column:rarity_id;not null;index"`
	// FamilyID references the card's family dimension row
	FamilyID int64 `gorm:"column:family_id;not null;index"`

	// Associations
	Element Element `gorm:"foreignKey:ElementID"`
	Rarity  Rarity  `gorm:"foreignKey:RarityID"`
	Family  Family  `gorm:"foreignKey:FamilyID"`
}

// TableName specifies the table name for the CardMeta model
func (CardMeta) TableName() string {
	return "card_meta"
}
