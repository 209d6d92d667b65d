package schema

import "time"

// Card represents the cards table - one row per minted card instance, keyed by
// the upstream token identifier. Mutable fields (owner, foil, rank, grade,
// power) are refreshed on every re-observation; the row is deleted when the
// upstream marks the token burned.
type Card struct {
	// ID is the upstream token identifier
	ID string `gorm:"column:id;primaryKey;type:text"`
	// CardMetaID references the card's archetype row
	CardMetaID string `gorm:"column:card_meta_id;not null;index;type:text"`
	// OwnerID references the current owner's dimension row
	OwnerID int64 `gorm:"column:owner_id;not null;index"`
	// Foil indicates a foil printing of the design
	Foil bool `gorm:"column:foil;not null;default:false"`
	// Rank is the card's in-game rank
	Rank int `gorm:"column:rank;not null;default:0"`
	// Grade is the card's condition grade
	Grade string `gorm:"column:grade;type:text"`
	// Power is the card's in-game power score
	Power int `gorm:"column:power;not null;default:0"`
	// Numbering is the serial number of this instance within its archetype
	Numbering int `gorm:"column:numbering;not null;default:0"`
	// MintedAt is the upstream creation timestamp
	MintedAt time.Time `gorm:"column:minted_at;not null;type:timestamptz"`
	// UpdatedAt is the upstream timestamp of the last observed change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;type:timestamptz"`

	// Associations
	CardMeta CardMeta `gorm:"foreignKey:CardMetaID"`
	Owner    Owner    `gorm:"foreignKey:OwnerID"`
}

// TableName specifies the table name for the Card model
func (Card) TableName() string {
	return "cards"
}
