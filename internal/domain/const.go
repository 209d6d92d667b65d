package domain

// AssetKind represents the kind of collectible asset in the collection
type AssetKind string

const (
	// AssetKindCard represents a playable trading card
	AssetKindCard AssetKind = "CARD"
	// AssetKindMintPass represents a mint pass redeemable for cards
	AssetKindMintPass AssetKind = "MINT_PASS"
)

// AssetStatus represents the lifecycle status reported by the upstream ledger
type AssetStatus string

const (
	// AssetStatusActive indicates the asset lives on the ledger
	AssetStatusActive AssetStatus = "imx"
	// AssetStatusWithdrawn indicates the asset was withdrawn to L1
	AssetStatusWithdrawn AssetStatus = "eth"
	// AssetStatusBurned indicates the asset was permanently destroyed
	AssetStatusBurned AssetStatus = "burned"
)

// Burned reports whether the status marks a permanently removed asset
func (s AssetStatus) Burned() bool {
	return s == AssetStatusBurned
}

// Dimension identifies a normalized enumerated-attribute table
type Dimension string

const (
	DimensionElement Dimension = "element"
	DimensionRarity  Dimension = "rarity"
	DimensionFamily  Dimension = "family"
	DimensionOwner   Dimension = "owner"
)
