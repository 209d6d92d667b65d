package store

import (
	"context"
	"time"

	"github.com/remybar/cta-server/internal/domain"
	"github.com/remybar/cta-server/internal/store/schema"
)

// CardMetaCandidate is a deduplicated card archetype observed in a feed page,
// with its dimension values still by name (resolved to ids at upsert time)
type CardMetaCandidate struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	Element     string
	Rarity      string
	Family      string
}

// CardCandidate is a deduplicated card instance observed in a feed page
type CardCandidate struct {
	ID          string
	ArchetypeID string
	Owner       string
	Foil        bool
	Rank        int
	Grade       string
	Power       int
	Numbering   int
	MintedAt    time.Time
	UpdatedAt   time.Time
}

// MintPassTypeCandidate is a deduplicated mint pass design observed in a feed page
type MintPassTypeCandidate struct {
	ID       string
	Name     string
	ImageURL string
}

// MintPassCandidate is a deduplicated mint pass instance observed in a feed page
type MintPassCandidate struct {
	ID        string
	TypeID    string
	Owner     string
	MintedAt  time.Time
	UpdatedAt time.Time
}

// RaritySupply is the minted-card count of one rarity
type RaritySupply struct {
	Name  string
	Count int64
}

// CollectionStats holds the aggregate supply statistics of the collection
type CollectionStats struct {
	CardCount     int64
	CardMetaCount int64
	MintPassCount int64
	OwnerCount    int64
	Rarities      []RaritySupply
}

// CardMetaRow is one archetype row of the collection listing, joined with its
// dimension names and minted supply
type CardMetaRow struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	Element     string
	Rarity      string
	Family      string
	Supply      int64
}

// CardHolderRow is one minted instance of an archetype with its holder
type CardHolderRow struct {
	TokenID   string
	Address   string
	Foil      bool
	Rank      int
	Grade     string
	Power     int
	Numbering int
}

// UserCardRow is one card held by a user, joined with its archetype
type UserCardRow struct {
	TokenID   string
	MetaID    string
	Name      string
	Element   string
	Rarity    string
	Family    string
	Foil      bool
	Rank      int
	Grade     string
	Power     int
	Numbering int
}

// UserMintPassRow is one mint pass held by a user
type UserMintPassRow struct {
	TokenID string
	TypeID  string
	Name    string
}

// UserCollection holds all assets of one user
type UserCollection struct {
	Cards      []UserCardRow
	MintPasses []UserMintPassRow
}

// UserInfo is the holdings summary of one user
type UserInfo struct {
	Address       string
	CardCount     int64
	CardMetaCount int64
	MintPassCount int64
}

// UserRow is one row of the paginated user listing
type UserRow struct {
	Address   string
	CardCount int64
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// UpsertDimensionValues creates the dimension rows missing from the given
	// candidate names. Existing rows are never touched.
	UpsertDimensionValues(ctx context.Context, dim domain.Dimension, names []string) error
	// GetDimensionMap returns the full name-to-id map of a dimension
	GetDimensionMap(ctx context.Context, dim domain.Dimension) (map[string]int64, error)
	// UpsertCardMetas reconciles card archetypes: new keys are inserted,
	// existing keys have their non-key fields updated
	UpsertCardMetas(ctx context.Context, candidates []CardMetaCandidate) error
	// UpsertCards reconciles card instances the same way
	UpsertCards(ctx context.Context, candidates []CardCandidate) error
	// UpsertMintPassTypes reconciles mint pass designs
	UpsertMintPassTypes(ctx context.Context, candidates []MintPassTypeCandidate) error
	// UpsertMintPasses reconciles mint pass instances
	UpsertMintPasses(ctx context.Context, candidates []MintPassCandidate) error
	// DeleteCards removes burned card instances by token id; ids without a row are ignored
	DeleteCards(ctx context.Context, ids []string) error
	// DeleteMintPasses removes burned mint pass instances by token id
	DeleteMintPasses(ctx context.Context, ids []string) error
	// RecordCheckpoint appends one immutable synchronization progress row
	RecordCheckpoint(ctx context.Context, cycleTime, upstreamTime time.Time, recordCount int) error
	// GetLastCheckpoint returns the most recent checkpoint row, or nil when none exists
	GetLastCheckpoint(ctx context.Context) (*schema.UpdateHistory, error)

	// GetCollectionStats returns the aggregate supply statistics
	GetCollectionStats(ctx context.Context) (*CollectionStats, error)
	// GetCardCollection returns every archetype with its dimension names and supply
	GetCardCollection(ctx context.Context) ([]CardMetaRow, error)
	// GetCardDetail returns one archetype, or nil when unknown
	GetCardDetail(ctx context.Context, metaID string) (*CardMetaRow, error)
	// GetCardHolders returns the minted instances of one archetype with their holders
	GetCardHolders(ctx context.Context, metaID string) ([]CardHolderRow, error)
	// GetUserCollection returns all assets held by an address
	GetUserCollection(ctx context.Context, address string) (*UserCollection, error)
	// GetUserInfo returns the holdings summary of an address, or nil when the
	// address was never observed
	GetUserInfo(ctx context.Context, address string) (*UserInfo, error)
	// ListUsers returns one page of owners ordered by descending card count,
	// with the total owner count
	ListUsers(ctx context.Context, pageIndex, pageSize int) ([]UserRow, int64, error)
}
