package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remybar/cta-server/internal/domain"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// seedDimensions inserts the dimension values the candidate builders reference
func seedDimensions(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.UpsertDimensionValues(ctx, domain.DimensionElement, []string{"Air", "Fire", "Water"}))
	require.NoError(t, store.UpsertDimensionValues(ctx, domain.DimensionRarity, []string{"Common", "Rare"}))
	require.NoError(t, store.UpsertDimensionValues(ctx, domain.DimensionFamily, []string{"Beast", "Human"}))
	require.NoError(t, store.UpsertDimensionValues(ctx, domain.DimensionOwner, []string{
		"0xaaaa000000000000000000000000000000000001",
		"0xaaaa000000000000000000000000000000000002",
	}))
}

// buildCardMeta creates a test archetype candidate
func buildCardMeta(key string) CardMetaCandidate {
	return CardMetaCandidate{
		ID:          key,
		Name:        "Card " + key,
		Description: "Description of " + key,
		ImageURL:    fmt.Sprintf("https://img.example.com/%s-0001.png", key),
		Element:     "Air",
		Rarity:      "Common",
		Family:      "Beast",
	}
}

// buildCard creates a test card instance candidate
func buildCard(tokenID, metaID, owner string, numbering int) CardCandidate {
	return CardCandidate{
		ID:          tokenID,
		ArchetypeID: metaID,
		Owner:       owner,
		Foil:        false,
		Rank:        1,
		Grade:       "C",
		Power:       100,
		Numbering:   numbering,
		MintedAt:    time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

// buildMintPass creates a test mint pass instance candidate
func buildMintPass(tokenID, typeID, owner string) MintPassCandidate {
	return MintPassCandidate{
		ID:        tokenID,
		TypeID:    typeID,
		Owner:     owner,
		MintedAt:  time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

// =============================================================================
// Test: Dimension tables
// =============================================================================

func testDimensionValues(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("inserts new values and maps them to ids", func(t *testing.T) {
		err := store.UpsertDimensionValues(ctx, domain.DimensionElement, []string{"Air", "Fire"})
		require.NoError(t, err)

		elements, err := store.GetDimensionMap(ctx, domain.DimensionElement)
		require.NoError(t, err)
		assert.Len(t, elements, 2)
		assert.Contains(t, elements, "Air")
		assert.Contains(t, elements, "Fire")
	})

	t.Run("existing values keep their ids on re-upsert", func(t *testing.T) {
		err := store.UpsertDimensionValues(ctx, domain.DimensionRarity, []string{"Common"})
		require.NoError(t, err)

		before, err := store.GetDimensionMap(ctx, domain.DimensionRarity)
		require.NoError(t, err)

		err = store.UpsertDimensionValues(ctx, domain.DimensionRarity, []string{"Common", "Rare"})
		require.NoError(t, err)

		after, err := store.GetDimensionMap(ctx, domain.DimensionRarity)
		require.NoError(t, err)
		assert.Len(t, after, 2)
		assert.Equal(t, before["Common"], after["Common"])
	})

	t.Run("duplicate candidate names collapse to one row", func(t *testing.T) {
		err := store.UpsertDimensionValues(ctx, domain.DimensionFamily, []string{"Beast", "Beast", "Beast"})
		require.NoError(t, err)

		families, err := store.GetDimensionMap(ctx, domain.DimensionFamily)
		require.NoError(t, err)
		assert.Len(t, families, 1)
	})

	t.Run("empty candidate list is a no-op", func(t *testing.T) {
		err := store.UpsertDimensionValues(ctx, domain.DimensionOwner, nil)
		require.NoError(t, err)

		owners, err := store.GetDimensionMap(ctx, domain.DimensionOwner)
		require.NoError(t, err)
		assert.Empty(t, owners)
	})
}

// =============================================================================
// Test: UpsertCardMetas
// =============================================================================

func testUpsertCardMetas(t *testing.T, store Store) {
	ctx := context.Background()
	seedDimensions(t, store)

	t.Run("inserts new archetypes", func(t *testing.T) {
		err := store.UpsertCardMetas(ctx, []CardMetaCandidate{buildCardMeta("M1"), buildCardMeta("M2")})
		require.NoError(t, err)

		meta, err := store.GetCardDetail(ctx, "M1")
		require.NoError(t, err)
		require.NotNil(t, meta)
		assert.Equal(t, "Card M1", meta.Name)
		assert.Equal(t, "Description of M1", meta.Description)
		assert.Equal(t, "Air", meta.Element)
		assert.Equal(t, "Common", meta.Rarity)
		assert.Equal(t, "Beast", meta.Family)
		assert.Equal(t, int64(0), meta.Supply)
	})

	t.Run("updates non-key fields of existing archetypes", func(t *testing.T) {
		changed := buildCardMeta("M1")
		changed.Name = "Renamed M1"
		changed.Rarity = "Rare"

		err := store.UpsertCardMetas(ctx, []CardMetaCandidate{changed})
		require.NoError(t, err)

		meta, err := store.GetCardDetail(ctx, "M1")
		require.NoError(t, err)
		require.NotNil(t, meta)
		assert.Equal(t, "Renamed M1", meta.Name)
		assert.Equal(t, "Rare", meta.Rarity)

		collection, err := store.GetCardCollection(ctx)
		require.NoError(t, err)
		assert.Len(t, collection, 2)
	})

	t.Run("re-applying the same candidates changes nothing", func(t *testing.T) {
		err := store.UpsertCardMetas(ctx, []CardMetaCandidate{buildCardMeta("M2")})
		require.NoError(t, err)
		err = store.UpsertCardMetas(ctx, []CardMetaCandidate{buildCardMeta("M2")})
		require.NoError(t, err)

		collection, err := store.GetCardCollection(ctx)
		require.NoError(t, err)
		assert.Len(t, collection, 2)
	})

	t.Run("unknown dimension value is an error", func(t *testing.T) {
		bad := buildCardMeta("M3")
		bad.Element = "Plasma"

		err := store.UpsertCardMetas(ctx, []CardMetaCandidate{bad})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown element")

		meta, err := store.GetCardDetail(ctx, "M3")
		require.NoError(t, err)
		assert.Nil(t, meta)
	})
}

// =============================================================================
// Test: UpsertCards
// =============================================================================

func testUpsertCards(t *testing.T, store Store) {
	ctx := context.Background()
	seedDimensions(t, store)

	ownerA := "0xaaaa000000000000000000000000000000000001"
	ownerB := "0xaaaa000000000000000000000000000000000002"

	require.NoError(t, store.UpsertCardMetas(ctx, []CardMetaCandidate{buildCardMeta("M1")}))

	t.Run("inserts new instances", func(t *testing.T) {
		err := store.UpsertCards(ctx, []CardCandidate{
			buildCard("token-1", "M1", ownerA, 1),
			buildCard("token-2", "M1", ownerB, 2),
		})
		require.NoError(t, err)

		holders, err := store.GetCardHolders(ctx, "M1")
		require.NoError(t, err)
		require.Len(t, holders, 2)
		assert.Equal(t, "token-1", holders[0].TokenID)
		assert.Equal(t, ownerA, holders[0].Address)
		assert.Equal(t, 1, holders[0].Numbering)
		assert.Equal(t, "token-2", holders[1].TokenID)
	})

	t.Run("updates existing instances in place", func(t *testing.T) {
		moved := buildCard("token-1", "M1", ownerB, 1)
		moved.Power = 250

		err := store.UpsertCards(ctx, []CardCandidate{moved})
		require.NoError(t, err)

		holders, err := store.GetCardHolders(ctx, "M1")
		require.NoError(t, err)
		require.Len(t, holders, 2)
		assert.Equal(t, ownerB, holders[0].Address)
		assert.Equal(t, 250, holders[0].Power)
	})

	t.Run("re-applying the same page changes nothing", func(t *testing.T) {
		page := []CardCandidate{buildCard("token-2", "M1", ownerB, 2)}
		require.NoError(t, store.UpsertCards(ctx, page))
		require.NoError(t, store.UpsertCards(ctx, page))

		meta, err := store.GetCardDetail(ctx, "M1")
		require.NoError(t, err)
		require.NotNil(t, meta)
		assert.Equal(t, int64(2), meta.Supply)
	})

	t.Run("unknown owner is an error", func(t *testing.T) {
		err := store.UpsertCards(ctx, []CardCandidate{
			buildCard("token-3", "M1", "0xdead000000000000000000000000000000000000", 3),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown owner")
	})

	t.Run("empty candidate list is a no-op", func(t *testing.T) {
		require.NoError(t, store.UpsertCards(ctx, nil))
	})
}

// =============================================================================
// Test: Mint passes
// =============================================================================

func testUpsertMintPasses(t *testing.T, store Store) {
	ctx := context.Background()
	seedDimensions(t, store)

	ownerA := "0xaaaa000000000000000000000000000000000001"

	t.Run("inserts types then instances", func(t *testing.T) {
		err := store.UpsertMintPassTypes(ctx, []MintPassTypeCandidate{
			{ID: "MP1", Name: "Alpha Pass", ImageURL: "https://img.example.com/MP1-0001.png"},
		})
		require.NoError(t, err)

		err = store.UpsertMintPasses(ctx, []MintPassCandidate{
			buildMintPass("pass-1", "MP1", ownerA),
			buildMintPass("pass-2", "MP1", ownerA),
		})
		require.NoError(t, err)

		collection, err := store.GetUserCollection(ctx, ownerA)
		require.NoError(t, err)
		require.Len(t, collection.MintPasses, 2)
		assert.Equal(t, "pass-1", collection.MintPasses[0].TokenID)
		assert.Equal(t, "MP1", collection.MintPasses[0].TypeID)
		assert.Equal(t, "Alpha Pass", collection.MintPasses[0].Name)
	})

	t.Run("updates existing types and instances", func(t *testing.T) {
		err := store.UpsertMintPassTypes(ctx, []MintPassTypeCandidate{
			{ID: "MP1", Name: "Alpha Pass v2", ImageURL: "https://img.example.com/MP1-0002.png"},
		})
		require.NoError(t, err)

		require.NoError(t, store.UpsertMintPasses(ctx, []MintPassCandidate{
			buildMintPass("pass-1", "MP1", ownerA),
		}))

		collection, err := store.GetUserCollection(ctx, ownerA)
		require.NoError(t, err)
		require.Len(t, collection.MintPasses, 2)
		assert.Equal(t, "Alpha Pass v2", collection.MintPasses[0].Name)
	})
}

// =============================================================================
// Test: Deletes
// =============================================================================

func testDeletes(t *testing.T, store Store) {
	ctx := context.Background()
	seedDimensions(t, store)

	ownerA := "0xaaaa000000000000000000000000000000000001"

	require.NoError(t, store.UpsertCardMetas(ctx, []CardMetaCandidate{buildCardMeta("M1")}))
	require.NoError(t, store.UpsertCards(ctx, []CardCandidate{
		buildCard("token-1", "M1", ownerA, 1),
		buildCard("token-2", "M1", ownerA, 2),
	}))
	require.NoError(t, store.UpsertMintPassTypes(ctx, []MintPassTypeCandidate{
		{ID: "MP1", Name: "Alpha Pass", ImageURL: "https://img.example.com/MP1-0001.png"},
	}))
	require.NoError(t, store.UpsertMintPasses(ctx, []MintPassCandidate{buildMintPass("pass-1", "MP1", ownerA)}))

	t.Run("removes exactly the given ids", func(t *testing.T) {
		err := store.DeleteCards(ctx, []string{"token-1"})
		require.NoError(t, err)

		holders, err := store.GetCardHolders(ctx, "M1")
		require.NoError(t, err)
		require.Len(t, holders, 1)
		assert.Equal(t, "token-2", holders[0].TokenID)
	})

	t.Run("unknown ids are ignored", func(t *testing.T) {
		require.NoError(t, store.DeleteCards(ctx, []string{"token-1", "never-minted"}))
		require.NoError(t, store.DeleteMintPasses(ctx, []string{"never-minted"}))

		holders, err := store.GetCardHolders(ctx, "M1")
		require.NoError(t, err)
		assert.Len(t, holders, 1)
	})

	t.Run("empty id list is a no-op", func(t *testing.T) {
		require.NoError(t, store.DeleteCards(ctx, nil))
		require.NoError(t, store.DeleteMintPasses(ctx, nil))
	})

	t.Run("deleting an instance keeps its archetype", func(t *testing.T) {
		require.NoError(t, store.DeleteCards(ctx, []string{"token-2"}))
		require.NoError(t, store.DeleteMintPasses(ctx, []string{"pass-1"}))

		meta, err := store.GetCardDetail(ctx, "M1")
		require.NoError(t, err)
		require.NotNil(t, meta)
		assert.Equal(t, int64(0), meta.Supply)
	})
}

// =============================================================================
// Test: Checkpoints
// =============================================================================

func testCheckpoints(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("returns nil when no checkpoint exists", func(t *testing.T) {
		last, err := store.GetLastCheckpoint(ctx)
		require.NoError(t, err)
		assert.Nil(t, last)
	})

	t.Run("returns the most recent checkpoint", func(t *testing.T) {
		first := time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)
		second := time.Date(2023, 5, 1, 10, 5, 0, 0, time.UTC)

		require.NoError(t, store.RecordCheckpoint(ctx, first, first.Add(-time.Hour), 200))
		require.NoError(t, store.RecordCheckpoint(ctx, second, second.Add(-time.Hour), 137))

		last, err := store.GetLastCheckpoint(ctx)
		require.NoError(t, err)
		require.NotNil(t, last)
		assert.Equal(t, 137, last.RecordCount)
		assert.WithinDuration(t, second, last.CycleTime, time.Second)
		assert.WithinDuration(t, second.Add(-time.Hour), last.UpstreamTime, time.Second)
	})
}

// =============================================================================
// Test: Collection stats
// =============================================================================

func testCollectionStats(t *testing.T, store Store) {
	ctx := context.Background()
	seedDimensions(t, store)

	ownerA := "0xaaaa000000000000000000000000000000000001"
	ownerB := "0xaaaa000000000000000000000000000000000002"

	common := buildCardMeta("M1")
	rare := buildCardMeta("M2")
	rare.Rarity = "Rare"
	require.NoError(t, store.UpsertCardMetas(ctx, []CardMetaCandidate{common, rare}))
	require.NoError(t, store.UpsertCards(ctx, []CardCandidate{
		buildCard("token-1", "M1", ownerA, 1),
		buildCard("token-2", "M1", ownerB, 2),
		buildCard("token-3", "M2", ownerA, 1),
	}))
	require.NoError(t, store.UpsertMintPassTypes(ctx, []MintPassTypeCandidate{
		{ID: "MP1", Name: "Alpha Pass", ImageURL: "https://img.example.com/MP1-0001.png"},
	}))
	require.NoError(t, store.UpsertMintPasses(ctx, []MintPassCandidate{buildMintPass("pass-1", "MP1", ownerA)}))

	stats, err := store.GetCollectionStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.CardCount)
	assert.Equal(t, int64(2), stats.CardMetaCount)
	assert.Equal(t, int64(1), stats.MintPassCount)
	assert.Equal(t, int64(2), stats.OwnerCount)
	require.Len(t, stats.Rarities, 2)
	assert.Equal(t, RaritySupply{Name: "Common", Count: 2}, stats.Rarities[0])
	assert.Equal(t, RaritySupply{Name: "Rare", Count: 1}, stats.Rarities[1])
}

// =============================================================================
// Test: User queries
// =============================================================================

func testUserQueries(t *testing.T, store Store) {
	ctx := context.Background()
	seedDimensions(t, store)

	ownerA := "0xaaaa000000000000000000000000000000000001"
	ownerB := "0xaaaa000000000000000000000000000000000002"

	require.NoError(t, store.UpsertCardMetas(ctx, []CardMetaCandidate{buildCardMeta("M1"), buildCardMeta("M2")}))
	require.NoError(t, store.UpsertCards(ctx, []CardCandidate{
		buildCard("token-1", "M1", ownerA, 1),
		buildCard("token-2", "M2", ownerA, 1),
		buildCard("token-3", "M1", ownerB, 2),
	}))
	require.NoError(t, store.UpsertMintPassTypes(ctx, []MintPassTypeCandidate{
		{ID: "MP1", Name: "Alpha Pass", ImageURL: "https://img.example.com/MP1-0001.png"},
	}))
	require.NoError(t, store.UpsertMintPasses(ctx, []MintPassCandidate{buildMintPass("pass-1", "MP1", ownerA)}))

	t.Run("GetUserCollection returns cards and passes", func(t *testing.T) {
		collection, err := store.GetUserCollection(ctx, ownerA)
		require.NoError(t, err)
		require.Len(t, collection.Cards, 2)
		assert.Equal(t, "token-1", collection.Cards[0].TokenID)
		assert.Equal(t, "M1", collection.Cards[0].MetaID)
		assert.Equal(t, "Card M1", collection.Cards[0].Name)
		assert.Equal(t, "Air", collection.Cards[0].Element)
		require.Len(t, collection.MintPasses, 1)
	})

	t.Run("GetUserCollection is empty for unknown address", func(t *testing.T) {
		collection, err := store.GetUserCollection(ctx, "0xdead000000000000000000000000000000000000")
		require.NoError(t, err)
		assert.Empty(t, collection.Cards)
		assert.Empty(t, collection.MintPasses)
	})

	t.Run("GetUserInfo summarizes holdings", func(t *testing.T) {
		info, err := store.GetUserInfo(ctx, ownerA)
		require.NoError(t, err)
		require.NotNil(t, info)
		assert.Equal(t, ownerA, info.Address)
		assert.Equal(t, int64(2), info.CardCount)
		assert.Equal(t, int64(2), info.CardMetaCount)
		assert.Equal(t, int64(1), info.MintPassCount)
	})

	t.Run("GetUserInfo returns nil for unknown address", func(t *testing.T) {
		info, err := store.GetUserInfo(ctx, "0xdead000000000000000000000000000000000000")
		require.NoError(t, err)
		assert.Nil(t, info)
	})

	t.Run("ListUsers pages by descending card count", func(t *testing.T) {
		page, total, err := store.ListUsers(ctx, 0, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, page, 1)
		assert.Equal(t, ownerA, page[0].Address)
		assert.Equal(t, int64(2), page[0].CardCount)

		page, total, err = store.ListUsers(ctx, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, page, 1)
		assert.Equal(t, ownerB, page[0].Address)
		assert.Equal(t, int64(1), page[0].CardCount)

		page, _, err = store.ListUsers(ctx, 2, 1)
		require.NoError(t, err)
		assert.Empty(t, page)
	})
}

// =============================================================================
// Test runner
// =============================================================================

// RunStoreTests runs the whole suite against a store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"DimensionValues", testDimensionValues},
		{"UpsertCardMetas", testUpsertCardMetas},
		{"UpsertCards", testUpsertCards},
		{"UpsertMintPasses", testUpsertMintPasses},
		{"Deletes", testDeletes},
		{"Checkpoints", testCheckpoints},
		{"CollectionStats", testCollectionStats},
		{"UserQueries", testUserQueries},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)

			tt.fn(t, store)
		})
	}
}
