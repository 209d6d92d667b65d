package dto

import (
	"math"

	"github.com/remybar/cta-server/internal/store"
)

// RarityStat is the minted supply of one rarity with its share of the
// whole collection
type RarityStat struct {
	Name       string  `json:"name"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// StatsResponse is the payload of GET /api/v1/stats
type StatsResponse struct {
	Cards      int64        `json:"cards"`
	Archetypes int64        `json:"archetypes"`
	MintPasses int64        `json:"mint_passes"`
	Owners     int64        `json:"owners"`
	Rarities   []RarityStat `json:"rarities"`
}

// CardSummary is one archetype of the collection listing
type CardSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Element     string `json:"element"`
	Rarity      string `json:"rarity"`
	Family      string `json:"family"`
	Supply      int64  `json:"supply"`
}

// Holder is one minted instance of an archetype with its current owner
type Holder struct {
	TokenID   string `json:"token_id"`
	Address   string `json:"address"`
	Foil      bool   `json:"foil"`
	Rank      int    `json:"rank"`
	Grade     string `json:"grade"`
	Power     int    `json:"power"`
	Numbering int    `json:"numbering"`
}

// CardDetailResponse is the payload of GET /api/v1/cards/:id
type CardDetailResponse struct {
	CardSummary
	Holders []Holder         `json:"holders"`
	ByRank  map[int]int64    `json:"by_rank"`
	ByGrade map[string]int64 `json:"by_grade"`
}

// UserCard is one card of a user's collection
type UserCard struct {
	TokenID   string `json:"token_id"`
	MetaID    string `json:"meta_id"`
	Name      string `json:"name"`
	Element   string `json:"element"`
	Rarity    string `json:"rarity"`
	Family    string `json:"family"`
	Foil      bool   `json:"foil"`
	Rank      int    `json:"rank"`
	Grade     string `json:"grade"`
	Power     int    `json:"power"`
	Numbering int    `json:"numbering"`
}

// UserMintPass is one mint pass of a user's collection
type UserMintPass struct {
	TokenID string `json:"token_id"`
	TypeID  string `json:"type_id"`
	Name    string `json:"name"`
}

// UserResponse is the payload of GET /api/v1/users/:address
type UserResponse struct {
	Address        string         `json:"address"`
	CardCount      int64          `json:"card_count"`
	ArchetypeCount int64          `json:"archetype_count"`
	MintPassCount  int64          `json:"mint_pass_count"`
	Cards          []UserCard     `json:"cards"`
	MintPasses     []UserMintPass `json:"mint_passes"`
}

// UserSummary is one row of the paginated user listing
type UserSummary struct {
	Address   string `json:"address"`
	CardCount int64  `json:"card_count"`
}

// UserListResponse is the payload of GET /api/v1/users
type UserListResponse struct {
	Users    []UserSummary `json:"users"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// FromCollectionStats shapes the aggregate counts into the stats payload,
// deriving each rarity's share of the minted supply
func FromCollectionStats(stats *store.CollectionStats) StatsResponse {
	resp := StatsResponse{
		Cards:      stats.CardCount,
		Archetypes: stats.CardMetaCount,
		MintPasses: stats.MintPassCount,
		Owners:     stats.OwnerCount,
		Rarities:   make([]RarityStat, 0, len(stats.Rarities)),
	}

	for _, r := range stats.Rarities {
		stat := RarityStat{Name: r.Name, Count: r.Count}
		if stats.CardCount > 0 {
			// Two decimal places is plenty for display purposes
			stat.Percentage = math.Round(float64(r.Count)/float64(stats.CardCount)*10000) / 100
		}
		resp.Rarities = append(resp.Rarities, stat)
	}

	return resp
}

// FromCardMetaRow shapes one archetype row into a listing entry
func FromCardMetaRow(row store.CardMetaRow) CardSummary {
	return CardSummary{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		ImageURL:    row.ImageURL,
		Element:     row.Element,
		Rarity:      row.Rarity,
		Family:      row.Family,
		Supply:      row.Supply,
	}
}

// FromCardMetaRows shapes the archetype listing
func FromCardMetaRows(rows []store.CardMetaRow) []CardSummary {
	result := make([]CardSummary, 0, len(rows))
	for _, row := range rows {
		result = append(result, FromCardMetaRow(row))
	}
	return result
}

// FromCardDetail shapes one archetype and its minted instances into the
// detail payload, with per-rank and per-grade supply breakdowns
func FromCardDetail(meta store.CardMetaRow, holders []store.CardHolderRow) CardDetailResponse {
	resp := CardDetailResponse{
		CardSummary: FromCardMetaRow(meta),
		Holders:     make([]Holder, 0, len(holders)),
		ByRank:      make(map[int]int64),
		ByGrade:     make(map[string]int64),
	}

	for _, h := range holders {
		resp.Holders = append(resp.Holders, Holder{
			TokenID:   h.TokenID,
			Address:   h.Address,
			Foil:      h.Foil,
			Rank:      h.Rank,
			Grade:     h.Grade,
			Power:     h.Power,
			Numbering: h.Numbering,
		})
		resp.ByRank[h.Rank]++
		if h.Grade != "" {
			resp.ByGrade[h.Grade]++
		}
	}

	return resp
}

// FromUser shapes a user's holdings summary and assets into the user payload
func FromUser(info *store.UserInfo, collection *store.UserCollection) UserResponse {
	resp := UserResponse{
		Address:        info.Address,
		CardCount:      info.CardCount,
		ArchetypeCount: info.CardMetaCount,
		MintPassCount:  info.MintPassCount,
		Cards:          make([]UserCard, 0),
		MintPasses:     make([]UserMintPass, 0),
	}

	if collection == nil {
		return resp
	}

	for _, c := range collection.Cards {
		resp.Cards = append(resp.Cards, UserCard{
			TokenID:   c.TokenID,
			MetaID:    c.MetaID,
			Name:      c.Name,
			Element:   c.Element,
			Rarity:    c.Rarity,
			Family:    c.Family,
			Foil:      c.Foil,
			Rank:      c.Rank,
			Grade:     c.Grade,
			Power:     c.Power,
			Numbering: c.Numbering,
		})
	}
	for _, p := range collection.MintPasses {
		resp.MintPasses = append(resp.MintPasses, UserMintPass{
			TokenID: p.TokenID,
			TypeID:  p.TypeID,
			Name:    p.Name,
		})
	}

	return resp
}

// FromUserRows shapes one page of the user listing
func FromUserRows(rows []store.UserRow, total int64, page, pageSize int) UserListResponse {
	resp := UserListResponse{
		Users:    make([]UserSummary, 0, len(rows)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}

	for _, row := range rows {
		resp.Users = append(resp.Users, UserSummary{Address: row.Address, CardCount: row.CardCount})
	}

	return resp
}
