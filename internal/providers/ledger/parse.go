package ledger

import (
	"fmt"
	"strings"

	"github.com/remybar/cta-server/internal/domain"
)

// ParseAsset converts a raw feed asset into a typed domain record.
// Records of an unrecognized kind yield (nil, nil) and are meant to be
// skipped by the caller. A recognized record whose archetype key cannot be
// derived from its image reference is a data-quality failure and yields an
// error.
func ParseAsset(a Asset) (domain.AssetRecord, error) {
	switch domain.AssetKind(strings.ToUpper(a.Metadata.Type)) {
	case domain.AssetKindCard:
		key, err := domain.ArchetypeKeyFromImageURL(a.Metadata.ImageURL)
		if err != nil {
			return nil, fmt.Errorf("card %s: %w", a.TokenID, err)
		}
		return domain.CardRecord{
			TokenID:      a.TokenID,
			Owner:        a.User,
			Status:       domain.AssetStatus(a.Status),
			ArchetypeKey: key,
			Name:         a.Metadata.Name,
			Description:  a.Metadata.Description,
			Element:      a.Metadata.Element,
			Rarity:       a.Metadata.Rarity,
			Family:       a.Metadata.Family,
			ImageURL:     a.Metadata.ImageURL,
			Foil:         a.Metadata.Foil,
			Rank:         a.Metadata.Rank,
			Grade:        a.Metadata.Grade,
			Power:        a.Metadata.Power,
			Numbering:    a.Metadata.Numbering,
			MintedAt:     a.CreatedAt,
			UpdatedAt:    a.UpdatedAt,
		}, nil

	case domain.AssetKindMintPass:
		key, err := domain.ArchetypeKeyFromImageURL(a.Metadata.ImageURL)
		if err != nil {
			return nil, fmt.Errorf("mint pass %s: %w", a.TokenID, err)
		}
		return domain.MintPassRecord{
			TokenID:   a.TokenID,
			Owner:     a.User,
			Status:    domain.AssetStatus(a.Status),
			TypeKey:   key,
			Name:      a.Metadata.Name,
			ImageURL:  a.Metadata.ImageURL,
			MintedAt:  a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
		}, nil

	default:
		// Unrecognized kinds are not an error, the collection contract also
		// hosts promotional assets we do not track.
		return nil, nil
	}
}
