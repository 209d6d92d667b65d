package domain

import (
	"net/url"
	"path"
	"strings"
	"time"
)

// AssetRecord is the tagged union over parsed feed records.
// Records of an unrecognized kind never become an AssetRecord; the parsing
// step at the feed boundary drops them.
type AssetRecord interface {
	// Kind returns the asset kind tag of the record
	Kind() AssetKind
	// ID returns the upstream token identifier
	ID() string
	// IsBurned reports whether the upstream marked the asset as removed
	IsBurned() bool
}

// CardRecord is a feed record parsed as a minted trading card
type CardRecord struct {
	TokenID      string
	Owner        string
	Status       AssetStatus
	ArchetypeKey string
	Name         string
	Description  string
	Element      string
	Rarity       string
	Family       string
	ImageURL     string
	Foil         bool
	Rank         int
	Grade        string
	Power        int
	Numbering    int
	MintedAt     time.Time
	UpdatedAt    time.Time
}

func (r CardRecord) Kind() AssetKind { return AssetKindCard }
func (r CardRecord) ID() string      { return r.TokenID }
func (r CardRecord) IsBurned() bool  { return r.Status.Burned() }

// MintPassRecord is a feed record parsed as a mint pass
type MintPassRecord struct {
	TokenID   string
	Owner     string
	Status    AssetStatus
	TypeKey   string
	Name      string
	ImageURL  string
	MintedAt  time.Time
	UpdatedAt time.Time
}

func (r MintPassRecord) Kind() AssetKind { return AssetKindMintPass }
func (r MintPassRecord) ID() string      { return r.TokenID }
func (r MintPassRecord) IsBurned() bool  { return r.Status.Burned() }

// ArchetypeKeyFromImageURL derives the archetype key of a card or mint pass
// from its image reference. The upstream content pipeline names images
// "<key>-<numbering>.<ext>" (e.g. ".../M1-0001.png" yields "M1"), so the key
// is the first dash-separated segment of the file name. This coupling to the
// upstream filename convention is fragile and deliberately isolated here.
func ArchetypeKeyFromImageURL(imageURL string) (string, error) {
	if imageURL == "" {
		return "", ErrMalformedImageURL
	}

	name := imageURL
	if u, err := url.Parse(imageURL); err == nil && u.Path != "" {
		name = u.Path
	}
	name = path.Base(name)
	name = strings.TrimSuffix(name, path.Ext(name))

	key, _, _ := strings.Cut(name, "-")
	key = strings.TrimSpace(key)
	if key == "" || key == "/" || key == "." {
		return "", ErrMalformedImageURL
	}

	return key, nil
}
