package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/remybar/cta-server/internal/domain"
	"github.com/remybar/cta-server/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to the defaults applied by
// NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// calculateSafeBatchSize computes the batch size for bulk inserts that stays
// under PostgreSQL's extended-protocol limit of 65535 parameters per query,
// given the number of fields each record binds. A fixed headroom absorbs
// batch-level overhead (conflict clause parameters, GORM bookkeeping).
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000

	availableParams := maxParams - totalHeadroom
	safeBatchSize := max(availableParams/fieldsPerRecord, 1)

	if safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

// insertMissingDimension reads the existing values of a dimension table,
// computes the set difference against the candidates and bulk-inserts only
// the new rows with conflict-skip. Existing rows are never updated.
func insertMissingDimension[T any](ctx context.Context, db *gorm.DB, column string, names []string, build func(string) T) error {
	var existing []string
	err := db.WithContext(ctx).
		Model(new(T)).
		Where(column+" IN ?", names).
		Pluck(column, &existing).Error
	if err != nil {
		return fmt.Errorf("failed to read existing dimension values: %w", err)
	}

	known := make(map[string]bool, len(existing))
	for _, name := range existing {
		known[name] = true
	}

	var rows []T
	for _, name := range names {
		if known[name] {
			continue
		}
		known[name] = true
		rows = append(rows, build(name))
	}

	if len(rows) == 0 {
		return nil
	}

	err = db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: column}}, DoNothing: true}).
		CreateInBatches(rows, calculateSafeBatchSize(len(rows), 2)).Error
	if err != nil {
		return fmt.Errorf("failed to insert dimension values: %w", err)
	}

	return nil
}

// UpsertDimensionValues creates the dimension rows missing from the given candidate names
func (s *pgStore) UpsertDimensionValues(ctx context.Context, dim domain.Dimension, names []string) error {
	if len(names) == 0 {
		return nil
	}

	switch dim {
	case domain.DimensionElement:
		return insertMissingDimension(ctx, s.db, "name", names, func(n string) schema.Element { return schema.Element{Name: n} })
	case domain.DimensionRarity:
		return insertMissingDimension(ctx, s.db, "name", names, func(n string) schema.Rarity { return schema.Rarity{Name: n} })
	case domain.DimensionFamily:
		return insertMissingDimension(ctx, s.db, "name", names, func(n string) schema.Family { return schema.Family{Name: n} })
	case domain.DimensionOwner:
		return insertMissingDimension(ctx, s.db, "address", names, func(n string) schema.Owner { return schema.Owner{Address: n} })
	default:
		return fmt.Errorf("unknown dimension: %s", dim)
	}
}

// GetDimensionMap returns the full name-to-id map of a dimension
func (s *pgStore) GetDimensionMap(ctx context.Context, dim domain.Dimension) (map[string]int64, error) {
	result := make(map[string]int64)

	switch dim {
	case domain.DimensionElement:
		var rows []schema.Element
		if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to read elements: %w", err)
		}
		for _, row := range rows {
			result[row.Name] = row.ID
		}
	case domain.DimensionRarity:
		var rows []schema.Rarity
		if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to read rarities: %w", err)
		}
		for _, row := range rows {
			result[row.Name] = row.ID
		}
	case domain.DimensionFamily:
		var rows []schema.Family
		if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to read families: %w", err)
		}
		for _, row := range rows {
			result[row.Name] = row.ID
		}
	case domain.DimensionOwner:
		var rows []schema.Owner
		if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to read owners: %w", err)
		}
		for _, row := range rows {
			result[row.Address] = row.ID
		}
	default:
		return nil, fmt.Errorf("unknown dimension: %s", dim)
	}

	return result, nil
}

// existingIDs returns which of the given primary keys already have a row
func existingIDs[T any](ctx context.Context, db *gorm.DB, ids []string) (map[string]bool, error) {
	var existing []string
	err := db.WithContext(ctx).
		Model(new(T)).
		Where("id IN ?", ids).
		Pluck("id", &existing).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read existing ids: %w", err)
	}

	result := make(map[string]bool, len(existing))
	for _, id := range existing {
		result[id] = true
	}

	return result, nil
}

// UpsertCardMetas reconciles card archetypes: candidates with an unknown key
// are bulk-inserted with conflict-skip, candidates whose key already has a
// row get an explicit row-level update of all non-key fields. Re-applying the
// same candidates yields the same final rows.
func (s *pgStore) UpsertCardMetas(ctx context.Context, candidates []CardMetaCandidate) error {
	if len(candidates) == 0 {
		return nil
	}

	elements, err := s.GetDimensionMap(ctx, domain.DimensionElement)
	if err != nil {
		return err
	}
	rarities, err := s.GetDimensionMap(ctx, domain.DimensionRarity)
	if err != nil {
		return err
	}
	families, err := s.GetDimensionMap(ctx, domain.DimensionFamily)
	if err != nil {
		return err
	}

	rows := make([]schema.CardMeta, 0, len(candidates))
	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		elementID, ok := elements[c.Element]
		if !ok {
			return fmt.Errorf("unknown element %q for archetype %s", c.Element, c.ID)
		}
		rarityID, ok := rarities[c.Rarity]
		if !ok {
			return fmt.Errorf("unknown rarity %q for archetype %s", c.Rarity, c.ID)
		}
		familyID, ok := families[c.Family]
		if !ok {
			return fmt.Errorf("unknown family %q for archetype %s", c.Family, c.ID)
		}

		rows = append(rows, schema.CardMeta{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			ImageURL:    c.ImageURL,
			ElementID:   elementID,
			RarityID:    rarityID,
			FamilyID:    familyID,
		})
		ids = append(ids, c.ID)
	}

	existing, err := existingIDs[schema.CardMeta](ctx, s.db, ids)
	if err != nil {
		return err
	}

	var toInsert []schema.CardMeta
	for _, row := range rows {
		if existing[row.ID] {
			// Explicit row-level update of all non-key fields
			err := s.db.WithContext(ctx).
				Model(&schema.CardMeta{}).
				Where("id = ?", row.ID).
				Updates(map[string]interface{}{
					"name":        row.Name,
					"description": row.Description,
					"image_url":   row.ImageURL,
					"element_id":  row.ElementID,
					"rarity_id":   row.RarityID,
					"family_id":   row.FamilyID,
				}).Error
			if err != nil {
				return fmt.Errorf("failed to update archetype %s: %w", row.ID, err)
			}
			continue
		}
		toInsert = append(toInsert, row)
	}

	if len(toInsert) > 0 {
		err := s.db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
			CreateInBatches(toInsert, calculateSafeBatchSize(len(toInsert), 7)).Error
		if err != nil {
			return fmt.Errorf("failed to insert archetypes: %w", err)
		}
	}

	return nil
}

// UpsertCards reconciles card instances with the same insert-then-update algorithm
func (s *pgStore) UpsertCards(ctx context.Context, candidates []CardCandidate) error {
	if len(candidates) == 0 {
		return nil
	}

	owners, err := s.GetDimensionMap(ctx, domain.DimensionOwner)
	if err != nil {
		return err
	}

	rows := make([]schema.Card, 0, len(candidates))
	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ownerID, ok := owners[c.Owner]
		if !ok {
			return fmt.Errorf("unknown owner %q for card %s", c.Owner, c.ID)
		}

		rows = append(rows, schema.Card{
			ID:         c.ID,
			CardMetaID: c.ArchetypeID,
			OwnerID:    ownerID,
			Foil:       c.Foil,
			Rank:       c.Rank,
			Grade:      c.Grade,
			Power:      c.Power,
			Numbering:  c.Numbering,
			MintedAt:   c.MintedAt,
			UpdatedAt:  c.UpdatedAt,
		})
		ids = append(ids, c.ID)
	}

	existing, err := existingIDs[schema.Card](ctx, s.db, ids)
	if err != nil {
		return err
	}

	var toInsert []schema.Card
	for _, row := range rows {
		if existing[row.ID] {
			err := s.db.WithContext(ctx).
				Model(&schema.Card{}).
				Where("id = ?", row.ID).
				Updates(map[string]interface{}{
					"card_meta_id": row.CardMetaID,
					"owner_id":     row.OwnerID,
					"foil":         row.Foil,
					"rank":         row.Rank,
					"grade":        row.Grade,
					"power":        row.Power,
					"numbering":    row.Numbering,
					"minted_at":    row.MintedAt,
					"updated_at":   row.UpdatedAt,
				}).Error
			if err != nil {
				return fmt.Errorf("failed to update card %s: %w", row.ID, err)
			}
			continue
		}
		toInsert = append(toInsert, row)
	}

	if len(toInsert) > 0 {
		err := s.db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
			CreateInBatches(toInsert, calculateSafeBatchSize(len(toInsert), 10)).Error
		if err != nil {
			return fmt.Errorf("failed to insert cards: %w", err)
		}
	}

	return nil
}

// UpsertMintPassTypes reconciles mint pass designs
func (s *pgStore) UpsertMintPassTypes(ctx context.Context, candidates []MintPassTypeCandidate) error {
	if len(candidates) == 0 {
		return nil
	}

	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ID)
	}

	existing, err := existingIDs[schema.MintPassType](ctx, s.db, ids)
	if err != nil {
		return err
	}

	var toInsert []schema.MintPassType
	for _, c := range candidates {
		if existing[c.ID] {
			err := s.db.WithContext(ctx).
				Model(&schema.MintPassType{}).
				Where("id = ?", c.ID).
				Updates(map[string]interface{}{
					"name":      c.Name,
					"image_url": c.ImageURL,
				}).Error
			if err != nil {
				return fmt.Errorf("failed to update mint pass type %s: %w", c.ID, err)
			}
			continue
		}
		toInsert = append(toInsert, schema.MintPassType{ID: c.ID, Name: c.Name, ImageURL: c.ImageURL})
	}

	if len(toInsert) > 0 {
		err := s.db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
			CreateInBatches(toInsert, calculateSafeBatchSize(len(toInsert), 3)).Error
		if err != nil {
			return fmt.Errorf("failed to insert mint pass types: %w", err)
		}
	}

	return nil
}

// UpsertMintPasses reconciles mint pass instances
func (s *pgStore) UpsertMintPasses(ctx context.Context, candidates []MintPassCandidate) error {
	if len(candidates) == 0 {
		return nil
	}

	owners, err := s.GetDimensionMap(ctx, domain.DimensionOwner)
	if err != nil {
		return err
	}

	rows := make([]schema.MintPass, 0, len(candidates))
	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ownerID, ok := owners[c.Owner]
		if !ok {
			return fmt.Errorf("unknown owner %q for mint pass %s", c.Owner, c.ID)
		}

		rows = append(rows, schema.MintPass{
			ID:             c.ID,
			MintPassTypeID: c.TypeID,
			OwnerID:        ownerID,
			MintedAt:       c.MintedAt,
			UpdatedAt:      c.UpdatedAt,
		})
		ids = append(ids, c.ID)
	}

	existing, err := existingIDs[schema.MintPass](ctx, s.db, ids)
	if err != nil {
		return err
	}

	var toInsert []schema.MintPass
	for _, row := range rows {
		if existing[row.ID] {
			err := s.db.WithContext(ctx).
				Model(&schema.MintPass{}).
				Where("id = ?", row.ID).
				Updates(map[string]interface{}{
					"mint_pass_type_id": row.MintPassTypeID,
					"owner_id":          row.OwnerID,
					"minted_at":         row.MintedAt,
					"updated_at":        row.UpdatedAt,
				}).Error
			if err != nil {
				return fmt.Errorf("failed to update mint pass %s: %w", row.ID, err)
			}
			continue
		}
		toInsert = append(toInsert, row)
	}

	if len(toInsert) > 0 {
		err := s.db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
			CreateInBatches(toInsert, calculateSafeBatchSize(len(toInsert), 5)).Error
		if err != nil {
			return fmt.Errorf("failed to insert mint passes: %w", err)
		}
	}

	return nil
}

// DeleteCards removes burned card instances by token id
func (s *pgStore) DeleteCards(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Where("id IN ?", ids).Delete(&schema.Card{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete cards: %w", err)
	}

	return nil
}

// DeleteMintPasses removes burned mint pass instances by token id
func (s *pgStore) DeleteMintPasses(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Where("id IN ?", ids).Delete(&schema.MintPass{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete mint passes: %w", err)
	}

	return nil
}

// RecordCheckpoint appends one immutable synchronization progress row
func (s *pgStore) RecordCheckpoint(ctx context.Context, cycleTime, upstreamTime time.Time, recordCount int) error {
	row := schema.UpdateHistory{
		CycleTime:    cycleTime,
		UpstreamTime: upstreamTime,
		RecordCount:  recordCount,
	}

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to record checkpoint: %w", err)
	}

	return nil
}

// GetLastCheckpoint returns the most recent checkpoint row, or nil when none exists
func (s *pgStore) GetLastCheckpoint(ctx context.Context) (*schema.UpdateHistory, error) {
	var row schema.UpdateHistory
	err := s.db.WithContext(ctx).Order("id DESC").First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last checkpoint: %w", err)
	}

	return &row, nil
}

// GetCollectionStats returns the aggregate supply statistics
func (s *pgStore) GetCollectionStats(ctx context.Context) (*CollectionStats, error) {
	stats := &CollectionStats{}

	if err := s.db.WithContext(ctx).Model(&schema.Card{}).Count(&stats.CardCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count cards: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&schema.CardMeta{}).Count(&stats.CardMetaCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count archetypes: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&schema.MintPass{}).Count(&stats.MintPassCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count mint passes: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&schema.Owner{}).Count(&stats.OwnerCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count owners: %w", err)
	}

	err := s.db.WithContext(ctx).
		Table("cards").
		Select("rarities.name AS name, COUNT(cards.id) AS count").
		Joins("JOIN card_meta ON card_meta.id = cards.card_meta_id").
		Joins("JOIN rarities ON rarities.id = card_meta.rarity_id").
		Group("rarities.name").
		Order("rarities.name").
		Scan(&stats.Rarities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute rarity supplies: %w", err)
	}

	return stats, nil
}

// cardMetaSelect is the shared projection of archetype listing queries
const cardMetaSelect = `card_meta.id AS id, card_meta.name AS name, card_meta.description AS description,
card_meta.image_url AS image_url, elements.name AS element, rarities.name AS rarity,
families.name AS family, COUNT(cards.id) AS supply`

func (s *pgStore) cardMetaQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("card_meta").
		Select(cardMetaSelect).
		Joins("JOIN elements ON elements.id = card_meta.element_id").
		Joins("JOIN rarities ON rarities.id = card_meta.rarity_id").
		Joins("JOIN families ON families.id = card_meta.family_id").
		Joins("LEFT JOIN cards ON cards.card_meta_id = card_meta.id").
		Group("card_meta.id, elements.name, rarities.name, families.name")
}

// GetCardCollection returns every archetype with its dimension names and supply
func (s *pgStore) GetCardCollection(ctx context.Context) ([]CardMetaRow, error) {
	var rows []CardMetaRow
	err := s.cardMetaQuery(ctx).
		Order("card_meta.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list archetypes: %w", err)
	}

	return rows, nil
}

// GetCardDetail returns one archetype, or nil when unknown
func (s *pgStore) GetCardDetail(ctx context.Context, metaID string) (*CardMetaRow, error) {
	var rows []CardMetaRow
	err := s.cardMetaQuery(ctx).
		Where("card_meta.id = ?", metaID).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get archetype: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return &rows[0], nil
}

// GetCardHolders returns the minted instances of one archetype with their holders
func (s *pgStore) GetCardHolders(ctx context.Context, metaID string) ([]CardHolderRow, error) {
	var rows []CardHolderRow
	err := s.db.WithContext(ctx).
		Table("cards").
		Select(`cards.id AS token_id, owners.address AS address, cards.foil AS foil,
cards.rank AS rank, cards.grade AS grade, cards.power AS power, cards.numbering AS numbering`).
		Joins("JOIN owners ON owners.id = cards.owner_id").
		Where("cards.card_meta_id = ?", metaID).
		Order("cards.numbering, cards.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list holders: %w", err)
	}

	return rows, nil
}

// GetUserCollection returns all assets held by an address
func (s *pgStore) GetUserCollection(ctx context.Context, address string) (*UserCollection, error) {
	collection := &UserCollection{}

	err := s.db.WithContext(ctx).
		Table("cards").
		Select(`cards.id AS token_id, card_meta.id AS meta_id, card_meta.name AS name,
elements.name AS element, rarities.name AS rarity, families.name AS family,
cards.foil AS foil, cards.rank AS rank, cards.grade AS grade,
cards.power AS power, cards.numbering AS numbering`).
		Joins("JOIN owners ON owners.id = cards.owner_id").
		Joins("JOIN card_meta ON card_meta.id = cards.card_meta_id").
		Joins("JOIN elements ON elements.id = card_meta.element_id").
		Joins("JOIN rarities ON rarities.id = card_meta.rarity_id").
		Joins("JOIN families ON families.id = card_meta.family_id").
		Where("owners.address = ?", address).
		Order("cards.id").
		Scan(&collection.Cards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list user cards: %w", err)
	}

	err = s.db.WithContext(ctx).
		Table("mint_passes").
		Select("mint_passes.id AS token_id, mint_pass_types.id AS type_id, mint_pass_types.name AS name").
		Joins("JOIN owners ON owners.id = mint_passes.owner_id").
		Joins("JOIN mint_pass_types ON mint_pass_types.id = mint_passes.mint_pass_type_id").
		Where("owners.address = ?", address).
		Order("mint_passes.id").
		Scan(&collection.MintPasses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list user mint passes: %w", err)
	}

	return collection, nil
}

// GetUserInfo returns the holdings summary of an address, or nil when the
// address was never observed
func (s *pgStore) GetUserInfo(ctx context.Context, address string) (*UserInfo, error) {
	var owner schema.Owner
	err := s.db.WithContext(ctx).Where("address = ?", address).First(&owner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}

	info := &UserInfo{Address: owner.Address}

	err = s.db.WithContext(ctx).
		Model(&schema.Card{}).
		Where("owner_id = ?", owner.ID).
		Count(&info.CardCount).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count user cards: %w", err)
	}

	err = s.db.WithContext(ctx).
		Model(&schema.Card{}).
		Where("owner_id = ?", owner.ID).
		Distinct("card_meta_id").
		Count(&info.CardMetaCount).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count user archetypes: %w", err)
	}

	err = s.db.WithContext(ctx).
		Model(&schema.MintPass{}).
		Where("owner_id = ?", owner.ID).
		Count(&info.MintPassCount).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count user mint passes: %w", err)
	}

	return info, nil
}

// ListUsers returns one page of owners ordered by descending card count
func (s *pgStore) ListUsers(ctx context.Context, pageIndex, pageSize int) ([]UserRow, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&schema.Owner{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count owners: %w", err)
	}

	var rows []UserRow
	err := s.db.WithContext(ctx).
		Table("owners").
		Select("owners.address AS address, COUNT(cards.id) AS card_count").
		Joins("LEFT JOIN cards ON cards.owner_id = owners.id").
		Group("owners.address").
		Order("card_count DESC, owners.address").
		Limit(pageSize).
		Offset(pageIndex * pageSize).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list owners: %w", err)
	}

	return rows, total, nil
}
