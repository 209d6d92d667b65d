package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/remybar/cta-server/internal/adapter"
	"github.com/remybar/cta-server/internal/domain"
	"github.com/remybar/cta-server/internal/logger"
	"github.com/remybar/cta-server/internal/providers/ledger"
	"github.com/remybar/cta-server/internal/store"
)

const (
	DEFAULT_CYCLE_INTERVAL = 5 * time.Minute // Time to sleep between sync cycles
	DEFAULT_PAGE_SIZE      = 200
	DEFAULT_MAX_RECORDS    = 10000
)

// CollectionSyncerConfig holds configuration for the collection syncer
type CollectionSyncerConfig struct {
	Collection    string        // Collection contract address on the ledger
	PageSize      int           // Records requested per page
	MaxRecords    int           // Record ceiling per sync cycle
	CycleInterval time.Duration // Time between sync cycles
	CycleTimeout  time.Duration // Deadline for one sync cycle, 0 disables
}

// collectionSyncer implements the Syncer interface for the asset feed.
// The upstream cursor lives only in memory; a restart replays the feed from
// the beginning, which the idempotent store reconciliation absorbs.
type collectionSyncer struct {
	config    *CollectionSyncerConfig
	store     store.Store
	ledger    ledger.Client
	clock     adapter.Clock
	cursor    string
	cycleMu   sync.Mutex
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewCollectionSyncer creates a new collection syncer
func NewCollectionSyncer(
	config *CollectionSyncerConfig,
	st store.Store,
	client ledger.Client,
	clock adapter.Clock,
) Syncer {
	if config.PageSize <= 0 {
		config.PageSize = DEFAULT_PAGE_SIZE
	}
	if config.MaxRecords <= 0 {
		config.MaxRecords = DEFAULT_MAX_RECORDS
	}
	if config.CycleInterval <= 0 {
		config.CycleInterval = DEFAULT_CYCLE_INTERVAL
	}

	return &collectionSyncer{
		config:    config,
		store:     st,
		ledger:    client,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the syncer's name
func (s *collectionSyncer) Name() string {
	return "collection-syncer"
}

// Start begins the syncer's main loop - runs a sync cycle, sleeps, repeats
func (s *collectionSyncer) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("syncer already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting collection syncer",
		zap.String("collection", s.config.Collection),
		zap.Int("page_size", s.config.PageSize),
		zap.Int("max_records", s.config.MaxRecords),
		zap.Duration("cycle_interval", s.config.CycleInterval),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Collection syncer stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Collection syncer stop requested")
			return nil
		default:
			if err := s.runSyncCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}

			if !s.sleep(ctx, s.config.CycleInterval) {
				return nil
			}
		}
	}
}

// Stop gracefully stops the syncer with timeout support
func (s *collectionSyncer) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping collection syncer")

	// Signal stop to the main loop
	close(s.stopChan)

	// Wait for main loop to exit, but respect context cancellation
	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Collection syncer stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Collection syncer stop interrupted by context timeout")
		return ctx.Err()
	}
}

// sleep waits for the given duration unless interrupted
func (s *collectionSyncer) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true // Sleep completed
	case <-ctx.Done():
		return false // Interrupted by context cancellation
	case <-s.stopChan:
		return false // Interrupted by stop signal
	}
}

// runSyncCycle runs a single sync cycle: pages through the feed from the
// in-memory cursor, reconciling each page into the store, until the feed is
// exhausted or the record ceiling is reached. Overlapping invocations are
// rejected; only one cycle touches the store at a time.
func (s *collectionSyncer) runSyncCycle(ctx context.Context) error {
	if !s.cycleMu.TryLock() {
		logger.WarnCtx(ctx, "Sync cycle already in progress, skipping")
		return nil
	}
	defer s.cycleMu.Unlock()

	if s.config.CycleTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.CycleTimeout)
		defer cancel()
	}

	startTime := s.clock.Now()
	logger.InfoCtx(ctx, "Starting sync cycle", zap.String("cursor", s.cursor))

	processed := 0
	pages := 0
	for processed < s.config.MaxRecords {
		page, err := s.ledger.ListAssets(ctx, ledger.ListAssetsParams{
			Collection: s.config.Collection,
			PageSize:   s.config.PageSize,
			OrderBy:    "updated_at",
			Direction:  "asc",
			Cursor:     s.cursor,
		})
		if err != nil {
			// Cursor untouched, the next cycle retries the same page
			return fmt.Errorf("failed to fetch asset page: %w", err)
		}

		s.cursor = page.Cursor

		if len(page.Result) == 0 {
			break // Caught up with the feed
		}

		if err := s.applyPage(ctx, page.Result); err != nil {
			return err
		}

		processed += len(page.Result)
		pages++

		if page.Cursor == "" {
			break
		}
	}

	logger.InfoCtx(ctx, "Sync cycle complete",
		zap.Int("records", processed),
		zap.Int("pages", pages),
		zap.Duration("duration", s.clock.Since(startTime)),
	)

	return nil
}

// pageBatch collects the deduplicated candidates of one feed page, grouped by
// the order they must reach the store in
type pageBatch struct {
	elements      []string
	rarities      []string
	families      []string
	owners        []string
	cardMetas     []store.CardMetaCandidate
	cards         []store.CardCandidate
	mintPassTypes []store.MintPassTypeCandidate
	mintPasses    []store.MintPassCandidate
	burnedCards   []string
	burnedPasses  []string
}

// applyPage classifies the page's records and reconciles them into the store,
// finishing with a checkpoint row
func (s *collectionSyncer) applyPage(ctx context.Context, assets []ledger.Asset) error {
	batch, err := classifyPage(assets)
	if err != nil {
		return err
	}

	dims := []struct {
		dim   domain.Dimension
		names []string
	}{
		{domain.DimensionElement, batch.elements},
		{domain.DimensionRarity, batch.rarities},
		{domain.DimensionFamily, batch.families},
		{domain.DimensionOwner, batch.owners},
	}
	for _, d := range dims {
		if err := s.store.UpsertDimensionValues(ctx, d.dim, d.names); err != nil {
			return err
		}
	}

	if err := s.store.UpsertCardMetas(ctx, batch.cardMetas); err != nil {
		return err
	}
	if err := s.store.UpsertMintPassTypes(ctx, batch.mintPassTypes); err != nil {
		return err
	}
	if err := s.store.UpsertCards(ctx, batch.cards); err != nil {
		return err
	}
	if err := s.store.UpsertMintPasses(ctx, batch.mintPasses); err != nil {
		return err
	}
	if err := s.store.DeleteCards(ctx, batch.burnedCards); err != nil {
		return err
	}
	if err := s.store.DeleteMintPasses(ctx, batch.burnedPasses); err != nil {
		return err
	}

	// The feed is ordered by updated_at ascending, so the first record marks
	// how far behind the upstream this page was when it got processed
	if err := s.store.RecordCheckpoint(ctx, s.clock.Now(), assets[0].UpdatedAt, len(assets)); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Applied asset page",
		zap.Int("records", len(assets)),
		zap.Int("cards", len(batch.cards)),
		zap.Int("mint_passes", len(batch.mintPasses)),
		zap.Int("burned", len(batch.burnedCards)+len(batch.burnedPasses)),
	)

	return nil
}

// classifyPage parses a page's records into deduplicated candidates.
// The first occurrence of a token or archetype wins within the page; a
// record whose kind is unrecognized is skipped; a record that fails to parse
// aborts the page.
func classifyPage(assets []ledger.Asset) (*pageBatch, error) {
	batch := &pageBatch{}

	seenNames := map[domain.Dimension]map[string]bool{
		domain.DimensionElement: {},
		domain.DimensionRarity:  {},
		domain.DimensionFamily:  {},
		domain.DimensionOwner:   {},
	}
	seenMetas := map[string]bool{}
	seenTypes := map[string]bool{}
	seenTokens := map[string]bool{}

	addName := func(dim domain.Dimension, name string, dst *[]string) {
		if name == "" || seenNames[dim][name] {
			return
		}
		seenNames[dim][name] = true
		*dst = append(*dst, name)
	}

	for _, asset := range assets {
		record, err := ledger.ParseAsset(asset)
		if err != nil {
			return nil, fmt.Errorf("failed to parse asset page: %w", err)
		}
		if record == nil {
			continue
		}
		if seenTokens[record.ID()] {
			continue
		}
		seenTokens[record.ID()] = true

		switch r := record.(type) {
		case domain.CardRecord:
			if r.IsBurned() {
				batch.burnedCards = append(batch.burnedCards, r.TokenID)
				continue
			}

			addName(domain.DimensionElement, r.Element, &batch.elements)
			addName(domain.DimensionRarity, r.Rarity, &batch.rarities)
			addName(domain.DimensionFamily, r.Family, &batch.families)
			addName(domain.DimensionOwner, r.Owner, &batch.owners)

			if !seenMetas[r.ArchetypeKey] {
				seenMetas[r.ArchetypeKey] = true
				batch.cardMetas = append(batch.cardMetas, store.CardMetaCandidate{
					ID:          r.ArchetypeKey,
					Name:        r.Name,
					Description: r.Description,
					ImageURL:    r.ImageURL,
					Element:     r.Element,
					Rarity:      r.Rarity,
					Family:      r.Family,
				})
			}

			batch.cards = append(batch.cards, store.CardCandidate{
				ID:          r.TokenID,
				ArchetypeID: r.ArchetypeKey,
				Owner:       r.Owner,
				Foil:        r.Foil,
				Rank:        r.Rank,
				Grade:       r.Grade,
				Power:       r.Power,
				Numbering:   r.Numbering,
				MintedAt:    r.MintedAt,
				UpdatedAt:   r.UpdatedAt,
			})

		case domain.MintPassRecord:
			if r.IsBurned() {
				batch.burnedPasses = append(batch.burnedPasses, r.TokenID)
				continue
			}

			addName(domain.DimensionOwner, r.Owner, &batch.owners)

			if !seenTypes[r.TypeKey] {
				seenTypes[r.TypeKey] = true
				batch.mintPassTypes = append(batch.mintPassTypes, store.MintPassTypeCandidate{
					ID:       r.TypeKey,
					Name:     r.Name,
					ImageURL: r.ImageURL,
				})
			}

			batch.mintPasses = append(batch.mintPasses, store.MintPassCandidate{
				ID:        r.TokenID,
				TypeID:    r.TypeKey,
				Owner:     r.Owner,
				MintedAt:  r.MintedAt,
				UpdatedAt: r.UpdatedAt,
			})
		}
	}

	return batch, nil
}
