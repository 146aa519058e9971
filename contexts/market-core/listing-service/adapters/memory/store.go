package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	application "folio/contexts/market-core/listing-service/application"
	"folio/contexts/market-core/listing-service/domain/entities"
	domainerrors "folio/contexts/market-core/listing-service/domain/errors"
	"folio/contexts/market-core/listing-service/ports"
)

// Store is an in-memory adapter implementing the listing-service ports for
// local runtime and tests. It is not intended as production persistence.
//
// A single mutex critical section approximates transactional semantics:
// listing, vault, and outbox writes succeed or fail together, and
// ResolveListing holds the lock across the settlement callback so racing
// resolvers serialize with exactly one winner.
type Store struct {
	mu           sync.RWMutex
	marketplaces map[string]entities.Marketplace
	listings     map[string]entities.Listing
	vaults       map[string]entities.Vault
	idempotency  map[string]ports.IdempotencyRecord
	outbox       map[string]ports.OutboxMessage
	outboxOrder  []string
	outboxSent   map[string]time.Time
	sequence     uint64
	logger       *slog.Logger
}

func NewStore(logger *slog.Logger) *Store {
	return &Store{
		marketplaces: make(map[string]entities.Marketplace),
		listings:     make(map[string]entities.Listing),
		vaults:       make(map[string]entities.Vault),
		idempotency:  make(map[string]ports.IdempotencyRecord),
		outbox:       make(map[string]ports.OutboxMessage),
		outboxOrder:  make([]string, 0),
		outboxSent:   make(map[string]time.Time),
		logger:       application.ResolveLogger(logger),
	}
}

func (s *Store) InitMarketplace(_ context.Context, marketplace entities.Marketplace) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.marketplaces[marketplace.Name]; ok {
		return domainerrors.ErrMarketplaceExists
	}
	s.marketplaces[marketplace.Name] = marketplace
	return nil
}

func (s *Store) GetMarketplace(_ context.Context, name string) (entities.Marketplace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	marketplace, ok := s.marketplaces[name]
	if !ok {
		return entities.Marketplace{}, domainerrors.ErrMarketplaceNotFound
	}
	return marketplace, nil
}

func (s *Store) CreateListingWithVault(_ context.Context, listing entities.Listing, vault entities.Vault, event ports.ListingEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := listing.Key()
	if _, ok := s.listings[key]; ok {
		return domainerrors.ErrDuplicateListing
	}

	payload, err := marshalListingEnvelope(event)
	if err != nil {
		return err
	}

	s.listings[key] = listing
	s.vaults[vault.VaultKey] = vault
	s.appendOutbox(event, payload)

	s.logger.Debug("listing stored",
		"event", "memory_listing_created",
		"module", "market-core/listing-service",
		"layer", "adapter",
		"listing_id", listing.ListingID,
		"vault_key", vault.VaultKey,
	)
	return nil
}

func (s *Store) GetListing(_ context.Context, marketplace, assetID string) (entities.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listing, ok := s.listings[entities.ListingKey(marketplace, assetID)]
	if !ok {
		return entities.Listing{}, domainerrors.ErrListingNotFound
	}
	return listing, nil
}

func (s *Store) GetVault(_ context.Context, vaultKey string) (entities.Vault, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vault, ok := s.vaults[vaultKey]
	if !ok {
		return entities.Vault{}, domainerrors.ErrVaultEmpty
	}
	return vault, nil
}

func (s *Store) ListListings(_ context.Context, marketplace string) ([]entities.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listings := make([]entities.Listing, 0)
	for _, listing := range s.listings {
		if listing.Marketplace == marketplace {
			listings = append(listings, listing)
		}
	}
	sort.Slice(listings, func(i, j int) bool {
		if listings[i].OpenedAt.Equal(listings[j].OpenedAt) {
			return listings[i].ListingID < listings[j].ListingID
		}
		return listings[i].OpenedAt.Before(listings[j].OpenedAt)
	})
	return listings, nil
}

func (s *Store) ResolveListing(_ context.Context, marketplace, assetID string, settle func(entities.Listing, entities.Vault) (ports.ListingEvent, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := entities.ListingKey(marketplace, assetID)
	listing, ok := s.listings[key]
	if !ok {
		return domainerrors.ErrListingNotFound
	}
	vaultKey := entities.VaultKeyFor(listing.Marketplace, listing.AssetID, listing.ListingID)
	vault, ok := s.vaults[vaultKey]
	if !ok {
		return domainerrors.ErrVaultEmpty
	}

	event, err := settle(listing, vault)
	if err != nil {
		return err
	}

	payload, err := marshalListingEnvelope(event)
	if err != nil {
		return err
	}

	delete(s.listings, key)
	delete(s.vaults, vaultKey)
	s.appendOutbox(event, payload)

	s.logger.Debug("listing resolved",
		"event", "memory_listing_resolved",
		"module", "market-core/listing-service",
		"layer", "adapter",
		"listing_id", listing.ListingID,
		"event_type", event.EventType,
	)
	return nil
}

func (s *Store) Get(_ context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.idempotency[key]
	if !ok {
		return ports.IdempotencyRecord{}, false, nil
	}
	if !record.ExpiresAt.IsZero() && now.After(record.ExpiresAt) {
		return ports.IdempotencyRecord{}, false, nil
	}
	return record, true, nil
}

func (s *Store) Put(_ context.Context, record ports.IdempotencyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.idempotency[record.Key] = record
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pending := make([]ports.OutboxMessage, 0, limit)
	for _, id := range s.outboxOrder {
		if _, sent := s.outboxSent[id]; sent {
			continue
		}
		if message, ok := s.outbox[id]; ok {
			pending = append(pending, message)
		}
		if limit > 0 && len(pending) >= limit {
			break
		}
	}
	return pending, nil
}

func (s *Store) MarkOutboxSent(_ context.Context, outboxID string, sentAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.outboxSent[outboxID] = sentAt.UTC()
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	value := atomic.AddUint64(&s.sequence, 1)
	return fmt.Sprintf("lst-%d", value), nil
}

// OutboxEvents exposes every appended event in order for tests.
func (s *Store) OutboxEvents() []ports.OutboxMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]ports.OutboxMessage, 0, len(s.outboxOrder))
	for _, id := range s.outboxOrder {
		if message, ok := s.outbox[id]; ok {
			events = append(events, message)
		}
	}
	return events
}

func (s *Store) appendOutbox(event ports.ListingEvent, payload []byte) {
	s.outbox[event.EventID] = ports.OutboxMessage{
		OutboxID:     event.EventID,
		EventType:    event.EventType,
		PartitionKey: event.PartitionKey,
		Payload:      payload,
		CreatedAt:    event.OccurredAt.UTC(),
	}
	s.outboxOrder = append(s.outboxOrder, event.EventID)
}

func marshalListingEnvelope(event ports.ListingEvent) ([]byte, error) {
	envelope := ports.EventEnvelope{
		EventID:          event.EventID,
		EventType:        event.EventType,
		OccurredAt:       event.OccurredAt.UTC(),
		SourceService:    "listing-service",
		SchemaVersion:    1,
		PartitionKeyPath: "asset_id",
		PartitionKey:     event.PartitionKey,
	}
	data, err := json.Marshal(map[string]any{
		"listing_id":  event.ListingID,
		"marketplace": event.Marketplace,
		"asset_id":    event.AssetID,
		"maker":       event.Maker,
		"taker":       event.Taker,
		"price":       event.Price,
		"fee_paid":    event.FeePaid,
	})
	if err != nil {
		return nil, err
	}
	envelope.Data = data
	return json.Marshal(envelope)
}
