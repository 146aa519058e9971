package ports

import (
	"context"
	"time"

	"folio/contexts/market-core/listing-service/domain/entities"
	contractsv1 "folio/contracts/gen/events/v1"
)

// AssetRecord is the registry view of one asset: a unique token with a single
// current holder and an optional, verifiable collection membership.
type AssetRecord struct {
	AssetID            string
	CollectionID       string
	Holder             string
	CollectionVerified bool
}

// AssetRegistry is the external issuance collaborator this context reads from
// and requests custody moves against. Transfer is an atomic holder swap; it
// must fail without effect when from is not the current holder.
type AssetRegistry interface {
	Get(ctx context.Context, assetID string) (AssetRecord, error)
	Transfer(ctx context.Context, assetID, from, to string) error
}

// Credit is one leg of a settlement.
type Credit struct {
	To     string
	Amount int64
}

// ValueLedger is the external value-transfer collaborator. Settle debits from
// once for the sum of all credits and applies every credit, or applies
// nothing at all.
type ValueLedger interface {
	Balance(ctx context.Context, account string) (int64, error)
	Settle(ctx context.Context, from string, credits []Credit) error
}

// ListingEvent is the outbound integration payload persisted to outbox in the
// same atomic unit as the listing state change it describes.
type ListingEvent struct {
	EventID      string
	EventType    string
	ListingID    string
	Marketplace  string
	AssetID      string
	Maker        string
	Taker        string
	Price        int64
	FeePaid      int64
	PartitionKey string
	OccurredAt   time.Time
}

// ListingRepository owns marketplace configuration and the listing/vault
// ledger, including the transaction boundaries of every lifecycle write.
type ListingRepository interface {
	// InitMarketplace creates the singleton marketplace row; a second call
	// for the same name fails with ErrMarketplaceExists.
	InitMarketplace(ctx context.Context, marketplace entities.Marketplace) error
	GetMarketplace(ctx context.Context, name string) (entities.Marketplace, error)

	// CreateListingWithVault must atomically persist the listing, its vault
	// record, and the opened outbox event. It fails with ErrDuplicateListing
	// when an open listing already exists for the (marketplace, asset) pair.
	CreateListingWithVault(ctx context.Context, listing entities.Listing, vault entities.Vault, event ListingEvent) error
	GetListing(ctx context.Context, marketplace, assetID string) (entities.Listing, error)
	GetVault(ctx context.Context, vaultKey string) (entities.Vault, error)
	ListListings(ctx context.Context, marketplace string) ([]entities.Listing, error)

	// ResolveListing runs settle while holding the listing's key lock and
	// deletes the listing and vault only if settle returns nil. Concurrent
	// resolvers against the same listing serialize here: exactly one can
	// observe the open listing, every later one gets ErrListingNotFound.
	ResolveListing(ctx context.Context, marketplace, assetID string, settle func(entities.Listing, entities.Vault) (ListingEvent, error)) error
}

// IdempotencyRecord captures dedupe metadata for mutating requests.
type IdempotencyRecord struct {
	Key         string
	RequestHash string
	Payload     []byte
	ExpiresAt   time.Time
}

// IdempotencyStore abstracts idempotency persistence with TTL handling.
type IdempotencyStore interface {
	Get(ctx context.Context, key string, now time.Time) (IdempotencyRecord, bool, error)
	Put(ctx context.Context, record IdempotencyRecord) error
}

// Clock allows deterministic testing of time-dependent rules.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts listing/event identifier generation.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// OutboxMessage is a row ready to relay from the module outbox.
type OutboxMessage struct {
	OutboxID     string
	EventType    string
	PartitionKey string
	Payload      []byte
	CreatedAt    time.Time
}

// OutboxRepository models worker-side outbox polling/acknowledgement.
type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxSent(ctx context.Context, outboxID string, sentAt time.Time) error
}

// EventEnvelope reuses the canonical cross-runtime envelope contract.
type EventEnvelope = contractsv1.Envelope

// EventPublisher publishes canonical envelopes to a topic.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}
