package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"folio/contexts/market-core/listing-service/domain/entities"
	domainerrors "folio/contexts/market-core/listing-service/domain/errors"
	"folio/contexts/market-core/listing-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	outboxStatusPending = "pending"
	outboxStatusSent    = "sent"
)

// Repository implements the listing-service ports on Postgres. Listing
// uniqueness is enforced by the (marketplace, asset_id) unique index;
// ResolveListing serializes racing resolvers with a row lock.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

// Migrate creates the listing-service tables.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(
		&marketplaceModel{},
		&listingModel{},
		&vaultModel{},
		&idempotencyModel{},
		&outboxModel{},
	)
}

func (r *Repository) InitMarketplace(ctx context.Context, marketplace entities.Marketplace) error {
	row := marketplaceModel{
		Name:           marketplace.Name,
		FeeRatePercent: marketplace.FeeRatePercent,
		Treasury:       marketplace.Treasury,
		CreatedAt:      marketplace.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrMarketplaceExists
		}
		return err
	}
	return nil
}

func (r *Repository) GetMarketplace(ctx context.Context, name string) (entities.Marketplace, error) {
	var row marketplaceModel
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Marketplace{}, domainerrors.ErrMarketplaceNotFound
		}
		return entities.Marketplace{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) CreateListingWithVault(ctx context.Context, listing entities.Listing, vault entities.Vault, event ports.ListingEvent) error {
	payload, err := marshalListingEnvelope(event)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		listingRow := listingModelFromEntity(listing)
		if err := tx.Create(&listingRow).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrDuplicateListing
			}
			return err
		}

		vaultRow := vaultModelFromEntity(vault)
		if err := tx.Create(&vaultRow).Error; err != nil {
			return err
		}

		outboxRow := outboxModel{
			OutboxID:     event.EventID,
			EventType:    event.EventType,
			PartitionKey: event.PartitionKey,
			Payload:      payload,
			Status:       outboxStatusPending,
			CreatedAt:    event.OccurredAt.UTC(),
		}
		return tx.Create(&outboxRow).Error
	})
}

func (r *Repository) GetListing(ctx context.Context, marketplace, assetID string) (entities.Listing, error) {
	var row listingModel
	err := r.db.WithContext(ctx).
		Where("marketplace = ? AND asset_id = ?", marketplace, assetID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Listing{}, domainerrors.ErrListingNotFound
		}
		return entities.Listing{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetVault(ctx context.Context, vaultKey string) (entities.Vault, error) {
	var row vaultModel
	err := r.db.WithContext(ctx).Where("vault_key = ?", vaultKey).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Vault{}, domainerrors.ErrVaultEmpty
		}
		return entities.Vault{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListListings(ctx context.Context, marketplace string) ([]entities.Listing, error) {
	var rows []listingModel
	err := r.db.WithContext(ctx).
		Where("marketplace = ?", marketplace).
		Order("opened_at ASC, listing_id ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	listings := make([]entities.Listing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, row.toEntity())
	}
	return listings, nil
}

func (r *Repository) ResolveListing(ctx context.Context, marketplace, assetID string, settle func(entities.Listing, entities.Vault) (ports.ListingEvent, error)) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var listingRow listingModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("marketplace = ? AND asset_id = ?", marketplace, assetID).
			First(&listingRow).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrListingNotFound
			}
			return err
		}
		listing := listingRow.toEntity()

		var vaultRow vaultModel
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("vault_key = ?", entities.VaultKeyFor(listing.Marketplace, listing.AssetID, listing.ListingID)).
			First(&vaultRow).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrVaultEmpty
			}
			return err
		}

		event, err := settle(listing, vaultRow.toEntity())
		if err != nil {
			return err
		}

		payload, err := marshalListingEnvelope(event)
		if err != nil {
			return err
		}

		if err := tx.Delete(&listingModel{}, "marketplace = ? AND asset_id = ?", marketplace, assetID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&vaultModel{}, "vault_key = ?", vaultRow.VaultKey).Error; err != nil {
			return err
		}

		outboxRow := outboxModel{
			OutboxID:     event.EventID,
			EventType:    event.EventType,
			PartitionKey: event.PartitionKey,
			Payload:      payload,
			Status:       outboxStatusPending,
			CreatedAt:    event.OccurredAt.UTC(),
		}
		return tx.Create(&outboxRow).Error
	})
}

func (r *Repository) Get(ctx context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	var row idempotencyModel
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.IdempotencyRecord{}, false, nil
		}
		return ports.IdempotencyRecord{}, false, err
	}
	if !row.ExpiresAt.IsZero() && now.After(row.ExpiresAt) {
		return ports.IdempotencyRecord{}, false, nil
	}
	return ports.IdempotencyRecord{
		Key:         row.Key,
		RequestHash: row.RequestHash,
		Payload:     row.Payload,
		ExpiresAt:   row.ExpiresAt,
	}, true, nil
}

func (r *Repository) Put(ctx context.Context, record ports.IdempotencyRecord) error {
	row := idempotencyModel{
		Key:         record.Key,
		RequestHash: record.RequestHash,
		Payload:     record.Payload,
		ExpiresAt:   record.ExpiresAt,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"request_hash", "payload", "expires_at"}),
		}).
		Create(&row).
		Error
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []outboxModel
	err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, ports.OutboxMessage{
			OutboxID:     row.OutboxID,
			EventType:    row.EventType,
			PartitionKey: row.PartitionKey,
			Payload:      row.Payload,
			CreatedAt:    row.CreatedAt,
		})
	}
	return messages, nil
}

func (r *Repository) MarkOutboxSent(ctx context.Context, outboxID string, sentAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", outboxID).
		Updates(map[string]any{"status": outboxStatusSent, "sent_at": sentAt.UTC()}).
		Error
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

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type marketplaceModel struct {
	Name           string    `gorm:"column:name;primaryKey"`
	FeeRatePercent int       `gorm:"column:fee_rate_percent"`
	Treasury       string    `gorm:"column:treasury"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (marketplaceModel) TableName() string { return "marketplaces" }

func (m marketplaceModel) toEntity() entities.Marketplace {
	return entities.Marketplace{
		Name:           m.Name,
		FeeRatePercent: m.FeeRatePercent,
		Treasury:       m.Treasury,
		CreatedAt:      m.CreatedAt,
	}
}

type listingModel struct {
	ListingID   string    `gorm:"column:listing_id;primaryKey"`
	Marketplace string    `gorm:"column:marketplace;uniqueIndex:listings_unique_open,priority:1"`
	AssetID     string    `gorm:"column:asset_id;uniqueIndex:listings_unique_open,priority:2"`
	Maker       string    `gorm:"column:maker"`
	Price       int64     `gorm:"column:price"`
	OpenedAt    time.Time `gorm:"column:opened_at"`
}

func (listingModel) TableName() string { return "listings" }

func listingModelFromEntity(listing entities.Listing) listingModel {
	return listingModel{
		ListingID:   listing.ListingID,
		Marketplace: listing.Marketplace,
		AssetID:     listing.AssetID,
		Maker:       listing.Maker,
		Price:       listing.Price,
		OpenedAt:    listing.OpenedAt,
	}
}

func (m listingModel) toEntity() entities.Listing {
	return entities.Listing{
		ListingID:   m.ListingID,
		Marketplace: m.Marketplace,
		AssetID:     m.AssetID,
		Maker:       m.Maker,
		Price:       m.Price,
		OpenedAt:    m.OpenedAt,
	}
}

type vaultModel struct {
	VaultKey  string `gorm:"column:vault_key;primaryKey"`
	ListingID string `gorm:"column:listing_id;uniqueIndex"`
	AssetID   string `gorm:"column:asset_id"`
	Maker     string `gorm:"column:maker"`
	RentUnits int64  `gorm:"column:rent_units"`
}

func (vaultModel) TableName() string { return "listing_vaults" }

func vaultModelFromEntity(vault entities.Vault) vaultModel {
	return vaultModel{
		VaultKey:  vault.VaultKey,
		ListingID: vault.ListingID,
		AssetID:   vault.AssetID,
		Maker:     vault.Maker,
		RentUnits: vault.RentUnits,
	}
}

func (m vaultModel) toEntity() entities.Vault {
	return entities.Vault{
		VaultKey:  m.VaultKey,
		ListingID: m.ListingID,
		AssetID:   m.AssetID,
		Maker:     m.Maker,
		RentUnits: m.RentUnits,
	}
}

type idempotencyModel struct {
	Key         string    `gorm:"column:key;primaryKey"`
	RequestHash string    `gorm:"column:request_hash"`
	Payload     []byte    `gorm:"column:payload"`
	ExpiresAt   time.Time `gorm:"column:expires_at"`
}

func (idempotencyModel) TableName() string { return "listing_idempotency" }

type outboxModel struct {
	OutboxID     string     `gorm:"column:outbox_id;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      []byte     `gorm:"column:payload"`
	Status       string     `gorm:"column:status;index"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	SentAt       *time.Time `gorm:"column:sent_at"`
}

func (outboxModel) TableName() string { return "listing_outbox" }
