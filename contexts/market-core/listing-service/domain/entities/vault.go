package entities

// Vault holds exactly one unit of exactly one asset in escrow for the
// lifetime of its listing. The key is derived from the listing identity so no
// two listings can alias the same vault. A vault is emptied and removed
// atomically with listing resolution; RentUnits is the storage deposit
// returned to the maker when that happens.
type Vault struct {
	VaultKey  string
	ListingID string
	AssetID   string
	Maker     string
	RentUnits int64
}

func NewVault(listing Listing, rentUnits int64) Vault {
	if rentUnits < 0 {
		rentUnits = 0
	}
	return Vault{
		VaultKey:  VaultKeyFor(listing.Marketplace, listing.AssetID, listing.ListingID),
		ListingID: listing.ListingID,
		AssetID:   listing.AssetID,
		Maker:     listing.Maker,
		RentUnits: rentUnits,
	}
}

// VaultKeyFor derives the deterministic escrow address for a listing.
func VaultKeyFor(marketplace, assetID, listingID string) string {
	return "vault:" + marketplace + ":" + assetID + ":" + listingID
}
