package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type OpenListingRequest struct {
	AssetID string `json:"asset_id"`
	Maker   string `json:"maker"`
	Price   int64  `json:"price"`
}

type ListingDTO struct {
	ListingID   string `json:"listing_id"`
	Marketplace string `json:"marketplace"`
	AssetID     string `json:"asset_id"`
	Maker       string `json:"maker"`
	Price       int64  `json:"price"`
	VaultKey    string `json:"vault_key,omitempty"`
	OpenedAt    string `json:"opened_at"`
}

type OpenListingResponse struct {
	Status   string     `json:"status"`
	Replayed bool       `json:"replayed,omitempty"`
	Data     ListingDTO `json:"data"`
}

type PurchaseListingRequest struct {
	Taker string `json:"taker"`
}

type PurchaseListingResponse struct {
	Status string `json:"status"`
	Data   struct {
		Listing        ListingDTO `json:"listing"`
		FeePaid        int64      `json:"fee_paid"`
		SellerProceeds int64      `json:"seller_proceeds"`
	} `json:"data"`
}

type CancelListingRequest struct {
	Maker string `json:"maker"`
}

type CancelListingResponse struct {
	Status string     `json:"status"`
	Data   ListingDTO `json:"data"`
}

type GetListingResponse struct {
	Status string     `json:"status"`
	Data   ListingDTO `json:"data"`
}

type ListListingsResponse struct {
	Status string       `json:"status"`
	Data   []ListingDTO `json:"data"`
}
