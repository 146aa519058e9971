package httpadapter

import (
	"context"
	"log/slog"
	"time"

	application "folio/contexts/market-core/listing-service/application"
	"folio/contexts/market-core/listing-service/application/commands"
	"folio/contexts/market-core/listing-service/application/queries"
	"folio/contexts/market-core/listing-service/domain/entities"
	httptransport "folio/contexts/market-core/listing-service/transport/http"
)

type Handler struct {
	OpenListing     commands.OpenListingUseCase
	PurchaseListing commands.PurchaseListingUseCase
	CancelListing   commands.CancelListingUseCase
	GetListing      queries.GetListingUseCase
	ListListings    queries.ListListingsUseCase
	Logger          *slog.Logger
}

// OpenListingHandler godoc
// @Summary Open a listing
// @Description Lists a held asset for sale and moves it into escrow.
// @Tags listing-service
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key"
// @Param marketplace path string true "Marketplace name"
// @Param request body httptransport.OpenListingRequest true "Listing request"
// @Success 201 {object} httptransport.OpenListingResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /v1/marketplaces/{marketplace}/listings [post]
func (h Handler) OpenListingHandler(ctx context.Context, idempotencyKey, marketplace string, req httptransport.OpenListingRequest) (httptransport.OpenListingResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Info("open listing request received",
		"event", "http_open_listing_received",
		"module", "market-core/listing-service",
		"layer", "transport",
		"marketplace", marketplace,
		"asset_id", req.AssetID,
	)

	result, err := h.OpenListing.Execute(ctx, commands.OpenListingCommand{
		IdempotencyKey: idempotencyKey,
		Marketplace:    marketplace,
		AssetID:        req.AssetID,
		Maker:          req.Maker,
		Price:          req.Price,
	})
	if err != nil {
		return httptransport.OpenListingResponse{}, err
	}

	dto := mapListing(result.Listing)
	dto.VaultKey = result.Vault.VaultKey
	return httptransport.OpenListingResponse{
		Status:   "created",
		Replayed: result.Replayed,
		Data:     dto,
	}, nil
}

// PurchaseListingHandler godoc
// @Summary Purchase a listing
// @Description Settles payment, releases escrow to the buyer, and removes the listing.
// @Tags listing-service
// @Accept json
// @Produce json
// @Param marketplace path string true "Marketplace name"
// @Param asset_id path string true "Asset identifier"
// @Param request body httptransport.PurchaseListingRequest true "Purchase request"
// @Success 200 {object} httptransport.PurchaseListingResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 402 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /v1/marketplaces/{marketplace}/listings/{asset_id}/purchase [post]
func (h Handler) PurchaseListingHandler(ctx context.Context, marketplace, assetID string, req httptransport.PurchaseListingRequest) (httptransport.PurchaseListingResponse, error) {
	result, err := h.PurchaseListing.Execute(ctx, commands.PurchaseListingCommand{
		Marketplace: marketplace,
		AssetID:     assetID,
		Taker:       req.Taker,
	})
	if err != nil {
		return httptransport.PurchaseListingResponse{}, err
	}

	resp := httptransport.PurchaseListingResponse{Status: "purchased"}
	resp.Data.Listing = mapListing(result.Listing)
	resp.Data.FeePaid = result.FeePaid
	resp.Data.SellerProceeds = result.SellerProceeds
	return resp, nil
}

// CancelListingHandler godoc
// @Summary Cancel a listing
// @Description Returns escrowed custody to the maker and removes the listing.
// @Tags listing-service
// @Accept json
// @Produce json
// @Param marketplace path string true "Marketplace name"
// @Param asset_id path string true "Asset identifier"
// @Param request body httptransport.CancelListingRequest true "Cancel request"
// @Success 200 {object} httptransport.CancelListingResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /v1/marketplaces/{marketplace}/listings/{asset_id}/cancel [post]
func (h Handler) CancelListingHandler(ctx context.Context, marketplace, assetID string, req httptransport.CancelListingRequest) (httptransport.CancelListingResponse, error) {
	listing, err := h.CancelListing.Execute(ctx, commands.CancelListingCommand{
		Marketplace: marketplace,
		AssetID:     assetID,
		Maker:       req.Maker,
	})
	if err != nil {
		return httptransport.CancelListingResponse{}, err
	}
	return httptransport.CancelListingResponse{
		Status: "cancelled",
		Data:   mapListing(listing),
	}, nil
}

// GetListingHandler godoc
// @Summary Get one open listing
// @Tags listing-service
// @Produce json
// @Param marketplace path string true "Marketplace name"
// @Param asset_id path string true "Asset identifier"
// @Success 200 {object} httptransport.GetListingResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /v1/marketplaces/{marketplace}/listings/{asset_id} [get]
func (h Handler) GetListingHandler(ctx context.Context, marketplace, assetID string) (httptransport.GetListingResponse, error) {
	listing, err := h.GetListing.Execute(ctx, marketplace, assetID)
	if err != nil {
		return httptransport.GetListingResponse{}, err
	}
	return httptransport.GetListingResponse{
		Status: "ok",
		Data:   mapListing(listing),
	}, nil
}

// ListListingsHandler godoc
// @Summary List open listings
// @Tags listing-service
// @Produce json
// @Param marketplace path string true "Marketplace name"
// @Success 200 {object} httptransport.ListListingsResponse
// @Router /v1/marketplaces/{marketplace}/listings [get]
func (h Handler) ListListingsHandler(ctx context.Context, marketplace string) (httptransport.ListListingsResponse, error) {
	listings, err := h.ListListings.Execute(ctx, marketplace)
	if err != nil {
		return httptransport.ListListingsResponse{}, err
	}

	data := make([]httptransport.ListingDTO, 0, len(listings))
	for _, listing := range listings {
		data = append(data, mapListing(listing))
	}
	return httptransport.ListListingsResponse{Status: "ok", Data: data}, nil
}

func mapListing(listing entities.Listing) httptransport.ListingDTO {
	return httptransport.ListingDTO{
		ListingID:   listing.ListingID,
		Marketplace: listing.Marketplace,
		AssetID:     listing.AssetID,
		Maker:       listing.Maker,
		Price:       listing.Price,
		OpenedAt:    listing.OpenedAt.Format(time.RFC3339),
	}
}
