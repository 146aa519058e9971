package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	listingerrors "folio/contexts/market-core/listing-service/domain/errors"
	listinghttp "folio/contexts/market-core/listing-service/transport/http"
)

func (s *Server) handleOpenListing(w http.ResponseWriter, r *http.Request) {
	var req listinghttp.OpenListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeListingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.listing.Handler.OpenListingHandler(
		r.Context(),
		r.Header.Get("Idempotency-Key"),
		r.PathValue("marketplace"),
		req,
	)
	if err != nil {
		writeListingDomainError(w, err)
		return
	}
	status := http.StatusCreated
	if resp.Replayed {
		status = http.StatusOK
	}
	writeJSON(w, status, resp)
}

func (s *Server) handlePurchaseListing(w http.ResponseWriter, r *http.Request) {
	var req listinghttp.PurchaseListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeListingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.listing.Handler.PurchaseListingHandler(
		r.Context(),
		r.PathValue("marketplace"),
		r.PathValue("asset_id"),
		req,
	)
	if err != nil {
		writeListingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCancelListing(w http.ResponseWriter, r *http.Request) {
	var req listinghttp.CancelListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeListingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.listing.Handler.CancelListingHandler(
		r.Context(),
		r.PathValue("marketplace"),
		r.PathValue("asset_id"),
		req,
	)
	if err != nil {
		writeListingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetListing(w http.ResponseWriter, r *http.Request) {
	resp, err := s.listing.Handler.GetListingHandler(
		r.Context(),
		r.PathValue("marketplace"),
		r.PathValue("asset_id"),
	)
	if err != nil {
		writeListingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListListings(w http.ResponseWriter, r *http.Request) {
	resp, err := s.listing.Handler.ListListingsHandler(r.Context(), r.PathValue("marketplace"))
	if err != nil {
		writeListingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeListingDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, listingerrors.ErrMarketplaceNotFound):
		writeListingError(w, http.StatusNotFound, "marketplace_not_found", err.Error())
	case errors.Is(err, listingerrors.ErrListingNotFound):
		writeListingError(w, http.StatusNotFound, "listing_not_found", err.Error())
	case errors.Is(err, listingerrors.ErrAssetNotFound):
		writeListingError(w, http.StatusNotFound, "asset_not_found", err.Error())
	case errors.Is(err, listingerrors.ErrVaultEmpty):
		writeListingError(w, http.StatusNotFound, "vault_empty", err.Error())
	case errors.Is(err, listingerrors.ErrMarketplaceExists),
		errors.Is(err, listingerrors.ErrDuplicateListing),
		errors.Is(err, listingerrors.ErrIdempotencyConflict):
		writeListingError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, listingerrors.ErrNotHolder),
		errors.Is(err, listingerrors.ErrNotMaker),
		errors.Is(err, listingerrors.ErrUnverifiedCollection):
		writeListingError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, listingerrors.ErrInsufficientFunds):
		writeListingError(w, http.StatusPaymentRequired, "insufficient_funds", err.Error())
	case errors.Is(err, listingerrors.ErrInvalidMarketplace),
		errors.Is(err, listingerrors.ErrInvalidFeeRate),
		errors.Is(err, listingerrors.ErrInvalidListing),
		errors.Is(err, listingerrors.ErrZeroPrice):
		writeListingError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeListingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeListingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, listinghttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
