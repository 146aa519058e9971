package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"folio/internal/platform/ledger"
)

// Issuance endpoints for local operability: mint assets, verify collections,
// and fund accounts without a separate tool.

type mintAssetRequest struct {
	Owner        string `json:"owner"`
	CollectionID string `json:"collection_id"`
}

type assetResponse struct {
	Status string `json:"status"`
	Data   struct {
		AssetID            string `json:"asset_id"`
		CollectionID       string `json:"collection_id"`
		Holder             string `json:"holder"`
		CollectionVerified bool   `json:"collection_verified"`
	} `json:"data"`
}

type depositRequest struct {
	Amount int64 `json:"amount"`
}

type balanceResponse struct {
	Status string `json:"status"`
	Data   struct {
		Account string `json:"account"`
		Balance int64  `json:"balance"`
	} `json:"data"`
}

type ledgerErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleMintAsset(w http.ResponseWriter, r *http.Request) {
	var req mintAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	asset, err := s.assets.Mint(r.Context(), req.Owner, req.CollectionID)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapAsset(asset))
}

func (s *Server) handleVerifyCollection(w http.ResponseWriter, r *http.Request) {
	asset, err := s.assets.VerifyCollection(r.Context(), r.PathValue("asset_id"))
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapAsset(asset))
}

func (s *Server) handleDeposit(w http.ResponseWriter, r *http.Request) {
	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	account := r.PathValue("account")
	if err := s.cash.Deposit(r.Context(), account, req.Amount); err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	s.writeBalance(w, r, account)
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	s.writeBalance(w, r, r.PathValue("account"))
}

func (s *Server) writeBalance(w http.ResponseWriter, r *http.Request, account string) {
	balance, err := s.cash.Balance(r.Context(), account)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}

	resp := balanceResponse{Status: "ok"}
	resp.Data.Account = account
	resp.Data.Balance = balance
	writeJSON(w, http.StatusOK, resp)
}

func mapAsset(asset ledger.Asset) assetResponse {
	resp := assetResponse{Status: "ok"}
	resp.Data.AssetID = asset.AssetID
	resp.Data.CollectionID = asset.CollectionID
	resp.Data.Holder = asset.Holder
	resp.Data.CollectionVerified = asset.CollectionVerified
	return resp
}

func writeLedgerDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrAssetNotFound):
		writeLedgerError(w, http.StatusNotFound, "asset_not_found", err.Error())
	case errors.Is(err, ledger.ErrNotHolder):
		writeLedgerError(w, http.StatusForbidden, "not_holder", err.Error())
	case errors.Is(err, ledger.ErrInsufficientFunds):
		writeLedgerError(w, http.StatusPaymentRequired, "insufficient_funds", err.Error())
	case errors.Is(err, ledger.ErrZeroAmount),
		errors.Is(err, ledger.ErrNoCollection):
		writeLedgerError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeLedgerError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeLedgerError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, ledgerErrorResponse{
		Code:    code,
		Message: message,
	})
}
