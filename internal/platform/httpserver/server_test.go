package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	roleservice "folio/contexts/identity-access/role-service"
	listingservice "folio/contexts/market-core/listing-service"
	listingledger "folio/contexts/market-core/listing-service/adapters/ledger"
	listingcommands "folio/contexts/market-core/listing-service/application/commands"
	contentservice "folio/contexts/publishing-editorial/content-service"
	contentledger "folio/contexts/publishing-editorial/content-service/adapters/ledger"
	"folio/internal/platform/ledger"
)

type testPolicy struct {
	roles roleservice.Module
}

func (p testPolicy) HasRole(ctx context.Context, userID, role string) (bool, error) {
	return p.roles.HasRole.Execute(ctx, userID, role)
}

type serverKit struct {
	server *Server
	assets *ledger.AssetBook
	cash   *ledger.CashBook
}

func newTestServer(t *testing.T) serverKit {
	t.Helper()

	assets := ledger.NewAssetBook(nil)
	cash := ledger.NewCashBook(nil)
	roles := roleservice.NewInMemoryModule(nil)
	listings := listingservice.NewInMemoryModule(
		listingledger.AssetRegistry{Book: assets},
		listingledger.ValueLedger{Cash: cash},
		10,
		nil,
	)
	content := contentservice.NewInMemoryModule(
		contentledger.AssetRegistry{Book: assets},
		contentledger.ValueLedger{Cash: cash},
		testPolicy{roles: roles},
		true,
		nil,
	)
	if _, err := listings.InitMarketplace.Execute(context.Background(), listingcommands.InitMarketplaceCommand{
		Name:           "test-market",
		FeeRatePercent: 2,
		Treasury:       "treasury",
	}); err != nil {
		t.Fatalf("init marketplace failed: %v", err)
	}

	server := New(listings, content, roles, assets, cash, nil, ":0")
	return serverKit{server: server, assets: assets, cash: cash}
}

func (k serverKit) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request failed: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	k.server.mux.ServeHTTP(rr, req)
	return rr
}

func TestGetMissingListingReturns404(t *testing.T) {
	kit := newTestServer(t)

	rr := kit.do(t, http.MethodGet, "/v1/marketplaces/test-market/listings/nope", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestOpenListingRoundTrip(t *testing.T) {
	kit := newTestServer(t)
	ctx := context.Background()

	asset, err := kit.assets.Mint(ctx, "maker-1", "col-1")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	if _, err := kit.assets.VerifyCollection(ctx, asset.AssetID); err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if err := kit.cash.Deposit(ctx, "maker-1", 10); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	rr := kit.do(t, http.MethodPost, "/v1/marketplaces/test-market/listings", map[string]any{
		"asset_id": asset.AssetID,
		"maker":    "maker-1",
		"price":    500,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = kit.do(t, http.MethodGet, "/v1/marketplaces/test-market/listings/"+asset.AssetID, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestOpenListingNonHolderReturns403(t *testing.T) {
	kit := newTestServer(t)
	ctx := context.Background()

	asset, err := kit.assets.Mint(ctx, "maker-1", "col-1")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	if _, err := kit.assets.VerifyCollection(ctx, asset.AssetID); err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	rr := kit.do(t, http.MethodPost, "/v1/marketplaces/test-market/listings", map[string]any{
		"asset_id": asset.AssetID,
		"maker":    "intruder",
		"price":    500,
	})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestPurchaseWithoutFundsReturns402(t *testing.T) {
	kit := newTestServer(t)
	ctx := context.Background()

	asset, err := kit.assets.Mint(ctx, "maker-1", "col-1")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	if _, err := kit.assets.VerifyCollection(ctx, asset.AssetID); err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if err := kit.cash.Deposit(ctx, "maker-1", 10); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	rr := kit.do(t, http.MethodPost, "/v1/marketplaces/test-market/listings", map[string]any{
		"asset_id": asset.AssetID,
		"maker":    "maker-1",
		"price":    500,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("open listing failed: %d %s", rr.Code, rr.Body.String())
	}

	rr = kit.do(t, http.MethodPost, "/v1/marketplaces/test-market/listings/"+asset.AssetID+"/purchase", map[string]any{
		"taker": "broke-buyer",
	})
	if rr.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestCreateBookWithoutRoleReturns403(t *testing.T) {
	kit := newTestServer(t)

	rr := kit.do(t, http.MethodPost, "/v1/books", map[string]any{
		"writer":        "nobody",
		"collection_id": "col-1",
		"title":         "No Role",
		"genre":         "essays",
		"capacity":      3,
	})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestRoleGrantAndBookCreation(t *testing.T) {
	kit := newTestServer(t)

	rr := kit.do(t, http.MethodPost, "/v1/roles", map[string]any{
		"user_id":    "writer-1",
		"role":       "writer",
		"granted_by": "admin",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("grant failed: %d %s", rr.Code, rr.Body.String())
	}

	// duplicate grant conflicts
	rr = kit.do(t, http.MethodPost, "/v1/roles", map[string]any{
		"user_id":    "writer-1",
		"role":       "writer",
		"granted_by": "admin",
	})
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = kit.do(t, http.MethodPost, "/v1/books", map[string]any{
		"writer":        "writer-1",
		"collection_id": "col-1",
		"title":         "With Role",
		"genre":         "essays",
		"capacity":      3,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create book failed: %d %s", rr.Code, rr.Body.String())
	}
}

func TestLedgerIssuanceEndpoints(t *testing.T) {
	kit := newTestServer(t)

	rr := kit.do(t, http.MethodPost, "/v1/ledger/assets", map[string]any{
		"owner":         "alice",
		"collection_id": "col-1",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("mint failed: %d %s", rr.Code, rr.Body.String())
	}
	var minted assetResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &minted); err != nil {
		t.Fatalf("decode mint response failed: %v", err)
	}

	rr = kit.do(t, http.MethodPost, "/v1/ledger/assets/"+minted.Data.AssetID+"/verify-collection", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("verify failed: %d %s", rr.Code, rr.Body.String())
	}

	rr = kit.do(t, http.MethodPost, "/v1/ledger/accounts/alice/deposit", map[string]any{"amount": 250})
	if rr.Code != http.StatusOK {
		t.Fatalf("deposit failed: %d %s", rr.Code, rr.Body.String())
	}
	var balance balanceResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &balance); err != nil {
		t.Fatalf("decode balance failed: %v", err)
	}
	if balance.Data.Balance != 250 {
		t.Fatalf("expected balance 250, got %d", balance.Data.Balance)
	}

	rr = kit.do(t, http.MethodPost, "/v1/ledger/accounts/alice/deposit", map[string]any{"amount": 0})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero deposit, got %d", rr.Code)
	}
}
