package unit

import (
	"context"
	"errors"
	"testing"

	roleservice "folio/contexts/identity-access/role-service"
	rolehttp "folio/contexts/identity-access/role-service/transport/http"
	listingservice "folio/contexts/market-core/listing-service"
	listingledger "folio/contexts/market-core/listing-service/adapters/ledger"
	listingcommands "folio/contexts/market-core/listing-service/application/commands"
	listinghttp "folio/contexts/market-core/listing-service/transport/http"
	contentservice "folio/contexts/publishing-editorial/content-service"
	contentledger "folio/contexts/publishing-editorial/content-service/adapters/ledger"
	contenterrors "folio/contexts/publishing-editorial/content-service/domain/errors"
	contenthttp "folio/contexts/publishing-editorial/content-service/transport/http"
	"folio/internal/platform/ledger"
)

// TestPublishingMarketplaceWorkflow drives the full product loop: a writer
// publishes a chapter, lists its asset, a reader buys it, and access to the
// gated content follows the purchase.
func TestPublishingMarketplaceWorkflow(t *testing.T) {
	ctx := context.Background()
	assets := ledger.NewAssetBook(nil)
	cash := ledger.NewCashBook(nil)

	roles := roleservice.NewInMemoryModule(nil)
	content := contentservice.NewInMemoryModule(
		contentledger.AssetRegistry{Book: assets},
		contentledger.ValueLedger{Cash: cash},
		rolePolicyGlue{roles: roles},
		true,
		nil,
	)
	listings := listingservice.NewInMemoryModule(
		listingledger.AssetRegistry{Book: assets},
		listingledger.ValueLedger{Cash: cash},
		testRentUnits,
		nil,
	)
	if _, err := listings.InitMarketplace.Execute(ctx, listingcommands.InitMarketplaceCommand{
		Name:           testMarketplace,
		FeeRatePercent: 10,
		Treasury:       testTreasury,
	}); err != nil {
		t.Fatalf("init marketplace failed: %v", err)
	}

	// Writer onboarding.
	if _, err := roles.Handler.RegisterRoleHandler(ctx, rolehttp.RegisterRoleRequest{
		UserID:    "writer-1",
		Role:      "writer",
		GrantedBy: "admin",
	}); err != nil {
		t.Fatalf("grant writer failed: %v", err)
	}

	book, err := content.Handler.CreateBookHandler(ctx, contenthttp.CreateBookRequest{
		Writer:       "writer-1",
		CollectionID: "col-book-1",
		Title:        "Field Notes",
		Genre:        "essays",
		Capacity:     5,
	})
	if err != nil {
		t.Fatalf("create book failed: %v", err)
	}

	// Publish a chapter backed by a freshly minted, verified asset.
	asset, err := assets.Mint(ctx, "writer-1", "col-book-1")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	if _, err := assets.VerifyCollection(ctx, asset.AssetID); err != nil {
		t.Fatalf("verify collection failed: %v", err)
	}
	chapter, err := content.Handler.AddChapterHandler(ctx, book.Data.BookID, contenthttp.AddChapterRequest{
		Writer:  "writer-1",
		AssetID: asset.AssetID,
		Title:   "Chapter One",
		Locator: "ipfs://field-notes/1",
	})
	if err != nil {
		t.Fatalf("add chapter failed: %v", err)
	}
	if chapter.Data.Number != 1 {
		t.Fatalf("expected first chapter, got %d", chapter.Data.Number)
	}

	if _, err := content.Handler.CreateExclusiveContentHandler(ctx, "col-book-1", contenthttp.CreateExclusiveContentRequest{
		Locator: "ipfs://field-notes/bonus",
		Author:  "writer-1",
	}); err != nil {
		t.Fatalf("register exclusive content failed: %v", err)
	}

	// The writer holds the chapter asset, so the gate admits them.
	if _, err := content.Handler.VerifyAccessHandler(ctx, contenthttp.VerifyAccessRequest{
		Claimant:     "writer-1",
		AssetID:      asset.AssetID,
		CollectionID: "col-book-1",
	}); err != nil {
		t.Fatalf("writer access failed: %v", err)
	}

	// List the chapter asset for sale.
	if err := cash.Deposit(ctx, "writer-1", testRentUnits); err != nil {
		t.Fatalf("fund writer rent failed: %v", err)
	}
	if _, err := listings.Handler.OpenListingHandler(ctx, "", testMarketplace, listinghttp.OpenListingRequest{
		AssetID: asset.AssetID,
		Maker:   "writer-1",
		Price:   1000,
	}); err != nil {
		t.Fatalf("open listing failed: %v", err)
	}

	// A reader buys it.
	if err := cash.Deposit(ctx, "reader-1", 1500); err != nil {
		t.Fatalf("fund reader failed: %v", err)
	}
	purchase, err := listings.Handler.PurchaseListingHandler(ctx, testMarketplace, asset.AssetID, listinghttp.PurchaseListingRequest{Taker: "reader-1"})
	if err != nil {
		t.Fatalf("purchase failed: %v", err)
	}
	if purchase.Data.FeePaid != 100 || purchase.Data.SellerProceeds != 900 {
		t.Fatalf("unexpected split: fee %d proceeds %d", purchase.Data.FeePaid, purchase.Data.SellerProceeds)
	}

	// Access now follows the new holder.
	granted, err := content.Handler.VerifyAccessHandler(ctx, contenthttp.VerifyAccessRequest{
		Claimant:     "reader-1",
		AssetID:      asset.AssetID,
		CollectionID: "col-book-1",
	})
	if err != nil {
		t.Fatalf("buyer access failed: %v", err)
	}
	if granted.Data.Locator != "ipfs://field-notes/bonus" {
		t.Fatalf("expected bonus locator, got %q", granted.Data.Locator)
	}
	_, err = content.Handler.VerifyAccessHandler(ctx, contenthttp.VerifyAccessRequest{
		Claimant:     "writer-1",
		AssetID:      asset.AssetID,
		CollectionID: "col-book-1",
	})
	if !errors.Is(err, contenterrors.ErrNotHolder) {
		t.Fatalf("expected seller access revoked, got %v", err)
	}

	// The happy reader tips the writer from the remaining balance.
	if _, err := content.Handler.TipWriterHandler(ctx, contenthttp.TipWriterRequest{
		Reader: "reader-1",
		Writer: "writer-1",
		Amount: 200,
	}); err != nil {
		t.Fatalf("tip failed: %v", err)
	}

	writerBalance, err := cash.Balance(ctx, "writer-1")
	if err != nil {
		t.Fatalf("balance failed: %v", err)
	}
	// proceeds + reclaimed rent + tip
	if writerBalance != 900+testRentUnits+200 {
		t.Fatalf("unexpected writer balance %d", writerBalance)
	}
	readerBalance, err := cash.Balance(ctx, "reader-1")
	if err != nil {
		t.Fatalf("balance failed: %v", err)
	}
	if readerBalance != 1500-1000-200 {
		t.Fatalf("unexpected reader balance %d", readerBalance)
	}
	treasuryBalance, err := cash.Balance(ctx, testTreasury)
	if err != nil {
		t.Fatalf("balance failed: %v", err)
	}
	if treasuryBalance != 100 {
		t.Fatalf("unexpected treasury balance %d", treasuryBalance)
	}
}
