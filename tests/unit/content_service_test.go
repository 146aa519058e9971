package unit

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	roleservice "folio/contexts/identity-access/role-service"
	rolehttp "folio/contexts/identity-access/role-service/transport/http"
	contentservice "folio/contexts/publishing-editorial/content-service"
	contentledger "folio/contexts/publishing-editorial/content-service/adapters/ledger"
	domainerrors "folio/contexts/publishing-editorial/content-service/domain/errors"
	contentports "folio/contexts/publishing-editorial/content-service/ports"
	httptransport "folio/contexts/publishing-editorial/content-service/transport/http"
	"folio/internal/platform/ledger"
)

type publishingKit struct {
	content contentservice.Module
	roles   roleservice.Module
	assets  *ledger.AssetBook
	cash    *ledger.CashBook
}

// rolePolicyGlue mirrors the composition-root wiring between the role
// service and the publishing context.
type rolePolicyGlue struct {
	roles roleservice.Module
}

func (g rolePolicyGlue) HasRole(ctx context.Context, userID, role string) (bool, error) {
	return g.roles.HasRole.Execute(ctx, userID, role)
}

var _ contentports.RolePolicy = rolePolicyGlue{}

func newPublishingKit(t *testing.T) publishingKit {
	t.Helper()

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
	return publishingKit{content: content, roles: roles, assets: assets, cash: cash}
}

func (k publishingKit) grantWriter(t *testing.T, userID string) {
	t.Helper()

	_, err := k.roles.Handler.RegisterRoleHandler(context.Background(), rolehttp.RegisterRoleRequest{
		UserID:    userID,
		Role:      "writer",
		GrantedBy: "admin",
	})
	if err != nil {
		t.Fatalf("grant writer failed: %v", err)
	}
}

func (k publishingKit) createBook(t *testing.T, writer, collection string, capacity int) string {
	t.Helper()

	resp, err := k.content.Handler.CreateBookHandler(context.Background(), httptransport.CreateBookRequest{
		Writer:       writer,
		CollectionID: collection,
		Title:        "Signals and Noise",
		Genre:        "essays",
		Capacity:     capacity,
	})
	if err != nil {
		t.Fatalf("create book failed: %v", err)
	}
	return resp.Data.BookID
}

func (k publishingKit) mint(t *testing.T, owner, collection string, verified bool) string {
	t.Helper()

	ctx := context.Background()
	asset, err := k.assets.Mint(ctx, owner, collection)
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	if verified {
		if _, err := k.assets.VerifyCollection(ctx, asset.AssetID); err != nil {
			t.Fatalf("verify collection failed: %v", err)
		}
	}
	return asset.AssetID
}

func TestCreateBookRequiresWriterRole(t *testing.T) {
	kit := newPublishingKit(t)

	_, err := kit.content.Handler.CreateBookHandler(context.Background(), httptransport.CreateBookRequest{
		Writer:       "reader-1",
		CollectionID: "col-1",
		Title:        "Unauthorized",
		Genre:        "essays",
		Capacity:     3,
	})
	if !errors.Is(err, domainerrors.ErrNotWriter) {
		t.Fatalf("expected ErrNotWriter, got %v", err)
	}

	kit.grantWriter(t, "writer-1")
	bookID := kit.createBook(t, "writer-1", "col-1", 3)
	if bookID == "" {
		t.Fatalf("expected book id")
	}
}

func TestAddChapterAssignsDenseNumbersUpToCapacity(t *testing.T) {
	kit := newPublishingKit(t)
	kit.grantWriter(t, "writer-1")
	bookID := kit.createBook(t, "writer-1", "col-1", 3)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		assetID := kit.mint(t, "writer-1", "col-1", true)
		resp, err := kit.content.Handler.AddChapterHandler(ctx, bookID, httptransport.AddChapterRequest{
			Writer:  "writer-1",
			AssetID: assetID,
			Title:   "Chapter " + strconv.Itoa(i),
			Locator: "ipfs://chapter-" + strconv.Itoa(i),
		})
		if err != nil {
			t.Fatalf("add chapter %d failed: %v", i, err)
		}
		if resp.Data.Number != i {
			t.Fatalf("expected chapter number %d, got %d", i, resp.Data.Number)
		}
	}

	overflowAsset := kit.mint(t, "writer-1", "col-1", true)
	_, err := kit.content.Handler.AddChapterHandler(ctx, bookID, httptransport.AddChapterRequest{
		Writer:  "writer-1",
		AssetID: overflowAsset,
		Title:   "Overflow",
		Locator: "ipfs://overflow",
	})
	if !errors.Is(err, domainerrors.ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}

	chapters, err := kit.content.Handler.ListChaptersHandler(ctx, bookID)
	if err != nil {
		t.Fatalf("list chapters failed: %v", err)
	}
	if len(chapters.Data) != 3 {
		t.Fatalf("expected 3 chapters, got %d", len(chapters.Data))
	}
	for i, chapter := range chapters.Data {
		if chapter.Number != i+1 {
			t.Fatalf("expected dense numbering, position %d has number %d", i, chapter.Number)
		}
	}

	book, err := kit.content.Handler.GetBookHandler(ctx, bookID)
	if err != nil {
		t.Fatalf("get book failed: %v", err)
	}
	if book.Data.ChapterCount != 3 {
		t.Fatalf("expected chapter count 3, got %d", book.Data.ChapterCount)
	}
}

func TestAddChapterConcurrentAppendsStayDense(t *testing.T) {
	kit := newPublishingKit(t)
	kit.grantWriter(t, "writer-1")
	bookID := kit.createBook(t, "writer-1", "col-1", 10)
	ctx := context.Background()

	assetIDs := make([]string, 10)
	for i := range assetIDs {
		assetIDs[i] = kit.mint(t, "writer-1", "col-1", true)
	}

	var wg sync.WaitGroup
	for i, assetID := range assetIDs {
		wg.Add(1)
		go func(i int, assetID string) {
			defer wg.Done()
			_, err := kit.content.Handler.AddChapterHandler(ctx, bookID, httptransport.AddChapterRequest{
				Writer:  "writer-1",
				AssetID: assetID,
				Title:   "Chapter " + strconv.Itoa(i),
				Locator: "ipfs://chapter-" + strconv.Itoa(i),
			})
			if err != nil {
				t.Errorf("concurrent append failed: %v", err)
			}
		}(i, assetID)
	}
	wg.Wait()

	chapters, err := kit.content.Handler.ListChaptersHandler(ctx, bookID)
	if err != nil {
		t.Fatalf("list chapters failed: %v", err)
	}
	if len(chapters.Data) != 10 {
		t.Fatalf("expected 10 chapters, got %d", len(chapters.Data))
	}
	for i, chapter := range chapters.Data {
		if chapter.Number != i+1 {
			t.Fatalf("hole or duplicate at position %d: number %d", i, chapter.Number)
		}
	}
}

func TestAddChapterRejectsCollectionMismatch(t *testing.T) {
	kit := newPublishingKit(t)
	kit.grantWriter(t, "writer-1")
	bookID := kit.createBook(t, "writer-1", "col-1", 3)

	foreignAsset := kit.mint(t, "writer-1", "col-other", true)
	_, err := kit.content.Handler.AddChapterHandler(context.Background(), bookID, httptransport.AddChapterRequest{
		Writer:  "writer-1",
		AssetID: foreignAsset,
		Title:   "Stray",
		Locator: "ipfs://stray",
	})
	if !errors.Is(err, domainerrors.ErrCollectionMismatch) {
		t.Fatalf("expected ErrCollectionMismatch, got %v", err)
	}
}

func TestAddChapterRejectsForeignWriter(t *testing.T) {
	kit := newPublishingKit(t)
	kit.grantWriter(t, "writer-1")
	kit.grantWriter(t, "writer-2")
	bookID := kit.createBook(t, "writer-1", "col-1", 3)

	assetID := kit.mint(t, "writer-2", "col-1", true)
	_, err := kit.content.Handler.AddChapterHandler(context.Background(), bookID, httptransport.AddChapterRequest{
		Writer:  "writer-2",
		AssetID: assetID,
		Title:   "Takeover",
		Locator: "ipfs://takeover",
	})
	if !errors.Is(err, domainerrors.ErrNotWriter) {
		t.Fatalf("expected ErrNotWriter, got %v", err)
	}
}

func TestExclusiveContentRegistersOncePerCollection(t *testing.T) {
	kit := newPublishingKit(t)
	kit.grantWriter(t, "writer-1")
	ctx := context.Background()

	first, err := kit.content.Handler.CreateExclusiveContentHandler(ctx, "col-1", httptransport.CreateExclusiveContentRequest{
		Locator: "ipfs://bonus",
		Author:  "writer-1",
	})
	if err != nil {
		t.Fatalf("register content failed: %v", err)
	}
	if !first.Data.Active {
		t.Fatalf("expected active content")
	}

	_, err = kit.content.Handler.CreateExclusiveContentHandler(ctx, "col-1", httptransport.CreateExclusiveContentRequest{
		Locator: "ipfs://other",
		Author:  "writer-1",
	})
	if !errors.Is(err, domainerrors.ErrDuplicateContent) {
		t.Fatalf("expected ErrDuplicateContent, got %v", err)
	}
}

func (k publishingKit) addChapter(t *testing.T, bookID, writer, assetID, title string) httptransport.ChapterDTO {
	t.Helper()

	resp, err := k.content.Handler.AddChapterHandler(context.Background(), bookID, httptransport.AddChapterRequest{
		Writer:  writer,
		AssetID: assetID,
		Title:   title,
		Locator: "ipfs://" + title,
	})
	if err != nil {
		t.Fatalf("add chapter failed: %v", err)
	}
	return resp.Data
}

func TestVerifyAccessGate(t *testing.T) {
	kit := newPublishingKit(t)
	kit.grantWriter(t, "writer-1")
	bookID := kit.createBook(t, "writer-1", "col-1", 3)
	ctx := context.Background()

	if _, err := kit.content.Handler.CreateExclusiveContentHandler(ctx, "col-1", httptransport.CreateExclusiveContentRequest{
		Locator: "ipfs://bonus",
		Author:  "writer-1",
	}); err != nil {
		t.Fatalf("register content failed: %v", err)
	}

	assetID := kit.mint(t, "writer-1", "col-1", true)
	kit.addChapter(t, bookID, "writer-1", assetID, "one")
	if err := kit.assets.Transfer(ctx, assetID, "writer-1", "holder-1"); err != nil {
		t.Fatalf("transfer failed: %v", err)
	}

	granted, err := kit.content.Handler.VerifyAccessHandler(ctx, httptransport.VerifyAccessRequest{
		Claimant:     "holder-1",
		AssetID:      assetID,
		CollectionID: "col-1",
	})
	if err != nil {
		t.Fatalf("expected access granted, got %v", err)
	}
	if granted.Data.Locator != "ipfs://bonus" {
		t.Fatalf("expected locator, got %q", granted.Data.Locator)
	}

	_, err = kit.content.Handler.VerifyAccessHandler(ctx, httptransport.VerifyAccessRequest{
		Claimant:     "stranger",
		AssetID:      assetID,
		CollectionID: "col-1",
	})
	if !errors.Is(err, domainerrors.ErrNotHolder) {
		t.Fatalf("expected ErrNotHolder for stranger, got %v", err)
	}

	// Holding a verified asset of the collection that backs no chapter must
	// not unlock the content.
	sameCollection := kit.mint(t, "holder-2", "col-1", true)
	_, err = kit.content.Handler.VerifyAccessHandler(ctx, httptransport.VerifyAccessRequest{
		Claimant:     "holder-2",
		AssetID:      sameCollection,
		CollectionID: "col-1",
	})
	if !errors.Is(err, domainerrors.ErrNotHolder) {
		t.Fatalf("expected ErrNotHolder for unrelated asset of same collection, got %v", err)
	}

	wrongCollection := kit.mint(t, "holder-1", "col-other", true)
	_, err = kit.content.Handler.VerifyAccessHandler(ctx, httptransport.VerifyAccessRequest{
		Claimant:     "holder-1",
		AssetID:      wrongCollection,
		CollectionID: "col-1",
	})
	if !errors.Is(err, domainerrors.ErrNotHolder) {
		t.Fatalf("expected ErrNotHolder for wrong collection, got %v", err)
	}

	unverified := kit.mint(t, "writer-1", "col-1", false)
	kit.addChapter(t, bookID, "writer-1", unverified, "two")
	if err := kit.assets.Transfer(ctx, unverified, "writer-1", "holder-1"); err != nil {
		t.Fatalf("transfer failed: %v", err)
	}
	_, err = kit.content.Handler.VerifyAccessHandler(ctx, httptransport.VerifyAccessRequest{
		Claimant:     "holder-1",
		AssetID:      unverified,
		CollectionID: "col-1",
	})
	if !errors.Is(err, domainerrors.ErrUnverifiedCollection) {
		t.Fatalf("expected ErrUnverifiedCollection, got %v", err)
	}
}

func TestAccessFollowsCustody(t *testing.T) {
	kit := newPublishingKit(t)
	kit.grantWriter(t, "writer-1")
	bookID := kit.createBook(t, "writer-1", "col-1", 3)
	ctx := context.Background()

	if _, err := kit.content.Handler.CreateExclusiveContentHandler(ctx, "col-1", httptransport.CreateExclusiveContentRequest{
		Locator: "ipfs://bonus",
		Author:  "writer-1",
	}); err != nil {
		t.Fatalf("register content failed: %v", err)
	}

	assetID := kit.mint(t, "writer-1", "col-1", true)
	kit.addChapter(t, bookID, "writer-1", assetID, "one")
	if err := kit.assets.Transfer(ctx, assetID, "writer-1", "alice"); err != nil {
		t.Fatalf("transfer failed: %v", err)
	}
	if err := kit.assets.Transfer(ctx, assetID, "alice", "bob"); err != nil {
		t.Fatalf("transfer failed: %v", err)
	}

	_, err := kit.content.Handler.VerifyAccessHandler(ctx, httptransport.VerifyAccessRequest{
		Claimant:     "alice",
		AssetID:      assetID,
		CollectionID: "col-1",
	})
	if !errors.Is(err, domainerrors.ErrNotHolder) {
		t.Fatalf("expected previous holder denied, got %v", err)
	}

	granted, err := kit.content.Handler.VerifyAccessHandler(ctx, httptransport.VerifyAccessRequest{
		Claimant:     "bob",
		AssetID:      assetID,
		CollectionID: "col-1",
	})
	if err != nil {
		t.Fatalf("expected new holder granted, got %v", err)
	}
	if granted.Data.Locator != "ipfs://bonus" {
		t.Fatalf("expected locator, got %q", granted.Data.Locator)
	}
}

func TestSubmitReviewValidatesRating(t *testing.T) {
	kit := newPublishingKit(t)
	kit.grantWriter(t, "writer-1")
	bookID := kit.createBook(t, "writer-1", "col-1", 3)
	ctx := context.Background()

	assetID := kit.mint(t, "writer-1", "col-1", true)
	chapter := kit.addChapter(t, bookID, "writer-1", assetID, "one")

	for _, rating := range []int{0, 6, -1} {
		_, err := kit.content.Handler.SubmitReviewHandler(ctx, chapter.ChapterID, httptransport.SubmitReviewRequest{
			Reviewer: "reader-1",
			Rating:   rating,
			Body:     "out of range",
		})
		if !errors.Is(err, domainerrors.ErrInvalidRating) {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}

	_, err := kit.content.Handler.SubmitReviewHandler(ctx, "chp-missing", httptransport.SubmitReviewRequest{
		Reviewer: "reader-1",
		Rating:   4,
		Body:     "no such chapter",
	})
	if !errors.Is(err, domainerrors.ErrChapterNotFound) {
		t.Fatalf("expected ErrChapterNotFound, got %v", err)
	}
}

func TestSubmitReviewAggregatesChapterRating(t *testing.T) {
	kit := newPublishingKit(t)
	kit.grantWriter(t, "writer-1")
	bookID := kit.createBook(t, "writer-1", "col-1", 3)
	ctx := context.Background()

	assetID := kit.mint(t, "writer-1", "col-1", true)
	chapter := kit.addChapter(t, bookID, "writer-1", assetID, "one")

	if _, err := kit.content.Handler.SubmitReviewHandler(ctx, chapter.ChapterID, httptransport.SubmitReviewRequest{
		Reviewer: "reader-1",
		Rating:   5,
		Body:     "excellent",
	}); err != nil {
		t.Fatalf("first review failed: %v", err)
	}
	if _, err := kit.content.Handler.SubmitReviewHandler(ctx, chapter.ChapterID, httptransport.SubmitReviewRequest{
		Reviewer: "reader-2",
		Rating:   4,
		Body:     "solid",
	}); err != nil {
		t.Fatalf("second review failed: %v", err)
	}

	_, err := kit.content.Handler.SubmitReviewHandler(ctx, chapter.ChapterID, httptransport.SubmitReviewRequest{
		Reviewer: "reader-1",
		Rating:   1,
		Body:     "changed my mind",
	})
	if !errors.Is(err, domainerrors.ErrDuplicateReview) {
		t.Fatalf("expected ErrDuplicateReview, got %v", err)
	}

	chapters, err := kit.content.Handler.ListChaptersHandler(ctx, bookID)
	if err != nil {
		t.Fatalf("list chapters failed: %v", err)
	}
	if len(chapters.Data) != 1 {
		t.Fatalf("expected 1 chapter, got %d", len(chapters.Data))
	}
	if chapters.Data[0].ReviewCount != 2 {
		t.Fatalf("expected review count 2, got %d", chapters.Data[0].ReviewCount)
	}
	if chapters.Data[0].Rating != 4 {
		t.Fatalf("expected running rating 4, got %d", chapters.Data[0].Rating)
	}

	reviews, err := kit.content.Handler.ListReviewsHandler(ctx, chapter.ChapterID)
	if err != nil {
		t.Fatalf("list reviews failed: %v", err)
	}
	if len(reviews.Data) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews.Data))
	}
	if reviews.Data[0].Reviewer != "reader-1" || reviews.Data[1].Reviewer != "reader-2" {
		t.Fatalf("expected submission order, got %q then %q", reviews.Data[0].Reviewer, reviews.Data[1].Reviewer)
	}
}

func TestTipWriter(t *testing.T) {
	kit := newPublishingKit(t)
	kit.grantWriter(t, "writer-1")
	ctx := context.Background()

	_, err := kit.content.Handler.TipWriterHandler(ctx, httptransport.TipWriterRequest{
		Reader: "reader-1",
		Writer: "writer-1",
		Amount: 0,
	})
	if !errors.Is(err, domainerrors.ErrZeroTip) {
		t.Fatalf("expected ErrZeroTip, got %v", err)
	}

	_, err = kit.content.Handler.TipWriterHandler(ctx, httptransport.TipWriterRequest{
		Reader: "reader-1",
		Writer: "reader-2",
		Amount: 50,
	})
	if !errors.Is(err, domainerrors.ErrNotWriter) {
		t.Fatalf("expected ErrNotWriter for unroled recipient, got %v", err)
	}

	_, err = kit.content.Handler.TipWriterHandler(ctx, httptransport.TipWriterRequest{
		Reader: "reader-1",
		Writer: "writer-1",
		Amount: 50,
	})
	if !errors.Is(err, domainerrors.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	if err := kit.cash.Deposit(ctx, "reader-1", 100); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	if _, err := kit.content.Handler.TipWriterHandler(ctx, httptransport.TipWriterRequest{
		Reader: "reader-1",
		Writer: "writer-1",
		Amount: 60,
	}); err != nil {
		t.Fatalf("tip failed: %v", err)
	}

	writerBalance, err := kit.cash.Balance(ctx, "writer-1")
	if err != nil {
		t.Fatalf("balance failed: %v", err)
	}
	if writerBalance != 60 {
		t.Fatalf("expected writer balance 60, got %d", writerBalance)
	}
	readerBalance, err := kit.cash.Balance(ctx, "reader-1")
	if err != nil {
		t.Fatalf("balance failed: %v", err)
	}
	if readerBalance != 40 {
		t.Fatalf("expected reader balance 40, got %d", readerBalance)
	}
}

func TestChapterAppendEmitsOutboxEvent(t *testing.T) {
	kit := newPublishingKit(t)
	kit.grantWriter(t, "writer-1")
	bookID := kit.createBook(t, "writer-1", "col-1", 3)

	assetID := kit.mint(t, "writer-1", "col-1", true)
	if _, err := kit.content.Handler.AddChapterHandler(context.Background(), bookID, httptransport.AddChapterRequest{
		Writer:  "writer-1",
		AssetID: assetID,
		Title:   "Chapter 1",
		Locator: "ipfs://chapter-1",
	}); err != nil {
		t.Fatalf("add chapter failed: %v", err)
	}

	events := kit.content.Store.OutboxEvents()
	if len(events) != 1 {
		t.Fatalf("expected 1 outbox event, got %d", len(events))
	}
	if events[0].EventType != "chapter.added" {
		t.Fatalf("unexpected event type %q", events[0].EventType)
	}
	if events[0].PartitionKey != bookID {
		t.Fatalf("expected partition key %q, got %q", bookID, events[0].PartitionKey)
	}
}
