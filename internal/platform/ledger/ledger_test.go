package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestAssetTransferEnforcesHolder(t *testing.T) {
	ctx := context.Background()
	book := NewAssetBook(nil)

	asset, err := book.Mint(ctx, "alice", "col-1")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	if err := book.Transfer(ctx, asset.AssetID, "bob", "carol"); !errors.Is(err, ErrNotHolder) {
		t.Fatalf("expected ErrNotHolder, got %v", err)
	}
	if err := book.Transfer(ctx, asset.AssetID, "alice", "bob"); err != nil {
		t.Fatalf("transfer failed: %v", err)
	}

	got, err := book.Get(ctx, asset.AssetID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Holder != "bob" {
		t.Fatalf("expected holder bob, got %q", got.Holder)
	}
}

func TestAssetTransferSingleWinnerUnderRace(t *testing.T) {
	ctx := context.Background()
	book := NewAssetBook(nil)

	asset, err := book.Mint(ctx, "alice", "col-1")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	winners := make([]error, 10)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			winners[i] = book.Transfer(ctx, asset.AssetID, "alice", "claimant")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range winners {
		if err == nil {
			succeeded++
		} else if !errors.Is(err, ErrNotHolder) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("expected exactly one successful transfer, got %d", succeeded)
	}
}

func TestCashSettleIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	cash := NewCashBook(nil)

	if err := cash.Deposit(ctx, "payer", 100); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	err := cash.Settle(ctx, "payer", []Credit{
		{To: "a", Amount: 70},
		{To: "b", Amount: 40},
	})
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	// Nothing moved.
	for account, want := range map[string]int64{"payer": 100, "a": 0, "b": 0} {
		got, err := cash.Balance(ctx, account)
		if err != nil {
			t.Fatalf("balance failed: %v", err)
		}
		if got != want {
			t.Fatalf("account %q: expected %d, got %d", account, want, got)
		}
	}

	if err := cash.Settle(ctx, "payer", []Credit{
		{To: "a", Amount: 70},
		{To: "b", Amount: 30},
	}); err != nil {
		t.Fatalf("settle failed: %v", err)
	}
	got, err := cash.Balance(ctx, "payer")
	if err != nil {
		t.Fatalf("balance failed: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected payer drained, got %d", got)
	}
}

func TestCashTransferRejectsZeroAmount(t *testing.T) {
	ctx := context.Background()
	cash := NewCashBook(nil)

	if err := cash.Transfer(ctx, "a", "b", 0); !errors.Is(err, ErrZeroAmount) {
		t.Fatalf("expected ErrZeroAmount, got %v", err)
	}
	if err := cash.Transfer(ctx, "a", "b", -5); !errors.Is(err, ErrZeroAmount) {
		t.Fatalf("expected ErrZeroAmount for negative, got %v", err)
	}
}
