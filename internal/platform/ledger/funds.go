package ledger

import (
	"context"
	"log/slog"
	"sync"
)

// Credit is one leg of a settlement.
type Credit struct {
	To     string
	Amount int64
}

// CashBook tracks account balances in integer value units. Settle is the only
// multi-leg operation; it debits once and applies every credit, or nothing.
type CashBook struct {
	mu       sync.RWMutex
	balances map[string]int64
	logger   *slog.Logger
}

func NewCashBook(logger *slog.Logger) *CashBook {
	if logger == nil {
		logger = slog.Default()
	}
	return &CashBook{
		balances: make(map[string]int64),
		logger:   logger,
	}
}

func (c *CashBook) Deposit(_ context.Context, account string, amount int64) error {
	if amount <= 0 {
		return ErrZeroAmount
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.balances[account] += amount
	return nil
}

func (c *CashBook) Balance(_ context.Context, account string) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.balances[account], nil
}

// Transfer moves amount between two accounts.
func (c *CashBook) Transfer(ctx context.Context, from, to string, amount int64) error {
	if amount <= 0 {
		return ErrZeroAmount
	}
	return c.Settle(ctx, from, []Credit{{To: to, Amount: amount}})
}

// Settle debits from for the sum of all credits under one lock. The balance
// check happens before any mutation, so a failed settlement changes nothing.
func (c *CashBook) Settle(_ context.Context, from string, credits []Credit) error {
	var total int64
	for _, credit := range credits {
		if credit.Amount < 0 {
			return ErrZeroAmount
		}
		total += credit.Amount
	}
	if total == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.balances[from] < total {
		return ErrInsufficientFunds
	}
	c.balances[from] -= total
	for _, credit := range credits {
		c.balances[credit.To] += credit.Amount
	}

	c.logger.Debug("settlement applied",
		"event", "ledger_settled",
		"module", "internal/platform/ledger",
		"layer", "platform",
		"from", from,
		"total", total,
		"legs", len(credits),
	)
	return nil
}
