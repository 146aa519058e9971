package ledger

import "errors"

var (
	ErrAssetNotFound     = errors.New("ledger: asset not found")
	ErrNotHolder         = errors.New("ledger: account is not the current holder")
	ErrNoCollection      = errors.New("ledger: asset has no collection to verify")
	ErrInsufficientFunds = errors.New("ledger: insufficient funds")
	ErrZeroAmount        = errors.New("ledger: amount must be greater than zero")
)
