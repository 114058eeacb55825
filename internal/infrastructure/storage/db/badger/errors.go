package dbbadger

import "errors"

var (
	// ErrPoolInvalidRequest ...
	ErrPoolInvalidRequest = errors.New("requested pool is null")
	// ErrLedgerInvalidRequest ...
	ErrLedgerInvalidRequest = errors.New("requested ledger is null")
)
