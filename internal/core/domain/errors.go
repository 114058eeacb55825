package domain

import "errors"

// Pool errors
var (
	// ErrShareCountMismatch is returned when the number of participants does not
	// match the number of shares.
	ErrShareCountMismatch = errors.New(
		"number of participants and shares do not match",
	)
	// ErrZeroShare is returned if one of the given shares is 0.
	ErrZeroShare = errors.New("one of the shares is 0")
	// ErrSharesNotFull is returned if shares do not sum to exactly 100.
	ErrSharesNotFull = errors.New("shares do not add up to 100")
	// ErrInvalidParticipant is returned for an empty participant identity or
	// for a participant that is the custody account itself.
	ErrInvalidParticipant = errors.New(
		"participant must not be empty nor the custody account",
	)
	// ErrDuplicateParticipant is returned if a participant is listed twice.
	ErrDuplicateParticipant = errors.New("participant is listed more than once")
	// ErrMissingCustodyAccount ...
	ErrMissingCustodyAccount = errors.New("missing custody account")
	// ErrPoolNotFound ...
	ErrPoolNotFound = errors.New("pool not found")
	// ErrPoolAlreadyExists ...
	ErrPoolAlreadyExists = errors.New("pool already exists")
	// ErrCustodyAccountInUse is returned when adding a pool whose custody
	// account already backs another pool.
	ErrCustodyAccountInUse = errors.New("custody account is used by another pool")
)

// Withdrawal errors
var (
	// ErrNotAParticipant is returned when the caller of a withdrawal holds no
	// share of the pool.
	ErrNotAParticipant = errors.New("sender is not a participant")
	// ErrNothingDue is returned when the caller has nothing left to claim.
	ErrNothingDue = errors.New("no tokens are due")
	// ErrTransferFailed wraps any error returned by the custody while
	// transferring the due amount.
	ErrTransferFailed = errors.New("custody transfer failed")
	// ErrAmountOverflow is returned if the amount deposited into a pool can not
	// be represented in base units.
	ErrAmountOverflow = errors.New("deposited amount overflows")
	// ErrMissingAsset ...
	ErrMissingAsset = errors.New("missing asset")
)
