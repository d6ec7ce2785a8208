package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrReferrerNotFound  = errors.New("referrer account not found")

	// Order errors
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidCharge = errors.New("charge must be positive")

	// Withdrawal errors
	ErrWithdrawalTooSmall   = errors.New("withdrawal amount below minimum")
	ErrInsufficientEarnings = errors.New("insufficient affiliate earnings")

	// Store errors
	ErrContention       = errors.New("transaction aborted after exhausting retries")
	ErrStoreUnavailable = errors.New("backing store unavailable")
)
