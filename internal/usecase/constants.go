package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running transactions from blocking tables
	DefaultTransactionTimeout = 10 * time.Second

	// MinWithdrawalAmount is the smallest affiliate earnings withdrawal (decimal string)
	MinWithdrawalAmount = "1"

	// DisplayCacheTTL is how long account display reads may be served stale
	DisplayCacheTTL = 5 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)
