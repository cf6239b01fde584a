package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Collection errors
	ErrCollectionNotFound    = errors.New("collection not found")
	ErrCollectionNotActive   = errors.New("collection not active")
	ErrInvalidSupply         = errors.New("invalid collection supply")
	ErrInsufficientInventory = errors.New("not enough NFTs available")

	// Mint request errors
	ErrMintRequestNotFound = errors.New("mint request not found")
	ErrMintRequestConflict = errors.New("mint request conflict")
	ErrInvalidTransition   = errors.New("invalid mint request transition")

	// Chain errors
	ErrOnChainFailure   = errors.New("on-chain transaction failed")
	ErrTransientNetwork = errors.New("transient network error")

	// Persistence errors
	ErrPersistence = errors.New("persistence failed after prior step")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
