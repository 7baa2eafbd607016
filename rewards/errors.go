package rewards

import "errors"

// Configuration / authorization errors.
var (
	ErrNotInitialized     = errors.New("rewards: engine not initialized")
	ErrAlreadyInitialized = errors.New("rewards: engine already initialized")
	ErrUnauthorized       = errors.New("rewards: caller is not the administrative authority")
	ErrPaused             = errors.New("rewards: engine is paused")
)

// Claim gate errors.
var (
	ErrNonceMismatch     = errors.New("rewards: claim nonce mismatch")
	ErrBadClaimSignature = errors.New("rewards: claim signature does not recover to trader")
)

// State errors.
var (
	ErrNoStake               = errors.New("rewards: no stake found")
	ErrInsufficientStake     = errors.New("rewards: withdraw amount exceeds staked balance")
	ErrClaimWindowNotElapsed = errors.New("rewards: trade epoch not elapsed since last claim")
	ErrNothingToClaim        = errors.New("rewards: no pending rewards")
	ErrRewardAboveCap        = errors.New("rewards: reward exceeds max claimable")
	ErrZeroElapsed           = errors.New("rewards: no time elapsed since last update")
	ErrZeroAmount            = errors.New("rewards: amount must be positive")
	ErrAmountOverflow        = errors.New("rewards: value does not fit a storage word")
)

// Protocol / dispatch errors.
var (
	ErrReentrantCall  = errors.New("rewards: reentrant call rejected")
	ErrExternalCall   = errors.New("rewards: external capability call failed")
	ErrInvalidPayload = errors.New("rewards: invalid action payload")
	ErrNonZeroValue   = errors.New("rewards: system actions do not accept attached value")
)
