package orchestrator

import (
	"github.com/pkg/errors"
)

// Validation errors abort before any side effect.
var (
	ErrNoRecipients            = errors.New("recipients must not be empty")
	ErrRecipientsAmountsLength = errors.New("recipients and amounts must have equal length")
	ErrBlankRecipient          = errors.New("recipient address must not be blank")
	ErrBlankAmount             = errors.New("amount must not be blank")
	ErrAssetContractRequired   = errors.New("asset contract address is required")
)

// Not-found errors signal unresolvable configuration; they also abort before
// any ledger mutation.
var (
	ErrAssetNotFound   = errors.New("asset not found for contract address")
	ErrNetworkNotFound = errors.New("network not found for asset")
	ErrNoActiveSpender = errors.New("no active withdrawal contract for network")
)
