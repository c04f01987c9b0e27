package orchestrator

import (
	"context"

	"github.com/ethereum/go-ethereum/core/types"
)

// ProcessWithdrawalParams is the payload of one withdrawal job. Recipients
// and Amounts are parallel arrays; Amounts are decimal strings.
type ProcessWithdrawalParams struct {
	OwnerIndex      uint32
	Recipients      []string
	Amounts         []string
	AssetContract   string
	RPCEndpoint     string
	OperatorIndex   uint32
	FundingIndex    uint32
	ClientRequestID string
	ChainID         int64
}

type IOrchestrator interface {
	// ProcessWithdrawal drives one withdrawal job to a terminal state:
	// create request rows, provision the native reserve and allowance
	// preconditions when missing, submit the batched spend, wait for
	// confirmation and finalize the ledgers. The final receipt is returned
	// whether the batch succeeded or failed on-chain; the orchestrator never
	// retries — resubmitting the same job is safe via the client request id.
	ProcessWithdrawal(ctx context.Context, params ProcessWithdrawalParams) (*types.Receipt, error)
}
