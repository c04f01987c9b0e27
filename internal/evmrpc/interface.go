package evmrpc

import (
	"context"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/dwarvesf/payout-backend/internal/model"
)

// IEvmRPC wraps a JSON-RPC node client for one network. Chain errors are
// returned as-is; this layer never retries or translates them.
type IEvmRPC interface {
	// DeriveAddress returns the address for a signing index. Pure and
	// deterministic for a given seed.
	DeriveAddress(index uint32) (string, error)

	// NativeBalance reads the native-currency balance of an address at the
	// latest block, in 18-decimal precision.
	NativeBalance(ctx context.Context, address string) (*model.Web3BigInt, error)

	// Allowance reads the raw allowance granted by owner to spender on the
	// token contract, with the token's own decimals.
	Allowance(ctx context.Context, assetContract, owner, spender string) (*model.Web3BigInt, error)

	// SendNative signs and submits a native transfer, blocking until the
	// transaction is mined (not necessarily confirmed).
	SendNative(ctx context.Context, signerIndex uint32, to, amountDecimal string) (*types.Receipt, error)

	// ApproveMax signs and submits a token approval for the maximum
	// representable amount, blocking until mined.
	ApproveMax(ctx context.Context, signerIndex uint32, assetContract, spender string) (*types.Receipt, error)

	// BatchSpend signs and submits one batched spend-on-behalf-of-owner
	// call carrying every recipient. Decimal amounts are converted to the
	// asset's smallest unit using decimals before submission.
	BatchSpend(ctx context.Context, signerIndex uint32, spenderContract, assetContract, owner string, recipients, amountsDecimal []string, decimals int) (*types.Receipt, error)

	// WaitConfirmations blocks until the transaction is count blocks deep
	// and returns the final receipt; its status bit reports success or
	// failure.
	WaitConfirmations(ctx context.Context, txHash string, count uint64) (*types.Receipt, error)
}
