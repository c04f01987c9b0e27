package evmrpc

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"

	"github.com/dwarvesf/payout-backend/contracts/batchspender"
	"github.com/dwarvesf/payout-backend/contracts/erc20"
	"github.com/dwarvesf/payout-backend/internal/model"
	"github.com/dwarvesf/payout-backend/internal/utils/config"
	"github.com/dwarvesf/payout-backend/internal/utils/logger"
)

const nativeTransferGasLimit = 21000

type EvmRPC struct {
	client       *ethclient.Client
	chainID      *big.Int
	signer       *Signer
	logger       *logger.Logger
	pollInterval time.Duration
}

func New(rpcEndpoint string, appConfig *config.AppConfig, logger *logger.Logger) (IEvmRPC, error) {
	client, err := ethclient.Dial(rpcEndpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to dial %s", rpcEndpoint)
	}

	chainID, err := client.ChainID(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to read chain id")
	}

	signer, err := NewSigner(appConfig.Blockchain.SignerMnemonic)
	if err != nil {
		return nil, err
	}

	return &EvmRPC{
		client:       client,
		chainID:      chainID,
		signer:       signer,
		logger:       logger,
		pollInterval: time.Duration(appConfig.Blockchain.ReceiptPollIntervalSeconds) * time.Second,
	}, nil
}

func (e *EvmRPC) DeriveAddress(index uint32) (string, error) {
	return e.signer.DeriveAddress(index)
}

func (e *EvmRPC) NativeBalance(ctx context.Context, address string) (*model.Web3BigInt, error) {
	balance, err := e.client.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		e.logger.Error("[NativeBalance][BalanceAt]", map[string]string{
			"address": address,
			"error":   err.Error(),
		})
		return nil, err
	}

	return &model.Web3BigInt{
		Value:   balance.String(),
		Decimal: model.LedgerDecimals,
	}, nil
}

func (e *EvmRPC) Allowance(ctx context.Context, assetContract, owner, spender string) (*model.Web3BigInt, error) {
	token, err := erc20.NewErc20(common.HexToAddress(assetContract), e.client)
	if err != nil {
		return nil, err
	}

	opts := &bind.CallOpts{Context: ctx}
	raw, err := token.Allowance(opts, common.HexToAddress(owner), common.HexToAddress(spender))
	if err != nil {
		e.logger.Error("[Allowance][Allowance]", map[string]string{
			"asset": assetContract,
			"owner": owner,
			"error": err.Error(),
		})
		return nil, err
	}

	decimals, err := token.Decimals(opts)
	if err != nil {
		return nil, err
	}

	return &model.Web3BigInt{
		Value:   raw.String(),
		Decimal: int(decimals),
	}, nil
}

func (e *EvmRPC) SendNative(ctx context.Context, signerIndex uint32, to, amountDecimal string) (*types.Receipt, error) {
	amount, err := model.NewWeb3BigIntFromDecimal(amountDecimal, model.LedgerDecimals)
	if err != nil {
		return nil, err
	}
	value, ok := amount.BigInt()
	if !ok {
		return nil, errors.Errorf("invalid native amount %q", amountDecimal)
	}

	key, err := e.signer.DeriveKey(signerIndex)
	if err != nil {
		return nil, err
	}
	from := crypto.PubkeyToAddress(key.PublicKey)

	nonce, err := e.client.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, err
	}

	tipCap, feeCap, err := e.suggestFees(ctx)
	if err != nil {
		return nil, err
	}

	toAddr := common.HexToAddress(to)
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   e.chainID,
		Nonce:     nonce,
		GasTipCap: tipCap,
		GasFeeCap: feeCap,
		Gas:       nativeTransferGasLimit,
		To:        &toAddr,
		Value:     value,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(e.chainID), key)
	if err != nil {
		return nil, err
	}

	if err := e.client.SendTransaction(ctx, signed); err != nil {
		e.logger.Error("[SendNative][SendTransaction]", map[string]string{
			"to":     to,
			"amount": amountDecimal,
			"error":  err.Error(),
		})
		return nil, err
	}

	e.logger.Info("[SendNative] native transfer submitted", map[string]string{
		"txHash": signed.Hash().Hex(),
		"to":     to,
		"amount": amountDecimal,
	})

	return bind.WaitMined(ctx, e.client, signed)
}

func (e *EvmRPC) ApproveMax(ctx context.Context, signerIndex uint32, assetContract, spender string) (*types.Receipt, error) {
	token, err := erc20.NewErc20(common.HexToAddress(assetContract), e.client)
	if err != nil {
		return nil, err
	}

	opts, err := e.newTransactOpts(ctx, signerIndex)
	if err != nil {
		return nil, err
	}

	tx, err := token.Approve(opts, common.HexToAddress(spender), model.MaxUint256())
	if err != nil {
		e.logger.Error("[ApproveMax][Approve]", map[string]string{
			"asset":   assetContract,
			"spender": spender,
			"error":   err.Error(),
		})
		return nil, err
	}

	e.logger.Info("[ApproveMax] approval submitted", map[string]string{
		"txHash":  tx.Hash().Hex(),
		"asset":   assetContract,
		"spender": spender,
	})

	return bind.WaitMined(ctx, e.client, tx)
}

func (e *EvmRPC) BatchSpend(ctx context.Context, signerIndex uint32, spenderContract, assetContract, owner string, recipients, amountsDecimal []string, decimals int) (*types.Receipt, error) {
	if len(recipients) != len(amountsDecimal) {
		return nil, errors.New("recipients and amounts length mismatch")
	}

	spender, err := batchspender.NewBatchSpender(common.HexToAddress(spenderContract), e.client)
	if err != nil {
		return nil, err
	}

	toAddrs := make([]common.Address, 0, len(recipients))
	amounts := make([]*big.Int, 0, len(amountsDecimal))
	for i := range recipients {
		amount, err := model.NewWeb3BigIntFromDecimal(amountsDecimal[i], decimals)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid amount for recipient %s", recipients[i])
		}
		raw, ok := amount.BigInt()
		if !ok {
			return nil, errors.Errorf("invalid amount %q", amountsDecimal[i])
		}
		toAddrs = append(toAddrs, common.HexToAddress(recipients[i]))
		amounts = append(amounts, raw)
	}

	opts, err := e.newTransactOpts(ctx, signerIndex)
	if err != nil {
		return nil, err
	}

	tx, err := spender.BatchTransferFrom(opts, common.HexToAddress(assetContract), common.HexToAddress(owner), toAddrs, amounts)
	if err != nil {
		e.logger.Error("[BatchSpend][BatchTransferFrom]", map[string]string{
			"spender": spenderContract,
			"owner":   owner,
			"error":   err.Error(),
		})
		return nil, err
	}

	e.logger.Info("[BatchSpend] batch submitted", map[string]string{
		"txHash":     tx.Hash().Hex(),
		"owner":      owner,
		"recipients": fmt.Sprintf("%d", len(recipients)),
	})

	return bind.WaitMined(ctx, e.client, tx)
}

func (e *EvmRPC) WaitConfirmations(ctx context.Context, txHash string, count uint64) (*types.Receipt, error) {
	hash := common.HexToHash(txHash)

	for {
		receipt, err := e.client.TransactionReceipt(ctx, hash)
		if err == nil {
			head, headErr := e.client.BlockNumber(ctx)
			if headErr != nil {
				return nil, headErr
			}
			mined := receipt.BlockNumber.Uint64()
			if head >= mined && head-mined+1 >= count {
				return receipt, nil
			}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(e.pollInterval):
		}
	}
}

// newTransactOpts builds signing options with fee parameters read fresh from
// the node; fee data is never cached across submissions.
func (e *EvmRPC) newTransactOpts(ctx context.Context, signerIndex uint32) (*bind.TransactOpts, error) {
	key, err := e.signer.DeriveKey(signerIndex)
	if err != nil {
		return nil, err
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, e.chainID)
	if err != nil {
		return nil, err
	}

	tipCap, feeCap, err := e.suggestFees(ctx)
	if err != nil {
		return nil, err
	}

	opts.Context = ctx
	opts.GasTipCap = tipCap
	opts.GasFeeCap = feeCap
	return opts, nil
}

func (e *EvmRPC) suggestFees(ctx context.Context) (tipCap, feeCap *big.Int, err error) {
	tipCap, err = e.client.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, nil, err
	}

	head, err := e.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, nil, err
	}

	feeCap = new(big.Int).Add(tipCap, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
	return tipCap, feeCap, nil
}
