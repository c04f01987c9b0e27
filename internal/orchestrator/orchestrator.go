package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"gorm.io/gorm"

	"github.com/dwarvesf/payout-backend/internal/evmrpc"
	"github.com/dwarvesf/payout-backend/internal/model"
	"github.com/dwarvesf/payout-backend/internal/store"
	"github.com/dwarvesf/payout-backend/internal/utils/config"
	"github.com/dwarvesf/payout-backend/internal/utils/logger"
)

// RPCFactory builds a chain adapter for a job's RPC endpoint.
type RPCFactory func(rpcEndpoint string) (evmrpc.IEvmRPC, error)

type Orchestrator struct {
	db        *gorm.DB
	store     *store.Store
	newRPC    RPCFactory
	appConfig *config.AppConfig
	logger    *logger.Logger

	// inTx groups multi-store writes into one database transaction
	inTx func(fn func(tx *gorm.DB) error) error
}

func New(db *gorm.DB, s *store.Store, newRPC RPCFactory, appConfig *config.AppConfig, logger *logger.Logger) IOrchestrator {
	return &Orchestrator{
		db:        db,
		store:     s,
		newRPC:    newRPC,
		appConfig: appConfig,
		logger:    logger,
		inTx: func(fn func(tx *gorm.DB) error) error {
			return store.DoInTx(db, fn)
		},
	}
}

// resolvedConfig is the network/asset/spender/threshold configuration one job
// runs against. Read-only from the orchestrator's perspective.
type resolvedConfig struct {
	asset               *model.Asset
	network             *model.Network
	spender             *model.WithdrawalContract
	minNativeForApprove string
}

func (o *Orchestrator) ProcessWithdrawal(ctx context.Context, params ProcessWithdrawalParams) (*ethtypes.Receipt, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	rpc, err := o.newRPC(params.RPCEndpoint)
	if err != nil {
		return nil, err
	}

	ownerAddress, err := rpc.DeriveAddress(params.OwnerIndex)
	if err != nil {
		return nil, err
	}
	operatorAddress, err := rpc.DeriveAddress(params.OperatorIndex)
	if err != nil {
		return nil, err
	}
	fundingAddress, err := rpc.DeriveAddress(params.FundingIndex)
	if err != nil {
		return nil, err
	}

	cfg, err := o.resolveConfig(params)
	if err != nil {
		return nil, err
	}

	requests, err := o.createRequests(params, cfg, ownerAddress)
	if err != nil {
		return nil, err
	}

	o.logger.Info("[ProcessWithdrawal] requests ready", map[string]string{
		"owner":      ownerAddress,
		"operator":   operatorAddress,
		"recipients": fmt.Sprintf("%d", len(requests)),
		"asset":      cfg.asset.Symbol,
	})

	confirmed, err := o.allowanceConfirmed(ownerAddress, cfg)
	if err != nil {
		return nil, err
	}

	if !confirmed {
		if err := o.ensureNativeReserve(ctx, rpc, params, cfg, ownerAddress, fundingAddress, requests); err != nil {
			return nil, err
		}
		if err := o.ensureAllowance(ctx, rpc, params, cfg, ownerAddress, requests); err != nil {
			return nil, err
		}
	}

	receipt, err := rpc.BatchSpend(
		ctx,
		params.OperatorIndex,
		cfg.spender.Address,
		cfg.asset.ContractAddress,
		ownerAddress,
		params.Recipients,
		params.Amounts,
		cfg.asset.Decimals,
	)
	if err != nil {
		o.logger.Error("[ProcessWithdrawal][BatchSpend]", map[string]string{
			"owner": ownerAddress,
			"error": err.Error(),
		})
		return nil, err
	}

	txHash := receipt.TxHash.Hex()
	err = o.inTx(func(tx *gorm.DB) error {
		for i := range requests {
			_, err := o.store.WithdrawalExecution.Create(tx, &model.WithdrawalExecution{
				RequestID:       requests[i].ID,
				TransactionHash: txHash,
				Status:          model.TxStatusMined,
			})
			if err != nil {
				return err
			}
		}
		return o.advanceRequests(tx, requests, model.WithdrawalStatusOnchainSubmitted)
	})
	if err != nil {
		return nil, err
	}
	for i := range requests {
		o.audit(&requests[i].ID, model.AuditTopicWithdrawMined, map[string]string{
			"txHash": txHash,
		})
	}

	final, err := rpc.WaitConfirmations(ctx, txHash, cfg.network.Confirmations)
	if err != nil {
		return nil, err
	}

	if final.Status == ethtypes.ReceiptStatusSuccessful {
		err = o.inTx(func(tx *gorm.DB) error {
			if err := o.store.WithdrawalExecution.UpdateStatusByTransactionHash(tx, txHash, model.TxStatusConfirmed); err != nil {
				return err
			}
			return o.advanceRequests(tx, requests, model.WithdrawalStatusOnchainConfirmed)
		})
		if err != nil {
			return nil, err
		}
		for i := range requests {
			o.audit(&requests[i].ID, model.AuditTopicWithdrawConfirmed, map[string]string{
				"txHash": txHash,
			})
		}
		return final, nil
	}

	// mined but reverted: a normal, fully recorded outcome rather than an error
	err = o.inTx(func(tx *gorm.DB) error {
		if err := o.store.WithdrawalExecution.UpdateStatusByTransactionHash(tx, txHash, model.TxStatusFailed); err != nil {
			return err
		}
		return o.advanceRequests(tx, requests, model.WithdrawalStatusFailed)
	})
	if err != nil {
		return nil, err
	}
	for i := range requests {
		o.audit(&requests[i].ID, model.AuditTopicWithdrawFailed, map[string]string{
			"txHash": txHash,
		})
	}
	return final, nil
}

func validateParams(params ProcessWithdrawalParams) error {
	if len(params.Recipients) == 0 {
		return ErrNoRecipients
	}
	if len(params.Recipients) != len(params.Amounts) {
		return ErrRecipientsAmountsLength
	}
	for _, r := range params.Recipients {
		if strings.TrimSpace(r) == "" {
			return ErrBlankRecipient
		}
	}
	for _, a := range params.Amounts {
		if strings.TrimSpace(a) == "" {
			return ErrBlankAmount
		}
	}
	if strings.TrimSpace(params.AssetContract) == "" {
		return ErrAssetContractRequired
	}
	return nil
}

func (o *Orchestrator) resolveConfig(params ProcessWithdrawalParams) (*resolvedConfig, error) {
	asset, err := o.store.Asset.GetByContractAddress(o.db, params.AssetContract)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}
	if asset.ContractAddress == "" {
		// only contract-based tokens move through the spender flow
		return nil, ErrAssetContractRequired
	}

	network, err := o.store.Network.GetByID(o.db, asset.NetworkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNetworkNotFound
		}
		return nil, err
	}

	spender, err := o.store.WithdrawalContract.GetActiveByNetwork(o.db, network.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveSpender
		}
		return nil, err
	}

	minNative := o.appConfig.Blockchain.DefaultMinNativeForApprove
	threshold, err := o.store.NetworkThreshold.GetByNetworkID(o.db, network.ID)
	if err == nil {
		minNative = threshold.MinNativeForApprove
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return &resolvedConfig{
		asset:               asset,
		network:             network,
		spender:             spender,
		minNativeForApprove: minNative,
	}, nil
}

// createRequests idempotently creates one request row per recipient. A reused
// client request id returns the already-advanced rows, which is what lets a
// resubmitted job resume instead of duplicating funds movement.
func (o *Orchestrator) createRequests(params ProcessWithdrawalParams, cfg *resolvedConfig, ownerAddress string) ([]model.WithdrawalRequest, error) {
	chainID := params.ChainID
	if chainID == 0 {
		chainID = cfg.network.ChainID
	}

	requests := make([]model.WithdrawalRequest, 0, len(params.Recipients))
	for i := range params.Recipients {
		var clientID *string
		if params.ClientRequestID != "" {
			suffixed := fmt.Sprintf("%s-%d", params.ClientRequestID, i)
			clientID = &suffixed
		}

		row := &model.WithdrawalRequest{
			FromAddress:     ownerAddress,
			ToAddress:       params.Recipients[i],
			Amount:          params.Amounts[i],
			ChainID:         chainID,
			NetworkID:       cfg.network.ID,
			AssetID:         cfg.asset.ID,
			Status:          model.WithdrawalStatusCreated,
			ClientRequestID: clientID,
		}

		created, isNew, err := o.store.WithdrawalRequest.Create(o.db, row)
		if err != nil {
			return nil, err
		}
		if isNew {
			o.audit(&created.ID, model.AuditTopicWithdrawalCreated, map[string]string{
				"to":     created.ToAddress,
				"amount": created.Amount,
			})
		}
		requests = append(requests, *created)
	}
	return requests, nil
}

func (o *Orchestrator) allowanceConfirmed(ownerAddress string, cfg *resolvedConfig) (bool, error) {
	_, err := o.store.AllowanceApproval.GetConfirmed(o.db, ownerAddress, cfg.asset.ID, cfg.spender.ID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

// ensureNativeReserve tops up the owner address from the funding address when
// its native balance sits below the network threshold, so the owner can pay
// for its own approval transaction.
func (o *Orchestrator) ensureNativeReserve(ctx context.Context, rpc evmrpc.IEvmRPC, params ProcessWithdrawalParams, cfg *resolvedConfig, ownerAddress, fundingAddress string, requests []model.WithdrawalRequest) error {
	balance, err := rpc.NativeBalance(ctx, ownerAddress)
	if err != nil {
		return err
	}

	shortfall, err := model.Shortfall(balance.ToDecimalString(), cfg.minNativeForApprove)
	if err != nil {
		return err
	}
	if shortfall.Value == "0" {
		return nil
	}

	amount := shortfall.ToDecimalString()
	receipt, err := rpc.SendNative(ctx, params.FundingIndex, ownerAddress, amount)
	if err != nil {
		o.logger.Error("[ensureNativeReserve][SendNative]", map[string]string{
			"owner":  ownerAddress,
			"amount": amount,
			"error":  err.Error(),
		})
		return err
	}

	txHash := receipt.TxHash.Hex()
	_, err = o.store.NativeTopup.Create(o.db, &model.NativeTopup{
		NetworkID:       cfg.network.ID,
		FromAddress:     fundingAddress,
		ToAddress:       ownerAddress,
		Amount:          amount,
		TransactionHash: txHash,
		Status:          model.TxStatusMined,
	})
	if err != nil {
		return err
	}

	if err := o.advanceRequests(o.db, requests, model.WithdrawalStatusAwaitingTopup); err != nil {
		return err
	}
	for i := range requests {
		o.audit(&requests[i].ID, model.AuditTopicTopupMined, map[string]string{
			"txHash": txHash,
			"amount": amount,
		})
	}

	final, err := rpc.WaitConfirmations(ctx, txHash, cfg.network.Confirmations)
	if err != nil {
		return err
	}
	if final.Status != ethtypes.ReceiptStatusSuccessful {
		if err := o.store.NativeTopup.UpdateStatus(o.db, txHash, model.TxStatusFailed); err != nil {
			return err
		}
		return fmt.Errorf("native topup %s reverted on-chain", txHash)
	}

	if err := o.store.NativeTopup.UpdateStatus(o.db, txHash, model.TxStatusConfirmed); err != nil {
		return err
	}
	for i := range requests {
		o.audit(&requests[i].ID, model.AuditTopicTopupConfirmed, map[string]string{
			"txHash": txHash,
		})
	}
	return nil
}

// ensureAllowance grants the spender contract a maximum allowance from the
// owner. The grant is permanent; it is never scoped to a single withdrawal.
func (o *Orchestrator) ensureAllowance(ctx context.Context, rpc evmrpc.IEvmRPC, params ProcessWithdrawalParams, cfg *resolvedConfig, ownerAddress string, requests []model.WithdrawalRequest) error {
	receipt, err := rpc.ApproveMax(ctx, params.OwnerIndex, cfg.asset.ContractAddress, cfg.spender.Address)
	if err != nil {
		o.logger.Error("[ensureAllowance][ApproveMax]", map[string]string{
			"owner":   ownerAddress,
			"spender": cfg.spender.Address,
			"error":   err.Error(),
		})
		return err
	}

	txHash := receipt.TxHash.Hex()
	_, err = o.store.AllowanceApproval.Create(o.db, &model.AllowanceApproval{
		OwnerAddress:    ownerAddress,
		AssetID:         cfg.asset.ID,
		ContractID:      cfg.spender.ID,
		Amount:          model.MaxUint256().String(),
		TransactionHash: txHash,
		Status:          model.TxStatusMined,
	})
	if err != nil {
		return err
	}

	if err := o.advanceRequests(o.db, requests, model.WithdrawalStatusAwaitingAllowance); err != nil {
		return err
	}
	for i := range requests {
		o.audit(&requests[i].ID, model.AuditTopicApproveMined, map[string]string{
			"txHash": txHash,
		})
	}

	final, err := rpc.WaitConfirmations(ctx, txHash, cfg.network.Confirmations)
	if err != nil {
		return err
	}
	if final.Status != ethtypes.ReceiptStatusSuccessful {
		if err := o.store.AllowanceApproval.UpdateStatus(o.db, txHash, model.TxStatusFailed); err != nil {
			return err
		}
		return fmt.Errorf("allowance approval %s reverted on-chain", txHash)
	}

	if err := o.store.AllowanceApproval.UpdateStatus(o.db, txHash, model.TxStatusConfirmed); err != nil {
		return err
	}
	for i := range requests {
		o.audit(&requests[i].ID, model.AuditTopicApproveConfirmed, map[string]string{
			"txHash": txHash,
		})
	}
	return nil
}

func (o *Orchestrator) advanceRequests(tx *gorm.DB, requests []model.WithdrawalRequest, status model.WithdrawalStatus) error {
	for i := range requests {
		if err := o.store.WithdrawalRequest.UpdateStatus(tx, requests[i].ID, status); err != nil {
			return err
		}
		if requests[i].Status.CanTransitionTo(status) {
			requests[i].Status = status
		}
	}
	return nil
}

// audit appends one trail entry; failures are logged and swallowed so a
// forensic write never takes down the money path.
func (o *Orchestrator) audit(requestID *uint, topic string, payload map[string]string) {
	message, err := json.Marshal(payload)
	if err != nil {
		message = []byte("{}")
	}

	_, err = o.store.AuditLog.Create(o.db, &model.WithdrawalAuditLog{
		RequestID: requestID,
		Topic:     topic,
		Message:   string(message),
	})
	if err != nil {
		o.logger.Error("[audit][Create]", map[string]string{
			"topic": topic,
			"error": err.Error(),
		})
	}
}
