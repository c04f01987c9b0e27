package orchestrator

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dwarvesf/payout-backend/internal/evmrpc"
	"github.com/dwarvesf/payout-backend/internal/model"
	"github.com/dwarvesf/payout-backend/internal/store"
	"github.com/dwarvesf/payout-backend/internal/types/environments"
	"github.com/dwarvesf/payout-backend/internal/utils/config"
	"github.com/dwarvesf/payout-backend/internal/utils/logger"
)

var errInjectedChain = errors.New("injected chain error")

const (
	testAssetContract = "0x1000000000000000000000000000000000000001"
	testSpenderAddr   = "0x2000000000000000000000000000000000000002"
	testRecipient     = "0xBBB0000000000000000000000000000000000bbb"
)

type fixture struct {
	orchestrator IOrchestrator
	rpc          *fakeRPC
	store        *store.Store
	requests     *fakeRequestStore
	audit        *fakeAuditStore
}

func newFixture(t *testing.T, nativeBalance string) *fixture {
	t.Helper()

	s := newFakeStore()
	_, err := s.Network.Create(nil, &model.Network{
		Model:         gormModel(1),
		Name:          "base-sepolia",
		ChainID:       84532,
		Confirmations: 2,
		IsActive:      true,
	})
	require.NoError(t, err)

	_, err = s.Asset.Create(nil, &model.Asset{
		Model:           gormModel(1),
		NetworkID:       1,
		ContractAddress: testAssetContract,
		Symbol:          "USDX",
		Decimals:        18,
		IsActive:        true,
	})
	require.NoError(t, err)

	_, err = s.WithdrawalContract.Create(nil, &model.WithdrawalContract{
		Model:     gormModel(1),
		NetworkID: 1,
		Address:   testSpenderAddr,
		Version:   "1",
		IsActive:  true,
	})
	require.NoError(t, err)

	_, err = s.NetworkThreshold.Create(nil, &model.NetworkThreshold{
		NetworkID:           1,
		MinNativeForApprove: "0.003",
	})
	require.NoError(t, err)

	rpc := newFakeRPC(nativeBalance)
	appConfig := &config.AppConfig{
		Blockchain: config.BlockchainConfig{
			DefaultMinNativeForApprove: "0.003",
		},
	}

	orch := New(nil, s, func(string) (evmrpc.IEvmRPC, error) { return rpc, nil }, appConfig, logger.New(environments.Test)).(*Orchestrator)
	// the in-memory fakes do not speak SQL, so transactions collapse to plain calls
	orch.inTx = func(fn func(tx *gorm.DB) error) error { return fn(nil) }

	return &fixture{
		orchestrator: orch,
		rpc:          rpc,
		store:        s,
		requests:     s.WithdrawalRequest.(*fakeRequestStore),
		audit:        s.AuditLog.(*fakeAuditStore),
	}
}

func defaultParams() ProcessWithdrawalParams {
	return ProcessWithdrawalParams{
		OwnerIndex:      0,
		OperatorIndex:   1,
		FundingIndex:    2,
		Recipients:      []string{testRecipient},
		Amounts:         []string{"10"},
		AssetContract:   testAssetContract,
		RPCEndpoint:     "http://localhost:8545",
		ClientRequestID: "job-1",
	}
}

func TestProcessWithdrawal_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ProcessWithdrawalParams)
		wantErr error
	}{
		{
			name:    "no recipients",
			mutate:  func(p *ProcessWithdrawalParams) { p.Recipients = nil; p.Amounts = nil },
			wantErr: ErrNoRecipients,
		},
		{
			name:    "length mismatch",
			mutate:  func(p *ProcessWithdrawalParams) { p.Amounts = []string{"1", "2"} },
			wantErr: ErrRecipientsAmountsLength,
		},
		{
			name:    "blank recipient",
			mutate:  func(p *ProcessWithdrawalParams) { p.Recipients = []string{"  "} },
			wantErr: ErrBlankRecipient,
		},
		{
			name:    "blank amount",
			mutate:  func(p *ProcessWithdrawalParams) { p.Amounts = []string{""} },
			wantErr: ErrBlankAmount,
		},
		{
			name:    "missing asset contract",
			mutate:  func(p *ProcessWithdrawalParams) { p.AssetContract = "" },
			wantErr: ErrAssetContractRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "1")
			params := defaultParams()
			tt.mutate(&params)

			_, err := f.orchestrator.ProcessWithdrawal(context.Background(), params)
			require.ErrorIs(t, err, tt.wantErr)

			// validation failures must leave no trace in any ledger
			assert.Empty(t, f.requests.requests)
			assert.Empty(t, f.audit.entries)
			assert.Empty(t, f.rpc.batchCalls)
		})
	}
}

func TestProcessWithdrawal_UnknownAsset(t *testing.T) {
	f := newFixture(t, "1")
	params := defaultParams()
	params.AssetContract = "0x9999999999999999999999999999999999999999"

	_, err := f.orchestrator.ProcessWithdrawal(context.Background(), params)
	require.ErrorIs(t, err, ErrAssetNotFound)
	assert.Empty(t, f.requests.requests)
}

func TestProcessWithdrawal_FullProvisioningFlow(t *testing.T) {
	// owner holds 0.001 native against a 0.003 threshold and has no
	// confirmed allowance, so the job must top up 0.002, approve max,
	// then batch the spend
	f := newFixture(t, "0.001")

	receipt, err := f.orchestrator.ProcessWithdrawal(context.Background(), defaultParams())
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)

	require.Len(t, f.rpc.sendNativeCalls, 1)
	topup := f.rpc.sendNativeCalls[0]
	assert.Equal(t, uint32(2), topup.signerIndex)
	assert.Equal(t, "0.002", topup.amount)

	require.Len(t, f.rpc.approveCalls, 1)
	assert.Equal(t, uint32(0), f.rpc.approveCalls[0].signerIndex)
	assert.Equal(t, testAssetContract, f.rpc.approveCalls[0].asset)
	assert.Equal(t, testSpenderAddr, f.rpc.approveCalls[0].spender)

	require.Len(t, f.rpc.batchCalls, 1)
	batch := f.rpc.batchCalls[0]
	assert.Equal(t, uint32(1), batch.signerIndex)
	assert.Equal(t, testSpenderAddr, batch.spender)
	assert.Equal(t, []string{testRecipient}, batch.recipients)
	assert.Equal(t, []string{"10"}, batch.amounts)
	assert.Equal(t, 18, batch.decimals)

	// every confirmation wait honors the network's confirmation depth
	require.Len(t, f.rpc.waitCalls, 3)
	for _, w := range f.rpc.waitCalls {
		assert.Equal(t, uint64(2), w.count)
	}

	// the request walked the full forward path
	history := f.requests.statusHistory[1]
	assert.Equal(t, []model.WithdrawalStatus{
		model.WithdrawalStatusCreated,
		model.WithdrawalStatusAwaitingTopup,
		model.WithdrawalStatusAwaitingAllowance,
		model.WithdrawalStatusOnchainSubmitted,
		model.WithdrawalStatusOnchainConfirmed,
	}, history)

	assert.Equal(t, []string{
		model.AuditTopicWithdrawalCreated,
		model.AuditTopicTopupMined,
		model.AuditTopicTopupConfirmed,
		model.AuditTopicApproveMined,
		model.AuditTopicApproveConfirmed,
		model.AuditTopicWithdrawMined,
		model.AuditTopicWithdrawConfirmed,
	}, f.audit.topics())

	// the grant is recorded as confirmed for future jobs
	ownerAddress, err := f.rpc.DeriveAddress(0)
	require.NoError(t, err)
	grant, err := f.store.AllowanceApproval.GetConfirmed(nil, ownerAddress, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, model.TxStatusConfirmed, grant.Status)
}

func TestProcessWithdrawal_SkipsProvisioningWhenAllowanceConfirmed(t *testing.T) {
	f := newFixture(t, "0") // empty native balance must not matter

	ownerAddress, err := f.rpc.DeriveAddress(0)
	require.NoError(t, err)
	_, err = f.store.AllowanceApproval.Create(nil, &model.AllowanceApproval{
		OwnerAddress:    ownerAddress,
		AssetID:         1,
		ContractID:      1,
		Amount:          model.MaxUint256().String(),
		TransactionHash: "0xgrant",
		Status:          model.TxStatusConfirmed,
	})
	require.NoError(t, err)

	receipt, err := f.orchestrator.ProcessWithdrawal(context.Background(), defaultParams())
	require.NoError(t, err)
	assert.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)

	assert.Empty(t, f.rpc.sendNativeCalls)
	assert.Empty(t, f.rpc.approveCalls)
	require.Len(t, f.rpc.batchCalls, 1)

	// only the submit and confirm transitions happen
	history := f.requests.statusHistory[1]
	assert.Equal(t, []model.WithdrawalStatus{
		model.WithdrawalStatusCreated,
		model.WithdrawalStatusOnchainSubmitted,
		model.WithdrawalStatusOnchainConfirmed,
	}, history)
}

func TestProcessWithdrawal_SkipsTopupWhenBalanceMeetsThreshold(t *testing.T) {
	f := newFixture(t, "0.0045")

	_, err := f.orchestrator.ProcessWithdrawal(context.Background(), defaultParams())
	require.NoError(t, err)

	assert.Empty(t, f.rpc.sendNativeCalls)
	require.Len(t, f.rpc.approveCalls, 1)
}

func TestProcessWithdrawal_IdempotentResubmission(t *testing.T) {
	f := newFixture(t, "0.001")
	params := defaultParams()

	_, err := f.orchestrator.ProcessWithdrawal(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, f.requests.requests, 1)

	// the first run confirmed the allowance, so the rerun goes straight
	// to the batch without reprovisioning and without new request rows
	_, err = f.orchestrator.ProcessWithdrawal(context.Background(), params)
	require.NoError(t, err)

	assert.Len(t, f.requests.requests, 1)
	assert.Len(t, f.rpc.sendNativeCalls, 1)
	assert.Len(t, f.rpc.approveCalls, 1)
	assert.Len(t, f.rpc.batchCalls, 2)

	// terminal status never moves
	assert.Equal(t, model.WithdrawalStatusOnchainConfirmed, f.requests.requests[1].Status)
}

func TestProcessWithdrawal_MultiRecipientClientIDs(t *testing.T) {
	f := newFixture(t, "1")
	params := defaultParams()
	params.Recipients = []string{testRecipient, "0xCCC0000000000000000000000000000000000ccc"}
	params.Amounts = []string{"10", "2.5"}

	_, err := f.orchestrator.ProcessWithdrawal(context.Background(), params)
	require.NoError(t, err)

	require.Len(t, f.requests.requests, 2)
	first, err := f.store.WithdrawalRequest.GetByClientRequestID(nil, "job-1-0")
	require.NoError(t, err)
	second, err := f.store.WithdrawalRequest.GetByClientRequestID(nil, "job-1-1")
	require.NoError(t, err)
	assert.Equal(t, testRecipient, first.ToAddress)
	assert.Equal(t, "2.5", second.Amount)

	// one batch moves both recipients and both rows confirm
	require.Len(t, f.rpc.batchCalls, 1)
	assert.Equal(t, model.WithdrawalStatusOnchainConfirmed, first.Status)
	assert.Equal(t, model.WithdrawalStatusOnchainConfirmed, second.Status)
}

func TestProcessWithdrawal_BatchRevertIsTerminalFailure(t *testing.T) {
	f := newFixture(t, "1")
	f.rpc.revertBatch = true

	receipt, err := f.orchestrator.ProcessWithdrawal(context.Background(), defaultParams())
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, types.ReceiptStatusFailed, receipt.Status)

	req := f.requests.requests[1]
	assert.Equal(t, model.WithdrawalStatusFailed, req.Status)

	executions, err := f.store.WithdrawalExecution.GetByRequestID(nil, req.ID)
	require.NoError(t, err)
	require.Len(t, executions, 1)
	assert.Equal(t, model.TxStatusFailed, executions[0].Status)

	topics := f.audit.topics()
	assert.Equal(t, model.AuditTopicWithdrawFailed, topics[len(topics)-1])
}

func TestProcessWithdrawal_SubmitErrorPropagates(t *testing.T) {
	f := newFixture(t, "1")
	f.rpc.failBatch = true

	_, err := f.orchestrator.ProcessWithdrawal(context.Background(), defaultParams())
	require.ErrorIs(t, err, errInjectedChain)

	// the request stays non-terminal; later resubmission will resume it
	assert.Equal(t, model.WithdrawalStatusAwaitingAllowance, f.requests.requests[1].Status)
}
