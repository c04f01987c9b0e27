package orchestrator

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"gorm.io/gorm"

	"github.com/dwarvesf/payout-backend/internal/evmrpc"
	"github.com/dwarvesf/payout-backend/internal/model"
	"github.com/dwarvesf/payout-backend/internal/store"
)

func gormModel(id uint) gorm.Model {
	return gorm.Model{ID: id}
}

// fakeRPC scripts the chain adapter. All submissions succeed and confirm
// unless a failure is injected.
type fakeRPC struct {
	mu sync.Mutex

	nativeBalance   string
	failBatch       bool
	revertBatch     bool
	nextHash        int
	failedHashes    map[string]bool
	sendNativeCalls []sendNativeCall
	approveCalls    []approveCall
	batchCalls      []batchCall
	waitCalls       []waitCall
}

type sendNativeCall struct {
	signerIndex uint32
	to          string
	amount      string
}

type approveCall struct {
	signerIndex uint32
	asset       string
	spender     string
}

type batchCall struct {
	signerIndex uint32
	spender     string
	asset       string
	owner       string
	recipients  []string
	amounts     []string
	decimals    int
	txHash      string
}

type waitCall struct {
	txHash string
	count  uint64
}

func newFakeRPC(nativeBalance string) *fakeRPC {
	return &fakeRPC{
		nativeBalance: nativeBalance,
		failedHashes:  map[string]bool{},
	}
}

func (f *fakeRPC) newReceipt() *types.Receipt {
	f.nextHash++
	return &types.Receipt{
		TxHash:      common.BigToHash(big.NewInt(int64(f.nextHash))),
		Status:      types.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(int64(f.nextHash)),
	}
}

func (f *fakeRPC) DeriveAddress(index uint32) (string, error) {
	return common.BigToAddress(big.NewInt(int64(index) + 1)).Hex(), nil
}

func (f *fakeRPC) NativeBalance(_ context.Context, _ string) (*model.Web3BigInt, error) {
	return model.NewWeb3BigIntFromDecimal(f.nativeBalance, model.LedgerDecimals)
}

func (f *fakeRPC) Allowance(_ context.Context, _, _, _ string) (*model.Web3BigInt, error) {
	return &model.Web3BigInt{Value: "0", Decimal: 18}, nil
}

func (f *fakeRPC) SendNative(_ context.Context, signerIndex uint32, to, amountDecimal string) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sendNativeCalls = append(f.sendNativeCalls, sendNativeCall{signerIndex, to, amountDecimal})
	return f.newReceipt(), nil
}

func (f *fakeRPC) ApproveMax(_ context.Context, signerIndex uint32, assetContract, spender string) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.approveCalls = append(f.approveCalls, approveCall{signerIndex, assetContract, spender})
	return f.newReceipt(), nil
}

func (f *fakeRPC) BatchSpend(_ context.Context, signerIndex uint32, spenderContract, assetContract, owner string, recipients, amountsDecimal []string, decimals int) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failBatch {
		return nil, errInjectedChain
	}
	receipt := f.newReceipt()
	if f.revertBatch {
		f.failedHashes[receipt.TxHash.Hex()] = true
	}
	f.batchCalls = append(f.batchCalls, batchCall{
		signerIndex: signerIndex,
		spender:     spenderContract,
		asset:       assetContract,
		owner:       owner,
		recipients:  recipients,
		amounts:     amountsDecimal,
		decimals:    decimals,
		txHash:      receipt.TxHash.Hex(),
	})
	return receipt, nil
}

func (f *fakeRPC) WaitConfirmations(_ context.Context, txHash string, count uint64) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.waitCalls = append(f.waitCalls, waitCall{txHash, count})
	status := types.ReceiptStatusSuccessful
	if f.failedHashes[txHash] {
		status = types.ReceiptStatusFailed
	}
	return &types.Receipt{
		TxHash:      common.HexToHash(txHash),
		Status:      status,
		BlockNumber: big.NewInt(1),
	}, nil
}

var _ evmrpc.IEvmRPC = (*fakeRPC)(nil)

// in-memory stores; the *gorm.DB handle is unused

type fakeNetworkStore struct{ networks map[uint]*model.Network }

func (s *fakeNetworkStore) Create(_ *gorm.DB, n *model.Network) (*model.Network, error) {
	s.networks[n.ID] = n
	return n, nil
}

func (s *fakeNetworkStore) GetByID(_ *gorm.DB, id uint) (*model.Network, error) {
	if n, ok := s.networks[id]; ok {
		return n, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeNetworkStore) GetByChainID(_ *gorm.DB, chainID int64) (*model.Network, error) {
	for _, n := range s.networks {
		if n.ChainID == chainID {
			return n, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeNetworkStore) Update(_ *gorm.DB, n *model.Network) (*model.Network, error) {
	s.networks[n.ID] = n
	return n, nil
}

type fakeAssetStore struct{ assets []*model.Asset }

func (s *fakeAssetStore) Create(_ *gorm.DB, a *model.Asset) (*model.Asset, error) {
	s.assets = append(s.assets, a)
	return a, nil
}

func (s *fakeAssetStore) GetByID(_ *gorm.DB, id uint) (*model.Asset, error) {
	for _, a := range s.assets {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeAssetStore) GetByContractAddress(_ *gorm.DB, contractAddress string) (*model.Asset, error) {
	for _, a := range s.assets {
		if a.ContractAddress == contractAddress {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeAssetStore) GetBySymbol(_ *gorm.DB, networkID uint, symbol string) (*model.Asset, error) {
	for _, a := range s.assets {
		if a.NetworkID == networkID && a.Symbol == symbol {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeAssetStore) Update(_ *gorm.DB, a *model.Asset) (*model.Asset, error) {
	return a, nil
}

type fakeContractStore struct{ contracts []*model.WithdrawalContract }

func (s *fakeContractStore) Create(_ *gorm.DB, c *model.WithdrawalContract) (*model.WithdrawalContract, error) {
	s.contracts = append(s.contracts, c)
	return c, nil
}

func (s *fakeContractStore) GetByID(_ *gorm.DB, id uint) (*model.WithdrawalContract, error) {
	for _, c := range s.contracts {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeContractStore) GetActiveByNetwork(_ *gorm.DB, networkID uint) (*model.WithdrawalContract, error) {
	for _, c := range s.contracts {
		if c.NetworkID == networkID && c.IsActive {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeContractStore) Activate(_ *gorm.DB, id uint) (*model.WithdrawalContract, error) {
	var target *model.WithdrawalContract
	for _, c := range s.contracts {
		if c.ID == id {
			target = c
		}
	}
	if target == nil {
		return nil, gorm.ErrRecordNotFound
	}
	for _, c := range s.contracts {
		if c.NetworkID == target.NetworkID {
			c.IsActive = c.ID == id
		}
	}
	return target, nil
}

type fakeThresholdStore struct{ thresholds map[uint]*model.NetworkThreshold }

func (s *fakeThresholdStore) Create(_ *gorm.DB, t *model.NetworkThreshold) (*model.NetworkThreshold, error) {
	s.thresholds[t.NetworkID] = t
	return t, nil
}

func (s *fakeThresholdStore) GetByNetworkID(_ *gorm.DB, networkID uint) (*model.NetworkThreshold, error) {
	if t, ok := s.thresholds[networkID]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeThresholdStore) Update(_ *gorm.DB, t *model.NetworkThreshold) (*model.NetworkThreshold, error) {
	s.thresholds[t.NetworkID] = t
	return t, nil
}

type fakeRequestStore struct {
	nextID   uint
	requests map[uint]*model.WithdrawalRequest
	// statusHistory records every observed status per request, in order
	statusHistory map[uint][]model.WithdrawalStatus
}

func newFakeRequestStore() *fakeRequestStore {
	return &fakeRequestStore{
		requests:      map[uint]*model.WithdrawalRequest{},
		statusHistory: map[uint][]model.WithdrawalStatus{},
	}
}

func (s *fakeRequestStore) Create(_ *gorm.DB, r *model.WithdrawalRequest) (*model.WithdrawalRequest, bool, error) {
	if r.ClientRequestID != nil {
		for _, existing := range s.requests {
			if existing.ClientRequestID != nil && *existing.ClientRequestID == *r.ClientRequestID {
				return existing, false, nil
			}
		}
	}
	s.nextID++
	r.ID = s.nextID
	s.requests[r.ID] = r
	s.statusHistory[r.ID] = append(s.statusHistory[r.ID], r.Status)
	return r, true, nil
}

func (s *fakeRequestStore) GetByID(_ *gorm.DB, id uint) (*model.WithdrawalRequest, error) {
	if r, ok := s.requests[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeRequestStore) GetByClientRequestID(_ *gorm.DB, clientRequestID string) (*model.WithdrawalRequest, error) {
	for _, r := range s.requests {
		if r.ClientRequestID != nil && *r.ClientRequestID == clientRequestID {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeRequestStore) UpdateStatus(_ *gorm.DB, id uint, status model.WithdrawalStatus) error {
	r, ok := s.requests[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if r.Status == status || !r.Status.CanTransitionTo(status) {
		return nil
	}
	r.Status = status
	s.statusHistory[id] = append(s.statusHistory[id], status)
	return nil
}

func (s *fakeRequestStore) ListNonTerminalOlderThan(_ *gorm.DB, _ int) ([]model.WithdrawalRequest, error) {
	return nil, nil
}

type fakeTopupStore struct{ topups map[string]*model.NativeTopup }

func (s *fakeTopupStore) Create(_ *gorm.DB, t *model.NativeTopup) (*model.NativeTopup, error) {
	s.topups[t.TransactionHash] = t
	return t, nil
}

func (s *fakeTopupStore) GetByTransactionHash(_ *gorm.DB, txHash string) (*model.NativeTopup, error) {
	if t, ok := s.topups[txHash]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeTopupStore) UpdateStatus(_ *gorm.DB, txHash string, status model.TxStatus) error {
	if t, ok := s.topups[txHash]; ok {
		t.Status = status
	}
	return nil
}

type fakeApprovalStore struct{ approvals []*model.AllowanceApproval }

func (s *fakeApprovalStore) Create(_ *gorm.DB, a *model.AllowanceApproval) (*model.AllowanceApproval, error) {
	s.approvals = append(s.approvals, a)
	return a, nil
}

func (s *fakeApprovalStore) GetConfirmed(_ *gorm.DB, ownerAddress string, assetID, contractID uint) (*model.AllowanceApproval, error) {
	for _, a := range s.approvals {
		if a.OwnerAddress == ownerAddress && a.AssetID == assetID && a.ContractID == contractID && a.Status == model.TxStatusConfirmed {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeApprovalStore) UpdateStatus(_ *gorm.DB, txHash string, status model.TxStatus) error {
	for _, a := range s.approvals {
		if a.TransactionHash == txHash {
			a.Status = status
		}
	}
	return nil
}

type fakeExecutionStore struct{ executions []*model.WithdrawalExecution }

func (s *fakeExecutionStore) Create(_ *gorm.DB, e *model.WithdrawalExecution) (*model.WithdrawalExecution, error) {
	s.executions = append(s.executions, e)
	return e, nil
}

func (s *fakeExecutionStore) GetByRequestID(_ *gorm.DB, requestID uint) ([]model.WithdrawalExecution, error) {
	var out []model.WithdrawalExecution
	for _, e := range s.executions {
		if e.RequestID == requestID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (s *fakeExecutionStore) UpdateStatusByTransactionHash(_ *gorm.DB, txHash string, status model.TxStatus) error {
	for _, e := range s.executions {
		if e.TransactionHash == txHash {
			e.Status = status
		}
	}
	return nil
}

type fakeAuditStore struct{ entries []*model.WithdrawalAuditLog }

func (s *fakeAuditStore) Create(_ *gorm.DB, e *model.WithdrawalAuditLog) (*model.WithdrawalAuditLog, error) {
	s.entries = append(s.entries, e)
	return e, nil
}

func (s *fakeAuditStore) topics() []string {
	out := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.Topic)
	}
	return out
}

func newFakeStore() *store.Store {
	return &store.Store{
		Network:             &fakeNetworkStore{networks: map[uint]*model.Network{}},
		Asset:               &fakeAssetStore{},
		WithdrawalContract:  &fakeContractStore{},
		NetworkThreshold:    &fakeThresholdStore{thresholds: map[uint]*model.NetworkThreshold{}},
		WithdrawalRequest:   newFakeRequestStore(),
		NativeTopup:         &fakeTopupStore{topups: map[string]*model.NativeTopup{}},
		AllowanceApproval:   &fakeApprovalStore{},
		WithdrawalExecution: &fakeExecutionStore{},
		AuditLog:            &fakeAuditStore{},
	}
}
