package store

import (
	"github.com/dwarvesf/payout-backend/internal/store/allowanceapproval"
	"github.com/dwarvesf/payout-backend/internal/store/asset"
	"github.com/dwarvesf/payout-backend/internal/store/auditlog"
	"github.com/dwarvesf/payout-backend/internal/store/nativetopup"
	"github.com/dwarvesf/payout-backend/internal/store/network"
	"github.com/dwarvesf/payout-backend/internal/store/networkthreshold"
	"github.com/dwarvesf/payout-backend/internal/store/withdrawalcontract"
	"github.com/dwarvesf/payout-backend/internal/store/withdrawalexecution"
	"github.com/dwarvesf/payout-backend/internal/store/withdrawalrequest"
)

type Store struct {
	Network             network.IStore
	Asset               asset.IStore
	WithdrawalContract  withdrawalcontract.IStore
	NetworkThreshold    networkthreshold.IStore
	WithdrawalRequest   withdrawalrequest.IStore
	NativeTopup         nativetopup.IStore
	AllowanceApproval   allowanceapproval.IStore
	WithdrawalExecution withdrawalexecution.IStore
	AuditLog            auditlog.IStore
}

func New() *Store {
	return &Store{
		Network:             network.New(),
		Asset:               asset.New(),
		WithdrawalContract:  withdrawalcontract.New(),
		NetworkThreshold:    networkthreshold.New(),
		WithdrawalRequest:   withdrawalrequest.New(),
		NativeTopup:         nativetopup.New(),
		AllowanceApproval:   allowanceapproval.New(),
		WithdrawalExecution: withdrawalexecution.New(),
		AuditLog:            auditlog.New(),
	}
}
