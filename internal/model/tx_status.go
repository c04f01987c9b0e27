package model

// TxStatus is the lifecycle of a single on-chain transaction tracked by one
// of the sub-ledgers. Statuses only move forward. "replaced" is persisted for
// future replace-by-fee handling; no current code path produces it.
type TxStatus string

const (
	TxStatusPending   TxStatus = "pending"
	TxStatusMined     TxStatus = "mined"
	TxStatusConfirmed TxStatus = "confirmed"
	TxStatusFailed    TxStatus = "failed"
	TxStatusReplaced  TxStatus = "replaced"
)
